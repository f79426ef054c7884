package editor

// Prompt collects a line of input on the message bar, redrawing the screen
// after every key. The template's %s shows the pending input. An observer,
// when given, sees every key alongside the current input; incremental
// search is built on that hook. ESC cancels and returns the empty string.
func (e *Editor) Prompt(prompt string, observer func([]byte, int)) string {
	bufSize := 128
	buf := make([]byte, 0, bufSize)

	for {
		e.SetStatusMessage(prompt, string(buf))
		e.RefreshScreen()

		key, err := e.readKey()
		if err != nil {
			e.Die("%v", err)
		}

		switch key {
		case DELETE_KEY, BACKSPACE, withControlKey('h'):
			if len(buf) != 0 {
				buf = buf[:len(buf)-1]
			}

		case ESC:
			e.SetStatusMessage("")
			if observer != nil {
				observer(buf, key)
			}
			return ""

		case ENTER:
			if len(buf) != 0 {
				e.SetStatusMessage("")
				if observer != nil {
					observer(buf, key)
				}
				return string(buf)
			}

		default:
			if key < 128 && !isControl(byte(key)) {
				if len(buf) == bufSize-1 {
					bufSize *= 2
					newBuf := make([]byte, len(buf), bufSize)
					copy(newBuf, buf)
					buf = newBuf
				}
				buf = append(buf, byte(key))
			}
		}

		if observer != nil {
			observer(buf, key)
		}
	}
}

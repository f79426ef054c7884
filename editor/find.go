package editor

import "bytes"

// findState is the incremental search's memory between keystrokes: where
// the last hit was, which way the next arrow moves, and the highlight
// bytes the match overlay replaced. A fresh one is made per search.
type findState struct {
	lastMatch   int
	direction   int
	savedHlLine int
	savedHl     []byte
}

// Find runs an incremental search over the rendered rows. Cancelling with
// ESC puts the cursor and scroll position back where they were.
func (e *Editor) Find() {
	savedCx, savedCy := e.cx, e.cy
	savedColOffset, savedRowOffset := e.colOffset, e.rowOffset

	fs := &findState{lastMatch: -1, direction: 1}
	query := e.Prompt("Search: %s (Use ESC/Arrows/Enter)", func(q []byte, key int) {
		e.findCallback(fs, q, key)
	})

	if query == "" {
		e.cx, e.cy = savedCx, savedCy
		e.colOffset, e.rowOffset = savedColOffset, savedRowOffset
	}
}

func (e *Editor) findCallback(fs *findState, query []byte, key int) {
	if fs.savedHl != nil {
		// Put back the highlights the previous match overlay replaced
		copy(e.rows[fs.savedHlLine].hl, fs.savedHl)
		fs.savedHl = nil
	}

	switch key {
	case ENTER, ESC:
		fs.lastMatch = -1
		fs.direction = 1
		return
	case ARROW_RIGHT, ARROW_DOWN:
		fs.direction = 1
	case ARROW_LEFT, ARROW_UP:
		fs.direction = -1
	default:
		// The query text changed, restart from the top
		fs.lastMatch = -1
		fs.direction = 1
	}

	if fs.lastMatch == -1 {
		fs.direction = 1
	}
	current := fs.lastMatch

	for range e.numrows {
		current += fs.direction
		if current == -1 {
			current = e.numrows - 1
		} else if current == e.numrows {
			current = 0
		}

		row := &e.rows[current]
		match := bytes.Index(row.render, query)
		if match != -1 {
			fs.lastMatch = current
			e.cy = current
			e.cx = row.rxToCx(match)
			// Force the next Scroll to bring the match into view
			e.rowOffset = e.numrows

			fs.savedHlLine = current
			fs.savedHl = make([]byte, len(row.hl))
			copy(fs.savedHl, row.hl)
			for k := match; k < match+len(query) && k < len(row.hl); k++ {
				row.hl[k] = HL_MATCH
			}
			break
		}
	}
}

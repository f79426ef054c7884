package editor

import "errors"

// Keys with a byte representation keep their byte value.
const (
	ENTER     = '\r'
	ESC       = '\x1b'
	BACKSPACE = 127 // ASCII DEL, the byte the Backspace key sends
)

// Named keys with no byte representation start at 1000 so they never
// collide with byte values.
const (
	ARROW_LEFT = iota + 1000
	ARROW_RIGHT
	ARROW_UP
	ARROW_DOWN
	DELETE_KEY
	HOME_KEY
	END_KEY
	PAGE_UP
	PAGE_DOWN
)

// Check if the byte is a control character
func isControl(c byte) bool {
	return c < 32 || c == 127
}

// Check if the byte is a digit character
func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// Convert a character to its control key equivalent
func withControlKey(c int) int {
	return c & 0x1f
}

// readKey blocks until one logical key is available. Zero-byte reads are
// the VTIME poll expiring and are retried; a real read error is fatal to
// the caller. Escape sequences decode to the named keys above, and any
// sequence that cannot be completed collapses to a bare ESC.
func (e *Editor) readKey() (int, error) {
	buf := make([]byte, 1)
	for {
		n, err := e.in.Read(buf)
		if n == 1 {
			break
		}
		if err != nil {
			return 0, errors.New("reading keyboard input: " + err.Error())
		}
	}

	c := buf[0]
	if c != ESC {
		return int(c), nil
	}

	seq := make([]byte, 3)
	if n, err := e.in.Read(seq[0:1]); n != 1 || err != nil {
		return ESC, nil
	}
	if n, err := e.in.Read(seq[1:2]); n != 1 || err != nil {
		return ESC, nil
	}

	switch seq[0] {
	case '[':
		if seq[1] >= '0' && seq[1] <= '9' {
			if n, err := e.in.Read(seq[2:3]); n != 1 || err != nil {
				return ESC, nil
			}
			if seq[2] == '~' {
				switch seq[1] {
				case '1':
					return HOME_KEY, nil
				case '3':
					return DELETE_KEY, nil
				case '4':
					return END_KEY, nil
				case '5':
					return PAGE_UP, nil
				case '6':
					return PAGE_DOWN, nil
				case '7':
					return HOME_KEY, nil
				case '8':
					return END_KEY, nil
				}
			}
		} else {
			switch seq[1] {
			case 'A':
				return ARROW_UP, nil
			case 'B':
				return ARROW_DOWN, nil
			case 'C':
				return ARROW_RIGHT, nil
			case 'D':
				return ARROW_LEFT, nil
			case 'H':
				return HOME_KEY, nil
			case 'F':
				return END_KEY, nil
			}
		}
	case 'O':
		switch seq[1] {
		case 'H':
			return HOME_KEY, nil
		case 'F':
			return END_KEY, nil
		}
	}
	return ESC, nil
}

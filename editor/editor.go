package editor

import (
	"io"
	"os"
	"slices"
	"time"
)

const (
	KILO_VERSION = "0.0.1"
	TAB_STOP     = 8
	QUIT_TIMES   = 3
)

// Editor is the whole editor state: one text buffer, the cursor and
// viewport over it, and the terminal it talks to. All mutation goes
// through its methods; there is no package-level state.
type Editor struct {
	cx, cy            int
	rx                int
	rowOffset         int
	colOffset         int
	screenRows        int
	screenCols        int
	numrows           int
	rows              []editorRow
	dirty             int // counts unsaved mutations; zero means disk matches buffer
	filename          string
	statusMessage     string
	statusMessageTime time.Time
	syntax            *editorSyntax
	quitTimes         int
	terminal          *Terminal
	in                io.Reader
	out               io.Writer
}

// NewEditor creates an Editor wired to the process TTY.
func NewEditor() *Editor {
	return &Editor{
		quitTimes: QUIT_TIMES,
		terminal:  NewTerminal(),
		in:        os.Stdin,
		out:       os.Stdout,
	}
}

// Init measures the screen. The bottom two lines belong to the status bar
// and the message bar, not the text viewport.
func (e *Editor) Init() error {
	var err error
	e.screenRows, e.screenCols, err = e.getWindowSize()
	if err != nil {
		return err
	}
	e.screenRows -= 2
	return nil
}

/*** buffer operations ***/

func (e *Editor) InsertRow(at int, s []byte) {
	if at < 0 || at > e.numrows {
		return
	}

	row := editorRow{
		idx:   at,
		chars: slices.Clone(s),
	}

	e.rows = slices.Insert(e.rows, at, row)
	e.numrows++
	for j := at + 1; j < e.numrows; j++ {
		e.rows[j].idx = j
	}

	e.rows[at].update(e)
	e.dirty++
}

func (e *Editor) DeleteRow(at int) {
	if at < 0 || at >= e.numrows {
		return
	}

	e.rows = slices.Delete(e.rows, at, at+1)
	e.numrows--
	for j := at; j < e.numrows; j++ {
		e.rows[j].idx = j
	}

	e.dirty++
}

/*** editor operations ***/

func (e *Editor) InsertChar(c int) {
	if e.cy == e.numrows {
		// Cursor is on the virtual line past the end of the buffer
		e.InsertRow(e.numrows, []byte(""))
	}
	e.rows[e.cy].insertChar(e, e.cx, c)
	e.cx++
}

func (e *Editor) InsertNewline() {
	if e.cx == 0 {
		e.InsertRow(e.cy, []byte(""))
	} else {
		row := &e.rows[e.cy]

		// Move everything after the cursor onto a new row below
		e.InsertRow(e.cy+1, row.chars[e.cx:])

		// Re-take the pointer, the slice may have been reallocated
		row = &e.rows[e.cy]
		row.chars = row.chars[:e.cx]
		row.update(e)
	}
	e.cy++
	e.cx = 0
}

func (e *Editor) DeleteChar() {
	if e.cy == e.numrows {
		return
	}
	if e.cx == 0 && e.cy == 0 {
		return
	}

	row := &e.rows[e.cy]
	if e.cx > 0 {
		row.deleteChar(e, e.cx-1)
		e.cx--
	} else {
		// Join this row onto the previous one
		e.cx = len(e.rows[e.cy-1].chars)
		e.rows[e.cy-1].appendBytes(e, row.chars)
		e.DeleteRow(e.cy)
		e.cy--
	}
}

/*** input ***/

func (e *Editor) MoveCursor(key int) {
	var row *editorRow
	if e.cy < e.numrows {
		row = &e.rows[e.cy]
	}

	switch key {
	case ARROW_LEFT:
		if e.cx != 0 {
			e.cx--
		} else if e.cy > 0 {
			// Wrap to the end of the previous line
			e.cy--
			e.cx = len(e.rows[e.cy].chars)
		}
	case ARROW_RIGHT:
		if row != nil && e.cx < len(row.chars) {
			e.cx++
		} else if row != nil && e.cx == len(row.chars) {
			// Wrap to the start of the next line
			e.cy++
			e.cx = 0
		}
	case ARROW_UP:
		if e.cy != 0 {
			e.cy--
		}
	case ARROW_DOWN:
		if e.cy < e.numrows {
			e.cy++
		}
	}

	// Snap the cursor to the end of the row it landed on
	rowlen := 0
	if e.cy < e.numrows {
		rowlen = len(e.rows[e.cy].chars)
	}
	if e.cx > rowlen {
		e.cx = rowlen
	}
}

// ProcessKeypress reads one key and dispatches it. It reports false when
// the editor should terminate.
func (e *Editor) ProcessKeypress() bool {
	key, err := e.readKey()
	if err != nil {
		e.Die("%v", err)
	}

	switch key {
	case ENTER:
		e.InsertNewline()

	case withControlKey('q'):
		if e.dirty > 0 && e.quitTimes > 0 {
			e.SetStatusMessage("WARNING: File has unsaved changes. Press Ctrl-Q %d more times to quit.", e.quitTimes)
			e.quitTimes--
			return true
		}
		e.out.Write([]byte(CLEAR_SCREEN))
		e.out.Write([]byte(CURSOR_HOME))
		return false

	case withControlKey('s'):
		e.Save()

	case HOME_KEY:
		e.cx = 0

	case END_KEY:
		if e.cy < e.numrows {
			e.cx = len(e.rows[e.cy].chars)
		}

	case withControlKey('f'):
		e.Find()

	case BACKSPACE, withControlKey('h'), DELETE_KEY:
		if key == DELETE_KEY {
			e.MoveCursor(ARROW_RIGHT)
		}
		e.DeleteChar()

	case PAGE_UP:
		e.cy = e.rowOffset
		for range e.screenRows {
			e.MoveCursor(ARROW_UP)
		}

	case PAGE_DOWN:
		e.cy = min(e.rowOffset+e.screenRows-1, e.numrows)
		for range e.screenRows {
			e.MoveCursor(ARROW_DOWN)
		}

	case ARROW_LEFT, ARROW_RIGHT, ARROW_UP, ARROW_DOWN:
		e.MoveCursor(key)

	case withControlKey('l'), ESC:
		// Ctrl-L asks for a repaint, which happens every cycle anyway

	default:
		if key < 256 {
			e.InsertChar(key)
		}
	}

	e.quitTimes = QUIT_TIMES
	return true
}

package editor

import (
	"fmt"
	"time"
)

const messageTimeout = 5 * time.Second

/*** append buffer ***/

// appendBuffer stages one whole frame so it reaches the terminal in a
// single write.
type appendBuffer struct {
	b []byte
}

func (ab *appendBuffer) append(s []byte) {
	ab.b = append(ab.b, s...)
}

func (ab *appendBuffer) free() {
	ab.b = nil
}

/*** output ***/

// Scroll derives the render column from the cursor and drags the visible
// window along so the cursor stays inside it.
func (e *Editor) Scroll() {
	e.rx = 0
	if e.cy < e.numrows {
		e.rx = e.rows[e.cy].cxToRx(e.cx)
	}

	if e.cy < e.rowOffset {
		e.rowOffset = e.cy
	}
	if e.cy >= e.rowOffset+e.screenRows {
		e.rowOffset = e.cy - e.screenRows + 1
	}

	if e.rx < e.colOffset {
		e.colOffset = e.rx
	}
	if e.rx >= e.colOffset+e.screenCols {
		e.colOffset = e.rx - e.screenCols + 1
	}
}

func (e *Editor) DrawRows(abuf *appendBuffer) {
	for y := range e.screenRows {
		filerow := y + e.rowOffset
		if filerow >= e.numrows {
			if e.numrows == 0 && y == e.screenRows/3 {
				welcome := "Kilo Editor -- version " + KILO_VERSION
				welcomelen := min(len(welcome), e.screenCols)
				padding := (e.screenCols - welcomelen) / 2
				if padding > 0 {
					abuf.append([]byte("~"))
					padding--
				}
				for range padding {
					abuf.append([]byte(" "))
				}
				abuf.append([]byte(welcome[:welcomelen]))
			} else {
				abuf.append([]byte("~"))
			}
		} else {
			lineLen := min(max(len(e.rows[filerow].render)-e.colOffset, 0), e.screenCols)
			start := e.colOffset
			hl := e.rows[filerow].hl
			render := e.rows[filerow].render
			currentColor := -1
			for j := range lineLen {
				c := render[start+j]
				h := hl[start+j]
				if isControl(c) {
					// Control bytes show as inverse-video glyphs
					sym := byte('?')
					if c <= 26 {
						sym = '@' + c
					}
					abuf.append([]byte(COLORS_INVERT))
					abuf.append([]byte{sym})
					abuf.append([]byte(COLORS_RESET))
					if currentColor != -1 {
						abuf.append(fmt.Appendf(nil, COLOR_FORMAT, currentColor))
					}
				} else if h == HL_NORMAL {
					if currentColor != -1 {
						abuf.append([]byte(COLOR_DEFAULT))
						currentColor = -1
					}
					abuf.append([]byte{c})
				} else {
					color := syntaxToColor(h)
					if color != currentColor {
						currentColor = color
						abuf.append(fmt.Appendf(nil, COLOR_FORMAT, color))
					}
					abuf.append([]byte{c})
				}
			}
			abuf.append([]byte(COLOR_DEFAULT))
		}

		abuf.append([]byte(CLEAR_LINE))
		abuf.append([]byte("\r\n"))
	}
}

func (e *Editor) DrawStatusBar(abuf *appendBuffer) {
	abuf.append([]byte(COLORS_INVERT))

	filename := e.filename
	if filename == "" {
		filename = "[No Name]"
	}
	dirtyFlag := ""
	if e.dirty > 0 {
		dirtyFlag = "(modified)"
	}
	status := fmt.Sprintf("%.20s - %d lines %s", filename, e.numrows, dirtyFlag)
	statusLen := min(len(status), e.screenCols)

	filetype := "no ft"
	if e.syntax != nil {
		filetype = e.syntax.filetype
	}
	rstatus := fmt.Sprintf("%s | %d/%d", filetype, e.cy+1, e.numrows)
	rstatusLen := len(rstatus)

	abuf.append([]byte(status[:statusLen]))
	for statusLen < e.screenCols {
		if e.screenCols-statusLen == rstatusLen {
			abuf.append([]byte(rstatus))
			break
		}
		abuf.append([]byte(" "))
		statusLen++
	}

	abuf.append([]byte(COLORS_RESET))
	abuf.append([]byte("\r\n"))
}

func (e *Editor) DrawMessageBar(abuf *appendBuffer) {
	abuf.append([]byte(CLEAR_LINE))
	messageLen := min(len(e.statusMessage), e.screenCols)
	if messageLen > 0 && time.Since(e.statusMessageTime) < messageTimeout {
		abuf.append([]byte(e.statusMessage[:messageLen]))
	}
}

// RefreshScreen composes the next frame and writes it in one go.
func (e *Editor) RefreshScreen() {
	e.Scroll()

	var abuf appendBuffer

	abuf.append([]byte(CURSOR_HIDE))
	abuf.append([]byte(CURSOR_HOME))

	e.DrawRows(&abuf)
	e.DrawStatusBar(&abuf)
	e.DrawMessageBar(&abuf)

	abuf.append(fmt.Appendf(nil, CURSOR_POSITION_FORMAT, e.cy-e.rowOffset+1, e.rx-e.colOffset+1))
	abuf.append([]byte(CURSOR_SHOW))

	e.out.Write(abuf.b)
	abuf.free()
}

func (e *Editor) SetStatusMessage(format string, args ...any) {
	e.statusMessage = fmt.Sprintf(format, args...)
	e.statusMessageTime = time.Now()
}

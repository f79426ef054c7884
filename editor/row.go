package editor

import "slices"

type editorRow struct {
	idx           int
	chars         []byte
	render        []byte
	hl            []byte
	hlOpenComment bool
}

// Convert cursor X to render X, since rendered characters may occupy more
// cells than raw characters (tabs).
func (row *editorRow) cxToRx(cx int) int {
	rx := 0
	for j := range cx {
		if row.chars[j] == '\t' {
			rx += TAB_STOP - (rx % TAB_STOP) // Expand tab to next TAB_STOP boundary
		} else {
			rx++
		}
	}
	return rx
}

// rxToCx returns the chars index of the cell containing rx, or the row
// length when rx lies past the end of the row.
func (row *editorRow) rxToCx(rx int) int {
	curRx := 0
	var cx int
	for cx = 0; cx < len(row.chars); cx++ {
		if row.chars[cx] == '\t' {
			curRx += (TAB_STOP - 1) - (curRx % TAB_STOP)
		}
		curRx++

		if curRx > rx {
			return cx
		}
	}
	return cx
}

// update regenerates the render representation from chars and re-runs the
// highlighter on this row (and, through the open-comment flag, on any
// successors it affects).
func (row *editorRow) update(e *Editor) {
	tabs := 0
	for _, c := range row.chars {
		if c == '\t' {
			tabs++
		}
	}

	// Worst case tab expansion
	render := make([]byte, 0, len(row.chars)+tabs*(TAB_STOP-1))
	for _, c := range row.chars {
		if c == '\t' {
			render = append(render, ' ')
			for len(render)%TAB_STOP != 0 {
				render = append(render, ' ')
			}
		} else {
			render = append(render, c)
		}
	}
	row.render = render

	row.updateSyntax(e)
}

func (row *editorRow) insertChar(e *Editor, at int, c int) {
	if at < 0 || at > len(row.chars) {
		at = len(row.chars)
	}

	row.chars = slices.Insert(row.chars, at, byte(c))

	row.update(e)
	e.dirty++
}

func (row *editorRow) appendBytes(e *Editor, s []byte) {
	row.chars = append(row.chars, s...)

	row.update(e)
	e.dirty++
}

func (row *editorRow) deleteChar(e *Editor, at int) {
	if at < 0 || at >= len(row.chars) {
		return
	}

	row.chars = slices.Delete(row.chars, at, at+1)

	row.update(e)
	e.dirty++
}

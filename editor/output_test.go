package editor

import (
	"bytes"
	"strings"
	"testing"
)

func TestDrawRowsWelcomeScreen(t *testing.T) {
	e := newTestEditor(t)

	var abuf appendBuffer
	e.DrawRows(&abuf)

	lines := strings.Split(string(abuf.b), "\r\n")
	// Every drawn row ends in \r\n, so the split leaves a trailing empty entry
	if len(lines) != e.screenRows+1 {
		t.Fatalf("Expected %d drawn lines, got %d", e.screenRows, len(lines)-1)
	}

	welcomeAt := e.screenRows / 3
	for y := range e.screenRows {
		if y == welcomeAt {
			if !strings.Contains(lines[y], "Kilo Editor -- version "+KILO_VERSION) {
				t.Errorf("Expected the welcome message on line %d, got %q", y, lines[y])
			}
			if !strings.HasPrefix(lines[y], "~") {
				t.Errorf("Expected the welcome line to start with a tilde")
			}
		} else if lines[y] != "~"+CLEAR_LINE {
			t.Errorf("Expected a bare tilde on line %d, got %q", y, lines[y])
		}
	}
}

func TestDrawRowsNoWelcomeWithContent(t *testing.T) {
	e := newTestEditor(t)
	loadRows(e, "text")

	var abuf appendBuffer
	e.DrawRows(&abuf)

	if strings.Contains(string(abuf.b), "Kilo Editor") {
		t.Errorf("Expected no welcome message once the buffer has rows")
	}
}

func TestDrawRowsHorizontalSlice(t *testing.T) {
	e := newTestEditor(t)
	e.screenCols = 4
	loadRows(e, "abcdefgh")
	e.colOffset = 2

	var abuf appendBuffer
	e.DrawRows(&abuf)

	if !strings.Contains(string(abuf.b), "cdef") {
		t.Errorf("Expected the visible slice %q, got %q", "cdef", string(abuf.b))
	}
	if strings.Contains(string(abuf.b), "ab") || strings.Contains(string(abuf.b), "gh") {
		t.Errorf("Expected content outside the window to be clipped, got %q", string(abuf.b))
	}
}

func TestDrawRowsControlGlyphs(t *testing.T) {
	e := newTestEditor(t)
	loadRows(e, "a\x01b")

	var abuf appendBuffer
	e.DrawRows(&abuf)

	// 0x01 renders as inverse-video 'A'
	if !strings.Contains(string(abuf.b), COLORS_INVERT+"A"+COLORS_RESET) {
		t.Errorf("Expected an inverse-video control glyph, got %q", string(abuf.b))
	}
}

func TestDrawRowsEmitsColorChanges(t *testing.T) {
	e := newCEditor(t, "if 42")

	var abuf appendBuffer
	e.DrawRows(&abuf)

	out := string(abuf.b)
	if !strings.Contains(out, "\x1b[33mif") {
		t.Errorf("Expected the keyword painted yellow, got %q", out)
	}
	if !strings.Contains(out, "\x1b[31m42") {
		t.Errorf("Expected the number painted red, got %q", out)
	}
}

func TestDrawStatusBarContents(t *testing.T) {
	e := newCEditor(t, "one", "two", "three")
	e.cy = 2

	var abuf appendBuffer
	e.DrawStatusBar(&abuf)

	out := string(abuf.b)
	if !strings.HasPrefix(out, COLORS_INVERT) {
		t.Errorf("Expected the status bar in inverse video")
	}
	if !strings.Contains(out, "test.c - 3 lines") {
		t.Errorf("Expected the filename and line count, got %q", out)
	}
	if !strings.Contains(out, "c | 3/3") {
		t.Errorf("Expected the filetype and position, got %q", out)
	}

	// The visible text fills the bar exactly
	visible := strings.TrimPrefix(out, COLORS_INVERT)
	visible = strings.TrimSuffix(visible, COLORS_RESET+"\r\n")
	if len(visible) != e.screenCols {
		t.Errorf("Expected %d visible cells, got %d", e.screenCols, len(visible))
	}
}

func TestDrawStatusBarNoName(t *testing.T) {
	e := newTestEditor(t)
	e.dirty = 1

	var abuf appendBuffer
	e.DrawStatusBar(&abuf)

	out := string(abuf.b)
	if !strings.Contains(out, "[No Name]") {
		t.Errorf("Expected the [No Name] placeholder, got %q", out)
	}
	if !strings.Contains(out, "(modified)") {
		t.Errorf("Expected the modified marker, got %q", out)
	}
	if !strings.Contains(out, "no ft") {
		t.Errorf("Expected the no-filetype marker, got %q", out)
	}
}

func TestDrawMessageBarExpiry(t *testing.T) {
	e := newTestEditor(t)
	e.SetStatusMessage("hello there")

	var abuf appendBuffer
	e.DrawMessageBar(&abuf)
	if !strings.Contains(string(abuf.b), "hello there") {
		t.Errorf("Expected a fresh message to be drawn")
	}

	e.statusMessageTime = e.statusMessageTime.Add(-messageTimeout)
	abuf.free()
	e.DrawMessageBar(&abuf)
	if strings.Contains(string(abuf.b), "hello there") {
		t.Errorf("Expected an expired message to be dropped")
	}
}

func TestRefreshScreenFrameShape(t *testing.T) {
	e := newTestEditor(t)
	out := &bytes.Buffer{}
	e.out = out
	loadRows(e, "hello")
	e.cy, e.cx = 0, 3

	e.RefreshScreen()

	frame := out.String()
	if !strings.HasPrefix(frame, CURSOR_HIDE+CURSOR_HOME) {
		t.Errorf("Expected the frame to start by hiding and homing the cursor")
	}
	if !strings.HasSuffix(frame, CURSOR_SHOW) {
		t.Errorf("Expected the frame to end by showing the cursor")
	}
	if !strings.Contains(frame, "\x1b[1;4H") {
		t.Errorf("Expected the cursor positioned at row 1 col 4, got %q", frame)
	}
}

func TestScrollTracksCursor(t *testing.T) {
	e := newTestEditor(t)
	e.screenRows = 4
	e.screenCols = 4
	loadRows(e, "a", "b", "c", "d", "e", "f", "abcdefgh")

	e.cy = 5
	e.Scroll()
	if e.rowOffset != 2 {
		t.Errorf("Expected rowOffset 2 with the cursor on row 5, got %d", e.rowOffset)
	}

	e.cy = 0
	e.Scroll()
	if e.rowOffset != 0 {
		t.Errorf("Expected rowOffset back to 0, got %d", e.rowOffset)
	}

	e.cy, e.cx = 6, 8
	e.Scroll()
	if e.rx != 8 {
		t.Errorf("Expected rx 8, got %d", e.rx)
	}
	if e.colOffset != 5 {
		t.Errorf("Expected colOffset 5, got %d", e.colOffset)
	}
}

func TestScrollDerivesRxFromTabs(t *testing.T) {
	e := newTestEditor(t)
	loadRows(e, "\tX")
	e.cy, e.cx = 0, 1

	e.Scroll()

	if e.rx != 8 {
		t.Errorf("Expected rx 8 after the tab, got %d", e.rx)
	}
}

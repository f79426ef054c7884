package editor

import "testing"

func TestRowUpdateExpandsTabs(t *testing.T) {
	e := newTestEditor(t)
	row := &editorRow{chars: []byte("\tX")}

	row.update(e)

	expected := "        X" // 8 spaces, then X
	if string(row.render) != expected {
		t.Errorf("Expected render %q, got %q", expected, string(row.render))
	}
	if len(row.render) != 9 {
		t.Errorf("Expected rsize 9, got %d", len(row.render))
	}
}

func TestRowUpdateMidlineTab(t *testing.T) {
	e := newTestEditor(t)
	row := &editorRow{chars: []byte("ab\tc")}

	row.update(e)

	// The tab advances to the next multiple of 8
	expected := "ab      c"
	if string(row.render) != expected {
		t.Errorf("Expected render %q, got %q", expected, string(row.render))
	}
}

func TestRowCxToRx(t *testing.T) {
	e := newTestEditor(t)
	row := &editorRow{chars: []byte("\tX")}
	row.update(e)

	if rx := row.cxToRx(0); rx != 0 {
		t.Errorf("Expected cxToRx(0) == 0, got %d", rx)
	}
	if rx := row.cxToRx(1); rx != 8 {
		t.Errorf("Expected cxToRx(1) == 8, got %d", rx)
	}
	if rx := row.cxToRx(2); rx != 9 {
		t.Errorf("Expected cxToRx(2) == 9, got %d", rx)
	}
}

func TestRowRxToCx(t *testing.T) {
	e := newTestEditor(t)
	row := &editorRow{chars: []byte("\tX")}
	row.update(e)

	// Any cell inside the tab maps back to the tab itself
	if cx := row.rxToCx(0); cx != 0 {
		t.Errorf("Expected rxToCx(0) == 0, got %d", cx)
	}
	if cx := row.rxToCx(4); cx != 0 {
		t.Errorf("Expected rxToCx(4) == 0, got %d", cx)
	}
	if cx := row.rxToCx(8); cx != 1 {
		t.Errorf("Expected rxToCx(8) == 1, got %d", cx)
	}
	if cx := row.rxToCx(100); cx != 2 {
		t.Errorf("Expected out-of-range rx to map to the row length, got %d", cx)
	}
}

func TestRowCxRxRoundTrip(t *testing.T) {
	e := newTestEditor(t)
	row := &editorRow{chars: []byte("a\tbc\td")}
	row.update(e)

	for cx := range len(row.chars) + 1 {
		if got := row.rxToCx(row.cxToRx(cx)); got != cx {
			t.Errorf("Expected rxToCx(cxToRx(%d)) == %d, got %d", cx, cx, got)
		}
	}
}

func TestRowRenderAndHlSameLength(t *testing.T) {
	e := newTestEditor(t)
	row := &editorRow{chars: []byte("\ta\tb")}
	row.update(e)

	if len(row.render) != len(row.hl) {
		t.Errorf("Expected render and hl lengths to match, got %d and %d", len(row.render), len(row.hl))
	}

	row.insertChar(e, 0, 'x')
	if len(row.render) != len(row.hl) {
		t.Errorf("Expected lengths to match after insert, got %d and %d", len(row.render), len(row.hl))
	}
}

func TestRowInsertCharClampsPosition(t *testing.T) {
	e := newTestEditor(t)
	row := &editorRow{chars: []byte("ab")}
	row.update(e)

	row.insertChar(e, 99, 'c')

	if string(row.chars) != "abc" {
		t.Errorf("Expected out-of-range insert to append, got %q", string(row.chars))
	}
}

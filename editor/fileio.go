package editor

import (
	"bufio"
	"fmt"
	"os"
)

// rowsToString joins every row with a trailing newline, so a buffer always
// serializes to a \n-terminated file.
func (e *Editor) rowsToString() []byte {
	total := 0
	for _, row := range e.rows {
		total += len(row.chars) + 1
	}

	buf := make([]byte, 0, total)
	for _, row := range e.rows {
		buf = append(buf, row.chars...)
		buf = append(buf, '\n')
	}
	return buf
}

// Open loads a file into the buffer, one row per line.
func (e *Editor) Open(filename string) error {
	e.filename = filename
	file, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("could not open file '%s': %v", filename, err)
	}
	defer file.Close()

	e.SelectSyntaxHighlight()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		// Strip trailing line terminators, the buffer stores bare lines
		for len(line) > 0 && (line[len(line)-1] == '\n' || line[len(line)-1] == '\r') {
			line = line[:len(line)-1]
		}

		e.InsertRow(e.numrows, []byte(line))
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading file '%s': %v", filename, err)
	}
	e.dirty = 0
	return nil
}

// Save writes the buffer back to its file, prompting for a name first if
// the buffer has none. I/O failures surface in the status bar and leave
// the dirty counter untouched.
func (e *Editor) Save() {
	if e.filename == "" {
		e.filename = e.Prompt("Save as: %s (ESC to cancel)", nil)
		if e.filename == "" {
			e.SetStatusMessage("Save aborted")
			return
		}
		e.SelectSyntaxHighlight()
	}

	buf := e.rowsToString()

	file, err := os.OpenFile(e.filename, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		e.SetStatusMessage("Can't save! I/O error: %v", err)
		return
	}
	defer file.Close()

	// Truncate to the exact length so shrinking the buffer shrinks the file
	if err := file.Truncate(int64(len(buf))); err != nil {
		e.SetStatusMessage("Can't save! I/O error: %v", err)
		return
	}

	n, err := file.Write(buf)
	if err != nil {
		e.SetStatusMessage("Can't save! I/O error: %v", err)
		return
	}
	if n != len(buf) {
		e.SetStatusMessage("Can't save! Partial write: %d/%d bytes", n, len(buf))
		return
	}

	e.SetStatusMessage("%d bytes written to disk", len(buf))
	e.dirty = 0
}

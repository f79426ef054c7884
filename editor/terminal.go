package editor

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// Terminal holds the saved cooked-mode state so raw mode can be undone
// on every exit path.
type Terminal struct {
	originalState *term.State
}

// NewTerminal creates a new Terminal instance
func NewTerminal() *Terminal {
	return &Terminal{}
}

// Die restores the terminal, prints an error message and exits the program
func (e *Editor) Die(format string, args ...any) {
	e.RestoreTerminal()
	os.Stdout.Write([]byte(CLEAR_SCREEN))
	os.Stdout.Write([]byte(CURSOR_HOME))
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// Enable raw mode for terminal input.
// This lets us read every key as it is typed and position the cursor freely.
func (e *Editor) EnableRawMode() error {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return errors.New("not running in a terminal")
	}

	state, err := term.MakeRaw(fd)
	if err != nil {
		return errors.New("enabling terminal raw mode: " + err.Error())
	}
	e.terminal.originalState = state

	// MakeRaw leaves VMIN=1, a fully blocking read. The editor wants the
	// short-poll discipline instead: read returns within a decisecond
	// even when no key arrived.
	tio, err := unix.IoctlGetTermios(fd, unix.TCGETS)
	if err != nil {
		return errors.New("reading termios: " + err.Error())
	}
	tio.Cc[unix.VMIN] = 0
	tio.Cc[unix.VTIME] = 1
	if err := unix.IoctlSetTermios(fd, unix.TCSETS, tio); err != nil {
		return errors.New("writing termios: " + err.Error())
	}
	return nil
}

// Restore the original terminal state, disabling raw mode.
func (e *Editor) RestoreTerminal() {
	if e.terminal != nil && e.terminal.originalState != nil {
		term.Restore(int(os.Stdin.Fd()), e.terminal.originalState)
		e.terminal.originalState = nil // Prevent multiple restoration attempts
	}
}

// getWindowSize reports the terminal size in rows and columns, falling
// back to querying the cursor position when the ioctl is unusable.
func (e *Editor) getWindowSize() (int, int, error) {
	cols, rows, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || cols == 0 {
		return e.getCursorPosition()
	}
	return rows, cols, nil
}

// getCursorPosition drives the cursor to the bottom-right corner and asks
// the terminal where it ended up.
func (e *Editor) getCursorPosition() (int, int, error) {
	if _, err := e.out.Write([]byte(CURSOR_BOTTOM_RIGHT + CURSOR_GET_POSITION)); err != nil {
		return 0, 0, err
	}

	// The response looks like \x1b[24;80R
	resp := make([]byte, 0, 32)
	b := make([]byte, 1)
	for len(resp) < 32 {
		if n, err := e.in.Read(b); n != 1 || err != nil {
			break
		}
		resp = append(resp, b[0])
		if b[0] == 'R' {
			break
		}
	}

	var rows, cols int
	if _, err := fmt.Sscanf(string(resp), CURSOR_RESPONSE_FORMAT, &rows, &cols); err != nil {
		return 0, 0, errors.New("parsing cursor position response")
	}
	return rows, cols, nil
}

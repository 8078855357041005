package marker

import (
	"bufio"
	"fmt"
	"io"

	"github.com/oklog/ulid/v2"
)

// Prefix starts every sentinel.
const Prefix = "END-"

// defaultStderrRedirect sends an echo to the error channel in POSIX shells.
const defaultStderrRedirect = " >&2"

// Marker holds the sentinel of one session.
type Marker struct {
	sentinel       string
	stderrRedirect string
}

// New creates a marker with a fresh sentinel.
func New() *Marker {
	return &Marker{
		sentinel:       Prefix + ulid.Make().String(),
		stderrRedirect: defaultStderrRedirect,
	}
}

// WithStderrRedirect returns a copy of m that uses redirect to send the
// sentinel to the error channel.
func (m *Marker) WithStderrRedirect(redirect string) *Marker {
	c := *m
	if redirect != "" {
		c.stderrRedirect = redirect
	}

	return &c
}

// Sentinel returns the end-of-output line.
func (m *Marker) Sentinel() string {
	return m.sentinel
}

// Write sends command, its terminator and the two sentinel echoes to the
// shell, then flushes w so the shell sees them as one unit.
func (m *Marker) Write(w *bufio.Writer, command, terminator string) error {
	if _, err := w.WriteString(command); err != nil {
		return fmt.Errorf("write command: %w", err)
	}

	if _, err := w.WriteString(terminator); err != nil {
		return fmt.Errorf("write terminator: %w", err)
	}

	if _, err := fmt.Fprintf(w, "echo %s\necho %s%s\n", m.sentinel, m.sentinel, m.stderrRedirect); err != nil {
		return fmt.Errorf("write marker: %w", err)
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("flush: %w", err)
	}

	return nil
}

// ReadUntil collects lines from sc up to, not including, the sentinel line.
// The stream ending before the sentinel is reported as io.ErrUnexpectedEOF.
func (m *Marker) ReadUntil(sc *bufio.Scanner) ([]string, error) {
	lines := make([]string, 0)

	for sc.Scan() {
		line := sc.Text()
		if line == m.sentinel {
			return lines, nil
		}

		lines = append(lines, line)
	}

	if err := sc.Err(); err != nil {
		return nil, err
	}

	return nil, io.ErrUnexpectedEOF
}

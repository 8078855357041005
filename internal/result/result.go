// Package result defines the captured output of one executed command.
package result

import (
	"encoding/json"
	"slices"
	"strings"
	"sync"
)

// DefaultSeparator follows every line in the joined output forms.
const DefaultSeparator = "\n"

// Result holds the stdout and stderr lines of one command.
// A Result is immutable once created.
type Result struct {
	command     string
	outputLines []string
	errorLines  []string

	mu     sync.Mutex
	joined map[joinKey]string
}

type joinKey struct {
	stderr    bool
	separator string
}

// New creates a Result. The line slices are owned by the Result afterwards.
func New(command string, outputLines, errorLines []string) *Result {
	if outputLines == nil {
		outputLines = []string{}
	}

	if errorLines == nil {
		errorLines = []string{}
	}

	return &Result{
		command:     command,
		outputLines: outputLines,
		errorLines:  errorLines,
	}
}

// Command returns the command text exactly as submitted.
func (r *Result) Command() string {
	return r.command
}

// OutputLines returns a copy of the captured stdout lines.
func (r *Result) OutputLines() []string {
	return slices.Clone(r.outputLines)
}

// ErrorLines returns a copy of the captured stderr lines.
func (r *Result) ErrorLines() []string {
	return slices.Clone(r.errorLines)
}

// Output returns the stdout lines, each followed by separator.
// The separator defaults to DefaultSeparator.
func (r *Result) Output(separator ...string) string {
	return r.join(false, separator)
}

// Error returns the stderr lines, each followed by separator.
// The separator defaults to DefaultSeparator.
func (r *Result) Error(separator ...string) string {
	return r.join(true, separator)
}

func (r *Result) join(stderr bool, separator []string) string {
	key := joinKey{stderr: stderr, separator: DefaultSeparator}
	if len(separator) > 0 {
		key.separator = separator[0]
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.joined[key]; ok {
		return s
	}

	lines := r.outputLines
	if stderr {
		lines = r.errorLines
	}

	s := ConcatLines(lines, key.separator)

	if r.joined == nil {
		r.joined = make(map[joinKey]string, 2)
	}

	r.joined[key] = s

	return s
}

// MarshalJSON encodes the command and its captured lines.
func (r *Result) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Command     string   `json:"command"`
		OutputLines []string `json:"output_lines"`
		ErrorLines  []string `json:"error_lines"`
	}{
		Command:     r.command,
		OutputLines: r.outputLines,
		ErrorLines:  r.errorLines,
	})
}

// ConcatLines appends separator after every line.
func ConcatLines(lines []string, separator string) string {
	var sb strings.Builder

	for _, line := range lines {
		sb.WriteString(line)
		sb.WriteString(separator)
	}

	return sb.String()
}

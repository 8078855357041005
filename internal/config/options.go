// Package config provides configuration types for shell sessions.
package config

import "log/slog"

const (
	// DefaultTerminator is written after every command to make the shell run it.
	DefaultTerminator = "\n"

	// DefaultMaxLineSize is the default maximum length of a single output line.
	DefaultMaxLineSize = 1024 * 1024 // 1MB

	// MinMaxLineSize keeps room for the end-of-output sentinel line.
	MinMaxLineSize = 64
)

// Options configures the behavior of a shell session.
type Options struct {
	// Logger is the slog logger for debug output.
	// If nil, logging is disabled (silent operation).
	Logger *slog.Logger

	// Flavor selects the shell to launch. Defaults to FlavorSh.
	Flavor Flavor

	// LaunchCommand overrides the flavor's launch command (e.g. "zsh -s").
	// It is split on whitespace; the first field is the shell binary.
	LaunchCommand string

	// ShellPath is the explicit path to the shell binary.
	// If empty, the binary is searched in PATH and common locations.
	ShellPath string

	// Cwd sets the initial working directory of the shell process.
	Cwd string

	// Env provides additional environment variables for the shell process.
	Env map[string]string

	// Terminator is written after each command. Defaults to DefaultTerminator.
	Terminator string

	// StderrRedirect is appended to the echo that marks the end of the error
	// channel. Defaults to " >&2".
	StderrRedirect string

	// MaxLineSize bounds the length of a single stdout or stderr line.
	// Defaults to DefaultMaxLineSize; values below MinMaxLineSize are raised.
	MaxLineSize int

	// Stderr is called with every stderr line captured by Execute,
	// in addition to the line being stored in the result.
	Stderr func(string)

	// Process is an optional custom process. If nil, the shell is spawned
	// as a local subprocess.
	Process Process
}

// ResolvedTerminator returns the configured terminator or the default.
func (o *Options) ResolvedTerminator() string {
	if o == nil || o.Terminator == "" {
		return DefaultTerminator
	}

	return o.Terminator
}

// ResolvedMaxLineSize returns the configured line size bound or the default.
func (o *Options) ResolvedMaxLineSize() int {
	if o == nil || o.MaxLineSize <= 0 {
		return DefaultMaxLineSize
	}

	return max(o.MaxLineSize, MinMaxLineSize)
}

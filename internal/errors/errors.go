package errors

import (
	"errors"
	"fmt"
)

// SessionError is the base interface for all session errors.
type SessionError interface {
	error
	IsSessionError() bool
}

// Compile-time verification that all error types implement SessionError.
var (
	_ SessionError = (*ShellNotFoundError)(nil)
	_ SessionError = (*StartError)(nil)
	_ SessionError = (*IOError)(nil)
)

// Sentinel errors for commonly checked conditions.
var (
	// ErrSessionTerminated indicates the session has been terminated and cannot be reused.
	ErrSessionTerminated = errors.New("session terminated: sessions are single-use, create a new one with New()")

	// ErrSessionDesynchronized indicates an earlier I/O failure left the shell out of
	// step with the session. Terminate the session and create a new one.
	ErrSessionDesynchronized = errors.New("session desynchronized by an earlier I/O failure: terminate it")

	// ErrEmptyLaunchCommand indicates no launch command could be resolved for the shell.
	ErrEmptyLaunchCommand = errors.New("empty launch command")

	// ErrProcessNotStarted indicates the shell process streams were requested before Start.
	ErrProcessNotStarted = errors.New("shell process not started")
)

// ShellNotFoundError indicates the shell binary was not found.
type ShellNotFoundError struct {
	Shell         string
	SearchedPaths []string
}

func (e *ShellNotFoundError) Error() string {
	return fmt.Sprintf("shell %q not found in: %v", e.Shell, e.SearchedPaths)
}

// IsSessionError implements SessionError.
func (e *ShellNotFoundError) IsSessionError() bool { return true }

// StartError indicates the shell process could not be spawned.
type StartError struct {
	Err error
}

func (e *StartError) Error() string {
	return fmt.Sprintf("failed to start shell: %v", e.Err)
}

func (e *StartError) Unwrap() error {
	return e.Err
}

// IsSessionError implements SessionError.
func (e *StartError) IsSessionError() bool { return true }

// IOError indicates a failure while writing a command to the shell or
// reading its output. The session may be desynchronized afterwards.
type IOError struct {
	// Op is the failed operation, "write" or "read".
	Op string
	// Stream names the pipe involved: "stdin", "stdout" or "stderr".
	Stream string
	Err    error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("shell %s on %s failed: %v", e.Op, e.Stream, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// IsSessionError implements SessionError.
func (e *IOError) IsSessionError() bool { return true }

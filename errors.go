package shellsession

import "github.com/wagiedev/shell-session-go/internal/errors"

// Re-export error types from internal package

// ShellNotFoundError indicates the shell binary was not found.
type ShellNotFoundError = errors.ShellNotFoundError

// StartError indicates the shell process could not be spawned.
type StartError = errors.StartError

// IOError indicates a pipe failure while a command was executing.
type IOError = errors.IOError

// SessionError is the base interface for all session errors.
type SessionError = errors.SessionError

// Re-export sentinel errors from internal package.
var (
	// ErrSessionTerminated indicates the session has been terminated and cannot be reused.
	ErrSessionTerminated = errors.ErrSessionTerminated

	// ErrSessionDesynchronized is returned by Execute after an earlier IOError.
	// Only Terminate is useful on such a session.
	ErrSessionDesynchronized = errors.ErrSessionDesynchronized

	// ErrEmptyLaunchCommand indicates the configured launch command is blank.
	ErrEmptyLaunchCommand = errors.ErrEmptyLaunchCommand
)

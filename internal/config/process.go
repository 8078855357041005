package config

import (
	"context"
	"io"
)

// Process is the boundary between a session and the shell it drives.
// Implement this to run the shell somewhere other than a local subprocess,
// or to substitute a fake shell in tests.
//
// The default implementation is subprocess.ShellProcess.
type Process interface {
	// Start launches the shell. It is called exactly once, before Streams.
	Start(ctx context.Context) error

	// Streams returns the shell's stdin, stdout and stderr.
	Streams() (stdin io.WriteCloser, stdout io.ReadCloser, stderr io.ReadCloser)

	// Kill forcibly stops the shell and releases it.
	// It must be safe to call Kill multiple times.
	Kill() error
}

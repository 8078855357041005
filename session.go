package shellsession

import "context"

// Session drives one long-lived shell process and runs commands in it one at
// a time. Working directory, environment and shell variables persist from one
// command to the next.
//
// Lifecycle: Sessions are single-use. After Terminate(), create a new session
// with New().
//
// Example usage:
//
//	session, err := shellsession.New(ctx, shellsession.WithFlavor(shellsession.FlavorBash))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer session.Terminate()
//
//	res, err := session.Execute(ctx, "cd /tmp && ls")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, line := range res.OutputLines() {
//	    fmt.Println(line)
//	}
type Session interface {
	// Execute runs command and returns its captured stdout and stderr lines.
	// Returns ErrSessionTerminated after Terminate, IOError if the shell's
	// pipes fail. An IOError leaves the session running but out of step
	// with the shell: later calls return ErrSessionDesynchronized, so call
	// Terminate to discard it.
	//
	// If ctx ends while the command is running, the session is terminated
	// and the context error is returned.
	Execute(ctx context.Context, command string) (*Result, error)

	// ExecuteWithTerminator is Execute with an explicit terminator written
	// after the command instead of the configured one.
	ExecuteWithTerminator(ctx context.Context, terminator, command string) (*Result, error)

	// ExecuteAll runs commands in order and returns their results in the
	// same order. The first failing command aborts the batch; no results are
	// returned in that case.
	ExecuteAll(ctx context.Context, commands ...string) ([]*Result, error)

	// ExecutePiped runs "producer | consumer" as a single command.
	ExecutePiped(ctx context.Context, producer, consumer string) (*Result, error)

	// ExecutePipedEcho pipes message into consumer. The message is wrapped in
	// single quotes; it must not contain single quotes itself.
	ExecutePipedEcho(ctx context.Context, message, consumer string) (*Result, error)

	// Terminate closes the shell's pipes and kills it. It is safe to call
	// more than once, and from another goroutine while Execute is blocked.
	Terminate() error

	// HasTerminated reports whether Terminate has been called.
	HasTerminated() bool
}

// New starts a shell and returns a session bound to it.
//
// Returns ShellNotFoundError if the shell binary cannot be located,
// or StartError if the process fails to start.
func New(ctx context.Context, opts ...Option) (Session, error) {
	return newSessionImpl(ctx, opts)
}

package session

import (
	"bufio"
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/wagiedev/shell-session-go/internal/config"
	"github.com/wagiedev/shell-session-go/internal/errors"
	"github.com/wagiedev/shell-session-go/internal/marker"
	"github.com/wagiedev/shell-session-go/internal/result"
	"github.com/wagiedev/shell-session-go/internal/subprocess"
)

// Session drives one shell process.
type Session struct {
	log        *slog.Logger
	options    *config.Options
	process    config.Process
	marker     *marker.Marker
	terminator string

	stdin  io.WriteCloser
	stdout io.ReadCloser
	stderr io.ReadCloser

	writer    *bufio.Writer
	outReader *bufio.Scanner
	errReader *bufio.Scanner

	// execMu serializes Execute calls. Terminate never takes it, so a
	// blocked Execute can be released from another goroutine.
	execMu sync.Mutex

	mu     sync.Mutex
	exited bool
	// broken holds the I/O failure that left the shell out of step with
	// the protocol. Only Terminate is useful afterwards.
	broken error
}

// New starts the shell described by options and returns a running session.
//
// Returns ShellNotFoundError if the shell binary cannot be located,
// or StartError if the process cannot be spawned.
func New(ctx context.Context, options *config.Options) (*Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if options == nil {
		options = &config.Options{}
	}

	log := options.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	log = log.With("component", "session")

	process := options.Process
	if process == nil {
		process = subprocess.NewShellProcess(log, options)
	} else {
		log.Debug("Using injected custom process")
	}

	if err := process.Start(ctx); err != nil {
		if _, ok := stderrors.AsType[errors.SessionError](err); ok {
			return nil, err
		}

		return nil, &errors.StartError{Err: err}
	}

	stdin, stdout, stderr := process.Streams()
	if stdin == nil || stdout == nil || stderr == nil {
		_ = process.Kill()

		return nil, &errors.StartError{Err: errors.ErrProcessNotStarted}
	}

	maxLine := options.ResolvedMaxLineSize()

	s := &Session{
		log:        log,
		options:    options,
		process:    process,
		marker:     marker.New().WithStderrRedirect(options.StderrRedirect),
		terminator: options.ResolvedTerminator(),
		stdin:      stdin,
		stdout:     stdout,
		stderr:     stderr,
		writer:     bufio.NewWriter(stdin),
		outReader:  newLineScanner(stdout, maxLine),
		errReader:  newLineScanner(stderr, maxLine),
	}

	log.Debug("Session started", "sentinel", s.marker.Sentinel())

	return s, nil
}

func newLineScanner(r io.Reader, maxLine int) *bufio.Scanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, min(64*1024, maxLine)), maxLine)

	return sc
}

// Sentinel returns the end-of-output marker of this session.
func (s *Session) Sentinel() string {
	return s.marker.Sentinel()
}

// Execute runs command followed by the configured terminator.
func (s *Session) Execute(ctx context.Context, command string) (*result.Result, error) {
	return s.ExecuteWithTerminator(ctx, s.terminator, command)
}

// ExecuteWithTerminator runs command followed by terminator instead of the
// configured one, e.g. to close a heredoc.
//
// It returns ErrSessionTerminated after Terminate and an *IOError when the
// pipes fail. An I/O failure returns as soon as either channel fails; the
// session stays running but refuses further commands with
// ErrSessionDesynchronized until Terminate. When ctx ends while the command
// is running the session is terminated, because the shell can no longer be
// brought back in step with the protocol.
func (s *Session) ExecuteWithTerminator(ctx context.Context, terminator, command string) (*result.Result, error) {
	s.execMu.Lock()
	defer s.execMu.Unlock()

	if s.HasTerminated() {
		return nil, errors.ErrSessionTerminated
	}

	if err := s.brokenErr(); err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrSessionDesynchronized, err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.log.Debug("Executing command", "command", command)

	if err := s.marker.Write(s.writer, command, terminator); err != nil {
		s.log.Error("Failed to write command to shell", "command", command, "error", err)

		ioErr := &errors.IOError{Op: "write", Stream: "stdin", Err: err}
		s.markBroken(ioErr)

		return nil, ioErr
	}

	var outLines, errLines []string

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		lines, err := s.marker.ReadUntil(s.outReader)
		if err != nil {
			return &errors.IOError{Op: "read", Stream: "stdout", Err: err}
		}

		outLines = lines

		return nil
	})

	g.Go(func() error {
		lines, err := s.marker.ReadUntil(s.errReader)
		if err != nil {
			return &errors.IOError{Op: "read", Stream: "stderr", Err: err}
		}

		errLines = lines

		return nil
	})

	done := make(chan error, 1)

	go func() {
		done <- g.Wait()
	}()

	var readErr error

	select {
	case readErr = <-done:
	case <-gctx.Done():
		select {
		case readErr = <-done:
		default:
			if ctx.Err() != nil {
				return nil, s.abandon(ctx, command, done)
			}

			// One reader failed while the other may still wait for a
			// sentinel the shell can no longer deliver.
			if ioErr, ok := stderrors.AsType[*errors.IOError](context.Cause(gctx)); ok {
				readErr = ioErr
			} else {
				readErr = <-done
			}
		}
	}

	if readErr != nil {
		s.log.Error("Failed to read command output", "command", command, "error", readErr)
		s.markBroken(readErr)

		return nil, readErr
	}

	if s.options.Stderr != nil {
		for _, line := range errLines {
			s.options.Stderr(line)
		}
	}

	s.log.Debug("Command finished", "command", command, "stdout_lines", len(outLines), "stderr_lines", len(errLines))

	return result.New(command, outLines, errLines), nil
}

// abandon terminates the session after ctx ended mid-command and waits for
// the readers to observe the closed pipes.
func (s *Session) abandon(ctx context.Context, command string, done <-chan error) error {
	s.log.Warn("Context done while command was running, terminating session", "command", command)

	_ = s.Terminate()
	<-done

	return fmt.Errorf("execute %q: %w", command, ctx.Err())
}

func (s *Session) markBroken(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.broken == nil {
		s.broken = err
	}
}

func (s *Session) brokenErr() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.broken
}

// ExecuteAll runs commands in order. The first failure aborts the batch and
// no results are returned.
func (s *Session) ExecuteAll(ctx context.Context, commands ...string) ([]*result.Result, error) {
	results := make([]*result.Result, 0, len(commands))

	for i, command := range commands {
		res, err := s.Execute(ctx, command)
		if err != nil {
			return nil, fmt.Errorf("command %d (%q): %w", i, command, err)
		}

		results = append(results, res)
	}

	return results, nil
}

// ExecutePiped runs "producer | consumer" as one command.
func (s *Session) ExecutePiped(ctx context.Context, producer, consumer string) (*result.Result, error) {
	return s.Execute(ctx, producer+" | "+consumer)
}

// ExecutePipedEcho pipes message, single-quoted, into consumer.
// Single quotes inside message are not escaped.
func (s *Session) ExecutePipedEcho(ctx context.Context, message, consumer string) (*result.Result, error) {
	return s.ExecutePiped(ctx, "echo '"+message+"'", consumer)
}

// Terminate closes the pipes and kills the shell. Close and kill failures
// are logged and otherwise ignored. Terminate may be called more than once
// and concurrently with Execute.
func (s *Session) Terminate() error {
	s.mu.Lock()
	first := !s.exited
	s.exited = true
	s.mu.Unlock()

	for _, stream := range []io.Closer{s.stdout, s.stdin, s.stderr} {
		if err := stream.Close(); err != nil {
			s.log.Debug("Ignoring stream close error", "error", err)
		}
	}

	if !first {
		return nil
	}

	s.log.Info("Terminating shell session")

	if err := s.process.Kill(); err != nil {
		s.log.Warn("Failed to kill shell process", "error", err)
	}

	return nil
}

// HasTerminated reports whether Terminate has been called.
func (s *Session) HasTerminated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.exited
}

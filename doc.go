// Package shellsession drives an interactive shell as a long-lived child
// process and runs commands in it synchronously.
//
// Each call submits one command and returns its captured stdout and stderr
// lines. The same shell process serves every call, so the working directory,
// environment and shell variables persist across commands.
//
// # Basic Usage
//
//	ctx := context.Background()
//	session, err := shellsession.New(ctx, shellsession.WithFlavor(shellsession.FlavorBash))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer session.Terminate()
//
//	if _, err := session.Execute(ctx, "cd /tmp && export GREETING=hello"); err != nil {
//	    log.Fatal(err)
//	}
//
//	res, err := session.Execute(ctx, "echo $GREETING from $(pwd)")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Print(res.Output()) // hello from /tmp
//
// # How output is delimited
//
// After every command the session asks the shell to echo a per-session
// sentinel on stdout and on stderr. Both channels are drained concurrently
// until each has produced the sentinel, so a command that writes heavily to
// stderr cannot stall the shell. A command that prints the sentinel itself
// ends its output early; sentinels are random per session, so this does not
// happen by accident.
//
// Commands run one at a time. Concurrent callers are serialized. A command
// that never finishes blocks Execute until its context ends or Terminate is
// called from another goroutine.
//
// # Lifecycle
//
// Use WithSession for automatic cleanup:
//
//	err := shellsession.WithSession(ctx, func(s shellsession.Session) error {
//	    res, err := s.ExecutePipedEcho(ctx, "hello", "tr a-z A-Z")
//	    if err != nil {
//	        return err
//	    }
//	    fmt.Print(res.Output())
//	    return nil
//	})
//
// # Logging
//
// For detailed operation tracking, use WithLogger:
//
//	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
//	session, err := shellsession.New(ctx, shellsession.WithLogger(logger))
//
// # Error Handling
//
//	res, err := session.Execute(ctx, cmd)
//	if err != nil {
//	    if errors.Is(err, shellsession.ErrSessionTerminated) {
//	        // start a new session
//	    }
//	    if ioErr, ok := errors.AsType[*shellsession.IOError](err); ok {
//	        log.Printf("%s on %s failed, discarding session", ioErr.Op, ioErr.Stream)
//	        session.Terminate()
//	    }
//	}
//
// # MCP
//
// NewMCPServer exposes a session as Model Context Protocol tools.
package shellsession

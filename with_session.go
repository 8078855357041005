package shellsession

import (
	"context"
	"fmt"
)

// WithSession manages session lifecycle with automatic cleanup.
//
// This helper starts a session with the provided options, executes the
// callback function, and terminates the session when done, whether the
// callback returns normally, returns an error, or panics.
//
// Example usage:
//
//	err := shellsession.WithSession(ctx, func(s shellsession.Session) error {
//	    if _, err := s.Execute(ctx, "cd /var/log"); err != nil {
//	        return err
//	    }
//	    res, err := s.Execute(ctx, "ls")
//	    if err != nil {
//	        return err
//	    }
//	    fmt.Print(res.Output())
//	    return nil
//	},
//	    shellsession.WithLogger(log),
//	    shellsession.WithFlavor(shellsession.FlavorBash),
//	)
func WithSession(ctx context.Context, fn func(Session) error, opts ...Option) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}

	options := applyOptions(opts)

	log := options.Logger
	if log == nil {
		log = NopLogger()
	}

	session, err := New(ctx, opts...)
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}

	defer func() {
		if termErr := session.Terminate(); termErr != nil {
			log.Warn("failed to terminate session", "error", termErr)
		}
	}()

	return fn(session)
}

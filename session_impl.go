package shellsession

import (
	"context"
	"runtime"

	"github.com/wagiedev/shell-session-go/internal/session"
)

// sessionWrapper wraps the internal session to adapt it to the public interface.
type sessionWrapper struct {
	impl *session.Session
}

// Compile-time check that *sessionWrapper implements the Session interface.
var _ Session = (*sessionWrapper)(nil)

// newSessionImpl starts the internal session. A wrapper that becomes
// unreachable without Terminate still kills its shell. Every method keeps the
// wrapper reachable until it returns.
func newSessionImpl(ctx context.Context, opts []Option) (*sessionWrapper, error) {
	impl, err := session.New(ctx, applyOptions(opts))
	if err != nil {
		return nil, err
	}

	w := &sessionWrapper{impl: impl}
	runtime.AddCleanup(w, func(s *session.Session) { _ = s.Terminate() }, impl)

	return w, nil
}

func (s *sessionWrapper) Execute(ctx context.Context, command string) (*Result, error) {
	defer runtime.KeepAlive(s)

	return s.impl.Execute(ctx, command)
}

func (s *sessionWrapper) ExecuteWithTerminator(ctx context.Context, terminator, command string) (*Result, error) {
	defer runtime.KeepAlive(s)

	return s.impl.ExecuteWithTerminator(ctx, terminator, command)
}

func (s *sessionWrapper) ExecuteAll(ctx context.Context, commands ...string) ([]*Result, error) {
	defer runtime.KeepAlive(s)

	return s.impl.ExecuteAll(ctx, commands...)
}

func (s *sessionWrapper) ExecutePiped(ctx context.Context, producer, consumer string) (*Result, error) {
	defer runtime.KeepAlive(s)

	return s.impl.ExecutePiped(ctx, producer, consumer)
}

func (s *sessionWrapper) ExecutePipedEcho(ctx context.Context, message, consumer string) (*Result, error) {
	defer runtime.KeepAlive(s)

	return s.impl.ExecutePipedEcho(ctx, message, consumer)
}

func (s *sessionWrapper) Terminate() error {
	defer runtime.KeepAlive(s)

	return s.impl.Terminate()
}

func (s *sessionWrapper) HasTerminated() bool {
	defer runtime.KeepAlive(s)

	return s.impl.HasTerminated()
}

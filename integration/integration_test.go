//go:build integration

package integration

import (
	"context"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/require"

	shellsession "github.com/wagiedev/shell-session-go"
	"github.com/wagiedev/shell-session-go/internal/config"
	"github.com/wagiedev/shell-session-go/internal/subprocess"
)

// skipIfShellNotInstalled skips the test if the flavor's binary is not on PATH.
func skipIfShellNotInstalled(t *testing.T, flavor shellsession.Flavor) {
	t.Helper()

	if _, err := exec.LookPath(string(flavor)); err != nil {
		t.Skipf("%s not installed", flavor)
	}
}

// startTracked starts a session whose process is visible to the test, so
// the pid can be checked after teardown.
func startTracked(
	t *testing.T,
	flavor shellsession.Flavor,
	opts ...shellsession.Option,
) (shellsession.Session, *subprocess.ShellProcess) {
	t.Helper()

	skipIfShellNotInstalled(t, flavor)

	proc := subprocess.NewShellProcess(shellsession.NopLogger(), &config.Options{Flavor: flavor})

	session, err := shellsession.New(context.Background(),
		append([]shellsession.Option{shellsession.WithProcess(proc)}, opts...)...)
	require.NoError(t, err)

	t.Cleanup(func() { _ = session.Terminate() })

	require.Positive(t, proc.Pid())

	return session, proc
}

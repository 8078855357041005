package subprocess

import (
	"bufio"
	"context"
	stderrors "errors"
	"io"
	"log/slog"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wagiedev/shell-session-go/internal/config"
	"github.com/wagiedev/shell-session-go/internal/errors"
)

func requireShell(t *testing.T) {
	t.Helper()

	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available on PATH")
	}
}

func TestStart_ShellNotFound(t *testing.T) {
	p := NewShellProcess(slog.Default(), &config.Options{
		LaunchCommand: "no-such-shell-xyz -s",
	})

	err := p.Start(context.Background())

	_, ok := stderrors.AsType[*errors.ShellNotFoundError](err)
	require.True(t, ok, "expected ShellNotFoundError, got %v", err)
}

func TestStart_BlankLaunchCommand(t *testing.T) {
	p := NewShellProcess(slog.Default(), &config.Options{LaunchCommand: " "})

	err := p.Start(context.Background())

	_, ok := stderrors.AsType[*errors.StartError](err)
	require.True(t, ok)
	require.ErrorIs(t, err, errors.ErrEmptyLaunchCommand)
}

func TestStart_NonexistentCwd(t *testing.T) {
	requireShell(t)

	p := NewShellProcess(slog.Default(), &config.Options{
		Cwd: "/nonexistent/path/that/does/not/exist",
	})

	err := p.Start(context.Background())

	_, ok := stderrors.AsType[*errors.StartError](err)
	require.True(t, ok, "expected StartError, got %v", err)
}

func TestStreams_BeforeStart(t *testing.T) {
	p := NewShellProcess(slog.Default(), nil)

	stdin, stdout, stderr := p.Streams()

	require.Nil(t, stdin)
	require.Nil(t, stdout)
	require.Nil(t, stderr)
	require.Zero(t, p.Pid())
	require.NoError(t, p.Kill())
}

func TestStartAndKill(t *testing.T) {
	requireShell(t)

	p := NewShellProcess(slog.Default(), &config.Options{
		Cwd: t.TempDir(),
		Env: map[string]string{"SESSION_TEST_VAR": "hello"},
	})

	require.NoError(t, p.Start(context.Background()))
	require.NotZero(t, p.Pid())

	stdin, stdout, _ := p.Streams()

	_, err := io.WriteString(stdin, "echo $SESSION_TEST_VAR\n")
	require.NoError(t, err)

	line, err := bufio.NewReader(stdout).ReadString('\n')
	require.NoError(t, err)
	require.Equal(t, "hello\n", line)

	require.NoError(t, p.Kill())
	require.NoError(t, p.Kill())
}

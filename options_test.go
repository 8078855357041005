package shellsession

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestApplyOptions(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))

	var seen []string

	options := applyOptions([]Option{
		WithLogger(logger),
		WithFlavor(FlavorBash),
		WithLaunchCommand("bash --norc -s"),
		WithShellPath("/bin/bash"),
		WithCwd("/tmp"),
		WithEnv(map[string]string{"FOO": "bar"}),
		WithTerminator("\n\n"),
		WithStderrRedirect(" 1>&2"),
		WithMaxLineSize(4096),
		WithStderrCallback(func(line string) { seen = append(seen, line) }),
	})

	require.Same(t, logger, options.Logger)
	require.Equal(t, FlavorBash, options.Flavor)
	require.Equal(t, "bash --norc -s", options.LaunchCommand)
	require.Equal(t, "/bin/bash", options.ShellPath)
	require.Equal(t, "/tmp", options.Cwd)
	require.Equal(t, map[string]string{"FOO": "bar"}, options.Env)
	require.Equal(t, "\n\n", options.ResolvedTerminator())
	require.Equal(t, " 1>&2", options.StderrRedirect)
	require.Equal(t, 4096, options.ResolvedMaxLineSize())
	require.Nil(t, options.Process)

	options.Stderr("boom")
	require.Equal(t, []string{"boom"}, seen)
}

func TestApplyOptions_Defaults(t *testing.T) {
	options := applyOptions(nil)

	require.Nil(t, options.Logger)
	require.Equal(t, "\n", options.ResolvedTerminator())
	require.Equal(t, "sh -s", options.Flavor.LaunchCommand())
}

func TestApplyOptions_LastWins(t *testing.T) {
	options := applyOptions([]Option{WithFlavor(FlavorBash), WithFlavor(FlavorSh)})

	require.Equal(t, FlavorSh, options.Flavor)
}

package shellsession

import (
	"log/slog"

	"github.com/wagiedev/shell-session-go/internal/config"
)

// Option configures Options using the functional options pattern.
type Option func(*Options)

// applyOptions applies functional options to an Options struct.
func applyOptions(opts []Option) *config.Options {
	options := &Options{}
	for _, opt := range opts {
		opt(options)
	}

	return options
}

// WithLogger sets the logger for debug output.
// If not set, logging is disabled (silent operation).
func WithLogger(logger *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

// WithFlavor selects the shell to launch (FlavorSh by default).
func WithFlavor(flavor Flavor) Option {
	return func(o *Options) {
		o.Flavor = flavor
	}
}

// WithLaunchCommand overrides the flavor's launch command, e.g. "zsh -s".
// The shell must read commands from stdin.
func WithLaunchCommand(command string) Option {
	return func(o *Options) {
		o.LaunchCommand = command
	}
}

// WithShellPath sets the explicit path to the shell binary.
// If not set, the shell is searched in PATH.
func WithShellPath(path string) Option {
	return func(o *Options) {
		o.ShellPath = path
	}
}

// WithCwd sets the initial working directory of the shell.
func WithCwd(cwd string) Option {
	return func(o *Options) {
		o.Cwd = cwd
	}
}

// WithEnv provides additional environment variables for the shell.
func WithEnv(env map[string]string) Option {
	return func(o *Options) {
		o.Env = env
	}
}

// WithTerminator sets what is written after every command ("\n" by default).
func WithTerminator(terminator string) Option {
	return func(o *Options) {
		o.Terminator = terminator
	}
}

// WithStderrRedirect sets the redirection appended to the echo that marks the
// end of stderr output (" >&2" by default). Use it with WithLaunchCommand for
// shells whose redirection syntax differs.
func WithStderrRedirect(redirect string) Option {
	return func(o *Options) {
		o.StderrRedirect = redirect
	}
}

// WithMaxLineSize sets the maximum length of a single output line.
// A longer line fails the command with an IOError.
func WithMaxLineSize(size int) Option {
	return func(o *Options) {
		o.MaxLineSize = size
	}
}

// WithStderrCallback sets a function called with every captured stderr line.
func WithStderrCallback(fn func(string)) Option {
	return func(o *Options) {
		o.Stderr = fn
	}
}

// WithProcess injects a custom Process instead of a local subprocess.
func WithProcess(process Process) Option {
	return func(o *Options) {
		o.Process = process
	}
}

package subprocess

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"sync"

	"github.com/wagiedev/shell-session-go/internal/cli"
	"github.com/wagiedev/shell-session-go/internal/config"
	"github.com/wagiedev/shell-session-go/internal/errors"
)

// ShellProcess implements config.Process by spawning a shell subprocess.
type ShellProcess struct {
	log       *slog.Logger
	options   *config.Options
	shellPath string
	args      []string
	cmd       *exec.Cmd
	stdin     io.WriteCloser
	stdout    io.ReadCloser
	stderr    io.ReadCloser
	mu        sync.Mutex
	killed    bool
}

// Compile-time verification that ShellProcess implements the Process interface.
var _ config.Process = (*ShellProcess)(nil)

// NewShellProcess creates a shell process for the given options.
// Nothing is spawned until Start.
func NewShellProcess(log *slog.Logger, options *config.Options) *ShellProcess {
	if options == nil {
		options = &config.Options{}
	}

	return &ShellProcess{
		log:     log.With("component", "shell_process"),
		options: options,
	}
}

// Start discovers the shell binary and spawns it with stdin, stdout and
// stderr pipes attached.
//
// Returns ShellNotFoundError if the binary cannot be located,
// or StartError if the process fails to start.
//
// The process is not bound to ctx; it lives until Kill.
func (p *ShellProcess) Start(ctx context.Context) error {
	name, args, err := cli.BuildArgs(p.options)
	if err != nil {
		return &errors.StartError{Err: err}
	}

	discoverer := cli.NewDiscoverer(&cli.Config{
		Shell:     name,
		ShellPath: p.options.ShellPath,
		Logger:    p.log,
	})

	shellPath, err := discoverer.Discover(ctx)
	if err != nil {
		return fmt.Errorf("discover shell: %w", err)
	}

	p.shellPath = shellPath
	p.args = args

	p.log.Info("Starting shell subprocess", "shell", shellPath, "args", args)

	//nolint:gosec // G204: the launch command is caller configuration
	cmd := exec.Command(shellPath, args...)
	cmd.Env = cli.BuildEnvironment(p.options)

	if p.options.Cwd != "" {
		cmd.Dir = p.options.Cwd
	} else if cmd.Dir, err = os.Getwd(); err != nil {
		return &errors.StartError{Err: fmt.Errorf("get working directory: %w", err)}
	}

	stdin, err := cmd.StdinPipe()
	if err != nil {
		p.log.Error("Failed to create stdin pipe", "error", err)

		return &errors.StartError{Err: fmt.Errorf("stdin pipe: %w", err)}
	}

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		p.log.Error("Failed to create stdout pipe", "error", err)

		return &errors.StartError{Err: fmt.Errorf("stdout pipe: %w", err)}
	}

	stderr, err := cmd.StderrPipe()
	if err != nil {
		p.log.Error("Failed to create stderr pipe", "error", err)

		return &errors.StartError{Err: fmt.Errorf("stderr pipe: %w", err)}
	}

	if err := cmd.Start(); err != nil {
		p.log.Error("Failed to start shell process", "error", err)

		return &errors.StartError{Err: fmt.Errorf("start process: %w", err)}
	}

	p.mu.Lock()
	p.cmd = cmd
	p.stdin = stdin
	p.stdout = stdout
	p.stderr = stderr
	p.mu.Unlock()

	p.log.Info("Shell subprocess started", "pid", cmd.Process.Pid)

	return nil
}

// Streams returns the shell's pipes. They are nil before Start.
func (p *ShellProcess) Streams() (io.WriteCloser, io.ReadCloser, io.ReadCloser) {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.stdin, p.stdout, p.stderr
}

// Pid returns the process id of the shell, or 0 if it is not running.
func (p *ShellProcess) Pid() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.cmd == nil || p.cmd.Process == nil {
		return 0
	}

	return p.cmd.Process.Pid
}

// Kill terminates the shell using SIGKILL and reaps it.
// It's safe to call Kill multiple times or on an already-exited process.
func (p *ShellProcess) Kill() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.cmd == nil || p.cmd.Process == nil || p.killed {
		return nil
	}

	p.killed = true
	pid := p.cmd.Process.Pid

	p.log.Debug("Killing shell process", "pid", pid)

	if err := p.cmd.Process.Kill(); err != nil && !stderrors.Is(err, os.ErrProcessDone) {
		return fmt.Errorf("kill shell process (pid %d): %w", pid, err)
	}

	// The exit status of a killed shell carries no information.
	if err := p.cmd.Wait(); err != nil {
		p.log.Debug("Shell process exited", "pid", pid, "error", err)
	}

	return nil
}

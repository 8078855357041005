package cli

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/wagiedev/shell-session-go/internal/errors"
)

// commonDirs are searched when the shell is not on PATH.
var commonDirs = []string{"/bin", "/usr/bin", "/usr/local/bin"}

// Config holds configuration for shell discovery.
type Config struct {
	// Shell is the binary name to look for, e.g. "sh" or "bash".
	// A name containing a path separator is treated like ShellPath.
	Shell string

	// ShellPath is an explicit shell path that skips the search.
	ShellPath string

	// Logger is an optional logger for discovery operations.
	// If nil, a no-op logger is used.
	Logger *slog.Logger
}

// Discoverer locates the shell binary.
type Discoverer interface {
	// Discover returns the path of the shell binary or a *errors.ShellNotFoundError.
	Discover(ctx context.Context) (string, error)
}

type discoverer struct {
	cfg *Config
	log *slog.Logger
}

// Compile-time verification that discoverer implements Discoverer.
var _ Discoverer = (*discoverer)(nil)

// NewDiscoverer creates a new shell discoverer with the given configuration.
func NewDiscoverer(cfg *Config) Discoverer {
	if cfg == nil {
		cfg = &Config{}
	}

	log := cfg.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &discoverer{
		cfg: cfg,
		log: log,
	}
}

// Discover locates the shell binary.
func (d *discoverer) Discover(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	explicit := d.cfg.ShellPath
	if explicit == "" && filepath.Base(d.cfg.Shell) != d.cfg.Shell {
		explicit = d.cfg.Shell
	}

	if explicit != "" {
		d.log.Debug("Using explicit shell path", "shell_path", explicit)

		if info, err := os.Stat(explicit); err == nil && !info.IsDir() {
			return explicit, nil
		}

		return "", &errors.ShellNotFoundError{Shell: d.cfg.Shell, SearchedPaths: []string{explicit}}
	}

	name := d.cfg.Shell
	if name == "" {
		name = "sh"
	}

	searchedPaths := make([]string, 0, len(commonDirs)+1)

	if path, err := exec.LookPath(name); err == nil {
		d.log.Debug("Found shell in PATH", "shell", name, "path", path)

		return path, nil
	}

	searchedPaths = append(searchedPaths, "$PATH")

	for _, dir := range commonDirs {
		path := filepath.Join(dir, name)
		searchedPaths = append(searchedPaths, path)

		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			d.log.Debug("Found shell at common path", "path", path)

			return path, nil
		}
	}

	d.log.Warn("Shell not found in any searched paths", "shell", name, "searched_paths", searchedPaths)

	return "", &errors.ShellNotFoundError{Shell: name, SearchedPaths: searchedPaths}
}

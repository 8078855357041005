package shellsession

import (
	"github.com/wagiedev/shell-session-go/internal/config"
	"github.com/wagiedev/shell-session-go/internal/result"
)

// Result holds the command text and the stdout and stderr lines it produced.
// Output() and Error() join the lines, each followed by a separator
// (default "\n").
type Result = result.Result

// Options configures a session. Build it with Option functions.
type Options = config.Options

// Flavor identifies a shell and its launch command.
type Flavor = config.Flavor

// Supported shell flavors.
const (
	// FlavorSh launches "sh -s".
	FlavorSh = config.FlavorSh
	// FlavorBash launches "bash -s".
	FlavorBash = config.FlavorBash
)

// ParseFlavor converts a name such as "bash" into a Flavor.
func ParseFlavor(name string) (Flavor, error) {
	return config.ParseFlavor(name)
}

// Process is the boundary between a session and the shell it drives.
// Implement this to run the shell somewhere other than a local subprocess,
// or to substitute a fake shell in tests. Inject it with WithProcess.
type Process = config.Process

package config

import (
	"fmt"
	"strings"
)

// Flavor identifies a supported shell and how to launch it so that it reads
// commands from stdin.
type Flavor string

const (
	// FlavorSh launches the POSIX shell.
	FlavorSh Flavor = "sh"
	// FlavorBash launches bash.
	FlavorBash Flavor = "bash"
)

var launchCommands = map[Flavor]string{
	FlavorSh:   "sh -s",
	FlavorBash: "bash -s",
}

// LaunchCommand returns the command line that starts the shell.
// Unknown flavors are launched as "<flavor> -s".
func (f Flavor) LaunchCommand() string {
	if f == "" {
		f = FlavorSh
	}

	if cmd, ok := launchCommands[f]; ok {
		return cmd
	}

	return string(f) + " -s"
}

// ParseFlavor converts a name such as "bash" into a Flavor.
func ParseFlavor(name string) (Flavor, error) {
	switch f := Flavor(strings.ToLower(strings.TrimSpace(name))); f {
	case FlavorSh, FlavorBash:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported shell flavor %q", name)
	}
}

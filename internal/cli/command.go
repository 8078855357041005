package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/wagiedev/shell-session-go/internal/config"
	"github.com/wagiedev/shell-session-go/internal/errors"
)

// BuildArgs splits the effective launch command into the shell name and its
// arguments. An explicit LaunchCommand wins over the flavor.
func BuildArgs(options *config.Options) (string, []string, error) {
	launch := ""
	if options != nil {
		launch = options.LaunchCommand
		if launch == "" {
			launch = options.Flavor.LaunchCommand()
		}
	}

	if launch == "" {
		launch = config.FlavorSh.LaunchCommand()
	}

	fields := strings.Fields(launch)
	if len(fields) == 0 {
		return "", nil, errors.ErrEmptyLaunchCommand
	}

	return fields[0], fields[1:], nil
}

// BuildEnvironment returns the shell environment: the current process
// environment overlaid with options.Env.
func BuildEnvironment(options *config.Options) []string {
	env := os.Environ()

	if options == nil {
		return env
	}

	for key, value := range options.Env {
		env = append(env, fmt.Sprintf("%s=%s", key, value))
	}

	return env
}

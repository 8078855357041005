// Package subprocess runs a shell as a local child process.
//
// ShellProcess implements config.Process by spawning the shell with os/exec
// and exposing its stdin, stdout and stderr pipes. It handles discovery of
// the shell binary, environment setup and forced termination.
package subprocess

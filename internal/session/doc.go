// Package session implements the interactive shell session.
//
// A Session owns one shell process and its three pipes. Commands are executed
// strictly one at a time: each command is written to the shell's stdin
// followed by the marker instructions, then stdout and stderr are drained
// concurrently until both channels have produced the sentinel.
//
// Draining both channels at once matters: a command that fills the stderr
// pipe before printing anything on stdout would otherwise block the shell
// while the session waits on stdout.
package session

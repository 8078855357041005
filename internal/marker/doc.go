// Package marker implements the end-of-output protocol used to split the
// shell's unbounded stdout and stderr streams into per-command results.
//
// After each command the session asks the shell to echo a sentinel on both
// channels. A reader consumes lines until it sees the sentinel, which marks
// the end of that command's output on that channel:
//
//	m := marker.New()
//	if err := m.Write(stdin, "ls -la", "\n"); err != nil {
//	    return err
//	}
//	lines, err := m.ReadUntil(stdoutScanner)
//
// A command that itself prints the sentinel ends its output early. Sentinels
// are ULID based and generated per session, so this only happens on purpose.
package marker

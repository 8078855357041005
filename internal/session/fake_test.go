package session

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
)

// fakeShell is an in-memory config.Process that understands a tiny command
// language over unbuffered pipes:
//
//	echo TEXT        prints TEXT on stdout
//	echo TEXT >&2    prints TEXT on stderr (also " 1>&2")
//	burst N          prints N lines on stderr, then one line on stdout
//	long N           prints one line of N bytes on stdout
//	hang             stops processing input until Kill
//	die              closes stdout and stderr
type fakeShell struct {
	startErr error

	inR  *io.PipeReader
	inW  *io.PipeWriter
	outR *io.PipeReader
	outW *io.PipeWriter
	errR *io.PipeReader
	errW *io.PipeWriter

	mu       sync.Mutex
	commands []string
	kills    int
	stop     chan struct{}
	stopOnce sync.Once
}

func newFakeShell() *fakeShell {
	f := &fakeShell{stop: make(chan struct{})}
	f.inR, f.inW = io.Pipe()
	f.outR, f.outW = io.Pipe()
	f.errR, f.errW = io.Pipe()

	return f
}

func (f *fakeShell) Start(_ context.Context) error {
	if f.startErr != nil {
		return f.startErr
	}

	go f.run()

	return nil
}

func (f *fakeShell) Streams() (io.WriteCloser, io.ReadCloser, io.ReadCloser) {
	return f.inW, f.outR, f.errR
}

func (f *fakeShell) Kill() error {
	f.mu.Lock()
	f.kills++
	f.mu.Unlock()

	f.stopOnce.Do(func() { close(f.stop) })

	_ = f.inR.Close()
	_ = f.outW.Close()
	_ = f.errW.Close()

	return nil
}

func (f *fakeShell) killCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.kills
}

func (f *fakeShell) received() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]string(nil), f.commands...)
}

func (f *fakeShell) run() {
	sc := bufio.NewScanner(f.inR)
	for sc.Scan() {
		line := sc.Text()

		f.mu.Lock()
		f.commands = append(f.commands, line)
		f.mu.Unlock()

		if err := f.handle(line); err != nil {
			return
		}
	}
}

func (f *fakeShell) handle(line string) error {
	switch {
	case line == "hang":
		<-f.stop

		return io.EOF
	case line == "die":
		_ = f.outW.Close()
		_ = f.errW.Close()

		return io.EOF
	case strings.HasPrefix(line, "burst "):
		n, _ := strconv.Atoi(strings.TrimPrefix(line, "burst "))
		for i := range n {
			if _, err := fmt.Fprintf(f.errW, "err-%d\n", i); err != nil {
				return err
			}
		}

		_, err := io.WriteString(f.outW, "burst done\n")

		return err
	case strings.HasPrefix(line, "long "):
		n, _ := strconv.Atoi(strings.TrimPrefix(line, "long "))
		_, err := io.WriteString(f.outW, strings.Repeat("x", n)+"\n")

		return err
	case strings.HasPrefix(line, "echo ") && strings.HasSuffix(line, " 1>&2"):
		_, err := io.WriteString(f.errW, strings.TrimSuffix(strings.TrimPrefix(line, "echo "), " 1>&2")+"\n")

		return err
	case strings.HasPrefix(line, "echo ") && strings.HasSuffix(line, " >&2"):
		_, err := io.WriteString(f.errW, strings.TrimSuffix(strings.TrimPrefix(line, "echo "), " >&2")+"\n")

		return err
	case strings.HasPrefix(line, "echo "):
		_, err := io.WriteString(f.outW, strings.TrimPrefix(line, "echo ")+"\n")

		return err
	default:
		_, err := io.WriteString(f.errW, "fake: "+line+": not found\n")

		return err
	}
}

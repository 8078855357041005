package marker

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew_SentinelFormat(t *testing.T) {
	m := New()

	require.True(t, strings.HasPrefix(m.Sentinel(), Prefix))
	require.Len(t, m.Sentinel(), len(Prefix)+26)
	require.NotContains(t, m.Sentinel(), " ")
}

func TestNew_SentinelsDiffer(t *testing.T) {
	seen := make(map[string]struct{}, 100)

	for range 100 {
		s := New().Sentinel()
		_, dup := seen[s]
		require.False(t, dup, "duplicate sentinel %s", s)
		seen[s] = struct{}{}
	}
}

func TestWrite_WireFormat(t *testing.T) {
	m := New()

	var buf bytes.Buffer

	w := bufio.NewWriter(&buf)
	require.NoError(t, m.Write(w, "echo FOO", "\n"))

	s := m.Sentinel()
	require.Equal(t, "echo FOO\necho "+s+"\necho "+s+" >&2\n", buf.String())
}

func TestWrite_CustomTerminatorAndRedirect(t *testing.T) {
	m := New().WithStderrRedirect(" 1>&2")

	var buf bytes.Buffer

	w := bufio.NewWriter(&buf)
	require.NoError(t, m.Write(w, "cat <<EOF\nhello", "\nEOF\n"))

	s := m.Sentinel()
	require.Equal(t, "cat <<EOF\nhello\nEOF\necho "+s+"\necho "+s+" 1>&2\n", buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("broken pipe") }

func TestWrite_FlushError(t *testing.T) {
	m := New()
	w := bufio.NewWriter(failingWriter{})

	err := m.Write(w, "echo FOO", "\n")
	require.Error(t, err)
	require.Contains(t, err.Error(), "broken pipe")
}

func TestReadUntil_StopsAtSentinel(t *testing.T) {
	m := New()
	input := "FOO\nBAR\n" + m.Sentinel() + "\nNEXT\n" + m.Sentinel() + "\n"
	sc := bufio.NewScanner(strings.NewReader(input))

	first, err := m.ReadUntil(sc)
	require.NoError(t, err)
	require.Equal(t, []string{"FOO", "BAR"}, first)

	second, err := m.ReadUntil(sc)
	require.NoError(t, err)
	require.Equal(t, []string{"NEXT"}, second)
}

func TestReadUntil_EmptyOutput(t *testing.T) {
	m := New()
	sc := bufio.NewScanner(strings.NewReader(m.Sentinel() + "\n"))

	lines, err := m.ReadUntil(sc)
	require.NoError(t, err)
	require.NotNil(t, lines)
	require.Empty(t, lines)
}

func TestReadUntil_SentinelMustMatchWholeLine(t *testing.T) {
	m := New()
	input := " " + m.Sentinel() + "\n" + m.Sentinel() + "x\n" + m.Sentinel() + "\n"
	sc := bufio.NewScanner(strings.NewReader(input))

	lines, err := m.ReadUntil(sc)
	require.NoError(t, err)
	require.Equal(t, []string{" " + m.Sentinel(), m.Sentinel() + "x"}, lines)
}

func TestReadUntil_CRLF(t *testing.T) {
	m := New()
	sc := bufio.NewScanner(strings.NewReader("FOO\r\n" + m.Sentinel() + "\r\n"))

	lines, err := m.ReadUntil(sc)
	require.NoError(t, err)
	require.Equal(t, []string{"FOO"}, lines)
}

func TestReadUntil_EOFBeforeSentinel(t *testing.T) {
	m := New()
	sc := bufio.NewScanner(strings.NewReader("FOO\nBAR\n"))

	lines, err := m.ReadUntil(sc)
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)
	require.Nil(t, lines)
}

func TestReadUntil_LineTooLong(t *testing.T) {
	m := New()
	sc := bufio.NewScanner(strings.NewReader(strings.Repeat("x", 128) + "\n" + m.Sentinel() + "\n"))
	sc.Buffer(make([]byte, 16), 64)

	_, err := m.ReadUntil(sc)
	require.ErrorIs(t, err, bufio.ErrTooLong)
}

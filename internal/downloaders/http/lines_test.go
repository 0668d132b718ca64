package rawhttp

import (
	"bufio"
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(s *LineScanner) []string {
	var lines []string
	for line := range s.Lines() {
		lines = append(lines, line)
	}
	return lines
}

func TestLineScanner(t *testing.T) {
	t.Run("crlf lines then clean eof", func(t *testing.T) {
		s := NewLineScanner(bufio.NewReader(strings.NewReader("one\r\ntwo\r\n\r\n")))
		assert.Equal(t, []string{"one", "two", ""}, collect(s))
		assert.ErrorIs(t, s.Err(), io.EOF)
		assert.Empty(t, s.Partial())
	})

	t.Run("bare lf stays in line", func(t *testing.T) {
		s := NewLineScanner(bufio.NewReader(strings.NewReader("a\nb\r\n")))
		assert.Equal(t, []string{"a\nb"}, collect(s))
	})

	t.Run("unterminated tail", func(t *testing.T) {
		s := NewLineScanner(bufio.NewReader(strings.NewReader("done\r\nhalf")))
		assert.Equal(t, []string{"done"}, collect(s))
		assert.ErrorIs(t, s.Err(), io.ErrUnexpectedEOF)
		assert.Equal(t, "half", s.Partial())
	})

	t.Run("line longer than buffer", func(t *testing.T) {
		long := strings.Repeat("x", 20000)
		s := NewLineScanner(bufio.NewReaderSize(strings.NewReader(long+"\r\n"), 16))
		lines := collect(s)
		require.Len(t, lines, 1)
		assert.Equal(t, long, lines[0])
	})

	t.Run("early stop leaves rest in reader", func(t *testing.T) {
		r := bufio.NewReader(strings.NewReader("head\r\n\r\npayload\r\nmore"))
		s := NewLineScanner(r)
		for line := range s.Lines() {
			if line == "" {
				break
			}
		}
		assert.NoError(t, s.Err())
		rest, err := io.ReadAll(r)
		require.NoError(t, err)
		assert.Equal(t, "payload\r\nmore", string(rest))
	})

	t.Run("read error", func(t *testing.T) {
		boom := errors.New("boom")
		s := NewLineScanner(bufio.NewReader(iotest.ErrReader(boom)))
		assert.Empty(t, collect(s))
		assert.ErrorIs(t, s.Err(), boom)
	})
}

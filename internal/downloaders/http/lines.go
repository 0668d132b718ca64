package rawhttp

import (
	"bufio"
	"errors"
	"io"
	"iter"
)

// LineScanner yields CRLF-terminated lines from a buffered reader. A bare LF
// does not end a line. Bytes after the last yielded line stay in the reader,
// so the payload can be read from the same bufio.Reader afterwards.
type LineScanner struct {
	r       *bufio.Reader
	err     error
	partial string
}

func NewLineScanner(r *bufio.Reader) *LineScanner {
	return &LineScanner{r: r}
}

// Lines yields each line without its terminator. Iteration ends early when
// the consumer stops, or when the stream fails; see Err.
func (s *LineScanner) Lines() iter.Seq[string] {
	return func(yield func(string) bool) {
		for {
			line, err := s.readLine()
			if err != nil {
				s.err = err
				return
			}
			if !yield(line) {
				return
			}
		}
	}
}

// Err returns io.EOF if the stream ended cleanly between lines,
// io.ErrUnexpectedEOF if it ended inside a line, and the read error otherwise.
// It is nil while the consumer is the one that stopped.
func (s *LineScanner) Err() error {
	return s.err
}

// Partial holds the bytes of an unterminated line seen before the stream failed.
func (s *LineScanner) Partial() string {
	return s.partial
}

func (s *LineScanner) readLine() (string, error) {
	var line []byte
	for {
		chunk, err := s.r.ReadSlice('\n')
		line = append(line, chunk...)
		switch {
		case err == nil:
			if n := len(line); n >= 2 && line[n-2] == '\r' {
				return string(line[:n-2]), nil
			}
		case errors.Is(err, bufio.ErrBufferFull):
		default:
			s.partial = string(line)
			if errors.Is(err, io.EOF) && len(line) > 0 {
				err = io.ErrUnexpectedEOF
			}
			return "", err
		}
	}
}

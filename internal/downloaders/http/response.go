package rawhttp

import (
	"bufio"
	"errors"
	"io"
	"strconv"
	"strings"
)

const (
	successCode      = 200
	successPhrase    = "OK"
	payloadChunkSize = 4096
)

type Status struct {
	Line    string
	Version string
	Code    int
	Phrase  string
	Success bool
}

// Head is the status line plus the raw header lines, kept for display only.
type Head struct {
	Status  Status
	Headers []string
}

type headState int

const (
	readingStatusLine headState = iota
	readingHeaders
	doneSuccess
	doneFailure
)

func (s headState) String() string {
	switch s {
	case readingStatusLine:
		return "status line"
	case readingHeaders:
		return "headers"
	case doneSuccess:
		return "done (success)"
	default:
		return "done (failure)"
	}
}

// ParseStatusLine splits "<version> <code> <phrase>". Success is strict:
// code 200 with phrase OK, nothing else.
func ParseStatusLine(line string) (Status, error) {
	status := Status{Line: line}
	parts := strings.SplitN(line, " ", 3)
	if len(parts) < 2 {
		return status, &MalformedStatusError{Line: line}
	}
	code, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return status, &MalformedStatusError{Line: line}
	}
	status.Version = parts[0]
	status.Code = code
	if len(parts) == 3 {
		status.Phrase = strings.TrimSpace(parts[2])
	}
	status.Success = status.Code == successCode && status.Phrase == successPhrase
	return status, nil
}

// ReadHead consumes the status line and headers up to and including the
// blank line. The head is drained fully even when the status is a failure.
// On an unparseable status line the drained head is returned together with a
// MalformedStatusError. Stream failures return a nil head.
func ReadHead(r *bufio.Reader) (*Head, error) {
	scanner := NewLineScanner(r)
	head := &Head{}
	state := readingStatusLine
	var statusErr error

	for line := range scanner.Lines() {
		if state == readingStatusLine {
			head.Status, statusErr = ParseStatusLine(line)
			state = readingHeaders
		} else if line != "" {
			head.Headers = append(head.Headers, line)
		}
		if line == "" {
			state = doneFailure
			if head.Status.Success {
				state = doneSuccess
			}
			break
		}
	}

	if state == readingStatusLine || state == readingHeaders {
		err := scanner.Err()
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, &IncompleteResponseError{Stage: state.String(), Received: scanner.Partial()}
		}
		return nil, &TransportError{Op: "reading response " + state.String(), Err: err}
	}
	if statusErr != nil {
		return head, statusErr
	}
	return head, nil
}

// StreamPayload copies r to w in fixed-size chunks until end of stream.
// Errors from w are returned as-is; read errors become TransportError.
func StreamPayload(r io.Reader, w io.Writer) (int64, error) {
	buffer := make([]byte, payloadChunkSize)
	var written int64
	for {
		bytesRead, readErr := r.Read(buffer)
		if bytesRead > 0 {
			if _, writeErr := w.Write(buffer[:bytesRead]); writeErr != nil {
				return written, writeErr
			}
			written += int64(bytesRead)
		}
		if readErr != nil {
			if errors.Is(readErr, io.EOF) {
				return written, nil
			}
			return written, &TransportError{Op: "reading payload", Err: readErr}
		}
	}
}

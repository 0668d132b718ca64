package rawhttp

import "fmt"

// MalformedURLError reports input that is not scheme://host[:port]/path.
// It is raised before any connection attempt.
type MalformedURLError struct {
	URL    string
	Reason string
}

func (e *MalformedURLError) Error() string {
	return fmt.Sprintf("malformed URL %q: %s", e.URL, e.Reason)
}

type UnsupportedProtocolError struct {
	Protocol string
}

func (e *UnsupportedProtocolError) Error() string {
	return fmt.Sprintf("unsupported protocol: %q", e.Protocol)
}

// ConnectError covers name resolution, TCP connect and TLS handshake failures.
type ConnectError struct {
	Addr string
	Err  error
}

func (e *ConnectError) Error() string {
	return fmt.Sprintf("connecting to %s: %v", e.Addr, e.Err)
}

func (e *ConnectError) Unwrap() error { return e.Err }

// TransportError is a read or write failure on an established connection.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// IncompleteResponseError means the stream ended before the blank line that
// terminates the response head.
type IncompleteResponseError struct {
	Stage    string
	Received string
}

func (e *IncompleteResponseError) Error() string {
	if e.Received == "" {
		return fmt.Sprintf("connection closed while reading %s", e.Stage)
	}
	return fmt.Sprintf("connection closed while reading %s (received %q)", e.Stage, e.Received)
}

type MalformedStatusError struct {
	Line string
}

func (e *MalformedStatusError) Error() string {
	return fmt.Sprintf("malformed status line: %q", e.Line)
}

// HTTPStatusFailure is the normal negative outcome: the server answered with
// something other than 200 OK.
type HTTPStatusFailure struct {
	Code   int
	Phrase string
}

func (e *HTTPStatusFailure) Error() string {
	return fmt.Sprintf("server responded %d %s", e.Code, e.Phrase)
}

// SinkError wraps local output failures (create, write, commit).
type SinkError struct {
	Path string
	Op   string
	Err  error
}

func (e *SinkError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *SinkError) Unwrap() error { return e.Err }

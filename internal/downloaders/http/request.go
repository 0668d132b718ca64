package rawhttp

import (
	"fmt"
	"strings"
)

const crlf = "\r\n"

// BuildGetRequest formats the only request this client sends. Connection:
// close makes the server end the stream after the payload, which is how the
// reader finds the end of the body.
func BuildGetRequest(host, path string) string {
	lines := []string{
		fmt.Sprintf("GET /%s HTTP/1.1", path),
		"Host: " + host,
		"Connection: close",
		"", // end of headers, no body
	}
	return strings.Join(lines, crlf) + crlf
}

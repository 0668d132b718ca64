package output

import (
	"fmt"
	"io"
	"strings"
)

const indent = "  "

// Console echoes the raw exchange for a human reader. Nothing downstream
// parses it.
type Console struct {
	w io.Writer
}

func NewConsole(w io.Writer) *Console {
	return &Console{w: w}
}

func (c *Console) ShowRequest(request string) {
	fmt.Fprintln(c.w, FHeader("Request"))
	for _, line := range strings.Split(strings.TrimRight(request, "\r\n"), "\r\n") {
		fmt.Fprintln(c.w, indent+FStream(line))
	}
}

func (c *Console) ShowResponseHead(statusLine string, success bool, headers []string) {
	fmt.Fprintln(c.w, FHeader("Response"))
	symbol, status := FSuccess(StyleSymbols["pass"]), FSuccess(statusLine)
	if !success {
		symbol, status = FError(StyleSymbols["fail"]), FError(statusLine)
	}
	fmt.Fprintf(c.w, "%s%s %s\n", indent, symbol, status)
	for _, header := range headers {
		fmt.Fprintln(c.w, indent+FDebug(header))
	}
}

func (c *Console) Success(text string) {
	fmt.Fprintf(c.w, "%s %s\n", FSuccess(StyleSymbols["pass"]), FSuccess(text))
}

func (c *Console) Error(text string) {
	fmt.Fprintf(c.w, "%s %s\n", FError(StyleSymbols["fail"]), FError(text))
}

func (c *Console) Info(text string) {
	fmt.Fprintf(c.w, "%s %s\n", FInfo(StyleSymbols["info"]), FInfo(text))
}

package rawhttp

import (
	"fmt"
	"net"
	"regexp"
	"strconv"
	"strings"
)

const (
	ProtocolHTTP  = "http"
	ProtocolHTTPS = "https"
)

var defaultPorts = map[string]int{
	ProtocolHTTP:  80,
	ProtocolHTTPS: 443,
}

// groups: scheme, host, port, path
var urlPattern = regexp.MustCompile(`^([a-zA-Z]+)://([^:/\s]+)(?::(\d*))?/(\S+)$`)

// Target is a parsed download URL. Path has no leading slash.
type Target struct {
	Protocol string
	Host     string
	Port     int
	Path     string
}

// Parse splits raw into protocol, host, port and path. Protocol and host are
// lowercased. A missing port becomes 80 or 443; for any other protocol it
// stays 0 and the opener rejects the target.
func Parse(raw string) (*Target, error) {
	if !strings.Contains(raw, "://") {
		return nil, &MalformedURLError{URL: raw, Reason: "missing :// separator"}
	}
	matches := urlPattern.FindStringSubmatch(raw)
	if matches == nil {
		return nil, &MalformedURLError{URL: raw, Reason: "expected scheme://host[:port]/path"}
	}
	target := &Target{
		Protocol: strings.ToLower(matches[1]),
		Host:     strings.ToLower(matches[2]),
		Path:     matches[4],
	}
	if matches[3] == "" {
		target.Port = defaultPorts[target.Protocol]
		return target, nil
	}
	port, err := strconv.Atoi(matches[3])
	if err != nil || port < 1 || port > 65535 {
		return nil, &MalformedURLError{URL: raw, Reason: fmt.Sprintf("invalid port %q", matches[3])}
	}
	target.Port = port
	return target, nil
}

func (t *Target) Address() string {
	return net.JoinHostPort(t.Host, strconv.Itoa(t.Port))
}

// Filename is the last segment of the path. Trailing slashes are ignored, so
// "docs/guide/" names "guide". It is empty when the path is only slashes.
func (t *Target) Filename() string {
	path := strings.TrimRight(t.Path, "/")
	return path[strings.LastIndex(path, "/")+1:]
}

func (t *Target) String() string {
	return fmt.Sprintf("%s://%s/%s", t.Protocol, t.Address(), t.Path)
}

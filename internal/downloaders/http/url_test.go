package rawhttp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input    string
		expected Target
	}{
		{
			input:    "http://example.com:8080/index.html",
			expected: Target{Protocol: "http", Host: "example.com", Port: 8080, Path: "index.html"},
		},
		{
			input:    "HTTPS://Example.COM:8443/Docs/Guide.PDF",
			expected: Target{Protocol: "https", Host: "example.com", Port: 8443, Path: "Docs/Guide.PDF"},
		},
		{
			input:    "http://example.com/a/b/c.txt",
			expected: Target{Protocol: "http", Host: "example.com", Port: 80, Path: "a/b/c.txt"},
		},
		{
			input:    "https://example.com/file",
			expected: Target{Protocol: "https", Host: "example.com", Port: 443, Path: "file"},
		},
		{
			input:    "http://127.0.0.1:1/x?y=z",
			expected: Target{Protocol: "http", Host: "127.0.0.1", Port: 1, Path: "x?y=z"},
		},
		{
			input:    "http://example.com:/empty-port.txt",
			expected: Target{Protocol: "http", Host: "example.com", Port: 80, Path: "empty-port.txt"},
		},
		{
			input:    "ftp://example.com/pub/file.tar",
			expected: Target{Protocol: "ftp", Host: "example.com", Port: 0, Path: "pub/file.tar"},
		},
	}
	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			target, err := Parse(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, *target)
		})
	}
}

func TestParse_Malformed(t *testing.T) {
	inputs := []string{
		"",
		"example.com/file.txt",
		"http:/example.com/file.txt",
		"http://example.com",
		"http://example.com/",
		"http://example.com:80",
		"http:///file.txt",
		"h2c3://example.com/file.txt",
		"http://example.com:abc/file.txt",
		"http://example.com:0/file.txt",
		"http://example.com:65536/file.txt",
		"http://example.com:99999999999999999999/file.txt",
		"http://example.com/has space.txt",
		" http://example.com/file.txt",
	}
	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			target, err := Parse(input)
			assert.Nil(t, target)
			var malformed *MalformedURLError
			require.ErrorAs(t, err, &malformed)
			assert.Equal(t, input, malformed.URL)
		})
	}
}

func TestTarget_Filename(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"file.txt", "file.txt"},
		{"a/b/file.txt", "file.txt"},
		{"a/b/", "b"},
		{"archive.tar.gz", "archive.tar.gz"},
		{"//", ""},
	}
	for _, tc := range tests {
		target := &Target{Protocol: "http", Host: "h", Port: 80, Path: tc.path}
		assert.Equal(t, tc.want, target.Filename(), "path %q", tc.path)
	}
}

func TestTarget_AddressAndString(t *testing.T) {
	target := &Target{Protocol: "https", Host: "example.com", Port: 443, Path: "a/b.txt"}
	assert.Equal(t, "example.com:443", target.Address())
	assert.Equal(t, "https://example.com:443/a/b.txt", target.String())
}

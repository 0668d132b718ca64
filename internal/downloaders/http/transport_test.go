package rawhttp

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func targetFor(t *testing.T, protocol, addr, path string) *Target {
	t.Helper()
	host, portStr, err := net.SplitHostPort(addr)
	require.NoError(t, err)
	port, err := strconv.Atoi(portStr)
	require.NoError(t, err)
	return &Target{Protocol: protocol, Host: host, Port: port, Path: path}
}

func TestNetOpener_UnsupportedProtocol(t *testing.T) {
	_, err := (&NetOpener{}).Open(context.Background(), &Target{Protocol: "ftp", Host: "example.com", Path: "f"})
	var unsupported *UnsupportedProtocolError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, "ftp", unsupported.Protocol)
}

func TestNetOpener_ConnectionRefused(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	_, err = (&NetOpener{}).Open(context.Background(), targetFor(t, ProtocolHTTP, addr, "f"))
	var connectErr *ConnectError
	require.ErrorAs(t, err, &connectErr)
	assert.Equal(t, addr, connectErr.Addr)
}

func TestNetOpener_PlainHalfClose(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	received := make(chan string, 1)
	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		data, _ := io.ReadAll(conn) // returns once the client shuts down its write side
		received <- string(data)
		conn.Write([]byte("pong"))
	}()

	conn, err := (&NetOpener{}).Open(context.Background(), targetFor(t, ProtocolHTTP, ln.Addr().String(), "f"))
	require.NoError(t, err)
	defer conn.Close()

	_, err = conn.Writer().WriteString("ping")
	require.NoError(t, err)
	require.NoError(t, conn.Writer().Flush())
	require.NoError(t, conn.CloseWrite())
	assert.Equal(t, "ping", <-received)

	reply, err := io.ReadAll(conn.Reader())
	require.NoError(t, err)
	assert.Equal(t, "pong", string(reply))

	assert.NoError(t, conn.CloseWrite(), "second close is a no-op")
	assert.NoError(t, conn.CloseRead())
}

func TestNetOpener_TLS(t *testing.T) {
	srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()
	addr := srv.Listener.Addr().String()

	t.Run("trusted", func(t *testing.T) {
		pool := x509.NewCertPool()
		pool.AddCert(srv.Certificate())
		opener := &NetOpener{TLSConfig: &tls.Config{RootCAs: pool}}
		conn, err := opener.Open(context.Background(), targetFor(t, ProtocolHTTPS, addr, "f"))
		require.NoError(t, err)
		assert.NoError(t, conn.Close())
	})

	t.Run("untrusted certificate is a connect error", func(t *testing.T) {
		_, err := (&NetOpener{}).Open(context.Background(), targetFor(t, ProtocolHTTPS, addr, "f"))
		var connectErr *ConnectError
		require.ErrorAs(t, err, &connectErr)
		assert.ErrorContains(t, err, "tls handshake")
	})
}

package rawhttp

import (
	"bufio"
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net"
)

// Stream is a bidirectional byte stream whose write side can be shut down on
// its own. *net.TCPConn and *tls.Conn both satisfy it.
type Stream interface {
	io.ReadWriteCloser
	CloseWrite() error
}

type Opener interface {
	Open(ctx context.Context, target *Target) (*Connection, error)
}

// NetOpener dials real sockets. TLS uses the platform trust store unless
// TLSConfig says otherwise.
type NetOpener struct {
	Dialer    *net.Dialer
	TLSConfig *tls.Config
}

func (o *NetOpener) Open(ctx context.Context, target *Target) (*Connection, error) {
	if _, ok := defaultPorts[target.Protocol]; !ok {
		return nil, &UnsupportedProtocolError{Protocol: target.Protocol}
	}
	addr := target.Address()
	dialer := o.Dialer
	if dialer == nil {
		dialer = &net.Dialer{}
	}
	raw, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, &ConnectError{Addr: addr, Err: err}
	}
	if target.Protocol == ProtocolHTTP {
		stream, ok := raw.(Stream)
		if !ok {
			raw.Close()
			return nil, &ConnectError{Addr: addr, Err: fmt.Errorf("connection type %T cannot half-close", raw)}
		}
		return NewConnection(stream), nil
	}

	cfg := &tls.Config{}
	if o.TLSConfig != nil {
		cfg = o.TLSConfig.Clone()
	}
	if cfg.ServerName == "" {
		cfg.ServerName = target.Host
	}
	tlsConn := tls.Client(raw, cfg)
	if err := tlsConn.HandshakeContext(ctx); err != nil {
		raw.Close()
		return nil, &ConnectError{Addr: addr, Err: fmt.Errorf("tls handshake: %w", err)}
	}
	return NewConnection(tlsConn), nil
}

// Connection owns one stream and exposes buffered read and write ends that
// can be released independently. Each close runs at most once.
type Connection struct {
	stream      Stream
	reader      *bufio.Reader
	writer      *bufio.Writer
	writeClosed bool
	readClosed  bool
	closed      bool
}

func NewConnection(stream Stream) *Connection {
	return &Connection{
		stream: stream,
		reader: bufio.NewReader(stream),
		writer: bufio.NewWriter(stream),
	}
}

func (c *Connection) Reader() *bufio.Reader { return c.reader }

func (c *Connection) Writer() *bufio.Writer { return c.writer }

// CloseWrite shuts down the sending direction; the peer sees end of stream.
func (c *Connection) CloseWrite() error {
	if c.writeClosed {
		return nil
	}
	c.writeClosed = true
	return c.stream.CloseWrite()
}

// CloseRead shuts down the receiving direction when the stream supports it
// (plain TCP does, TLS does not).
func (c *Connection) CloseRead() error {
	if c.readClosed {
		return nil
	}
	c.readClosed = true
	if rc, ok := c.stream.(interface{ CloseRead() error }); ok {
		return rc.CloseRead()
	}
	return nil
}

func (c *Connection) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	return c.stream.Close()
}

package pqctls

// conn.go - established secure connection: data transfer and teardown

import (
	"crypto/tls"
	"net"
	"sync"
	"time"
)

type connState int

const (
	connEstablished connState = iota
	connClosed
)

// A Conn is one established handshake session bound to one socket. Reads
// and writes are a direct conduit to the engine's record layer: no internal
// buffering, no retry, byte counts passed through unreinterpreted.
//
// A Conn has exactly one logical owner; concurrent use from multiple
// goroutines is not supported beyond the close-once guarantee.
type Conn struct {
	mu         sync.Mutex
	session    *tls.Conn
	socket     net.Conn
	ownsSocket bool
	state      connState

	// negotiated parameters, captured once at handshake completion
	protocol     string
	cipher       string
	peerVerified bool
}

var _ net.Conn = (*Conn)(nil)

// Read decrypts application data from the connection into p. It blocks
// until at least one record is available, the peer closes, or the socket
// errors; io.EOF after a close_notify is passed through from the engine.
func (c *Conn) Read(p []byte) (int, error) {
	if c == nil {
		return 0, ErrNilConnection
	}
	if err := c.usable(); err != nil {
		return 0, err
	}
	return c.session.Read(p)
}

// Write encrypts p to the connection, blocking until the engine has written
// every record or the socket errors.
func (c *Conn) Write(p []byte) (int, error) {
	if c == nil {
		return 0, ErrNilConnection
	}
	if err := c.usable(); err != nil {
		return 0, err
	}
	return c.session.Write(p)
}

// Close sends the protocol's close_notify alert best-effort and releases
// the session. The caller's socket is never closed; only a descriptor
// duplicated by AcceptFD or ConnectFD is released here. Close is a no-op on
// a nil or already-closed connection.
func (c *Conn) Close() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	if c.state == connClosed {
		c.mu.Unlock()
		return nil
	}
	c.state = connClosed
	c.mu.Unlock()

	// Shutdown notification is best-effort; its result is ignored.
	_ = c.session.CloseWrite()

	if c.ownsSocket {
		return c.socket.Close()
	}
	return nil
}

// PeerCertificateVerified reports whether the peer presented a certificate
// that was accepted during the handshake.
func (c *Conn) PeerCertificateVerified() bool {
	return c.peerVerified
}

// LocalAddr returns the local address of the underlying socket.
func (c *Conn) LocalAddr() net.Addr {
	return c.session.LocalAddr()
}

// RemoteAddr returns the remote address of the underlying socket.
func (c *Conn) RemoteAddr() net.Addr {
	return c.session.RemoteAddr()
}

// SetDeadline sets the read and write deadlines of the underlying socket.
// Deadline policy belongs entirely to the caller.
func (c *Conn) SetDeadline(t time.Time) error {
	return c.session.SetDeadline(t)
}

// SetReadDeadline sets the read deadline of the underlying socket.
func (c *Conn) SetReadDeadline(t time.Time) error {
	return c.session.SetReadDeadline(t)
}

// SetWriteDeadline sets the write deadline of the underlying socket.
func (c *Conn) SetWriteDeadline(t time.Time) error {
	return c.session.SetWriteDeadline(t)
}

func (c *Conn) usable() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == connClosed {
		return ErrConnectionClosed
	}
	return nil
}

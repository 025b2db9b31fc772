package pqctls

// handshake.go - handshake execution binding a Context to a connected socket
//
// A handshake moves through Uninitialized -> HandshakeInProgress ->
// {Established | Failed}. Only Established materializes a Conn; a failed
// attempt releases everything it allocated and is retried by starting over.
// The call blocks until the peer completes or fails the negotiation; this
// layer imposes no timeout of its own, so deadline policy belongs to the
// socket the caller hands in.

import (
	"crypto/tls"
	"fmt"
	"net"
	"os"
	"syscall"

	"go.uber.org/zap"
)

// Accept performs the server side of a handshake over an already-connected
// socket. The socket stays owned by the caller and is never closed by this
// package; on failure it is left as the engine left it.
func Accept(ctx *Context, socket net.Conn) (*Conn, error) {
	return handshake(ctx, socket, RoleServer, false)
}

// Connect performs the client side of a handshake over an already-connected
// socket. The server's certificate chain is verified as part of the
// handshake; rejection fails the attempt.
func Connect(ctx *Context, socket net.Conn) (*Conn, error) {
	return handshake(ctx, socket, RoleClient, false)
}

// AcceptFD is Accept for a raw connected socket descriptor. The descriptor
// is duplicated; the caller's copy is untouched and remains the caller's to
// close, while the duplicate is released by Conn.Close.
func AcceptFD(ctx *Context, fd int) (*Conn, error) {
	socket, err := adoptSocket(fd)
	if err != nil {
		return nil, err
	}
	return handshake(ctx, socket, RoleServer, true)
}

// ConnectFD is Connect for a raw connected socket descriptor, with the same
// duplication contract as AcceptFD.
func ConnectFD(ctx *Context, fd int) (*Conn, error) {
	socket, err := adoptSocket(fd)
	if err != nil {
		return nil, err
	}
	return handshake(ctx, socket, RoleClient, true)
}

func handshake(ctx *Context, socket net.Conn, role Role, ownsSocket bool) (*Conn, error) {
	if ctx == nil {
		return nil, ErrNilContext
	}
	if ctx.freed.Load() {
		return nil, ErrContextFreed
	}
	if socket == nil {
		return nil, ErrInvalidSocket
	}
	if ctx.role != role {
		return nil, fmt.Errorf("pqctls: %s handshake on %s context", role, ctx.role)
	}

	var session *tls.Conn
	if role == RoleClient {
		session = tls.Client(socket, ctx.tlsConfig)
	} else {
		session = tls.Server(socket, ctx.tlsConfig)
	}

	if err := session.Handshake(); err != nil {
		if ownsSocket {
			socket.Close()
		}
		log.Warn("handshake failed",
			zap.String("role", role.String()),
			zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrHandshakeFailed, err)
	}

	state := session.ConnectionState()
	return &Conn{
		session:      session,
		socket:       socket,
		ownsSocket:   ownsSocket,
		state:        connEstablished,
		protocol:     tls.VersionName(state.Version),
		cipher:       tls.CipherSuiteName(state.CipherSuite),
		peerVerified: len(state.PeerCertificates) > 0,
	}, nil
}

// adoptSocket turns a connected descriptor into a net.Conn without taking
// over the caller's descriptor. os.NewFile assumes ownership of the fd it is
// handed, so adoption works on a duplicate; net.FileConn duplicates once more
// for the poller, and the intermediate copy is released before returning.
func adoptSocket(fd int) (net.Conn, error) {
	if fd < 0 {
		return nil, ErrInvalidSocket
	}
	dup, err := syscall.Dup(fd)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSocket, err)
	}
	file := os.NewFile(uintptr(dup), "pqctls-socket")
	defer file.Close()

	socket, err := net.FileConn(file)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSocket, err)
	}
	return socket, nil
}

package pqctls

// info.go - read-only introspection of a completed handshake

// ConnectionInfo summarizes the parameters negotiated by one handshake
// session. The text fields are truncated to their fixed widths
// (ProtocolFieldSize and friends); callers must tolerate truncation for
// unusually long identifiers.
type ConnectionInfo struct {
	// Protocol is the negotiated protocol version string.
	Protocol string

	// Cipher is the negotiated cipher suite string.
	Cipher string

	// KEM is the negotiated key-establishment algorithm name. The engine
	// does not expose the negotiated group, so this reports
	// AlgorithmNotAvailable.
	KEM string

	// Signature is the negotiated signature algorithm name, reported as
	// AlgorithmNotAvailable for the same reason as KEM.
	Signature string

	// PeerCertVerified reports whether the peer presented a certificate
	// that was accepted during the handshake. Unlike KEM and Signature this
	// field is authoritative.
	PeerCertVerified bool
}

// Info returns the negotiated-parameter summary of the connection. The
// summary is captured at handshake completion and stays readable after
// Close. Calling Info on a nil connection returns ErrNilConnection.
func (c *Conn) Info() (ConnectionInfo, error) {
	if c == nil {
		return ConnectionInfo{}, ErrNilConnection
	}
	return ConnectionInfo{
		Protocol:         truncate(c.protocol, ProtocolFieldSize),
		Cipher:           truncate(c.cipher, CipherFieldSize),
		KEM:              truncate(AlgorithmNotAvailable, KEMFieldSize),
		Signature:        truncate(AlgorithmNotAvailable, SignatureFieldSize),
		PeerCertVerified: c.peerVerified,
	}, nil
}

// truncate clamps s to at most max runes, never splitting a multi-byte rune.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}

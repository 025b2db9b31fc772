package pqctls

// A Config provides the material and policy needed to build a Context. It is
// never modified by this package, and can be reused.
type Config struct {
	// CertFile is the path to a PEM-encoded certificate chain. Required for
	// a server context. Optional for a client context; supplying it opts the
	// client into mutual authentication.
	CertFile string

	// KeyFile is the path to the PEM-encoded private key matching CertFile.
	// Required whenever CertFile is set.
	KeyFile string

	// CAFile is the path to a PEM-encoded trusted-authority bundle. Required
	// on a server context when RequireClientCert is set. On a client context
	// it replaces the system trust store for server verification.
	CAFile string

	// CipherSuite is the single cipher suite the context is validated
	// against. If empty, DefaultCipherSuite is used. Names follow the
	// engine's TLS 1.3 suite naming (e.g. "TLS_AES_128_GCM_SHA256"); a name
	// the engine does not support fails construction.
	CipherSuite string

	// KeyExchange is a key-exchange preference list, separated by colons or
	// newlines (e.g. "mlkem768:x25519"). If empty, DefaultKeyExchange is
	// used. Entries the engine cannot honor are skipped with a warning; if
	// nothing remains, the engine's default preferences are used.
	KeyExchange string

	// Signatures is a signature-algorithm preference list in the same syntax
	// as KeyExchange, defaulting to DefaultSignature when empty. The engine
	// does not expose signature preference ordering, so the list is validated
	// and recorded but engine defaults remain in effect; unknown entries are
	// warned about.
	Signatures string

	// RequireClientCert makes a server context demand and verify a client
	// certificate during the handshake. A client that presents no
	// certificate then fails the handshake. Ignored by client contexts,
	// which always verify the server.
	RequireClientCert bool

	// ServerName optionally enables hostname verification on a client
	// context. When empty the client still verifies the server's chain
	// against the trust store, but accepts any subject name.
	ServerName string
}

// WithProfile returns a copy of the Config with the KeyExchange and
// Signatures preference lists populated from an algorithm profile,
// replacing any values already present.
func (c Config) WithProfile(p Profile) Config {
	c.KeyExchange = p.Groups
	c.Signatures = p.SignatureAlgorithms
	return c
}

// Package pqctls establishes confidential, mutually-authenticatable byte
// streams over already-connected sockets, with pluggable selection of
// key-establishment and signature algorithms including post-quantum hybrids
// such as X25519MLKEM768.
//
// A Context is built once from a Config with NewServerContext or
// NewClientContext and then spawns any number of connections via Accept and
// Connect. The protocol version is pinned to exactly TLS 1.3 and the
// configured cipher suite is validated at construction; algorithm-preference
// lists are applied best-effort, with entries the engine cannot honor
// reported as warnings rather than construction failures. Record-layer
// framing, the key schedule, and certificate chain validation are owned by
// the crypto/tls protocol engine.
package pqctls

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"os"
	"sync/atomic"

	"go.uber.org/zap"
)

// Role distinguishes the two endpoints of a handshake.
type Role int

const (
	// RoleServer contexts accept handshakes.
	RoleServer Role = iota

	// RoleClient contexts initiate handshakes.
	RoleClient
)

// String returns the role name.
func (r Role) String() string {
	if r == RoleServer {
		return "server"
	}
	return "client"
}

// A Context carries the negotiation rules shared by every connection built
// from it: certificate material, trust store, the pinned protocol version
// and cipher suite, and the algorithm-preference lists. It is immutable
// after construction and safe for concurrent use by multiple handshakes.
//
// A Context must remain valid for the lifetime of every Conn built from it;
// call Free only after all of them are closed.
type Context struct {
	role        Role
	tlsConfig   *tls.Config
	cipherSuite string
	groups      []tls.CurveID
	signatures  []string
	freed       atomic.Bool
}

// NewServerContext builds a Context that accepts handshakes. Certificate
// and key material is required. When cfg.RequireClientCert is set the
// handshake demands and verifies a client certificate against cfg.CAFile,
// and a client presenting none fails the handshake.
//
// Construction is all-or-nothing: any fatal step returns a nil Context and
// an error, leaving nothing to release.
func NewServerContext(cfg Config) (*Context, error) {
	return newContext(RoleServer, cfg)
}

// NewClientContext builds a Context that initiates handshakes. Certificate
// material is optional; supplying it opts the client into mutual
// authentication. The server's certificate chain is always verified,
// against cfg.CAFile when set and the system trust store otherwise.
func NewClientContext(cfg Config) (*Context, error) {
	return newContext(RoleClient, cfg)
}

func newContext(role Role, cfg Config) (*Context, error) {
	tc := &tls.Config{
		MinVersion: ProtocolVersion,
		MaxVersion: ProtocolVersion,
	}

	suite := cfg.CipherSuite
	if suite == "" {
		suite = DefaultCipherSuite
	}
	id, err := cipherSuiteID(suite)
	if err != nil {
		return nil, err
	}
	// The engine owns TLS 1.3 suite selection; the validated ID is still
	// recorded on the config for introspection and for any future version
	// that honors it.
	tc.CipherSuites = []uint16{id}

	ctx := &Context{role: role, cipherSuite: suite}

	keyExchange := cfg.KeyExchange
	if keyExchange == "" {
		keyExchange = DefaultKeyExchange
	}
	curves, unknown := parseGroupList(keyExchange)
	for _, name := range unknown {
		log.Warn("key-exchange preference not supported by engine, skipping",
			zap.String("algorithm", name),
			zap.Bool("known_kem", lookupKEM(name) != nil))
	}
	if len(curves) > 0 {
		tc.CurvePreferences = curves
		ctx.groups = curves
	} else {
		log.Warn("no usable key-exchange preference, engine defaults in effect",
			zap.String("requested", keyExchange))
	}

	sigPrefs := cfg.Signatures
	if sigPrefs == "" {
		sigPrefs = DefaultSignature
	}
	known, unknown := parseSignatureList(sigPrefs)
	for _, name := range unknown {
		log.Warn("signature preference not recognized, skipping",
			zap.String("algorithm", name))
	}
	// The engine does not expose signature preference ordering; the
	// validated list is recorded but engine defaults stay in effect.
	if len(known) > 0 {
		ctx.signatures = known
		log.Warn("signature preference recorded, engine default ordering in effect",
			zap.Strings("algorithms", known))
	}

	if role == RoleServer && (cfg.CertFile == "" || cfg.KeyFile == "") {
		return nil, ErrMissingCertificate
	}
	if cfg.CertFile != "" || cfg.KeyFile != "" {
		if cfg.CertFile == "" || cfg.KeyFile == "" {
			return nil, fmt.Errorf("%w: certificate and key files must be supplied together", ErrMissingCertificate)
		}
		cert, err := loadKeyPair(cfg.CertFile, cfg.KeyFile)
		if err != nil {
			return nil, err
		}
		tc.Certificates = []tls.Certificate{cert}
	}

	if role == RoleServer {
		if cfg.RequireClientCert {
			if cfg.CAFile == "" {
				return nil, ErrMissingTrustStore
			}
			pool, err := loadCertPool(cfg.CAFile)
			if err != nil {
				return nil, err
			}
			tc.ClientCAs = pool
			tc.ClientAuth = tls.RequireAndVerifyClientCert
		} else {
			tc.ClientAuth = tls.NoClientCert
		}
	} else {
		var pool *x509.CertPool
		if cfg.CAFile != "" {
			pool, err = loadCertPool(cfg.CAFile)
			if err != nil {
				return nil, err
			}
		}
		if cfg.ServerName != "" {
			tc.ServerName = cfg.ServerName
			tc.RootCAs = pool
		} else {
			// Chain verification without a hostname requirement: the engine
			// verifier insists on a name match, so the chain check moves to
			// a VerifyPeerCertificate callback.
			tc.InsecureSkipVerify = true
			tc.VerifyPeerCertificate = verifyPeerChain(pool, x509.ExtKeyUsageServerAuth)
		}
	}

	ctx.tlsConfig = tc
	return ctx, nil
}

// Role returns the role the Context was built for.
func (ctx *Context) Role() Role {
	return ctx.role
}

// CipherSuite returns the cipher suite the Context was validated against.
func (ctx *Context) CipherSuite() string {
	return ctx.cipherSuite
}

// Groups returns the key-exchange groups that were applied to the engine,
// in preference order. A nil result means engine defaults are in effect.
func (ctx *Context) Groups() []tls.CurveID {
	out := make([]tls.CurveID, len(ctx.groups))
	copy(out, ctx.groups)
	return out
}

// Signatures returns the recognized entries of the signature preference
// list. The engine's default ordering remains in effect regardless.
func (ctx *Context) Signatures() []string {
	out := make([]string, len(ctx.signatures))
	copy(out, ctx.signatures)
	return out
}

// Free marks the Context unusable. Subsequent Accept and Connect calls fail
// with ErrContextFreed. Free must not be called while a Conn built from the
// Context is still open; it is safe to call more than once.
func (ctx *Context) Free() {
	if ctx == nil {
		return
	}
	ctx.freed.Store(true)
}

// cipherSuiteID resolves a TLS 1.3 cipher suite name against the engine's
// suite table.
func cipherSuiteID(name string) (uint16, error) {
	for _, suite := range tls.CipherSuites() {
		if suite.Name != name {
			continue
		}
		for _, v := range suite.SupportedVersions {
			if v == ProtocolVersion {
				return suite.ID, nil
			}
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedCipherSuite, name)
}

// loadKeyPair reads a PEM certificate chain and private key from disk. The
// raw key bytes are zeroized once the engine has parsed them.
func loadKeyPair(certFile, keyFile string) (tls.Certificate, error) {
	certPEM, err := os.ReadFile(certFile)
	if err != nil {
		return tls.Certificate{}, fmt.Errorf("pqctls: load certificate: %w", err)
	}
	keyPEM, err := os.ReadFile(keyFile)
	if err != nil {
		return tls.Certificate{}, fmt.Errorf("pqctls: load private key: %w", err)
	}
	defer secureZero(keyPEM)

	cert, err := tls.X509KeyPair(certPEM, keyPEM)
	if err != nil {
		return tls.Certificate{}, fmt.Errorf("pqctls: parse key pair: %w", err)
	}
	return cert, nil
}

// loadCertPool reads a PEM trusted-authority bundle from disk.
func loadCertPool(caFile string) (*x509.CertPool, error) {
	pem, err := os.ReadFile(caFile)
	if err != nil {
		return nil, fmt.Errorf("pqctls: load trust store: %w", err)
	}
	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM(pem) {
		return nil, fmt.Errorf("pqctls: trust store %s contains no usable certificates", caFile)
	}
	return pool, nil
}

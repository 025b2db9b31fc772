package pqctls

import (
	"crypto/tls"
	"errors"
)

// Protocol pinning. A Context negotiates exactly one protocol version and is
// validated against exactly one cipher suite; there is no fallback window.
const (
	// ProtocolVersion is the only protocol version a Context will offer or
	// accept. Both the minimum and maximum of the negotiation window are set
	// to this value.
	ProtocolVersion = tls.VersionTLS13

	// DefaultCipherSuite is the cipher suite a Context is validated against
	// when Config.CipherSuite is empty.
	DefaultCipherSuite = "TLS_AES_128_GCM_SHA256"
)

// Default algorithm-preference strings, applied when the corresponding
// Config field is empty. These match the deployment defaults of the profile
// registry: the ML-KEM-768 hybrid group for key establishment and ML-DSA-65
// (the Dilithium3 naming lineage) for signatures.
const (
	// DefaultKeyExchange is the key-exchange preference list used when
	// Config.KeyExchange is empty.
	DefaultKeyExchange = "mlkem768"

	// DefaultSignature is the signature-algorithm preference list used when
	// Config.Signatures is empty.
	DefaultSignature = "dilithium3"
)

// Fixed widths of the ConnectionInfo text fields. Identifiers longer than
// the field width are truncated; callers must tolerate truncation.
const (
	// ProtocolFieldSize is the maximum length of ConnectionInfo.Protocol.
	ProtocolFieldSize = 32

	// CipherFieldSize is the maximum length of ConnectionInfo.Cipher.
	CipherFieldSize = 128

	// KEMFieldSize is the maximum length of ConnectionInfo.KEM.
	KEMFieldSize = 64

	// SignatureFieldSize is the maximum length of ConnectionInfo.Signature.
	SignatureFieldSize = 64
)

// AlgorithmNotAvailable is the placeholder reported by ConnectionInfo for
// negotiated algorithm names the protocol engine does not expose.
const AlgorithmNotAvailable = "N/A"

// MLKEM (Module-Lattice-Based Key Encapsulation Mechanism) constants.
// These values are defined in NIST FIPS 203 and represent the sizes of
// keys, ciphertexts, and shared secrets for each security level.
//
// MLKEM-512: NIST Security Level 1 (~AES-128 equivalent)
// MLKEM-768: NIST Security Level 3 (~AES-192 equivalent) - RECOMMENDED
// MLKEM-1024: NIST Security Level 5 (~AES-256 equivalent)
const (
	// MLKEM-512 sizes (NIST Security Level 1)
	MLKEM512PublicKeySize  = 800
	MLKEM512CiphertextSize = 768

	// MLKEM-768 sizes (NIST Security Level 3) - Recommended for most use cases
	MLKEM768PublicKeySize  = 1184
	MLKEM768CiphertextSize = 1088

	// MLKEM-1024 sizes (NIST Security Level 5)
	MLKEM1024PublicKeySize  = 1568
	MLKEM1024CiphertextSize = 1568
)

// MLDSA (Module-Lattice-Based Digital Signature Algorithm) constants.
// These values are defined in NIST FIPS 204 and represent the signature
// sizes for each security level.
//
// MLDSA-44: NIST Security Level 2 (~AES-128 equivalent)
// MLDSA-65: NIST Security Level 3 (~AES-192 equivalent) - RECOMMENDED
// MLDSA-87: NIST Security Level 5 (~AES-256 equivalent)
const (
	MLDSA44SignatureSize = 2420
	MLDSA65SignatureSize = 3309
	MLDSA87SignatureSize = 4627
)

// Usage errors. These are returned directly by the failing call and are
// distinguishable with errors.Is; they never reflect engine state.
var (
	// ErrNilContext indicates that a nil Context was passed to a handshake
	// or introspection call.
	ErrNilContext = errors.New("pqctls: nil context")

	// ErrNilConnection indicates that a nil Conn was passed to a data
	// transfer or introspection call.
	ErrNilConnection = errors.New("pqctls: nil connection")

	// ErrConnectionClosed indicates a read or write on a connection that has
	// already been closed.
	ErrConnectionClosed = errors.New("pqctls: connection is closed")

	// ErrContextFreed indicates a handshake attempt on a Context after Free.
	ErrContextFreed = errors.New("pqctls: context has been freed")

	// ErrInvalidSocket indicates that a socket descriptor could not be
	// adopted as a connection.
	ErrInvalidSocket = errors.New("pqctls: invalid socket descriptor")
)

// Construction and handshake errors. Construction is all-or-nothing: any of
// these leaves no usable Context or Conn behind.
var (
	// ErrUnsupportedCipherSuite indicates that the configured cipher suite
	// is not a TLS 1.3 suite known to the protocol engine.
	ErrUnsupportedCipherSuite = errors.New("pqctls: unsupported cipher suite")

	// ErrMissingCertificate indicates that required certificate or key
	// material was not configured.
	ErrMissingCertificate = errors.New("pqctls: certificate and private key are required")

	// ErrMissingTrustStore indicates that peer verification was requested
	// without a trusted-authority bundle to verify against.
	ErrMissingTrustStore = errors.New("pqctls: trust store is required when peer verification is enabled")

	// ErrHandshakeFailed indicates that the protocol handshake did not
	// complete. The engine's diagnostic is attached to the error text.
	ErrHandshakeFailed = errors.New("pqctls: handshake failed")

	// ErrUnknownProfile indicates a lookup of an algorithm profile that is
	// not in the registry.
	ErrUnknownProfile = errors.New("pqctls: unknown algorithm profile")
)

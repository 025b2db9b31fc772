package pqctls

// profiles.go - predefined algorithm profiles
//
// A profile bundles a key-establishment choice and a signature choice with
// the preference strings that request them from the protocol engine, plus
// the published key, ciphertext, and signature sizes for capacity planning.
// Profile 2 (ML-KEM-768 hybrid with ECDSA-P256 certificates) is the default
// deployment configuration.

import (
	"fmt"

	"github.com/cloudflare/circl/kem"
	"github.com/cloudflare/circl/sign"
)

// A Profile describes one predefined pairing of key-establishment and
// signature algorithms.
type Profile struct {
	// ID is the registry identifier of the profile.
	ID int

	// Name is the human-readable profile name.
	Name string

	// KEMAlgorithm is the canonical name of the key-establishment scheme.
	KEMAlgorithm string

	// SignatureAlgorithm is the canonical name of the signature scheme
	// expected in certificates.
	SignatureAlgorithm string

	// SecurityBits is the classical-equivalent security level.
	SecurityBits int

	// Groups is the key-exchange preference list to place in
	// Config.KeyExchange when using this profile.
	Groups string

	// SignatureAlgorithms is the signature preference list to place in
	// Config.Signatures when using this profile.
	SignatureAlgorithms string

	// KEMPublicKeySize and KEMCiphertextSize are the wire sizes of the KEM
	// portion, zero for purely classical profiles.
	KEMPublicKeySize  int
	KEMCiphertextSize int

	// SignatureSize is the wire size of a signature, zero when the size is
	// not fixed by the scheme.
	SignatureSize int
}

// DefaultProfileID identifies the profile used when none is selected.
const DefaultProfileID = 2

var profiles = []Profile{
	{
		ID:                  0,
		Name:                "Classical P-256",
		KEMAlgorithm:        "ECDHE-P256",
		SignatureAlgorithm:  "ECDSA-P256",
		SecurityBits:        128,
		Groups:              "secp256r1",
		SignatureAlgorithms: "ecdsa_secp256r1_sha256",
	},
	{
		ID:                  1,
		Name:                "Classical X25519",
		KEMAlgorithm:        "X25519",
		SignatureAlgorithm:  "Ed25519",
		SecurityBits:        128,
		Groups:              "x25519",
		SignatureAlgorithms: "ed25519",
	},
	{
		ID:                  2,
		Name:                "Hybrid ML-KEM-768 / ECDSA-P256",
		KEMAlgorithm:        "ML-KEM-768",
		SignatureAlgorithm:  "ECDSA-P256",
		SecurityBits:        192,
		Groups:              "mlkem768:x25519",
		SignatureAlgorithms: "ecdsa_secp256r1_sha256",
		KEMPublicKeySize:    MLKEM768PublicKeySize,
		KEMCiphertextSize:   MLKEM768CiphertextSize,
	},
	{
		ID:                  3,
		Name:                "Hybrid ML-KEM-768 / ML-DSA-65",
		KEMAlgorithm:        "ML-KEM-768",
		SignatureAlgorithm:  "ML-DSA-65",
		SecurityBits:        192,
		Groups:              "mlkem768:x25519",
		SignatureAlgorithms: "dilithium3",
		KEMPublicKeySize:    MLKEM768PublicKeySize,
		KEMCiphertextSize:   MLKEM768CiphertextSize,
		SignatureSize:       MLDSA65SignatureSize,
	},
	{
		ID:                  4,
		Name:                "ML-KEM-512 / ML-DSA-44",
		KEMAlgorithm:        "ML-KEM-512",
		SignatureAlgorithm:  "ML-DSA-44",
		SecurityBits:        128,
		Groups:              "mlkem512:x25519",
		SignatureAlgorithms: "dilithium2",
		KEMPublicKeySize:    MLKEM512PublicKeySize,
		KEMCiphertextSize:   MLKEM512CiphertextSize,
		SignatureSize:       MLDSA44SignatureSize,
	},
	{
		ID:                  5,
		Name:                "ML-KEM-1024 / ML-DSA-87",
		KEMAlgorithm:        "ML-KEM-1024",
		SignatureAlgorithm:  "ML-DSA-87",
		SecurityBits:        256,
		Groups:              "mlkem1024:x25519",
		SignatureAlgorithms: "dilithium5",
		KEMPublicKeySize:    MLKEM1024PublicKeySize,
		KEMCiphertextSize:   MLKEM1024CiphertextSize,
		SignatureSize:       MLDSA87SignatureSize,
	},
}

// Profiles returns the registered profiles in registry order. The returned
// slice is a copy and may be modified by the caller.
func Profiles() []Profile {
	out := make([]Profile, len(profiles))
	copy(out, profiles)
	return out
}

// DefaultProfile returns the default deployment profile.
func DefaultProfile() Profile {
	p, _ := ProfileByID(DefaultProfileID)
	return p
}

// ProfileByID looks up a profile by registry identifier.
func ProfileByID(id int) (Profile, error) {
	for _, p := range profiles {
		if p.ID == id {
			return p, nil
		}
	}
	return Profile{}, fmt.Errorf("%w: id %d", ErrUnknownProfile, id)
}

// ProfileByName looks up a profile by name.
func ProfileByName(name string) (Profile, error) {
	for _, p := range profiles {
		if p.Name == name {
			return p, nil
		}
	}
	return Profile{}, fmt.Errorf("%w: %q", ErrUnknownProfile, name)
}

// KEMScheme returns the CIRCL implementation of the profile's KEM, or nil
// for purely classical profiles.
func (p Profile) KEMScheme() kem.Scheme {
	return lookupKEM(p.KEMAlgorithm)
}

// SignatureScheme returns the CIRCL implementation of the profile's
// signature algorithm, or nil for classical signature schemes.
func (p Profile) SignatureScheme() sign.Scheme {
	return signatureSchemes[normalizeAlgorithmName(p.SignatureAlgorithm)]
}

// verifyProfiles cross-checks the registry's published sizes against the
// underlying scheme implementations. A mismatch means the registry and the
// linked CIRCL version disagree and the process must not proceed.
func verifyProfiles() error {
	for _, p := range profiles {
		if scheme := p.KEMScheme(); scheme != nil {
			if scheme.PublicKeySize() != p.KEMPublicKeySize {
				return fmt.Errorf("pqctls: profile %d: KEM public key size %d, scheme reports %d",
					p.ID, p.KEMPublicKeySize, scheme.PublicKeySize())
			}
			if scheme.CiphertextSize() != p.KEMCiphertextSize {
				return fmt.Errorf("pqctls: profile %d: KEM ciphertext size %d, scheme reports %d",
					p.ID, p.KEMCiphertextSize, scheme.CiphertextSize())
			}
		}
		if scheme := p.SignatureScheme(); scheme != nil {
			if scheme.SignatureSize() != p.SignatureSize {
				return fmt.Errorf("pqctls: profile %d: signature size %d, scheme reports %d",
					p.ID, p.SignatureSize, scheme.SignatureSize())
			}
		}
	}
	return nil
}

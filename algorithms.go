package pqctls

// algorithms.go - parsing and mapping of algorithm-preference lists
//
// Preference lists use the engine convention of colon- or newline-separated
// names. Key-exchange entries map onto the protocol engine's named groups;
// ML-KEM entries map onto the hybrid group that carries them (the engine
// offers ML-KEM-768 only in combination with X25519). Signature entries are
// validated against the CIRCL registries and classical TLS signature scheme
// names, but the engine keeps its own ordering.

import (
	"crypto/tls"
	"strings"

	"github.com/cloudflare/circl/kem"
	"github.com/cloudflare/circl/kem/mlkem/mlkem1024"
	"github.com/cloudflare/circl/kem/mlkem/mlkem512"
	"github.com/cloudflare/circl/kem/mlkem/mlkem768"
	"github.com/cloudflare/circl/sign"
	"github.com/cloudflare/circl/sign/mldsa/mldsa44"
	"github.com/cloudflare/circl/sign/mldsa/mldsa65"
	"github.com/cloudflare/circl/sign/mldsa/mldsa87"
)

// groupIDs maps normalized key-exchange names onto engine group identifiers.
// ML-KEM-768 aliases resolve to the X25519MLKEM768 hybrid group.
var groupIDs = map[string]tls.CurveID{
	"x25519mlkem768": tls.X25519MLKEM768,
	"x25519kyber768": tls.X25519MLKEM768,
	"mlkem768":       tls.X25519MLKEM768,
	"kyber768":       tls.X25519MLKEM768,
	"x25519":         tls.X25519,
	"p256":           tls.CurveP256,
	"secp256r1":      tls.CurveP256,
	"prime256v1":     tls.CurveP256,
	"p384":           tls.CurveP384,
	"secp384r1":      tls.CurveP384,
	"p521":           tls.CurveP521,
	"secp521r1":      tls.CurveP521,
}

// kemSchemes maps normalized KEM names onto their CIRCL implementations.
// Recognized here does not imply the engine offers a matching group:
// standalone ML-KEM-512/1024 have no engine group and stay preference
// warnings until the engine grows one.
var kemSchemes = map[string]kem.Scheme{
	"mlkem512":       mlkem512.Scheme(),
	"kyber512":       mlkem512.Scheme(),
	"mlkem768":       mlkem768.Scheme(),
	"kyber768":       mlkem768.Scheme(),
	"x25519mlkem768": mlkem768.Scheme(),
	"x25519kyber768": mlkem768.Scheme(),
	"mlkem1024":      mlkem1024.Scheme(),
	"kyber1024":      mlkem1024.Scheme(),
}

// signatureSchemes maps normalized post-quantum signature names onto their
// CIRCL implementations. Dilithium names are the pre-FIPS lineage of ML-DSA.
var signatureSchemes = map[string]sign.Scheme{
	"mldsa44":    mldsa44.Scheme(),
	"dilithium2": mldsa44.Scheme(),
	"mldsa65":    mldsa65.Scheme(),
	"dilithium3": mldsa65.Scheme(),
	"mldsa87":    mldsa87.Scheme(),
	"dilithium5": mldsa87.Scheme(),
}

// classicalSignatures holds the classical TLS 1.3 signature scheme names
// accepted in a Signatures preference list.
var classicalSignatures = map[string]bool{
	"ed25519":              true,
	"ecdsasecp256r1sha256": true,
	"ecdsasecp384r1sha384": true,
	"ecdsasecp521r1sha512": true,
	"rsapssrsaesha256":     true,
	"rsapssrsaesha384":     true,
	"rsapssrsaesha512":     true,
}

// splitAlgorithmList splits a preference list on colons and newlines,
// trimming whitespace and dropping empty entries. A nil result means no
// preference was expressed.
func splitAlgorithmList(list string) []string {
	var out []string
	for _, field := range strings.FieldsFunc(list, func(r rune) bool {
		return r == ':' || r == '\n'
	}) {
		field = strings.TrimSpace(field)
		if field != "" {
			out = append(out, field)
		}
	}
	return out
}

// normalizeAlgorithmName lowercases a name and strips the separators found
// in the various published spellings ("ML-KEM-768", "ml_kem_768", "MLKEM768").
func normalizeAlgorithmName(name string) string {
	name = strings.ToLower(name)
	name = strings.ReplaceAll(name, "-", "")
	name = strings.ReplaceAll(name, "_", "")
	return name
}

// parseGroupList resolves a key-exchange preference list into engine group
// identifiers, preserving order and dropping duplicates. Entries without an
// engine group are returned in unknown and do not fail the parse.
func parseGroupList(list string) (curves []tls.CurveID, unknown []string) {
	seen := make(map[tls.CurveID]bool)
	for _, name := range splitAlgorithmList(list) {
		id, ok := groupIDs[normalizeAlgorithmName(name)]
		if !ok {
			unknown = append(unknown, name)
			continue
		}
		if !seen[id] {
			seen[id] = true
			curves = append(curves, id)
		}
	}
	return curves, unknown
}

// parseSignatureList validates a signature preference list. Recognized
// entries are returned in their canonical scheme names; unrecognized entries
// are returned in unknown and do not fail the parse.
func parseSignatureList(list string) (known []string, unknown []string) {
	for _, name := range splitAlgorithmList(list) {
		normalized := normalizeAlgorithmName(name)
		if scheme, ok := signatureSchemes[normalized]; ok {
			known = append(known, scheme.Name())
			continue
		}
		if classicalSignatures[normalized] {
			known = append(known, name)
			continue
		}
		unknown = append(unknown, name)
	}
	return known, unknown
}

// lookupKEM returns the CIRCL scheme for a KEM preference name, or nil if
// the name is not a recognized KEM.
func lookupKEM(name string) kem.Scheme {
	return kemSchemes[normalizeAlgorithmName(name)]
}

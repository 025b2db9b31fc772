package pqctls

import (
	"errors"
	"testing"
)

func TestDefaultProfile(t *testing.T) {
	p := DefaultProfile()
	if p.ID != DefaultProfileID {
		t.Errorf("ID: got %d, want %d", p.ID, DefaultProfileID)
	}
	if p.KEMAlgorithm != "ML-KEM-768" {
		t.Errorf("KEMAlgorithm: got %q, want ML-KEM-768", p.KEMAlgorithm)
	}
	if p.SignatureAlgorithm != "ECDSA-P256" {
		t.Errorf("SignatureAlgorithm: got %q, want ECDSA-P256", p.SignatureAlgorithm)
	}
}

func TestProfileLookup(t *testing.T) {
	p, err := ProfileByID(3)
	if err != nil {
		t.Fatalf("ProfileByID(3) failed: %v", err)
	}
	if p.SignatureAlgorithm != "ML-DSA-65" {
		t.Errorf("profile 3 signature: got %q", p.SignatureAlgorithm)
	}

	if _, err := ProfileByID(99); !errors.Is(err, ErrUnknownProfile) {
		t.Errorf("ProfileByID(99): expected ErrUnknownProfile, got %v", err)
	}

	byName, err := ProfileByName(p.Name)
	if err != nil {
		t.Fatalf("ProfileByName(%q) failed: %v", p.Name, err)
	}
	if byName.ID != p.ID {
		t.Errorf("ProfileByName returned profile %d, want %d", byName.ID, p.ID)
	}

	if _, err := ProfileByName("no such profile"); !errors.Is(err, ErrUnknownProfile) {
		t.Errorf("expected ErrUnknownProfile, got %v", err)
	}
}

// TestProfileSizesMatchSchemes verifies that the registry's published sizes
// agree with the linked scheme implementations.
func TestProfileSizesMatchSchemes(t *testing.T) {
	for _, p := range Profiles() {
		if scheme := p.KEMScheme(); scheme != nil {
			if scheme.PublicKeySize() != p.KEMPublicKeySize {
				t.Errorf("profile %d: KEM public key size %d, scheme reports %d",
					p.ID, p.KEMPublicKeySize, scheme.PublicKeySize())
			}
			if scheme.CiphertextSize() != p.KEMCiphertextSize {
				t.Errorf("profile %d: KEM ciphertext size %d, scheme reports %d",
					p.ID, p.KEMCiphertextSize, scheme.CiphertextSize())
			}
		}
		if scheme := p.SignatureScheme(); scheme != nil {
			if scheme.SignatureSize() != p.SignatureSize {
				t.Errorf("profile %d: signature size %d, scheme reports %d",
					p.ID, p.SignatureSize, scheme.SignatureSize())
			}
		}
	}

	if err := verifyProfiles(); err != nil {
		t.Errorf("verifyProfiles failed: %v", err)
	}
}

func TestClassicalProfilesHaveNoSchemes(t *testing.T) {
	for _, id := range []int{0, 1} {
		p, err := ProfileByID(id)
		if err != nil {
			t.Fatalf("ProfileByID(%d) failed: %v", id, err)
		}
		if p.KEMScheme() != nil {
			t.Errorf("profile %d: unexpected KEM scheme", id)
		}
		if p.SignatureScheme() != nil {
			t.Errorf("profile %d: unexpected signature scheme", id)
		}
	}
}

func TestConfigWithProfile(t *testing.T) {
	p, err := ProfileByID(3)
	if err != nil {
		t.Fatalf("ProfileByID(3) failed: %v", err)
	}

	cfg := Config{CertFile: "cert.pem", KeyExchange: "x25519"}.WithProfile(p)
	if cfg.KeyExchange != p.Groups {
		t.Errorf("KeyExchange: got %q, want %q", cfg.KeyExchange, p.Groups)
	}
	if cfg.Signatures != p.SignatureAlgorithms {
		t.Errorf("Signatures: got %q, want %q", cfg.Signatures, p.SignatureAlgorithms)
	}
	if cfg.CertFile != "cert.pem" {
		t.Errorf("CertFile was clobbered: %q", cfg.CertFile)
	}
}

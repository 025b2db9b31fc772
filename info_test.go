package pqctls

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestTruncate(t *testing.T) {
	if got := truncate("TLS 1.3", ProtocolFieldSize); got != "TLS 1.3" {
		t.Errorf("short string changed: %q", got)
	}
	long := strings.Repeat("x", 300)
	if got := truncate(long, CipherFieldSize); len(got) != CipherFieldSize {
		t.Errorf("truncated length: got %d, want %d", len(got), CipherFieldSize)
	}
	if got := truncate("", ProtocolFieldSize); got != "" {
		t.Errorf("empty string changed: %q", got)
	}

	// Clamping counts runes, so a multi-byte identifier is never cut in the
	// middle of a rune.
	wide := strings.Repeat("é", ProtocolFieldSize+5) // 2 bytes per rune
	got := truncate(wide, ProtocolFieldSize)
	if !utf8.ValidString(got) {
		t.Errorf("truncation produced invalid UTF-8: %q", got)
	}
	if n := utf8.RuneCountInString(got); n != ProtocolFieldSize {
		t.Errorf("truncated rune count: got %d, want %d", n, ProtocolFieldSize)
	}
}

// TestInfoFieldWidths verifies that Info clamps oversized negotiated
// identifiers to the fixed field widths.
func TestInfoFieldWidths(t *testing.T) {
	c := &Conn{
		state:        connEstablished,
		protocol:     strings.Repeat("v", ProtocolFieldSize+10),
		cipher:       strings.Repeat("c", CipherFieldSize+10),
		peerVerified: true,
	}

	info, err := c.Info()
	if err != nil {
		t.Fatalf("Info failed: %v", err)
	}
	if len(info.Protocol) != ProtocolFieldSize {
		t.Errorf("Protocol length: got %d, want %d", len(info.Protocol), ProtocolFieldSize)
	}
	if len(info.Cipher) != CipherFieldSize {
		t.Errorf("Cipher length: got %d, want %d", len(info.Cipher), CipherFieldSize)
	}
	if info.KEM != AlgorithmNotAvailable {
		t.Errorf("KEM: got %q, want %q", info.KEM, AlgorithmNotAvailable)
	}
	if info.Signature != AlgorithmNotAvailable {
		t.Errorf("Signature: got %q, want %q", info.Signature, AlgorithmNotAvailable)
	}
	if !info.PeerCertVerified {
		t.Error("PeerCertVerified not carried through")
	}
}

func TestInfoNilConnection(t *testing.T) {
	var c *Conn
	if _, err := c.Info(); err != ErrNilConnection {
		t.Errorf("expected ErrNilConnection, got %v", err)
	}
}

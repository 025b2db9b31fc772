package pqctls

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestInitAndCleanup(t *testing.T) {
	if err := Init(nil); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if err := Init(zap.NewNop()); err != nil {
		t.Fatalf("Init with logger failed: %v", err)
	}
	Cleanup()
	SetLogger(nil) // nil must fall back to the no-op logger
}

// TestPreferenceWarningsLogged verifies that unusable preference entries
// reach the installed logger instead of failing construction.
func TestPreferenceWarningsLogged(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	SetLogger(zap.New(core))
	defer SetLogger(nil)

	pki := newTestPKI(t)
	ctx, err := NewServerContext(Config{
		CertFile:    pki.ServerCert,
		KeyFile:     pki.ServerKey,
		KeyExchange: "frodokem976",
		Signatures:  "falcon512",
	})
	if err != nil {
		t.Fatalf("construction failed: %v", err)
	}
	defer ctx.Free()

	if logs.FilterMessage("key-exchange preference not supported by engine, skipping").Len() == 0 {
		t.Error("missing key-exchange warning")
	}
	if logs.FilterMessage("no usable key-exchange preference, engine defaults in effect").Len() == 0 {
		t.Error("missing engine-defaults warning")
	}
	if logs.FilterMessage("signature preference not recognized, skipping").Len() == 0 {
		t.Error("missing signature warning")
	}
}

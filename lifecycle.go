package pqctls

// lifecycle.go - process-wide initialization and logger wiring

import "go.uber.org/zap"

// log carries the non-fatal warning output of context construction and
// handshake failures. It defaults to a no-op logger; Init or SetLogger
// install a real one. Data-path calls never log.
var log = zap.NewNop()

// Init prepares process-wide state: it installs the logger (nil keeps the
// current one) and cross-checks the algorithm profile registry against the
// linked scheme implementations. Call it once at process start, before the
// first context is constructed; calling operations before Init is safe but
// their warnings are discarded.
func Init(logger *zap.Logger) error {
	if logger != nil {
		log = logger
	}
	return verifyProfiles()
}

// Cleanup flushes and discards the installed logger. Call it once at
// process end, after every context has been freed. Operations performed
// after Cleanup run unlogged.
func Cleanup() {
	_ = log.Sync()
	log = zap.NewNop()
}

// SetLogger replaces the package logger. Intended for callers that manage
// logger lifecycle themselves instead of going through Init.
func SetLogger(logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	log = logger
}

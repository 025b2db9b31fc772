package pqctls

import "runtime"

// secureZero zeroes the provided byte slice so private key material read
// from disk does not linger in memory after the engine has parsed it. The
// KeepAlive prevents the compiler from optimizing the zeroing away.
func secureZero(b []byte) {
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(b)
}

// Package memzero wipes sensitive byte slices.
package memzero

import "runtime"

// Zero overwrites each buffer with zeros. This is best-effort: copies made by
// the runtime or by earlier callers are not reached.
//
//go:noinline
func Zero(bufs ...[]byte) {
	for _, b := range bufs {
		clear(b)
	}
	runtime.KeepAlive(bufs)
}

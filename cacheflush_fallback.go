//go:build !arm64

package osd

// amd64 keeps the instruction cache coherent with stores, so there's
// nothing to flush.
func cacheflush(buf []byte) {}

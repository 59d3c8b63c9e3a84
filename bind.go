//go:build darwin || freebsd || linux || windows

package osd

import "github.com/ebitengine/purego"

// Bind looks up name in m and stores a Go function that calls it in fptr,
// which must be a pointer to a func variable with a C-compatible signature.
// It returns false, leaving fptr alone, if the symbol can't be found.
//
//	var compress func(dst, src unsafe.Pointer, n int) int
//	if !osd.Bind(m, "backend_compress", &compress) {
//		compress = defaultCompress
//	}
func Bind[T any](m *Module, name string, fptr *T) bool {
	addr, ok := m.Symbol(name)
	if !ok {
		return false
	}
	purego.RegisterFunc(fptr, addr)
	return true
}

//go:build arm64 && !cgo

package osd

// arm64 requires a C compiler to flush the instruction cache. Running
// generated code without flushing isn't safe, so refuse to build.
// Install a C compiler and build with CGO_ENABLED=1.
func cacheflush(buf []byte) {
	arm64_requires_cgo_for_instruction_cache_flushing()
}

// Host platform services for a recompiling emulator.
//
// The package hands out the pieces a dynamic recompiler needs from the OS
// and cannot get portably: contiguous address-space reservations with
// per-range protection, small read-write-execute code buffers, instruction
// cache invalidation, and symbol lookup across a list of candidate shared
// libraries. It does not generate code.
//
// Reservations and Modules don't lock. Each belongs to one goroutine at a
// time; callers that share one must serialize access.
//
// Limitations:
//   - Unix (Linux, macOS, FreeBSD) and Windows only
//   - arm64 needs cgo to flush the instruction cache
//   - On macOS, executable memory is mapped with MAP_JIT. On Apple Silicon
//     those pages are write-protected per thread, so AllocExecutable, a
//     CodeArena, or a Reservation with an execute intent can't be written
//     until the writing thread calls pthread_jit_write_protect_np(0). This
//     package doesn't make that call.
//   - Library lookup is unavailable on Unix systems purego doesn't support
package osd

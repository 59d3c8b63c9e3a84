package osd

import "golang.org/x/sys/unix"

// macOS refuses to make memory executable later unless it was mapped with
// MAP_JIT, and on Apple Silicon RWX mappings need it as well.
//
// https://developer.apple.com/documentation/apple-silicon/porting-just-in-time-compilers-to-apple-silicon
func reserveFlags(intent Access) int {
	if intent&AccessExecute != 0 {
		return unix.MAP_JIT
	}
	return 0
}

const executableFlags = unix.MAP_JIT

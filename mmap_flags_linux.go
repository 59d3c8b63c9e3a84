package osd

import "golang.org/x/sys/unix"

// A reservation may be far larger than what's ever made accessible, so don't
// charge it against swap up front.
func reserveFlags(Access) int {
	return unix.MAP_NORESERVE
}

const executableFlags = 0

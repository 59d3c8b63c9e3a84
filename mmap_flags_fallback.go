//go:build unix && !linux && !darwin

package osd

// FreeBSD, NetBSD and OpenBSD need nothing beyond MAP_PRIVATE|MAP_ANON.
//
// https://man.freebsd.org/cgi/man.cgi?mmap(2)
// https://man.netbsd.org/mmap.2
// https://man.openbsd.org/mmap.2
func reserveFlags(Access) int {
	return 0
}

const executableFlags = 0

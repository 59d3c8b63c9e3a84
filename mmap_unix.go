//go:build unix

package osd

import (
	"golang.org/x/sys/unix"
)

func protFlags(a Access) int {
	prot := unix.PROT_NONE
	if a&AccessRead != 0 {
		prot |= unix.PROT_READ
	}
	if a&AccessWrite != 0 {
		prot |= unix.PROT_WRITE
	}
	if a&AccessExecute != 0 {
		prot |= unix.PROT_EXEC
	}
	return prot
}

// mmapReserve maps size bytes of anonymous private memory that can't be
// accessed until mprotect says otherwise.
func mmapReserve(size int, intent Access) ([]byte, error) {
	return unix.Mmap(-1, 0, size, unix.PROT_NONE, unix.MAP_PRIVATE|unix.MAP_ANON|reserveFlags(intent))
}

func mmapExecutable(size int) ([]byte, error) {
	return unix.Mmap(-1, 0, size, protFlags(AccessReadWriteExecute), unix.MAP_PRIVATE|unix.MAP_ANON|executableFlags)
}

func munmap(mem []byte) error {
	return unix.Munmap(mem)
}

// mprotect changes the protection of mem. mem must start on a page boundary.
func mprotect(mem []byte, access Access) error {
	return unix.Mprotect(mem, protFlags(access))
}

//go:build windows

package osd

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

// Windows has no extra flags for executable mappings.
const executableFlags = 0

func protFlags(a Access) uint32 {
	switch a {
	case AccessRead:
		return windows.PAGE_READONLY
	case AccessWrite, AccessReadWrite:
		return windows.PAGE_READWRITE
	case AccessExecute:
		return windows.PAGE_EXECUTE
	case AccessReadExecute:
		return windows.PAGE_EXECUTE_READ
	case AccessWrite | AccessExecute, AccessReadWriteExecute:
		return windows.PAGE_EXECUTE_READWRITE
	default:
		return windows.PAGE_NOACCESS
	}
}

// mmapReserve reserves and commits size bytes with no access. Committing up
// front keeps later protection changes to a single VirtualProtect call.
func mmapReserve(size int, _ Access) ([]byte, error) {
	return virtualAlloc(size, windows.PAGE_NOACCESS)
}

func mmapExecutable(size int) ([]byte, error) {
	return virtualAlloc(size, windows.PAGE_EXECUTE_READWRITE)
}

func virtualAlloc(size int, prot uint32) ([]byte, error) {
	addr, err := windows.VirtualAlloc(0, uintptr(size), windows.MEM_RESERVE|windows.MEM_COMMIT, prot)
	if err != nil {
		return nil, err
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(addr)), size), nil
}

func munmap(mem []byte) error {
	return windows.VirtualFree(uintptr(unsafe.Pointer(unsafe.SliceData(mem))), 0, windows.MEM_RELEASE)
}

func mprotect(mem []byte, access Access) error {
	var old uint32
	return windows.VirtualProtect(uintptr(unsafe.Pointer(unsafe.SliceData(mem))), uintptr(len(mem)), protFlags(access), &old)
}

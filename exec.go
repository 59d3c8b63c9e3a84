package osd

import (
	"fmt"
	"unsafe"

	log "github.com/sirupsen/logrus"
)

// AllocExecutable maps size bytes that are readable, writable and
// executable right away. It's meant for small code blobs that don't need the
// block layout or protection changes of a Reservation.
//
// The returned slice has exactly size bytes and must be released with
// FreeExecutable.
func AllocExecutable(size int) ([]byte, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}

	mem, err := mmapExecutable(size)
	if err != nil {
		logger.WithFields(log.Fields{"size": size, "error": err}).Debug("Executable allocation failed")
		return nil, osError(ErrAlloc, "mmap", err)
	}
	return mem[:size:size], nil
}

// FreeExecutable unmaps memory returned by AllocExecutable. mem must be the
// same slice AllocExecutable returned, not a sub-slice of it: the length is
// what gets unmapped and isn't tracked anywhere else.
func FreeExecutable(mem []byte) error {
	if len(mem) == 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSize, len(mem))
	}

	if err := munmap(mem); err != nil {
		logger.WithFields(log.Fields{
			"addr":  fmt.Sprintf("%#x", uintptr(unsafe.Pointer(unsafe.SliceData(mem)))),
			"size":  len(mem),
			"error": err,
		}).Debug("Executable free failed")
		return osError(ErrRelease, "munmap", err)
	}
	return nil
}

package osd

import (
	"fmt"
	"math"
	"unsafe"

	log "github.com/sirupsen/logrus"
)

// Reservation is a contiguous, page-aligned range of address space. It starts
// out inaccessible; SetAccess grants rights to parts of it.
//
// A Reservation is owned by one caller. It must not be used concurrently.
type Reservation struct {
	mem      []byte
	pageSize int

	// offsets[i] is where block i starts. offsets[len(offsets)-1] is the
	// total size.
	offsets []int
}

// Reserve maps one region large enough to hold every block in blocks, each
// rounded up to a whole number of pages and laid out in order. Keeping the
// blocks in a single mapping guarantees nothing else lands between them, so
// code in one block can branch to another at a fixed offset.
//
// intent describes the rights the region will eventually be given. It
// doesn't grant anything; the region has no access until SetAccess is
// called.
func Reserve(blocks []int, intent Access) (*Reservation, error) {
	if !intent.valid() {
		return nil, ErrInvalidAccess
	}

	page, err := PageSize()
	if err != nil {
		return nil, err
	}

	offsets := make([]int, 0, len(blocks)+1)
	total := 0
	for i, b := range blocks {
		if b < 0 {
			return nil, fmt.Errorf("block %d: %w: %d", i, ErrInvalidSize, b)
		}
		if b > math.MaxInt-page || total > math.MaxInt-roundUp(b, page) {
			return nil, fmt.Errorf("block %d: %w: total size overflows", i, ErrInvalidSize)
		}
		offsets = append(offsets, total)
		total += roundUp(b, page)
	}
	if total == 0 {
		return nil, ErrEmptyReservation
	}
	offsets = append(offsets, total)

	mem, err := mmapReserve(total, intent)
	if err != nil {
		logger.WithFields(log.Fields{"size": total, "error": err}).Debug("Reserve failed")
		return nil, osError(ErrReserve, "mmap", err)
	}

	r := &Reservation{
		mem:      mem,
		pageSize: page,
		offsets:  offsets,
	}
	logger.WithFields(log.Fields{
		"addr":   fmt.Sprintf("%#x", r.Base()),
		"size":   total,
		"blocks": len(blocks),
		"intent": intent,
	}).Debug("Reserve memory")

	return r, nil
}

// Base returns the address of the first byte of the reservation, or 0 once
// it has been released.
func (r *Reservation) Base() uintptr {
	if r.mem == nil {
		return 0
	}
	return uintptr(unsafe.Pointer(unsafe.SliceData(r.mem)))
}

// Size returns the length of the reservation in bytes. It is always a
// multiple of PageSize.
func (r *Reservation) Size() int {
	return len(r.mem)
}

// PageSize returns the page size the reservation was laid out with.
func (r *Reservation) PageSize() int {
	return r.pageSize
}

// Bytes returns the whole reservation. Touching a byte without the matching
// access right faults.
func (r *Reservation) Bytes() []byte {
	return r.mem
}

// Blocks returns the number of blocks the reservation was created with.
func (r *Reservation) Blocks() int {
	return len(r.offsets) - 1
}

// Block returns block i, including the padding up to the next page.
func (r *Reservation) Block(i int) []byte {
	if r.mem == nil {
		return nil
	}
	return r.mem[r.offsets[i]:r.offsets[i+1]:r.offsets[i+1]]
}

// Offset returns the offset of block i from Base.
func (r *Reservation) Offset(i int) int {
	return r.offsets[i]
}

// SetAccess changes the rights of the bytes in [offset, offset+length). The
// range is widened to page boundaries, so neighboring bytes in the same
// pages change too.
//
// The range must lie within the reservation. Nothing is passed to the OS if
// it doesn't.
func (r *Reservation) SetAccess(offset, length int, access Access) error {
	if r.mem == nil {
		return ErrReleased
	}
	if !access.valid() {
		return ErrInvalidAccess
	}
	if offset < 0 || length < 0 || offset > len(r.mem) || length > len(r.mem)-offset {
		return fmt.Errorf("%w: offset %d, length %d, size %d", ErrOutOfRange, offset, length, len(r.mem))
	}
	if length == 0 {
		return nil
	}

	start := roundDown(offset, r.pageSize)
	end := roundUp(offset+length, r.pageSize)

	err := mprotect(r.mem[start:end], access)
	logger.WithFields(log.Fields{
		"addr":   fmt.Sprintf("%#x", r.Base()+uintptr(start)),
		"length": end - start,
		"access": access,
		"error":  err,
	}).Debug("Protect memory")
	if err != nil {
		return osError(ErrProtect, "mprotect", err)
	}
	return nil
}

// Release returns the whole reservation to the OS. The Reservation can't be
// used afterward; calling Release again returns ErrReleased without touching
// the OS, since the range may already belong to someone else.
func (r *Reservation) Release() error {
	if r.mem == nil {
		return ErrReleased
	}

	mem := r.mem
	r.mem = nil

	logger.WithFields(log.Fields{
		"addr": fmt.Sprintf("%#x", uintptr(unsafe.Pointer(unsafe.SliceData(mem)))),
		"size": len(mem),
	}).Debug("Release memory")

	if err := munmap(mem); err != nil {
		return osError(ErrRelease, "munmap", err)
	}
	return nil
}

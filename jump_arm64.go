package osd

import (
	"encoding/binary"
	"fmt"
	"unsafe"
)

// -----------------------------------
// | 000101 | ... 26 bit address ... |
// -----------------------------------
const _B = uint32(5 << 26)

// WriteJump writes a branch to dest at the start of buf and zeroes the rest
// of buf. buf must hold the bytes at the address they'll execute from, and
// dest must be 4-byte aligned and within ±128MiB of it.
func WriteJump(buf []byte, dest uintptr) error {
	if len(buf) < 4 {
		return fmt.Errorf("%w: %d bytes is too small for a branch", ErrInvalidSize, len(buf))
	}

	addr := int64(uintptr(unsafe.Pointer(unsafe.SliceData(buf))))
	offset := int64(dest) - addr

	if offset&3 != 0 {
		return fmt.Errorf("%w: branch target %#x is not 4-byte aligned", ErrOutOfRange, dest)
	}
	if offset < -(1<<27) || offset >= (1<<27) {
		return fmt.Errorf("%w: branch offset %d exceeds 128MiB", ErrOutOfRange, offset)
	}

	inst := _B | (uint32(offset>>2) & (1<<26 - 1))
	binary.LittleEndian.PutUint32(buf, inst)

	for i := 4; i < len(buf); i++ {
		buf[i] = 0
	}

	return nil
}

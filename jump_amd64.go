package osd

import (
	"encoding/binary"
	"fmt"
	"math"
	"unsafe"
)

const (
	opcodeINT3 = 0xcc
	opcodeJMP  = 0xe9 // JMP rel32

	jumpSize = 5 // 1 byte opcode + 4 byte displacement
)

// WriteJump writes a jump to dest at the start of buf and pads the rest of
// buf with INT3. buf must hold the bytes at the address they'll execute
// from, and dest must be within ±2GiB of it.
func WriteJump(buf []byte, dest uintptr) error {
	if len(buf) < jumpSize {
		return fmt.Errorf("%w: %d bytes is too small for a jump", ErrInvalidSize, len(buf))
	}

	// Displacement is relative to the end of the instruction.
	src := uintptr(unsafe.Pointer(unsafe.SliceData(buf))) + jumpSize
	diff := int64(dest) - int64(src)
	if diff < math.MinInt32 || diff > math.MaxInt32 {
		return fmt.Errorf("%w: jump displacement %d doesn't fit in 32 bits", ErrOutOfRange, diff)
	}

	buf[0] = opcodeJMP
	binary.LittleEndian.PutUint32(buf[1:], uint32(int32(diff)))

	for i := jumpSize; i < len(buf); i++ {
		buf[i] = opcodeINT3
	}

	return nil
}

package osd

import (
	"bytes"
	"strings"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/arch/x86/x86asm"
)

func TestWriteJump(t *testing.T) {
	assert := assert.New(t)

	buf := make([]byte, 16)
	base := uintptr(unsafe.Pointer(unsafe.SliceData(buf)))

	cases := map[string]uintptr{
		"forward":  base + 0x1000,
		"backward": base - 0x1000,
		"self":     base,
	}

	for name, dest := range cases {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, WriteJump(buf, dest))

			inst, err := x86asm.Decode(buf, 64)
			require.NoError(t, err)
			assert.Equal(x86asm.JMP, inst.Op)
			assert.Equal(jumpSize, inst.Len)
			assert.Equal(x86asm.Rel(int32(dest-base-jumpSize)), inst.Args[0])

			assert.Equal(bytes.Repeat([]byte{opcodeINT3}, len(buf)-jumpSize), buf[jumpSize:])
		})
	}
}

func TestWriteJump_Invalid(t *testing.T) {
	buf := make([]byte, 16)
	base := uintptr(unsafe.Pointer(unsafe.SliceData(buf)))

	assert.ErrorIs(t, WriteJump(buf[:4], base), ErrInvalidSize)
	assert.ErrorIs(t, WriteJump(buf, base+1<<32), ErrOutOfRange)
}

func TestDisassemble(t *testing.T) {
	listing, err := Disassemble(return42)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(listing), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "b82a000000")
	assert.Contains(t, lines[0], "MOV")
	assert.Contains(t, lines[1], "c3")
	assert.Contains(t, lines[1], "RET")
}

func TestDisassemble_Invalid(t *testing.T) {
	cases := map[string][]byte{
		"truncated":         return42[:3],
		"truncated at end":  append(append([]byte{}, return42...), 0xb8, 0x01),
		"prefix only":       {0x66},
		"opcode after code": {0xc3, 0x0f},
	}

	for name, code := range cases {
		t.Run(name, func(t *testing.T) {
			listing, err := Disassemble(code)
			assert.ErrorIs(t, err, ErrUndecodable)
			assert.Empty(t, listing)
		})
	}
}

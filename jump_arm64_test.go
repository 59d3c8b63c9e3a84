package osd

import (
	"strings"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/arch/arm64/arm64asm"
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

			inst, err := arm64asm.Decode(buf)
			require.NoError(t, err)
			assert.Equal(arm64asm.B, inst.Op)
			assert.Equal(arm64asm.PCRel(int64(dest)-int64(base)), inst.Args[0])

			assert.Equal(make([]byte, len(buf)-4), buf[4:])
		})
	}
}

func TestWriteJump_Invalid(t *testing.T) {
	buf := make([]byte, 16)
	base := uintptr(unsafe.Pointer(unsafe.SliceData(buf)))

	assert.ErrorIs(t, WriteJump(buf[:3], base), ErrInvalidSize)
	assert.ErrorIs(t, WriteJump(buf, base+2), ErrOutOfRange)
	assert.ErrorIs(t, WriteJump(buf, base+1<<28), ErrOutOfRange)
}

func TestDisassemble(t *testing.T) {
	listing, err := Disassemble(return42)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(listing), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "400580d2")
	assert.Contains(t, lines[1], "c0035fd6")
	assert.Contains(t, strings.ToUpper(lines[1]), "RET")
}

func TestDisassemble_PartialWord(t *testing.T) {
	listing, err := Disassemble(return42[:6])
	assert.ErrorIs(t, err, ErrUndecodable)
	assert.Empty(t, listing)
}

package osd

import (
	"fmt"

	"golang.org/x/arch/arm64/arm64asm"
)

// Disassemble returns a listing of generated code. It fails on the first
// word that isn't a valid instruction, or on a trailing partial word.
func Disassemble(code []byte) (string, error) {
	return listing(code, decodeARM64)
}

func decodeARM64(code []byte) (int, string, error) {
	if len(code) < 4 {
		return 0, "", fmt.Errorf("%w: %d trailing bytes", ErrUndecodable, len(code))
	}
	inst, err := arm64asm.Decode(code)
	if err != nil {
		return 0, "", fmt.Errorf("%w: %v", ErrUndecodable, err)
	}
	return 4, inst.String(), nil
}

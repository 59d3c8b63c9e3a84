package osd

import (
	"fmt"

	"golang.org/x/arch/x86/x86asm"
)

// Disassemble returns a listing of generated code. It fails on the first
// byte sequence that isn't a complete instruction.
func Disassemble(code []byte) (string, error) {
	return listing(code, decodeX86)
}

func decodeX86(code []byte) (int, string, error) {
	inst, err := x86asm.Decode(code, 64)
	if err != nil {
		return 0, "", fmt.Errorf("%w: %v", ErrUndecodable, err)
	}
	// Decode reports a lone prefix, or bytes cut off mid-instruction, as an
	// instruction with no opcode.
	if inst.Op == 0 {
		return 0, "", fmt.Errorf("%w: %s", ErrUndecodable, inst)
	}
	return inst.Len, inst.String(), nil
}

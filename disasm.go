package osd

import (
	"fmt"
	"strings"
	"unsafe"
)

// decodeFunc decodes the instruction at the start of code and returns its
// length and text.
type decodeFunc func(code []byte) (int, string, error)

// listing formats code one instruction per line: address, encoding, text.
// Addresses are where code sits in memory, which is where it runs from.
func listing(code []byte, decode decodeFunc) (string, error) {
	var sb strings.Builder

	base := uintptr(unsafe.Pointer(unsafe.SliceData(code)))

	for off := 0; off < len(code); {
		n, text, err := decode(code[off:])
		if err != nil {
			return "", fmt.Errorf("offset %d: %w", off, err)
		}
		fmt.Fprintf(&sb, "%#010x  %-20x  %s\n", base+uintptr(off), code[off:off+n], text)
		off += n
	}

	return sb.String(), nil
}

//go:build !amd64 && !arm64

package osd

func Disassemble(code []byte) (string, error) {
	return "", ErrUnsupportedArch
}

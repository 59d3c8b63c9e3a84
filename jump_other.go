//go:build !amd64 && !arm64

package osd

// WriteJump is only implemented for amd64 and arm64.
func WriteJump(buf []byte, dest uintptr) error {
	return ErrUnsupportedArch
}

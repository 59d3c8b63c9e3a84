//go:build !darwin && !freebsd && !linux && !windows

package osd

import "errors"

var errNoLoader = errors.New("dynamic loading is not supported on this platform")

// hostLoader fails every open, so every Module stays unbound and callers take
// their fallback path.
type hostLoader struct{}

func (hostLoader) Open(string) (uintptr, error) {
	return 0, errNoLoader
}

func (hostLoader) Lookup(uintptr, string) (uintptr, error) {
	return 0, errNoLoader
}

func (hostLoader) Close(uintptr) error {
	return nil
}

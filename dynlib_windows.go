//go:build windows

package osd

import "golang.org/x/sys/windows"

type hostLoader struct{}

func (hostLoader) Open(name string) (uintptr, error) {
	h, err := windows.LoadLibrary(name)
	return uintptr(h), err
}

func (hostLoader) Lookup(handle uintptr, symbol string) (uintptr, error) {
	return windows.GetProcAddress(windows.Handle(handle), symbol)
}

func (hostLoader) Close(handle uintptr) error {
	return windows.FreeLibrary(windows.Handle(handle))
}

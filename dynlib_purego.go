//go:build darwin || freebsd || linux

package osd

import "github.com/ebitengine/purego"

type hostLoader struct{}

func (hostLoader) Open(name string) (uintptr, error) {
	return purego.Dlopen(name, purego.RTLD_LAZY|purego.RTLD_LOCAL)
}

func (hostLoader) Lookup(handle uintptr, symbol string) (uintptr, error) {
	return purego.Dlsym(handle, symbol)
}

func (hostLoader) Close(handle uintptr) error {
	return purego.Dlclose(handle)
}

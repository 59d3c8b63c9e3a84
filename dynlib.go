package osd

import (
	"fmt"

	log "github.com/sirupsen/logrus"
)

// libraryLoader is the OS dynamic loader.
type libraryLoader interface {
	Open(name string) (uintptr, error)
	Lookup(handle uintptr, symbol string) (uintptr, error)
	Close(handle uintptr) error
}

type bindState uint8

const (
	unbound bindState = iota
	bound
	closed
)

// Module resolves symbols from the first of several candidate libraries that
// provides them. Candidates are interchangeable builds of the same backend,
// so once a symbol is found in one of them every later lookup uses that
// library and no other.
//
// A Module must not be used concurrently.
type Module struct {
	libraries []string
	loader    libraryLoader

	state   bindState
	library string
	handle  uintptr
	symbols map[string]uintptr
}

// OpenModule returns a Module that will search libraries in order. Nothing is
// loaded until the first call to Symbol.
func OpenModule(libraries ...string) *Module {
	return newModule(hostLoader{}, libraries)
}

func newModule(loader libraryLoader, libraries []string) *Module {
	return &Module{
		libraries: append([]string(nil), libraries...),
		loader:    loader,
		symbols:   map[string]uintptr{},
	}
}

// Symbol returns the address of name. The second result is false if no
// library provides it, which is the normal outcome when an optional backend
// isn't installed.
//
// Before any symbol has been found each candidate is opened in turn and kept
// only if it has name. After that only the chosen library is searched.
func (m *Module) Symbol(name string) (uintptr, bool) {
	switch m.state {
	case bound:
		if addr, ok := m.symbols[name]; ok {
			return addr, true
		}
		addr, err := m.loader.Lookup(m.handle, name)
		if err != nil || addr == 0 {
			return 0, false
		}
		m.symbols[name] = addr
		return addr, true

	case unbound:
		for _, library := range m.libraries {
			handle, err := m.loader.Open(library)
			if err != nil {
				logger.WithFields(log.Fields{"library": library, "error": err}).Debug("Library unavailable")
				continue
			}

			addr, err := m.loader.Lookup(handle, name)
			if err != nil || addr == 0 {
				if err := m.loader.Close(handle); err != nil {
					logger.WithFields(log.Fields{"library": library, "error": err}).Debug("Library close failed")
				}
				continue
			}

			m.state = bound
			m.library = library
			m.handle = handle
			m.symbols[name] = addr

			logger.WithFields(log.Fields{"library": library, "symbol": name}).Debug("Bind library")
			return addr, true
		}
	}

	return 0, false
}

// Library returns the candidate the Module is bound to, or "" if no symbol
// has been found yet.
func (m *Module) Library() string {
	return m.library
}

// Bound reports whether a library has been chosen.
func (m *Module) Bound() bool {
	return m.state == bound
}

// Close unloads the bound library, if there is one. Addresses returned by
// Symbol are invalid afterward, as is the Module.
func (m *Module) Close() error {
	state := m.state
	m.state = closed
	m.symbols = nil

	if state != bound {
		return nil
	}

	logger.WithFields(log.Fields{"library": m.library}).Debug("Unload library")
	if err := m.loader.Close(m.handle); err != nil {
		return fmt.Errorf("close %s: %w", m.library, err)
	}
	m.handle = 0
	return nil
}

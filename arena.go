package osd

import (
	"errors"
	"fmt"
	"sync"
	"unsafe"

	"github.com/pboyd/malloc"
	log "github.com/sirupsen/logrus"
)

// CodeArena hands out small pieces of executable memory from a shared arena,
// for code blobs too small to deserve a mapping each.
//
// The arena is either writable or executable-only. Allocate, Free and writes
// to allocated code must happen between BeginWrite and EndWrite. Invalidate
// the instruction cache for anything written before running it.
type CodeArena struct {
	arena    *malloc.Arena
	backend  *arenaBackend
	mu       sync.Mutex
	writable bool
	closed   bool
}

// NewCodeArena creates an arena with room for at least size bytes of code.
// The arena starts out writable. Call Close to return its memory to the OS.
func NewCodeArena(size int) (*CodeArena, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}

	be := newArenaBackend(malloc.MmapBackend(
		malloc.MmapProt(arenaProtExec),
		malloc.MmapFlags(executableFlags),
	))

	a := &CodeArena{backend: be}
	a.arena = malloc.NewArena(uint64(size), malloc.Backend(be))
	if a.arena == nil {
		be.release()
		return nil, errors.New("unable to initialize arena")
	}
	a.writable = true

	logger.WithFields(log.Fields{"size": size}).Debug("Create code arena")

	return a, nil
}

// BeginWrite makes the arena writable. Calling it on a writable arena does
// nothing.
func (a *CodeArena) BeginWrite() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.closed {
		return ErrReleased
	}
	if a.writable {
		return nil
	}

	err := a.backend.Protect(arenaProtRWX)
	if err != nil {
		return osError(ErrProtect, "arena", err)
	}
	a.writable = true
	return nil
}

// EndWrite makes the arena read+execute. Calling it on an arena that isn't
// writable does nothing.
func (a *CodeArena) EndWrite() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.closed {
		return ErrReleased
	}
	if !a.writable {
		return nil
	}

	err := a.backend.Protect(arenaProtRX)
	if err != nil {
		return osError(ErrProtect, "arena", err)
	}
	a.writable = false
	return nil
}

// Allocate returns size bytes of code memory. It panics if the arena isn't
// writable.
func (a *CodeArena) Allocate(size int) ([]byte, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.closed {
		return nil, ErrReleased
	}
	if !a.writable {
		panic("Allocate called outside BeginWrite/EndWrite")
	}

	code, err := malloc.MallocSlice[byte](a.arena, size)
	if err != nil {
		return nil, osError(ErrAlloc, "arena", err)
	}
	return code, nil
}

// Free returns code to the arena. It panics if the arena isn't writable.
func (a *CodeArena) Free(code []byte) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.closed {
		return
	}
	if !a.writable {
		panic("Free called outside BeginWrite/EndWrite")
	}

	malloc.FreeSlice(a.arena, code)
}

// Close unmaps the arena. Code allocated from it must not be run or touched
// afterward. Closing twice returns ErrReleased.
func (a *CodeArena) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.closed {
		return ErrReleased
	}
	a.closed = true
	a.arena = nil

	logger.Debug("Close code arena")

	if err := a.backend.release(); err != nil {
		return osError(ErrRelease, "arena", err)
	}
	return nil
}

// arenaBackend remembers every buffer the mmap backend hands the arena, so
// all of them can be unmapped when the arena is closed.
type arenaBackend struct {
	malloc.ArenaBackend
	bufs map[*byte][]byte
}

func newArenaBackend(be malloc.ArenaBackend) *arenaBackend {
	return &arenaBackend{
		ArenaBackend: be,
		bufs:         map[*byte][]byte{},
	}
}

func (b *arenaBackend) Grow(buf []byte, size uintptr) ([]byte, error) {
	newBuf, err := b.ArenaBackend.Grow(buf, size)
	if err != nil {
		return nil, err
	}
	b.bufs[unsafe.SliceData(newBuf)] = newBuf
	return newBuf, nil
}

func (b *arenaBackend) Free(buf []byte) error {
	delete(b.bufs, unsafe.SliceData(buf))
	if fb, ok := b.ArenaBackend.(malloc.FreeableArenaBackend); ok {
		return fb.Free(buf)
	}
	return nil
}

func (b *arenaBackend) Protect(prot int) error {
	if pb, ok := b.ArenaBackend.(malloc.ProtectedArenaBackend); ok {
		return pb.Protect(prot)
	}
	return nil
}

func (b *arenaBackend) release() error {
	errs := make([]error, 0, len(b.bufs))
	for _, buf := range b.bufs {
		errs = append(errs, b.Free(buf))
	}
	return errors.Join(errs...)
}

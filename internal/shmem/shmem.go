// Package shmem allocates the shared-memory arena a QueueSet is built
// over. It backs the arena with a real anonymous MAP_SHARED mapping via
// golang.org/x/sys/unix, so this module's "shared memory" is not a plain
// Go byte slice pretending to be shared — it is backed by the same
// syscall a cross-process or cross-privilege producer/consumer would use.
package shmem

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"
)

// Arena is a shared-memory region of fixed size, mmap'd MAP_SHARED|
// MAP_ANONYMOUS so it survives being handed to another goroutine or, on
// platforms that support it, shared across fork. Close unmaps it.
type Arena struct {
	mem []byte
}

// NewArena allocates a zeroed arena of the given size, rounded up to the
// page size.
func NewArena(size int) (*Arena, error) {
	if size <= 0 {
		return nil, fmt.Errorf("shmem: invalid arena size %d", size)
	}
	mem, err := unix.Mmap(-1, 0, pageRound(size), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED|unix.MAP_ANONYMOUS)
	if err != nil {
		return nil, fmt.Errorf("shmem: mmap failed: %w", err)
	}
	return &Arena{mem: mem[:size]}, nil
}

// Bytes returns the raw backing slice. Callers build typed views
// (internal/wire.HeaderView, etc.) over pointers derived from this slice.
func (a *Arena) Bytes() []byte { return a.mem }

// BasePointer returns the address of byte offset off within the arena, as
// an unsafe.Pointer suitable for constructing a wire view.
func (a *Arena) BasePointer(off int) unsafe.Pointer {
	return unsafe.Pointer(&a.mem[off])
}

// Close unmaps the arena. The Arena must not be used afterwards.
func (a *Arena) Close() error {
	if a.mem == nil {
		return nil
	}
	full := a.mem[:cap(a.mem)]
	err := unix.Munmap(full)
	a.mem = nil
	return err
}

func pageRound(size int) int {
	const pageSize = 4096
	if rem := size % pageSize; rem != 0 {
		size += pageSize - rem
	}
	return size
}

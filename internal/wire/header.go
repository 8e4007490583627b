// Package wire defines the bit-exact in-memory structures shared between
// the host and the controller, and the volatile access primitives over
// them. Everything here is part of the external wire contract: field
// order, byte offsets and widths must not change.
package wire

import (
	"sync/atomic"
	"unsafe"
)

// Header is the 32-byte queue header. The first 16 bytes are written only
// by the host; the second 16 bytes are written only by the controller.
// Keeping the two halves on separate cachelines-within-a-line avoids
// false-sharing write-backs between the two sides.
type Header struct {
	RequestWptr   uint32 // host-written
	ResponseRptr  uint32 // host-written
	reserved0     uint32
	reserved1     uint32
	RequestRptr   uint32 // controller-written
	ResponseWptr  uint32 // controller-written
	LastSerial    uint32 // controller-written
	reserved2     uint32
}

// Compile-time size check: the header must be exactly 32 bytes.
var _ [32]byte = [unsafe.Sizeof(Header{})]byte{}

// HeaderView is a volatile accessor over a Header placed at a fixed
// address inside the shared-memory arena. All reads and writes go through
// sync/atomic, which is this codebase's stand-in for a volatile qualifier:
// the compiler may not cache, reorder past, or elide these accesses,
// because a peer on another CPU mutates the backing memory concurrently.
type HeaderView struct {
	base unsafe.Pointer
}

// NewHeaderView wraps the Header at base. Caller guarantees base points
// into a live, appropriately-sized shared-memory region for the lifetime
// of the view.
func NewHeaderView(base unsafe.Pointer) HeaderView {
	return HeaderView{base: base}
}

func (h HeaderView) requestWptrPtr() *uint32  { return (*uint32)(h.base) }
func (h HeaderView) responseRptrPtr() *uint32 { return (*uint32)(unsafe.Add(h.base, 4)) }
func (h HeaderView) requestRptrPtr() *uint32  { return (*uint32)(unsafe.Add(h.base, 16)) }
func (h HeaderView) responseWptrPtr() *uint32 { return (*uint32)(unsafe.Add(h.base, 20)) }
func (h HeaderView) lastSerialPtr() *uint32   { return (*uint32)(unsafe.Add(h.base, 24)) }

// Host-written fields: loaded by the controller, stored by test code that
// impersonates the host.

func (h HeaderView) LoadRequestWptr() uint32   { return atomic.LoadUint32(h.requestWptrPtr()) }
func (h HeaderView) StoreRequestWptr(v uint32) { atomic.StoreUint32(h.requestWptrPtr(), v) }

func (h HeaderView) LoadResponseRptr() uint32   { return atomic.LoadUint32(h.responseRptrPtr()) }
func (h HeaderView) StoreResponseRptr(v uint32) { atomic.StoreUint32(h.responseRptrPtr(), v) }

// Controller-written fields: stored by the controller, loaded by test code
// that impersonates the host.

func (h HeaderView) LoadRequestRptr() uint32   { return atomic.LoadUint32(h.requestRptrPtr()) }
func (h HeaderView) StoreRequestRptr(v uint32) { atomic.StoreUint32(h.requestRptrPtr(), v) }

func (h HeaderView) LoadResponseWptr() uint32   { return atomic.LoadUint32(h.responseWptrPtr()) }
func (h HeaderView) StoreResponseWptr(v uint32) { atomic.StoreUint32(h.responseWptrPtr(), v) }

func (h HeaderView) LoadLastSerial() uint32   { return atomic.LoadUint32(h.lastSerialPtr()) }
func (h HeaderView) StoreLastSerial(v uint32) { atomic.StoreUint32(h.lastSerialPtr(), v) }

// Reset zeroes the four ring pointers and LastSerial; the reserved words
// are left as they are. Used at queue-set init.
func (h HeaderView) Reset() {
	h.StoreRequestWptr(0)
	h.StoreResponseRptr(0)
	h.StoreRequestRptr(0)
	h.StoreResponseWptr(0)
	h.StoreLastSerial(0)
}

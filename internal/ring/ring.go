package ring

import (
	"errors"
	"unsafe"

	"github.com/tenstorrent/smc-msgqueue/internal/constants"
	"github.com/tenstorrent/smc-msgqueue/internal/wire"
)

// ErrFull is returned by a push against a ring whose wptr-rptr distance
// has reached Capacity.
var ErrFull = errors.New("ring: full")

// ErrEmpty is returned by a pop against a ring whose rptr equals its wptr.
var ErrEmpty = errors.New("ring: empty")

// ErrInvalidHeader is returned when a ring's wptr-rptr distance exceeds
// Capacity: the in-flight count can never legitimately be greater than
// Capacity, so this means the header holds pointer values that cannot
// have arisen from normal push/pop traffic. This signals a corrupt or
// never-initialized header and is treated as fatal by the dispatcher,
// which reinitializes the queue set on seeing it.
var ErrInvalidHeader = errors.New("ring: invalid header")

// Ring is one side (request or response) of one queue's slot array, with
// the double-width-counter pointer discipline from the wire contract.
// wptr/rptr live in the queue Header; Ring only needs pointers to the
// specific counter pair it owns plus the backing slot array.
type Ring struct {
	slots      unsafe.Pointer // base of the Capacity-element slot array
	loadWptr   func() uint32
	storeWptr  func(uint32)
	loadRptr   func() uint32
	storeRptr  func(uint32)
}

// New builds a Ring over a slot array living at slotsBase, using the
// given pointer accessors for its write/read counters.
func New(slotsBase unsafe.Pointer, loadWptr func() uint32, storeWptr func(uint32), loadRptr func() uint32, storeRptr func(uint32)) *Ring {
	return &Ring{
		slots:     slotsBase,
		loadWptr:  loadWptr,
		storeWptr: storeWptr,
		loadRptr:  loadRptr,
		storeRptr: storeRptr,
	}
}

func wrapDistance(wptr, rptr uint32) uint32 {
	return (wptr - rptr) % constants.PointerWrap
}

// checkSane reports ErrInvalidHeader if wptr and rptr imply an in-flight
// count greater than Capacity, which cannot arise from normal traffic.
func checkSane(wptr, rptr uint32) error {
	if wrapDistance(wptr, rptr) > constants.Capacity {
		return ErrInvalidHeader
	}
	return nil
}

// IsEmpty reports wptr == rptr.
func (r *Ring) IsEmpty() bool {
	return r.loadWptr() == r.loadRptr()
}

// IsFull reports wptr - rptr == Capacity (mod PointerWrap).
func (r *Ring) IsFull() bool {
	return wrapDistance(r.loadWptr(), r.loadRptr()) == constants.Capacity
}

func (r *Ring) slotAt(idx uint32) unsafe.Pointer {
	return unsafe.Add(r.slots, uintptr(idx)*constants.SlotSize)
}

// Push writes words into the next free slot and advances wptr. Callers on
// the writer side of this ring (host for the request ring, controller for
// the response ring) use this. Returns ErrFull without modifying the ring
// if it is at capacity.
func (r *Ring) Push(words [constants.RequestWords]uint32) error {
	wptr := r.loadWptr()
	rptr := r.loadRptr()
	if err := checkSane(wptr, rptr); err != nil {
		return err
	}
	if wrapDistance(wptr, rptr) == constants.Capacity {
		return ErrFull
	}
	idx := wptr % constants.Capacity
	slot := r.slotAt(idx)
	buf := (*[constants.SlotSize]byte)(slot)[:]
	wire.MarshalSlot(&words, buf)
	releaseFence()
	r.storeWptr((wptr + 1) % constants.PointerWrap)
	return nil
}

// Pop reads the oldest occupied slot and advances rptr. Callers on the
// reader side of this ring (controller for the request ring, host for the
// response ring) use this. Returns ErrEmpty without modifying the ring if
// wptr == rptr.
func (r *Ring) Pop() ([constants.RequestWords]uint32, error) {
	var words [constants.RequestWords]uint32
	wptr := r.loadWptr()
	rptr := r.loadRptr()
	if err := checkSane(wptr, rptr); err != nil {
		return words, err
	}
	if wptr == rptr {
		return words, ErrEmpty
	}
	acquireFence()
	idx := rptr % constants.Capacity
	slot := r.slotAt(idx)
	buf := (*[constants.SlotSize]byte)(slot)[:]
	wire.UnmarshalSlot(buf, &words)
	r.storeRptr((rptr + 1) % constants.PointerWrap)
	return words, nil
}

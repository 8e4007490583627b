// Package msgqueue implements the host<->controller shared-memory message
// queue dispatcher: a fixed arena of independent request/response ring
// pairs, a lock-free handler registry keyed by command code, and a
// scan-and-drain dispatch loop that routes each request to its handler
// and stamps a response.
package msgqueue

import (
	"errors"
	"fmt"

	"github.com/tenstorrent/smc-msgqueue/internal/constants"
	"github.com/tenstorrent/smc-msgqueue/internal/dispatch"
	"github.com/tenstorrent/smc-msgqueue/internal/ring"
	"github.com/tenstorrent/smc-msgqueue/internal/shmem"
	"github.com/tenstorrent/smc-msgqueue/internal/wire"
)

// queue bundles one queue's header view with its two rings.
type queue struct {
	header   wire.HeaderView
	requests *ring.Ring  // host writes, controller reads
	response *ring.Ring  // controller writes, host reads
}

// QueueSet owns the shared-memory arena backing NumQueues independent
// request/response ring pairs and exposes the controller-side view the
// Dispatcher drains. Construct with NewQueueSet; call Close when done.
type QueueSet struct {
	arena  *shmem.Arena
	queues [constants.NumQueues]queue
}

// NewQueueSet allocates a fresh shared-memory arena and lays out
// NumQueues header+ring regions inside it, per the wire contract's exact
// byte layout (internal/wire.QueueBase and friends).
func NewQueueSet() (*QueueSet, error) {
	arena, err := shmem.NewArena(constants.ArenaSize)
	if err != nil {
		return nil, fmt.Errorf("msgqueue: new queue set: %w", err)
	}
	qs := &QueueSet{arena: arena}
	for q := 0; q < constants.NumQueues; q++ {
		qs.queues[q] = qs.buildQueue(q)
		qs.queues[q].header.Reset()
	}
	return qs, nil
}

func (qs *QueueSet) buildQueue(q int) queue {
	header := wire.NewHeaderView(qs.arena.BasePointer(wire.HeaderOffset(q)))
	reqBase := qs.arena.BasePointer(wire.RequestSlotOffset(q, 0))
	rspBase := qs.arena.BasePointer(wire.ResponseSlotOffset(q, 0))

	requests := ring.New(reqBase, header.LoadRequestWptr, header.StoreRequestWptr, header.LoadRequestRptr, header.StoreRequestRptr)
	response := ring.New(rspBase, header.LoadResponseWptr, header.StoreResponseWptr, header.LoadResponseRptr, header.StoreResponseRptr)

	return queue{header: header, requests: requests, response: response}
}

// NumQueues implements dispatch.Queues.
func (qs *QueueSet) NumQueues() int { return constants.NumQueues }

// RequestPop implements dispatch.Queues: the controller's read side of
// queue q's request ring.
func (qs *QueueSet) RequestPop(q int) ([constants.RequestWords]uint32, error) {
	words, err := qs.queues[q].requests.Pop()
	if err == nil {
		return words, nil
	}
	if errors.Is(err, ring.ErrInvalidHeader) {
		return words, newError("RequestPop", q, CodeInvalidHeader, err)
	}
	return words, newError("RequestPop", q, CodeQueueEmpty, err)
}

// ResponsePush implements dispatch.Queues: the controller's write side of
// queue q's response ring.
func (qs *QueueSet) ResponsePush(q int, words [constants.RequestWords]uint32) error {
	err := qs.queues[q].response.Push(words)
	if err == nil {
		return nil
	}
	if errors.Is(err, ring.ErrInvalidHeader) {
		return newError("ResponsePush", q, CodeInvalidHeader, err)
	}
	return newError("ResponsePush", q, CodeQueueFull, err)
}

// RequestPush is the host's write side of queue q's request ring. Exposed
// for HostStub and for embedders that drive the host side in-process
// (e.g. a simulator).
func (qs *QueueSet) RequestPush(q int, words [constants.RequestWords]uint32) error {
	err := qs.queues[q].requests.Push(words)
	if err == nil {
		return nil
	}
	if errors.Is(err, ring.ErrInvalidHeader) {
		return newError("RequestPush", q, CodeInvalidHeader, err)
	}
	return newError("RequestPush", q, CodeQueueFull, err)
}

// ResponsePop is the host's read side of queue q's response ring.
func (qs *QueueSet) ResponsePop(q int) ([constants.RequestWords]uint32, error) {
	words, err := qs.queues[q].response.Pop()
	if err == nil {
		return words, nil
	}
	if errors.Is(err, ring.ErrInvalidHeader) {
		return words, newError("ResponsePop", q, CodeInvalidHeader, err)
	}
	return words, newError("ResponsePop", q, CodeQueueEmpty, err)
}

// Reset reinitializes every queue's header to its power-on state,
// implementing dispatch.Queues. The dispatcher calls this when it detects
// a corrupt header, treating the condition as fatal and starting the
// queue set over from a known-clean state; it is also safe to call
// directly to reset a QueueSet between test cases.
func (qs *QueueSet) Reset() error {
	for q := 0; q < constants.NumQueues; q++ {
		qs.queues[q].header.Reset()
	}
	return nil
}

// QueueDepth reports the number of unread slots (controller-visible) in
// queue q's request ring, for metrics and status reporting.
func (qs *QueueSet) QueueDepth(q int) uint32 {
	h := qs.queues[q].header
	wptr, rptr := h.LoadRequestWptr(), h.LoadRequestRptr()
	return (wptr - rptr) % constants.PointerWrap
}

// Close releases the arena's backing mapping.
func (qs *QueueSet) Close() error {
	return qs.arena.Close()
}

var _ dispatch.Queues = (*QueueSet)(nil)

package dispatch

import (
	"errors"
	"time"

	"github.com/tenstorrent/smc-msgqueue/internal/constants"
	"github.com/tenstorrent/smc-msgqueue/internal/interfaces"
	"github.com/tenstorrent/smc-msgqueue/internal/logging"
	"github.com/tenstorrent/smc-msgqueue/internal/ring"
	"github.com/tenstorrent/smc-msgqueue/internal/wire"
)

// StatusHandlerPanic is stamped when a handler panics instead of
// returning normally. Not part of the wire contract's reserved sentinels
// (0xFE/0xFF); it occupies the handler-defined error range (0x01-0xFD)
// the dispatcher is otherwise forbidden from interpreting, reserved here
// so "no exceptions or panics are propagated out of the dispatcher" (the
// wire contract's error-handling design) holds even for a buggy handler.
const StatusHandlerPanic = 0xFD

// Queues is the minimal view over a queue set the dispatcher needs:
// request pop (controller reads) and response push (controller writes).
// The concrete QueueSet type lives in the root package and satisfies this
// structurally, avoiding an import cycle.
type Queues interface {
	NumQueues() int
	RequestPop(q int) ([constants.RequestWords]uint32, error)
	ResponsePush(q int, words [constants.RequestWords]uint32) error
	// Reset reinitializes every queue's header to its power-on state. The
	// dispatcher calls this when it detects a corrupt header (a
	// wptr-rptr distance outside [0, Capacity]) on any ring.
	Reset() error
}

// Dispatcher ties a Queues view and a Registry together and implements
// one scan pass plus a convenience polling loop.
type Dispatcher struct {
	queues   Queues
	registry *Registry
	logger   interfaces.Logger
	observer interfaces.Observer
}

// New builds a Dispatcher. logger and observer may be nil.
func New(queues Queues, registry *Registry, logger interfaces.Logger, observer interfaces.Observer) *Dispatcher {
	if logger == nil {
		logger = logging.Default()
	}
	return &Dispatcher{queues: queues, registry: registry, logger: logger, observer: observer}
}

// ProcessMessageQueues performs one scan pass: for each queue in
// ascending order, drain every pending request fully (FIFO) before
// moving to the next queue, dispatching each to its registered handler
// and pushing exactly one response per request popped.
func (d *Dispatcher) ProcessMessageQueues() {
	for q := 0; q < d.queues.NumQueues(); q++ {
		d.drainQueue(q)
	}
}

func (d *Dispatcher) drainQueue(q int) {
	for {
		words, err := d.queues.RequestPop(q)
		if err != nil {
			if errors.Is(err, ring.ErrEmpty) {
				return
			}
			if errors.Is(err, ring.ErrInvalidHeader) {
				d.handleInvalidHeader(q, "request", err)
				return
			}
			d.logger.Errorf("queue %d: unexpected request pop error: %v", q, err)
			return
		}
		d.handleOne(q, words)
	}
}

// handleInvalidHeader implements the wire contract's fatal handling of a
// corrupt header (e.g. wptr-rptr > Capacity): log and reinitialize the
// whole queue set, since a corrupt pointer pair gives no way to tell
// which side's view of the arena, if any, is still trustworthy.
func (d *Dispatcher) handleInvalidHeader(q int, side string, err error) {
	d.logger.WithQueue(q).Errorf("corrupt %s ring header detected: %v; reinitializing queue set", side, err)
	if rerr := d.queues.Reset(); rerr != nil {
		d.logger.WithQueue(q).Errorf("queue set reinitialization failed: %v", rerr)
	}
}

func (d *Dispatcher) handleOne(q int, words [constants.RequestWords]uint32) {
	req := wire.RequestSlot{Data: words}
	code := req.CommandCode()

	rsp := getResponseSlot()
	defer putResponseSlot(rsp)

	status := d.invoke(q, code, &req, rsp)
	rsp.StampHeader(code, status)

	if err := d.queues.ResponsePush(q, rsp.Data); err != nil {
		if errors.Is(err, ring.ErrInvalidHeader) {
			d.handleInvalidHeader(q, "response", err)
			return
		}
		// Protocol violation: the host submitted request N+1 before
		// reading response N. request_rptr has already advanced, so the
		// response is unrecoverable without the host's cooperation.
		// Recommended behavior per the wire contract: log and drop.
		d.logger.WithQueue(q).Errorf("response push failed (code=0x%02x): %v; dropping response, host is out of sync", code, err)
	}
}

func (d *Dispatcher) invoke(q int, code uint8, req *wire.RequestSlot, rsp *wire.ResponseSlot) (status uint8) {
	handler, ok := d.registry.Lookup(code)
	if !ok {
		if d.observer != nil {
			d.observer.ObserveUnknownCommand(q, code)
		}
		return constants.StatusScratchOnly
	}

	defer func() {
		if r := recover(); r != nil {
			d.logger.WithQueue(q).WithCommand(code).Errorf("handler panicked: %v", r)
			status = StatusHandlerPanic
		}
	}()

	start := time.Now()
	status = handler.Handle(req, rsp)
	if d.observer != nil {
		d.observer.ObserveDispatch(q, code, status, uint64(time.Since(start).Nanoseconds()))
	}
	return status
}

// Run polls ProcessMessageQueues on interval until stop is closed. It is
// a convenience for callers without their own platform main loop; the
// wire contract's polling discipline means ProcessMessageQueues is always
// correct to call with no signal at all, so Run is purely optional sugar.
func (d *Dispatcher) Run(stop <-chan struct{}, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			d.ProcessMessageQueues()
		}
	}
}

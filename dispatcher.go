package msgqueue

import (
	"time"

	"github.com/tenstorrent/smc-msgqueue/internal/dispatch"
	"github.com/tenstorrent/smc-msgqueue/internal/interfaces"
	"github.com/tenstorrent/smc-msgqueue/internal/logging"
	"github.com/tenstorrent/smc-msgqueue/internal/wire"
)

// Handler is the collaborator contract a command code is dispatched to.
// Given a borrowed request and a mutable, zero-initialized response, it
// returns an 8-bit status (StatusOK on success).
type Handler = interfaces.Handler

// HandlerFunc adapts a plain function to Handler.
type HandlerFunc = interfaces.HandlerFunc

// RequestSlot and ResponseSlot are re-exported so handler implementations
// outside this module don't need to import internal/wire directly.
type RequestSlot = wire.RequestSlot
type ResponseSlot = wire.ResponseSlot

// Observer receives dispatch metrics; *Metrics implements it.
type Observer = interfaces.Observer

// Logger is the logging dependency Dispatcher accepts.
type Logger = logging.Logger

// Dispatcher routes requests popped from a QueueSet to handlers
// registered in a Registry and pushes their responses back.
type Dispatcher struct {
	inner *dispatch.Dispatcher
}

// NewDispatcher builds a Dispatcher over qs using reg for command
// routing. logger may be nil (defaults to logging.Default()); observer
// may be nil.
func NewDispatcher(qs *QueueSet, reg *Registry, logger *Logger, observer Observer) *Dispatcher {
	// logger is a concrete *Logger here; forwarding a nil one straight
	// into dispatch.New's interfaces.Logger parameter would wrap it as a
	// non-nil interface holding a nil pointer, defeating New's own
	// logger == nil check. Only convert when there's something to convert.
	var log interfaces.Logger
	if logger != nil {
		log = logger
	}
	return &Dispatcher{inner: dispatch.New(qs, reg.inner, log, observer)}
}

// ProcessMessageQueues performs one scan pass over every queue, draining
// each fully (FIFO) before moving to the next.
func (d *Dispatcher) ProcessMessageQueues() {
	d.inner.ProcessMessageQueues()
}

// Run polls ProcessMessageQueues on interval until stop is closed.
func (d *Dispatcher) Run(stop <-chan struct{}, interval time.Duration) {
	d.inner.Run(stop, interval)
}

// Registry maps command codes to Handlers.
type Registry struct {
	inner *dispatch.Registry
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{inner: dispatch.NewRegistry()}
}

// Register installs handler at code, replacing whatever was there before.
func (r *Registry) Register(code uint8, handler Handler) {
	r.inner.Register(code, handler)
}

// Lookup returns the handler installed at code, or nil, false if none is.
func (r *Registry) Lookup(code uint8) (Handler, bool) {
	return r.inner.Lookup(code)
}

// MergeStatic installs every handler registered via RegisterStatic (by
// handler package init() functions) into r.
func (r *Registry) MergeStatic(logger *Logger) {
	r.inner.MergeStatic(logger)
}

// StaticCollisions returns the number of duplicate static registrations
// observed by the most recent MergeStatic call.
func (r *Registry) StaticCollisions() int {
	return r.inner.StaticCollisions()
}

// RegisterStatic records a (code, handler) pair to be merged into every
// Registry built with MergeStatic. Intended for handler package init()
// functions.
func RegisterStatic(code uint8, handler Handler, source string) {
	dispatch.RegisterStatic(code, handler, source)
}

// Package dispatch implements the handler registry and the scan-and-drain
// dispatcher loop described by the wire contract: for each queue, drain
// all pending requests, route by command code, stamp a status, and push
// a response.
package dispatch

import (
	"sync/atomic"

	"github.com/tenstorrent/smc-msgqueue/internal/interfaces"
	"github.com/tenstorrent/smc-msgqueue/internal/logging"
)

// Registry maps command_code in [0,255] to a Handler. Reads are
// lock-free: each slot is an atomic.Pointer, matching the wire contract's
// assumption that aligned pointer-sized writes are atomic on every
// target architecture, so a handler can be installed while the
// dispatcher loop is running without a read-side lock.
type Registry struct {
	slots             [256]atomic.Pointer[interfaces.Handler]
	staticCollisions  atomic.Int32
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register installs handler at code, replacing whatever was there before.
// Safe to call concurrently with Lookup; callers are expected to register
// exactly once per code outside of tests.
func (r *Registry) Register(code uint8, handler interfaces.Handler) {
	h := handler
	r.slots[code].Store(&h)
}

// Lookup returns the handler installed at code, or nil, false if none is.
func (r *Registry) Lookup(code uint8) (interfaces.Handler, bool) {
	p := r.slots[code].Load()
	if p == nil {
		return nil, false
	}
	return *p, true
}

// staticRegistration is one (code, handler) pair gathered before a
// Registry exists, the Go equivalent of the firmware's linker-gathered
// REGISTER_MESSAGE section: a build-time-generated table isn't available
// to us, so package init() functions append to this slice instead, and
// MergeStatic folds it into a live Registry before the first scan.
type staticRegistration struct {
	code    uint8
	handler interfaces.Handler
	source  string
}

var staticTable []staticRegistration

// RegisterStatic records a (code, handler) pair to be merged into every
// Registry built with MergeStatic. Intended to be called from package
// init() functions in handler packages, mirroring REGISTER_MESSAGE.
// source is a short label (e.g. the handler package name) used only for
// the duplicate-registration diagnostic.
func RegisterStatic(code uint8, handler interfaces.Handler, source string) {
	staticTable = append(staticTable, staticRegistration{code: code, handler: handler, source: source})
}

// MergeStatic installs every RegisterStatic'd pair into r. Duplicate
// codes among static entries are a last-writer-wins programming error,
// per the wire contract's resolution of that open question: the merge
// does not panic, but it logs a diagnostic and increments
// StaticCollisions so tests can assert none occurred.
func (r *Registry) MergeStatic(logger *logging.Logger) {
	r.staticCollisions.Store(0)
	seen := make(map[uint8]string, len(staticTable))
	for _, reg := range staticTable {
		if prior, ok := seen[reg.code]; ok {
			r.staticCollisions.Add(1)
			if logger != nil {
				logger.Warnf("duplicate static registration for code=0x%02x: %s overwrites %s", reg.code, reg.source, prior)
			}
		}
		seen[reg.code] = reg.source
		r.Register(reg.code, reg.handler)
	}
}

// StaticCollisions returns the number of duplicate static registrations
// observed by the most recent MergeStatic call.
func (r *Registry) StaticCollisions() int {
	return int(r.staticCollisions.Load())
}

// ResetStaticTableForTest clears the package-level static registration
// table. Exposed for tests that register handlers via RegisterStatic and
// need a clean slate between cases; production code never calls this.
func ResetStaticTableForTest() {
	staticTable = nil
}

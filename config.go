package msgqueue

import (
	"time"

	"github.com/tenstorrent/smc-msgqueue/internal/logging"
)

// DispatcherConfig bundles the knobs that legitimately vary between a
// production embedder and a test harness. Queue count and per-queue
// capacity are fixed by the wire contract and are not configurable here;
// see constants.go.
type DispatcherConfig struct {
	// PollInterval is a scan period for callers to hand to the convenience
	// Run loop. NewDispatcherWithConfig does not read it; Run uses the
	// interval passed to it.
	PollInterval time.Duration
	// Logger receives dispatcher diagnostics (response-push failures,
	// corrupt headers, handler panics); duplicate static registrations are
	// logged by Registry.MergeStatic to the logger given to it, not here.
	// Defaults to logging.Default() when nil.
	Logger *Logger
	// Observer receives per-dispatch metrics. Defaults to a no-op
	// observer when nil.
	Observer Observer
}

// DefaultDispatcherConfig returns the configuration used when a caller
// builds a Dispatcher without specifying one: a 5ms poll interval, the
// package default logger, and no observer.
func DefaultDispatcherConfig() *DispatcherConfig {
	return &DispatcherConfig{
		PollInterval: 5 * time.Millisecond,
		Logger:       logging.Default(),
		Observer:     nil,
	}
}

// NewDispatcherWithConfig builds a Dispatcher over qs and reg the way
// NewDispatcher does, but sourcing its logger and observer from cfg (or
// DefaultDispatcherConfig() if cfg is nil).
func NewDispatcherWithConfig(qs *QueueSet, reg *Registry, cfg *DispatcherConfig) *Dispatcher {
	if cfg == nil {
		cfg = DefaultDispatcherConfig()
	}
	return NewDispatcher(qs, reg, cfg.Logger, cfg.Observer)
}

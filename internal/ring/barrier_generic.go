//go:build !(amd64 && cgo)

package ring

import "sync/atomic"

// releaseFence/acquireFence fall back to a compiler barrier implemented
// via a dummy atomic operation when a real SFENCE/MFENCE is unavailable
// (non-amd64, or cgo disabled). sync/atomic operations in Go already
// carry sequential-consistency semantics on every supported platform, so
// this is correct, just not the single dedicated instruction the amd64
// build uses.
var barrierVar int32

func releaseFence() { atomic.AddInt32(&barrierVar, 0) }
func acquireFence()  { atomic.AddInt32(&barrierVar, 0) }

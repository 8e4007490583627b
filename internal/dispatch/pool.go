package dispatch

import (
	"sync"

	"github.com/tenstorrent/smc-msgqueue/internal/wire"
)

// responsePool recycles zeroed response slots across scan passes to keep
// the dispatch hot path allocation-free. The slot is a fixed 32 bytes so
// one size-class pool suffices; there's no need for power-of-two buckets.
var responsePool = sync.Pool{
	New: func() any { return new(wire.ResponseSlot) },
}

func getResponseSlot() *wire.ResponseSlot {
	rsp := responsePool.Get().(*wire.ResponseSlot)
	rsp.Reset()
	return rsp
}

func putResponseSlot(rsp *wire.ResponseSlot) {
	responsePool.Put(rsp)
}

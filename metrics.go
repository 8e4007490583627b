package msgqueue

import (
	"sync/atomic"

	"github.com/tenstorrent/smc-msgqueue/internal/constants"
)

// Metrics accumulates dispatch counters and a crude latency histogram per
// queue: counts plus a handful of latency buckets, read with plain
// atomic loads so a status reporter can sample them without contending
// with the dispatch loop.
type Metrics struct {
	dispatched       [constants.NumQueues]atomic.Uint64
	unknownCommand   [constants.NumQueues]atomic.Uint64
	latencyBucketsNs [constants.NumQueues][len(latencyBucketBoundsNs)]atomic.Uint64
	depth            [constants.NumQueues]atomic.Uint32
}

// latencyBucketBoundsNs are upper bounds (exclusive) of each latency
// histogram bucket, in nanoseconds; there is one bucket per bound, and the
// last bucket also catches everything at or above the largest bound.
var latencyBucketBoundsNs = [...]uint64{1_000, 10_000, 100_000, 1_000_000, 10_000_000}

// NewMetrics returns a zeroed Metrics ready to be passed to Dispatcher as
// an Observer.
func NewMetrics() *Metrics {
	return &Metrics{}
}

// ObserveDispatch implements internal/interfaces.Observer.
func (m *Metrics) ObserveDispatch(queue int, code uint8, status uint8, latencyNs uint64) {
	m.dispatched[queue].Add(1)
	m.bucketFor(queue, latencyNs).Add(1)
}

// ObserveUnknownCommand implements internal/interfaces.Observer.
func (m *Metrics) ObserveUnknownCommand(queue int, code uint8) {
	m.unknownCommand[queue].Add(1)
}

// ObserveQueueDepth implements internal/interfaces.Observer.
func (m *Metrics) ObserveQueueDepth(queue int, depth uint32) {
	m.depth[queue].Store(depth)
}

func (m *Metrics) bucketFor(queue int, latencyNs uint64) *atomic.Uint64 {
	for i, bound := range latencyBucketBoundsNs {
		if latencyNs < bound {
			return &m.latencyBucketsNs[queue][i]
		}
	}
	return &m.latencyBucketsNs[queue][len(latencyBucketBoundsNs)-1]
}

// Dispatched returns the total number of requests dispatched to a
// registered handler on queue.
func (m *Metrics) Dispatched(queue int) uint64 {
	return m.dispatched[queue].Load()
}

// UnknownCommands returns the total number of requests on queue for which
// no handler was registered.
func (m *Metrics) UnknownCommands(queue int) uint64 {
	return m.unknownCommand[queue].Load()
}

// LatencyBuckets returns a copy of queue's latency histogram counts, one
// per entry in latencyBucketBoundsNs; the bucket for the largest bound
// also catches every latency at or above it (see bucketFor).
func (m *Metrics) LatencyBuckets(queue int) []uint64 {
	out := make([]uint64, len(m.latencyBucketsNs[queue]))
	for i := range out {
		out[i] = m.latencyBucketsNs[queue][i].Load()
	}
	return out
}

// Depth returns the last observed request queue depth for queue.
func (m *Metrics) Depth(queue int) uint32 {
	return m.depth[queue].Load()
}

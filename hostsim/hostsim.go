// Package hostsim simulates the host side of the message queue protocol:
// it submits requests at a configured rate and drains responses, a
// driver that exercises the real dispatch path without real hardware or
// a real kernel block device underneath it.
package hostsim

import (
	"math/rand"
	"time"

	"github.com/tenstorrent/smc-msgqueue"
)

// Workload describes one command code a Driver may submit, with an
// optional payload generator.
type Workload struct {
	Code    uint8
	Payload func(seq uint64) []uint32
}

// Driver repeatedly submits requests from a set of Workloads, each chosen
// uniformly at random, across all queues and drains whatever responses are ready, simulating
// a host that doesn't wait in lockstep for each response.
type Driver struct {
	qs        *msgqueue.QueueSet
	host      *msgqueue.HostStub
	workloads []Workload
	rng       *rand.Rand

	submitted uint64
	completed uint64
	dropped   uint64
}

// NewDriver builds a Driver over qs. seed controls workload selection
// determinism; pass a fixed seed for reproducible simulation runs.
func NewDriver(qs *msgqueue.QueueSet, workloads []Workload, seed int64) *Driver {
	return &Driver{
		qs:        qs,
		host:      msgqueue.NewHostStub(qs),
		workloads: workloads,
		rng:       rand.New(rand.NewSource(seed)),
	}
}

// SubmitOne pushes a single request for a randomly chosen workload onto a
// randomly chosen queue. If the target queue's request ring is full, the
// submission is counted as dropped rather than retried, since a real
// host would back off and retry on its own schedule.
func (d *Driver) SubmitOne() {
	w := d.workloads[d.rng.Intn(len(d.workloads))]
	q := d.rng.Intn(msgqueue.NumQueues)

	var payload []uint32
	if w.Payload != nil {
		payload = w.Payload(d.submitted)
	}

	if err := d.host.SubmitRequest(q, w.Code, payload...); err != nil {
		d.dropped++
		return
	}
	d.submitted++
}

// DrainResponses pops every available response across all queues,
// counting them as completed. Returns the number drained this call.
func (d *Driver) DrainResponses() int {
	n := 0
	for q := 0; q < msgqueue.NumQueues; q++ {
		for {
			if _, err := d.host.AwaitResponse(q); err != nil {
				break
			}
			d.completed++
			n++
		}
	}
	return n
}

// Run submits requests at the given rate for duration, draining responses
// between submissions, and returns once duration elapses.
func (d *Driver) Run(rate int, duration time.Duration) {
	if rate <= 0 {
		rate = 1
	}
	interval := time.Second / time.Duration(rate)
	deadline := time.Now().Add(duration)
	for time.Now().Before(deadline) {
		d.SubmitOne()
		d.DrainResponses()
		time.Sleep(interval)
	}
	d.DrainResponses()
}

// Stats returns the running submit/complete/drop counters.
func (d *Driver) Stats() (submitted, completed, dropped uint64) {
	return d.submitted, d.completed, d.dropped
}

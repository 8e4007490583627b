package main

import (
	"fmt"
	"time"

	cwring "github.com/cloudwego/gopkg/container/ring"
)

// traceEntry is one recorded dispatch event, shown by the status
// subcommand.
type traceEntry struct {
	queue  int
	code   uint8
	status uint8
	at     time.Time
	filled bool
}

// traceBuffer is a fixed-size overwrite-oldest log of recent dispatch
// events, built on cloudwego/gopkg's generic Ring container rather than
// the protocol's own internal/ring (that type implements the wire
// contract's double-width-counter discipline specifically; this is an
// unrelated, plain circular buffer for human-facing history, so it
// borrows a general-purpose container instead).
type traceBuffer struct {
	r       *cwring.Ring[traceEntry]
	nextIdx int
}

func newTraceBuffer(capacity int) *traceBuffer {
	return &traceBuffer{r: cwring.NewFromSlice(make([]traceEntry, capacity))}
}

func (t *traceBuffer) record(queue int, code, status uint8, at time.Time) {
	item, ok := t.r.Get(t.nextIdx)
	if !ok {
		return
	}
	*item.Pointer() = traceEntry{queue: queue, code: code, status: status, at: at, filled: true}
	t.nextIdx = (t.nextIdx + 1) % t.r.Len()
}

// recent returns the buffer's entries oldest-first, skipping unfilled
// slots (the case where fewer than capacity events have been recorded).
func (t *traceBuffer) recent() []traceEntry {
	out := make([]traceEntry, 0, t.r.Len())
	start := t.nextIdx
	for i := 0; i < t.r.Len(); i++ {
		idx := (start + i) % t.r.Len()
		item, ok := t.r.Get(idx)
		if !ok {
			continue
		}
		if e := item.Value(); e.filled {
			out = append(out, e)
		}
	}
	return out
}

func (e traceEntry) String() string {
	return fmt.Sprintf("%s queue=%d code=0x%02x status=0x%02x", e.at.Format(time.RFC3339Nano), e.queue, e.code, e.status)
}

package dispatch

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tenstorrent/smc-msgqueue/internal/constants"
	"github.com/tenstorrent/smc-msgqueue/internal/interfaces"
	"github.com/tenstorrent/smc-msgqueue/internal/logging"
	"github.com/tenstorrent/smc-msgqueue/internal/ring"
	"github.com/tenstorrent/smc-msgqueue/internal/wire"
)

// fakeQueues is an in-memory Queues implementation for exercising the
// dispatcher without a real shared-memory arena.
type fakeQueues struct {
	numQueues int
	requests  [][][constants.RequestWords]uint32
	responses [][][constants.RequestWords]uint32
	pushErr   map[int]error
	popErr    map[int]error
	resets    int
}

func newFakeQueues(n int) *fakeQueues {
	return &fakeQueues{
		numQueues: n,
		requests:  make([][][constants.RequestWords]uint32, n),
		responses: make([][][constants.RequestWords]uint32, n),
		pushErr:   make(map[int]error),
		popErr:    make(map[int]error),
	}
}

func (f *fakeQueues) NumQueues() int { return f.numQueues }

// Reset implements Queues. It drops any buffered requests/responses, the
// same "reinitialize from scratch" effect QueueSet.Reset has on a real
// arena, and counts invocations so tests can assert it fired.
func (f *fakeQueues) Reset() error {
	f.resets++
	for q := range f.requests {
		f.requests[q] = nil
		f.responses[q] = nil
	}
	return nil
}

func (f *fakeQueues) enqueueRequest(q int, code uint8, rest ...uint32) {
	var words [constants.RequestWords]uint32
	words[0] = uint32(code)
	copy(words[1:], rest)
	f.requests[q] = append(f.requests[q], words)
}

func (f *fakeQueues) RequestPop(q int) ([constants.RequestWords]uint32, error) {
	var words [constants.RequestWords]uint32
	if err, ok := f.popErr[q]; ok {
		return words, err
	}
	if len(f.requests[q]) == 0 {
		return words, ring.ErrEmpty
	}
	words = f.requests[q][0]
	f.requests[q] = f.requests[q][1:]
	return words, nil
}

func (f *fakeQueues) ResponsePush(q int, words [constants.RequestWords]uint32) error {
	if err, ok := f.pushErr[q]; ok {
		return err
	}
	f.responses[q] = append(f.responses[q], words)
	return nil
}

type countingObserver struct {
	dispatched int
	unknown    int
}

func (o *countingObserver) ObserveDispatch(queue int, code uint8, status uint8, latencyNs uint64) {
	o.dispatched++
}
func (o *countingObserver) ObserveUnknownCommand(queue int, code uint8) { o.unknown++ }
func (o *countingObserver) ObserveQueueDepth(queue int, depth uint32)   {}

var _ interfaces.Observer = (*countingObserver)(nil)

func TestDispatcherRoutesToRegisteredHandler(t *testing.T) {
	q := newFakeQueues(constants.NumQueues)
	q.enqueueRequest(0, 0x12, 99)

	r := NewRegistry()
	r.Register(0x12, interfaces.HandlerFunc(func(req *wire.RequestSlot, rsp *wire.ResponseSlot) uint8 {
		rsp.Data[1] = req.Data[1] * 2
		return constants.StatusOK
	}))

	obs := &countingObserver{}
	d := New(q, r, nil, obs)
	d.ProcessMessageQueues()

	require.Len(t, q.responses[0], 1)
	rsp := wire.ResponseSlot{Data: q.responses[0][0]}
	assert.Equal(t, uint8(0x12), rsp.CommandCode())
	assert.Equal(t, uint8(constants.StatusOK), rsp.Status())
	assert.Equal(t, uint32(198), rsp.Data[1])
	assert.Equal(t, 1, obs.dispatched)
	assert.Equal(t, 0, obs.unknown)
}

func TestDispatcherUnknownCommandGetsScratchOnly(t *testing.T) {
	q := newFakeQueues(constants.NumQueues)
	q.enqueueRequest(1, 0x7A)

	r := NewRegistry()
	obs := &countingObserver{}
	d := New(q, r, nil, obs)
	d.ProcessMessageQueues()

	require.Len(t, q.responses[1], 1)
	rsp := wire.ResponseSlot{Data: q.responses[1][0]}
	assert.Equal(t, uint8(constants.StatusScratchOnly), rsp.Status())
	assert.Equal(t, 1, obs.unknown)
}

func TestDispatcherDrainsFIFOBeforeNextQueue(t *testing.T) {
	q := newFakeQueues(constants.NumQueues)
	q.enqueueRequest(0, 0x11)
	q.enqueueRequest(0, 0x11)
	q.enqueueRequest(0, 0x11)

	r := NewRegistry()
	r.Register(0x11, echoHandler(constants.StatusOK))

	d := New(q, r, nil, nil)
	d.ProcessMessageQueues()

	assert.Len(t, q.responses[0], 3)
	assert.Empty(t, q.requests[0])
}

func TestDispatcherRecoversFromPanickingHandler(t *testing.T) {
	q := newFakeQueues(constants.NumQueues)
	q.enqueueRequest(2, 0x33)

	r := NewRegistry()
	r.Register(0x33, interfaces.HandlerFunc(func(req *wire.RequestSlot, rsp *wire.ResponseSlot) uint8 {
		panic("boom")
	}))

	var buf bytes.Buffer
	logger := logging.NewLogger(&logging.Config{Level: logging.LevelDebug, Output: &buf})
	d := New(q, r, logger, nil)

	require.NotPanics(t, func() { d.ProcessMessageQueues() })

	require.Len(t, q.responses[2], 1)
	rsp := wire.ResponseSlot{Data: q.responses[2][0]}
	assert.Equal(t, uint8(StatusHandlerPanic), rsp.Status())
	assert.Contains(t, buf.String(), "panicked")
}

func TestDispatcherReinitializesQueueSetOnInvalidRequestHeader(t *testing.T) {
	q := newFakeQueues(constants.NumQueues)
	q.popErr[1] = ring.ErrInvalidHeader
	q.requests[1] = append(q.requests[1], [constants.RequestWords]uint32{0x11})

	var buf bytes.Buffer
	logger := logging.NewLogger(&logging.Config{Level: logging.LevelDebug, Output: &buf})
	r := NewRegistry()
	d := New(q, r, logger, nil)

	require.NotPanics(t, func() { d.ProcessMessageQueues() })

	assert.Equal(t, 1, q.resets)
	assert.Contains(t, buf.String(), "corrupt request ring header")
	assert.Empty(t, q.requests[1], "Reset must clear the buffered request too")
}

func TestDispatcherReinitializesQueueSetOnInvalidResponseHeader(t *testing.T) {
	q := newFakeQueues(constants.NumQueues)
	q.enqueueRequest(0, 0x11)
	q.pushErr[0] = ring.ErrInvalidHeader

	var buf bytes.Buffer
	logger := logging.NewLogger(&logging.Config{Level: logging.LevelDebug, Output: &buf})
	r := NewRegistry()
	r.Register(0x11, echoHandler(constants.StatusOK))
	d := New(q, r, logger, nil)

	require.NotPanics(t, func() { d.ProcessMessageQueues() })

	assert.Equal(t, 1, q.resets)
	assert.Contains(t, buf.String(), "corrupt response ring header")
}

func TestDispatcherLogsAndDropsOnResponsePushFailure(t *testing.T) {
	q := newFakeQueues(constants.NumQueues)
	q.enqueueRequest(0, 0x11)
	q.pushErr[0] = errors.New("host out of sync")

	r := NewRegistry()
	r.Register(0x11, echoHandler(constants.StatusOK))

	var buf bytes.Buffer
	logger := logging.NewLogger(&logging.Config{Level: logging.LevelDebug, Output: &buf})
	d := New(q, r, logger, nil)

	require.NotPanics(t, func() { d.ProcessMessageQueues() })
	assert.Empty(t, q.responses[0])
	assert.Contains(t, buf.String(), "response push failed")
}

package msgqueue

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// These tests exercise the testable properties and concrete scenarios
// named by the wire contract directly, independent of the higher-level
// end-to-end tests in dispatcher_test.go.

func TestScenarioS1EchoHandlerRoundTrip(t *testing.T) {
	qs := newTestQueueSet(t)
	host := NewHostStub(qs)
	reg := NewRegistry()
	reg.Register(0x73, HandlerFunc(func(req *RequestSlot, rsp *ResponseSlot) uint8 {
		rsp.Data[1] = req.Data[0]
		return StatusOK
	}))
	d := NewDispatcher(qs, reg, nil, nil)

	require.NoError(t, qs.RequestPush(0, [8]uint32{0x73737373}))
	d.ProcessMessageQueues()

	rsp, err := host.AwaitResponse(0)
	require.NoError(t, err)
	assert.Equal(t, uint32(0x73737373), rsp.Data[1])
}

func TestScenarioS2UnknownCodeGetsScratchOnlyStatus(t *testing.T) {
	qs := newTestQueueSet(t)
	host := NewHostStub(qs)
	reg := NewRegistry()
	d := NewDispatcher(qs, reg, nil, nil)

	require.NoError(t, host.SubmitRequest(0, 0x42))
	d.ProcessMessageQueues()

	rsp, err := host.AwaitResponse(0)
	require.NoError(t, err)
	assert.Equal(t, uint8(StatusScratchOnly), rsp.Status())
}

func TestScenarioS3FifthPushToFullRingFails(t *testing.T) {
	qs := newTestQueueSet(t)
	for i := 0; i < Capacity; i++ {
		require.NoError(t, qs.RequestPush(0, [8]uint32{uint32(i)}))
	}
	err := qs.RequestPush(0, [8]uint32{99})
	assert.True(t, errors.Is(err, ErrQueueFull))
	assert.Equal(t, uint32(Capacity), qs.QueueDepth(0), "a failed push must not modify the ring")
}

func TestScenarioS4SetVoltageSucceeds(t *testing.T) {
	qs := newTestQueueSet(t)
	host := NewHostStub(qs)
	reg := NewRegistry()
	reg.Register(0x12, HandlerFunc(func(req *RequestSlot, rsp *ResponseSlot) uint8 {
		return StatusOK
	}))
	d := NewDispatcher(qs, reg, nil, nil)

	require.NoError(t, host.SubmitRequest(0, 0x12, 0x64, 800))
	d.ProcessMessageQueues()

	rsp, err := host.AwaitResponse(0)
	require.NoError(t, err)
	assert.Equal(t, uint8(StatusOK), rsp.Status())
}

func TestScenarioS5IndependentQueueOrdering(t *testing.T) {
	qs := newTestQueueSet(t)
	host := NewHostStub(qs)
	reg := NewRegistry()
	reg.Register(0x01, HandlerFunc(func(req *RequestSlot, rsp *ResponseSlot) uint8 {
		rsp.Data[1] = req.Data[1]
		return StatusOK
	}))
	d := NewDispatcher(qs, reg, nil, nil)

	require.NoError(t, host.SubmitRequest(0, 0x01, 0xA))  // A
	require.NoError(t, host.SubmitRequest(1, 0x01, 0xB))  // B
	require.NoError(t, host.SubmitRequest(0, 0x01, 0xA2)) // A'
	d.ProcessMessageQueues()

	r0a, err := host.AwaitResponse(0)
	require.NoError(t, err)
	assert.Equal(t, uint32(0xA), r0a.Data[1])

	r0b, err := host.AwaitResponse(0)
	require.NoError(t, err)
	assert.Equal(t, uint32(0xA2), r0b.Data[1])

	r1, err := host.AwaitResponse(1)
	require.NoError(t, err)
	assert.Equal(t, uint32(0xB), r1.Data[1])
}

func TestScenarioS6InterleavedPushAndScanPreservesFIFO(t *testing.T) {
	qs := newTestQueueSet(t)
	host := NewHostStub(qs)
	reg := NewRegistry()
	reg.Register(0x01, HandlerFunc(func(req *RequestSlot, rsp *ResponseSlot) uint8 {
		rsp.Data[1] = req.Data[1]
		return StatusOK
	}))
	d := NewDispatcher(qs, reg, nil, nil)

	require.NoError(t, host.SubmitRequest(0, 0x01, 1))
	d.ProcessMessageQueues()
	require.NoError(t, host.SubmitRequest(0, 0x01, 2))
	require.NoError(t, host.SubmitRequest(0, 0x01, 3))
	d.ProcessMessageQueues()

	for _, want := range []uint32{1, 2, 3} {
		rsp, err := host.AwaitResponse(0)
		require.NoError(t, err)
		assert.Equal(t, want, rsp.Data[1])
	}
}

func TestInvariantStatusEchoCommandCode(t *testing.T) {
	qs := newTestQueueSet(t)
	host := NewHostStub(qs)
	reg := NewRegistry()
	reg.Register(0x55, EchoHandler(StatusOK))
	d := NewDispatcher(qs, reg, nil, nil)

	require.NoError(t, host.SubmitRequest(2, 0x55))
	d.ProcessMessageQueues()

	rsp, err := host.AwaitResponse(2)
	require.NoError(t, err)
	assert.Equal(t, uint8(0x55), rsp.CommandCode())
}

func TestCorruptHeaderIsFatalAndReinitializesQueueSet(t *testing.T) {
	qs := newTestQueueSet(t)
	host := NewHostStub(qs)
	reg := NewRegistry()
	reg.Register(0x11, EchoHandler(StatusOK))
	d := NewDispatcher(qs, reg, nil, nil)

	// Corrupt queue 3's request header so wptr-rptr (7) exceeds Capacity
	// (4), which can never happen from legitimate push/pop traffic. A real
	// corruption would come from a misbehaving peer; here it's injected
	// directly against the header.
	qs.queues[3].header.StoreRequestWptr(7)

	require.NotPanics(t, func() { d.ProcessMessageQueues() })

	// The dispatcher must have reinitialized the whole queue set rather
	// than wedging or silently misinterpreting the corrupt distance: a
	// pop against the now-clean header reports empty, not invalid.
	_, err := qs.RequestPop(3)
	assert.True(t, errors.Is(err, ErrQueueEmpty))

	// And the queue set must be fully usable again afterward.
	require.NoError(t, host.SubmitRequest(3, 0x11))
	d.ProcessMessageQueues()
	rsp, err := host.AwaitResponse(3)
	require.NoError(t, err)
	assert.Equal(t, uint8(StatusOK), rsp.Status())
}

func TestInvariantPointerMonotonicityModuloPointerWrap(t *testing.T) {
	qs := newTestQueueSet(t)
	h := qs.queues[0].header
	for i := 0; i < PointerWrap*2; i++ {
		prev := h.LoadRequestRptr()
		require.NoError(t, qs.RequestPush(0, [8]uint32{uint32(i)}))
		_, err := qs.RequestPop(0)
		require.NoError(t, err)
		assert.Equal(t, (prev+1)%PointerWrap, h.LoadRequestRptr(), "request_rptr must advance by one, modulo PointerWrap")
	}
	// After an even number of push/pop pairs divisible by PointerWrap,
	// the pointers must have wrapped back to their starting values.
	assert.Equal(t, uint32(0), h.LoadRequestWptr())
	assert.Equal(t, uint32(0), h.LoadRequestRptr())
	assert.Equal(t, uint32(0), qs.QueueDepth(0))
}

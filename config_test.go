package msgqueue

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultDispatcherConfigHasSanePollInterval(t *testing.T) {
	cfg := DefaultDispatcherConfig()
	assert.Equal(t, 5*time.Millisecond, cfg.PollInterval)
	assert.NotNil(t, cfg.Logger)
	assert.Nil(t, cfg.Observer)
}

func TestNewDispatcherWithConfigNilUsesDefaults(t *testing.T) {
	qs := newTestQueueSet(t)
	reg := NewRegistry()
	reg.Register(0x11, EchoHandler(StatusOK))

	d := NewDispatcherWithConfig(qs, reg, nil)
	host := NewHostStub(qs)

	require.NoError(t, host.SubmitRequest(0, 0x11))
	d.ProcessMessageQueues()

	rsp, err := host.AwaitResponse(0)
	require.NoError(t, err)
	assert.Equal(t, uint8(StatusOK), rsp.Status())
}

func TestNewDispatcherWithConfigWiresObserver(t *testing.T) {
	qs := newTestQueueSet(t)
	reg := NewRegistry()
	reg.Register(0x11, EchoHandler(StatusOK))
	metrics := NewMetrics()

	d := NewDispatcherWithConfig(qs, reg, &DispatcherConfig{
		PollInterval: time.Millisecond,
		Observer:     metrics,
	})
	host := NewHostStub(qs)

	require.NoError(t, host.SubmitRequest(0, 0x11))
	d.ProcessMessageQueues()

	_, err := host.AwaitResponse(0)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), metrics.Dispatched(0))
}

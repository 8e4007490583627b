package msgqueue

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorIsMatchesByCode(t *testing.T) {
	err := newError("RequestPop", 2, CodeQueueEmpty, nil)
	assert.True(t, errors.Is(err, ErrQueueEmpty))
	assert.False(t, errors.Is(err, ErrQueueFull))
}

func TestErrorUnwrapsInner(t *testing.T) {
	inner := errors.New("ring: empty")
	err := newError("RequestPop", 0, CodeQueueEmpty, inner)
	assert.ErrorIs(t, err, inner)
}

func TestErrorMessageIncludesQueueAndOp(t *testing.T) {
	err := newError("ResponsePush", 3, CodeQueueFull, nil)
	msg := err.Error()
	assert.Contains(t, msg, "ResponsePush")
	assert.Contains(t, msg, "queue 3")
	assert.Contains(t, msg, "queue_full")
}

package msgqueue

import "github.com/tenstorrent/smc-msgqueue/internal/constants"

// HostStub impersonates the host side of a QueueSet in tests: it pushes
// requests and pops responses, the mirror image of the operations a
// Dispatcher performs on the controller side, so both ends of the
// contract can be driven in-process without a real host.
type HostStub struct {
	qs *QueueSet
}

// NewHostStub wraps qs for host-side test driving.
func NewHostStub(qs *QueueSet) *HostStub {
	return &HostStub{qs: qs}
}

// SubmitRequest encodes code and up to 7 payload words into a request
// slot and pushes it onto queue q's request ring.
func (h *HostStub) SubmitRequest(q int, code uint8, payload ...uint32) error {
	var words [constants.RequestWords]uint32
	words[0] = uint32(code)
	copy(words[1:], payload)
	return h.qs.RequestPush(q, words)
}

// AwaitResponse pops the next available response from queue q's response
// ring without blocking; callers poll until err is nil or a deadline
// passes, since this stub has no blocking wait primitive of its own.
func (h *HostStub) AwaitResponse(q int) (ResponseSlot, error) {
	words, err := h.qs.ResponsePop(q)
	if err != nil {
		return ResponseSlot{}, err
	}
	return ResponseSlot{Data: words}, nil
}

// RequestDepth reports the number of unread slots in queue q's request
// ring, for tests that assert a handler loop kept up.
func (h *HostStub) RequestDepth(q int) uint32 {
	return h.qs.QueueDepth(q)
}

// EchoHandler is a canned Handler returning a fixed status, useful for
// tests that only care about routing, not behavior.
func EchoHandler(status uint8) Handler {
	return HandlerFunc(func(req *RequestSlot, rsp *ResponseSlot) uint8 {
		return status
	})
}

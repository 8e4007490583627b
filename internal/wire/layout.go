package wire

import "github.com/tenstorrent/smc-msgqueue/internal/constants"

// QueueBase returns the byte offset of queue q's region within the
// shared-memory arena. Queue regions are laid out contiguously:
// header (32B), request slots (128B), response slots (128B).
func QueueBase(q int) int {
	return q * constants.QueueStride
}

// HeaderOffset returns the byte offset of queue q's header.
func HeaderOffset(q int) int {
	return QueueBase(q)
}

// RequestSlotOffset returns the byte offset of request slot i of queue q.
func RequestSlotOffset(q, i int) int {
	return QueueBase(q) + constants.RequestArrayOffset + i*constants.SlotSize
}

// ResponseSlotOffset returns the byte offset of response slot i of queue q.
func ResponseSlotOffset(q, i int) int {
	return QueueBase(q) + constants.ResponseArrayOffset + i*constants.SlotSize
}

// Package constants holds the fixed dimensions of the host<->controller
// message queue protocol. These are wire contract, not tuning knobs.
package constants

const (
	// NumQueues is the number of independent request/response ring pairs
	// exposed to the host.
	NumQueues = 4

	// Capacity is the number of slots in each request or response ring.
	Capacity = 4

	// PointerWrap is the modulus ring pointers are incremented under. It is
	// twice Capacity so that wptr == rptr can mean empty and wptr - rptr ==
	// Capacity can mean full without aliasing.
	PointerWrap = 2 * Capacity

	// RequestWords is the number of 32-bit words in one request slot.
	RequestWords = 8

	// ResponseWords is the number of 32-bit words in one response slot.
	ResponseWords = 8

	// HeaderSize is the size in bytes of one queue's header region.
	HeaderSize = 32

	// SlotSize is the size in bytes of one request or response slot.
	SlotSize = 4 * RequestWords

	// RequestArraySize is the byte size of one queue's request slot array.
	RequestArraySize = Capacity * SlotSize

	// ResponseArraySize is the byte size of one queue's response slot array.
	ResponseArraySize = Capacity * SlotSize

	// QueueStride is the total byte size of one queue's region: header,
	// request array, response array.
	QueueStride = HeaderSize + RequestArraySize + ResponseArraySize

	// ArenaSize is the total byte size of the shared-memory arena backing
	// all NumQueues queues.
	ArenaSize = NumQueues * QueueStride
)

// Byte offsets within one queue's region, per the wire contract.
const (
	RequestArrayOffset  = HeaderSize
	ResponseArrayOffset = HeaderSize + RequestArraySize
)

// Status sentinels stamped into a response's status byte.
const (
	StatusOK               = 0x00
	StatusScratchOnly      = 0xFE
	StatusMessageRecognized = 0xFF
)

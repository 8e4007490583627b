package msgqueue

import "github.com/tenstorrent/smc-msgqueue/internal/constants"

// Fixed dimensions of the wire contract, re-exported from
// internal/constants for callers that only need the root package.
const (
	NumQueues   = constants.NumQueues
	Capacity    = constants.Capacity
	PointerWrap = constants.PointerWrap

	StatusOK                = constants.StatusOK
	StatusScratchOnly       = constants.StatusScratchOnly
	StatusMessageRecognized = constants.StatusMessageRecognized
)

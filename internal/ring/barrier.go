// Package ring implements the double-width-counter ring primitive: push
// and pop against a header the peer may mutate concurrently, plus the
// empty/full tests and wrap arithmetic the wire contract specifies.
package ring

// releaseFence must be called after writing a slot's payload and before
// advancing the pointer that publishes it, so the payload write is never
// observed after the pointer advance by a peer on another CPU.
//
// acquireFence must be called after loading a pointer and before reading
// the slot payload it designates, for the symmetric reason.
//
// Platform-specific implementations live in barrier_amd64.go (a real
// SFENCE/MFENCE via cgo) and barrier_generic.go (a sync/atomic-based
// fallback for platforms or builds without cgo).

//go:build amd64 && cgo

package ring

/*
// Store fence: ensures all prior stores are globally visible before any
// subsequent store. Used to publish a slot write before the pointer
// advance that makes it visible to the peer.
static inline void sfence_impl(void) {
    __asm__ __volatile__("sfence" ::: "memory");
}

// Full fence: ensures all prior memory operations complete before any
// subsequent ones. Used when a pointer load must not be reordered ahead
// of the payload read it guards.
static inline void mfence_impl(void) {
    __asm__ __volatile__("mfence" ::: "memory");
}
*/
import "C"

func releaseFence() { C.sfence_impl() }
func acquireFence()  { C.mfence_impl() }

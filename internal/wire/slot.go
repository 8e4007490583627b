package wire

import (
	"encoding/binary"
	"unsafe"

	"github.com/tenstorrent/smc-msgqueue/internal/constants"
)

// RequestSlot is one 8-word (32-byte) fixed request record. Word 0's low
// byte is the command code; the rest is opaque to the dispatcher and
// interpreted only by the handler a command code is routed to.
type RequestSlot struct {
	Data [constants.RequestWords]uint32
}

var _ [32]byte = [unsafe.Sizeof(RequestSlot{})]byte{}

// CommandCode extracts bits [7:0] of word 0.
func (r *RequestSlot) CommandCode() uint8 {
	return uint8(r.Data[0] & 0xFF)
}

// SetCommandCode sets bits [7:0] of word 0, leaving bits [31:8] untouched.
func (r *RequestSlot) SetCommandCode(code uint8) {
	r.Data[0] = (r.Data[0] &^ 0xFF) | uint32(code)
}

// ResponseSlot is one 8-word (32-byte) fixed response record. Word 0's
// low byte is the command code echoed back by the dispatcher, the next
// byte is the status stamped by the dispatcher; the rest is handler
// output.
type ResponseSlot struct {
	Data [constants.ResponseWords]uint32
}

var _ [32]byte = [unsafe.Sizeof(ResponseSlot{})]byte{}

// CommandCode extracts the echoed command code from bits [7:0] of word 0.
func (r *ResponseSlot) CommandCode() uint8 {
	return uint8(r.Data[0] & 0xFF)
}

// Status extracts the dispatcher-stamped status from bits [15:8] of word 0.
func (r *ResponseSlot) Status() uint8 {
	return uint8((r.Data[0] >> 8) & 0xFF)
}

// StampHeader writes the command-code echo and status into word 0,
// leaving bits [31:16] (handler-defined) untouched.
func (r *ResponseSlot) StampHeader(code, status uint8) {
	r.Data[0] = (r.Data[0] &^ 0xFFFF) | uint32(code) | (uint32(status) << 8)
}

// Reset zeroes every word of the slot.
func (r *ResponseSlot) Reset() {
	*r = ResponseSlot{}
}

// MarshalSlot writes a request or response slot to its little-endian wire
// form. Used by HostStub and the ring primitive when copying slots into
// or out of the shared-memory arena.
func MarshalSlot(words *[constants.RequestWords]uint32, buf []byte) {
	for i, w := range words {
		binary.LittleEndian.PutUint32(buf[i*4:i*4+4], w)
	}
}

// UnmarshalSlot reads a little-endian wire-form slot into words.
func UnmarshalSlot(buf []byte, words *[constants.RequestWords]uint32) {
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(buf[i*4 : i*4+4])
	}
}

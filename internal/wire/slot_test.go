package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequestSlotCommandCodeRoundTrip(t *testing.T) {
	var req RequestSlot
	req.Data[0] = 0xDEAD0000
	req.SetCommandCode(0x12)
	assert.Equal(t, uint8(0x12), req.CommandCode())
	assert.Equal(t, uint32(0xDEAD0012), req.Data[0], "SetCommandCode must not disturb bits [31:8]")
}

func TestResponseSlotStampHeaderRoundTrip(t *testing.T) {
	var rsp ResponseSlot
	rsp.Data[0] = 0xABCD0000
	rsp.StampHeader(0x1E, 0xFE)

	assert.Equal(t, uint8(0x1E), rsp.CommandCode())
	assert.Equal(t, uint8(0xFE), rsp.Status())
	assert.Equal(t, uint32(0xABCD0000)|0x1E|(0xFE<<8), rsp.Data[0])
}

func TestResponseSlotReset(t *testing.T) {
	rsp := ResponseSlot{Data: [8]uint32{1, 2, 3, 4, 5, 6, 7, 8}}
	rsp.Reset()
	assert.Equal(t, ResponseSlot{}, rsp)
}

func TestMarshalUnmarshalSlotRoundTrip(t *testing.T) {
	words := [8]uint32{0x01020304, 0, 0xFFFFFFFF, 42, 0, 0, 0, 7}
	buf := make([]byte, 32)
	MarshalSlot(&words, buf)

	// Little-endian: lowest byte of word 0 is first in the buffer.
	assert.Equal(t, byte(0x04), buf[0])
	assert.Equal(t, byte(0x03), buf[1])

	var got [8]uint32
	UnmarshalSlot(buf, &got)
	assert.Equal(t, words, got)
}

package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAsSetVoltage(t *testing.T) {
	req := RequestSlot{Data: [8]uint32{uint32(MsgSetVoltage), 0x4A, 850}}
	v := AsSetVoltage(&req)
	assert.Equal(t, uint32(0x4A), v.SlaveAddr())
	assert.Equal(t, uint32(850), v.VoltageMv())
}

func TestAsI2CMessagePayload(t *testing.T) {
	req := RequestSlot{Data: [8]uint32{uint32(MsgI2CMessage), 0x50, 0x02, 1, 2, 3, 4, 5}}
	v := AsI2CMessage(&req)
	assert.Equal(t, uint32(0x50), v.SlaveAddr())
	assert.Equal(t, uint32(0x02), v.Register())
	assert.Equal(t, [5]uint32{1, 2, 3, 4, 5}, v.Payload())
}

func TestAsPcieDma(t *testing.T) {
	req := RequestSlot{Data: [8]uint32{uint32(MsgPcieDmaHostToChipTransfer), 0x1000, 0x2000, 0x3000, 4096}}
	v := AsPcieDma(&req)
	assert.Equal(t, uint32(0x1000), v.HostAddrLo())
	assert.Equal(t, uint32(0x2000), v.HostAddrHi())
	assert.Equal(t, uint32(0x3000), v.ChipAddr())
	assert.Equal(t, uint32(4096), v.SizeBytes())
}

func TestAsTriggerReset(t *testing.T) {
	req := RequestSlot{Data: [8]uint32{uint32(MsgTriggerReset), 3}}
	assert.Equal(t, uint32(3), AsTriggerReset(&req).Arg())
}

func TestAsSetWdtTimeout(t *testing.T) {
	req := RequestSlot{Data: [8]uint32{uint32(MsgSetWdtTimeout), 5000}}
	assert.Equal(t, uint32(5000), AsSetWdtTimeout(&req).TimeoutMs())
}

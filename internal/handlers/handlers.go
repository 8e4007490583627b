package handlers

import (
	"github.com/tenstorrent/smc-msgqueue/internal/constants"
	"github.com/tenstorrent/smc-msgqueue/internal/dispatch"
	"github.com/tenstorrent/smc-msgqueue/internal/interfaces"
	"github.com/tenstorrent/smc-msgqueue/internal/wire"
)

// defaultState backs every handler registered by this package's init().
// Static registration has no construction-time hook to thread a caller's
// own DeviceState through, the same constraint the firmware's
// REGISTER_MESSAGE macro operates under: a handler function pointer with
// no captured context. DefaultState exposes it for tests and for
// embedders that want to observe or seed it directly.
var defaultState = NewDeviceState()

// DefaultState returns the DeviceState backing this package's statically
// registered handlers.
func DefaultState() *DeviceState { return defaultState }

const source = "handlers"

func init() {
	dispatch.RegisterStatic(wire.MsgSetVoltage, interfaces.HandlerFunc(handleSetVoltage), source)
	dispatch.RegisterStatic(wire.MsgGetVoltage, interfaces.HandlerFunc(handleGetVoltage), source)
	dispatch.RegisterStatic(wire.MsgSwitchClkScheme, interfaces.HandlerFunc(handleSwitchClkScheme), source)
	dispatch.RegisterStatic(wire.MsgI2CMessage, interfaces.HandlerFunc(handleI2CMessage), source)
	dispatch.RegisterStatic(wire.MsgForceAIClk, interfaces.HandlerFunc(handleForceAIClk), source)
	dispatch.RegisterStatic(wire.MsgGetAIClk, interfaces.HandlerFunc(handleGetAIClk), source)
	dispatch.RegisterStatic(wire.MsgAIClkGoBusy, interfaces.HandlerFunc(handleAIClkGoBusy), source)
	dispatch.RegisterStatic(wire.MsgAIClkGoLongIdle, interfaces.HandlerFunc(handleAIClkGoLongIdle), source)
	dispatch.RegisterStatic(wire.MsgTriggerReset, interfaces.HandlerFunc(handleTriggerReset), source)
	dispatch.RegisterStatic(wire.MsgToggleTensixReset, interfaces.HandlerFunc(handleToggleTensixReset), source)
	dispatch.RegisterStatic(wire.MsgPcieDmaHostToChipTransfer, interfaces.HandlerFunc(handlePcieDma), source)
	dispatch.RegisterStatic(wire.MsgPcieDmaChipToHostTransfer, interfaces.HandlerFunc(handlePcieDma), source)
	dispatch.RegisterStatic(wire.MsgAsicState0, interfaces.HandlerFunc(handleAsicState0), source)
	dispatch.RegisterStatic(wire.MsgAsicState3, interfaces.HandlerFunc(handleAsicState3), source)
	dispatch.RegisterStatic(wire.MsgPingDM, interfaces.HandlerFunc(handlePingDM), source)
	dispatch.RegisterStatic(wire.MsgSetWdtTimeout, interfaces.HandlerFunc(handleSetWdtTimeout), source)
}

func handleSetVoltage(req *wire.RequestSlot, rsp *wire.ResponseSlot) uint8 {
	v := wire.AsSetVoltage(req)
	defaultState.SetVoltage(v.SlaveAddr(), v.VoltageMv())
	return constants.StatusOK
}

func handleGetVoltage(req *wire.RequestSlot, rsp *wire.ResponseSlot) uint8 {
	v := wire.AsGetVoltage(req)
	mv, ok := defaultState.Voltage(v.SlaveAddr())
	if !ok {
		return constants.StatusScratchOnly
	}
	rsp.Data[1] = mv
	return constants.StatusOK
}

func handleSwitchClkScheme(req *wire.RequestSlot, rsp *wire.ResponseSlot) uint8 {
	v := wire.AsSwitchClkScheme(req)
	defaultState.SetClkScheme(v.Scheme())
	return constants.StatusOK
}

// handleI2CMessage simulates the I2C transaction the firmware issues to
// a target power-management device. req.Data[1] holds the I2C slave
// address and req.Data[2] the target register, per AsI2CMessage; this
// handler echoes both back in rsp.Data[1] and rsp.Data[2] and reports
// success, since there is no real I2C bus to drive.
func handleI2CMessage(req *wire.RequestSlot, rsp *wire.ResponseSlot) uint8 {
	v := wire.AsI2CMessage(req)
	rsp.Data[1] = v.SlaveAddr()
	rsp.Data[2] = v.Register()
	return constants.StatusOK
}

func handleForceAIClk(req *wire.RequestSlot, rsp *wire.ResponseSlot) uint8 {
	v := wire.AsForceAIClk(req)
	defaultState.ForceAIClk(v.ClkMHz())
	return constants.StatusOK
}

func handleGetAIClk(req *wire.RequestSlot, rsp *wire.ResponseSlot) uint8 {
	rsp.Data[1] = defaultState.AIClkMHz()
	return constants.StatusOK
}

func handleAIClkGoBusy(req *wire.RequestSlot, rsp *wire.ResponseSlot) uint8 {
	defaultState.SetAIClkBusy(true)
	return constants.StatusOK
}

func handleAIClkGoLongIdle(req *wire.RequestSlot, rsp *wire.ResponseSlot) uint8 {
	defaultState.SetAIClkBusy(false)
	return constants.StatusOK
}

func handleTriggerReset(req *wire.RequestSlot, rsp *wire.ResponseSlot) uint8 {
	defaultState.RecordReset()
	return constants.StatusOK
}

func handleToggleTensixReset(req *wire.RequestSlot, rsp *wire.ResponseSlot) uint8 {
	mask := req.Data[1]
	defaultState.SetTensixMask(defaultState.TensixMask() ^ mask)
	return constants.StatusOK
}

// handlePcieDma simulates a DMA transfer by reporting the requested size
// back in the response; no bytes actually move.
func handlePcieDma(req *wire.RequestSlot, rsp *wire.ResponseSlot) uint8 {
	v := wire.AsPcieDma(req)
	rsp.Data[1] = v.SizeBytes()
	return constants.StatusOK
}

func handleAsicState0(req *wire.RequestSlot, rsp *wire.ResponseSlot) uint8 {
	return constants.StatusOK
}

func handleAsicState3(req *wire.RequestSlot, rsp *wire.ResponseSlot) uint8 {
	return constants.StatusOK
}

func handlePingDM(req *wire.RequestSlot, rsp *wire.ResponseSlot) uint8 {
	return constants.StatusOK
}

func handleSetWdtTimeout(req *wire.RequestSlot, rsp *wire.ResponseSlot) uint8 {
	v := wire.AsSetWdtTimeout(req)
	defaultState.SetWdtTimeoutMs(v.TimeoutMs())
	return constants.StatusOK
}

package wire

// Typed views over a RequestSlot's opaque payload words, one per
// reference handler command. These are the Go realization of the C
// union request member structs in the original firmware's msgqueue.h:
// since Go has no safe union type, each handler gets a small read-only
// accessor type over the same underlying [8]uint32 instead of a new
// memory layout. Word 0 is always the command code (plus 3 bytes of
// padding the original struct layout reserves); command-specific fields
// start at word 1.

// SetVoltageRequest views a MsgSetVoltage request.
type SetVoltageRequest struct{ req *RequestSlot }

func AsSetVoltage(req *RequestSlot) SetVoltageRequest { return SetVoltageRequest{req} }
func (v SetVoltageRequest) SlaveAddr() uint32         { return v.req.Data[1] }
func (v SetVoltageRequest) VoltageMv() uint32         { return v.req.Data[2] }

// GetVoltageRequest views a MsgGetVoltage request.
type GetVoltageRequest struct{ req *RequestSlot }

func AsGetVoltage(req *RequestSlot) GetVoltageRequest { return GetVoltageRequest{req} }
func (v GetVoltageRequest) SlaveAddr() uint32         { return v.req.Data[1] }

// SwitchClkSchemeRequest views a MsgSwitchClkScheme request.
type SwitchClkSchemeRequest struct{ req *RequestSlot }

func AsSwitchClkScheme(req *RequestSlot) SwitchClkSchemeRequest { return SwitchClkSchemeRequest{req} }
func (v SwitchClkSchemeRequest) Scheme() uint32                 { return v.req.Data[1] }

// I2CMessageRequest views a MsgI2CMessage request: slave address, register,
// and up to five payload words.
type I2CMessageRequest struct{ req *RequestSlot }

func AsI2CMessage(req *RequestSlot) I2CMessageRequest { return I2CMessageRequest{req} }
func (v I2CMessageRequest) SlaveAddr() uint32         { return v.req.Data[1] }
func (v I2CMessageRequest) Register() uint32          { return v.req.Data[2] }
func (v I2CMessageRequest) Payload() [5]uint32 {
	var p [5]uint32
	copy(p[:], v.req.Data[3:8])
	return p
}

// ForceAIClkRequest views a MsgForceAIClk request.
type ForceAIClkRequest struct{ req *RequestSlot }

func AsForceAIClk(req *RequestSlot) ForceAIClkRequest { return ForceAIClkRequest{req} }
func (v ForceAIClkRequest) ClkMHz() uint32            { return v.req.Data[1] }

// TriggerResetRequest views a MsgTriggerReset request. Arg 3 means ASIC +
// M3 reset; other values mean ASIC-only reset, per the original firmware
// comment.
type TriggerResetRequest struct{ req *RequestSlot }

func AsTriggerReset(req *RequestSlot) TriggerResetRequest { return TriggerResetRequest{req} }
func (v TriggerResetRequest) Arg() uint32                 { return v.req.Data[1] }

// PcieDmaRequest views a PCIe DMA transfer request (either direction).
type PcieDmaRequest struct{ req *RequestSlot }

func AsPcieDma(req *RequestSlot) PcieDmaRequest { return PcieDmaRequest{req} }
func (v PcieDmaRequest) HostAddrLo() uint32     { return v.req.Data[1] }
func (v PcieDmaRequest) HostAddrHi() uint32     { return v.req.Data[2] }
func (v PcieDmaRequest) ChipAddr() uint32       { return v.req.Data[3] }
func (v PcieDmaRequest) SizeBytes() uint32      { return v.req.Data[4] }

// SetWdtTimeoutRequest views a MsgSetWdtTimeout request.
type SetWdtTimeoutRequest struct{ req *RequestSlot }

func AsSetWdtTimeout(req *RequestSlot) SetWdtTimeoutRequest { return SetWdtTimeoutRequest{req} }
func (v SetWdtTimeoutRequest) TimeoutMs() uint32            { return v.req.Data[1] }

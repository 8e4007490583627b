package wire

// Command codes, ported from the Tenstorrent firmware's tt_msg_type
// enumeration (include/tenstorrent/msg_type.h). Codes marked "not
// supported" upstream are kept as named constants so callers can still
// recognize them on the wire; this module registers no reference handler
// for them, so the dispatcher answers with StatusScratchOnly exactly as
// it would for any other unregistered code.
const (
	MsgReserved01 = 0x01
	MsgNop        = 0x11

	MsgSetVoltage           = 0x12
	MsgGetVoltage           = 0x13
	MsgSwitchClkScheme      = 0x14
	MsgDebugNocTranslation  = 0x15
	MsgReportScratchOnly    = 0x16
	MsgSendPcieMsi          = 0x17
	MsgSwitchVoutControl    = 0x18
	MsgReadEeprom           = 0x19
	MsgWriteEeprom          = 0x1A
	MsgReadTS               = 0x1B
	MsgReadPD               = 0x1C
	MsgReadVM               = 0x1D
	MsgI2CMessage           = 0x1E
	MsgEfuseBurnBits        = 0x1F
	MsgReinitTensix         = 0x20

	MsgGetFreqCurveFromVoltage = 0x30
	MsgAISweepStart            = 0x31
	MsgAISweepStop             = 0x32
	MsgForceAIClk              = 0x33
	MsgGetAIClk                = 0x34
	MsgForceVDD                = 0x39

	MsgPcieIndex      = 0x51
	MsgAIClkGoBusy    = 0x52
	MsgAIClkGoLongIdle = 0x54
	MsgTriggerReset   = 0x56

	MsgReserved60 = 0x60
	MsgTest       = 0x90

	MsgPcieDmaChipToHostTransfer = 0x9B
	MsgPcieDmaHostToChipTransfer = 0x9C
	MsgPcieErrorCntReset         = 0x9D
	MsgTriggerIRQ                = 0x9F

	MsgAsicState0                 = 0xA0
	MsgAsicState1                 = 0xA1
	MsgAsicState3                 = 0xA3
	MsgAsicState5                 = 0xA5
	MsgGetVoltageCurveFromFreq    = 0xA6

	MsgForceFanSpeed              = 0xAC
	MsgGetDramTemperature         = 0xAD
	MsgToggleTensixReset          = 0xAF
	MsgDramBistStart              = 0xB0
	MsgNocWriteWord               = 0xB1
	MsgToggleEthReset             = 0xB2
	MsgSetDramRefreshRate         = 0xB3
	MsgArcDma                     = 0xB4
	MsgTestSPI                    = 0xB5
	MsgCurrDate                   = 0xB7
	MsgUpdateM3AutoResetTimeout   = 0xBC
	MsgClearNumAutoReset          = 0xBD
	MsgSetLastSerial              = 0xBE
	MsgEfuseBurn                  = 0xBF

	MsgPingDM        = 0xC0
	MsgSetWdtTimeout = 0xC1
)

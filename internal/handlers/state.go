// Package handlers implements a reference set of command handlers for a
// representative slice of the firmware's message-type catalog, so a
// caller can exercise a realistic dispatcher without writing its own
// handler for every demoed command. Handlers hold small in-memory
// simulated device state (voltage rails, clock scheme, AI clock,
// watchdog timeout) rather than touching real hardware registers; this
// mirrors the original firmware's msgqueue.c handlers, which are thin
// wrappers over register or driver calls this module has no analogue
// for.
package handlers

import "sync"

// DeviceState holds the simulated controller state the reference
// handlers in this package read and mutate. Zero value is ready to use.
type DeviceState struct {
	mu sync.Mutex

	voltageMv    map[uint32]uint32 // rail id -> millivolts
	clkScheme    uint32
	aiClkMHz     uint32
	aiClkBusy    bool
	wdtTimeoutMs uint32
	resetCount   int
	tensixMask   uint32
}

// NewDeviceState returns a DeviceState with a couple of plausible
// default voltage rails pre-populated, the same defaults the original
// firmware's power-management init assigns before the host ever issues a
// SET_VOLTAGE.
func NewDeviceState() *DeviceState {
	return &DeviceState{
		voltageMv: map[uint32]uint32{
			0x00: 750,
			0x01: 850,
		},
		aiClkMHz: 800,
	}
}

func (s *DeviceState) SetVoltage(rail, mv uint32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.voltageMv == nil {
		s.voltageMv = make(map[uint32]uint32)
	}
	s.voltageMv[rail] = mv
}

func (s *DeviceState) Voltage(rail uint32) (uint32, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.voltageMv[rail]
	return v, ok
}

func (s *DeviceState) SetClkScheme(scheme uint32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clkScheme = scheme
}

func (s *DeviceState) ClkScheme() uint32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.clkScheme
}

func (s *DeviceState) ForceAIClk(mhz uint32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.aiClkMHz = mhz
}

func (s *DeviceState) AIClkMHz() uint32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.aiClkMHz
}

func (s *DeviceState) SetAIClkBusy(busy bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.aiClkBusy = busy
}

func (s *DeviceState) AIClkBusy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.aiClkBusy
}

func (s *DeviceState) SetWdtTimeoutMs(ms uint32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.wdtTimeoutMs = ms
}

func (s *DeviceState) WdtTimeoutMs() uint32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.wdtTimeoutMs
}

func (s *DeviceState) RecordReset() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resetCount++
	return s.resetCount
}

func (s *DeviceState) ResetCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.resetCount
}

func (s *DeviceState) SetTensixMask(mask uint32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tensixMask = mask
}

func (s *DeviceState) TensixMask() uint32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tensixMask
}

// Package stepper implements the core engine: it
// alternates CPU-instruction dispatch with proportional PPU cycles,
// servicing pending interrupt-bus signals first.
package stepper

import (
	"errors"

	"nesgo/internal/interrupt"
)

// ErrUnsupportedInterrupt is returned when an IRQ is observed pending;
// IRQ servicing is unimplemented by design.
var ErrUnsupportedInterrupt = errors.New("stepper: IRQ servicing is unimplemented")

// cyclesPerCPUCycle is the fixed 3:1 PPU:CPU cycle ratio.
const cyclesPerCPUCycle = 3

// CPU is the stepper's view of the 6502 façade. RunNextInstruction can
// fail with an error wrapping cpu.ErrUnsupportedOpcode when the
// configured undocumented-opcode support level forbids the fetched
// opcode; TriggerNMI and OAMDMAPause never fail.
type CPU interface {
	RunNextInstruction() (uint32, error)
	TriggerNMI() uint32
	OAMDMAPause() uint32
}

// PPU is the stepper's view of the PPU façade.
type PPU interface {
	RunCycles(n uint32) bool
}

// Stepper drives one CPU instruction (or one pending interrupt
// service) and the PPU cycles it corresponds to, per call to Step.
type Stepper struct {
	cpu        CPU
	ppu        PPU
	interrupts *interrupt.Bus
}

// New constructs a stepper over the given CPU, PPU, and interrupt bus.
func New(cpu CPU, ppu PPU, interrupts *interrupt.Bus) *Stepper {
	return &Stepper{cpu: cpu, ppu: ppu, interrupts: interrupts}
}

// Step advances the system by exactly one CPU-dispatch unit: either
// servicing a single pending interrupt-bus signal (in priority order
// NMI, then IRQ, then OAM-DMA stall) or running the next instruction
// if none is pending, then running the PPU for exactly 3x that many
// cycles. It returns whether a vblank began during the PPU cycles it
// ran.
//
// An instruction is never additionally executed in the same call that
// serviced an interrupt, and at most one signal is serviced per call:
// this is what guarantees interrupts are only ever observed at
// instruction boundaries.
func (s *Stepper) Step() (bool, error) {
	var cycles uint32

	switch {
	case s.interrupts.NMIActive():
		cycles = s.cpu.TriggerNMI()
		s.interrupts.ResetNMI()
	case s.interrupts.IRQActive():
		return false, ErrUnsupportedInterrupt
	case s.interrupts.OAMDMAStallActive():
		cycles = s.cpu.OAMDMAPause()
		s.interrupts.ResetOAMDMAStall()
	default:
		var err error
		cycles, err = s.cpu.RunNextInstruction()
		if err != nil {
			return false, err
		}
	}

	return s.ppu.RunCycles(cycles * cyclesPerCPUCycle), nil
}

package stepper

import (
	"errors"
	"testing"

	"nesgo/internal/interrupt"
)

type fakeCPU struct {
	nmiCalls   int
	dmaCalls   int
	instrCalls int
}

func (c *fakeCPU) RunNextInstruction() (uint32, error) { c.instrCalls++; return 2, nil }
func (c *fakeCPU) TriggerNMI() uint32                  { c.nmiCalls++; return 7 }
func (c *fakeCPU) OAMDMAPause() uint32                 { c.dmaCalls++; return 513 }

type fakePPU struct {
	lastCycles uint32
	vblank     bool
}

func (p *fakePPU) RunCycles(n uint32) bool {
	p.lastCycles = n
	return p.vblank
}

// P4: PPU advances by exactly 3x the returned CPU cycles.
func TestStepRunsPPUAtThreeToOne(t *testing.T) {
	cpu := &fakeCPU{}
	ppu := &fakePPU{}
	ib := interrupt.New()
	s := New(cpu, ppu, ib)

	if _, err := s.Step(); err != nil {
		t.Fatalf("Step() error = %v", err)
	}
	if cpu.instrCalls != 1 {
		t.Fatalf("instrCalls = %d, want 1", cpu.instrCalls)
	}
	if ppu.lastCycles != 6 {
		t.Fatalf("ppu ran %d cycles, want 6 (2*3)", ppu.lastCycles)
	}
}

// P5: with only NMI pending, TriggerNMI is called and RunNextInstruction
// is not; NMI is cleared before Step returns.
func TestStepServicesNMIOnly(t *testing.T) {
	cpu := &fakeCPU{}
	ppu := &fakePPU{}
	ib := interrupt.New()
	ib.RaiseNMI()

	s := New(cpu, ppu, ib)
	if _, err := s.Step(); err != nil {
		t.Fatalf("Step() error = %v", err)
	}
	if cpu.nmiCalls != 1 {
		t.Fatalf("nmiCalls = %d, want 1", cpu.nmiCalls)
	}
	if cpu.instrCalls != 0 {
		t.Fatalf("instrCalls = %d, want 0", cpu.instrCalls)
	}
	if ib.NMIActive() {
		t.Fatalf("NMIActive() = true after Step")
	}
}

func TestStepReturnsErrorOnIRQ(t *testing.T) {
	cpu := &fakeCPU{}
	ppu := &fakePPU{}
	ib := interrupt.New()
	ib.RaiseIRQ()

	s := New(cpu, ppu, ib)
	_, err := s.Step()
	if !errors.Is(err, ErrUnsupportedInterrupt) {
		t.Fatalf("Step() error = %v, want ErrUnsupportedInterrupt", err)
	}
}

func TestStepServicesOAMDMAStall(t *testing.T) {
	cpu := &fakeCPU{}
	ppu := &fakePPU{}
	ib := interrupt.New()
	ib.RaiseOAMDMAStall()

	s := New(cpu, ppu, ib)
	if _, err := s.Step(); err != nil {
		t.Fatalf("Step() error = %v", err)
	}
	if cpu.dmaCalls != 1 {
		t.Fatalf("dmaCalls = %d, want 1", cpu.dmaCalls)
	}
	if ib.OAMDMAStallActive() {
		t.Fatalf("OAMDMAStallActive() = true after Step")
	}
	if ppu.lastCycles != 513*3 {
		t.Fatalf("ppu ran %d cycles, want %d", ppu.lastCycles, 513*3)
	}
}

// Scenario 5: NMI servicing across two Step calls.
func TestNMIServicedOnceAcrossTwoSteps(t *testing.T) {
	cpu := &fakeCPU{}
	ppu := &fakePPU{vblank: true}
	ib := interrupt.New()
	ib.RaiseNMI()

	s := New(cpu, ppu, ib)
	if _, err := s.Step(); err != nil {
		t.Fatalf("first Step() error = %v", err)
	}
	if _, err := s.Step(); err != nil {
		t.Fatalf("second Step() error = %v", err)
	}
	if cpu.nmiCalls != 1 {
		t.Fatalf("nmiCalls = %d, want 1", cpu.nmiCalls)
	}
	if ib.NMIActive() {
		t.Fatalf("NMIActive() = true after second Step")
	}
	if cpu.instrCalls != 1 {
		t.Fatalf("instrCalls = %d, want 1 (second step ran an instruction)", cpu.instrCalls)
	}
}

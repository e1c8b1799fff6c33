package save

import (
	"bytes"
	"testing"

	"nesgo/internal/cartridge"
	"nesgo/internal/cpu"
	"nesgo/internal/cpubus"
	"nesgo/internal/input"
	"nesgo/internal/interrupt"
	"nesgo/internal/ppu"
	"nesgo/internal/ppubus"
)

func newTestConsole(t *testing.T) (*cpu.CPU, *ppu.PPU, *cpubus.Bus, *cartridge.Cartridge, *input.Controller, *input.Controller, *interrupt.Bus) {
	t.Helper()
	cart, err := cartridge.New(cartridge.Config{PRG: make([]byte, 32*1024)})
	if err != nil {
		t.Fatalf("cartridge.New() error = %v", err)
	}
	interrupts := interrupt.New()
	vbus := ppubus.New(cart)
	p := ppu.New(vbus, interrupts)
	c1, c2 := input.New(), input.New()
	bus := cpubus.New(p, cart, c1, c2, interrupts)
	c := cpu.New(bus)
	return c, p, bus, cart, c1, c2, interrupts
}

func TestCaptureApplyRoundTrip(t *testing.T) {
	c, p, bus, cart, c1, c2, interrupts := newTestConsole(t)

	c.A, c.X, c.Y, c.SP, c.PC = 0x11, 0x22, 0x33, 0xF0, 0xC000
	c.C, c.Z = true, true
	c.SetCycles(12345)
	bus.SetRAM([0x800]byte{0: 0xAB, 0x7FF: 0xCD})
	cart.SetWRAM([]byte{0xEE})
	c1.SetButton(input.ButtonA, true)
	interrupts.RaiseNMI()

	state := Capture(c, p, bus, cart, c1, c2, interrupts)

	var buf bytes.Buffer
	if err := Save(&buf, state); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	loaded, err := Load(&buf)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	dstCPU, p2, bus2, cart2, c1b, c2b, interrupts2 := newTestConsole(t)
	Apply(loaded, dstCPU, p2, bus2, cart2, c1b, c2b, interrupts2)

	if dstCPU.A != 0x11 || dstCPU.X != 0x22 || dstCPU.Y != 0x33 || dstCPU.SP != 0xF0 || dstCPU.PC != 0xC000 {
		t.Fatalf("restored registers = %+v, want A=0x11 X=0x22 Y=0x33 SP=0xF0 PC=0xC000", dstCPU)
	}
	if !dstCPU.C || !dstCPU.Z {
		t.Fatalf("restored flags C=%v Z=%v, want both true", dstCPU.C, dstCPU.Z)
	}
	if dstCPU.Cycles() != 12345 {
		t.Fatalf("restored Cycles() = %d, want 12345", dstCPU.Cycles())
	}
	gotRAM := bus2.RAM()
	if gotRAM[0] != 0xAB || gotRAM[0x7FF] != 0xCD {
		t.Fatalf("restored RAM[0]=%#02x RAM[0x7FF]=%#02x, want 0xAB/0xCD", gotRAM[0], gotRAM[0x7FF])
	}
	if got := cart2.WRAM(); got[0] != 0xEE {
		t.Fatalf("restored cart WRAM[0] = %#02x, want 0xEE", got[0])
	}
	if got := c1b.State(); got.Buttons&uint8(input.ButtonA) == 0 {
		t.Fatalf("restored controller1 buttons = %#02x, want ButtonA set", got.Buttons)
	}
	if !interrupts2.NMIActive() {
		t.Fatalf("restored interrupts.NMIActive() = false, want true")
	}
}

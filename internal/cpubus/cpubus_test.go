package cpubus

import (
	"testing"

	"nesgo/internal/interrupt"
)

type fakePPU struct {
	regs      [8]uint8
	oam       [256]byte
	oamWrites int
}

func (p *fakePPU) ReadRegister(i uint16) uint8    { return p.regs[i] }
func (p *fakePPU) WriteRegister(i uint16, v uint8) { p.regs[i] = v }
func (p *fakePPU) WriteOAM(block [256]byte) {
	p.oam = block
	p.oamWrites++
}

type fakeCart struct {
	ram [0x10000]byte
}

func (c *fakeCart) Read(addr uint16) uint8     { return c.ram[addr] }
func (c *fakeCart) Write(addr uint16, v uint8) { c.ram[addr] = v }

type fakeController struct {
	bit    uint8
	strobe uint8
}

func (c *fakeController) ReadBit() uint8     { return c.bit }
func (c *fakeController) SetStrobe(v uint8) { c.strobe = v }

func newTestBus() (*Bus, *fakePPU, *fakeCart, *fakeController, *fakeController, *interrupt.Bus) {
	ppu := &fakePPU{}
	cart := &fakeCart{}
	c1 := &fakeController{}
	c2 := &fakeController{}
	ib := interrupt.New()
	return New(ppu, cart, c1, c2, ib), ppu, cart, c1, c2, ib
}

// P1: RAM mirrors every 0x800 bytes across 0x0000-0x1FFF.
func TestRAMMirroring(t *testing.T) {
	b, _, _, _, _, _ := newTestBus()
	b.Write(0x0000, 0x77)
	for _, a := range []uint16{0x0000, 0x0800, 0x1000, 0x1800} {
		if got := b.Read(a); got != 0x77 {
			t.Fatalf("Read(%#04x) = %#02x, want 0x77", a, got)
		}
	}
}

// P2: writes in 0x2000-0x3FFF invoke WriteRegister(addr mod 8, v).
func TestPPURegisterMirroring(t *testing.T) {
	b, ppu, _, _, _, _ := newTestBus()
	b.Write(0x2001, 0xAB)
	if ppu.regs[1] != 0xAB {
		t.Fatalf("ppu.regs[1] = %#02x, want 0xAB", ppu.regs[1])
	}
	b.Write(0x3FF9, 0xCD) // 0x3FF9 % 8 == 1
	if ppu.regs[1] != 0xCD {
		t.Fatalf("mirrored write: ppu.regs[1] = %#02x, want 0xCD", ppu.regs[1])
	}
}

func TestControllerReadBitPacking(t *testing.T) {
	b, _, _, c1, _, _ := newTestBus()
	c1.bit = 1
	if got := b.Read(0x4016); got != 0x41 {
		t.Fatalf("Read(0x4016) = %#02x, want 0x41", got)
	}
}

func TestControllerStrobeBroadcast(t *testing.T) {
	b, _, _, c1, c2, _ := newTestBus()
	b.Write(0x4016, 1)
	if c1.strobe != 1 || c2.strobe != 1 {
		t.Fatalf("strobe not broadcast to both controllers: c1=%d c2=%d", c1.strobe, c2.strobe)
	}
}

// P6 / Scenario 4: OAM DMA.
func TestOAMDMA(t *testing.T) {
	b, ppu, _, _, _, ib := newTestBus()
	for i := 0; i < 256; i++ {
		b.Write(0x0200+uint16(i), uint8(i))
	}
	b.Write(0x4014, 0x02)

	if ppu.oamWrites != 1 {
		t.Fatalf("WriteOAM called %d times, want 1", ppu.oamWrites)
	}
	for i := 0; i < 256; i++ {
		if ppu.oam[i] != uint8(i) {
			t.Fatalf("oam[%d] = %#02x, want %#02x", i, ppu.oam[i], uint8(i))
		}
	}
	if !ib.OAMDMAStallActive() {
		t.Fatalf("OAMDMAStallActive() = false after DMA")
	}
}

func TestCartridgeWindow(t *testing.T) {
	b, _, _, _, _, _ := newTestBus()
	b.Write(0x8000, 0x42)
	if got := b.Read(0x8000); got != 0x42 {
		t.Fatalf("Read(0x8000) = %#02x, want 0x42", got)
	}
}

func TestUnmappedAPURegionReturnsZero(t *testing.T) {
	b, _, _, _, _, _ := newTestBus()
	if got := b.Read(0x4018); got != 0 {
		t.Fatalf("Read(0x4018) = %#02x, want 0", got)
	}
}

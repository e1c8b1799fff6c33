// Package cpubus implements the CPU's 16-bit address space: the
// decode across internal RAM, PPU registers, controller ports,
// OAM-DMA initiation, and the cartridge window.
package cpubus

import (
	"nesgo/internal/bits"
	"nesgo/internal/interrupt"
)

const (
	ramSize    = 0x800
	oamDMAPage = 0x4014
	controller1Port = 0x4016
	controller2Port = 0x4017
)

// PPU is the CPU-visible register-file capability the PPU exposes.
type PPU interface {
	ReadRegister(i uint16) uint8
	WriteRegister(i uint16, v uint8)
	WriteOAM(block [256]byte)
}

// Cartridge is the CPU-visible capability the cartridge exposes.
type Cartridge interface {
	Read(addr uint16) uint8
	Write(addr uint16, v uint8)
}

// Controller is the capability each controller port exposes.
type Controller interface {
	ReadBit() uint8
	SetStrobe(v uint8)
}

// Bus is the CPU's mapped address space.
type Bus struct {
	ram         [ramSize]byte
	ppu         PPU
	cart        Cartridge
	controller1 Controller
	controller2 Controller
	interrupts  *interrupt.Bus
}

// New constructs a CPU bus over the given components. cart may be nil
// until a cartridge is loaded; reads/writes in the cartridge window
// are no-ops in that case.
func New(ppu PPU, cart Cartridge, c1, c2 Controller, interrupts *interrupt.Bus) *Bus {
	return &Bus{
		ppu:         ppu,
		cart:        cart,
		controller1: c1,
		controller2: c2,
		interrupts:  interrupts,
	}
}

// SetCartridge attaches (or replaces) the cartridge the bus routes
// 0x4020-0xFFFF accesses to.
func (b *Bus) SetCartridge(cart Cartridge) {
	b.cart = cart
}

// RAM returns the 2 KiB of internal work RAM, for serialization.
func (b *Bus) RAM() [ramSize]byte {
	return b.ram
}

// SetRAM overwrites the internal work RAM, used when restoring a
// saved state.
func (b *Bus) SetRAM(ram [ramSize]byte) {
	b.ram = ram
}

// Read decodes a 16-bit CPU address and returns the byte it resolves
// to.
func (b *Bus) Read(addr uint16) uint8 {
	switch {
	case addr < 0x2000:
		return b.ram[addr%ramSize]
	case addr < 0x4000:
		return b.ppu.ReadRegister(addr % 8)
	case addr == oamDMAPage:
		return 0
	case addr == controller1Port:
		return (b.controller1.ReadBit() & 0x1F) | (0x40 & 0xE0)
	case addr == controller2Port:
		return (b.controller2.ReadBit() & 0x1F) | (0x40 & 0xE0)
	case addr < 0x4020:
		return 0
	default:
		if b.cart == nil {
			return 0
		}
		return b.cart.Read(addr)
	}
}

// Write decodes a 16-bit CPU address and applies the write to the
// region it resolves to.
func (b *Bus) Write(addr uint16, v uint8) {
	switch {
	case addr < 0x2000:
		b.ram[addr%ramSize] = v
	case addr < 0x4000:
		b.ppu.WriteRegister(addr%8, v)
	case addr == oamDMAPage:
		b.triggerOAMDMA(v)
	case addr == controller1Port:
		b.controller1.SetStrobe(v)
		b.controller2.SetStrobe(v)
	case addr == controller2Port:
		// write-only from the controller's perspective; no-op on the bus
	case addr < 0x4020:
		// no-op: APU registers are outside the core's scope
	default:
		if b.cart != nil {
			b.cart.Write(addr, v)
		}
	}
}

// triggerOAMDMA performs the 256-byte copy from CPU page P<<8 into the
// PPU's OAM, reading each source byte through the
// full CPU bus so cartridge/WRAM sources are valid, then raises the
// OAM-DMA stall signal for the stepper to service on the next step.
func (b *Bus) triggerOAMDMA(page uint8) {
	base := bits.SetHighByte(0, page)
	var block [256]byte
	for i := 0; i < 256; i++ {
		block[i] = b.Read(base + uint16(i))
	}
	b.ppu.WriteOAM(block)
	b.interrupts.RaiseOAMDMAStall()
}

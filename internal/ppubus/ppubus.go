// Package ppubus implements the PPU's 14-bit video-address bus: the
// decode across pattern tables (cartridge CHR), mirrored nametables,
// and palette RAM.
package ppubus

import "nesgo/internal/cartridge"

const (
	nametableBase     = 0x2000
	paletteBase       = 0x3F00
	nametablePageSize = 0x400
)

// Cartridge is the PPU-side capability the cartridge exposes to the
// video bus: CHR-memory access and the fixed nametable mirror pattern.
type Cartridge interface {
	ReadPPU(addr uint16) uint8
	WritePPU(addr uint16, v uint8)
	MirrorPattern() cartridge.MirrorPattern
}

// Bus is the PPU-owned video address space: pattern tables delegate to
// the cartridge, nametables are backed by an in-PPU buffer sized for
// the cartridge's mirror pattern, and palette RAM is a 32-byte array
// with the backdrop-alias rule applied on both read and write.
type Bus struct {
	cart       Cartridge
	nametables []byte
	palette    [32]byte
}

// New constructs a PPU bus over the given cartridge. The nametable
// buffer is sized to cover the highest physical page the cartridge's
// mirror pattern refers to.
func New(cart Cartridge) *Bus {
	pages := int(cart.MirrorPattern().MaxPhysicalPage()) + 1
	if pages < 2 {
		pages = 2
	}
	return &Bus{
		cart:       cart,
		nametables: make([]byte, pages*nametablePageSize),
	}
}

// Read decodes a 14-bit PPU address and returns the byte it resolves
// to.
func (b *Bus) Read(addr uint16) uint8 {
	addr &= 0x3FFF
	switch {
	case addr < nametableBase:
		return b.cart.ReadPPU(addr)
	case addr < paletteBase:
		return b.nametables[b.nametableIndex(addr)]
	default:
		return b.palette[b.paletteIndex(addr)]
	}
}

// Write decodes a 14-bit PPU address and writes the byte to the region
// it resolves to.
func (b *Bus) Write(addr uint16, v uint8) {
	addr &= 0x3FFF
	switch {
	case addr < nametableBase:
		b.cart.WritePPU(addr, v)
	case addr < paletteBase:
		b.nametables[b.nametableIndex(addr)] = v
	default:
		b.palette[b.paletteIndex(addr)] = v
	}
}

// nametableIndex resolves a nametable-region address (0x2000-0x3EFF,
// including its 0x3000-0x3EFF mirror of 0x2000-0x2EFF) to a physical
// offset in the PPU-owned nametable buffer.
func (b *Bus) nametableIndex(addr uint16) int {
	off := int(addr-nametableBase) % 0x1000
	logicalPage := off / nametablePageSize
	within := off % nametablePageSize
	physicalPage := b.cart.MirrorPattern()[logicalPage]
	return int(physicalPage)*nametablePageSize + within
}

// paletteIndex resolves a palette-region address to one of the 32
// palette RAM bytes, applying the backdrop-color alias rule: 0x3F10/14/18/1C alias 0x3F00/04/08/0C.
func (b *Bus) paletteIndex(addr uint16) uint8 {
	p := uint8(addr % 0x20)
	switch p {
	case 0x10, 0x14, 0x18, 0x1C:
		p -= 0x10
	}
	return p
}

// Package save implements save-state serialization of a running
// console as an explicit value tree, using encoding/gob. This
// replaces original_source/main.py's approach of pickling the entire
// live object graph with a schema that names exactly what is captured.
package save

import (
	"encoding/gob"
	"io"

	"nesgo/internal/cartridge"
	"nesgo/internal/cpu"
	"nesgo/internal/cpubus"
	"nesgo/internal/input"
	"nesgo/internal/interrupt"
	"nesgo/internal/ppu"
)

// CPUState is the serializable snapshot of the 6502's registers and
// cycle counter. UndocumentedSupportLevel and StackUnderflowCausesException
// are construction-time configuration, not run state, and are not
// captured here.
type CPUState struct {
	A, X, Y, SP uint8
	PC          uint16
	Status      uint8
	Cycles      uint64
}

// CartState is the serializable snapshot of a cartridge's mutable
// memory: PRG RAM, and the full CHR memory whether it is RAM or ROM
// (writes to CHR ROM are applied, so it can change too). PRG ROM and
// the mirror pattern are fixed at load time and are not captured here.
type CartState struct {
	WRAM []byte
	CHR  []byte
}

// State is the complete value tree captured by Capture and consumed
// by Apply.
type State struct {
	RAM         [0x800]byte
	CPU         CPUState
	PPU         ppu.State
	Cart        CartState
	Controller1 input.State
	Controller2 input.State
	Interrupts  interrupt.State
}

// Capture snapshots every piece of mutable console state into a State
// value tree.
func Capture(c *cpu.CPU, p *ppu.PPU, bus *cpubus.Bus, cart *cartridge.Cartridge, c1, c2 *input.Controller, interrupts *interrupt.Bus) State {
	return State{
		RAM: bus.RAM(),
		CPU: CPUState{
			A:      c.A,
			X:      c.X,
			Y:      c.Y,
			SP:     c.SP,
			PC:     c.PC,
			Status: c.GetStatusByte(),
			Cycles: c.Cycles(),
		},
		PPU: p.State(),
		Cart: CartState{
			WRAM: cart.WRAM(),
			CHR:  append([]byte(nil), cart.CHR()...),
		},
		Controller1: c1.State(),
		Controller2: c2.State(),
		Interrupts:  interrupts.State(),
	}
}

// Apply restores every piece of mutable console state from a
// previously captured State value tree.
func Apply(s State, c *cpu.CPU, p *ppu.PPU, bus *cpubus.Bus, cart *cartridge.Cartridge, c1, c2 *input.Controller, interrupts *interrupt.Bus) {
	bus.SetRAM(s.RAM)

	c.A, c.X, c.Y, c.SP, c.PC = s.CPU.A, s.CPU.X, s.CPU.Y, s.CPU.SP, s.CPU.PC
	c.SetStatusByte(s.CPU.Status)
	c.SetCycles(s.CPU.Cycles)

	p.Restore(s.PPU)

	cart.SetWRAM(s.Cart.WRAM)
	cart.SetCHR(s.Cart.CHR)

	c1.Restore(s.Controller1)
	c2.Restore(s.Controller2)
	interrupts.Restore(s.Interrupts)
}

// Save encodes a State value tree to w.
func Save(w io.Writer, s State) error {
	return gob.NewEncoder(w).Encode(s)
}

// Load decodes a State value tree from r.
func Load(r io.Reader) (State, error) {
	var s State
	if err := gob.NewDecoder(r).Decode(&s); err != nil {
		return State{}, err
	}
	return s, nil
}

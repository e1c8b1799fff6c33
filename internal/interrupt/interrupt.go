// Package interrupt implements the console's interrupt signal bus: the
// three pending-signal flags (NMI, IRQ, OAM-DMA stall) that the CPU
// bus, PPU, and stepper raise and service.
package interrupt

// Bus is the single-producer, single-consumer flag set shared by the
// CPU bus (raises OAM-DMA stall), the PPU (raises NMI), and the
// stepper (resets each flag once serviced). Flags are monotone between
// raise and reset: multiple raises before a reset are indistinguishable
// from one.
type Bus struct {
	nmiPending         bool
	irqPending         bool
	oamDMAStallPending bool
}

// New returns an interrupt bus with all flags clear.
func New() *Bus {
	return &Bus{}
}

// RaiseNMI marks a non-maskable interrupt as pending. Raised by the PPU
// on entering vblank with NMI output enabled.
func (b *Bus) RaiseNMI() { b.nmiPending = true }

// ResetNMI clears the pending NMI flag. Called by the stepper once it
// has serviced the signal.
func (b *Bus) ResetNMI() { b.nmiPending = false }

// NMIActive reports whether an NMI is pending.
func (b *Bus) NMIActive() bool { return b.nmiPending }

// RaiseIRQ marks a maskable interrupt as pending. Servicing is
// unimplemented; the stepper reports ErrUnsupportedInterrupt when this
// flag is observed.
func (b *Bus) RaiseIRQ() { b.irqPending = true }

// ResetIRQ clears the pending IRQ flag.
func (b *Bus) ResetIRQ() { b.irqPending = false }

// IRQActive reports whether an IRQ is pending.
func (b *Bus) IRQActive() bool { return b.irqPending }

// RaiseOAMDMAStall marks an OAM-DMA CPU stall as pending. Raised by the
// CPU bus immediately after completing the 256-byte OAM copy triggered
// by a write to $4014.
func (b *Bus) RaiseOAMDMAStall() { b.oamDMAStallPending = true }

// ResetOAMDMAStall clears the pending OAM-DMA stall flag.
func (b *Bus) ResetOAMDMAStall() { b.oamDMAStallPending = false }

// OAMDMAStallActive reports whether an OAM-DMA stall is pending.
func (b *Bus) OAMDMAStallActive() bool { return b.oamDMAStallPending }

// AnyActive reports whether any of the three flags is pending.
func (b *Bus) AnyActive() bool {
	return b.nmiPending || b.irqPending || b.oamDMAStallPending
}

// Reset clears all three pending-signal flags.
func (b *Bus) Reset() {
	b.nmiPending = false
	b.irqPending = false
	b.oamDMAStallPending = false
}

// State is the serializable snapshot of the three pending-signal flags.
type State struct {
	NMIPending         bool
	IRQPending         bool
	OAMDMAStallPending bool
}

// State returns a snapshot of the pending-signal flags.
func (b *Bus) State() State {
	return State{
		NMIPending:         b.nmiPending,
		IRQPending:         b.irqPending,
		OAMDMAStallPending: b.oamDMAStallPending,
	}
}

// Restore overwrites the pending-signal flags from a previously
// captured snapshot.
func (b *Bus) Restore(s State) {
	b.nmiPending = s.NMIPending
	b.irqPending = s.IRQPending
	b.oamDMAStallPending = s.OAMDMAStallPending
}

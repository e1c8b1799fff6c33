// Package console wires the CPU, PPU, buses, interrupt signal bus, and
// controllers into a running machine, and drives it forward over time.
// It has no dependency on any presentation backend: internal/graphics
// pulls frames from it through the FrameSource interface instead.
package console

import (
	"context"
	"time"

	"nesgo/internal/cartridge"
	"nesgo/internal/cpu"
	"nesgo/internal/cpubus"
	"nesgo/internal/input"
	"nesgo/internal/interrupt"
	"nesgo/internal/ppu"
	"nesgo/internal/ppubus"
	"nesgo/internal/stepper"
)

// Console is the complete emulated machine: one cartridge, one CPU,
// one PPU, their buses, the interrupt signal bus they share, and two
// controller ports.
type Console struct {
	cart        *cartridge.Cartridge
	cpuBus      *cpubus.Bus
	ppuBus      *ppubus.Bus
	interrupts  *interrupt.Bus
	cpu         *cpu.CPU
	ppu         *ppu.PPU
	controller1 *input.Controller
	controller2 *input.Controller
	stepper     *stepper.Stepper
}

// New constructs a Console around the given cartridge, wiring the PPU
// bus, interrupt bus, CPU bus, CPU, PPU, controllers, and stepper in
// the dependency order each requires: the PPU bus needs the
// cartridge, the PPU needs the PPU bus and interrupt bus, the CPU bus
// needs the PPU, cartridge, controllers, and interrupt bus, and the
// CPU needs the CPU bus.
func New(cart *cartridge.Cartridge) *Console {
	interrupts := interrupt.New()
	ppuBus := ppubus.New(cart)
	p := ppu.New(ppuBus, interrupts)
	c1 := input.New()
	c2 := input.New()
	cpuBus := cpubus.New(p, cart, c1, c2, interrupts)
	c := cpu.New(cpuBus)

	return &Console{
		cart:        cart,
		cpuBus:      cpuBus,
		ppuBus:      ppuBus,
		interrupts:  interrupts,
		cpu:         c,
		ppu:         p,
		controller1: c1,
		controller2: c2,
		stepper:     stepper.New(c, p, interrupts),
	}
}

// Reset cascades a power-on reset to the CPU, PPU, interrupt bus, and
// both controllers.
func (c *Console) Reset() {
	c.cpu.Reset()
	c.ppu.Reset()
	c.interrupts.Reset()
	c.controller1.Reset()
	c.controller2.Reset()
}

// Step advances the machine by exactly one stepper.Step call.
func (c *Console) Step() (bool, error) {
	return c.stepper.Step()
}

// Run drives the machine continuously until ctx is canceled, at which
// point it returns ctx.Err(). It returns immediately with any error
// Step produces, such as stepper.ErrUnsupportedInterrupt or a wrapped
// cpu.ErrUnsupportedOpcode.
func (c *Console) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if _, err := c.stepper.Step(); err != nil {
			return err
		}
	}
}

// RunFor drives the machine for roughly the given wall-clock duration,
// useful for scripted ROM runs and tests that don't want an unbounded
// loop. It stops early on the first Step error.
func (c *Console) RunFor(ctx context.Context, d time.Duration) error {
	deadline, cancel := context.WithTimeout(ctx, d)
	defer cancel()
	err := c.Run(deadline)
	if err == context.DeadlineExceeded || err == context.Canceled {
		return nil
	}
	return err
}

// FrameBuffer satisfies graphics.FrameSource, returning the PPU's
// current 256x240 frame buffer of 0x00RRGGBB pixels.
func (c *Console) FrameBuffer() [256 * 240]uint32 {
	return c.ppu.GetFrameBuffer()
}

// Controller1 returns the first controller port, for wiring into a
// presentation backend's keyboard binding.
func (c *Console) Controller1() *input.Controller {
	return c.controller1
}

// Controller2 returns the second controller port.
func (c *Console) Controller2() *input.Controller {
	return c.controller2
}

// CPU exposes the underlying CPU, for save-state capture and testing.
func (c *Console) CPU() *cpu.CPU {
	return c.cpu
}

// PPU exposes the underlying PPU, for save-state capture and testing.
func (c *Console) PPU() *ppu.PPU {
	return c.ppu
}

// CPUBus exposes the underlying CPU bus, for save-state capture.
func (c *Console) CPUBus() *cpubus.Bus {
	return c.cpuBus
}

// Cartridge exposes the loaded cartridge, for save-state capture.
func (c *Console) Cartridge() *cartridge.Cartridge {
	return c.cart
}

// Interrupts exposes the interrupt signal bus, for save-state capture.
func (c *Console) Interrupts() *interrupt.Bus {
	return c.interrupts
}

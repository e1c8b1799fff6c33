package console

import (
	"context"
	"testing"
	"time"

	"nesgo/internal/cartridge"
)

func newTestConsole(t *testing.T) *Console {
	t.Helper()
	cart, err := cartridge.New(cartridge.Config{PRG: make([]byte, 32*1024)})
	if err != nil {
		t.Fatalf("cartridge.New() error = %v", err)
	}
	return New(cart)
}

func TestNewWiresAllComponents(t *testing.T) {
	c := newTestConsole(t)

	if c.CPU() == nil || c.PPU() == nil || c.CPUBus() == nil || c.Cartridge() == nil {
		t.Fatal("New left a core component nil")
	}
	if c.Controller1() == nil || c.Controller2() == nil {
		t.Fatal("New left a controller port nil")
	}
}

func TestResetClearsInterrupts(t *testing.T) {
	c := newTestConsole(t)

	c.Interrupts().RaiseNMI()
	c.Reset()

	if c.Interrupts().NMIActive() {
		t.Fatal("Reset left NMI pending")
	}
}

func TestStepAdvancesWithoutError(t *testing.T) {
	c := newTestConsole(t)
	c.Reset()

	if _, err := c.Step(); err != nil {
		t.Fatalf("Step() error = %v", err)
	}
}

func TestRunStopsOnContextCancel(t *testing.T) {
	c := newTestConsole(t)
	c.Reset()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := c.Run(ctx); err != context.Canceled {
		t.Fatalf("Run() error = %v, want context.Canceled", err)
	}
}

func TestRunForReturnsNilOnTimeout(t *testing.T) {
	c := newTestConsole(t)
	c.Reset()

	if err := c.RunFor(context.Background(), 5*time.Millisecond); err != nil {
		t.Fatalf("RunFor() error = %v, want nil", err)
	}
}

func TestFrameBufferMatchesPPU(t *testing.T) {
	c := newTestConsole(t)

	got := c.FrameBuffer()
	want := c.PPU().GetFrameBuffer()
	if got != want {
		t.Fatal("FrameBuffer() did not match PPU.GetFrameBuffer()")
	}
}

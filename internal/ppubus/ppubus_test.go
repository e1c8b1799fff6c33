package ppubus

import (
	"io"
	"log"
	"testing"

	"nesgo/internal/cartridge"
)

func newCart(t *testing.T, mirror cartridge.MirrorPattern) *cartridge.Cartridge {
	t.Helper()
	c, err := cartridge.New(cartridge.Config{
		PRG:    make([]byte, 16*1024),
		Mirror: mirror,
		Logger: log.New(io.Discard, "", 0),
	})
	if err != nil {
		t.Fatalf("cartridge.New: %v", err)
	}
	return c
}

// Scenario 1: horizontal mirroring.
func TestHorizontalMirroring(t *testing.T) {
	b := New(newCart(t, cartridge.MirrorHorizontal))
	b.Write(0x2000, 0x42)
	if got := b.Read(0x2400); got != 0x42 {
		t.Fatalf("Read(0x2400) = %#02x, want 0x42 (mirrors 0x2000)", got)
	}
	if got := b.Read(0x2800); got != 0x00 {
		t.Fatalf("Read(0x2800) = %#02x, want 0x00 (distinct physical page)", got)
	}
}

func TestVerticalMirroring(t *testing.T) {
	b := New(newCart(t, cartridge.MirrorVertical))
	b.Write(0x2000, 0x7A)
	if got := b.Read(0x2800); got != 0x7A {
		t.Fatalf("Read(0x2800) = %#02x, want 0x7A (mirrors 0x2000)", got)
	}
	if got := b.Read(0x2400); got != 0x00 {
		t.Fatalf("Read(0x2400) = %#02x, want 0x00 (distinct physical page)", got)
	}
}

// Scenario 2: palette aliasing.
func TestPaletteAliasing(t *testing.T) {
	b := New(newCart(t, cartridge.MirrorHorizontal))
	b.Write(0x3F10, 0x1A)
	if got := b.Read(0x3F00); got != 0x1A {
		t.Fatalf("Read(0x3F00) = %#02x, want 0x1A", got)
	}
}

// P3: write-then-read round trips through p-0x10 for all four aliases.
func TestPaletteAllAliasesRoundTrip(t *testing.T) {
	b := New(newCart(t, cartridge.MirrorHorizontal))
	aliases := []uint16{0x3F10, 0x3F14, 0x3F18, 0x3F1C}
	for i, a := range aliases {
		b.Write(a, uint8(0x10+i))
	}
	bases := []uint16{0x3F00, 0x3F04, 0x3F08, 0x3F0C}
	for i, base := range bases {
		if got, want := b.Read(base), uint8(0x10+i); got != want {
			t.Fatalf("Read(%#04x) = %#02x, want %#02x", base, got, want)
		}
	}
}

func TestPaletteMirrorsEvery32Bytes(t *testing.T) {
	b := New(newCart(t, cartridge.MirrorHorizontal))
	b.Write(0x3F05, 0x99)
	if got := b.Read(0x3F25); got != 0x99 {
		t.Fatalf("Read(0x3F25) = %#02x, want 0x99", got)
	}
}

func TestNametableMirrorOfMirror(t *testing.T) {
	b := New(newCart(t, cartridge.MirrorVertical))
	b.Write(0x2000, 0x55)
	if got := b.Read(0x3000); got != 0x55 {
		t.Fatalf("Read(0x3000) = %#02x, want 0x55 (mirrors 0x2000)", got)
	}
}

func TestPatternTableDelegatesToCartridge(t *testing.T) {
	b := New(newCart(t, cartridge.MirrorHorizontal))
	b.Write(0x0010, 0xAB)
	if got := b.Read(0x0010); got != 0xAB {
		t.Fatalf("Read(0x0010) = %#02x, want 0xAB", got)
	}
}

func TestFourScreenUsesDistinctPages(t *testing.T) {
	b := New(newCart(t, cartridge.MirrorFourScreen))
	b.Write(0x2000, 0x11)
	b.Write(0x2400, 0x22)
	b.Write(0x2800, 0x33)
	b.Write(0x2C00, 0x44)
	want := []uint8{0x11, 0x22, 0x33, 0x44}
	addrs := []uint16{0x2000, 0x2400, 0x2800, 0x2C00}
	for i, a := range addrs {
		if got := b.Read(a); got != want[i] {
			t.Fatalf("Read(%#04x) = %#02x, want %#02x", a, got, want[i])
		}
	}
}

package graphics

import (
	"testing"

	"nesgo/internal/input"
)

type fakeFrameSource struct {
	frame [256 * 240]uint32
}

func (f *fakeFrameSource) FrameBuffer() [256 * 240]uint32 {
	return f.frame
}

func TestEbitenBackendLayoutPassesThroughOutsideSize(t *testing.T) {
	b := NewEbitenBackend(&fakeFrameSource{}, input.New(), input.New())

	w, h := b.Layout(640, 480)
	if w != 640 || h != 480 {
		t.Fatalf("Layout(640, 480) = (%d, %d), want (640, 480)", w, h)
	}
}

func TestEbitenBackendPresentConvertsPixelsToRGBA(t *testing.T) {
	b := NewEbitenBackend(&fakeFrameSource{}, input.New(), input.New())

	var frame [256 * 240]uint32
	frame[0] = 0x112233

	b.Present(frame)

	if b.pixels[0] != 0x11 || b.pixels[1] != 0x22 || b.pixels[2] != 0x33 || b.pixels[3] != 0xFF {
		t.Fatalf("pixels[0:4] = %#v, want [0x11 0x22 0x33 0xFF]", b.pixels[0:4])
	}
}

func TestEbitenBackendUpdateDoesNotPanicWithoutWindow(t *testing.T) {
	c1, c2 := input.New(), input.New()
	b := NewEbitenBackend(&fakeFrameSource{}, c1, c2)

	if err := b.Update(); err != nil {
		t.Fatalf("Update() error = %v", err)
	}
}

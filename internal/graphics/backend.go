// Package graphics implements the presentation layer that sits
// outside the emulation core: backends that receive PPU frame buffers
// and forward keyboard input into NES controllers.
package graphics

// Backend presents a completed NES frame. EbitenBackend additionally
// implements ebiten.Game so it can drive a real window; HeadlessBackend
// implements only this interface, for tests and scripted ROM runs that
// never open a window.
type Backend interface {
	Present(frameBuffer [256 * 240]uint32)
}

// FrameSource supplies the frame buffer a Backend presents. Console
// satisfies this.
type FrameSource interface {
	FrameBuffer() [256 * 240]uint32
}

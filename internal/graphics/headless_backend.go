package graphics

// HeadlessBackend records presented frames without opening a window or
// importing ebiten at all. It satisfies Backend for integration tests
// and scripted ROM runs that only need to inspect output pixels.
type HeadlessBackend struct {
	// LastFrame is the most recently presented frame buffer.
	LastFrame [256 * 240]uint32
	// Frames counts how many times Present has been called.
	Frames int
}

// NewHeadlessBackend returns a backend with no frames presented yet.
func NewHeadlessBackend() *HeadlessBackend {
	return &HeadlessBackend{}
}

// Present implements Backend by recording the frame for later
// inspection.
func (h *HeadlessBackend) Present(frameBuffer [256 * 240]uint32) {
	h.LastFrame = frameBuffer
	h.Frames++
}

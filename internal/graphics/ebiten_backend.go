package graphics

import (
	"github.com/hajimehoshi/ebiten/v2"

	"nesgo/internal/input"
)

const (
	nesWidth  = 256
	nesHeight = 240
)

// EbitenBackend is an ebiten.Game that presents the PPU's frame
// buffer and forwards keyboard state into the two NES controllers
// every tick.
type EbitenBackend struct {
	source      FrameSource
	controller1 *input.Controller
	controller2 *input.Controller
	keymap1     input.KeyMapping
	keymap2     input.KeyMapping
	video       *VideoProcessor
	image       *ebiten.Image
	pixels      []byte
}

// NewEbitenBackend constructs a backend that pulls frames from source
// and polls keyboard state into c1/c2. c2 uses an alternate key
// mapping (input.SecondaryKeyMapping) so the two controllers do not
// share keys.
func NewEbitenBackend(source FrameSource, c1, c2 *input.Controller) *EbitenBackend {
	return &EbitenBackend{
		source:      source,
		controller1: c1,
		controller2: c2,
		keymap1:     input.DefaultKeyMapping(),
		keymap2:     input.SecondaryKeyMapping(),
		video:       NewVideoProcessor(1, 1, 1),
		image:       ebiten.NewImage(nesWidth, nesHeight),
		pixels:      make([]byte, nesWidth*nesHeight*4),
	}
}

// SetVideoProcessor replaces the presentation-time color adjustment
// applied before each frame is blitted.
func (b *EbitenBackend) SetVideoProcessor(vp *VideoProcessor) {
	b.video = vp
}

// SetKeyMapping1 replaces the keyboard mapping used for controller 1.
func (b *EbitenBackend) SetKeyMapping1(km input.KeyMapping) {
	b.keymap1 = km
}

// SetKeyMapping2 replaces the keyboard mapping used for controller 2.
func (b *EbitenBackend) SetKeyMapping2(km input.KeyMapping) {
	b.keymap2 = km
}

// Present implements Backend by writing frameBuffer straight into the
// backing ebiten image, after any configured video processing.
func (b *EbitenBackend) Present(frameBuffer [256 * 240]uint32) {
	processed := b.video.ProcessFrame(frameBuffer[:])
	for i, pixel := range processed {
		b.pixels[i*4+0] = byte(pixel >> 16)
		b.pixels[i*4+1] = byte(pixel >> 8)
		b.pixels[i*4+2] = byte(pixel)
		b.pixels[i*4+3] = 0xFF
	}
	b.image.WritePixels(b.pixels)
}

// Update implements ebiten.Game by forwarding the current keyboard
// state into both controllers. The emulation itself runs on its own
// goroutine, driven by console.Console.Run.
func (b *EbitenBackend) Update() error {
	b.controller1.Update(b.keymap1)
	b.controller2.Update(b.keymap2)
	return nil
}

// Draw implements ebiten.Game by pulling the latest frame from the
// source and blitting it to screen, scaled to fill the window.
func (b *EbitenBackend) Draw(screen *ebiten.Image) {
	b.Present(b.source.FrameBuffer())

	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(sw)/nesWidth, float64(sh)/nesHeight)
	screen.DrawImage(b.image, op)
}

// Layout implements ebiten.Game, passing the outside size through
// unchanged as the screen size; Draw scales the native 256x240 image
// to fill it.
func (b *EbitenBackend) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

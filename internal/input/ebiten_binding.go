package input

import "github.com/hajimehoshi/ebiten/v2"

// KeyMapping assigns a keyboard key to each NES button.
type KeyMapping struct {
	A, B, Select, Start       ebiten.Key
	Up, Down, Left, Right     ebiten.Key
}

// DefaultKeyMapping uses the arrow keys for the D-pad, X/Z for A/B,
// Enter for Start, and right Shift for Select.
func DefaultKeyMapping() KeyMapping {
	return KeyMapping{
		A: ebiten.KeyX, B: ebiten.KeyZ,
		Select: ebiten.KeyShiftRight, Start: ebiten.KeyEnter,
		Up: ebiten.KeyArrowUp, Down: ebiten.KeyArrowDown,
		Left: ebiten.KeyArrowLeft, Right: ebiten.KeyArrowRight,
	}
}

// SecondaryKeyMapping is an alternate scheme for a second controller
// sharing the same keyboard: WASD for the D-pad, K/J for A/B, Tab for
// Select, and Backslash for Start, none of which DefaultKeyMapping uses.
func SecondaryKeyMapping() KeyMapping {
	return KeyMapping{
		A: ebiten.KeyK, B: ebiten.KeyJ,
		Select: ebiten.KeyTab, Start: ebiten.KeyBackslash,
		Up: ebiten.KeyW, Down: ebiten.KeyS,
		Left: ebiten.KeyA, Right: ebiten.KeyD,
	}
}

// Update polls the given key mapping via ebiten.IsKeyPressed and
// applies the result to the controller. This is the frame-level
// keyboard-to-controller binding, kept separate from the controller's
// own shift-register protocol.
func (c *Controller) Update(km KeyMapping) {
	c.SetButton(ButtonA, ebiten.IsKeyPressed(km.A))
	c.SetButton(ButtonB, ebiten.IsKeyPressed(km.B))
	c.SetButton(ButtonSelect, ebiten.IsKeyPressed(km.Select))
	c.SetButton(ButtonStart, ebiten.IsKeyPressed(km.Start))
	c.SetButton(ButtonUp, ebiten.IsKeyPressed(km.Up))
	c.SetButton(ButtonDown, ebiten.IsKeyPressed(km.Down))
	c.SetButton(ButtonLeft, ebiten.IsKeyPressed(km.Left))
	c.SetButton(ButtonRight, ebiten.IsKeyPressed(km.Right))
}

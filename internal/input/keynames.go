package input

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// keysByName covers the key names internal/config's KeyMapping accepts:
// single letters, digits, arrows, and the common named keys.
var keysByName = map[string]ebiten.Key{
	"Up": ebiten.KeyArrowUp, "Down": ebiten.KeyArrowDown,
	"Left": ebiten.KeyArrowLeft, "Right": ebiten.KeyArrowRight,
	"Return": ebiten.KeyEnter, "Enter": ebiten.KeyEnter,
	"Space": ebiten.KeySpace, "Tab": ebiten.KeyTab,
	"Escape": ebiten.KeyEscape, "Backslash": ebiten.KeyBackslash,
	"LShift": ebiten.KeyShiftLeft, "RShift": ebiten.KeyShiftRight,
	"LCtrl": ebiten.KeyControlLeft, "RCtrl": ebiten.KeyControlRight,
}

func init() {
	for c := 'A'; c <= 'Z'; c++ {
		keysByName[string(c)] = ebiten.KeyA + ebiten.Key(c-'A')
	}
	for d := '0'; d <= '9'; d++ {
		keysByName[string(d)] = ebiten.Key0 + ebiten.Key(d-'0')
	}
}

// ParseKey resolves a config key name (e.g. "W", "Up", "Return") to an
// ebiten.Key. Names are matched case-sensitively against the common
// WASD/arrow/named-key vocabulary used by internal/config's defaults.
func ParseKey(name string) (ebiten.Key, error) {
	k, ok := keysByName[name]
	if !ok {
		return 0, fmt.Errorf("input: unrecognized key name %q", name)
	}
	return k, nil
}

// KeyNames is the string form of a KeyMapping, as read from
// internal/config.
type KeyNames struct {
	Up, Down, Left, Right string
	A, B, Start, Select   string
}

// ParseKeyMapping resolves every field of names, failing on the first
// unrecognized key name.
func ParseKeyMapping(names KeyNames) (KeyMapping, error) {
	var km KeyMapping

	assign := func(name string, dst *ebiten.Key) error {
		k, err := ParseKey(name)
		if err != nil {
			return err
		}
		*dst = k
		return nil
	}

	if err := assign(names.Up, &km.Up); err != nil {
		return KeyMapping{}, err
	}
	if err := assign(names.Down, &km.Down); err != nil {
		return KeyMapping{}, err
	}
	if err := assign(names.Left, &km.Left); err != nil {
		return KeyMapping{}, err
	}
	if err := assign(names.Right, &km.Right); err != nil {
		return KeyMapping{}, err
	}
	if err := assign(names.A, &km.A); err != nil {
		return KeyMapping{}, err
	}
	if err := assign(names.B, &km.B); err != nil {
		return KeyMapping{}, err
	}
	if err := assign(names.Start, &km.Start); err != nil {
		return KeyMapping{}, err
	}
	if err := assign(names.Select, &km.Select); err != nil {
		return KeyMapping{}, err
	}
	return km, nil
}

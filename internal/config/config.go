// Package config provides configuration management for the emulator:
// a JSON-backed tree of window, video, input, emulation, and path
// settings, loaded with sensible defaults when no file exists yet.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config holds all application configuration.
type Config struct {
	Window    WindowConfig    `json:"window"`
	Video     VideoConfig     `json:"video"`
	Input     InputConfig     `json:"input"`
	Emulation EmulationConfig `json:"emulation"`
	Paths     PathsConfig     `json:"paths"`

	configPath string
	loaded     bool
}

// WindowConfig contains window-related configuration.
type WindowConfig struct {
	Width      int  `json:"width"`
	Height     int  `json:"height"`
	Fullscreen bool `json:"fullscreen"`
	Resizable  bool `json:"resizable"`
	Scale      int  `json:"scale"` // NES resolution multiplier
}

// VideoConfig contains presentation-time video adjustments, consumed
// by internal/graphics's VideoProcessor.
type VideoConfig struct {
	VSync      bool    `json:"vsync"`
	Brightness float32 `json:"brightness"`
	Contrast   float32 `json:"contrast"`
	Saturation float32 `json:"saturation"`
}

// InputConfig contains the two controllers' key bindings.
type InputConfig struct {
	Player1Keys KeyMapping `json:"player1_keys"`
	Player2Keys KeyMapping `json:"player2_keys"`
}

// KeyMapping names a keyboard key per NES button. Values are resolved
// to ebiten.Key by internal/input.ParseKeyMapping; this package has no
// ebiten dependency of its own.
type KeyMapping struct {
	Up     string `json:"up"`
	Down   string `json:"down"`
	Left   string `json:"left"`
	Right  string `json:"right"`
	A      string `json:"a"`
	B      string `json:"b"`
	Start  string `json:"start"`
	Select string `json:"select"`
}

// EmulationConfig contains emulation-specific settings.
type EmulationConfig struct {
	FrameRate      float64 `json:"frame_rate"`
	SaveStateSlots int     `json:"save_state_slots"`
	AutoSave       bool    `json:"auto_save"`
}

// PathsConfig contains file and directory paths.
type PathsConfig struct {
	ROMs       string `json:"roms"`
	SaveStates string `json:"save_states"`
	Config     string `json:"config"`
}

// New returns a configuration populated with default values.
func New() *Config {
	return &Config{
		Window: WindowConfig{
			Width: 512, Height: 480, Fullscreen: false, Resizable: true, Scale: 2,
		},
		Video: VideoConfig{
			VSync: true, Brightness: 1.0, Contrast: 1.0, Saturation: 1.0,
		},
		Input: InputConfig{
			Player1Keys: KeyMapping{
				Up: "Up", Down: "Down", Left: "Left", Right: "Right",
				A: "X", B: "Z", Start: "Return", Select: "RShift",
			},
			Player2Keys: KeyMapping{
				Up: "W", Down: "S", Left: "A", Right: "D",
				A: "K", B: "J", Start: "Tab", Select: "Backslash",
			},
		},
		Emulation: EmulationConfig{
			FrameRate: 60.0, SaveStateSlots: 10, AutoSave: false,
		},
		Paths: PathsConfig{
			ROMs: "./roms", SaveStates: "./states", Config: "./config",
		},
	}
}

// LoadFromFile loads configuration from a JSON file, writing out the
// current (default) configuration if the file doesn't exist yet.
func (c *Config) LoadFromFile(path string) error {
	c.configPath = path

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return c.SaveToFile(path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, c); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}

	c.validate()
	c.loaded = true
	return nil
}

// SaveToFile writes the configuration to path as indented JSON,
// creating the containing directory if needed.
func (c *Config) SaveToFile(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("config: create directory %s: %w", dir, err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("config: marshal: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}

	c.configPath = path
	return nil
}

// validate resets out-of-range values to their defaults rather than
// rejecting the whole file over one bad field; the one exception is a
// non-positive window scale, which becomes 1 rather than the default 2.
func (c *Config) validate() {
	if c.Window.Scale <= 0 {
		c.Window.Scale = 1
	}
	if c.Video.Brightness < 0.1 || c.Video.Brightness > 3.0 {
		c.Video.Brightness = 1.0
	}
	if c.Video.Contrast < 0.1 || c.Video.Contrast > 3.0 {
		c.Video.Contrast = 1.0
	}
	if c.Video.Saturation < 0.0 || c.Video.Saturation > 3.0 {
		c.Video.Saturation = 1.0
	}
	if c.Emulation.FrameRate <= 0 {
		c.Emulation.FrameRate = 60.0
	}
	if c.Emulation.SaveStateSlots <= 0 {
		c.Emulation.SaveStateSlots = 10
	}
}

// WindowResolution returns the window size implied by the native NES
// resolution and the configured scale.
func (c *Config) WindowResolution() (int, int) {
	return 256 * c.Window.Scale, 240 * c.Window.Scale
}

// IsLoaded reports whether LoadFromFile successfully read an existing
// file, as opposed to writing out defaults.
func (c *Config) IsLoaded() bool {
	return c.loaded
}

// DefaultPath returns the conventional configuration file location.
func DefaultPath() string {
	return "./config/nesgo.json"
}

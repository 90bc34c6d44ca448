package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Overrides is the on-disk tuning file. Absent fields keep their current value.
type Overrides struct {
	// Window size is read at startup only; reloads keep the running size
	Window struct {
		Width  *int    `yaml:"width"`
		Height *int    `yaml:"height"`
		Title  *string `yaml:"title"`
	} `yaml:"window"`
	Player struct {
		Speed *float64 `yaml:"speed"`
		Size  *float64 `yaml:"size"`
	} `yaml:"player"`
	Camera struct {
		Z   *float64 `yaml:"z"`
		FOV *float64 `yaml:"fov"`
	} `yaml:"camera"`
	Menu struct {
		ButtonWidth  *float64 `yaml:"button_width"`
		ButtonHeight *float64 `yaml:"button_height"`
		ButtonMargin *float64 `yaml:"button_margin"`
		FadeSeconds  *float64 `yaml:"fade_seconds"`
	} `yaml:"menu"`
	Debug struct {
		SkipMenu *bool `yaml:"skip_menu"`
		Verbose  *bool `yaml:"verbose"`
	} `yaml:"debug"`
}

// LoadOverrides reads a YAML overrides file and applies it to the global config.
func LoadOverrides(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("config: load %s: %w", filename, err)
	}
	return ApplyOverrides(data)
}

// ApplyOverrides parses YAML overrides and applies them to the global config.
func ApplyOverrides(data []byte) error {
	var o Overrides
	if err := yaml.Unmarshal(data, &o); err != nil {
		return fmt.Errorf("config: unmarshal overrides: %w", err)
	}
	if err := o.validate(); err != nil {
		return err
	}
	o.apply()
	return nil
}

func (o *Overrides) validate() error {
	if o.Window.Width != nil && *o.Window.Width <= 0 {
		return fmt.Errorf("config: window width must be positive, got %d", *o.Window.Width)
	}
	if o.Window.Height != nil && *o.Window.Height <= 0 {
		return fmt.Errorf("config: window height must be positive, got %d", *o.Window.Height)
	}
	if o.Player.Size != nil && *o.Player.Size <= 0 {
		return fmt.Errorf("config: player size must be positive, got %g", *o.Player.Size)
	}
	if o.Camera.FOV != nil && (*o.Camera.FOV <= 0 || *o.Camera.FOV >= 3.14159) {
		return fmt.Errorf("config: camera fov out of range, got %g", *o.Camera.FOV)
	}
	return nil
}

func (o *Overrides) apply() {
	set(&C.Width, o.Window.Width)
	set(&C.Height, o.Window.Height)
	set(&C.Title, o.Window.Title)

	set(&Player.Speed, o.Player.Speed)
	set(&Player.Size, o.Player.Size)

	set(&Camera.Z, o.Camera.Z)
	set(&Camera.FOV, o.Camera.FOV)

	set(&Menu.ButtonWidth, o.Menu.ButtonWidth)
	set(&Menu.ButtonHeight, o.Menu.ButtonHeight)
	set(&Menu.ButtonMargin, o.Menu.ButtonMargin)
	set(&Menu.FadeSeconds, o.Menu.FadeSeconds)

	set(&Debug.SkipMenu, o.Debug.SkipMenu)
	set(&Debug.Verbose, o.Debug.Verbose)
}

func set[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

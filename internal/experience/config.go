package experience

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"scrollscene/internal/softgl"
)

// LightParams are the tunable fields of one point light.
type LightParams struct {
	X         float32      `json:"x"`
	Y         float32      `json:"y"`
	Z         float32      `json:"z"`
	Intensity float32      `json:"intensity"`
	Color     softgl.Color `json:"color"`
}

// Params are the live-tunable scene parameters. The panel edits them in
// place and the scene reads them every frame.
type Params struct {
	// MaterialColor applies to every mesh.
	MaterialColor softgl.Color `json:"materialColor"`
	// Metalness and Roughness seed every material; live edits reach only
	// the sphere.
	Metalness     float32      `json:"metalness"`
	Roughness     float32      `json:"roughness"`

	MainLight LightParams `json:"mainLight"`
	FillLight LightParams `json:"pointLight1"`
}

// Config holds the motion constants and the initial scene parameters.
type Config struct {
	// Sensitivity scales the normalized cursor into a rig offset.
	Sensitivity float64 `json:"sensitivity"`
	// Smoothing is the parallax convergence rate per second.
	Smoothing float64 `json:"smoothing"`
	// ScrollScale converts scroll pixels into camera units.
	ScrollScale float64 `json:"scrollScale"`

	Sections  int     `json:"sections"`
	WheelStep float64 `json:"wheelStep"`

	TweenDuration float64 `json:"tweenDuration"`
	TweenSpin     float64 `json:"tweenSpin"`
	TweenEase     string  `json:"tweenEase"`

	NormalMap string `json:"normalMap"`

	Params Params `json:"params"`
}

// DefaultConfig returns the stock scene.
func DefaultConfig() Config {
	return Config{
		Sensitivity:   0.3,
		Smoothing:     5,
		ScrollScale:   0.01,
		Sections:      3,
		WheelStep:     40,
		TweenDuration: 3,
		TweenSpin:     3,
		TweenEase:     "power2.inOut",
		NormalMap:     "textures/pebbleNormalMap.png",
		Params: Params{
			MaterialColor: softgl.Hex(0x292929),
			Metalness:     1,
			Roughness:     0.8,
			MainLight: LightParams{
				X: 2, Y: 6.31, Z: 4,
				Intensity: 10,
				Color:     softgl.Hex(0xffffff),
			},
			FillLight: LightParams{
				X: 1.81, Y: -10, Z: 0.83,
				Intensity: 10,
				Color:     softgl.Hex(0x782097),
			},
		},
	}
}

// LoadConfig reads a JSON file over the defaults. Missing keys keep their
// default values; unknown keys are an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects values the motion model cannot run with.
func (c Config) Validate() error {
	switch {
	case c.Sensitivity < 0:
		return fmt.Errorf("sensitivity must be >= 0, got %v", c.Sensitivity)
	case c.Smoothing < 0:
		return fmt.Errorf("smoothing must be >= 0, got %v", c.Smoothing)
	case c.Sections < 1:
		return fmt.Errorf("sections must be >= 1, got %d", c.Sections)
	case c.TweenDuration < 0:
		return fmt.Errorf("tweenDuration must be >= 0, got %v", c.TweenDuration)
	}
	return nil
}

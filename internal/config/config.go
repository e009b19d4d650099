// Package config provides YAML-based game configuration loading and
// difficulty presets for the flappy game.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned by Validate for values the game cannot run with.
var ErrInvalidConfig = errors.New("config: invalid value")

// Config contains all tuning for the game and its collaborators.
type Config struct {
	Window   WindowConfig   `yaml:"window"`
	Timing   TimingConfig   `yaml:"timing"`
	Player   PlayerConfig   `yaml:"player"`
	Pipes    PipesConfig    `yaml:"pipes"`
	Floor    FloorConfig    `yaml:"floor"`
	Overlays OverlayConfig  `yaml:"overlays"`
	Cutscene CutsceneConfig `yaml:"cutscene"`
	Assets   AssetsConfig   `yaml:"assets"`
	Audio    AudioConfig    `yaml:"audio"`
}

// WindowConfig defines world bounds.
type WindowConfig struct {
	Width         int     `yaml:"width"`
	Height        int     `yaml:"height"`
	ViewportRatio float64 `yaml:"viewport_ratio"` // Floor top as a fraction of height
}

// FloorY returns the y coordinate of the floor's top edge.
func (w WindowConfig) FloorY() int {
	return int(float64(w.Height) * w.ViewportRatio)
}

// TimingConfig defines the fixed update rate.
type TimingConfig struct {
	FPS int `yaml:"fps"`
}

// PlayerConfig defines bird physics for the three modes.
type PlayerConfig struct {
	XRatio         float64 `yaml:"x_ratio"` // Horizontal position as a fraction of width
	AnimationEvery int     `yaml:"animation_every"`

	// NORMAL mode
	Gravity          float64 `yaml:"gravity"`
	FlapVelocity     float64 `yaml:"flap_velocity"`
	MaxFallSpeed     float64 `yaml:"max_fall_speed"`
	FlapRotation     float64 `yaml:"flap_rotation"`
	RotationVelocity float64 `yaml:"rotation_velocity"`
	RotationMin      float64 `yaml:"rotation_min"`
	RotationMax      float64 `yaml:"rotation_max"`

	// SHM (idle bob)
	IdleAmplitude float64 `yaml:"idle_amplitude"`
	IdlePeriod    int     `yaml:"idle_period"` // Frames per full oscillation

	// CRASH mode
	CrashGravity          float64 `yaml:"crash_gravity"`
	CrashVelocity         float64 `yaml:"crash_velocity"`
	CrashMaxFallSpeed     float64 `yaml:"crash_max_fall_speed"`
	CrashRotationVelocity float64 `yaml:"crash_rotation_velocity"`
}

// PipesConfig defines the obstacle stream.
type PipesConfig struct {
	Gap           int     `yaml:"gap"`            // Vertical clearance between a pair
	Margin        int     `yaml:"margin"`         // Minimum distance of the gap from ceiling and floor
	ScrollSpeed   float64 `yaml:"scroll_speed"`   // Pixels per second
	SpawnDistance float64 `yaml:"spawn_distance"` // Free space (in pipe widths) before the next pair
	SpawnOffset   int     `yaml:"spawn_offset"`   // Spawn x beyond the right edge
}

// FloorConfig defines the scrolling base.
type FloorConfig struct {
	ScrollSpeed float64 `yaml:"scroll_speed"` // Pixels per second
}

// OverlayConfig positions the HUD and messages as fractions of height.
type OverlayConfig struct {
	ScoreYRatio    float64 `yaml:"score_y_ratio"`
	WelcomeYRatio  float64 `yaml:"welcome_y_ratio"`
	GameOverYRatio float64 `yaml:"game_over_y_ratio"`
	PulseSeconds   float64 `yaml:"pulse_seconds"`
}

// CutsceneConfig controls the post-crash cutscene.
type CutsceneConfig struct {
	Enabled bool    `yaml:"enabled"`
	Seconds float64 `yaml:"seconds"` // Hard cap before returning to the splash
}

// AssetsConfig locates sprites and sounds.
type AssetsConfig struct {
	Dir  string `yaml:"dir"`
	Bird int    `yaml:"bird"` // Bird variant index; invalid falls back to 0
}

// AudioConfig controls the sound backend.
type AudioConfig struct {
	Enabled    bool `yaml:"enabled"`
	SampleRate int  `yaml:"sample_rate"`
}

// PipeStep returns the per-frame horizontal pipe delta in pixels.
func (c Config) PipeStep() float64 {
	return c.Pipes.ScrollSpeed / float64(c.Timing.FPS)
}

// FloorStep returns the per-frame horizontal floor delta in pixels.
func (c Config) FloorStep() float64 {
	return c.Floor.ScrollSpeed / float64(c.Timing.FPS)
}

// CutsceneFrames returns the cutscene timeout in frames.
func (c Config) CutsceneFrames() int {
	return int(c.Cutscene.Seconds * float64(c.Timing.FPS))
}

// Validate checks the values the game loop depends on.
func (c Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window %dx%d", ErrInvalidConfig, c.Window.Width, c.Window.Height)
	case c.Window.ViewportRatio <= 0 || c.Window.ViewportRatio > 1:
		return fmt.Errorf("%w: viewport_ratio %.2f", ErrInvalidConfig, c.Window.ViewportRatio)
	case c.Timing.FPS <= 0:
		return fmt.Errorf("%w: fps %d", ErrInvalidConfig, c.Timing.FPS)
	case c.Pipes.Gap <= 0:
		return fmt.Errorf("%w: pipe gap %d", ErrInvalidConfig, c.Pipes.Gap)
	case c.Pipes.Margin < 0:
		return fmt.Errorf("%w: pipe margin %d", ErrInvalidConfig, c.Pipes.Margin)
	case c.Pipes.ScrollSpeed <= 0:
		return fmt.Errorf("%w: pipe scroll_speed %.1f", ErrInvalidConfig, c.Pipes.ScrollSpeed)
	case c.Player.MaxFallSpeed <= 0 || c.Player.CrashMaxFallSpeed <= 0:
		return fmt.Errorf("%w: max fall speed must be positive", ErrInvalidConfig)
	case c.Player.AnimationEvery <= 0:
		return fmt.Errorf("%w: animation_every %d", ErrInvalidConfig, c.Player.AnimationEvery)
	}
	return nil
}

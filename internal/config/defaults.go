package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultYAML []byte

// Default returns the hardcoded default configuration.
// It mirrors defaults/flappy.yaml and is used when the embedded file fails to parse.
func Default() Config {
	return Config{
		Window: WindowConfig{
			Width:         288,
			Height:        512,
			ViewportRatio: 0.79,
		},
		Timing: TimingConfig{
			FPS: 30,
		},
		Player: PlayerConfig{
			XRatio:                0.2,
			AnimationEvery:        5,
			Gravity:               1,
			FlapVelocity:          -9,
			MaxFallSpeed:          10,
			FlapRotation:          80,
			RotationVelocity:      -3,
			RotationMin:           -90,
			RotationMax:           20,
			IdleAmplitude:         8,
			IdlePeriod:            32,
			CrashGravity:          2,
			CrashVelocity:         7,
			CrashMaxFallSpeed:     15,
			CrashRotationVelocity: -8,
		},
		Pipes: PipesConfig{
			Gap:           120,
			Margin:        80,
			ScrollSpeed:   150,
			SpawnDistance: 2.5,
			SpawnOffset:   10,
		},
		Floor: FloorConfig{
			ScrollSpeed: 120,
		},
		Overlays: OverlayConfig{
			ScoreYRatio:    0.1,
			WelcomeYRatio:  0.12,
			GameOverYRatio: 0.2,
			PulseSeconds:   2,
		},
		Cutscene: CutsceneConfig{
			Enabled: true,
			Seconds: 10,
		},
		Assets: AssetsConfig{
			Dir:  "assets",
			Bird: 0,
		},
		Audio: AudioConfig{
			Enabled:    true,
			SampleRate: 44100,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultYAML
}

package config

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownPreset is returned by ParsePreset for names it does not know.
var ErrUnknownPreset = errors.New("config: unknown difficulty preset")

// DifficultyPreset represents a named difficulty level.
// Presets are applied once at load time; gap and speed stay fixed for the whole run.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a flag value to a preset. An empty string means normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(name))); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("%w: %q (want easy, normal or hard)", ErrUnknownPreset, name)
	}
}

// ApplyPreset adjusts the pipe gap and scroll speeds for a preset.
// Normal leaves the loaded values untouched.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Pipes.Gap += 20
		cfg.Pipes.ScrollSpeed *= 0.8
		cfg.Floor.ScrollSpeed *= 0.8
	case DifficultyHard:
		cfg.Pipes.Gap -= 20
		cfg.Pipes.ScrollSpeed *= 1.2
		cfg.Floor.ScrollSpeed *= 1.2
	}
}

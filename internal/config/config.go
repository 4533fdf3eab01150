// Package config provides YAML-based game configuration loading and
// difficulty presets for slide2048.
package config

import (
	"fmt"

	"github.com/vovakirdan/slide2048/internal/grid"
)

// Config contains all tunable game settings.
type Config struct {
	Spawn        SpawnConfig `yaml:"spawn"`
	InitialTiles int         `yaml:"initial_tiles"` // Tiles placed on the empty board at start
	WinTile      uint64      `yaml:"win_tile"`      // 0 = endless
	TickRate     int         `yaml:"tick_rate"`     // TUI frames per second
}

// SpawnConfig controls tile spawning.
type SpawnConfig struct {
	FourProbability float64 `yaml:"four_probability"` // Chance a new tile is 4 instead of 2 (0.0-1.0)
}

// Validate checks that every field is within its allowed range.
func (c Config) Validate() error {
	if p := c.Spawn.FourProbability; p < 0 || p > 1 {
		return fmt.Errorf("config: spawn.four_probability %v outside [0, 1]", p)
	}
	if c.InitialTiles < 0 || c.InitialTiles > grid.Size*grid.Size {
		return fmt.Errorf("config: initial_tiles %d outside [0, %d]", c.InitialTiles, grid.Size*grid.Size)
	}
	if c.WinTile != 0 && (c.WinTile < 4 || c.WinTile&(c.WinTile-1) != 0) {
		return fmt.Errorf("config: win_tile %d is not a power of two >= 4", c.WinTile)
	}
	if c.TickRate <= 0 {
		return fmt.Errorf("config: tick_rate must be positive, got %d", c.TickRate)
	}
	return nil
}

// DifficultyPreset represents a named spawn balance.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyEven   DifficultyPreset = "even" // 2 and 4 equally likely
)

// FourProbabilityForPreset returns the spawn-4 chance for a preset.
func FourProbabilityForPreset(preset DifficultyPreset) (float64, error) {
	switch preset {
	case DifficultyEasy:
		return 0.05, nil
	case DifficultyNormal:
		return 0.10, nil
	case DifficultyHard:
		return 0.25, nil
	case DifficultyEven:
		return 0.5, nil
	default:
		return 0, fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or even)", preset)
	}
}

// ApplyPreset overrides the spawn balance. An empty preset leaves cfg as is.
func ApplyPreset(cfg *Config, preset DifficultyPreset) error {
	if preset == "" {
		return nil
	}
	p, err := FourProbabilityForPreset(preset)
	if err != nil {
		return err
	}
	cfg.Spawn.FourProbability = p
	return nil
}

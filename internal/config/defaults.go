package config

import (
	_ "embed"
)

//go:embed defaults/slide2048.yaml
var defaultYAML []byte

// Default returns the hard-coded configuration used when no YAML is readable.
func Default() Config {
	return Config{
		Spawn: SpawnConfig{
			FourProbability: 0.10,
		},
		InitialTiles: 2,
		WinTile:      2048,
		TickRate:     60,
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}

package config

import (
	_ "embed"
)

//go:embed defaults/blockfall.yaml
var defaultBlockfallYAML []byte

// DefaultBlockfallConfig returns the default Blockfall configuration.
func DefaultBlockfallConfig() BlockfallConfig {
	return BlockfallConfig{
		Board: BlockfallBoard{
			Rows:    20,
			Columns: 10,
		},
		Gravity: BlockfallGravity{
			PeriodMS: 800,
		},
		Colors: map[string]string{
			"I": "blue",
			"L": "teal",
			"T": "purple",
			"J": "orange",
			"O": "yellow",
			"Z": "green",
			"S": "red",
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "blockfall":
		return defaultBlockfallYAML
	default:
		return nil
	}
}

package config

import (
	_ "embed"
)

//go:embed defaults/blocks.yaml
var defaultBlocksYAML []byte

// DefaultBlocksConfig returns the built-in configuration.
// It matches defaults/blocks.yaml and is used when the embedded file cannot be parsed.
func DefaultBlocksConfig() BlocksConfig {
	return BlocksConfig{
		Board: BoardConfig{
			Rows: 20,
			Cols: 10,
		},
		Timing: TimingConfig{
			BaseDropMS:    1000,
			DropStepMS:    100,
			MinDropMS:     100,
			ClearEffectMS: 500,
		},
		Scoring: ScoringConfig{
			LinePoints:    []int{0, 100, 300, 500, 800},
			LinesPerLevel: 10,
		},
		Effects: EffectsConfig{
			ParticlesPerCell: 6,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultBlocksYAML
}

// Package config provides YAML-based game configuration loading for blockfall.
package config

// BlocksConfig contains all tunables of the falling-block game.
type BlocksConfig struct {
	Board   BoardConfig   `yaml:"board"`
	Timing  TimingConfig  `yaml:"timing"`
	Scoring ScoringConfig `yaml:"scoring"`
	Effects EffectsConfig `yaml:"effects"`
}

// BoardConfig defines the playfield dimensions.
type BoardConfig struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// TimingConfig defines gravity and effect timing, in milliseconds.
type TimingConfig struct {
	BaseDropMS    int `yaml:"base_drop_ms"`    // Drop interval at level 1
	DropStepMS    int `yaml:"drop_step_ms"`    // Interval reduction per level
	MinDropMS     int `yaml:"min_drop_ms"`     // Interval floor
	ClearEffectMS int `yaml:"clear_effect_ms"` // Line-clear animation length
}

// ScoringConfig defines points and level progression.
type ScoringConfig struct {
	LinePoints    []int `yaml:"line_points"` // Indexed by rows cleared at once (0..4)
	LinesPerLevel int   `yaml:"lines_per_level"`
}

// EffectsConfig defines cosmetic effect parameters.
type EffectsConfig struct {
	ParticlesPerCell int `yaml:"particles_per_cell"`
}

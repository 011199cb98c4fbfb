package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const blocksFile = "blocks.yaml"

// LoadBlocks loads the game configuration.
// Search order: customPath -> ~/.blockfall/configs/blocks.yaml -> ./configs/blocks.yaml -> embedded default.
// Only an explicit customPath produces an error; the other locations are skipped when unreadable or invalid.
func LoadBlocks(customPath string) (BlocksConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return BlocksConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return BlocksConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := []string{userConfigPath(blocksFile), filepath.Join("configs", blocksFile)}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := Parse(defaultBlocksYAML)
	if err != nil {
		return DefaultBlocksConfig(), nil // Fallback to hardcoded if embed is broken
	}
	return cfg, nil
}

// Parse decodes YAML on top of the defaults and validates the result,
// so partial files only need the keys they change.
func Parse(data []byte) (BlocksConfig, error) {
	cfg := DefaultBlocksConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return BlocksConfig{}, fmt.Errorf("failed to parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return BlocksConfig{}, err
	}
	return cfg, nil
}

// Validate checks that the configuration describes a playable game.
func (c BlocksConfig) Validate() error {
	var errs []error
	if c.Board.Rows < 4 || c.Board.Cols < 4 {
		errs = append(errs, fmt.Errorf("board must be at least 4x4, got %dx%d", c.Board.Rows, c.Board.Cols))
	}
	if c.Timing.BaseDropMS <= 0 || c.Timing.MinDropMS <= 0 {
		errs = append(errs, errors.New("drop intervals must be positive"))
	}
	if c.Timing.DropStepMS < 0 {
		errs = append(errs, errors.New("drop_step_ms must not be negative"))
	}
	if c.Timing.ClearEffectMS <= 0 {
		errs = append(errs, errors.New("clear_effect_ms must be positive"))
	}
	if len(c.Scoring.LinePoints) != 5 {
		errs = append(errs, fmt.Errorf("line_points needs 5 entries, got %d", len(c.Scoring.LinePoints)))
	}
	if c.Scoring.LinesPerLevel <= 0 {
		errs = append(errs, errors.New("lines_per_level must be positive"))
	}
	if c.Effects.ParticlesPerCell < 0 {
		errs = append(errs, errors.New("particles_per_cell must not be negative"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".blockfall", "configs", filename)
}

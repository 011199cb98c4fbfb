package blocks

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/blockfall/internal/config"
)

func TestApplyClear(t *testing.T) {
	tests := []struct {
		rows, level int
		want        int
	}{
		{0, 1, 0},
		{1, 1, 100},
		{2, 1, 300},
		{3, 1, 500},
		{4, 1, 800},
		{1, 3, 300},
		{4, 2, 1600},
		{5, 1, 0},
		{-1, 1, 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ApplyClear(tt.rows, tt.level), "rows=%d level=%d", tt.rows, tt.level)
	}
}

func TestDeriveLevel(t *testing.T) {
	for lines := 0; lines <= 9; lines++ {
		assert.Equal(t, 1, DeriveLevel(lines), "lines=%d", lines)
	}
	for lines := 10; lines <= 19; lines++ {
		assert.Equal(t, 2, DeriveLevel(lines), "lines=%d", lines)
	}
	assert.Equal(t, 11, DeriveLevel(100))
}

func TestDeriveDropInterval(t *testing.T) {
	tests := []struct {
		level int
		want  time.Duration
	}{
		{1, 1000 * time.Millisecond},
		{2, 900 * time.Millisecond},
		{5, 600 * time.Millisecond},
		{9, 200 * time.Millisecond},
		{10, 100 * time.Millisecond},
		{11, 100 * time.Millisecond},
		{50, 100 * time.Millisecond},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, DeriveDropInterval(tt.level), "level=%d", tt.level)
	}
}

func TestDefaultPolicyMatchesFunctions(t *testing.T) {
	p := DefaultPolicy()
	for level := 1; level <= 12; level++ {
		for rows := 0; rows <= 4; rows++ {
			assert.Equal(t, ApplyClear(rows, level), p.Points(rows, level))
		}
		assert.Equal(t, DeriveDropInterval(level), p.DropInterval(level))
	}
	for lines := 0; lines < 50; lines++ {
		assert.Equal(t, DeriveLevel(lines), p.Level(lines))
	}
}

func TestPolicyFromDefaultConfig(t *testing.T) {
	assert.Equal(t, DefaultPolicy(), PolicyFromConfig(config.DefaultBlocksConfig()))
}

func TestPolicyApply(t *testing.T) {
	p := DefaultPolicy()
	s := p.NewScore()
	assert.Equal(t, Score{Level: 1, DropInterval: time.Second}, s)

	s = p.Apply(s, 4) // 800 at level 1
	s = p.Apply(s, 4) // 800 at level 1
	assert.Equal(t, 1600, s.Points)
	assert.Equal(t, 8, s.Lines)
	assert.Equal(t, 1, s.Level)

	// Points use the level before the clear.
	s = p.Apply(s, 2)
	assert.Equal(t, 1900, s.Points)
	assert.Equal(t, 10, s.Lines)
	assert.Equal(t, 2, s.Level)
	assert.Equal(t, 900*time.Millisecond, s.DropInterval)

	s = p.Apply(s, 1)
	assert.Equal(t, 2100, s.Points)
}

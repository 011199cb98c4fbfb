package blocks

import (
	"time"

	"github.com/vovakirdan/blockfall/internal/config"
)

// Scoring defaults.
var linePoints = [5]int{0, 100, 300, 500, 800}

const (
	linesPerLevel       = 10
	baseDropInterval    = 1000 * time.Millisecond
	dropIntervalStep    = 100 * time.Millisecond
	minimumDropInterval = 100 * time.Millisecond
)

// ApplyClear returns the points for clearing rowCount rows at once at level.
func ApplyClear(rowCount, level int) int {
	if rowCount < 0 || rowCount >= len(linePoints) {
		return 0
	}
	return linePoints[rowCount] * level
}

// DeriveLevel returns the level reached after totalLines cleared lines.
func DeriveLevel(totalLines int) int {
	return totalLines/linesPerLevel + 1
}

// DeriveDropInterval returns the gravity interval for level,
// shrinking by 100ms per level down to a 100ms floor.
func DeriveDropInterval(level int) time.Duration {
	return max(minimumDropInterval, baseDropInterval-time.Duration(level-1)*dropIntervalStep)
}

// Policy carries the scoring and speed parameters a game runs with.
// DefaultPolicy reproduces ApplyClear, DeriveLevel and DeriveDropInterval.
type Policy struct {
	LinePoints    [5]int
	LinesPerLevel int
	BaseInterval  time.Duration
	IntervalStep  time.Duration
	MinInterval   time.Duration
}

// DefaultPolicy returns the standard scoring policy.
func DefaultPolicy() Policy {
	return Policy{
		LinePoints:    linePoints,
		LinesPerLevel: linesPerLevel,
		BaseInterval:  baseDropInterval,
		IntervalStep:  dropIntervalStep,
		MinInterval:   minimumDropInterval,
	}
}

// PolicyFromConfig builds a Policy from validated configuration.
func PolicyFromConfig(cfg config.BlocksConfig) Policy {
	p := Policy{
		LinesPerLevel: cfg.Scoring.LinesPerLevel,
		BaseInterval:  time.Duration(cfg.Timing.BaseDropMS) * time.Millisecond,
		IntervalStep:  time.Duration(cfg.Timing.DropStepMS) * time.Millisecond,
		MinInterval:   time.Duration(cfg.Timing.MinDropMS) * time.Millisecond,
	}
	copy(p.LinePoints[:], cfg.Scoring.LinePoints)
	return p
}

// Points returns the score for clearing rowCount rows at level.
func (p Policy) Points(rowCount, level int) int {
	if rowCount < 0 || rowCount >= len(p.LinePoints) {
		return 0
	}
	return p.LinePoints[rowCount] * level
}

// Level returns the level reached after totalLines cleared lines.
func (p Policy) Level(totalLines int) int {
	return totalLines/p.LinesPerLevel + 1
}

// DropInterval returns the gravity interval at level.
func (p Policy) DropInterval(level int) time.Duration {
	return max(p.MinInterval, p.BaseInterval-time.Duration(level-1)*p.IntervalStep)
}

// Score is the running tally of a session.
type Score struct {
	Points       int
	Level        int
	Lines        int
	DropInterval time.Duration
}

// NewScore returns the tally at the start of a session.
func (p Policy) NewScore() Score {
	return Score{
		Level:        1,
		DropInterval: p.DropInterval(1),
	}
}

// Apply records rowCount simultaneously cleared rows.
// Points use the level in effect before the clear; level and interval
// are then re-derived from the new line total.
func (p Policy) Apply(s Score, rowCount int) Score {
	s.Points += p.Points(rowCount, s.Level)
	s.Lines += rowCount
	s.Level = p.Level(s.Lines)
	s.DropInterval = p.DropInterval(s.Level)
	return s
}

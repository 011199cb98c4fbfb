package blocks

import (
	"slices"
	"time"
)

// DefaultClearDuration is how long the line-clear effect plays.
const DefaultClearDuration = 500 * time.Millisecond

// Effect is the state of the line-clear machine: Idle or *Clearing.
type Effect interface {
	isEffect()
}

// Idle means no rows are being cleared.
type Idle struct{}

// Clearing animates full rows before they are removed.
type Clearing struct {
	Rows      []int         // Captured at detection, bottom row first
	Progress  float64       // 0..1
	StartedAt time.Duration // Game clock at detection
	Duration  time.Duration
}

func (Idle) isEffect()      {}
func (*Clearing) isEffect() {}

// Includes reports whether row is part of this clear.
func (c *Clearing) Includes(row int) bool {
	return slices.Contains(c.Rows, row)
}

// lineClear is the Idle -> Clearing -> Idle state machine.
type lineClear struct {
	state    Effect
	duration time.Duration
}

func newLineClear(d time.Duration) lineClear {
	return lineClear{state: Idle{}, duration: d}
}

// active returns the running clear, or nil when idle.
func (lc *lineClear) active() *Clearing {
	c, _ := lc.state.(*Clearing)
	return c
}

// detect starts a clear if the board has full rows and none is running.
// The row set is fixed here; rows that fill up later are not added.
func (lc *lineClear) detect(b Board, now time.Duration) *Clearing {
	if lc.active() != nil {
		return nil
	}
	rows := b.FullRows()
	if len(rows) == 0 {
		return nil
	}
	c := &Clearing{
		Rows:      rows,
		StartedAt: now,
		Duration:  lc.duration,
	}
	lc.state = c
	return c
}

// advance updates progress from the game clock.
// It returns the finished clear once progress reaches 1, after which the
// machine is Idle again and the caller commits the removal.
func (lc *lineClear) advance(now time.Duration) *Clearing {
	c := lc.active()
	if c == nil {
		return nil
	}
	c.Progress = min(1.0, float64(now-c.StartedAt)/float64(c.Duration))
	if c.Progress < 1.0 {
		return nil
	}
	lc.state = Idle{}
	return c
}

// commit removes the cleared rows from the board, highest index first.
// Each RemoveRow pulls everything above it down one row, so every captured
// row still pending sits one row lower per removal already done.
func (c *Clearing) commit(b Board) {
	rows := slices.Clone(c.Rows)
	slices.Sort(rows)
	slices.Reverse(rows)
	for removed, y := range rows {
		b.RemoveRow(y + removed)
	}
}

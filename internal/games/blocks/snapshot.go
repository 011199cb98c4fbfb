package blocks

import "time"

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick        uint64
	Phase       Phase
	Score       int
	Level       int
	Lines       int
	Board       Board
	ActiveType  PieceType // PieceNone when no piece is falling
	ActiveX     int
	ActiveY     int
	NextType    PieceType
	ClearRows   []int
	Progress    float64
	DropCounter time.Duration
	Clock       time.Duration
}

// Snapshot returns a deep copy of the game state.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:        g.tick,
		Phase:       g.phase,
		Score:       g.score.Points,
		Level:       g.score.Level,
		Lines:       g.score.Lines,
		Board:       g.board.Clone(),
		DropCounter: g.dropCounter,
		Clock:       g.clock,
	}
	if g.active != nil {
		s.ActiveType = g.active.Type
		s.ActiveX = g.active.X
		s.ActiveY = g.active.Y
	}
	if g.next != nil {
		s.NextType = g.next.Type
	}
	if c := g.lines.active(); c != nil {
		s.ClearRows = append([]int(nil), c.Rows...)
		s.Progress = c.Progress
	}
	return s
}

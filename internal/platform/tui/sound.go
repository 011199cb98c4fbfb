package tui

import (
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blockfall/internal/core"
)

// minBellGap keeps rapid cues from turning into a continuous beep.
const minBellGap = 120 * time.Millisecond

// BellPlayer is a core.SoundPlayer for terminals: line clears and piece
// placement ring the terminal bell, every cue is logged at debug level.
type BellPlayer struct {
	mu       sync.Mutex
	out      io.Writer
	logger   *log.Logger
	enabled  bool
	lastBell time.Time
	now      func() time.Time
}

// NewBellPlayer creates a player that writes bells to out.
// A nil logger disables cue logging.
func NewBellPlayer(out io.Writer, logger *log.Logger, enabled bool) *BellPlayer {
	return &BellPlayer{
		out:     out,
		logger:  logger,
		enabled: enabled,
		now:     time.Now,
	}
}

// Play implements core.SoundPlayer.
func (p *BellPlayer) Play(c core.Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.logger != nil {
		p.logger.Debug("sound cue", "cue", c, "enabled", p.enabled)
	}
	if !p.enabled || !rings(c) {
		return
	}

	now := p.now()
	if !p.lastBell.IsZero() && now.Sub(p.lastBell) < minBellGap {
		return
	}
	p.lastBell = now
	//nolint:errcheck // Best-effort, sound is cosmetic
	p.out.Write([]byte("\a"))
}

// Toggle flips sound on or off and returns the new state.
func (p *BellPlayer) Toggle() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.enabled = !p.enabled
	return p.enabled
}

// Enabled reports whether bells are written.
func (p *BellPlayer) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.enabled
}

// rings reports whether a cue is loud enough for the bell.
// Moves and rotations are too frequent.
func rings(c core.Cue) bool {
	switch c {
	case core.CuePlace, core.CueLine1, core.CueLine2, core.CueLine3, core.CueLine4:
		return true
	default:
		return false
	}
}

// Package blocks implements the falling-block puzzle game: pieces fall on a
// gravity timer, full rows flash and vanish, and cleared lines raise the
// score, the level and the fall speed.
package blocks

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/registry"
)

// Phase is the top-level game state.
type Phase int

const (
	PhaseIdle Phase = iota // Title screen, nothing simulated
	PhaseRunning
	PhasePaused
	PhaseGameOver
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Renderer receives a Frame at the end of every running tick.
type Renderer interface {
	RenderFrame(f Frame)
}

// Frame is the state handed to a Renderer. Its board and pieces alias the
// live game state and must be treated as read-only.
type Frame struct {
	Board     Board
	Active    *Piece
	Next      *Piece
	Clearing  *Clearing // nil when no rows are being cleared
	Particles []Particle
	Score     Score
	Phase     Phase
}

// Game is the falling-block game. All state lives here and is only touched
// from the host's frame callback.
type Game struct {
	cfg    *config.BlocksConfig // Explicit config; nil means load from disk
	rng    *rand.Rand
	gen    *Generator
	policy Policy
	tick   uint64

	rows, cols       int
	clearDuration    time.Duration
	particlesPerCell int

	board     Board
	active    *Piece // nil between a merge and the next gravity step
	next      *Piece
	lines     lineClear
	particles []Particle
	score     Score

	phase       Phase
	clock       time.Duration // Simulated time; only advances while running
	dropCounter time.Duration
	resumed     bool // Ignore the elapsed time of the first frame after start or resume

	sound    core.SoundPlayer
	overlay  core.Overlay
	banner   core.Banner
	renderer Renderer

	screenW  int
	screenH  int
	tooSmall bool
}

// configPath is set from the CLI before the game is created.
var configPath string

// SetConfigPath sets the YAML config file used by subsequently reset games.
func SetConfigPath(path string) {
	configPath = path
}

var (
	_ registry.Game     = (*Game)(nil)
	_ core.SoundEmitter = (*Game)(nil)
)

func init() {
	registry.Register("blocks", func() registry.Game {
		return New()
	})
}

// New creates a game that loads its configuration on Reset.
func New() *Game {
	g := &Game{sound: core.NopSound{}}
	g.overlay = &g.banner
	return g
}

// NewWithConfig creates a game with an explicit configuration.
func NewWithConfig(cfg config.BlocksConfig) *Game {
	g := New()
	g.cfg = &cfg
	return g
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "blocks"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Blockfall"
}

// SetSoundPlayer attaches the sound collaborator.
func (g *Game) SetSoundPlayer(p core.SoundPlayer) {
	if p == nil {
		p = core.NopSound{}
	}
	g.sound = p
}

// SetOverlay replaces the built-in banner with another overlay.
func (g *Game) SetOverlay(o core.Overlay) {
	if o == nil {
		o = &g.banner
	}
	g.overlay = o
}

// SetRenderer attaches a collaborator that receives a Frame every tick.
func (g *Game) SetRenderer(r Renderer) {
	g.renderer = r
}

// Reset prepares the game for a new process: loads configuration, seeds the
// RNG and shows the title overlay. No session runs until Start.
func (g *Game) Reset(rc core.RuntimeConfig) {
	cfg := config.DefaultBlocksConfig()
	if g.cfg != nil {
		cfg = *g.cfg
	} else if loaded, err := config.LoadBlocks(configPath); err == nil {
		cfg = loaded
	}

	g.rows = cfg.Board.Rows
	g.cols = cfg.Board.Cols
	g.clearDuration = time.Duration(cfg.Timing.ClearEffectMS) * time.Millisecond
	g.particlesPerCell = cfg.Effects.ParticlesPerCell
	g.policy = PolicyFromConfig(cfg)

	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.gen = NewGenerator(g.rng, g.cols)
	g.tick = 0

	g.resetSession()
	g.phase = PhaseIdle
	g.overlay.Show("BLOCKFALL", "Press Space to start")

	g.Resize(rc.ScreenW, rc.ScreenH)
}

// resetSession clears the board and tally for a fresh game.
func (g *Game) resetSession() {
	g.board = NewBoard(g.rows, g.cols)
	g.score = g.policy.NewScore()
	g.active = nil
	g.next = g.gen.Next()
	g.lines = newLineClear(g.clearDuration)
	g.particles = nil
	g.clock = 0
	g.dropCounter = 0
}

// Resize records the screen size and whether the game fits.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	wasSmall := g.tooSmall
	g.tooSmall = w < g.minWidth() || h < g.minHeight()
	if wasSmall && !g.tooSmall {
		g.resumed = true
	}
}

// Step dispatches this frame's commands, then advances the simulation by dt.
func (g *Game) Step(in core.InputFrame, dt time.Duration) core.StepResult {
	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	switch {
	case in.Has(core.ActionConfirm):
		if g.phase == PhaseRunning || g.phase == PhasePaused {
			g.TogglePause()
		} else {
			g.Start()
		}
	case in.Has(core.ActionPause):
		g.TogglePause()
	case in.Has(core.ActionRestart) && g.phase == PhaseGameOver:
		g.Start()
	}

	if in.Has(core.ActionLeft) {
		g.MoveLeft()
	}
	if in.Has(core.ActionRight) {
		g.MoveRight()
	}
	if in.Has(core.ActionDown) {
		g.SoftDrop()
	}
	if in.Has(core.ActionRotate) {
		g.Rotate()
	}

	g.Tick(dt)
	return core.StepResult{State: g.State()}
}

// Start begins a new game from the title or game-over screen, or resumes a
// paused one. It does nothing while a game is running.
func (g *Game) Start() {
	switch g.phase {
	case PhaseRunning:
		return
	case PhasePaused:
		g.TogglePause()
		return
	}
	g.resetSession()
	g.phase = PhaseRunning
	g.resumed = true
	g.overlay.Hide()
}

// TogglePause switches between running and paused.
func (g *Game) TogglePause() {
	switch g.phase {
	case PhaseRunning:
		g.phase = PhasePaused
		g.overlay.Show("PAUSED", "Press Space to resume")
	case PhasePaused:
		g.phase = PhaseRunning
		g.resumed = true
		g.overlay.Hide()
	}
}

// canControl reports whether movement commands apply.
func (g *Game) canControl() bool {
	return g.phase == PhaseRunning && g.active != nil
}

// MoveLeft shifts the active piece one column left if there is room.
func (g *Game) MoveLeft() bool {
	return g.shift(-1)
}

// MoveRight shifts the active piece one column right if there is room.
func (g *Game) MoveRight() bool {
	return g.shift(1)
}

func (g *Game) shift(dx int) bool {
	if !g.canControl() || g.board.Collides(g.active, dx, 0) {
		return false
	}
	g.active.X += dx
	g.sound.Play(core.CueMove)
	return true
}

// SoftDrop moves the active piece down one row if there is room.
// It never merges; landing is left to gravity.
func (g *Game) SoftDrop() bool {
	if !g.canControl() || g.board.Collides(g.active, 0, 1) {
		return false
	}
	g.active.Y++
	return true
}

// Rotate turns the active piece clockwise if it fits where it stands.
func (g *Game) Rotate() bool {
	if !g.canControl() || !Rotate(g.board, g.active) {
		return false
	}
	g.sound.Play(core.CueRotate)
	return true
}

// Tick advances a running game by dt: clear effect first, then particles,
// then gravity, then the render hand-off. It does nothing unless running.
func (g *Game) Tick(dt time.Duration) {
	if g.phase != PhaseRunning {
		return
	}
	if g.resumed || dt < 0 {
		dt = 0
		g.resumed = false
	}
	g.clock += dt

	if done := g.lines.advance(g.clock); done != nil {
		g.finishClear(done)
	}

	g.particles = updateParticles(g.particles, dt)

	if g.lines.active() == nil {
		g.dropCounter += dt
		if g.dropCounter > g.score.DropInterval {
			g.dropCounter = 0
			g.gravityStep()
		}
	}

	if g.renderer != nil {
		g.renderer.RenderFrame(g.Frame())
	}
}

// gravityStep spawns a piece if needed, then moves it down or lands it.
func (g *Game) gravityStep() {
	if g.active == nil {
		g.active = g.next
		g.next = g.gen.Next()
		if g.board.Collides(g.active, 0, 0) {
			g.endGame()
			return
		}
	}

	if !g.board.Collides(g.active, 0, 1) {
		g.active.Y++
		return
	}

	g.board.Merge(g.active)
	g.sound.Play(core.CuePlace)
	g.detectLines()
	g.active = nil
}

// detectLines starts the clear effect when the last merge filled rows.
func (g *Game) detectLines() {
	c := g.lines.detect(g.board, g.clock)
	if c == nil {
		return
	}
	g.particles = spawnParticles(g.rng, g.board, c.Rows, g.particlesPerCell)
	g.sound.Play(core.LineCue(len(c.Rows)))
}

// finishClear removes the rows of a completed effect and scores them.
func (g *Game) finishClear(c *Clearing) {
	c.commit(g.board)
	g.score = g.policy.Apply(g.score, len(c.Rows))
}

func (g *Game) endGame() {
	g.phase = PhaseGameOver
	g.overlay.Show("GAME OVER", fmt.Sprintf("Score: %d", g.score.Points))
}

// Frame returns the current render input.
func (g *Game) Frame() Frame {
	return Frame{
		Board:     g.board,
		Active:    g.active,
		Next:      g.next,
		Clearing:  g.lines.active(),
		Particles: g.particles,
		Score:     g.score,
		Phase:     g.phase,
	}
}

// Phase returns the top-level state.
func (g *Game) Phase() Phase {
	return g.phase
}

// State returns the summary reported to the platform.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score.Points,
		Level:    g.score.Level,
		Lines:    g.score.Lines,
		Running:  g.phase == PhaseRunning || g.phase == PhasePaused,
		GameOver: g.phase == PhaseGameOver,
		Paused:   g.phase == PhasePaused || g.tooSmall,
	}
}

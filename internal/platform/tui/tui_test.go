package tui

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/storage"
)

// fakeGame records what the host feeds it.
type fakeGame struct {
	resets  int
	resized [2]int
	dts     []time.Duration
	inputs  []core.InputFrame
	state   core.GameState
	sound   core.SoundPlayer
}

func (g *fakeGame) ID() string                        { return "fake" }
func (g *fakeGame) Title() string                     { return "Fake" }
func (g *fakeGame) Reset(core.RuntimeConfig)          { g.resets++ }
func (g *fakeGame) Resize(w, h int)                   { g.resized = [2]int{w, h} }
func (g *fakeGame) Render(dst *core.Screen)           { dst.DrawText(0, 0, "fake") }
func (g *fakeGame) State() core.GameState             { return g.state }
func (g *fakeGame) Controls() string                  { return "" }
func (g *fakeGame) SetSoundPlayer(p core.SoundPlayer) { g.sound = p }

func (g *fakeGame) Step(in core.InputFrame, dt time.Duration) core.StepResult {
	cp := core.NewInputFrame()
	for a, on := range in.Actions {
		if on {
			cp.Set(a)
		}
	}
	g.inputs = append(g.inputs, cp)
	g.dts = append(g.dts, dt)
	return core.StepResult{State: g.state}
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestKeyMapper(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		key      string
		want     core.Action
		wantQuit bool
	}{
		{"left", core.ActionLeft, false},
		{"a", core.ActionLeft, false},
		{"d", core.ActionRight, false},
		{"s", core.ActionDown, false},
		{"up", core.ActionRotate, false},
		{"z", core.ActionRotate, false},
		{" ", core.ActionConfirm, false},
		{"p", core.ActionPause, false},
		{"esc", core.ActionPause, false},
		{"r", core.ActionRestart, false},
		{"m", core.ActionMute, false},
		{"q", core.ActionQuit, true},
		{"ctrl+c", core.ActionQuit, true},
		{"x", core.ActionNone, false},
	}

	for _, tt := range tests {
		got, quit := km.MapKey(keyMsg(tt.key))
		if got != tt.want || quit != tt.wantQuit {
			t.Errorf("MapKey(%q) = %v, %v; want %v, %v", tt.key, got, quit, tt.want, tt.wantQuit)
		}
	}
}

func TestMapKeyToFrameSkipsQuit(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	assert.True(t, km.MapKeyToFrame(keyMsg("q"), &frame))
	assert.True(t, frame.Empty())

	assert.False(t, km.MapKeyToFrame(keyMsg("left"), &frame))
	assert.True(t, frame.Has(core.ActionLeft))
}

func TestFrameDelta(t *testing.T) {
	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	assert.Zero(t, frameDelta(time.Time{}, base), "first tick")
	assert.Equal(t, 16*time.Millisecond, frameDelta(base, base.Add(16*time.Millisecond)))
	assert.Zero(t, frameDelta(base, base.Add(-time.Second)), "clock went backwards")
}

func TestBellPlayer(t *testing.T) {
	var out bytes.Buffer
	p := NewBellPlayer(&out, nil, true)
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	p.now = func() time.Time { return now }

	p.Play(core.CueMove)
	p.Play(core.CueRotate)
	assert.Zero(t, out.Len(), "moves are silent")

	p.Play(core.CueLine2)
	assert.Equal(t, "\a", out.String())

	p.Play(core.CuePlace)
	assert.Equal(t, "\a", out.String(), "throttled")

	now = now.Add(time.Second)
	p.Play(core.CuePlace)
	assert.Equal(t, "\a\a", out.String())

	assert.False(t, p.Toggle())
	now = now.Add(time.Second)
	p.Play(core.CueLine4)
	assert.Equal(t, "\a\a", out.String(), "muted")
	assert.False(t, p.Enabled())
}

func TestModelInjectsFrameTime(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1}, Options{})
	assert.Equal(t, 1, g.resets)

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	next, _ := m.Update(TickMsg(base))
	next, _ = next.Update(TickMsg(base.Add(20 * time.Millisecond)))
	next.Update(TickMsg(base.Add(50 * time.Millisecond)))

	assert.Equal(t, []time.Duration{0, 20 * time.Millisecond, 30 * time.Millisecond}, g.dts)
}

func TestModelForwardsKeysOnce(t *testing.T) {
	g := &fakeGame{}
	var m tea.Model = NewModel(g, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1}, Options{})

	m, _ = m.Update(keyMsg("left"))
	m, _ = m.Update(keyMsg(" "))
	m, _ = m.Update(TickMsg(time.Now()))
	m.Update(TickMsg(time.Now()))

	require.Len(t, g.inputs, 2)
	assert.True(t, g.inputs[0].Has(core.ActionLeft))
	assert.True(t, g.inputs[0].Has(core.ActionConfirm))
	assert.True(t, g.inputs[1].Empty(), "frame cleared after each tick")
}

func TestModelResizeKeepsSession(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1}, Options{})

	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	assert.Equal(t, [2]int{120, 40}, g.resized)
	assert.Equal(t, 1, g.resets, "resize must not reset the game")
}

func TestModelMuteToggle(t *testing.T) {
	g := &fakeGame{}
	bell := NewBellPlayer(&bytes.Buffer{}, nil, true)
	m := NewModel(g, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1}, Options{Sound: bell})
	assert.Same(t, bell, g.sound)

	m.Update(keyMsg("m"))
	assert.False(t, bell.Enabled())
}

func TestModelSavesRunOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	defer store.Close()

	g := &fakeGame{}
	var m tea.Model = NewModel(g, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1}, Options{Store: store})
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	g.state = core.GameState{Running: true, Level: 1}
	m, _ = m.Update(TickMsg(base))
	m, _ = m.Update(TickMsg(base.Add(time.Second)))
	m, _ = m.Update(TickMsg(base.Add(2 * time.Second)))

	g.state = core.GameState{GameOver: true, Score: 300, Level: 1, Lines: 2}
	m, _ = m.Update(TickMsg(base.Add(3 * time.Second)))
	m, _ = m.Update(TickMsg(base.Add(4 * time.Second)))

	runs, err := store.TopRuns("fake", 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, 300, runs[0].Score)
	assert.Equal(t, 2, runs[0].Lines)
	assert.Equal(t, 3*time.Second, runs[0].Duration)

	// A new session that ends again is recorded separately.
	g.state = core.GameState{Running: true, Level: 1}
	m, _ = m.Update(TickMsg(base.Add(5 * time.Second)))
	g.state = core.GameState{GameOver: true, Score: 100, Level: 1, Lines: 1}
	m.Update(TickMsg(base.Add(6 * time.Second)))

	runs, err = store.TopRuns("fake", 10)
	require.NoError(t, err)
	assert.Len(t, runs, 2)
}

func TestModelScreenshot(t *testing.T) {
	dir := t.TempDir()
	g := &fakeGame{}
	m := NewModel(g, core.RuntimeConfig{ScreenW: 20, ScreenH: 4, Seed: 1}, Options{ScreenshotDir: dir})

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})

	files, err := filepath.Glob(filepath.Join(dir, "fake_*.txt"))
	require.NoError(t, err)
	assert.Len(t, files, 1)
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(10, 2)
	s.DrawTextColored(0, 0, "ab", core.ColorRed)
	s.DrawText(2, 0, "cd")

	out := RenderScreen(s)

	assert.Contains(t, out, "cd")
	assert.Contains(t, out, "\n")
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "0:00", formatDuration(0))
	assert.Equal(t, "1:05", formatDuration(65*time.Second))
	assert.Equal(t, "12:00", formatDuration(12*time.Minute))
}

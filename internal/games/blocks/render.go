package blocks

import (
	"fmt"

	"github.com/vovakirdan/blockfall/internal/core"
)

const (
	cellW      = 2  // Screen columns per board cell
	panelW     = 16 // Side panel width
	panelGap   = 2
	emptyCell  = " ·"
	solidCell  = "██"
	flashCell  = "▓▓"
	fadeCell   = "▒▒"
	vanishCell = "░░"
)

func (g *Game) minWidth() int {
	return g.cols*cellW + 2 + panelGap + panelW
}

func (g *Game) minHeight() int {
	return g.rows + 2
}

// Render draws the board, the side panel and any overlay.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	boardW := g.cols*cellW + 2
	boardH := g.rows + 2
	totalW := boardW + panelGap + panelW
	bx := (g.screenW - totalW) / 2
	by := (g.screenH - boardH) / 2

	dst.DrawBox(core.NewRect(bx, by, boardW, boardH))
	g.renderBoard(dst, bx+1, by+1)
	g.renderParticles(dst, bx+1, by+1)
	g.renderActive(dst, bx+1, by+1)
	g.renderPanel(dst, bx+boardW+panelGap, by)

	if b, ok := g.overlay.(*core.Banner); ok && b.Visible {
		dst.DrawPanel(bx+boardW/2, by+boardH/2, b.Lines()...)
	}
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", g.minWidth(), g.minHeight()))
}

// renderBoard draws settled cells; rows being cleared flash, then fade.
func (g *Game) renderBoard(dst *core.Screen, ox, oy int) {
	clearing := g.lines.active()
	for y := 0; y < g.board.Rows(); y++ {
		effect := clearing != nil && clearing.Includes(y)
		for x := 0; x < g.board.Cols(); x++ {
			t := g.board[y][x]
			px := ox + x*cellW
			switch {
			case t == 0:
				dst.DrawTextColored(px, oy+y, emptyCell, core.ColorGray)
			case effect:
				glyph, color := clearGlyph(clearing.Progress, t)
				dst.DrawTextColored(px, oy+y, glyph, color)
			default:
				dst.DrawTextColored(px, oy+y, solidCell, t.Color())
			}
		}
	}
}

// clearGlyph picks how a clearing cell looks at the given progress:
// a white flash for the first 30%, then a fade in the piece color.
func clearGlyph(progress float64, t PieceType) (string, core.Color) {
	switch {
	case progress < 0.3:
		return flashCell, core.ColorBrightWhite
	case progress < 0.7:
		return fadeCell, t.Color()
	default:
		return vanishCell, t.Color()
	}
}

func (g *Game) renderParticles(dst *core.Screen, ox, oy int) {
	for _, p := range g.particles {
		x, y := int(p.X), int(p.Y)
		if p.X < 0 || p.Y < 0 || x >= g.board.Cols() || y >= g.board.Rows() {
			continue
		}
		r := '·'
		if p.Life > 0.5 {
			r = '*'
		}
		dst.SetColored(ox+int(p.X*cellW), oy+y, r, p.Type.Color())
	}
}

func (g *Game) renderActive(dst *core.Screen, ox, oy int) {
	if g.active == nil {
		return
	}
	for _, c := range g.active.Cells() {
		if c[1] < 0 {
			continue
		}
		dst.DrawTextColored(ox+c[0]*cellW, oy+c[1], solidCell, g.active.Type.Color())
	}
}

// renderPanel draws the next-piece preview, the tally and the controls.
func (g *Game) renderPanel(dst *core.Screen, px, py int) {
	dst.DrawBox(core.NewRect(px, py, panelW, 6))
	dst.DrawText(px+2, py, " NEXT ")
	if g.next != nil {
		sx := px + (panelW-g.next.Shape.Width()*cellW)/2
		sy := py + 1 + (4-g.next.Shape.Height())/2
		for _, c := range g.next.Cells() {
			x := sx + (c[0]-g.next.X)*cellW
			y := sy + c[1] - g.next.Y
			dst.DrawTextColored(x, y, solidCell, g.next.Type.Color())
		}
	}

	stats := []struct {
		label string
		value int
	}{
		{"SCORE", g.score.Points},
		{"LEVEL", g.score.Level},
		{"LINES", g.score.Lines},
	}
	y := py + 7
	for _, s := range stats {
		dst.DrawTextColored(px, y, s.label, core.ColorGray)
		dst.DrawTextColored(px, y+1, fmt.Sprintf("%d", s.value), core.ColorBrightWhite)
		y += 3
	}

	hints := []string{"←→  move", "↓   soft drop", "↑/Z rotate", "SPC start/pause", "Q   quit"}
	for i, h := range hints {
		dst.DrawTextColored(px, y+i, h, core.ColorGray)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/WASD: Move | Up/Z: Rotate | Space: Start/Pause | M: Sound | Q: Quit"
}

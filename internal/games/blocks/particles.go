package blocks

import (
	"math"
	"math/rand"
	"time"
)

// Particle physics in board cells. Speeds are scaled from a 30px cell.
const (
	particleCellPx   = 30.0
	particleGravity  = 0.3 / particleCellPx
	particleDecayPer = 0.002 // life lost per millisecond
)

// Particle is a short-lived spark thrown off a cleared cell.
// Particles are cosmetic: nothing in the simulation reads them.
type Particle struct {
	X, Y   float64 // Position in cells
	VX, VY float64 // Velocity in cells per 100ms
	Life   float64 // 1 at spawn, removed at 0
	Type   PieceType
}

// spawnParticles emits perCell particles for every occupied cell of rows.
func spawnParticles(rng *rand.Rand, b Board, rows []int, perCell int) []Particle {
	var out []Particle
	for _, y := range rows {
		for x := 0; x < b.Cols(); x++ {
			t := b[y][x]
			if t == 0 {
				continue
			}
			for i := range perCell {
				angle := 2*math.Pi*float64(i)/float64(perCell) + rng.Float64()*0.5
				speed := (3 + rng.Float64()*5) / particleCellPx
				out = append(out, Particle{
					X:    float64(x) + 0.5,
					Y:    float64(y) + 0.5,
					VX:   math.Cos(angle) * speed,
					VY:   math.Sin(angle)*speed - 1/particleCellPx,
					Life: 1,
					Type: t,
				})
			}
		}
	}
	return out
}

// updateParticles moves and ages particles by dt, dropping dead ones.
func updateParticles(ps []Particle, dt time.Duration) []Particle {
	ms := float64(dt) / float64(time.Millisecond)
	step := ms * 0.01
	alive := ps[:0]
	for _, p := range ps {
		p.X += p.VX * step
		p.Y += p.VY * step
		p.VY += particleGravity * step
		p.Life -= ms * particleDecayPer
		if p.Life > 0 {
			alive = append(alive, p)
		}
	}
	return alive
}

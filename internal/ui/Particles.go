package ui

import (
	"math"
	"math/rand"
	"time"

	"serpent/internal/game"
)

// Death animation tuning. Velocities are cells per second; the terminal
// grid is coarse, so the burst stays small and brief.
const (
	particleGravity  = 15.0
	particleDrag     = 0.98
	particleMinSpeed = 3.2
	particleMaxSpeed = 8.8
	particleMinLife  = 0.6
	particleMaxLife  = 1.2
	particleMaxTime  = 1.6
	particleFrame    = time.Second / 30
)

// particle is one fragment of the burst, tracked in float cell space.
type particle struct {
	x, y    float64
	vx, vy  float64
	life    float64
	maxLife float64
}

// particleField is the burst spawned from the snake's body when it dies.
type particleField struct {
	parts   []particle
	elapsed float64
}

// newParticleField scatters fragments from every segment, with an extra
// one on the head.
func newParticleField(body []game.Cell, rng *rand.Rand) *particleField {
	pf := &particleField{}
	for i, c := range body {
		count := 3
		if i == 0 {
			count++
		}
		for j := 0; j < count; j++ {
			angle := rng.Float64() * 2 * math.Pi
			speed := particleMinSpeed + rng.Float64()*(particleMaxSpeed-particleMinSpeed)
			life := particleMinLife + rng.Float64()*(particleMaxLife-particleMinLife)
			pf.parts = append(pf.parts, particle{
				x:       float64(c.X) + 0.5,
				y:       float64(c.Y) + 0.5,
				vx:      math.Cos(angle) * speed,
				vy:      math.Sin(angle) * speed,
				life:    life,
				maxLife: life,
			})
		}
	}
	return pf
}

// update advances the simulation by dt seconds and reports whether the
// burst has finished.
func (pf *particleField) update(dt float64) bool {
	pf.elapsed += dt
	alive := 0
	for i := range pf.parts {
		p := &pf.parts[i]
		if p.life <= 0 {
			continue
		}
		p.life -= dt
		p.x += p.vx * dt
		p.y += p.vy * dt
		p.vy += particleGravity * dt
		p.vx *= particleDrag
		p.vy *= particleDrag
		if p.life > 0 {
			alive++
		}
	}
	return alive == 0 || pf.elapsed >= particleMaxTime
}

// fragments maps each occupied cell to the fade level of its freshest
// particle: 0 is newborn, 2 is nearly gone.
func (pf *particleField) fragments(board game.Board) map[game.Cell]int {
	cells := make(map[game.Cell]int)
	for i := range pf.parts {
		p := &pf.parts[i]
		if p.life <= 0 {
			continue
		}
		c := game.Cell{X: int(p.x), Y: int(p.y)}
		if !board.Contains(c) {
			continue
		}
		fade := 2 - int(p.life/p.maxLife*3)
		if fade < 0 {
			fade = 0
		}
		if fade > 2 {
			fade = 2
		}
		if prev, ok := cells[c]; !ok || fade < prev {
			cells[c] = fade
		}
	}
	return cells
}

// Package game implements the serpent rules: the board, the snake,
// movement and collision, food placement, scoring, and the stores that
// keep the best score and the high-score table.
package game

import "math/rand"

// State is the run state of a single game.
type State uint8

const (
	StateRunning State = iota
	StatePaused
	StateGameOver
)

// DeathCause names the terminal condition that ended a run.
type DeathCause string

const (
	DeathCauseNone          DeathCause = ""
	DeathCauseWallCollision DeathCause = "wall-collision"
	DeathCauseSelfCollision DeathCause = "self-collision"
)

// StepResult reports what a single tick did.
type StepResult struct {
	Moved  bool
	Ate    bool
	SpedUp bool
	Died   bool
	Cause  DeathCause
}

// maxFoodProbes bounds the random placement attempts before falling back
// to an exact scan of the free cells.
const maxFoodProbes = 64

// Game holds the whole state of one run. It is not safe for concurrent
// use; a single loop drives it through QueueDirection and Step.
type Game struct {
	Board Board
	Snake *Snake

	Food       Cell
	FoodActive bool

	Score     int
	FoodEaten int

	MovesPerSec int
	State       State
	Cause       DeathCause

	dir     Direction
	nextDir Direction
	growth  int

	cfg Config
	rng *rand.Rand
}

// NewGame builds a run from cfg. The rng drives food placement and is
// injected so tests can seed it.
func NewGame(cfg Config, rng *rand.Rand) *Game {
	cfg = cfg.normalized()
	g := &Game{
		Board: Board{Width: cfg.BoardWidth, Height: cfg.BoardHeight},
		cfg:   cfg,
		rng:   rng,
	}
	g.Reset()
	return g
}

// Reset starts a fresh run on the same board: a centered snake facing
// right with fresh food and zero score. The current speed carries over
// so a restart continues at the pace the player had reached.
func (g *Game) Reset() {
	if g.MovesPerSec == 0 {
		g.MovesPerSec = g.cfg.MovesPerSec
	}
	g.Snake = newSnake(g.Board.Center(), g.cfg.StartLength, DirRight)
	g.dir = DirRight
	g.nextDir = DirRight
	g.growth = 0
	g.Score = 0
	g.FoodEaten = 0
	g.State = StateRunning
	g.Cause = DeathCauseNone
	g.placeFood()
}

// Dir returns the direction the snake moved on the last tick.
func (g *Game) Dir() Direction {
	return g.dir
}

// QueueDirection latches d to take effect on the next tick. Reversing
// the direction moved last tick is ignored; queued turns may still be
// overwritten before the tick fires.
func (g *Game) QueueDirection(d Direction) {
	if g.State != StateRunning {
		return
	}
	if d == g.dir.Opposite() {
		return
	}
	g.nextDir = d
}

// TogglePause flips between running and paused. Finished games stay
// finished.
func (g *Game) TogglePause() {
	switch g.State {
	case StateRunning:
		g.State = StatePaused
	case StatePaused:
		g.State = StateRunning
	}
}

// AdjustSpeed shifts the tick rate by delta moves per second, clamped to
// the legal range.
func (g *Game) AdjustSpeed(delta int) {
	g.MovesPerSec = min(max(g.MovesPerSec+delta, MinMovesPerSec), MaxMovesPerSec)
}

// Step advances the game by one tick: apply the latched direction, move
// the head, resolve collisions, then food, growth and scoring. Paused or
// finished games do not move.
func (g *Game) Step() StepResult {
	if g.State != StateRunning {
		return StepResult{}
	}

	g.dir = g.nextDir
	next := g.Snake.Head().Translate(g.dir)

	if !g.Board.Contains(next) {
		return g.die(DeathCauseWallCollision)
	}

	// The tail cell only blocks the head when it stays put this tick,
	// which happens while a growth segment is pending.
	tailVacates := g.growth == 0
	if g.Snake.hits(next, tailVacates) {
		return g.die(DeathCauseSelfCollision)
	}

	res := StepResult{Moved: true}

	ate := g.FoodActive && next == g.Food
	if ate {
		res.Ate = true
		g.growth++
		g.FoodEaten++
		g.Score += ScorePerFood
		if g.FoodEaten%SpeedupEvery == 0 && g.MovesPerSec < MaxMovesPerSec {
			g.MovesPerSec = min(g.MovesPerSec+SpeedupAmount, MaxMovesPerSec)
			res.SpedUp = true
		}
	}

	keepTail := g.growth > 0
	if keepTail {
		g.growth--
	}
	g.Snake.advance(next, keepTail)

	if ate {
		g.placeFood()
	}

	return res
}

func (g *Game) die(cause DeathCause) StepResult {
	g.State = StateGameOver
	g.Cause = cause
	return StepResult{Died: true, Cause: cause}
}

// placeFood moves the food to a cell the snake does not occupy, chosen
// uniformly at random: bounded random probes first, then an exact scan
// of the remaining free cells. A fully covered board deactivates the
// food instead.
func (g *Game) placeFood() {
	free := g.Board.Area() - g.Snake.Len()
	if free <= 0 {
		g.FoodActive = false
		return
	}

	for i := 0; i < maxFoodProbes; i++ {
		c := Cell{X: g.rng.Intn(g.Board.Width), Y: g.rng.Intn(g.Board.Height)}
		if !g.Snake.Occupies(c) {
			g.Food = c
			g.FoodActive = true
			return
		}
	}

	cells := make([]Cell, 0, free)
	for y := 0; y < g.Board.Height; y++ {
		for x := 0; x < g.Board.Width; x++ {
			c := Cell{X: x, Y: y}
			if !g.Snake.Occupies(c) {
				cells = append(cells, c)
			}
		}
	}
	g.Food = cells[g.rng.Intn(len(cells))]
	g.FoodActive = true
}

package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func testGame(cfg Config, seed int64) *Game {
	return NewGame(cfg, rand.New(rand.NewSource(seed)))
}

// setSnake replaces the snake and the direction it moved last tick.
func setSnake(g *Game, dir Direction, cells ...Cell) {
	g.Snake = &Snake{Body: cells}
	g.dir = dir
	g.nextDir = dir
}

func TestNewGameSpawnsCenteredSnakeFacingRight(t *testing.T) {
	g := testGame(DefaultConfig(), 1)

	require.Equal(t, StateRunning, g.State)
	require.Equal(t, DefaultStartLength, g.Snake.Len())
	require.Equal(t, g.Board.Center(), g.Snake.Head())
	require.Equal(t, DirRight, g.Dir())
	require.Zero(t, g.Score)
	require.Zero(t, g.FoodEaten)

	// The body trails leftward from the head in a straight line.
	head := g.Snake.Head()
	for i, c := range g.Snake.Body {
		require.Equal(t, Cell{X: head.X - i, Y: head.Y}, c)
	}

	require.True(t, g.FoodActive)
	require.False(t, g.Snake.Occupies(g.Food))
}

func TestStepMovesHeadAndTailWithoutFood(t *testing.T) {
	g := testGame(Config{BoardWidth: 10, BoardHeight: 10, StartLength: 3, MovesPerSec: 10}, 1)
	g.Food = Cell{X: 9, Y: 9}

	res := g.Step()

	require.True(t, res.Moved)
	require.False(t, res.Ate)
	require.False(t, res.Died)
	require.Equal(t, []Cell{{X: 6, Y: 5}, {X: 5, Y: 5}, {X: 4, Y: 5}}, g.Snake.Body)
	require.Zero(t, g.Score)

	// Further foodless moves keep the length constant.
	for i := 0; i < 3; i++ {
		g.Step()
		require.Equal(t, 3, g.Snake.Len())
	}
}

func TestStepEatsFoodGrowsAndRelocatesFood(t *testing.T) {
	g := testGame(Config{BoardWidth: 10, BoardHeight: 10, StartLength: 1, MovesPerSec: 10}, 1)
	setSnake(g, DirRight, Cell{X: 5, Y: 5})
	g.Food = Cell{X: 6, Y: 5}
	g.FoodActive = true

	res := g.Step()

	require.True(t, res.Moved)
	require.True(t, res.Ate)
	require.Equal(t, []Cell{{X: 6, Y: 5}, {X: 5, Y: 5}}, g.Snake.Body)
	require.Equal(t, ScorePerFood, g.Score)
	require.Equal(t, 1, g.FoodEaten)
	require.True(t, g.FoodActive)
	require.False(t, g.Snake.Occupies(g.Food))
}

func TestWallCollisionEndsRunAndPreservesState(t *testing.T) {
	g := testGame(Config{BoardWidth: 10, BoardHeight: 10, StartLength: 2, MovesPerSec: 10}, 1)
	setSnake(g, DirLeft, Cell{X: 0, Y: 5}, Cell{X: 1, Y: 5})
	g.Score = 7

	res := g.Step()

	require.True(t, res.Died)
	require.Equal(t, DeathCauseWallCollision, res.Cause)
	require.Equal(t, StateGameOver, g.State)
	require.Equal(t, DeathCauseWallCollision, g.Cause)
	require.Equal(t, []Cell{{X: 0, Y: 5}, {X: 1, Y: 5}}, g.Snake.Body)
	require.Equal(t, 7, g.Score)

	// A finished game does not move again.
	require.Equal(t, StepResult{}, g.Step())
	require.Equal(t, []Cell{{X: 0, Y: 5}, {X: 1, Y: 5}}, g.Snake.Body)
}

func TestWallCollisionOnEveryEdge(t *testing.T) {
	cases := []struct {
		name string
		head Cell
		dir  Direction
	}{
		{"left", Cell{X: 0, Y: 4}, DirLeft},
		{"right", Cell{X: 7, Y: 4}, DirRight},
		{"top", Cell{X: 4, Y: 0}, DirUp},
		{"bottom", Cell{X: 4, Y: 7}, DirDown},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := testGame(Config{BoardWidth: 8, BoardHeight: 8, StartLength: 1, MovesPerSec: 10}, 1)
			setSnake(g, tc.dir, tc.head)
			g.Food = Cell{X: 3, Y: 3}

			res := g.Step()

			require.True(t, res.Died)
			require.Equal(t, DeathCauseWallCollision, res.Cause)
		})
	}
}

func TestSelfCollisionOnBody(t *testing.T) {
	// The head turns up into its own neck region.
	g := testGame(Config{BoardWidth: 10, BoardHeight: 10, StartLength: 1, MovesPerSec: 10}, 1)
	setSnake(g, DirUp,
		Cell{X: 3, Y: 3}, Cell{X: 2, Y: 3}, Cell{X: 2, Y: 2}, Cell{X: 3, Y: 2}, Cell{X: 4, Y: 2})
	g.Food = Cell{X: 9, Y: 9}

	res := g.Step()

	require.True(t, res.Died)
	require.Equal(t, DeathCauseSelfCollision, res.Cause)
	require.Equal(t, StateGameOver, g.State)
}

func TestHeadMayEnterVacatingTailCell(t *testing.T) {
	// Four segments in a square; the head chases the tail tip. The tail
	// moves away this tick, so the move is legal.
	g := testGame(Config{BoardWidth: 8, BoardHeight: 8, StartLength: 1, MovesPerSec: 10}, 1)
	setSnake(g, DirUp,
		Cell{X: 1, Y: 1}, Cell{X: 0, Y: 1}, Cell{X: 0, Y: 0}, Cell{X: 1, Y: 0})
	g.Food = Cell{X: 6, Y: 6}

	res := g.Step()

	require.True(t, res.Moved)
	require.False(t, res.Died)
	require.Equal(t, []Cell{{X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}, {X: 0, Y: 0}}, g.Snake.Body)
}

func TestHeadDiesOnRetainedTailCell(t *testing.T) {
	// Same square, but a growth segment is pending so the tail stays put.
	g := testGame(Config{BoardWidth: 8, BoardHeight: 8, StartLength: 1, MovesPerSec: 10}, 1)
	setSnake(g, DirUp,
		Cell{X: 1, Y: 1}, Cell{X: 0, Y: 1}, Cell{X: 0, Y: 0}, Cell{X: 1, Y: 0})
	g.growth = 1
	g.Food = Cell{X: 6, Y: 6}

	res := g.Step()

	require.True(t, res.Died)
	require.Equal(t, DeathCauseSelfCollision, res.Cause)
}

func TestQueueDirectionIgnoresReversal(t *testing.T) {
	g := testGame(Config{BoardWidth: 16, BoardHeight: 16, StartLength: 2, MovesPerSec: 10}, 1)
	g.Food = Cell{X: 15, Y: 15}
	head := g.Snake.Head()

	g.QueueDirection(DirLeft)
	g.Step()

	require.Equal(t, Cell{X: head.X + 1, Y: head.Y}, g.Snake.Head())
	require.Equal(t, DirRight, g.Dir())
}

func TestQueueDirectionAppliesOnNextTickOnly(t *testing.T) {
	g := testGame(Config{BoardWidth: 16, BoardHeight: 16, StartLength: 2, MovesPerSec: 10}, 1)
	g.Food = Cell{X: 15, Y: 15}
	head := g.Snake.Head()

	g.QueueDirection(DirUp)
	require.Equal(t, DirRight, g.Dir())

	g.Step()
	require.Equal(t, Cell{X: head.X, Y: head.Y - 1}, g.Snake.Head())
	require.Equal(t, DirUp, g.Dir())
}

func TestQueueDirectionLastInputBeforeTickWins(t *testing.T) {
	g := testGame(Config{BoardWidth: 16, BoardHeight: 16, StartLength: 2, MovesPerSec: 10}, 1)
	g.Food = Cell{X: 15, Y: 15}
	head := g.Snake.Head()

	// Two inputs within one tick: the reversal is judged against the
	// direction moved last tick, not against the queued one.
	g.QueueDirection(DirUp)
	g.QueueDirection(DirDown)
	g.Step()

	require.Equal(t, Cell{X: head.X, Y: head.Y + 1}, g.Snake.Head())
	require.Equal(t, DirDown, g.Dir())
}

func TestEatingEveryFifthFoodSpeedsUp(t *testing.T) {
	g := testGame(Config{BoardWidth: 40, BoardHeight: 10, StartLength: 1, MovesPerSec: 10}, 1)

	for i := 1; i <= SpeedupEvery; i++ {
		g.Food = g.Snake.Head().Translate(DirRight)
		g.FoodActive = true
		res := g.Step()

		require.True(t, res.Ate)
		if i == SpeedupEvery {
			require.True(t, res.SpedUp)
		} else {
			require.False(t, res.SpedUp)
			require.Equal(t, 10, g.MovesPerSec)
		}
	}

	require.Equal(t, 10+SpeedupAmount, g.MovesPerSec)
	require.Equal(t, SpeedupEvery, g.FoodEaten)
	require.Equal(t, SpeedupEvery*ScorePerFood, g.Score)
	require.Equal(t, 1+SpeedupEvery, g.Snake.Len())
}

func TestSpeedupStopsAtMaximum(t *testing.T) {
	g := testGame(Config{BoardWidth: 40, BoardHeight: 10, StartLength: 1, MovesPerSec: MaxMovesPerSec}, 1)

	for i := 0; i < SpeedupEvery; i++ {
		g.Food = g.Snake.Head().Translate(DirRight)
		g.FoodActive = true
		res := g.Step()
		require.False(t, res.SpedUp)
	}

	require.Equal(t, MaxMovesPerSec, g.MovesPerSec)
}

func TestFoodNeverLandsOnSnake(t *testing.T) {
	g := testGame(Config{BoardWidth: 40, BoardHeight: 10, StartLength: 1, MovesPerSec: 10}, 42)

	for i := 0; i < 15; i++ {
		g.Food = g.Snake.Head().Translate(DirRight)
		g.FoodActive = true
		res := g.Step()

		require.True(t, res.Ate)
		require.True(t, g.FoodActive)
		require.False(t, g.Snake.Occupies(g.Food))
	}
}

func TestFoodDeactivatesWhenBoardIsFull(t *testing.T) {
	g := testGame(Config{BoardWidth: 8, BoardHeight: 8, StartLength: 1, MovesPerSec: 10}, 1)

	body := make([]Cell, 0, g.Board.Area())
	for y := 0; y < g.Board.Height; y++ {
		for x := 0; x < g.Board.Width; x++ {
			body = append(body, Cell{X: x, Y: y})
		}
	}
	g.Snake = &Snake{Body: body}

	g.placeFood()

	require.False(t, g.FoodActive)
}

func TestPauseFreezesTheGame(t *testing.T) {
	g := testGame(Config{BoardWidth: 16, BoardHeight: 16, StartLength: 2, MovesPerSec: 10}, 1)
	g.Food = Cell{X: 15, Y: 15}
	body := append([]Cell(nil), g.Snake.Body...)

	g.TogglePause()
	require.Equal(t, StatePaused, g.State)

	require.Equal(t, StepResult{}, g.Step())
	require.Equal(t, body, g.Snake.Body)

	// Direction input is ignored while paused.
	g.QueueDirection(DirUp)
	g.TogglePause()
	require.Equal(t, StateRunning, g.State)

	res := g.Step()
	require.True(t, res.Moved)
	require.Equal(t, DirRight, g.Dir())
}

func TestTogglePauseKeepsFinishedGamesFinished(t *testing.T) {
	g := testGame(Config{BoardWidth: 8, BoardHeight: 8, StartLength: 1, MovesPerSec: 10}, 1)
	setSnake(g, DirLeft, Cell{X: 0, Y: 4})
	g.Step()

	require.Equal(t, StateGameOver, g.State)
	g.TogglePause()
	require.Equal(t, StateGameOver, g.State)
}

func TestAdjustSpeedClampsToLegalRange(t *testing.T) {
	g := testGame(DefaultConfig(), 1)

	g.AdjustSpeed(1000)
	require.Equal(t, MaxMovesPerSec, g.MovesPerSec)

	g.AdjustSpeed(-1000)
	require.Equal(t, MinMovesPerSec, g.MovesPerSec)

	g.AdjustSpeed(4)
	require.Equal(t, MinMovesPerSec+4, g.MovesPerSec)
}

func TestResetStartsFreshRunButKeepsSpeed(t *testing.T) {
	g := testGame(Config{BoardWidth: 16, BoardHeight: 16, StartLength: 3, MovesPerSec: 10}, 1)

	g.AdjustSpeed(5)
	setSnake(g, DirLeft, Cell{X: 0, Y: 4})
	g.Score = 12
	g.Step()
	require.Equal(t, StateGameOver, g.State)

	g.Reset()

	require.Equal(t, StateRunning, g.State)
	require.Equal(t, DeathCauseNone, g.Cause)
	require.Zero(t, g.Score)
	require.Zero(t, g.FoodEaten)
	require.Equal(t, 3, g.Snake.Len())
	require.Equal(t, g.Board.Center(), g.Snake.Head())
	require.Equal(t, DirRight, g.Dir())
	require.Equal(t, 15, g.MovesPerSec)
	require.True(t, g.FoodActive)
	require.False(t, g.Snake.Occupies(g.Food))
}

func TestNewGameClampsConfig(t *testing.T) {
	g := testGame(Config{BoardWidth: 1, BoardHeight: 1, StartLength: 100, MovesPerSec: 500}, 1)

	require.Equal(t, MinBoardSide, g.Board.Width)
	require.Equal(t, MinBoardSide, g.Board.Height)
	require.Equal(t, MaxMovesPerSec, g.MovesPerSec)
	require.LessOrEqual(t, g.Snake.Len(), MinBoardSide/2+1)

	for _, c := range g.Snake.Body {
		require.True(t, g.Board.Contains(c))
	}
}

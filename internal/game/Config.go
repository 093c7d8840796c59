package game

// Defaults for a fresh run. The board is wider than tall because a
// terminal cell is roughly twice as tall as it is wide.
const (
	DefaultBoardWidth  = 32
	DefaultBoardHeight = 16
	DefaultStartLength = 4
	DefaultMovesPerSec = 10

	ScorePerFood  = 1
	SpeedupEvery  = 5
	SpeedupAmount = 1

	MinBoardSide   = 8
	MinMovesPerSec = 1
	MaxMovesPerSec = 60
)

// Config carries the per-run parameters. Out-of-range values are clamped
// when the game is created.
type Config struct {
	BoardWidth  int
	BoardHeight int
	StartLength int
	MovesPerSec int
}

// DefaultConfig returns the classic arcade setup.
func DefaultConfig() Config {
	return Config{
		BoardWidth:  DefaultBoardWidth,
		BoardHeight: DefaultBoardHeight,
		StartLength: DefaultStartLength,
		MovesPerSec: DefaultMovesPerSec,
	}
}

// normalized clamps every field to its legal range. The start length is
// capped so the spawned snake fits between the center and the left wall.
func (c Config) normalized() Config {
	c.BoardWidth = max(c.BoardWidth, MinBoardSide)
	c.BoardHeight = max(c.BoardHeight, MinBoardSide)
	c.MovesPerSec = min(max(c.MovesPerSec, MinMovesPerSec), MaxMovesPerSec)
	if c.StartLength < 1 {
		c.StartLength = DefaultStartLength
	}
	c.StartLength = min(c.StartLength, c.BoardWidth/2+1)
	return c
}

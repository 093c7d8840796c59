package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDirectionDelta(t *testing.T) {
	cases := []struct {
		dir    Direction
		dx, dy int
	}{
		{DirUp, 0, -1},
		{DirDown, 0, 1},
		{DirLeft, -1, 0},
		{DirRight, 1, 0},
	}

	for _, tc := range cases {
		dx, dy := tc.dir.Delta()
		require.Equal(t, tc.dx, dx, tc.dir.String())
		require.Equal(t, tc.dy, dy, tc.dir.String())
	}
}

func TestDirectionOppositeIsInvolution(t *testing.T) {
	for _, d := range []Direction{DirUp, DirDown, DirLeft, DirRight} {
		require.NotEqual(t, d, d.Opposite())
		require.Equal(t, d, d.Opposite().Opposite())
	}
}

func TestCellTranslate(t *testing.T) {
	c := Cell{X: 3, Y: 3}

	require.Equal(t, Cell{X: 3, Y: 2}, c.Translate(DirUp))
	require.Equal(t, Cell{X: 3, Y: 4}, c.Translate(DirDown))
	require.Equal(t, Cell{X: 2, Y: 3}, c.Translate(DirLeft))
	require.Equal(t, Cell{X: 4, Y: 3}, c.Translate(DirRight))
}

func TestBoardContains(t *testing.T) {
	b := Board{Width: 4, Height: 3}

	require.True(t, b.Contains(Cell{X: 0, Y: 0}))
	require.True(t, b.Contains(Cell{X: 3, Y: 2}))
	require.False(t, b.Contains(Cell{X: -1, Y: 0}))
	require.False(t, b.Contains(Cell{X: 4, Y: 0}))
	require.False(t, b.Contains(Cell{X: 0, Y: -1}))
	require.False(t, b.Contains(Cell{X: 0, Y: 3}))
}

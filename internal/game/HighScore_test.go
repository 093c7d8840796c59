package game

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func testHighScoreService(t *testing.T) *HighScoreService {
	t.Helper()
	svc, err := NewHighScoreService(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	t.Cleanup(func() { svc.Close() })
	return svc
}

func TestHighScoreSaveAndGet(t *testing.T) {
	svc := testHighScoreService(t)

	require.NoError(t, svc.SaveHighScore("ana", 12, 16, 11))
	require.NoError(t, svc.SaveHighScore("bo", 30, 34, 14))
	require.NoError(t, svc.SaveHighScore("cy", 5, 9, 10))

	scores, err := svc.GetHighScores(10, 0)
	require.NoError(t, err)
	require.Len(t, scores, 3)

	require.Equal(t, "bo", scores[0].PlayerName)
	require.Equal(t, 30, scores[0].Points)
	require.Equal(t, 34, scores[0].SnakeLength)
	require.Equal(t, 14, scores[0].Speed)
	require.False(t, scores[0].CreatedAt.IsZero())

	require.Equal(t, "ana", scores[1].PlayerName)
	require.Equal(t, "cy", scores[2].PlayerName)

	count, err := svc.GetTotalScoreCount()
	require.NoError(t, err)
	require.Equal(t, 3, count)
}

func TestHighScoreTieGoesToLongerSnake(t *testing.T) {
	svc := testHighScoreService(t)

	require.NoError(t, svc.SaveHighScore("short", 20, 10, 10))
	require.NoError(t, svc.SaveHighScore("long", 20, 24, 10))

	scores, err := svc.GetHighScores(10, 0)
	require.NoError(t, err)
	require.Len(t, scores, 2)
	require.Equal(t, "long", scores[0].PlayerName)
	require.Equal(t, "short", scores[1].PlayerName)
}

func TestHighScorePagination(t *testing.T) {
	svc := testHighScoreService(t)

	names := []string{"p1", "p2", "p3", "p4", "p5"}
	for i, name := range names {
		require.NoError(t, svc.SaveHighScore(name, (5-i)*10, 4, 10))
	}

	page, err := svc.GetHighScores(2, 2)
	require.NoError(t, err)
	require.Len(t, page, 2)
	require.Equal(t, "p3", page[0].PlayerName)
	require.Equal(t, "p4", page[1].PlayerName)
}

func TestHighScoreEmptyTable(t *testing.T) {
	svc := testHighScoreService(t)

	scores, err := svc.GetHighScores(10, 0)
	require.NoError(t, err)
	require.Empty(t, scores)

	count, err := svc.GetTotalScoreCount()
	require.NoError(t, err)
	require.Zero(t, count)
}

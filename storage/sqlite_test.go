package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "nested", "scores.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenCreatesFile(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "a", "b", "scores.db")

	store, err := Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	_, err = os.Stat(dbPath)
	assert.NoError(t, err)
}

func TestStoreTopScoresOrdering(t *testing.T) {
	store := openTestStore(t)

	for _, s := range []int{100, 50, 200} {
		_, err := store.SaveScore("01_tower", s, OutcomeDied)
		require.NoError(t, err)
	}
	_, err := store.SaveScore("02_icefall", 500, OutcomeFinished)
	require.NoError(t, err)

	scores, err := store.TopScores("01_tower", 10)
	require.NoError(t, err)
	require.Len(t, scores, 3)
	assert.Equal(t, 200, scores[0].Score)
	assert.Equal(t, 100, scores[1].Score)
	assert.Equal(t, 50, scores[2].Score)
	assert.Equal(t, OutcomeDied, scores[0].Outcome)

	limited, err := store.TopScores("01_tower", 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("01_tower")
	require.NoError(t, err)
	assert.Equal(t, 0, high)

	_, err = store.SaveScore("01_tower", 130, OutcomeFinished)
	require.NoError(t, err)
	_, err = store.SaveScore("01_tower", 20, OutcomeDied)
	require.NoError(t, err)

	high, err = store.HighScore("01_tower")
	require.NoError(t, err)
	assert.Equal(t, 130, high)
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	_, _ = store.SaveScore("02_icefall", 10, OutcomeDied)
	_, _ = store.SaveScore("01_tower", 110, OutcomeFinished)
	_, _ = store.SaveScore("01_tower", 40, OutcomeDied)

	stats, err := store.Stats()
	require.NoError(t, err)
	assert.Equal(t, []LevelStats{
		{Level: "01_tower", Runs: 2, Finishes: 1, HighScore: 110},
		{Level: "02_icefall", Runs: 1, Finishes: 0, HighScore: 10},
	}, stats)
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	_, _ = store.SaveScore("01_tower", 10, OutcomeDied)
	require.NoError(t, store.ClearScores("01_tower"))

	scores, err := store.TopScores("01_tower", 10)
	require.NoError(t, err)
	assert.Empty(t, scores)
}

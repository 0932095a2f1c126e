package storage

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func save(t *testing.T, s *Store, gameID string, score int, status string) {
	t.Helper()
	_, err := s.SaveRound(RoundResult{GameID: gameID, Score: score, Status: status, Pellets: score / 10, Total: 180})
	require.NoError(t, err)
}

func TestStoreOpenCreatesNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	_, err = os.Stat(dbPath)
	assert.NoError(t, err)
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	roundID := uuid.New()
	id, err := store.SaveRound(RoundResult{
		RoundID: roundID,
		GameID:  "pacman",
		Score:   1230,
		Status:  StatusWon,
		Pellets: 180,
		Total:   180,
		Ticks:   5400,
		Seed:    42,
	})
	require.NoError(t, err)
	assert.Positive(t, id)

	got, err := store.RoundByID(roundID)
	require.NoError(t, err)
	assert.Equal(t, id, got.ID)
	assert.Equal(t, roundID, got.RoundID)
	assert.Equal(t, "pacman", got.GameID)
	assert.Equal(t, 1230, got.Score)
	assert.Equal(t, StatusWon, got.Status)
	assert.Equal(t, 180, got.Pellets)
	assert.Equal(t, 180, got.Total)
	assert.Equal(t, uint64(5400), got.Ticks)
	assert.Equal(t, int64(42), got.Seed)
	assert.False(t, got.CreatedAt.IsZero())

	_, err = store.RoundByID(uuid.New())
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestStoreAssignsRoundID(t *testing.T) {
	store := openTestStore(t)
	save(t, store, "pacman", 10, StatusLost)
	save(t, store, "pacman", 20, StatusLost)

	rounds, err := store.RecentRounds("pacman", 10)
	require.NoError(t, err)
	require.Len(t, rounds, 2)
	assert.NotEqual(t, uuid.Nil, rounds[0].RoundID)
	assert.NotEqual(t, rounds[0].RoundID, rounds[1].RoundID)

	// Newest first
	assert.Equal(t, 20, rounds[0].Score)
}

func TestStoreTopScores(t *testing.T) {
	store := openTestStore(t)
	for i := 0; i < 5; i++ {
		save(t, store, "pacman", (i+1)*100, StatusLost)
	}
	save(t, store, "other", 10_000, StatusWon)

	scores, err := store.TopScores("pacman", 3)
	require.NoError(t, err)
	require.Len(t, scores, 3)
	assert.Equal(t, 500, scores[0].Score)
	assert.Equal(t, 400, scores[1].Score)
	assert.Equal(t, 300, scores[2].Score)

	// Non-positive limits fall back to 10
	scores, err = store.TopScores("pacman", 0)
	require.NoError(t, err)
	assert.Len(t, scores, 5)
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("pacman")
	require.NoError(t, err)
	assert.Zero(t, high)

	save(t, store, "pacman", 100, StatusLost)
	save(t, store, "pacman", 300, StatusWon)
	save(t, store, "pacman", 200, StatusLost)

	high, err = store.HighScore("pacman")
	require.NoError(t, err)
	assert.Equal(t, 300, high)
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)
	save(t, store, "pacman", 100, StatusLost)
	save(t, store, "pacman", 200, StatusLost)
	save(t, store, "other", 300, StatusLost)

	require.NoError(t, store.ClearScores("pacman"))

	scores, err := store.TopScores("pacman", 10)
	require.NoError(t, err)
	assert.Empty(t, scores)

	scores, err = store.TopScores("other", 10)
	require.NoError(t, err)
	assert.Len(t, scores, 1)
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("pacman")
	require.NoError(t, err)
	assert.Zero(t, empty.Rounds)
	assert.Zero(t, empty.WinRate())
	assert.True(t, empty.LastPlayed.IsZero())

	save(t, store, "pacman", 100, StatusLost)
	save(t, store, "pacman", 300, StatusWon)
	save(t, store, "pacman", 200, StatusLost)
	save(t, store, "pacman", 0, StatusQuit)

	stats, err := store.GetGameStats("pacman")
	require.NoError(t, err)
	assert.Equal(t, 4, stats.Rounds)
	assert.Equal(t, 1, stats.Wins)
	assert.Equal(t, 2, stats.Losses)
	assert.Equal(t, 300, stats.HighScore)
	assert.InDelta(t, 150.0, stats.AvgScore, 1e-9)
	assert.Equal(t, int64(600), stats.TotalScore)
	assert.Equal(t, int64(60), stats.Pellets)
	assert.InDelta(t, 0.25, stats.WinRate(), 1e-9)
	assert.False(t, stats.LastPlayed.IsZero())
}

package persistence

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/lifeform/internal/stats"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func sampleSummary(world string, n int) stats.Summary {
	return stats.Summary{
		WorldName:     world,
		RunID:         fmt.Sprintf("run-%d", n),
		Epochs:        200,
		TotalEntities: 150 + n,
		AliveAtEnd:    80 + n,
		Struggling:    10,
		Thriving:      25,
		Deaths:        70,
		Births:        30 + n,
		Disasters:     2,
		Mutations:     40,
		MaxEntities:   160,
	}
}

func TestAppendAndLoadRuns(t *testing.T) {
	db := openTestDB(t)

	for i := 0; i < 4; i++ {
		require.NoError(t, db.AppendRun(sampleSummary("default", i)))
	}

	runs, err := db.LastRuns(3)
	require.NoError(t, err)
	require.Len(t, runs, 3)

	// Newest first.
	assert.Equal(t, "run-3", runs[0].RunID)
	assert.Equal(t, "run-1", runs[2].RunID)
	assert.Equal(t, 83, runs[0].AliveAtEnd)
	assert.Equal(t, "default", runs[0].WorldName)
	assert.NotZero(t, runs[0].ID)
}

func TestLastRunsOnEmptyStore(t *testing.T) {
	db := openTestDB(t)
	runs, err := db.LastRuns(5)
	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestRunsForWorld(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, db.AppendRun(sampleSummary("garden_world", 1)))
	require.NoError(t, db.AppendRun(sampleSummary("harsh_world", 2)))
	require.NoError(t, db.AppendRun(sampleSummary("garden_world", 3)))

	runs, err := db.RunsForWorld("garden_world")
	require.NoError(t, err)
	require.Len(t, runs, 2)

	// Oldest first.
	assert.Equal(t, "run-1", runs[0].RunID)
	assert.Equal(t, "run-3", runs[1].RunID)

	none, err := db.RunsForWorld("entropy_world")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reopen.db")

	db, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, db.AppendRun(sampleSummary("default", 1)))
	require.NoError(t, db.Close())

	db, err = Open(path)
	require.NoError(t, err)
	defer db.Close()

	runs, err := db.LastRuns(10)
	require.NoError(t, err)
	assert.Len(t, runs, 1)
}

package db

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDB(t *testing.T) *DB {
	t.Helper()
	database, err := New(filepath.Join(t.TempDir(), "vmm.db"))
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return database
}

func TestNew_CreatesDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vmm.db")
	database, err := New(path)
	require.NoError(t, err)
	defer database.Close()

	var version int
	err = database.QueryRow("SELECT MAX(version) FROM schema_migrations").Scan(&version)
	require.NoError(t, err)
	assert.Equal(t, 1, version)
}

func TestNew_MigrationsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vmm.db")

	first, err := New(path)
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second, err := New(path)
	require.NoError(t, err)
	defer second.Close()

	var count int
	require.NoError(t, second.QueryRow("SELECT COUNT(*) FROM schema_migrations").Scan(&count))
	assert.Equal(t, 1, count)
}

func TestRecordAndRecentApplyRuns(t *testing.T) {
	database := testDB(t)

	base := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	runs := []ApplyRun{
		{
			ID:         uuid.NewString(),
			StartedAt:  base,
			FinishedAt: base.Add(5 * time.Second),
			Mods:       []string{"better_kits", "audio-pack"},
			Outcome:    OutcomeSuccess,
		},
		{
			ID:         uuid.NewString(),
			StartedAt:  base.Add(time.Minute),
			FinishedAt: base.Add(time.Minute + 2*time.Second),
			Mods:       []string{"better_kits"},
			Outcome:    OutcomeMergeFailed,
			Error:      "violacli returned error",
		},
	}
	for i := range runs {
		require.NoError(t, database.RecordApplyRun(&runs[i]))
	}

	got, err := database.RecentApplyRuns(10)
	require.NoError(t, err)
	require.Len(t, got, 2)

	// Newest first
	assert.Equal(t, runs[1].ID, got[0].ID)
	assert.Equal(t, OutcomeMergeFailed, got[0].Outcome)
	assert.Equal(t, "violacli returned error", got[0].Error)
	assert.Equal(t, []string{"better_kits"}, got[0].Mods)

	assert.Equal(t, runs[0].ID, got[1].ID)
	assert.Equal(t, []string{"better_kits", "audio-pack"}, got[1].Mods)
	assert.Empty(t, got[1].Error)
}

func TestRecentApplyRuns_Limit(t *testing.T) {
	database := testDB(t)

	base := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		run := ApplyRun{
			ID:         uuid.NewString(),
			StartedAt:  base.Add(time.Duration(i) * time.Minute),
			FinishedAt: base.Add(time.Duration(i)*time.Minute + time.Second),
			Outcome:    OutcomeRestored,
		}
		require.NoError(t, database.RecordApplyRun(&run))
	}

	got, err := database.RecentApplyRuns(3)
	require.NoError(t, err)
	assert.Len(t, got, 3)
}

func TestRecentApplyRuns_Empty(t *testing.T) {
	database := testDB(t)

	got, err := database.RecentApplyRuns(10)
	require.NoError(t, err)
	assert.Empty(t, got)
}

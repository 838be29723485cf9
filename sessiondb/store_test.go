package sessiondb

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/andesnlp/garbler/dataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildReport(t *testing.T, count int) *dataset.Report {
	t.Helper()
	cfg := dataset.DefaultConfig()
	cfg.Count = count
	cfg.Seed = 5
	cfg.MaxConcurrency = 2

	b, err := dataset.NewBuilder(cfg, nil)
	require.NoError(t, err)
	report, err := b.Build(context.Background())
	require.NoError(t, err)
	return report
}

// TestStore_RecordAndQuery persists a real build report and reads it
// back.
func TestStore_RecordAndQuery(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "sessions.db"))
	require.NoError(t, err)
	defer store.Close()

	report := buildReport(t, 10)
	require.NoError(t, store.Record(report))

	sessions, err := store.Sessions()
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, report.SessionID, sessions[0].ID)
	assert.Equal(t, int64(5), sessions[0].Seed)
	assert.Equal(t, 10, sessions[0].ExampleCount)
	assert.Equal(t, report.Overall.Total, sessions[0].SpansTotal)
	assert.Equal(t, report.Overall.Preserved, sessions[0].SpansPreserved)

	n, err := store.OutcomeCount(report.SessionID)
	require.NoError(t, err)
	assert.Equal(t, 10, n)
}

// TestStore_DuplicateSessionRejected verifies the primary key holds and
// the failed transaction leaves no partial rows.
func TestStore_DuplicateSessionRejected(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "sessions.db"))
	require.NoError(t, err)
	defer store.Close()

	report := buildReport(t, 3)
	require.NoError(t, store.Record(report))
	assert.Error(t, store.Record(report), "same session id twice")

	n, err := store.OutcomeCount(report.SessionID)
	require.NoError(t, err)
	assert.Equal(t, 3, n, "no duplicate outcome rows from the rolled-back tx")
}

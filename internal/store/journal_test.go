package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestJournal(t *testing.T) *Journal {
	t.Helper()
	j, err := Open(filepath.Join(t.TempDir(), "journal.db"))
	require.NoError(t, err)
	return j
}

func TestJournalRecordAndRecent(t *testing.T) {
	j := openTestJournal(t)
	ctx := context.Background()

	require.NoError(t, j.Record(ctx, 1, "INV-1", "thermal", nil))
	require.NoError(t, j.Record(ctx, 2, "INV-2", "thermal", errors.New("paper jam")))
	require.NoError(t, j.Record(ctx, 1, "INV-1", "text", nil))

	records, err := j.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, records, 3)

	// Newest first.
	assert.Equal(t, "text", records[0].Surface)
	assert.Equal(t, StatusFailed, records[1].Status)
	assert.Equal(t, "paper jam", records[1].Error)
	assert.Equal(t, StatusPrinted, records[2].Status)
	assert.Empty(t, records[2].Error)
}

func TestJournalRecentLimit(t *testing.T) {
	j := openTestJournal(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, j.Record(ctx, int64(i), "INV", "thermal", nil))
	}

	records, err := j.Recent(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, records, 2)

	records, err = j.Recent(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, records, 5, "non-positive limit falls back to default")
}

func TestJournalForSale(t *testing.T) {
	j := openTestJournal(t)
	ctx := context.Background()

	require.NoError(t, j.Record(ctx, 7, "INV-7", "thermal", nil))
	require.NoError(t, j.Record(ctx, 8, "INV-8", "thermal", nil))
	require.NoError(t, j.Record(ctx, 7, "INV-7", "text", nil))

	records, err := j.ForSale(ctx, 7)
	require.NoError(t, err)
	require.Len(t, records, 2)
	for _, rec := range records {
		assert.Equal(t, int64(7), rec.SaleID)
	}
}

func TestJournalInMemory(t *testing.T) {
	j, err := Open(":memory:")
	require.NoError(t, err)
	require.NoError(t, j.Record(context.Background(), 1, "INV-1", "thermal", nil))

	records, err := j.Recent(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

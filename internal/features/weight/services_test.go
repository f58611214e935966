package weight

import (
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestService(t *testing.T) *WeightService {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&WeightEntry{}))
	return NewWeightService(db)
}

func TestUpsertCreatesThenOverwrites(t *testing.T) {
	svc := newTestService(t)
	userID := uuid.New()

	first, err := svc.Upsert(userID, "2026-08-10", 82.5)
	require.NoError(t, err)
	assert.Equal(t, 82.5, first.Weight)

	second, err := svc.Upsert(userID, "2026-08-10", 81.9)
	require.NoError(t, err)
	assert.Equal(t, 81.9, second.Weight)
	assert.Equal(t, first.ID, second.ID)

	entries, err := svc.List(userID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 81.9, entries[0].Weight)
}

func TestUpsertSeparateDatesAndUsers(t *testing.T) {
	svc := newTestService(t)
	alice := uuid.New()
	bob := uuid.New()

	_, err := svc.Upsert(alice, "2026-08-10", 82.5)
	require.NoError(t, err)
	_, err = svc.Upsert(alice, "2026-08-11", 82.1)
	require.NoError(t, err)
	_, err = svc.Upsert(bob, "2026-08-10", 90.0)
	require.NoError(t, err)

	entries, err := svc.List(alice)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	// Newest first.
	assert.Equal(t, "2026-08-11", entries[0].Date)
	assert.Equal(t, "2026-08-10", entries[1].Date)
}

func TestLatestAndHistory(t *testing.T) {
	svc := newTestService(t)
	userID := uuid.New()

	for i, w := range []float64{84, 83.5, 83, 82.5} {
		date := []string{"2026-08-01", "2026-08-03", "2026-08-05", "2026-08-07"}[i]
		_, err := svc.Upsert(userID, date, w)
		require.NoError(t, err)
	}

	latest, err := svc.Latest(userID)
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, "2026-08-07", latest.Date)

	history, err := svc.History(userID, 3)
	require.NoError(t, err)
	require.Len(t, history, 3)
	// Oldest-to-newest among the most recent three.
	assert.Equal(t, "2026-08-03", history[0].Date)
	assert.Equal(t, "2026-08-05", history[1].Date)
	assert.Equal(t, "2026-08-07", history[2].Date)
}

func TestLatestEmpty(t *testing.T) {
	svc := newTestService(t)

	latest, err := svc.Latest(uuid.New())
	require.NoError(t, err)
	assert.Nil(t, latest)
}

func TestDeleteScopedToOwner(t *testing.T) {
	svc := newTestService(t)
	alice := uuid.New()
	bob := uuid.New()

	entry, err := svc.Upsert(alice, "2026-08-10", 82.5)
	require.NoError(t, err)

	// Bob cannot delete Alice's entry; the failure looks like not-found.
	err = svc.Delete(bob, entry.ID)
	assert.ErrorIs(t, err, ErrEntryNotFound)

	entries, err := svc.List(alice)
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	require.NoError(t, svc.Delete(alice, entry.ID))
	err = svc.Delete(alice, entry.ID)
	assert.ErrorIs(t, err, ErrEntryNotFound)
}

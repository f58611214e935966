package photos

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

func newTestService(t *testing.T) *PhotoService {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&ProgressPhoto{}))
	return NewPhotoService(db)
}

func TestCreateAndGetRoundtrip(t *testing.T) {
	svc := newTestService(t)
	userID := uuid.New()

	created, err := svc.Create(userID, &CreatePhotoRequest{
		Date:        "2026-08-10",
		PhotoBase64: "aGVsbG8gd29ybGQ=",
		Note:        "week 4",
	})
	require.NoError(t, err)

	photo, err := svc.Get(userID, created.ID)
	require.NoError(t, err)
	// Payload is stored verbatim.
	assert.Equal(t, "aGVsbG8gd29ybGQ=", photo.PhotoBase64)
	assert.Equal(t, "week 4", photo.Note)
}

func TestListOmitsPayload(t *testing.T) {
	svc := newTestService(t)
	userID := uuid.New()

	_, err := svc.Create(userID, &CreatePhotoRequest{Date: "2026-08-10", PhotoBase64: "YQ==", Note: "front"})
	require.NoError(t, err)
	_, err = svc.Create(userID, &CreatePhotoRequest{Date: "2026-08-17", PhotoBase64: "Yg==", Note: "side"})
	require.NoError(t, err)

	summaries, err := svc.List(userID)
	require.NoError(t, err)
	require.Len(t, summaries, 2)
	assert.Equal(t, "2026-08-17", summaries[0].Date)
	assert.Equal(t, "side", summaries[0].Note)
	assert.Equal(t, "2026-08-10", summaries[1].Date)
}

func TestGetScopedToOwner(t *testing.T) {
	svc := newTestService(t)
	alice := uuid.New()
	bob := uuid.New()

	created, err := svc.Create(alice, &CreatePhotoRequest{Date: "2026-08-10", PhotoBase64: "YQ=="})
	require.NoError(t, err)

	_, err = svc.Get(bob, created.ID)
	assert.ErrorIs(t, err, ErrPhotoNotFound)

	_, err = svc.Get(alice, uuid.New())
	assert.ErrorIs(t, err, ErrPhotoNotFound)
}

func TestDelete(t *testing.T) {
	svc := newTestService(t)
	alice := uuid.New()
	bob := uuid.New()

	created, err := svc.Create(alice, &CreatePhotoRequest{Date: "2026-08-10", PhotoBase64: "YQ=="})
	require.NoError(t, err)

	err = svc.Delete(bob, created.ID)
	assert.ErrorIs(t, err, ErrPhotoNotFound)

	require.NoError(t, svc.Delete(alice, created.ID))

	_, err = svc.Get(alice, created.ID)
	assert.ErrorIs(t, err, ErrPhotoNotFound)
	err = svc.Delete(alice, created.ID)
	assert.ErrorIs(t, err, ErrPhotoNotFound)
}

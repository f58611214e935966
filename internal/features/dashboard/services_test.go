package dashboard

import (
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/trackfit/backend/internal/features"
	"github.com/trackfit/backend/internal/features/water"
	"github.com/trackfit/backend/internal/features/weight"
	"github.com/trackfit/backend/internal/features/workouts"
	"github.com/trackfit/backend/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&water.WaterIntake{},
		&weight.WeightEntry{},
		&workouts.WorkoutLog{},
	))
	return db
}

func createUser(t *testing.T, db *gorm.DB) uuid.UUID {
	t.Helper()
	user := models.User{
		ID:       uuid.New(),
		Name:     "Test User",
		Email:    uuid.NewString() + "@example.com",
		Password: "irrelevant",
	}
	require.NoError(t, db.Create(&user).Error)
	return user.ID
}

func TestSnapshotEmptyUser(t *testing.T) {
	db := newTestDB(t)
	svc := NewDashboardService(db)
	userID := createUser(t, db)

	snap, err := svc.Snapshot(userID)
	require.NoError(t, err)

	assert.Equal(t, userID, snap.User.ID)
	assert.Equal(t, features.Today(), snap.Today)
	// Untracked water shows the zero default.
	assert.Equal(t, 0, snap.Water.Glasses)
	assert.Equal(t, water.DefaultGoal, snap.Water.Goal)
	assert.Nil(t, snap.LatestWeight)
	assert.Empty(t, snap.WeightHistory)
	assert.Equal(t, int64(0), snap.WorkoutsThisWeek)
}

func TestSnapshotUnknownUser(t *testing.T) {
	svc := NewDashboardService(newTestDB(t))

	_, err := svc.Snapshot(uuid.New())
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestSnapshotComposesReads(t *testing.T) {
	db := newTestDB(t)
	svc := NewDashboardService(db)
	userID := createUser(t, db)
	today := features.Today()

	waterSvc := water.NewWaterService(db)
	_, err := waterSvc.Add(userID, today)
	require.NoError(t, err)
	_, err = waterSvc.Add(userID, today)
	require.NoError(t, err)

	weightSvc := weight.NewWeightService(db)
	_, err = weightSvc.Upsert(userID, "2020-01-05", 84)
	require.NoError(t, err)
	_, err = weightSvc.Upsert(userID, today, 82.5)
	require.NoError(t, err)

	workoutSvc := workouts.NewWorkoutService(db)
	_, err = workoutSvc.CreateLog(userID, &workouts.CreateLogRequest{Date: features.WeekStart()})
	require.NoError(t, err)
	_, err = workoutSvc.CreateLog(userID, &workouts.CreateLogRequest{Date: today})
	require.NoError(t, err)
	// Before this week's Monday: out of the count.
	_, err = workoutSvc.CreateLog(userID, &workouts.CreateLogRequest{Date: "2020-01-01"})
	require.NoError(t, err)

	snap, err := svc.Snapshot(userID)
	require.NoError(t, err)

	assert.Equal(t, 2, snap.Water.Glasses)
	require.NotNil(t, snap.LatestWeight)
	assert.Equal(t, today, snap.LatestWeight.Date)
	assert.Equal(t, 82.5, snap.LatestWeight.Weight)
	require.Len(t, snap.WeightHistory, 2)
	// History runs oldest to newest.
	assert.Equal(t, "2020-01-05", snap.WeightHistory[0].Date)
	assert.Equal(t, today, snap.WeightHistory[1].Date)
	assert.Equal(t, int64(2), snap.WorkoutsThisWeek)
}

package workouts

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&WorkoutPlan{}, &WorkoutLog{}))
	return db
}

func TestSeedWorkoutPlans(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, SeedWorkoutPlans(db))

	svc := NewWorkoutService(db)
	plans, err := svc.ListPlans()
	require.NoError(t, err)
	require.Len(t, plans, 3)

	// Catalog order follows training frequency.
	assert.Equal(t, "beginner-full-body", plans[0].ID)
	assert.Equal(t, "advanced-power", plans[1].ID)
	assert.Equal(t, "intermediate-ppl", plans[2].ID)
}

func TestSeedIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, SeedWorkoutPlans(db))
	require.NoError(t, SeedWorkoutPlans(db))

	var count int64
	require.NoError(t, db.Model(&WorkoutPlan{}).Count(&count).Error)
	assert.Equal(t, int64(3), count)
}

func TestGetPlanDaysDecode(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, SeedWorkoutPlans(db))
	svc := NewWorkoutService(db)

	plan, err := svc.GetPlan("beginner-full-body")
	require.NoError(t, err)
	assert.Equal(t, "Full Body Foundation", plan.Name)
	assert.Equal(t, 3, plan.DaysPerWeek)

	var days []PlanDay
	require.NoError(t, json.Unmarshal(plan.Days, &days))
	require.Len(t, days, 3)
	assert.Equal(t, 1, days[0].Day)
	assert.NotEmpty(t, days[0].Exercises)
}

func TestGetPlanUnknown(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, SeedWorkoutPlans(db))
	svc := NewWorkoutService(db)

	_, err := svc.GetPlan("no-such-plan")
	assert.ErrorIs(t, err, ErrPlanNotFound)
}

func TestCreateAndListLogs(t *testing.T) {
	svc := NewWorkoutService(newTestDB(t))
	userID := uuid.New()

	exercises := json.RawMessage(`[{"name":"Squat","sets":3,"reps":"5","weight_kg":100}]`)
	created, err := svc.CreateLog(userID, &CreateLogRequest{
		Date:      "2026-08-10",
		PlanName:  "Full Body Foundation",
		DayName:   "Full Body A",
		Exercises: exercises,
	})
	require.NoError(t, err)
	assert.Equal(t, userID, created.UserID)
	assert.JSONEq(t, string(exercises), string(created.Exercises))

	_, err = svc.CreateLog(userID, &CreateLogRequest{Date: "2026-08-12"})
	require.NoError(t, err)

	logs, err := svc.ListLogs(userID)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, "2026-08-12", logs[0].Date)
	assert.Equal(t, "2026-08-10", logs[1].Date)
}

func TestCreateLogDefaultsExercises(t *testing.T) {
	svc := NewWorkoutService(newTestDB(t))

	log, err := svc.CreateLog(uuid.New(), &CreateLogRequest{Date: "2026-08-10"})
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(log.Exercises))
}

func TestCountLogsSince(t *testing.T) {
	svc := NewWorkoutService(newTestDB(t))
	userID := uuid.New()

	for _, date := range []string{"2026-08-03", "2026-08-09", "2026-08-10", "2026-08-11"} {
		_, err := svc.CreateLog(userID, &CreateLogRequest{Date: date})
		require.NoError(t, err)
	}
	_, err := svc.CreateLog(uuid.New(), &CreateLogRequest{Date: "2026-08-11"})
	require.NoError(t, err)

	count, err := svc.CountLogsSince(userID, "2026-08-10")
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

package dashboard

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/trackfit/backend/internal/features"
	"github.com/trackfit/backend/internal/features/water"
	"github.com/trackfit/backend/internal/features/weight"
	"github.com/trackfit/backend/internal/features/workouts"
	"github.com/trackfit/backend/internal/models"
	"gorm.io/gorm"
)

var ErrUserNotFound = errors.New("user not found")

// DashboardService composes the per-resource services into one read.
type DashboardService struct {
	db             *gorm.DB
	waterService   *water.WaterService
	weightService  *weight.WeightService
	workoutService *workouts.WorkoutService
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{
		db:             db,
		waterService:   water.NewWaterService(db),
		weightService:  weight.NewWeightService(db),
		workoutService: workouts.NewWorkoutService(db),
	}
}

// Snapshot gathers today's counters and recent history for one user.
func (s *DashboardService) Snapshot(userID uuid.UUID) (*Snapshot, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		return nil, ErrUserNotFound
	}

	today := features.Today()

	intake, err := s.waterService.Get(userID, today)
	if err != nil {
		return nil, fmt.Errorf("failed to read water counter: %w", err)
	}

	latest, err := s.weightService.Latest(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to read latest weight: %w", err)
	}

	history, err := s.weightService.History(userID, 7)
	if err != nil {
		return nil, fmt.Errorf("failed to read weight history: %w", err)
	}

	workoutCount, err := s.workoutService.CountLogsSince(userID, features.WeekStart())
	if err != nil {
		return nil, fmt.Errorf("failed to count workouts: %w", err)
	}

	return &Snapshot{
		User:             &user,
		Water:            intake,
		LatestWeight:     latest,
		WeightHistory:    history,
		WorkoutsThisWeek: workoutCount,
		Today:            today,
	}, nil
}

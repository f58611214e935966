package workouts

import (
	"github.com/gofiber/fiber/v2"
	"github.com/trackfit/backend/internal/config"
	"gorm.io/gorm"
)

type WorkoutsFeature struct{}

func New() *WorkoutsFeature {
	return &WorkoutsFeature{}
}

func (f *WorkoutsFeature) ID() string { return "workouts" }

func (f *WorkoutsFeature) Models() []interface{} {
	return []interface{}{
		&WorkoutPlan{},
		&WorkoutLog{},
	}
}

// Seed loads the plan catalog on an empty table.
func (f *WorkoutsFeature) Seed(db *gorm.DB) error {
	return SeedWorkoutPlans(db)
}

func (f *WorkoutsFeature) RegisterRoutes(router fiber.Router, guard fiber.Handler, db *gorm.DB, cfg *config.Config) {
	svc := NewWorkoutService(db)
	handler := NewWorkoutHandler(svc)

	// The plan catalog is public, logs are caller-scoped.
	router.Get("/workout-plans", handler.ListPlans)
	router.Get("/workout-plans/:id", handler.GetPlan)
	router.Get("/workout-logs", guard, handler.ListLogs)
	router.Post("/workout-logs", guard, handler.CreateLog)
}

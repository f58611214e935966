package dashboard

import (
	"github.com/trackfit/backend/internal/features/water"
	"github.com/trackfit/backend/internal/features/weight"
	"github.com/trackfit/backend/internal/models"
)

// Snapshot is the aggregate home-screen view. The sub-reads behind it are
// independent, so a concurrent write can land between them; the snapshot is
// not a consistent point in time.
type Snapshot struct {
	User             *models.User         `json:"user"`
	Water            *water.WaterIntake   `json:"water"`
	LatestWeight     *weight.WeightEntry  `json:"latest_weight"`
	WeightHistory    []weight.WeightEntry `json:"weight_history"`
	WorkoutsThisWeek int64                `json:"workouts_this_week"`
	Today            string               `json:"today"`
}

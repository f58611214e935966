package workouts

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// WorkoutPlan is one entry of the static plan catalog. Ids are stable slugs
// so clients can deep-link plans. Days holds the ordered day definitions as a
// JSON document.
type WorkoutPlan struct {
	ID            string         `gorm:"primaryKey;size:100" json:"id"`
	Name          string         `gorm:"size:255;not null" json:"name"`
	Level         string         `gorm:"size:20" json:"level"`
	Description   string         `gorm:"type:text" json:"description"`
	DaysPerWeek   int            `json:"days_per_week"`
	DurationWeeks int            `json:"duration_weeks"`
	Days          datatypes.JSON `json:"days"`
}

// PlanDay and PlanExercise describe the document stored in WorkoutPlan.Days.
type PlanDay struct {
	Day       int            `json:"day"`
	Name      string         `json:"name"`
	Exercises []PlanExercise `json:"exercises"`
}

type PlanExercise struct {
	Name        string  `json:"name"`
	Sets        int     `json:"sets"`
	Reps        string  `json:"reps"`
	WeightKg    float64 `json:"weight_kg"`
	MuscleGroup string  `json:"muscle_group"`
	RestSeconds int     `json:"rest_seconds"`
	Notes       string  `json:"notes"`
}

// WorkoutLog records one finished session. Exercise records are freeform and
// stored as submitted.
type WorkoutLog struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;index:idx_workout_logs_user_date,priority:1" json:"user_id"`
	Date      string         `gorm:"size:10;not null;index:idx_workout_logs_user_date,priority:2,sort:desc" json:"date"`
	PlanName  string         `gorm:"size:255" json:"plan_name"`
	DayName   string         `gorm:"size:255" json:"day_name"`
	Exercises datatypes.JSON `json:"exercises"`
	CreatedAt time.Time      `json:"created_at"`
}

// --- DTOs ---

type CreateLogRequest struct {
	Date      string          `json:"date"`
	PlanName  string          `json:"plan_name"`
	DayName   string          `json:"day_name"`
	Exercises json.RawMessage `json:"exercises"`
}

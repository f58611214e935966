package water

import "github.com/google/uuid"

// DefaultGoal is the daily glass target handed out with fresh counters.
const DefaultGoal = 8

// WaterIntake counts glasses drunk on one calendar date. Rows are created
// lazily on the first increment; a date with no row reads as a zero counter.
type WaterIntake struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_water_intake_user_date,priority:1" json:"user_id"`
	Date    string    `gorm:"size:10;not null;uniqueIndex:idx_water_intake_user_date,priority:2" json:"date"`
	Glasses int       `gorm:"not null;default:0" json:"glasses"`
	Goal    int       `gorm:"not null;default:8" json:"goal"`
}

// --- DTOs ---

type ActionRequest struct {
	Date string `json:"date"`
}

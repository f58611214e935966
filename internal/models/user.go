package models

import (
	"time"

	"github.com/google/uuid"
)

// User is the account record. Profile fields are nullable until the user fills
// them in; Password never serializes.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Email     string    `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	HeightCm  *float64  `json:"height_cm"`
	WeightKg  *float64  `json:"weight_kg"`
	Age       *int      `json:"age"`
	Gender    *string   `gorm:"size:20" json:"gender"`
	Goal      *string   `gorm:"size:50" json:"goal"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`
}

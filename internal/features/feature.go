package features

import (
	"github.com/gofiber/fiber/v2"
	"github.com/trackfit/backend/internal/config"
	"gorm.io/gorm"
)

// Feature defines the interface every resource area must implement.
type Feature interface {
	// ID returns the unique feature identifier.
	ID() string

	// Models returns the list of GORM model pointers for AutoMigrate.
	Models() []interface{}

	// RegisterRoutes mounts the feature's routes on the given Fiber group.
	// The group is already prefixed with /api; routes that require a caller
	// identity must apply the provided auth guard, public routes skip it.
	RegisterRoutes(router fiber.Router, guard fiber.Handler, db *gorm.DB, cfg *config.Config)
}

// Seeder is implemented by features that need baseline data present before
// serving traffic. Seeding must be idempotent.
type Seeder interface {
	Feature

	Seed(db *gorm.DB) error
}

package dashboard

import (
	"github.com/gofiber/fiber/v2"
	"github.com/trackfit/backend/internal/config"
	"gorm.io/gorm"
)

type DashboardFeature struct{}

func New() *DashboardFeature {
	return &DashboardFeature{}
}

func (f *DashboardFeature) ID() string { return "dashboard" }

// Models returns nil: the dashboard reads other features' tables.
func (f *DashboardFeature) Models() []interface{} {
	return nil
}

func (f *DashboardFeature) RegisterRoutes(router fiber.Router, guard fiber.Handler, db *gorm.DB, cfg *config.Config) {
	svc := NewDashboardService(db)
	handler := NewDashboardHandler(svc)

	router.Get("/dashboard", guard, handler.Get)
}

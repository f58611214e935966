package water

import (
	"github.com/gofiber/fiber/v2"
	"github.com/trackfit/backend/internal/config"
	"gorm.io/gorm"
)

type WaterFeature struct{}

func New() *WaterFeature {
	return &WaterFeature{}
}

func (f *WaterFeature) ID() string { return "water" }

func (f *WaterFeature) Models() []interface{} {
	return []interface{}{
		&WaterIntake{},
	}
}

func (f *WaterFeature) RegisterRoutes(router fiber.Router, guard fiber.Handler, db *gorm.DB, cfg *config.Config) {
	svc := NewWaterService(db)
	handler := NewWaterHandler(svc)

	router.Get("/water-intake", guard, handler.Get)
	router.Post("/water-intake/add", guard, handler.Add)
	router.Post("/water-intake/remove", guard, handler.Remove)
}

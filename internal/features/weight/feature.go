package weight

import (
	"github.com/gofiber/fiber/v2"
	"github.com/trackfit/backend/internal/config"
	"gorm.io/gorm"
)

type WeightFeature struct{}

func New() *WeightFeature {
	return &WeightFeature{}
}

func (f *WeightFeature) ID() string { return "weight" }

func (f *WeightFeature) Models() []interface{} {
	return []interface{}{
		&WeightEntry{},
	}
}

func (f *WeightFeature) RegisterRoutes(router fiber.Router, guard fiber.Handler, db *gorm.DB, cfg *config.Config) {
	svc := NewWeightService(db)
	handler := NewWeightHandler(svc)

	router.Get("/weight-entries", guard, handler.List)
	router.Post("/weight-entries", guard, handler.Upsert)
	router.Delete("/weight-entries/:id", guard, handler.Delete)
}

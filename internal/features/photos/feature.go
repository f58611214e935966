package photos

import (
	"github.com/gofiber/fiber/v2"
	"github.com/trackfit/backend/internal/config"
	"gorm.io/gorm"
)

type PhotosFeature struct{}

func New() *PhotosFeature {
	return &PhotosFeature{}
}

func (f *PhotosFeature) ID() string { return "photos" }

func (f *PhotosFeature) Models() []interface{} {
	return []interface{}{
		&ProgressPhoto{},
	}
}

func (f *PhotosFeature) RegisterRoutes(router fiber.Router, guard fiber.Handler, db *gorm.DB, cfg *config.Config) {
	svc := NewPhotoService(db)
	handler := NewPhotoHandler(svc)

	router.Get("/progress-photos", guard, handler.List)
	router.Post("/progress-photos", guard, handler.Create)
	router.Get("/progress-photos/:id", guard, handler.Get)
	router.Delete("/progress-photos/:id", guard, handler.Delete)
}

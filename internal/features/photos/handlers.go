package photos

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/trackfit/backend/internal/auth"
	"github.com/trackfit/backend/internal/dto"
	"github.com/trackfit/backend/internal/features"
)

type PhotoHandler struct {
	photoService *PhotoService
}

func NewPhotoHandler(photoService *PhotoService) *PhotoHandler {
	return &PhotoHandler{photoService: photoService}
}

// Create handles POST /progress-photos. The response acknowledges the upload
// without echoing the image payload back.
func (h *PhotoHandler) Create(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req CreatePhotoRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}
	if req.PhotoBase64 == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "photo_base64 is required",
		})
	}
	if !features.ValidDate(req.Date) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "date must be YYYY-MM-DD",
		})
	}

	photo, err := h.photoService.Create(userID, &req)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to save progress photo",
		})
	}

	return c.JSON(CreatePhotoResponse{
		ID:        photo.ID,
		Date:      photo.Date,
		Note:      photo.Note,
		CreatedAt: photo.CreatedAt,
		HasPhoto:  true,
	})
}

// List handles GET /progress-photos - payload omitted.
func (h *PhotoHandler) List(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	photoList, err := h.photoService.List(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to list progress photos",
		})
	}
	return c.JSON(photoList)
}

// Get handles GET /progress-photos/:id - payload included.
func (h *PhotoHandler) Get(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	photoID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "Photo not found",
		})
	}

	photo, err := h.photoService.Get(userID, photoID)
	if err != nil {
		if errors.Is(err, ErrPhotoNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Photo not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch progress photo",
		})
	}
	return c.JSON(photo)
}

// Delete handles DELETE /progress-photos/:id.
func (h *PhotoHandler) Delete(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	photoID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "Photo not found",
		})
	}

	if err := h.photoService.Delete(userID, photoID); err != nil {
		if errors.Is(err, ErrPhotoNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Photo not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to delete progress photo",
		})
	}

	return c.JSON(fiber.Map{"status": "deleted"})
}

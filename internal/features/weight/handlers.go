package weight

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/trackfit/backend/internal/auth"
	"github.com/trackfit/backend/internal/dto"
	"github.com/trackfit/backend/internal/features"
)

type WeightHandler struct {
	weightService *WeightService
}

func NewWeightHandler(weightService *WeightService) *WeightHandler {
	return &WeightHandler{weightService: weightService}
}

// List handles GET /weight-entries.
func (h *WeightHandler) List(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	entries, err := h.weightService.List(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to list weight entries",
		})
	}

	return c.JSON(entries)
}

// Upsert handles POST /weight-entries - one entry per (user, date).
func (h *WeightHandler) Upsert(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req UpsertEntryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}
	if !features.ValidDate(req.Date) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "date must be YYYY-MM-DD",
		})
	}
	if req.Weight <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "weight must be positive",
		})
	}

	entry, err := h.weightService.Upsert(userID, req.Date, req.Weight)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to save weight entry",
		})
	}

	return c.JSON(entry)
}

// Delete handles DELETE /weight-entries/:id. An unparsable id can't match any
// entry, so it reports the same not-found as a foreign or absent one.
func (h *WeightHandler) Delete(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	entryID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "Entry not found",
		})
	}

	if err := h.weightService.Delete(userID, entryID); err != nil {
		if errors.Is(err, ErrEntryNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Entry not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to delete weight entry",
		})
	}

	return c.JSON(fiber.Map{"status": "deleted"})
}

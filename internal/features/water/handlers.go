package water

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/trackfit/backend/internal/auth"
	"github.com/trackfit/backend/internal/dto"
	"github.com/trackfit/backend/internal/features"
)

type WaterHandler struct {
	waterService *WaterService
}

func NewWaterHandler(waterService *WaterService) *WaterHandler {
	return &WaterHandler{waterService: waterService}
}

// Get handles GET /water-intake?date=YYYY-MM-DD.
func (h *WaterHandler) Get(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	date := c.Query("date")
	if !features.ValidDate(date) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "date must be YYYY-MM-DD",
		})
	}

	intake, err := h.waterService.Get(userID, date)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch water intake",
		})
	}

	return c.JSON(intake)
}

// Add handles POST /water-intake/add.
func (h *WaterHandler) Add(c *fiber.Ctx) error {
	return h.adjust(c, func(userID uuid.UUID, date string) (*WaterIntake, error) {
		return h.waterService.Add(userID, date)
	})
}

// Remove handles POST /water-intake/remove.
func (h *WaterHandler) Remove(c *fiber.Ctx) error {
	return h.adjust(c, func(userID uuid.UUID, date string) (*WaterIntake, error) {
		return h.waterService.Remove(userID, date)
	})
}

func (h *WaterHandler) adjust(c *fiber.Ctx, op func(uuid.UUID, string) (*WaterIntake, error)) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req ActionRequest
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

	intake, err := op(userID, req.Date)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to update water intake",
		})
	}

	return c.JSON(intake)
}

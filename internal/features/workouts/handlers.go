package workouts

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/trackfit/backend/internal/auth"
	"github.com/trackfit/backend/internal/dto"
	"github.com/trackfit/backend/internal/features"
)

type WorkoutHandler struct {
	workoutService *WorkoutService
}

func NewWorkoutHandler(workoutService *WorkoutService) *WorkoutHandler {
	return &WorkoutHandler{workoutService: workoutService}
}

// ListPlans handles GET /workout-plans (public).
func (h *WorkoutHandler) ListPlans(c *fiber.Ctx) error {
	plans, err := h.workoutService.ListPlans()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to list workout plans",
		})
	}
	return c.JSON(plans)
}

// GetPlan handles GET /workout-plans/:id (public).
func (h *WorkoutHandler) GetPlan(c *fiber.Ctx) error {
	plan, err := h.workoutService.GetPlan(c.Params("id"))
	if err != nil {
		if errors.Is(err, ErrPlanNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Plan not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch workout plan",
		})
	}
	return c.JSON(plan)
}

// ListLogs handles GET /workout-logs.
func (h *WorkoutHandler) ListLogs(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	logs, err := h.workoutService.ListLogs(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to list workout logs",
		})
	}
	return c.JSON(logs)
}

// CreateLog handles POST /workout-logs.
func (h *WorkoutHandler) CreateLog(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req CreateLogRequest
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

	log, err := h.workoutService.CreateLog(userID, &req)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to create workout log",
		})
	}
	return c.JSON(log)
}

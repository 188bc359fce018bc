package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/nbbaier/smartrecipe/internal/database"
	"github.com/nbbaier/smartrecipe/internal/middleware"
	"github.com/nbbaier/smartrecipe/internal/models"
)

// ListLeftovers returns the user's leftovers, soonest-expiring first
func (h *Handler) ListLeftovers(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	if userID == 0 {
		return Error(c, fiber.StatusUnauthorized, "unauthorized")
	}

	leftovers, err := h.db.ListLeftovers(c.Context(), userID)
	if err != nil {
		return Error(c, fiber.StatusInternalServerError, "failed to list leftovers")
	}

	return Success(c, leftovers)
}

// GetLeftover returns a single leftover
func (h *Handler) GetLeftover(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	if userID == 0 {
		return Error(c, fiber.StatusUnauthorized, "unauthorized")
	}

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return Error(c, fiber.StatusBadRequest, "invalid leftover ID")
	}

	leftover, err := h.db.GetLeftoverByID(c.Context(), id, userID)
	if err != nil {
		return h.leftoverError(c, err)
	}

	return Success(c, leftover)
}

// CreateLeftover stores a cooked dish
func (h *Handler) CreateLeftover(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	if userID == 0 {
		return Error(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var req models.CreateLeftoverRequest
	if err := c.BodyParser(&req); err != nil {
		return Error(c, fiber.StatusBadRequest, "invalid request body")
	}

	if req.Name == "" {
		return Error(c, fiber.StatusBadRequest, "name is required")
	}
	if req.Quantity < 0 {
		return Error(c, fiber.StatusBadRequest, "quantity cannot be negative")
	}

	leftover, err := h.db.CreateLeftover(c.Context(), &req, userID)
	if err != nil {
		return Error(c, fiber.StatusInternalServerError, "failed to create leftover")
	}

	return c.Status(fiber.StatusCreated).JSON(APIResponse{Success: true, Data: leftover})
}

// UpdateLeftover updates a leftover
func (h *Handler) UpdateLeftover(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	if userID == 0 {
		return Error(c, fiber.StatusUnauthorized, "unauthorized")
	}

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return Error(c, fiber.StatusBadRequest, "invalid leftover ID")
	}

	var req models.UpdateLeftoverRequest
	if err := c.BodyParser(&req); err != nil {
		return Error(c, fiber.StatusBadRequest, "invalid request body")
	}

	leftover, err := h.db.UpdateLeftover(c.Context(), id, userID, &req)
	if err != nil {
		return h.leftoverError(c, err)
	}

	return Success(c, leftover)
}

// DeleteLeftover removes a leftover
func (h *Handler) DeleteLeftover(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	if userID == 0 {
		return Error(c, fiber.StatusUnauthorized, "unauthorized")
	}

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return Error(c, fiber.StatusBadRequest, "invalid leftover ID")
	}

	if err := h.db.DeleteLeftover(c.Context(), id, userID); err != nil {
		return h.leftoverError(c, err)
	}

	return Success(c, fiber.Map{"deleted": true})
}

func (h *Handler) leftoverError(c *fiber.Ctx, err error) error {
	if errors.Is(err, database.ErrLeftoverNotFound) {
		return Error(c, fiber.StatusNotFound, "leftover not found")
	}
	if errors.Is(err, database.ErrNotLeftoverOwner) {
		return Error(c, fiber.StatusForbidden, "access denied")
	}
	return Error(c, fiber.StatusInternalServerError, "leftover operation failed")
}

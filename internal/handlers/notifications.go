package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/nbbaier/smartrecipe/internal/middleware"
	"github.com/nbbaier/smartrecipe/internal/suggest"
)

// GetNotifications returns expiration alerts for pantry items and
// leftovers. Alerts are computed on demand from the current inventory;
// nothing is stored.
func (h *Handler) GetNotifications(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	if userID == 0 {
		return Error(c, fiber.StatusUnauthorized, "unauthorized")
	}

	pantry, err := h.db.GetAllPantryItems(c.Context(), userID)
	if err != nil {
		return Error(c, fiber.StatusInternalServerError, "failed to load pantry")
	}

	leftovers, err := h.db.ListLeftovers(c.Context(), userID)
	if err != nil {
		return Error(c, fiber.StatusInternalServerError, "failed to load leftovers")
	}

	t := h.userThresholds(c, userID)
	today := time.Now()

	notifications := suggest.ComposeNotifications(today, pantryPerishables(pantry), suggest.KindIngredient, t)
	notifications = append(notifications,
		suggest.ComposeNotifications(today, leftoverPerishables(leftovers), suggest.KindLeftover, t)...)

	return Success(c, notifications)
}

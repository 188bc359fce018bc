package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/nbbaier/smartrecipe/internal/database"
	"github.com/nbbaier/smartrecipe/internal/middleware"
	"github.com/nbbaier/smartrecipe/internal/models"
)

// GetPreferences returns the user's saved preferences
func (h *Handler) GetPreferences(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	if userID == 0 {
		return Error(c, fiber.StatusUnauthorized, "unauthorized")
	}

	prefs, err := h.db.GetPreferences(c.Context(), userID)
	if err != nil {
		if errors.Is(err, database.ErrPreferencesNotFound) {
			return Error(c, fiber.StatusNotFound, "preferences not set")
		}
		return Error(c, fiber.StatusInternalServerError, "failed to get preferences")
	}

	return Success(c, prefs)
}

// UpsertPreferences creates or replaces the user's preferences
func (h *Handler) UpsertPreferences(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	if userID == 0 {
		return Error(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var req models.UpsertPreferencesRequest
	if err := c.BodyParser(&req); err != nil {
		return Error(c, fiber.StatusBadRequest, "invalid request body")
	}

	if !validSkillLevel(req.CookingSkillLevel) {
		return Error(c, fiber.StatusBadRequest, "cooking_skill_level must be Beginner, Intermediate, Advanced or Expert")
	}

	if err := validThresholdOverrides(&req); err != nil {
		return Error(c, fiber.StatusBadRequest, err.Error())
	}

	prefs, err := h.db.UpsertPreferences(c.Context(), userID, &req)
	if err != nil {
		return Error(c, fiber.StatusInternalServerError, "failed to save preferences")
	}

	return Success(c, prefs)
}

// DeletePreferences clears the user's preferences, restoring default
// behavior
func (h *Handler) DeletePreferences(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	if userID == 0 {
		return Error(c, fiber.StatusUnauthorized, "unauthorized")
	}

	if err := h.db.DeletePreferences(c.Context(), userID); err != nil {
		return Error(c, fiber.StatusInternalServerError, "failed to delete preferences")
	}

	return Success(c, fiber.Map{"deleted": true})
}

func validSkillLevel(s models.SkillLevel) bool {
	switch s {
	case models.SkillBeginner, models.SkillIntermediate, models.SkillAdvanced, models.SkillExpert:
		return true
	}
	return false
}

func validThresholdOverrides(req *models.UpsertPreferencesRequest) error {
	critical, warning, upcoming := 3, 7, 14
	if req.CriticalDays != nil {
		critical = *req.CriticalDays
	}
	if req.WarningDays != nil {
		warning = *req.WarningDays
	}
	if req.UpcomingDays != nil {
		upcoming = *req.UpcomingDays
	}

	if critical < 1 {
		return errors.New("critical_days must be at least 1")
	}
	if warning <= critical {
		return errors.New("warning_days must be greater than critical_days")
	}
	if upcoming <= warning {
		return errors.New("upcoming_days must be greater than warning_days")
	}
	return nil
}

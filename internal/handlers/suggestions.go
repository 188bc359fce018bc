package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/nbbaier/smartrecipe/internal/middleware"
	"github.com/nbbaier/smartrecipe/internal/models"
	"github.com/nbbaier/smartrecipe/internal/suggest"
)

// GetSuggestions runs a suggestion pass over the user's pantry and the
// recipe catalog. Suggestions are recomputed on every call; only
// dismissals persist.
func (h *Handler) GetSuggestions(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	if userID == 0 {
		return Error(c, fiber.StatusUnauthorized, "unauthorized")
	}

	pantry, err := h.db.GetAllPantryItems(c.Context(), userID)
	if err != nil {
		return Error(c, fiber.StatusInternalServerError, "failed to load pantry")
	}

	recipes, err := h.db.GetAllRecipes(c.Context())
	if err != nil {
		return Error(c, fiber.StatusInternalServerError, "failed to load recipes")
	}

	ingredientNames, err := h.db.AllRecipeIngredientNames(c.Context())
	if err != nil {
		return Error(c, fiber.StatusInternalServerError, "failed to load recipe ingredients")
	}

	dismissed, err := h.db.GetDismissedSuggestionIDs(c.Context(), userID)
	if err != nil {
		return Error(c, fiber.StatusInternalServerError, "failed to load dismissals")
	}

	prefs, _ := h.db.GetPreferences(c.Context(), userID)

	limit := c.QueryInt("limit", h.cfg.SuggestionLimit)
	if limit < 1 || limit > 50 {
		limit = h.cfg.SuggestionLimit
	}

	in := suggest.Input{
		Today:       time.Now(),
		Recipes:     engineRecipes(recipes, ingredientNames),
		Pantry:      pantryPerishables(pantry),
		Preferences: enginePrefs(prefs),
		Thresholds:  prefThresholds(prefs),
		Limit:       limit,
		Dismissed:   dismissed,
	}

	suggestions := suggest.Suggest(in)
	if suggestions == nil {
		suggestions = []suggest.Suggestion{}
	}

	return Success(c, suggestions)
}

// DismissSuggestion hides one suggestion until its dismissals are
// cleared
func (h *Handler) DismissSuggestion(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	if userID == 0 {
		return Error(c, fiber.StatusUnauthorized, "unauthorized")
	}

	suggestionID := c.Params("id")
	if suggestionID == "" {
		return Error(c, fiber.StatusBadRequest, "invalid suggestion ID")
	}

	if err := h.db.DismissSuggestion(c.Context(), userID, suggestionID); err != nil {
		return Error(c, fiber.StatusInternalServerError, "failed to dismiss suggestion")
	}

	return Success(c, fiber.Map{"dismissed": true})
}

// ClearDismissedSuggestions brings every dismissed suggestion back
func (h *Handler) ClearDismissedSuggestions(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	if userID == 0 {
		return Error(c, fiber.StatusUnauthorized, "unauthorized")
	}

	if err := h.db.ClearDismissedSuggestions(c.Context(), userID); err != nil {
		return Error(c, fiber.StatusInternalServerError, "failed to clear dismissals")
	}

	return Success(c, fiber.Map{"cleared": true})
}

// userThresholds resolves the user's expiration tiers, falling back to
// the defaults when preferences are absent
func (h *Handler) userThresholds(c *fiber.Ctx, userID int) suggest.Thresholds {
	prefs, err := h.db.GetPreferences(c.Context(), userID)
	if err != nil {
		return suggest.DefaultThresholds()
	}
	return prefThresholds(prefs)
}

func prefThresholds(prefs *models.UserPreferences) suggest.Thresholds {
	t := suggest.DefaultThresholds()
	if prefs == nil {
		return t
	}
	if prefs.CriticalDays > 0 {
		t.CriticalDays = prefs.CriticalDays
	}
	if prefs.WarningDays > 0 {
		t.WarningDays = prefs.WarningDays
	}
	if prefs.UpcomingDays > 0 {
		t.UpcomingDays = prefs.UpcomingDays
	}
	return t
}

func enginePrefs(prefs *models.UserPreferences) *suggest.UserPreferences {
	if prefs == nil {
		return nil
	}
	return &suggest.UserPreferences{
		DietaryRestrictions: prefs.DietaryRestrictions,
		Allergies:           prefs.Allergies,
		CookingSkillLevel:   string(prefs.CookingSkillLevel),
	}
}

func pantryPerishables(items []*models.PantryItem) []suggest.PerishableItem {
	out := make([]suggest.PerishableItem, 0, len(items))
	for _, item := range items {
		p := suggest.PerishableItem{
			ID:        item.ID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			ExpiresAt: item.ExpirationDate,
		}
		if item.Unit != nil {
			p.Unit = *item.Unit
		}
		if item.Category != nil {
			p.Category = *item.Category
		}
		out = append(out, p)
	}
	return out
}

func leftoverPerishables(leftovers []*models.Leftover) []suggest.PerishableItem {
	out := make([]suggest.PerishableItem, 0, len(leftovers))
	for _, l := range leftovers {
		p := suggest.PerishableItem{
			ID:        l.ID,
			Name:      l.Name,
			Quantity:  l.Quantity,
			ExpiresAt: l.ExpirationDate,
		}
		if l.Unit != nil {
			p.Unit = *l.Unit
		}
		out = append(out, p)
	}
	return out
}

func engineRecipes(recipes []*models.Recipe, ingredientNames map[int][]string) []suggest.Recipe {
	out := make([]suggest.Recipe, 0, len(recipes))
	for _, r := range recipes {
		er := suggest.Recipe{
			ID:              r.ID,
			Title:           r.Title,
			PrepTimeMinutes: r.PrepTimeMinutes,
			CookTimeMinutes: r.CookTimeMinutes,
			Servings:        r.Servings,
			Difficulty:      string(r.Difficulty),
			Ingredients:     ingredientNames[r.ID],
		}
		if r.Description != nil {
			er.Description = *r.Description
		}
		if r.CuisineType != nil {
			er.CuisineType = *r.CuisineType
		}
		out = append(out, er)
	}
	return out
}

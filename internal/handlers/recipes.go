package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/nbbaier/smartrecipe/internal/database"
	"github.com/nbbaier/smartrecipe/internal/middleware"
	"github.com/nbbaier/smartrecipe/internal/models"
	"github.com/nbbaier/smartrecipe/internal/suggest"
)

// ListRecipes returns a paginated list of recipes with optional filters
func (h *Handler) ListRecipes(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	if userID == 0 {
		return Error(c, fiber.StatusUnauthorized, "unauthorized")
	}

	params := &models.RecipeListParams{
		UserID:     userID,
		Limit:      c.QueryInt("limit", 20),
		Offset:     c.QueryInt("offset", 0),
		Search:     c.Query("search"),
		Cuisine:    c.Query("cuisine"),
		Difficulty: c.Query("difficulty"),
	}

	if c.Query("bookmarked") == "true" {
		bookmarked := true
		params.Bookmarked = &bookmarked
	}

	if params.Limit < 1 || params.Limit > 100 {
		params.Limit = 20
	}
	if params.Offset < 0 {
		params.Offset = 0
	}

	recipes, total, err := h.db.ListRecipes(c.Context(), params)
	if err != nil {
		return Error(c, fiber.StatusInternalServerError, "failed to list recipes")
	}

	return SuccessWithMeta(c, recipes, total, params.Limit, params.Offset)
}

// GetRecipe returns a single recipe with its ingredients
func (h *Handler) GetRecipe(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	if userID == 0 {
		return Error(c, fiber.StatusUnauthorized, "unauthorized")
	}

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return Error(c, fiber.StatusBadRequest, "invalid recipe ID")
	}

	recipe, err := h.db.GetRecipeByID(c.Context(), id, userID)
	if err != nil {
		return h.recipeError(c, err)
	}

	return Success(c, recipe)
}

// MatchRecipe reports how much of a recipe the user's pantry covers
func (h *Handler) MatchRecipe(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	if userID == 0 {
		return Error(c, fiber.StatusUnauthorized, "unauthorized")
	}

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return Error(c, fiber.StatusBadRequest, "invalid recipe ID")
	}

	if _, err := h.db.GetRecipeByID(c.Context(), id, userID); err != nil {
		return h.recipeError(c, err)
	}

	required, err := h.db.RecipeIngredientNames(c.Context(), id)
	if err != nil {
		return Error(c, fiber.StatusInternalServerError, "failed to load recipe ingredients")
	}

	pantry, err := h.db.GetAllPantryItems(c.Context(), userID)
	if err != nil {
		return Error(c, fiber.StatusInternalServerError, "failed to load pantry")
	}

	pantryNames := make([]string, 0, len(pantry))
	for _, item := range pantry {
		pantryNames = append(pantryNames, item.Name)
	}

	result := suggest.MatchIngredients(required, pantryNames)

	return Success(c, models.RecipeMatch{
		RecipeID:           id,
		MatchPercentage:    result.MatchPercentage,
		MissingIngredients: result.MissingIngredients,
	})
}

// CreateRecipe adds a recipe to the catalog
func (h *Handler) CreateRecipe(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	if userID == 0 {
		return Error(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var req models.CreateRecipeRequest
	if err := c.BodyParser(&req); err != nil {
		return Error(c, fiber.StatusBadRequest, "invalid request body")
	}

	if req.Title == "" {
		return Error(c, fiber.StatusBadRequest, "title is required")
	}
	if req.Servings < 1 {
		req.Servings = 1
	}
	if !validDifficulty(req.Difficulty) {
		return Error(c, fiber.StatusBadRequest, "difficulty must be Easy, Medium or Hard")
	}
	for _, ing := range req.Ingredients {
		if ing.Name == "" {
			return Error(c, fiber.StatusBadRequest, "every ingredient needs a name")
		}
	}

	recipe, err := h.db.CreateRecipe(c.Context(), &req, userID)
	if err != nil {
		return Error(c, fiber.StatusInternalServerError, "failed to create recipe")
	}

	return c.Status(fiber.StatusCreated).JSON(APIResponse{Success: true, Data: recipe})
}

// UpdateRecipe updates a recipe the user created
func (h *Handler) UpdateRecipe(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	if userID == 0 {
		return Error(c, fiber.StatusUnauthorized, "unauthorized")
	}

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return Error(c, fiber.StatusBadRequest, "invalid recipe ID")
	}

	var req models.UpdateRecipeRequest
	if err := c.BodyParser(&req); err != nil {
		return Error(c, fiber.StatusBadRequest, "invalid request body")
	}

	if req.Difficulty != nil && !validDifficulty(*req.Difficulty) {
		return Error(c, fiber.StatusBadRequest, "difficulty must be Easy, Medium or Hard")
	}

	recipe, err := h.db.UpdateRecipe(c.Context(), id, userID, &req)
	if err != nil {
		return h.recipeError(c, err)
	}

	return Success(c, recipe)
}

// DeleteRecipe removes a recipe the user created
func (h *Handler) DeleteRecipe(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	if userID == 0 {
		return Error(c, fiber.StatusUnauthorized, "unauthorized")
	}

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return Error(c, fiber.StatusBadRequest, "invalid recipe ID")
	}

	if err := h.db.DeleteRecipe(c.Context(), id, userID); err != nil {
		return h.recipeError(c, err)
	}

	return Success(c, fiber.Map{"deleted": true})
}

// BookmarkRecipe bookmarks a recipe for the user
func (h *Handler) BookmarkRecipe(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	if userID == 0 {
		return Error(c, fiber.StatusUnauthorized, "unauthorized")
	}

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return Error(c, fiber.StatusBadRequest, "invalid recipe ID")
	}

	if err := h.db.BookmarkRecipe(c.Context(), id, userID); err != nil {
		return h.recipeError(c, err)
	}

	return Success(c, fiber.Map{"bookmarked": true})
}

// UnbookmarkRecipe removes a bookmark
func (h *Handler) UnbookmarkRecipe(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	if userID == 0 {
		return Error(c, fiber.StatusUnauthorized, "unauthorized")
	}

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return Error(c, fiber.StatusBadRequest, "invalid recipe ID")
	}

	if err := h.db.UnbookmarkRecipe(c.Context(), id, userID); err != nil {
		return Error(c, fiber.StatusInternalServerError, "failed to remove bookmark")
	}

	return Success(c, fiber.Map{"bookmarked": false})
}

func (h *Handler) recipeError(c *fiber.Ctx, err error) error {
	if errors.Is(err, database.ErrRecipeNotFound) {
		return Error(c, fiber.StatusNotFound, "recipe not found")
	}
	if errors.Is(err, database.ErrNotRecipeOwner) {
		return Error(c, fiber.StatusForbidden, "access denied")
	}
	return Error(c, fiber.StatusInternalServerError, "recipe operation failed")
}

func validDifficulty(d models.Difficulty) bool {
	switch d {
	case models.DifficultyEasy, models.DifficultyMedium, models.DifficultyHard:
		return true
	}
	return false
}

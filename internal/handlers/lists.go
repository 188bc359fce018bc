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

// ListShoppingLists returns the user's shopping lists
func (h *Handler) ListShoppingLists(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	if userID == 0 {
		return Error(c, fiber.StatusUnauthorized, "unauthorized")
	}

	params := &models.ListListParams{
		UserID: userID,
		Limit:  c.QueryInt("limit", 20),
		Offset: c.QueryInt("offset", 0),
		Status: models.ListStatus(c.Query("status")),
	}

	if params.Limit < 1 || params.Limit > 100 {
		params.Limit = 20
	}
	if params.Offset < 0 {
		params.Offset = 0
	}

	lists, total, err := h.db.ListShoppingLists(c.Context(), params)
	if err != nil {
		return Error(c, fiber.StatusInternalServerError, "failed to list shopping lists")
	}

	return SuccessWithMeta(c, lists, total, params.Limit, params.Offset)
}

// GetShoppingList returns one list with all its items
func (h *Handler) GetShoppingList(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	if userID == 0 {
		return Error(c, fiber.StatusUnauthorized, "unauthorized")
	}

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return Error(c, fiber.StatusBadRequest, "invalid list ID")
	}

	list, err := h.db.GetShoppingListByID(c.Context(), id, userID)
	if err != nil {
		return h.listError(c, err)
	}

	return Success(c, list)
}

// CreateShoppingList creates an empty list
func (h *Handler) CreateShoppingList(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	if userID == 0 {
		return Error(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var req models.CreateListRequest
	if err := c.BodyParser(&req); err != nil {
		return Error(c, fiber.StatusBadRequest, "invalid request body")
	}

	if req.Name == "" {
		return Error(c, fiber.StatusBadRequest, "name is required")
	}

	list, err := h.db.CreateShoppingList(c.Context(), &req, userID)
	if err != nil {
		return Error(c, fiber.StatusInternalServerError, "failed to create shopping list")
	}

	return c.Status(fiber.StatusCreated).JSON(APIResponse{Success: true, Data: list})
}

// UpdateShoppingList updates a list's name, status or target date
func (h *Handler) UpdateShoppingList(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	if userID == 0 {
		return Error(c, fiber.StatusUnauthorized, "unauthorized")
	}

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return Error(c, fiber.StatusBadRequest, "invalid list ID")
	}

	var req models.UpdateListRequest
	if err := c.BodyParser(&req); err != nil {
		return Error(c, fiber.StatusBadRequest, "invalid request body")
	}

	if req.Status != nil && *req.Status != models.ListStatusActive && *req.Status != models.ListStatusCompleted {
		return Error(c, fiber.StatusBadRequest, "status must be active or completed")
	}

	list, err := h.db.UpdateShoppingList(c.Context(), id, userID, &req)
	if err != nil {
		return h.listError(c, err)
	}

	return Success(c, list)
}

// DeleteShoppingList removes a list and its items
func (h *Handler) DeleteShoppingList(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	if userID == 0 {
		return Error(c, fiber.StatusUnauthorized, "unauthorized")
	}

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return Error(c, fiber.StatusBadRequest, "invalid list ID")
	}

	if err := h.db.DeleteShoppingList(c.Context(), id, userID); err != nil {
		return h.listError(c, err)
	}

	return Success(c, fiber.Map{"deleted": true})
}

// AddListItem appends one item to a list
func (h *Handler) AddListItem(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	if userID == 0 {
		return Error(c, fiber.StatusUnauthorized, "unauthorized")
	}

	listID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return Error(c, fiber.StatusBadRequest, "invalid list ID")
	}

	var req models.AddListItemRequest
	if err := c.BodyParser(&req); err != nil {
		return Error(c, fiber.StatusBadRequest, "invalid request body")
	}

	if req.Name == "" {
		return Error(c, fiber.StatusBadRequest, "name is required")
	}
	if req.Quantity <= 0 {
		req.Quantity = 1
	}

	item, err := h.db.AddListItem(c.Context(), listID, userID, &req)
	if err != nil {
		return h.listError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(APIResponse{Success: true, Data: item})
}

// AddMissingIngredients matches a recipe against the pantry and adds
// whatever is missing to the list, skipping items it already carries
func (h *Handler) AddMissingIngredients(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	if userID == 0 {
		return Error(c, fiber.StatusUnauthorized, "unauthorized")
	}

	listID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return Error(c, fiber.StatusBadRequest, "invalid list ID")
	}

	var req models.AddMissingIngredientsRequest
	if err := c.BodyParser(&req); err != nil {
		return Error(c, fiber.StatusBadRequest, "invalid request body")
	}

	if _, err := h.db.GetRecipeByID(c.Context(), req.RecipeID, userID); err != nil {
		if errors.Is(err, database.ErrRecipeNotFound) {
			return Error(c, fiber.StatusNotFound, "recipe not found")
		}
		return Error(c, fiber.StatusInternalServerError, "failed to load recipe")
	}

	required, err := h.db.RecipeIngredientNames(c.Context(), req.RecipeID)
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

	reqs := make([]models.AddListItemRequest, 0, len(result.MissingIngredients))
	for _, name := range result.MissingIngredients {
		reqs = append(reqs, models.AddListItemRequest{Name: name, Quantity: 1})
	}

	added, err := h.db.AddListItems(c.Context(), listID, userID, reqs)
	if err != nil {
		return h.listError(c, err)
	}

	return Success(c, fiber.Map{
		"added":            added,
		"match_percentage": result.MatchPercentage,
	})
}

// UpdateListItem updates one list item (rename, quantity, purchased)
func (h *Handler) UpdateListItem(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	if userID == 0 {
		return Error(c, fiber.StatusUnauthorized, "unauthorized")
	}

	listID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return Error(c, fiber.StatusBadRequest, "invalid list ID")
	}

	itemID, err := strconv.Atoi(c.Params("itemId"))
	if err != nil {
		return Error(c, fiber.StatusBadRequest, "invalid item ID")
	}

	var req models.UpdateListItemRequest
	if err := c.BodyParser(&req); err != nil {
		return Error(c, fiber.StatusBadRequest, "invalid request body")
	}

	item, err := h.db.UpdateListItem(c.Context(), listID, itemID, userID, &req)
	if err != nil {
		return h.listError(c, err)
	}

	return Success(c, item)
}

// DeleteListItem removes one item from a list
func (h *Handler) DeleteListItem(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	if userID == 0 {
		return Error(c, fiber.StatusUnauthorized, "unauthorized")
	}

	listID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return Error(c, fiber.StatusBadRequest, "invalid list ID")
	}

	itemID, err := strconv.Atoi(c.Params("itemId"))
	if err != nil {
		return Error(c, fiber.StatusBadRequest, "invalid item ID")
	}

	if err := h.db.DeleteListItem(c.Context(), listID, itemID, userID); err != nil {
		return h.listError(c, err)
	}

	return Success(c, fiber.Map{"deleted": true})
}

func (h *Handler) listError(c *fiber.Ctx, err error) error {
	if errors.Is(err, database.ErrListNotFound) {
		return Error(c, fiber.StatusNotFound, "shopping list not found")
	}
	if errors.Is(err, database.ErrListItemNotFound) {
		return Error(c, fiber.StatusNotFound, "list item not found")
	}
	if errors.Is(err, database.ErrNotListOwner) {
		return Error(c, fiber.StatusForbidden, "access denied")
	}
	return Error(c, fiber.StatusInternalServerError, "shopping list operation failed")
}

package handlers

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/nbbaier/smartrecipe/internal/database"
	"github.com/nbbaier/smartrecipe/internal/middleware"
	"github.com/nbbaier/smartrecipe/internal/models"
	"github.com/nbbaier/smartrecipe/internal/suggest"
)

// ListPantryItems returns a paginated list of the user's pantry,
// decorated with expiration status
func (h *Handler) ListPantryItems(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	if userID == 0 {
		return Error(c, fiber.StatusUnauthorized, "unauthorized")
	}

	params := &models.PantryListParams{
		UserID:    userID,
		Limit:     c.QueryInt("limit", 50),
		Offset:    c.QueryInt("offset", 0),
		Category:  c.Query("category"),
		Search:    c.Query("search"),
		SortBy:    c.Query("sort_by", "expiration"),
		SortOrder: c.Query("sort_order", "asc"),
	}

	if c.Query("expired") == "true" {
		expired := true
		params.Expired = &expired
	}
	if c.Query("expiring_soon") == "true" {
		soon := true
		params.ExpiringSoon = &soon
	}

	if params.Limit < 1 || params.Limit > 200 {
		params.Limit = 50
	}
	if params.Offset < 0 {
		params.Offset = 0
	}

	items, total, err := h.db.ListPantryItems(c.Context(), params)
	if err != nil {
		return Error(c, fiber.StatusInternalServerError, "failed to list pantry items")
	}

	t := h.userThresholds(c, userID)
	decorated := make([]models.PantryItemWithStatus, 0, len(items))
	today := time.Now()
	for _, item := range items {
		decorated = append(decorated, decoratePantryItem(item, today, t))
	}

	return SuccessWithMeta(c, decorated, total, params.Limit, params.Offset)
}

// GetPantryItem returns a single pantry item
func (h *Handler) GetPantryItem(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	if userID == 0 {
		return Error(c, fiber.StatusUnauthorized, "unauthorized")
	}

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return Error(c, fiber.StatusBadRequest, "invalid item ID")
	}

	item, err := h.db.GetPantryItemByID(c.Context(), id, userID)
	if err != nil {
		return h.pantryError(c, err)
	}

	t := h.userThresholds(c, userID)
	return Success(c, decoratePantryItem(item, time.Now(), t))
}

// CreatePantryItem adds one item to the pantry
func (h *Handler) CreatePantryItem(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	if userID == 0 {
		return Error(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var req models.CreatePantryItemRequest
	if err := c.BodyParser(&req); err != nil {
		return Error(c, fiber.StatusBadRequest, "invalid request body")
	}

	if req.Name == "" {
		return Error(c, fiber.StatusBadRequest, "name is required")
	}
	if req.Quantity < 0 {
		return Error(c, fiber.StatusBadRequest, "quantity cannot be negative")
	}

	item, err := h.db.CreatePantryItem(c.Context(), &req, userID)
	if err != nil {
		return Error(c, fiber.StatusInternalServerError, "failed to create pantry item")
	}

	return c.Status(fiber.StatusCreated).JSON(APIResponse{Success: true, Data: item})
}

// BulkCreatePantryItems adds several items at once, e.g. after a
// confirmed receipt scan
func (h *Handler) BulkCreatePantryItems(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	if userID == 0 {
		return Error(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var req models.BulkCreatePantryItemsRequest
	if err := c.BodyParser(&req); err != nil {
		return Error(c, fiber.StatusBadRequest, "invalid request body")
	}

	if len(req.Items) == 0 {
		return Error(c, fiber.StatusBadRequest, "items are required")
	}
	for _, item := range req.Items {
		if item.Name == "" {
			return Error(c, fiber.StatusBadRequest, "every item needs a name")
		}
	}

	items, err := h.db.CreatePantryItems(c.Context(), req.Items, userID)
	if err != nil {
		return Error(c, fiber.StatusInternalServerError, "failed to create pantry items")
	}

	return c.Status(fiber.StatusCreated).JSON(APIResponse{Success: true, Data: items})
}

// UpdatePantryItem updates a pantry item
func (h *Handler) UpdatePantryItem(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	if userID == 0 {
		return Error(c, fiber.StatusUnauthorized, "unauthorized")
	}

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return Error(c, fiber.StatusBadRequest, "invalid item ID")
	}

	var req models.UpdatePantryItemRequest
	if err := c.BodyParser(&req); err != nil {
		return Error(c, fiber.StatusBadRequest, "invalid request body")
	}

	item, err := h.db.UpdatePantryItem(c.Context(), id, userID, &req)
	if err != nil {
		return h.pantryError(c, err)
	}

	return Success(c, item)
}

// AdjustPantryQuantity adds or subtracts from an item's quantity,
// flooring at zero
func (h *Handler) AdjustPantryQuantity(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	if userID == 0 {
		return Error(c, fiber.StatusUnauthorized, "unauthorized")
	}

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return Error(c, fiber.StatusBadRequest, "invalid item ID")
	}

	var req models.AdjustPantryQuantityRequest
	if err := c.BodyParser(&req); err != nil {
		return Error(c, fiber.StatusBadRequest, "invalid request body")
	}

	item, err := h.db.AdjustPantryQuantity(c.Context(), id, userID, req.Adjustment)
	if err != nil {
		return h.pantryError(c, err)
	}

	return Success(c, item)
}

// DeletePantryItem removes an item from the pantry
func (h *Handler) DeletePantryItem(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	if userID == 0 {
		return Error(c, fiber.StatusUnauthorized, "unauthorized")
	}

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return Error(c, fiber.StatusBadRequest, "invalid item ID")
	}

	if err := h.db.DeletePantryItem(c.Context(), id, userID); err != nil {
		return h.pantryError(c, err)
	}

	return Success(c, fiber.Map{"deleted": true})
}

// GetPantrySummary returns aggregate stats for the pantry dashboard
func (h *Handler) GetPantrySummary(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	if userID == 0 {
		return Error(c, fiber.StatusUnauthorized, "unauthorized")
	}

	t := h.userThresholds(c, userID)
	summary, err := h.db.GetPantrySummary(c.Context(), userID, t.CriticalDays, t.WarningDays)
	if err != nil {
		return Error(c, fiber.StatusInternalServerError, "failed to get pantry summary")
	}

	return Success(c, summary)
}

func (h *Handler) pantryError(c *fiber.Ctx, err error) error {
	if errors.Is(err, database.ErrPantryItemNotFound) {
		return Error(c, fiber.StatusNotFound, "pantry item not found")
	}
	if errors.Is(err, database.ErrNotPantryOwner) {
		return Error(c, fiber.StatusForbidden, "access denied")
	}
	return Error(c, fiber.StatusInternalServerError, "pantry operation failed")
}

func decoratePantryItem(item *models.PantryItem, today time.Time, t suggest.Thresholds) models.PantryItemWithStatus {
	out := models.PantryItemWithStatus{
		PantryItem: *item,
		Bucket:     string(suggest.BucketFresh),
	}
	if item.ExpirationDate != nil {
		daysLeft := suggest.DaysLeft(today, *item.ExpirationDate)
		out.Bucket = string(suggest.Classify(daysLeft, t))
		out.DaysLeft = &daysLeft
	}
	return out
}

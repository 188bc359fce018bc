package models

import (
	"time"
)

type ListStatus string

const (
	ListStatusActive    ListStatus = "active"
	ListStatusCompleted ListStatus = "completed"
)

// ShoppingList represents a user's shopping list
type ShoppingList struct {
	ID          int        `json:"id"`
	UserID      int        `json:"user_id"`
	Name        string     `json:"name"`
	Status      ListStatus `json:"status"`
	TargetDate  *time.Time `json:"target_date,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// ShoppingListItem is one line on a shopping list
type ShoppingListItem struct {
	ID        int       `json:"id"`
	ListID    int       `json:"list_id"`
	Name      string    `json:"name"`
	Quantity  float64   `json:"quantity"`
	Unit      *string   `json:"unit,omitempty"`
	Purchased bool      `json:"purchased"`
	CreatedAt time.Time `json:"created_at"`
}

// ShoppingListSummary is the list-overview row with item counts
type ShoppingListSummary struct {
	ShoppingList
	ItemCount      int `json:"item_count"`
	PurchasedCount int `json:"purchased_count"`
}

// ShoppingListWithItems includes all items for the detail view
type ShoppingListWithItems struct {
	ShoppingList
	Items []ShoppingListItem `json:"items"`
}

// CreateListRequest is the request body for creating a shopping list
type CreateListRequest struct {
	Name       string     `json:"name"`
	TargetDate *time.Time `json:"target_date,omitempty"`
}

// UpdateListRequest is the request body for updating a shopping list
type UpdateListRequest struct {
	Name       *string     `json:"name,omitempty"`
	Status     *ListStatus `json:"status,omitempty"`
	TargetDate *time.Time  `json:"target_date,omitempty"`
}

// AddListItemRequest adds one item to a list
type AddListItemRequest struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     *string `json:"unit,omitempty"`
}

// UpdateListItemRequest updates one list item
type UpdateListItemRequest struct {
	Name      *string  `json:"name,omitempty"`
	Quantity  *float64 `json:"quantity,omitempty"`
	Unit      *string  `json:"unit,omitempty"`
	Purchased *bool    `json:"purchased,omitempty"`
}

// AddMissingIngredientsRequest copies a recipe's missing ingredients
// (per the pantry match) onto a shopping list
type AddMissingIngredientsRequest struct {
	RecipeID int `json:"recipe_id"`
}

// ListListParams contains parameters for listing shopping lists
type ListListParams struct {
	Limit  int
	Offset int
	UserID int
	Status ListStatus
}

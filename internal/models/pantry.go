package models

import (
	"time"
)

// PantryItem represents one ingredient in a user's pantry
type PantryItem struct {
	ID       int     `json:"id"`
	UserID   int     `json:"user_id"`
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     *string `json:"unit,omitempty"`
	Category *string `json:"category,omitempty"`

	// Dates
	PurchaseDate   *time.Time `json:"purchase_date,omitempty"`
	ExpirationDate *time.Time `json:"expiration_date,omitempty"`

	// Organization
	Location *string `json:"location,omitempty"`
	Notes    *string `json:"notes,omitempty"`

	// Timestamps
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PantryItemWithStatus includes computed expiration status for display
type PantryItemWithStatus struct {
	PantryItem

	Bucket   string `json:"bucket"` // expired, critical, warning, upcoming, fresh
	DaysLeft *int   `json:"days_left,omitempty"`
}

// PantrySummary provides aggregate stats for the pantry dashboard
type PantrySummary struct {
	TotalItems       int      `json:"total_items"`
	ExpiredCount     int      `json:"expired_count"`
	CriticalCount    int      `json:"critical_count"`
	WarningCount     int      `json:"warning_count"`
	UniqueCategories []string `json:"unique_categories"`
}

// CreatePantryItemRequest is the request body for adding pantry items
type CreatePantryItemRequest struct {
	Name           string     `json:"name"`
	Quantity       float64    `json:"quantity"`
	Unit           *string    `json:"unit,omitempty"`
	Category       *string    `json:"category,omitempty"`
	PurchaseDate   *time.Time `json:"purchase_date,omitempty"`
	ExpirationDate *time.Time `json:"expiration_date,omitempty"`
	Location       *string    `json:"location,omitempty"`
	Notes          *string    `json:"notes,omitempty"`
}

// UpdatePantryItemRequest is the request body for updating pantry items
type UpdatePantryItemRequest struct {
	Name           *string    `json:"name,omitempty"`
	Quantity       *float64   `json:"quantity,omitempty"`
	Unit           *string    `json:"unit,omitempty"`
	Category       *string    `json:"category,omitempty"`
	PurchaseDate   *time.Time `json:"purchase_date,omitempty"`
	ExpirationDate *time.Time `json:"expiration_date,omitempty"`
	Location       *string    `json:"location,omitempty"`
	Notes          *string    `json:"notes,omitempty"`
}

// PantryListParams contains parameters for listing pantry items
type PantryListParams struct {
	Limit        int
	Offset       int
	UserID       int
	Category     string // Filter by category
	Search       string // Search by name
	Expired      *bool  // Filter for expired items only
	ExpiringSoon *bool  // Filter for items expiring within the warning window
	SortBy       string // "name", "expiration", "quantity", "updated"
	SortOrder    string // "asc" or "desc"
}

// AdjustPantryQuantityRequest for adjusting item quantity
type AdjustPantryQuantityRequest struct {
	Adjustment float64 `json:"adjustment"`
}

// BulkCreatePantryItemsRequest adds several pantry items at once,
// e.g. after a receipt scan is confirmed
type BulkCreatePantryItemsRequest struct {
	Items []CreatePantryItemRequest `json:"items"`
}

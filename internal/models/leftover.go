package models

import (
	"time"
)

// Leftover represents a stored cooked dish
type Leftover struct {
	ID       int     `json:"id"`
	UserID   int     `json:"user_id"`
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     *string `json:"unit,omitempty"`

	// Optional link to the recipe it came from
	RecipeID *int `json:"recipe_id,omitempty"`

	StoredAt       time.Time  `json:"stored_at"`
	ExpirationDate *time.Time `json:"expiration_date,omitempty"`
	Notes          *string    `json:"notes,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateLeftoverRequest is the request body for adding a leftover
type CreateLeftoverRequest struct {
	Name           string     `json:"name"`
	Quantity       float64    `json:"quantity"`
	Unit           *string    `json:"unit,omitempty"`
	RecipeID       *int       `json:"recipe_id,omitempty"`
	StoredAt       *time.Time `json:"stored_at,omitempty"`
	ExpirationDate *time.Time `json:"expiration_date,omitempty"`
	Notes          *string    `json:"notes,omitempty"`
}

// UpdateLeftoverRequest is the request body for updating a leftover
type UpdateLeftoverRequest struct {
	Name           *string    `json:"name,omitempty"`
	Quantity       *float64   `json:"quantity,omitempty"`
	Unit           *string    `json:"unit,omitempty"`
	ExpirationDate *time.Time `json:"expiration_date,omitempty"`
	Notes          *string    `json:"notes,omitempty"`
}

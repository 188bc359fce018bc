package models

import (
	"time"
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// Recipe represents a recipe in the catalog
type Recipe struct {
	ID              int        `json:"id"`
	Title           string     `json:"title"`
	Description     *string    `json:"description,omitempty"`
	PrepTimeMinutes int        `json:"prep_time_minutes"`
	CookTimeMinutes int        `json:"cook_time_minutes"`
	Servings        int        `json:"servings"`
	Difficulty      Difficulty `json:"difficulty"`
	CuisineType     *string    `json:"cuisine_type,omitempty"`
	ImageURL        *string    `json:"image_url,omitempty"`
	CreatedBy       *int       `json:"created_by,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// RecipeIngredient is one required ingredient of a recipe, kept in
// display order
type RecipeIngredient struct {
	ID       int     `json:"id"`
	RecipeID int     `json:"recipe_id"`
	Name     string  `json:"name"`
	Quantity *string `json:"quantity,omitempty"`
	Position int     `json:"position"`
}

// RecipeWithIngredients includes the resolved ingredient list
type RecipeWithIngredients struct {
	Recipe
	Ingredients []RecipeIngredient `json:"ingredients"`
	Bookmarked  bool               `json:"bookmarked"`
}

// RecipeMatch is the "can I cook this" badge data for one recipe
type RecipeMatch struct {
	RecipeID           int      `json:"recipe_id"`
	MatchPercentage    int      `json:"match_percentage"`
	MissingIngredients []string `json:"missing_ingredients"`
}

// CreateRecipeRequest is the request body for creating a recipe
type CreateRecipeRequest struct {
	Title           string                    `json:"title"`
	Description     *string                   `json:"description,omitempty"`
	PrepTimeMinutes int                       `json:"prep_time_minutes"`
	CookTimeMinutes int                       `json:"cook_time_minutes"`
	Servings        int                       `json:"servings"`
	Difficulty      Difficulty                `json:"difficulty"`
	CuisineType     *string                   `json:"cuisine_type,omitempty"`
	Ingredients     []CreateRecipeIngredient  `json:"ingredients"`
}

// CreateRecipeIngredient is one ingredient line in a recipe create/update
type CreateRecipeIngredient struct {
	Name     string  `json:"name"`
	Quantity *string `json:"quantity,omitempty"`
}

// UpdateRecipeRequest is the request body for updating a recipe
type UpdateRecipeRequest struct {
	Title           *string                  `json:"title,omitempty"`
	Description     *string                  `json:"description,omitempty"`
	PrepTimeMinutes *int                     `json:"prep_time_minutes,omitempty"`
	CookTimeMinutes *int                     `json:"cook_time_minutes,omitempty"`
	Servings        *int                     `json:"servings,omitempty"`
	Difficulty      *Difficulty              `json:"difficulty,omitempty"`
	CuisineType     *string                  `json:"cuisine_type,omitempty"`
	Ingredients     []CreateRecipeIngredient `json:"ingredients,omitempty"`
}

// RecipeListParams contains parameters for listing recipes
type RecipeListParams struct {
	Limit      int
	Offset     int
	Search     string
	Cuisine    string
	Difficulty string
	Bookmarked *bool // Only the caller's bookmarked recipes
	UserID     int   // For bookmark resolution
}

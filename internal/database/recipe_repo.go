package database

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/nbbaier/smartrecipe/internal/models"
)

var (
	ErrRecipeNotFound = errors.New("recipe not found")
	ErrNotRecipeOwner = errors.New("not the owner of this recipe")
)

// ListRecipes returns paginated recipes with optional filters
func (db *DB) ListRecipes(ctx context.Context, params *models.RecipeListParams) ([]*models.Recipe, int, error) {
	whereClauses := []string{"TRUE"}
	args := []interface{}{}
	argCount := 0

	if params.Search != "" {
		argCount++
		whereClauses = append(whereClauses, fmt.Sprintf("(LOWER(r.title) LIKE $%d OR LOWER(COALESCE(r.description, '')) LIKE $%d)", argCount, argCount))
		args = append(args, "%"+strings.ToLower(params.Search)+"%")
	}

	if params.Cuisine != "" {
		argCount++
		whereClauses = append(whereClauses, fmt.Sprintf("LOWER(r.cuisine_type) = $%d", argCount))
		args = append(args, strings.ToLower(params.Cuisine))
	}

	if params.Difficulty != "" {
		argCount++
		whereClauses = append(whereClauses, fmt.Sprintf("r.difficulty = $%d", argCount))
		args = append(args, params.Difficulty)
	}

	if params.Bookmarked != nil && *params.Bookmarked {
		argCount++
		whereClauses = append(whereClauses, fmt.Sprintf("EXISTS(SELECT 1 FROM recipe_bookmarks b WHERE b.recipe_id = r.id AND b.user_id = $%d)", argCount))
		args = append(args, params.UserID)
	}

	whereClause := strings.Join(whereClauses, " AND ")

	var total int
	err := db.Pool.QueryRow(ctx,
		fmt.Sprintf("SELECT COUNT(*) FROM recipes r WHERE %s", whereClause),
		args...,
	).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	argCount++
	limitArg := argCount
	argCount++
	offsetArg := argCount
	args = append(args, params.Limit, params.Offset)

	rows, err := db.Pool.Query(ctx, fmt.Sprintf(`
		SELECT r.id, r.title, r.description, r.prep_time_minutes, r.cook_time_minutes,
			r.servings, r.difficulty, r.cuisine_type, r.image_url, r.created_by,
			r.created_at, r.updated_at
		FROM recipes r
		WHERE %s
		ORDER BY r.title ASC
		LIMIT $%d OFFSET $%d
	`, whereClause, limitArg, offsetArg), args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var recipes []*models.Recipe
	for rows.Next() {
		r := &models.Recipe{}
		err := rows.Scan(
			&r.ID, &r.Title, &r.Description, &r.PrepTimeMinutes, &r.CookTimeMinutes,
			&r.Servings, &r.Difficulty, &r.CuisineType, &r.ImageURL, &r.CreatedBy,
			&r.CreatedAt, &r.UpdatedAt,
		)
		if err != nil {
			return nil, 0, err
		}
		recipes = append(recipes, r)
	}

	return recipes, total, nil
}

// GetAllRecipes returns the entire catalog without pagination, for the
// suggestion pass
func (db *DB) GetAllRecipes(ctx context.Context) ([]*models.Recipe, error) {
	rows, err := db.Pool.Query(ctx, `
		SELECT id, title, description, prep_time_minutes, cook_time_minutes,
			servings, difficulty, cuisine_type, image_url, created_by,
			created_at, updated_at
		FROM recipes
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recipes []*models.Recipe
	for rows.Next() {
		r := &models.Recipe{}
		err := rows.Scan(
			&r.ID, &r.Title, &r.Description, &r.PrepTimeMinutes, &r.CookTimeMinutes,
			&r.Servings, &r.Difficulty, &r.CuisineType, &r.ImageURL, &r.CreatedBy,
			&r.CreatedAt, &r.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		recipes = append(recipes, r)
	}
	return recipes, nil
}

// GetRecipeByID retrieves a recipe with its ingredients and the
// caller's bookmark state
func (db *DB) GetRecipeByID(ctx context.Context, id, userID int) (*models.RecipeWithIngredients, error) {
	recipe := &models.RecipeWithIngredients{}
	err := db.Pool.QueryRow(ctx, `
		SELECT r.id, r.title, r.description, r.prep_time_minutes, r.cook_time_minutes,
			r.servings, r.difficulty, r.cuisine_type, r.image_url, r.created_by,
			r.created_at, r.updated_at,
			EXISTS(SELECT 1 FROM recipe_bookmarks b WHERE b.recipe_id = r.id AND b.user_id = $2)
		FROM recipes r
		WHERE r.id = $1
	`, id, userID).Scan(
		&recipe.ID, &recipe.Title, &recipe.Description, &recipe.PrepTimeMinutes, &recipe.CookTimeMinutes,
		&recipe.Servings, &recipe.Difficulty, &recipe.CuisineType, &recipe.ImageURL, &recipe.CreatedBy,
		&recipe.CreatedAt, &recipe.UpdatedAt, &recipe.Bookmarked,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrRecipeNotFound
		}
		return nil, err
	}

	ingredients, err := db.getRecipeIngredients(ctx, id)
	if err != nil {
		return nil, err
	}
	recipe.Ingredients = ingredients

	return recipe, nil
}

func (db *DB) getRecipeIngredients(ctx context.Context, recipeID int) ([]models.RecipeIngredient, error) {
	rows, err := db.Pool.Query(ctx, `
		SELECT id, recipe_id, name, quantity, position
		FROM recipe_ingredients
		WHERE recipe_id = $1
		ORDER BY position ASC, id ASC
	`, recipeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ingredients := []models.RecipeIngredient{}
	for rows.Next() {
		var ing models.RecipeIngredient
		if err := rows.Scan(&ing.ID, &ing.RecipeID, &ing.Name, &ing.Quantity, &ing.Position); err != nil {
			return nil, err
		}
		ingredients = append(ingredients, ing)
	}
	return ingredients, nil
}

// RecipeIngredientNames returns a recipe's required ingredient names in
// display order. This is the injected lookup the suggestion pass uses;
// recipes are never matched on title strings.
func (db *DB) RecipeIngredientNames(ctx context.Context, recipeID int) ([]string, error) {
	ingredients, err := db.getRecipeIngredients(ctx, recipeID)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(ingredients))
	for _, ing := range ingredients {
		names = append(names, ing.Name)
	}
	return names, nil
}

// AllRecipeIngredientNames returns the ingredient names of every
// recipe, keyed by recipe id, in one query
func (db *DB) AllRecipeIngredientNames(ctx context.Context) (map[int][]string, error) {
	rows, err := db.Pool.Query(ctx, `
		SELECT recipe_id, name
		FROM recipe_ingredients
		ORDER BY recipe_id, position ASC, id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	names := make(map[int][]string)
	for rows.Next() {
		var recipeID int
		var name string
		if err := rows.Scan(&recipeID, &name); err != nil {
			return nil, err
		}
		names[recipeID] = append(names[recipeID], name)
	}
	return names, nil
}

// CreateRecipe inserts a recipe and its ingredient list in one
// transaction
func (db *DB) CreateRecipe(ctx context.Context, req *models.CreateRecipeRequest, userID int) (*models.RecipeWithIngredients, error) {
	tx, err := db.Pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	var recipeID int
	err = tx.QueryRow(ctx, `
		INSERT INTO recipes (title, description, prep_time_minutes, cook_time_minutes, servings, difficulty, cuisine_type, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`, req.Title, req.Description, req.PrepTimeMinutes, req.CookTimeMinutes,
		req.Servings, req.Difficulty, req.CuisineType, userID,
	).Scan(&recipeID)
	if err != nil {
		return nil, err
	}

	for i, ing := range req.Ingredients {
		_, err := tx.Exec(ctx, `
			INSERT INTO recipe_ingredients (recipe_id, name, quantity, position)
			VALUES ($1, $2, $3, $4)
		`, recipeID, ing.Name, ing.Quantity, i)
		if err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return db.GetRecipeByID(ctx, recipeID, userID)
}

// CreateSystemRecipe inserts an ownerless catalog recipe. Used by the
// seeder; ownerless recipes can't be edited or deleted by users.
func (db *DB) CreateSystemRecipe(ctx context.Context, req *models.CreateRecipeRequest) (*models.Recipe, error) {
	tx, err := db.Pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	recipe := &models.Recipe{}
	err = tx.QueryRow(ctx, `
		INSERT INTO recipes (title, description, prep_time_minutes, cook_time_minutes, servings, difficulty, cuisine_type)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, title, description, prep_time_minutes, cook_time_minutes,
			servings, difficulty, cuisine_type, image_url, created_by, created_at, updated_at
	`, req.Title, req.Description, req.PrepTimeMinutes, req.CookTimeMinutes,
		req.Servings, req.Difficulty, req.CuisineType,
	).Scan(
		&recipe.ID, &recipe.Title, &recipe.Description, &recipe.PrepTimeMinutes, &recipe.CookTimeMinutes,
		&recipe.Servings, &recipe.Difficulty, &recipe.CuisineType, &recipe.ImageURL, &recipe.CreatedBy,
		&recipe.CreatedAt, &recipe.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	for i, ing := range req.Ingredients {
		_, err := tx.Exec(ctx, `
			INSERT INTO recipe_ingredients (recipe_id, name, quantity, position)
			VALUES ($1, $2, $3, $4)
		`, recipe.ID, ing.Name, ing.Quantity, i)
		if err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return recipe, nil
}

// UpdateRecipe updates a recipe; when Ingredients is non-nil the
// ingredient list is replaced wholesale
func (db *DB) UpdateRecipe(ctx context.Context, id, userID int, req *models.UpdateRecipeRequest) (*models.RecipeWithIngredients, error) {
	existing, err := db.GetRecipeByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if existing.CreatedBy == nil || *existing.CreatedBy != userID {
		return nil, ErrNotRecipeOwner
	}

	tx, err := db.Pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		UPDATE recipes
		SET title = COALESCE($2, title),
			description = COALESCE($3, description),
			prep_time_minutes = COALESCE($4, prep_time_minutes),
			cook_time_minutes = COALESCE($5, cook_time_minutes),
			servings = COALESCE($6, servings),
			difficulty = COALESCE($7, difficulty),
			cuisine_type = COALESCE($8, cuisine_type),
			updated_at = NOW()
		WHERE id = $1
	`, id, req.Title, req.Description, req.PrepTimeMinutes, req.CookTimeMinutes,
		req.Servings, req.Difficulty, req.CuisineType)
	if err != nil {
		return nil, err
	}

	if req.Ingredients != nil {
		if _, err := tx.Exec(ctx, "DELETE FROM recipe_ingredients WHERE recipe_id = $1", id); err != nil {
			return nil, err
		}
		for i, ing := range req.Ingredients {
			_, err := tx.Exec(ctx, `
				INSERT INTO recipe_ingredients (recipe_id, name, quantity, position)
				VALUES ($1, $2, $3, $4)
			`, id, ing.Name, ing.Quantity, i)
			if err != nil {
				return nil, err
			}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return db.GetRecipeByID(ctx, id, userID)
}

// DeleteRecipe removes a recipe, enforcing ownership
func (db *DB) DeleteRecipe(ctx context.Context, id, userID int) error {
	existing, err := db.GetRecipeByID(ctx, id, userID)
	if err != nil {
		return err
	}
	if existing.CreatedBy == nil || *existing.CreatedBy != userID {
		return ErrNotRecipeOwner
	}

	_, err = db.Pool.Exec(ctx, "DELETE FROM recipes WHERE id = $1", id)
	return err
}

// BookmarkRecipe adds a bookmark; already-bookmarked is a no-op
func (db *DB) BookmarkRecipe(ctx context.Context, recipeID, userID int) error {
	if _, err := db.GetRecipeByID(ctx, recipeID, userID); err != nil {
		return err
	}

	_, err := db.Pool.Exec(ctx, `
		INSERT INTO recipe_bookmarks (user_id, recipe_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING
	`, userID, recipeID)
	return err
}

// UnbookmarkRecipe removes a bookmark
func (db *DB) UnbookmarkRecipe(ctx context.Context, recipeID, userID int) error {
	_, err := db.Pool.Exec(ctx, `
		DELETE FROM recipe_bookmarks WHERE user_id = $1 AND recipe_id = $2
	`, userID, recipeID)
	return err
}

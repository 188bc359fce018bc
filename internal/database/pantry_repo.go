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
	ErrPantryItemNotFound = errors.New("pantry item not found")
	ErrNotPantryOwner     = errors.New("not the owner of this pantry item")
)

const pantryColumns = `
	id, user_id, name, quantity, unit, category,
	purchase_date, expiration_date, location, notes,
	created_at, updated_at`

func scanPantryItem(row pgx.Row) (*models.PantryItem, error) {
	item := &models.PantryItem{}
	err := row.Scan(
		&item.ID, &item.UserID, &item.Name, &item.Quantity, &item.Unit, &item.Category,
		&item.PurchaseDate, &item.ExpirationDate, &item.Location, &item.Notes,
		&item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return item, nil
}

// ListPantryItems returns paginated pantry items for a user
func (db *DB) ListPantryItems(ctx context.Context, params *models.PantryListParams) ([]*models.PantryItem, int, error) {
	// Build where clauses
	whereClauses := []string{"user_id = $1"}
	args := []interface{}{params.UserID}
	argCount := 1

	if params.Category != "" {
		argCount++
		whereClauses = append(whereClauses, fmt.Sprintf("category = $%d", argCount))
		args = append(args, params.Category)
	}

	if params.Search != "" {
		argCount++
		whereClauses = append(whereClauses, fmt.Sprintf("LOWER(name) LIKE $%d", argCount))
		args = append(args, "%"+strings.ToLower(params.Search)+"%")
	}

	if params.Expired != nil && *params.Expired {
		whereClauses = append(whereClauses, "expiration_date IS NOT NULL AND expiration_date < CURRENT_DATE")
	}

	if params.ExpiringSoon != nil && *params.ExpiringSoon {
		whereClauses = append(whereClauses, "expiration_date IS NOT NULL AND expiration_date >= CURRENT_DATE AND expiration_date <= CURRENT_DATE + INTERVAL '7 days'")
	}

	whereClause := strings.Join(whereClauses, " AND ")

	// Determine sort order
	sortColumn := "updated_at"
	sortOrder := "DESC"
	switch params.SortBy {
	case "name":
		sortColumn = "name"
	case "expiration":
		sortColumn = "expiration_date"
	case "quantity":
		sortColumn = "quantity"
	case "updated":
		sortColumn = "updated_at"
	}
	if params.SortOrder == "asc" {
		sortOrder = "ASC"
	}

	// Get total count
	var total int
	err := db.Pool.QueryRow(ctx,
		fmt.Sprintf("SELECT COUNT(*) FROM pantry_items WHERE %s", whereClause),
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

	query := fmt.Sprintf(`
		SELECT %s
		FROM pantry_items
		WHERE %s
		ORDER BY %s %s NULLS LAST
		LIMIT $%d OFFSET $%d
	`, pantryColumns, whereClause, sortColumn, sortOrder, limitArg, offsetArg)

	rows, err := db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var items []*models.PantryItem
	for rows.Next() {
		item, err := scanPantryItem(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, item)
	}

	return items, total, nil
}

// GetAllPantryItems returns every pantry item for a user, for the
// suggestion and notification passes (no pagination)
func (db *DB) GetAllPantryItems(ctx context.Context, userID int) ([]*models.PantryItem, error) {
	rows, err := db.Pool.Query(ctx, fmt.Sprintf(`
		SELECT %s
		FROM pantry_items
		WHERE user_id = $1
		ORDER BY expiration_date ASC NULLS LAST, id ASC
	`, pantryColumns), userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*models.PantryItem
	for rows.Next() {
		item, err := scanPantryItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// GetPantryItemByID retrieves one pantry item, enforcing ownership
func (db *DB) GetPantryItemByID(ctx context.Context, id, userID int) (*models.PantryItem, error) {
	item, err := scanPantryItem(db.Pool.QueryRow(ctx, fmt.Sprintf(`
		SELECT %s FROM pantry_items WHERE id = $1
	`, pantryColumns), id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPantryItemNotFound
		}
		return nil, err
	}
	if item.UserID != userID {
		return nil, ErrNotPantryOwner
	}
	return item, nil
}

// CreatePantryItem adds an item to the user's pantry
func (db *DB) CreatePantryItem(ctx context.Context, req *models.CreatePantryItemRequest, userID int) (*models.PantryItem, error) {
	return scanPantryItem(db.Pool.QueryRow(ctx, fmt.Sprintf(`
		INSERT INTO pantry_items (user_id, name, quantity, unit, category, purchase_date, expiration_date, location, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING %s
	`, pantryColumns),
		userID, req.Name, req.Quantity, req.Unit, req.Category,
		req.PurchaseDate, req.ExpirationDate, req.Location, req.Notes,
	))
}

// CreatePantryItems bulk-inserts pantry items in one transaction,
// e.g. from a confirmed receipt scan
func (db *DB) CreatePantryItems(ctx context.Context, reqs []models.CreatePantryItemRequest, userID int) ([]*models.PantryItem, error) {
	tx, err := db.Pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	items := make([]*models.PantryItem, 0, len(reqs))
	for _, req := range reqs {
		item, err := scanPantryItem(tx.QueryRow(ctx, fmt.Sprintf(`
			INSERT INTO pantry_items (user_id, name, quantity, unit, category, purchase_date, expiration_date, location, notes)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			RETURNING %s
		`, pantryColumns),
			userID, req.Name, req.Quantity, req.Unit, req.Category,
			req.PurchaseDate, req.ExpirationDate, req.Location, req.Notes,
		))
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return items, nil
}

// UpdatePantryItem updates an item, enforcing ownership
func (db *DB) UpdatePantryItem(ctx context.Context, id, userID int, req *models.UpdatePantryItemRequest) (*models.PantryItem, error) {
	// Verify ownership first
	if _, err := db.GetPantryItemByID(ctx, id, userID); err != nil {
		return nil, err
	}

	return scanPantryItem(db.Pool.QueryRow(ctx, fmt.Sprintf(`
		UPDATE pantry_items
		SET name = COALESCE($3, name),
			quantity = COALESCE($4, quantity),
			unit = COALESCE($5, unit),
			category = COALESCE($6, category),
			purchase_date = COALESCE($7, purchase_date),
			expiration_date = COALESCE($8, expiration_date),
			location = COALESCE($9, location),
			notes = COALESCE($10, notes),
			updated_at = NOW()
		WHERE id = $1 AND user_id = $2
		RETURNING %s
	`, pantryColumns),
		id, userID, req.Name, req.Quantity, req.Unit, req.Category,
		req.PurchaseDate, req.ExpirationDate, req.Location, req.Notes,
	))
}

// AdjustPantryQuantity changes an item's quantity by a delta, flooring
// at zero
func (db *DB) AdjustPantryQuantity(ctx context.Context, id, userID int, adjustment float64) (*models.PantryItem, error) {
	if _, err := db.GetPantryItemByID(ctx, id, userID); err != nil {
		return nil, err
	}

	return scanPantryItem(db.Pool.QueryRow(ctx, fmt.Sprintf(`
		UPDATE pantry_items
		SET quantity = GREATEST(quantity + $3, 0), updated_at = NOW()
		WHERE id = $1 AND user_id = $2
		RETURNING %s
	`, pantryColumns), id, userID, adjustment))
}

// DeletePantryItem removes an item, enforcing ownership
func (db *DB) DeletePantryItem(ctx context.Context, id, userID int) error {
	if _, err := db.GetPantryItemByID(ctx, id, userID); err != nil {
		return err
	}

	_, err := db.Pool.Exec(ctx, "DELETE FROM pantry_items WHERE id = $1 AND user_id = $2", id, userID)
	return err
}

// GetPantrySummary returns aggregate stats for the dashboard
func (db *DB) GetPantrySummary(ctx context.Context, userID int, criticalDays, warningDays int) (*models.PantrySummary, error) {
	summary := &models.PantrySummary{}

	err := db.Pool.QueryRow(ctx, `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE expiration_date IS NOT NULL AND expiration_date < CURRENT_DATE),
			COUNT(*) FILTER (WHERE expiration_date IS NOT NULL AND expiration_date >= CURRENT_DATE AND expiration_date <= CURRENT_DATE + $2::int),
			COUNT(*) FILTER (WHERE expiration_date IS NOT NULL AND expiration_date > CURRENT_DATE + $2::int AND expiration_date <= CURRENT_DATE + $3::int)
		FROM pantry_items
		WHERE user_id = $1
	`, userID, criticalDays, warningDays).Scan(
		&summary.TotalItems, &summary.ExpiredCount, &summary.CriticalCount, &summary.WarningCount,
	)
	if err != nil {
		return nil, err
	}

	rows, err := db.Pool.Query(ctx, `
		SELECT DISTINCT category FROM pantry_items
		WHERE user_id = $1 AND category IS NOT NULL
		ORDER BY category
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var category string
		if err := rows.Scan(&category); err != nil {
			return nil, err
		}
		summary.UniqueCategories = append(summary.UniqueCategories, category)
	}

	return summary, nil
}

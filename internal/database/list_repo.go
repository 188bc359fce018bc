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
	ErrListNotFound     = errors.New("shopping list not found")
	ErrListItemNotFound = errors.New("list item not found")
	ErrNotListOwner     = errors.New("not the owner of this list")
)

// ListShoppingLists returns all shopping lists for a user
func (db *DB) ListShoppingLists(ctx context.Context, params *models.ListListParams) ([]*models.ShoppingListSummary, int, error) {
	statusFilter := ""
	args := []interface{}{params.UserID}
	if params.Status != "" {
		statusFilter = " AND sl.status = $2"
		args = append(args, params.Status)
	}

	var total int
	err := db.Pool.QueryRow(ctx,
		"SELECT COUNT(*) FROM shopping_lists sl WHERE user_id = $1"+statusFilter,
		args...,
	).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	limitArg := len(args) + 1
	offsetArg := len(args) + 2
	args = append(args, params.Limit, params.Offset)

	rows, err := db.Pool.Query(ctx, fmt.Sprintf(`
		SELECT
			sl.id, sl.user_id, sl.name, sl.status, sl.target_date, sl.completed_at, sl.created_at, sl.updated_at,
			COALESCE((SELECT COUNT(*) FROM shopping_list_items WHERE list_id = sl.id), 0) as item_count,
			COALESCE((SELECT COUNT(*) FROM shopping_list_items WHERE list_id = sl.id AND purchased), 0) as purchased_count
		FROM shopping_lists sl
		WHERE sl.user_id = $1%s
		ORDER BY sl.updated_at DESC
		LIMIT $%d OFFSET $%d
	`, statusFilter, limitArg, offsetArg), args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var lists []*models.ShoppingListSummary
	for rows.Next() {
		l := &models.ShoppingListSummary{}
		err := rows.Scan(
			&l.ID, &l.UserID, &l.Name, &l.Status, &l.TargetDate, &l.CompletedAt, &l.CreatedAt, &l.UpdatedAt,
			&l.ItemCount, &l.PurchasedCount,
		)
		if err != nil {
			return nil, 0, err
		}
		lists = append(lists, l)
	}

	return lists, total, nil
}

// GetShoppingListByID retrieves a shopping list with all its items
func (db *DB) GetShoppingListByID(ctx context.Context, id, userID int) (*models.ShoppingListWithItems, error) {
	list := &models.ShoppingListWithItems{}
	err := db.Pool.QueryRow(ctx, `
		SELECT id, user_id, name, status, target_date, completed_at, created_at, updated_at
		FROM shopping_lists
		WHERE id = $1
	`, id).Scan(
		&list.ID, &list.UserID, &list.Name, &list.Status, &list.TargetDate, &list.CompletedAt, &list.CreatedAt, &list.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrListNotFound
		}
		return nil, err
	}

	if list.UserID != userID {
		return nil, ErrNotListOwner
	}

	rows, err := db.Pool.Query(ctx, `
		SELECT id, list_id, name, quantity, unit, purchased, created_at
		FROM shopping_list_items
		WHERE list_id = $1
		ORDER BY purchased ASC, id ASC
	`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list.Items = []models.ShoppingListItem{}
	for rows.Next() {
		var item models.ShoppingListItem
		err := rows.Scan(&item.ID, &item.ListID, &item.Name, &item.Quantity, &item.Unit, &item.Purchased, &item.CreatedAt)
		if err != nil {
			return nil, err
		}
		list.Items = append(list.Items, item)
	}

	return list, nil
}

// CreateShoppingList creates an empty shopping list
func (db *DB) CreateShoppingList(ctx context.Context, req *models.CreateListRequest, userID int) (*models.ShoppingList, error) {
	list := &models.ShoppingList{}
	err := db.Pool.QueryRow(ctx, `
		INSERT INTO shopping_lists (user_id, name, target_date)
		VALUES ($1, $2, $3)
		RETURNING id, user_id, name, status, target_date, completed_at, created_at, updated_at
	`, userID, req.Name, req.TargetDate).Scan(
		&list.ID, &list.UserID, &list.Name, &list.Status, &list.TargetDate, &list.CompletedAt, &list.CreatedAt, &list.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return list, nil
}

// UpdateShoppingList updates name/status/target date; completing a list
// stamps completed_at
func (db *DB) UpdateShoppingList(ctx context.Context, id, userID int, req *models.UpdateListRequest) (*models.ShoppingList, error) {
	if _, err := db.GetShoppingListByID(ctx, id, userID); err != nil {
		return nil, err
	}

	list := &models.ShoppingList{}
	err := db.Pool.QueryRow(ctx, `
		UPDATE shopping_lists
		SET name = COALESCE($3, name),
			status = COALESCE($4, status),
			target_date = COALESCE($5, target_date),
			completed_at = CASE WHEN $4 = 'completed' THEN NOW() ELSE completed_at END,
			updated_at = NOW()
		WHERE id = $1 AND user_id = $2
		RETURNING id, user_id, name, status, target_date, completed_at, created_at, updated_at
	`, id, userID, req.Name, req.Status, req.TargetDate).Scan(
		&list.ID, &list.UserID, &list.Name, &list.Status, &list.TargetDate, &list.CompletedAt, &list.CreatedAt, &list.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return list, nil
}

// DeleteShoppingList removes a list and its items
func (db *DB) DeleteShoppingList(ctx context.Context, id, userID int) error {
	if _, err := db.GetShoppingListByID(ctx, id, userID); err != nil {
		return err
	}

	_, err := db.Pool.Exec(ctx, "DELETE FROM shopping_lists WHERE id = $1 AND user_id = $2", id, userID)
	return err
}

// AddListItem appends one item to a list
func (db *DB) AddListItem(ctx context.Context, listID, userID int, req *models.AddListItemRequest) (*models.ShoppingListItem, error) {
	if _, err := db.GetShoppingListByID(ctx, listID, userID); err != nil {
		return nil, err
	}

	item := &models.ShoppingListItem{}
	err := db.Pool.QueryRow(ctx, `
		INSERT INTO shopping_list_items (list_id, name, quantity, unit)
		VALUES ($1, $2, $3, $4)
		RETURNING id, list_id, name, quantity, unit, purchased, created_at
	`, listID, req.Name, req.Quantity, req.Unit).Scan(
		&item.ID, &item.ListID, &item.Name, &item.Quantity, &item.Unit, &item.Purchased, &item.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	db.touchList(ctx, listID)
	return item, nil
}

// AddListItems appends several items to a list in one transaction,
// skipping names the list already carries (case-insensitive)
func (db *DB) AddListItems(ctx context.Context, listID, userID int, reqs []models.AddListItemRequest) ([]models.ShoppingListItem, error) {
	list, err := db.GetShoppingListByID(ctx, listID, userID)
	if err != nil {
		return nil, err
	}

	existing := make(map[string]bool, len(list.Items))
	for _, item := range list.Items {
		existing[normalizeName(item.Name)] = true
	}

	tx, err := db.Pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	added := []models.ShoppingListItem{}
	for _, req := range reqs {
		if existing[normalizeName(req.Name)] {
			continue
		}
		existing[normalizeName(req.Name)] = true

		var item models.ShoppingListItem
		err := tx.QueryRow(ctx, `
			INSERT INTO shopping_list_items (list_id, name, quantity, unit)
			VALUES ($1, $2, $3, $4)
			RETURNING id, list_id, name, quantity, unit, purchased, created_at
		`, listID, req.Name, req.Quantity, req.Unit).Scan(
			&item.ID, &item.ListID, &item.Name, &item.Quantity, &item.Unit, &item.Purchased, &item.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		added = append(added, item)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	db.touchList(ctx, listID)
	return added, nil
}

// UpdateListItem updates one list item
func (db *DB) UpdateListItem(ctx context.Context, listID, itemID, userID int, req *models.UpdateListItemRequest) (*models.ShoppingListItem, error) {
	if _, err := db.GetShoppingListByID(ctx, listID, userID); err != nil {
		return nil, err
	}

	item := &models.ShoppingListItem{}
	err := db.Pool.QueryRow(ctx, `
		UPDATE shopping_list_items
		SET name = COALESCE($3, name),
			quantity = COALESCE($4, quantity),
			unit = COALESCE($5, unit),
			purchased = COALESCE($6, purchased)
		WHERE id = $2 AND list_id = $1
		RETURNING id, list_id, name, quantity, unit, purchased, created_at
	`, listID, itemID, req.Name, req.Quantity, req.Unit, req.Purchased).Scan(
		&item.ID, &item.ListID, &item.Name, &item.Quantity, &item.Unit, &item.Purchased, &item.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrListItemNotFound
		}
		return nil, err
	}

	db.touchList(ctx, listID)
	return item, nil
}

// DeleteListItem removes one item from a list
func (db *DB) DeleteListItem(ctx context.Context, listID, itemID, userID int) error {
	if _, err := db.GetShoppingListByID(ctx, listID, userID); err != nil {
		return err
	}

	tag, err := db.Pool.Exec(ctx, "DELETE FROM shopping_list_items WHERE id = $1 AND list_id = $2", itemID, listID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrListItemNotFound
	}

	db.touchList(ctx, listID)
	return nil
}

func (db *DB) touchList(ctx context.Context, listID int) {
	db.Pool.Exec(ctx, "UPDATE shopping_lists SET updated_at = NOW() WHERE id = $1", listID)
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

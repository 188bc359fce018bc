package database

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/nbbaier/smartrecipe/internal/models"
)

var (
	ErrLeftoverNotFound = errors.New("leftover not found")
	ErrNotLeftoverOwner = errors.New("not the owner of this leftover")
)

const leftoverColumns = `
	id, user_id, name, quantity, unit, recipe_id,
	stored_at, expiration_date, notes, created_at, updated_at`

func scanLeftover(row pgx.Row) (*models.Leftover, error) {
	l := &models.Leftover{}
	err := row.Scan(
		&l.ID, &l.UserID, &l.Name, &l.Quantity, &l.Unit, &l.RecipeID,
		&l.StoredAt, &l.ExpirationDate, &l.Notes, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return l, nil
}

// ListLeftovers returns all leftovers for a user, soonest-expiring first
func (db *DB) ListLeftovers(ctx context.Context, userID int) ([]*models.Leftover, error) {
	rows, err := db.Pool.Query(ctx, `
		SELECT `+leftoverColumns+`
		FROM leftovers
		WHERE user_id = $1
		ORDER BY expiration_date ASC NULLS LAST, id ASC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var leftovers []*models.Leftover
	for rows.Next() {
		l, err := scanLeftover(rows)
		if err != nil {
			return nil, err
		}
		leftovers = append(leftovers, l)
	}
	return leftovers, nil
}

// GetLeftoverByID retrieves one leftover, enforcing ownership
func (db *DB) GetLeftoverByID(ctx context.Context, id, userID int) (*models.Leftover, error) {
	l, err := scanLeftover(db.Pool.QueryRow(ctx, `
		SELECT `+leftoverColumns+` FROM leftovers WHERE id = $1
	`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrLeftoverNotFound
		}
		return nil, err
	}
	if l.UserID != userID {
		return nil, ErrNotLeftoverOwner
	}
	return l, nil
}

// CreateLeftover stores a new leftover
func (db *DB) CreateLeftover(ctx context.Context, req *models.CreateLeftoverRequest, userID int) (*models.Leftover, error) {
	storedAt := time.Now()
	if req.StoredAt != nil {
		storedAt = *req.StoredAt
	}

	return scanLeftover(db.Pool.QueryRow(ctx, `
		INSERT INTO leftovers (user_id, name, quantity, unit, recipe_id, stored_at, expiration_date, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+leftoverColumns+`
	`, userID, req.Name, req.Quantity, req.Unit, req.RecipeID, storedAt, req.ExpirationDate, req.Notes))
}

// UpdateLeftover updates a leftover, enforcing ownership
func (db *DB) UpdateLeftover(ctx context.Context, id, userID int, req *models.UpdateLeftoverRequest) (*models.Leftover, error) {
	if _, err := db.GetLeftoverByID(ctx, id, userID); err != nil {
		return nil, err
	}

	return scanLeftover(db.Pool.QueryRow(ctx, `
		UPDATE leftovers
		SET name = COALESCE($3, name),
			quantity = COALESCE($4, quantity),
			unit = COALESCE($5, unit),
			expiration_date = COALESCE($6, expiration_date),
			notes = COALESCE($7, notes),
			updated_at = NOW()
		WHERE id = $1 AND user_id = $2
		RETURNING `+leftoverColumns+`
	`, id, userID, req.Name, req.Quantity, req.Unit, req.ExpirationDate, req.Notes))
}

// DeleteLeftover removes a leftover, enforcing ownership
func (db *DB) DeleteLeftover(ctx context.Context, id, userID int) error {
	if _, err := db.GetLeftoverByID(ctx, id, userID); err != nil {
		return err
	}

	_, err := db.Pool.Exec(ctx, "DELETE FROM leftovers WHERE id = $1 AND user_id = $2", id, userID)
	return err
}

package database

import (
	"context"
)

// GetDismissedSuggestionIDs returns the set of suggestion ids the user
// has dismissed. The suggestion engine receives this as an opaque filter
// and never touches the table itself.
func (db *DB) GetDismissedSuggestionIDs(ctx context.Context, userID int) (map[string]struct{}, error) {
	rows, err := db.Pool.Query(ctx, `
		SELECT suggestion_id FROM dismissed_suggestions WHERE user_id = $1
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	dismissed := make(map[string]struct{})
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		dismissed[id] = struct{}{}
	}
	return dismissed, nil
}

// DismissSuggestion records a dismissal; repeats are no-ops
func (db *DB) DismissSuggestion(ctx context.Context, userID int, suggestionID string) error {
	_, err := db.Pool.Exec(ctx, `
		INSERT INTO dismissed_suggestions (user_id, suggestion_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING
	`, userID, suggestionID)
	return err
}

// ClearDismissedSuggestions wipes a user's dismissals, bringing every
// suggestion back
func (db *DB) ClearDismissedSuggestions(ctx context.Context, userID int) error {
	_, err := db.Pool.Exec(ctx, "DELETE FROM dismissed_suggestions WHERE user_id = $1", userID)
	return err
}

package database

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/nbbaier/smartrecipe/internal/models"
)

var ErrPreferencesNotFound = errors.New("preferences not found")

// GetPreferences returns a user's preferences, or ErrPreferencesNotFound
// when none have been saved. Callers treat absence as "no adjustments".
func (db *DB) GetPreferences(ctx context.Context, userID int) (*models.UserPreferences, error) {
	prefs := &models.UserPreferences{}
	err := db.Pool.QueryRow(ctx, `
		SELECT user_id, dietary_restrictions, allergies, cooking_skill_level,
			critical_days, warning_days, upcoming_days, created_at, updated_at
		FROM user_preferences
		WHERE user_id = $1
	`, userID).Scan(
		&prefs.UserID, &prefs.DietaryRestrictions, &prefs.Allergies, &prefs.CookingSkillLevel,
		&prefs.CriticalDays, &prefs.WarningDays, &prefs.UpcomingDays, &prefs.CreatedAt, &prefs.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPreferencesNotFound
		}
		return nil, err
	}
	return prefs, nil
}

// UpsertPreferences creates or replaces a user's preferences row
func (db *DB) UpsertPreferences(ctx context.Context, userID int, req *models.UpsertPreferencesRequest) (*models.UserPreferences, error) {
	restrictions := req.DietaryRestrictions
	if restrictions == nil {
		restrictions = []string{}
	}
	allergies := req.Allergies
	if allergies == nil {
		allergies = []string{}
	}

	criticalDays := 3
	if req.CriticalDays != nil && *req.CriticalDays > 0 {
		criticalDays = *req.CriticalDays
	}
	warningDays := 7
	if req.WarningDays != nil && *req.WarningDays > 0 {
		warningDays = *req.WarningDays
	}
	upcomingDays := 14
	if req.UpcomingDays != nil && *req.UpcomingDays > 0 {
		upcomingDays = *req.UpcomingDays
	}

	prefs := &models.UserPreferences{}
	err := db.Pool.QueryRow(ctx, `
		INSERT INTO user_preferences (user_id, dietary_restrictions, allergies, cooking_skill_level, critical_days, warning_days, upcoming_days)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (user_id) DO UPDATE SET
			dietary_restrictions = EXCLUDED.dietary_restrictions,
			allergies = EXCLUDED.allergies,
			cooking_skill_level = EXCLUDED.cooking_skill_level,
			critical_days = EXCLUDED.critical_days,
			warning_days = EXCLUDED.warning_days,
			upcoming_days = EXCLUDED.upcoming_days,
			updated_at = NOW()
		RETURNING user_id, dietary_restrictions, allergies, cooking_skill_level,
			critical_days, warning_days, upcoming_days, created_at, updated_at
	`, userID, restrictions, allergies, req.CookingSkillLevel, criticalDays, warningDays, upcomingDays).Scan(
		&prefs.UserID, &prefs.DietaryRestrictions, &prefs.Allergies, &prefs.CookingSkillLevel,
		&prefs.CriticalDays, &prefs.WarningDays, &prefs.UpcomingDays, &prefs.CreatedAt, &prefs.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return prefs, nil
}

// DeletePreferences removes a user's preferences row
func (db *DB) DeletePreferences(ctx context.Context, userID int) error {
	_, err := db.Pool.Exec(ctx, "DELETE FROM user_preferences WHERE user_id = $1", userID)
	return err
}

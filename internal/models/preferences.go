package models

import (
	"time"
)

type SkillLevel string

const (
	SkillBeginner     SkillLevel = "Beginner"
	SkillIntermediate SkillLevel = "Intermediate"
	SkillAdvanced     SkillLevel = "Advanced"
	SkillExpert       SkillLevel = "Expert"
)

// UserPreferences holds a user's dietary profile and suggestion tuning.
// At most one row exists per user; absence means no compliance or skill
// adjustments are applied.
type UserPreferences struct {
	UserID              int        `json:"user_id"`
	DietaryRestrictions []string   `json:"dietary_restrictions"`
	Allergies           []string   `json:"allergies"`
	CookingSkillLevel   SkillLevel `json:"cooking_skill_level"`

	// Expiration tier overrides; zero means default (3/7/14)
	CriticalDays int `json:"critical_days"`
	WarningDays  int `json:"warning_days"`
	UpcomingDays int `json:"upcoming_days"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UpsertPreferencesRequest is the request body for saving preferences
type UpsertPreferencesRequest struct {
	DietaryRestrictions []string   `json:"dietary_restrictions"`
	Allergies           []string   `json:"allergies"`
	CookingSkillLevel   SkillLevel `json:"cooking_skill_level"`
	CriticalDays        *int       `json:"critical_days,omitempty"`
	WarningDays         *int       `json:"warning_days,omitempty"`
	UpcomingDays        *int       `json:"upcoming_days,omitempty"`
}

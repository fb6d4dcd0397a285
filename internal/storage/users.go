package storage

import (
	"context"
	"fmt"

	"github.com/claude/liftplan/internal/catalog"
)

// UserProfile carries the profile fields the starting-weight calculator
// needs. Age and gender are optional until the user fills them in.
type UserProfile struct {
	ID          int            `json:"id"`
	Login       string         `json:"login"`
	DisplayName string         `json:"display_name"`
	Age         *int           `json:"age,omitempty"`
	Gender      catalog.Gender `json:"gender,omitempty"`
}

// GetOrCreateUser finds or creates a user by Tailscale login name.
// Returns the user ID. Updates last_seen and display_name on each call.
func (db *DB) GetOrCreateUser(ctx context.Context, login, displayName string) (int, error) {
	var id int
	err := db.Pool.QueryRow(ctx, `
		INSERT INTO users (login, display_name)
		VALUES ($1, $2)
		ON CONFLICT (login) DO UPDATE
			SET last_seen = NOW(), display_name = COALESCE(NULLIF($2, ''), users.display_name)
		RETURNING id
	`, login, displayName).Scan(&id)
	return id, err
}

// GetUserProfile returns a user's profile.
func (db *DB) GetUserProfile(ctx context.Context, userID int) (*UserProfile, error) {
	var p UserProfile
	var gender *string
	err := db.Pool.QueryRow(ctx,
		`SELECT id, login, display_name, age, gender FROM users WHERE id = $1`,
		userID).Scan(&p.ID, &p.Login, &p.DisplayName, &p.Age, &gender)
	if err != nil {
		return nil, fmt.Errorf("querying user profile: %w", err)
	}
	if gender != nil {
		p.Gender = catalog.Gender(*gender)
	}
	return &p, nil
}

// UpdateUserProfile sets the age and gender used for starting-weight
// calculation.
func (db *DB) UpdateUserProfile(ctx context.Context, userID int, age int, gender catalog.Gender) error {
	_, err := db.Pool.Exec(ctx,
		`UPDATE users SET age = $2, gender = $3 WHERE id = $1`,
		userID, age, string(gender))
	if err != nil {
		return fmt.Errorf("updating user profile: %w", err)
	}
	return nil
}

package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/claude/liftplan/internal/engine"
	"github.com/jackc/pgx/v5"
)

// GetEquipmentSettings returns a user's equipment increments, or (nil, nil)
// when no record exists. The engine treats an absent record as a
// configuration error; that decision belongs to the caller, not the store.
func (db *DB) GetEquipmentSettings(ctx context.Context, userID int) (*engine.UserEquipmentSettings, error) {
	var s engine.UserEquipmentSettings
	var experience string
	err := db.Pool.QueryRow(ctx,
		`SELECT barbell_increment_kg, dumbbell_increment_kg, cable_increment_kg,
		        machine_increment_kg, experience
		 FROM equipment_settings WHERE user_id = $1`,
		userID).Scan(&s.BarbellIncrementKg, &s.DumbbellIncrementKg,
		&s.CableIncrementKg, &s.MachineIncrementKg, &experience)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying equipment settings: %w", err)
	}
	s.Experience = engine.Experience(experience)
	return &s, nil
}

// UpsertEquipmentSettings creates or replaces a user's equipment settings.
func (db *DB) UpsertEquipmentSettings(ctx context.Context, userID int, s engine.UserEquipmentSettings) error {
	_, err := db.Pool.Exec(ctx, `
		INSERT INTO equipment_settings (user_id, barbell_increment_kg, dumbbell_increment_kg,
			cable_increment_kg, machine_increment_kg, experience)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id) DO UPDATE SET
			barbell_increment_kg = $2,
			dumbbell_increment_kg = $3,
			cable_increment_kg = $4,
			machine_increment_kg = $5,
			experience = $6,
			updated_at = NOW()
	`, userID, s.BarbellIncrementKg, s.DumbbellIncrementKg,
		s.CableIncrementKg, s.MachineIncrementKg, string(s.Experience))
	if err != nil {
		return fmt.Errorf("upserting equipment settings: %w", err)
	}
	return nil
}

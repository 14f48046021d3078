package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cory-johannsen/escapegame/internal/storage"
)

// SaveRepository stores one saved game per slot in the saves table.
type SaveRepository struct {
	db   *pgxpool.Pool
	slot string
}

// NewSaveRepository creates a SaveRepository bound to slot.
//
// Precondition: db must be a valid, open connection pool; slot must be non-empty.
func NewSaveRepository(db *pgxpool.Pool, slot string) *SaveRepository {
	return &SaveRepository{db: db, slot: slot}
}

// Save upserts the slot's row with snap, replacing any earlier save.
//
// Postcondition: Returns nil once the row holds snap.
func (r *SaveRepository) Save(ctx context.Context, snap storage.Snapshot) error {
	inventory := snap.Inventory
	if inventory == nil {
		inventory = []string{}
	}
	_, err := r.db.Exec(ctx, `
		INSERT INTO saves (slot, room_id, inventory, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (slot) DO UPDATE
		SET room_id = EXCLUDED.room_id, inventory = EXCLUDED.inventory, updated_at = NOW()`,
		r.slot, snap.RoomID, inventory,
	)
	if err != nil {
		return fmt.Errorf("saving slot %q: %w", r.slot, err)
	}
	return nil
}

// Load returns the slot's saved game.
//
// Postcondition: Returns the snapshot, or storage.ErrNoSave if the slot is empty.
func (r *SaveRepository) Load(ctx context.Context) (storage.Snapshot, error) {
	var snap storage.Snapshot
	err := r.db.QueryRow(ctx, `
		SELECT room_id, inventory FROM saves WHERE slot = $1`,
		r.slot,
	).Scan(&snap.RoomID, &snap.Inventory)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return storage.Snapshot{}, storage.ErrNoSave
		}
		return storage.Snapshot{}, fmt.Errorf("loading slot %q: %w", r.slot, err)
	}
	if len(snap.Inventory) == 0 {
		snap.Inventory = nil
	}
	return snap, nil
}

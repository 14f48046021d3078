// Package storage defines the saved form of a session shared by all save backends.
package storage

import (
	"errors"
	"slices"
)

// ErrNoSave is returned by a store when no saved game exists.
var ErrNoSave = errors.New("no saved game")

// ErrCorrupt is returned by a store when a saved game exists but cannot be parsed.
var ErrCorrupt = errors.New("saved game is corrupt")

// Snapshot is the persisted state of a player: where they stand and what they hold.
type Snapshot struct {
	// RoomID is the room the player was in when saved.
	RoomID string
	// Inventory lists held items in pickup order. An empty inventory is nil.
	Inventory []string
}

// Equal reports whether two snapshots hold the same room and inventory.
// A nil and an empty inventory are equal.
func (s Snapshot) Equal(o Snapshot) bool {
	return s.RoomID == o.RoomID && slices.Equal(s.Inventory, o.Inventory)
}

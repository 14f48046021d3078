package engine

import "github.com/cory-johannsen/escapegame/internal/game/world"

// Effect is what using an item in a particular room does.
// Using an item never removes it from the inventory.
type Effect struct {
	// Item is the held item that triggers the effect.
	Item string
	// Room is the room the player must be in.
	Room string
	// Target is the room the player is moved to. Empty leaves the player in place.
	Target string
	// Lines are the narrative messages shown, in order.
	Lines []string
}

// Matches reports whether using item in roomID triggers the effect.
func (e Effect) Matches(item, roomID string) bool {
	return e.Item == item && e.Room == roomID
}

// DefaultEffects returns the item effects of the built-in world.
func DefaultEffects() []Effect {
	return []Effect{
		{
			Item:   "key",
			Room:   world.LockedRoomID,
			Target: world.NextRoomID,
			Lines: []string{
				"You used the key to unlock the door.",
				"You are now in the Next Room.",
			},
		},
	}
}

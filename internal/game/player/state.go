// Package player holds the state of the single player in a session.
package player

import "slices"

// State is the player's position and held items.
//
// State performs no legality checks; the engine validates moves and
// pickups before calling it.
type State struct {
	currentRoom string
	inventory   []string
}

// New creates a player standing in roomID with an empty inventory.
//
// Precondition: roomID must name an existing room.
func New(roomID string) *State {
	return &State{currentRoom: roomID}
}

// Room returns the ID of the room the player occupies.
func (s *State) Room() string {
	return s.currentRoom
}

// Move repoints the player at roomID unconditionally.
//
// Precondition: the caller has validated that roomID exists.
func (s *State) Move(roomID string) {
	s.currentRoom = roomID
}

// AddItem appends item to the inventory. Duplicates are not rejected.
func (s *State) AddItem(item string) {
	s.inventory = append(s.inventory, item)
}

// RemoveItem drops the first occurrence of item from the inventory.
//
// Postcondition: Returns true if an entry was removed.
func (s *State) RemoveItem(item string) bool {
	i := slices.Index(s.inventory, item)
	if i < 0 {
		return false
	}
	s.inventory = slices.Delete(s.inventory, i, i+1)
	return true
}

// HasItem reports whether item is held.
func (s *State) HasItem(item string) bool {
	return slices.Contains(s.inventory, item)
}

// Items returns a copy of the inventory in pickup order.
func (s *State) Items() []string {
	return slices.Clone(s.inventory)
}

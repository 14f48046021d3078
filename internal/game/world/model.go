// Package world provides the game world model: rooms, exits, directions, and item placement.
package world

import (
	"fmt"
	"slices"
	"strings"
)

// Direction represents a compass direction.
type Direction string

// Compass directions accepted by exits and movement commands.
const (
	North Direction = "north"
	South Direction = "south"
	East  Direction = "east"
	West  Direction = "west"
)

// StandardDirections contains every direction an exit may use.
var StandardDirections = []Direction{North, South, East, West}

// IsStandard reports whether d is one of the four compass directions.
func (d Direction) IsStandard() bool {
	return slices.Contains(StandardDirections, d)
}

// ParseDirection folds s to lower case and returns the matching direction.
//
// Postcondition: Returns (dir, true) for a compass direction, or ("", false).
func ParseDirection(s string) (Direction, bool) {
	d := Direction(strings.ToLower(s))
	if !d.IsStandard() {
		return "", false
	}
	return d, true
}

// Room represents a location in the game world.
type Room struct {
	// ID uniquely identifies this room. It never changes.
	ID string
	// Description is the text shown on entry and on "look around".
	Description string
	// Exits maps a direction to the ID of the destination room.
	Exits map[Direction]string
	// Items holds the item identifiers currently present, without duplicates.
	Items []string
}

// ExitForDirection returns the target room ID of the exit in the given direction.
//
// Postcondition: Returns (target, true) if found, or ("", false) otherwise.
func (r *Room) ExitForDirection(dir Direction) (string, bool) {
	target, ok := r.Exits[dir]
	return target, ok
}

// HasItem reports whether item is present in the room.
func (r *Room) HasItem(item string) bool {
	return slices.Contains(r.Items, item)
}

// removeItem deletes item from the room's item set.
func (r *Room) removeItem(item string) bool {
	i := slices.Index(r.Items, item)
	if i < 0 {
		return false
	}
	r.Items = slices.Delete(r.Items, i, i+1)
	return true
}

// Validate checks room-local invariants.
//
// Postcondition: Returns nil if valid, or an error describing the first violation.
func (r *Room) Validate() error {
	if r.ID == "" {
		return fmt.Errorf("room ID must not be empty")
	}
	if r.Description == "" {
		return fmt.Errorf("room %q: description must not be empty", r.ID)
	}
	for dir, target := range r.Exits {
		if !dir.IsStandard() {
			return fmt.Errorf("room %q: exit direction %q is not a compass direction", r.ID, dir)
		}
		if target == "" {
			return fmt.Errorf("room %q: exit %q has empty target", r.ID, dir)
		}
	}
	seen := make(map[string]bool, len(r.Items))
	for _, item := range r.Items {
		if item == "" {
			return fmt.Errorf("room %q: item name must not be empty", r.ID)
		}
		if seen[item] {
			return fmt.Errorf("room %q: duplicate item %q", r.ID, item)
		}
		seen[item] = true
	}
	return nil
}

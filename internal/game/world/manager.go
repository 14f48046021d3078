package world

import (
	"fmt"
	"sort"
)

// Manager owns every room of the loaded world and indexes them by ID.
// Rooms are fixed after NewManager; only their item sets change.
// A Manager belongs to a single session and is not safe for concurrent use.
type Manager struct {
	rooms     map[string]*Room
	startRoom string
}

// NewManager creates a Manager from the given rooms.
//
// Precondition: startRoom must name one of rooms.
// Postcondition: Returns a Manager with all rooms indexed by ID, or an error on
// duplicate room IDs, dangling exits, or an item placed in more than one room.
func NewManager(rooms []*Room, startRoom string) (*Manager, error) {
	m := &Manager{
		rooms:     make(map[string]*Room, len(rooms)),
		startRoom: startRoom,
	}

	itemHome := make(map[string]string)
	for _, room := range rooms {
		if err := room.Validate(); err != nil {
			return nil, err
		}
		if _, exists := m.rooms[room.ID]; exists {
			return nil, fmt.Errorf("duplicate room ID: %q", room.ID)
		}
		for _, item := range room.Items {
			if other, exists := itemHome[item]; exists {
				return nil, fmt.Errorf("item %q placed in both %q and %q", item, other, room.ID)
			}
			itemHome[item] = room.ID
		}
		m.rooms[room.ID] = room
	}

	if _, ok := m.rooms[startRoom]; !ok {
		return nil, fmt.Errorf("start room %q not found", startRoom)
	}
	if err := m.ValidateExits(); err != nil {
		return nil, err
	}
	return m, nil
}

// ValidateExits checks that every exit target resolves to a known room.
//
// Postcondition: Returns nil if all exits resolve, or an error naming the first dangling target.
func (m *Manager) ValidateExits() error {
	for _, id := range m.RoomIDs() {
		room := m.rooms[id]
		for dir, target := range room.Exits {
			if _, ok := m.rooms[target]; !ok {
				return fmt.Errorf("room %q: exit %q targets unknown room %q", room.ID, dir, target)
			}
		}
	}
	return nil
}

// Room returns the room with the given ID.
//
// Postcondition: Returns (room, true) if found, or (nil, false) otherwise.
func (m *Manager) Room(id string) (*Room, bool) {
	r, ok := m.rooms[id]
	return r, ok
}

// StartRoom returns the room new sessions begin in.
func (m *Manager) StartRoom() *Room {
	return m.rooms[m.startRoom]
}

// Navigate resolves movement from a room in a direction.
//
// Postcondition: Returns (targetID, true) if the room exists and has an exit
// that way, or ("", false) otherwise.
func (m *Manager) Navigate(fromRoomID string, dir Direction) (string, bool) {
	from, ok := m.rooms[fromRoomID]
	if !ok {
		return "", false
	}
	return from.ExitForDirection(dir)
}

// HasItem reports whether item lies in the given room.
func (m *Manager) HasItem(roomID, item string) bool {
	r, ok := m.rooms[roomID]
	return ok && r.HasItem(item)
}

// RemoveItem takes item out of the given room.
//
// Postcondition: Returns true if the item was present and is now removed;
// false if the room is unknown or the item absent, in which case nothing changes.
func (m *Manager) RemoveItem(roomID, item string) bool {
	r, ok := m.rooms[roomID]
	if !ok {
		return false
	}
	return r.removeItem(item)
}

// RoomIDs returns all room IDs in sorted order.
func (m *Manager) RoomIDs() []string {
	ids := make([]string, 0, len(m.rooms))
	for id := range m.rooms {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// RoomCount returns the number of rooms.
func (m *Manager) RoomCount() int {
	return len(m.rooms)
}

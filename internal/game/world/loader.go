package world

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Well-known room IDs of the built-in fixture.
const (
	StartingRoomID = "StartingRoom"
	LockedRoomID   = "LockedRoom"
	NextRoomID     = "NextRoom"
)

//go:embed fixture.yaml
var fixtureYAML []byte

// yamlWorld is the top-level YAML structure for a world file.
type yamlWorld struct {
	StartRoom string     `yaml:"start_room"`
	Rooms     []yamlRoom `yaml:"rooms"`
}

// yamlRoom is the YAML representation of a room.
type yamlRoom struct {
	ID          string            `yaml:"id"`
	Description string            `yaml:"description"`
	Exits       map[string]string `yaml:"exits"`
	Items       []string          `yaml:"items"`
}

// LoadFixture builds a fresh Manager from the embedded three-room world.
// Each call returns independent rooms, so one session's taken items never
// leak into another.
//
// Postcondition: Returns a validated Manager or a non-nil error.
func LoadFixture() (*Manager, error) {
	return LoadFromBytes(fixtureYAML)
}

// LoadFromBytes parses and validates a world from YAML bytes.
//
// Precondition: data must be valid YAML conforming to the world schema.
// Postcondition: Returns a validated Manager or a non-nil error.
func LoadFromBytes(data []byte) (*Manager, error) {
	var file yamlWorld
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing world YAML: %w", err)
	}

	m, err := NewManager(convertYAMLRooms(file.Rooms), file.StartRoom)
	if err != nil {
		return nil, fmt.Errorf("validating world: %w", err)
	}
	return m, nil
}

// convertYAMLRooms converts the parsed YAML structures into domain types.
func convertYAMLRooms(yrs []yamlRoom) []*Room {
	rooms := make([]*Room, 0, len(yrs))
	for _, yr := range yrs {
		room := &Room{
			ID:          yr.ID,
			Description: yr.Description,
			Exits:       make(map[Direction]string, len(yr.Exits)),
			Items:       append([]string(nil), yr.Items...),
		}
		for dir, target := range yr.Exits {
			room.Exits[Direction(dir)] = target
		}
		rooms = append(rooms, room)
	}
	return rooms
}

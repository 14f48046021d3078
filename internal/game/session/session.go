// Package session ties the classifier, engine, world and player of one game
// session together and converts it to and from its saved form.
package session

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cory-johannsen/escapegame/internal/game/command"
	"github.com/cory-johannsen/escapegame/internal/game/engine"
	"github.com/cory-johannsen/escapegame/internal/game/player"
	"github.com/cory-johannsen/escapegame/internal/game/world"
	"github.com/cory-johannsen/escapegame/internal/storage"
)

// NoticeUnknownRoom is shown when a save names a room the world does not have.
const NoticeUnknownRoom = "Your saved location is unknown. Starting in the starting room."

// Store persists a session snapshot between runs.
type Store interface {
	// Save overwrites any earlier save with snap.
	Save(ctx context.Context, snap storage.Snapshot) error
	// Load returns the saved snapshot, storage.ErrNoSave if there is none,
	// or an error wrapping storage.ErrCorrupt if it cannot be parsed.
	Load(ctx context.Context) (storage.Snapshot, error)
}

// Session is one continuous run of the game from start or load to quit.
type Session struct {
	// ID correlates log lines of this session.
	ID string

	world      *world.Manager
	player     *player.State
	classifier *command.Classifier
	engine     *engine.Engine
	logger     *zap.Logger
}

// New creates a fresh session with the player in the world's start room.
//
// Precondition: all arguments must be non-nil.
func New(w *world.Manager, c *command.Classifier, e *engine.Engine, logger *zap.Logger) *Session {
	id := uuid.NewString()
	return &Session{
		ID:         id,
		world:      w,
		player:     player.New(w.StartRoom().ID),
		classifier: c,
		engine:     e,
		logger:     logger.With(zap.String("session", id)),
	}
}

// NewDefault creates a fresh session over the built-in fixture, grammar and effects.
//
// Postcondition: Returns a ready Session or a non-nil error if the fixture is invalid.
func NewDefault(logger *zap.Logger) (*Session, error) {
	w, err := world.LoadFixture()
	if err != nil {
		return nil, err
	}
	return New(w, command.DefaultClassifier(), engine.New(w, engine.DefaultEffects(), logger), logger), nil
}

// Handle classifies line and applies it.
//
// Precondition: line is trimmed of surrounding whitespace.
func (s *Session) Handle(line string) engine.Outcome {
	return s.engine.Execute(s.player, s.classifier.Classify(line))
}

// Room returns the room the player is in.
func (s *Session) Room() *world.Room {
	r, _ := s.world.Room(s.player.Room())
	return r
}

// Player returns the session's player state.
func (s *Session) Player() *player.State {
	return s.player
}

// World returns the session's world.
func (s *Session) World() *world.Manager {
	return s.world
}

// Snapshot captures the player's room and inventory for saving.
func (s *Session) Snapshot() storage.Snapshot {
	snap := storage.Snapshot{RoomID: s.player.Room()}
	if items := s.player.Items(); len(items) > 0 {
		snap.Inventory = items
	}
	return snap
}

// Resume replaces the player's state with snap.
//
// An unknown room falls back to the start room and the inventory is kept.
// Items found in the inventory are removed from every room, so an item is
// never both held and lying on a floor.
//
// Postcondition: the player stands in a valid room. Returns informational
// notices for the player, possibly none.
func (s *Session) Resume(snap storage.Snapshot) []string {
	var notices []string

	roomID := snap.RoomID
	if _, ok := s.world.Room(roomID); !ok {
		s.logger.Warn("saved room unknown, using start room",
			zap.String("room", roomID),
		)
		roomID = s.world.StartRoom().ID
		notices = append(notices, NoticeUnknownRoom)
	}

	p := player.New(roomID)
	for _, item := range snap.Inventory {
		if item == "" {
			continue
		}
		p.AddItem(item)
		for _, id := range s.world.RoomIDs() {
			if s.world.RemoveItem(id, item) {
				s.logger.Debug("held item removed from room",
					zap.String("item", item),
					zap.String("room", id),
				)
			}
		}
	}
	s.player = p

	s.logger.Info("session resumed",
		zap.String("room", roomID),
		zap.Strings("inventory", p.Items()),
		zap.Bool("fallback", roomID != snap.RoomID),
	)
	return notices
}

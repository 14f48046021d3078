// Package handlers drives a game session over a console.
package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/cory-johannsen/escapegame/internal/game/session"
	"github.com/cory-johannsen/escapegame/internal/storage"
)

// Player-facing messages of the outer loop.
const (
	MsgWelcome     = "Welcome to the Text-Based Adventure Game!"
	MsgStartOrLoad = "Type 'load' to load a saved game or 'start' to begin a new game."
	MsgNoSave      = "No save file found. Starting a new game."
	MsgUnreadable  = "The save file could not be read. Starting a new game."
	MsgPrompt      = "Enter a command:"
	MsgSaved       = "Game saved. Goodbye!"
	MsgSaveFailed  = "The game could not be saved."
)

// choiceLoad is the start answer that resumes a saved game. Any other answer starts fresh.
const choiceLoad = "load"

// Console is the line I/O the game loop needs.
type Console interface {
	ReadLine() (string, error)
	WriteLine(text string) error
	Clear() error
}

// GameHandler runs one session from the start-or-load prompt until quit.
type GameHandler struct {
	console Console
	session *session.Session
	store   session.Store
	logger  *zap.Logger
}

// NewGameHandler creates a GameHandler.
//
// Precondition: all arguments must be non-nil; sess must be freshly created.
func NewGameHandler(c Console, sess *session.Session, store session.Store, logger *zap.Logger) *GameHandler {
	return &GameHandler{
		console: c,
		session: sess,
		store:   store,
		logger:  logger.With(zap.String("session", sess.ID)),
	}
}

// Run plays the game until the player quits or input ends, then saves.
// Input that ends before any command was entered leaves the store untouched.
//
// Postcondition: Returns nil after a successful save or an early end of input,
// or a non-nil error if input, output, or the final save failed.
func (h *GameHandler) Run(ctx context.Context) error {
	if err := h.writeLines(MsgWelcome, MsgStartOrLoad); err != nil {
		return err
	}

	choice, err := h.console.ReadLine()
	if errors.Is(err, io.EOF) {
		h.logger.Info("input closed before start")
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading start choice: %w", err)
	}
	if err := h.console.Clear(); err != nil {
		return err
	}
	if strings.ToLower(choice) == choiceLoad {
		if err := h.load(ctx); err != nil {
			return err
		}
	}

	h.logger.Info("game started", zap.String("room", h.session.Room().ID))
	return h.loop(ctx)
}

// load resumes the session from the store, falling back to a fresh game.
func (h *GameHandler) load(ctx context.Context) error {
	snap, err := h.store.Load(ctx)
	switch {
	case err == nil:
		return h.writeLines(h.session.Resume(snap)...)
	case errors.Is(err, storage.ErrNoSave):
		h.logger.Info("no saved game")
		return h.writeLines(MsgNoSave)
	default:
		h.logger.Warn("loading saved game", zap.Error(err))
		return h.writeLines(MsgUnreadable)
	}
}

func (h *GameHandler) loop(ctx context.Context) error {
	handled := 0
	for {
		if err := h.writeLines(h.session.Room().Description, MsgPrompt); err != nil {
			return err
		}

		line, err := h.console.ReadLine()
		if errors.Is(err, io.EOF) {
			h.logger.Info("input closed", zap.Int("commands", handled))
			if handled == 0 {
				return nil
			}
			return h.quit(ctx)
		}
		if err != nil {
			return fmt.Errorf("reading command: %w", err)
		}
		if err := h.console.Clear(); err != nil {
			return err
		}

		out := h.session.Handle(line)
		handled++
		if out.Quit {
			return h.quit(ctx)
		}
		if err := h.writeLines(out.Lines...); err != nil {
			return err
		}
	}
}

func (h *GameHandler) quit(ctx context.Context) error {
	snap := h.session.Snapshot()
	if err := h.store.Save(ctx, snap); err != nil {
		h.logger.Error("saving game", zap.Error(err))
		_ = h.console.WriteLine(MsgSaveFailed)
		return fmt.Errorf("saving game: %w", err)
	}
	h.logger.Info("game saved",
		zap.String("room", snap.RoomID),
		zap.Strings("inventory", snap.Inventory),
	)
	return h.writeLines(MsgSaved)
}

func (h *GameHandler) writeLines(lines ...string) error {
	for _, l := range lines {
		if err := h.console.WriteLine(l); err != nil {
			return err
		}
	}
	return nil
}

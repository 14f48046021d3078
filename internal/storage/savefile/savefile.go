// Package savefile stores a session as a flat two-line text file:
// the room ID on the first line and the comma-joined inventory on the second.
package savefile

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/cory-johannsen/escapegame/internal/storage"
)

// Store reads and writes a single save file.
type Store struct {
	path string
}

// NewStore creates a Store for the file at path. The file need not exist yet.
//
// Precondition: path must be non-empty.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the save file location.
func (s *Store) Path() string {
	return s.path
}

// Save overwrites the save file with snap. The new content is written to a
// temporary file in the same directory and renamed into place, so a reader
// never sees a partial file.
//
// Postcondition: Returns nil once the file holds exactly Encode(snap).
func (s *Store) Save(_ context.Context, snap storage.Snapshot) error {
	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp save file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(Encode(snap)); err != nil {
		tmp.Close()
		return fmt.Errorf("writing save file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing save file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replacing save file %s: %w", s.path, err)
	}
	return nil
}

// Load reads the save file.
//
// Postcondition: Returns the snapshot; storage.ErrNoSave if the file does not
// exist; an error wrapping storage.ErrCorrupt if it cannot be parsed.
func (s *Store) Load(_ context.Context) (storage.Snapshot, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return storage.Snapshot{}, storage.ErrNoSave
		}
		return storage.Snapshot{}, fmt.Errorf("reading save file %s: %w", s.path, err)
	}
	return Decode(data)
}

// Encode renders snap in the two-line save format. An empty inventory
// produces an empty second line.
func Encode(snap storage.Snapshot) []byte {
	var b strings.Builder
	b.WriteString(snap.RoomID)
	b.WriteByte('\n')
	b.WriteString(strings.Join(snap.Inventory, ","))
	b.WriteByte('\n')
	return []byte(b.String())
}

// Decode parses the two-line save format. CRLF line endings are accepted.
// A missing or empty second line yields an empty inventory, and empty
// entries between commas are dropped.
//
// Postcondition: Returns the snapshot, or an error wrapping storage.ErrCorrupt
// when the room line is missing or blank.
func Decode(data []byte) (storage.Snapshot, error) {
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	lines := strings.Split(text, "\n")

	roomID := strings.TrimSpace(lines[0])
	if roomID == "" {
		return storage.Snapshot{}, fmt.Errorf("%w: missing room on line 1", storage.ErrCorrupt)
	}

	snap := storage.Snapshot{RoomID: roomID}
	if len(lines) > 1 {
		for _, item := range strings.Split(lines[1], ",") {
			if item == "" {
				continue
			}
			snap.Inventory = append(snap.Inventory, item)
		}
	}
	return snap, nil
}

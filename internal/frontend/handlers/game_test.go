package handlers

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/cory-johannsen/escapegame/internal/config"
	"github.com/cory-johannsen/escapegame/internal/frontend/console"
	"github.com/cory-johannsen/escapegame/internal/game/session"
	"github.com/cory-johannsen/escapegame/internal/game/world"
	"github.com/cory-johannsen/escapegame/internal/storage"
	"github.com/cory-johannsen/escapegame/internal/storage/savefile"
)

const (
	startingDesc = "You are in a small room with a door to the north. There is a key on the floor.\nCOMMANDS: move, take, use, quit"
	lockedDesc   = "You are in a locked room. There is a door to the south.\nCOMMANDS: move, take, use, quit"
	nextDesc     = "You are in the next room. You have won!"
)

// stubStore is an in-memory session.Store with injectable failures.
type stubStore struct {
	snap    storage.Snapshot
	loadErr error
	saveErr error
	saved   []storage.Snapshot
}

func (s *stubStore) Save(_ context.Context, snap storage.Snapshot) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.saved = append(s.saved, snap)
	return nil
}

func (s *stubStore) Load(_ context.Context) (storage.Snapshot, error) {
	if s.loadErr != nil {
		return storage.Snapshot{}, s.loadErr
	}
	return s.snap, nil
}

func play(t *testing.T, store session.Store, input string) (string, error) {
	t.Helper()
	logger := zaptest.NewLogger(t)
	sess, err := session.NewDefault(logger)
	require.NoError(t, err)

	var out bytes.Buffer
	c := console.New(strings.NewReader(input), &out, config.ConsoleConfig{ClearScreen: true})
	err = NewGameHandler(c, sess, store, logger).Run(context.Background())
	return out.String(), err
}

func transcript(lines ...string) string {
	return strings.Join(lines, "\n") + "\n"
}

func TestRun_FullEscape(t *testing.T) {
	store := &stubStore{}
	out, err := play(t, store, "start\ntake key\nmove north\nuse key\nquit\n")
	require.NoError(t, err)

	want := transcript(
		MsgWelcome, MsgStartOrLoad,
		startingDesc, MsgPrompt,
		"You have taken the key.",
		startingDesc, MsgPrompt,
		lockedDesc, MsgPrompt,
		"You used the key to unlock the door.",
		"You are now in the Next Room.",
		nextDesc, MsgPrompt,
		MsgSaved,
	)
	assert.Equal(t, want, out)
	require.Len(t, store.saved, 1)
	assert.Equal(t, storage.Snapshot{RoomID: world.NextRoomID, Inventory: []string{"key"}}, store.saved[0])
}

func TestRun_InvalidActions(t *testing.T) {
	out, err := play(t, &stubStore{}, "start\nmove west\ntake lamp\nuse key\ndance\nquit\n")
	require.NoError(t, err)

	want := transcript(
		MsgWelcome, MsgStartOrLoad,
		startingDesc, MsgPrompt,
		"You can't go that way.",
		startingDesc, MsgPrompt,
		"There's no such item here.",
		startingDesc, MsgPrompt,
		"You don't have that item.",
		startingDesc, MsgPrompt,
		"I don't understand that command.",
		startingDesc, MsgPrompt,
		MsgSaved,
	)
	assert.Equal(t, want, out)
}

func TestRun_LoadNoSave(t *testing.T) {
	out, err := play(t, &stubStore{loadErr: storage.ErrNoSave}, "load\nquit\n")
	require.NoError(t, err)
	assert.Equal(t, transcript(
		MsgWelcome, MsgStartOrLoad,
		MsgNoSave,
		startingDesc, MsgPrompt,
		MsgSaved,
	), out)
}

func TestRun_LoadCorrupt(t *testing.T) {
	out, err := play(t, &stubStore{loadErr: fmt.Errorf("decoding: %w", storage.ErrCorrupt)}, "LOAD\nquit\n")
	require.NoError(t, err)
	assert.Contains(t, out, MsgUnreadable)
	assert.Contains(t, out, startingDesc)
}

func TestRun_LoadResumes(t *testing.T) {
	store := &stubStore{snap: storage.Snapshot{RoomID: world.LockedRoomID, Inventory: []string{"key"}}}
	out, err := play(t, store, "  Load \nuse key\nquit\n")
	require.NoError(t, err)
	assert.Equal(t, transcript(
		MsgWelcome, MsgStartOrLoad,
		lockedDesc, MsgPrompt,
		"You used the key to unlock the door.",
		"You are now in the Next Room.",
		nextDesc, MsgPrompt,
		MsgSaved,
	), out)
}

func TestRun_LoadUnknownRoom(t *testing.T) {
	store := &stubStore{snap: storage.Snapshot{RoomID: "Cellar"}}
	out, err := play(t, store, "load\nquit\n")
	require.NoError(t, err)
	assert.Equal(t, transcript(
		MsgWelcome, MsgStartOrLoad,
		session.NoticeUnknownRoom,
		startingDesc, MsgPrompt,
		MsgSaved,
	), out)
}

func TestRun_AnyOtherChoiceStartsFresh(t *testing.T) {
	store := &stubStore{snap: storage.Snapshot{RoomID: world.LockedRoomID}}
	out, err := play(t, store, "begin\nquit\n")
	require.NoError(t, err)
	assert.Contains(t, out, startingDesc)
	assert.NotContains(t, out, lockedDesc)
}

func TestRun_EOFSaves(t *testing.T) {
	store := &stubStore{}
	out, err := play(t, store, "start\ntake key")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(out, MsgSaved+"\n"))
	require.Len(t, store.saved, 1)
	assert.Equal(t, []string{"key"}, store.saved[0].Inventory)
}

func TestRun_EOFBeforeChoiceDoesNotSave(t *testing.T) {
	store := &stubStore{}
	out, err := play(t, store, "")
	require.NoError(t, err)
	assert.Equal(t, transcript(MsgWelcome, MsgStartOrLoad), out)
	assert.Empty(t, store.saved)
}

func TestRun_EOFBeforeFirstCommandDoesNotSave(t *testing.T) {
	store := &stubStore{}
	out, err := play(t, store, "start\n")
	require.NoError(t, err)
	assert.Equal(t, transcript(MsgWelcome, MsgStartOrLoad, startingDesc, MsgPrompt), out)
	assert.Empty(t, store.saved)
}

func TestRun_EarlyEOFKeepsExistingSaveFile(t *testing.T) {
	for _, input := range []string{"", "start\n", "load\n"} {
		t.Run(fmt.Sprintf("%q", input), func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "savegame.txt")
			require.NoError(t, os.WriteFile(path, []byte("LockedRoom\nkey\n"), 0o644))

			out, err := play(t, savefile.NewStore(path), input)
			require.NoError(t, err)
			assert.NotContains(t, out, MsgSaved)

			data, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, "LockedRoom\nkey\n", string(data))
		})
	}
}

func TestRun_DefaultConfigKeepsLongLinesWhole(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)

	logger := zaptest.NewLogger(t)
	sess, err := session.NewDefault(logger)
	require.NoError(t, err)

	msg := strings.Repeat("abcdefghij klmnopqrst uvwxyz ", 3) + "end"
	require.Greater(t, len(msg), 80)

	var out bytes.Buffer
	c := console.New(strings.NewReader("start\nunscramble "+msg+"\nquit\n"), &out, cfg.Console)
	require.NoError(t, NewGameHandler(c, sess, &stubStore{}, logger).Run(context.Background()))

	runes := []rune(msg)
	slices.Reverse(runes)
	assert.Contains(t, out.String(), "The unscrambled message is: "+string(runes)+"\n")
	assert.Contains(t, out.String(), startingDesc+"\n")
}

func TestRun_SaveFailure(t *testing.T) {
	boom := errors.New("disk full")
	out, err := play(t, &stubStore{saveErr: boom}, "start\nquit\n")
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.True(t, strings.HasSuffix(out, MsgSaveFailed+"\n"))
	assert.NotContains(t, out, MsgSaved)
}

func TestRun_QuitThenLoadThroughFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "savegame.txt")
	store := savefile.NewStore(path)

	_, err := play(t, store, "start\ntake key\nmove north\nquit\n")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "LockedRoom\nkey\n", string(data))

	out, err := play(t, store, "load\nlook around\nmove south\nexamine key\nquit\n")
	require.NoError(t, err)
	assert.Equal(t, transcript(
		MsgWelcome, MsgStartOrLoad,
		lockedDesc, MsgPrompt,
		lockedDesc,
		lockedDesc, MsgPrompt,
		startingDesc, MsgPrompt,
		"There's nothing special about it.",
		startingDesc, MsgPrompt,
		MsgSaved,
	), out)
}

func TestRun_UnscrambleKeepsCase(t *testing.T) {
	out, err := play(t, &stubStore{}, "start\nUnscramble olleH\nquit\n")
	require.NoError(t, err)
	assert.Contains(t, out, "The unscrambled message is: Hello\n")
}

// Package command classifies raw input lines into typed player commands.
package command

import "github.com/cory-johannsen/escapegame/internal/game/world"

// Kind tags the variant held by a Command.
type Kind int

// Command variants.
const (
	KindUnrecognized Kind = iota
	KindMove
	KindTake
	KindUse
	KindLookAround
	KindExamine
	KindUnscramble
	KindQuit
)

var kindNames = map[Kind]string{
	KindUnrecognized: "unrecognized",
	KindMove:         "move",
	KindTake:         "take",
	KindUse:          "use",
	KindLookAround:   "look_around",
	KindExamine:      "examine",
	KindUnscramble:   "unscramble",
	KindQuit:         "quit",
}

// String returns the snake_case name of the kind, used as a log field.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Command is one classified player intent derived from a single input line.
type Command struct {
	// Kind selects which of the remaining fields are meaningful.
	Kind Kind
	// Direction is set for KindMove.
	Direction world.Direction
	// Arg is the item, object, or text operand of Take, Use, Examine and Unscramble.
	// It is lowercased for every kind except Unscramble.
	Arg string
	// Raw is the input line as received.
	Raw string
}

// Move returns a KindMove command.
func Move(dir world.Direction, raw string) Command {
	return Command{Kind: KindMove, Direction: dir, Raw: raw}
}

// Unrecognized returns a KindUnrecognized command carrying the original text.
func Unrecognized(raw string) Command {
	return Command{Kind: KindUnrecognized, Raw: raw}
}

// Package engine applies classified commands to the world and the player.
package engine

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/cory-johannsen/escapegame/internal/game/command"
	"github.com/cory-johannsen/escapegame/internal/game/player"
	"github.com/cory-johannsen/escapegame/internal/game/world"
)

// Fixed player-facing messages.
const (
	MsgNoExit         = "You can't go that way."
	MsgNoSuchItem     = "There's no such item here."
	MsgNotHeld        = "You don't have that item."
	MsgCannotUse      = "You can't use that item here."
	MsgNothingSpecial = "There's nothing special about it."
	MsgUnrecognized   = "I don't understand that command."
)

// Outcome is the result of executing one command.
type Outcome struct {
	// Lines are the messages to show the player, in order.
	Lines []string
	// Moved reports that the player's room changed.
	Moved bool
	// Quit reports that the player asked to end the session.
	Quit bool
}

// Engine is the turn state machine. Its only state is the world it mutates;
// the player is passed per call.
type Engine struct {
	world   *world.Manager
	effects []Effect
	logger  *zap.Logger
}

// New creates an Engine over w using the given item effects.
//
// Precondition: w and logger must be non-nil.
func New(w *world.Manager, effects []Effect, logger *zap.Logger) *Engine {
	return &Engine{
		world:   w,
		effects: effects,
		logger:  logger,
	}
}

// Execute applies cmd for player p and returns what the player sees.
// Every branch is total: invalid actions leave state unchanged and report a message.
//
// Precondition: p.Room() must name a room of the engine's world.
// Postcondition: Outcome.Lines holds at least one message unless cmd is Move
// (success) or Quit.
func (e *Engine) Execute(p *player.State, cmd command.Command) Outcome {
	var out Outcome
	switch cmd.Kind {
	case command.KindMove:
		out = e.move(p, cmd.Direction)
	case command.KindTake:
		out = e.take(p, cmd.Arg)
	case command.KindUse:
		out = e.use(p, cmd.Arg)
	case command.KindLookAround:
		out = e.look(p)
	case command.KindExamine:
		out = e.examine(p, cmd.Arg)
	case command.KindUnscramble:
		out = lines(fmt.Sprintf("The unscrambled message is: %s", Unscramble(cmd.Arg)))
	case command.KindQuit:
		out = Outcome{Quit: true}
	default:
		out = lines(MsgUnrecognized)
	}

	e.logger.Debug("command executed",
		zap.String("command", cmd.Kind.String()),
		zap.String("raw", cmd.Raw),
		zap.String("room", p.Room()),
		zap.Bool("moved", out.Moved),
	)
	return out
}

func (e *Engine) move(p *player.State, dir world.Direction) Outcome {
	target, ok := e.world.Navigate(p.Room(), dir)
	if !ok {
		return lines(MsgNoExit)
	}
	p.Move(target)
	return Outcome{Moved: true}
}

func (e *Engine) take(p *player.State, item string) Outcome {
	if !e.world.RemoveItem(p.Room(), item) {
		return lines(MsgNoSuchItem)
	}
	p.AddItem(item)
	e.logger.Info("item taken",
		zap.String("item", item),
		zap.String("room", p.Room()),
	)
	return lines(fmt.Sprintf("You have taken the %s.", item))
}

func (e *Engine) use(p *player.State, item string) Outcome {
	if !p.HasItem(item) {
		return lines(MsgNotHeld)
	}
	for _, eff := range e.effects {
		if eff.Matches(item, p.Room()) {
			return e.apply(p, eff)
		}
	}
	return lines(MsgCannotUse)
}

func (e *Engine) apply(p *player.State, eff Effect) Outcome {
	out := Outcome{Lines: append([]string(nil), eff.Lines...)}
	if eff.Target != "" {
		if _, ok := e.world.Room(eff.Target); !ok {
			e.logger.Error("effect targets unknown room",
				zap.String("item", eff.Item),
				zap.String("target", eff.Target),
			)
			return lines(MsgCannotUse)
		}
		p.Move(eff.Target)
		out.Moved = true
	}
	e.logger.Info("item used",
		zap.String("item", eff.Item),
		zap.String("room", eff.Room),
		zap.String("target", eff.Target),
	)
	return out
}

func (e *Engine) look(p *player.State) Outcome {
	room, ok := e.world.Room(p.Room())
	if !ok {
		return lines(MsgNothingSpecial)
	}
	return lines(room.Description)
}

func (e *Engine) examine(p *player.State, name string) Outcome {
	if e.world.HasItem(p.Room(), name) {
		return lines(fmt.Sprintf("You see a %s.", name))
	}
	return lines(MsgNothingSpecial)
}

func lines(msgs ...string) Outcome {
	return Outcome{Lines: msgs}
}

package command

import (
	"regexp"
	"strings"

	"github.com/cory-johannsen/escapegame/internal/game/world"
)

// Rule pairs a pattern with the constructor that builds a Command from its match.
type Rule struct {
	// Name identifies the rule; names are unique within a Classifier.
	Name string
	// Pattern is matched against the whole trimmed line.
	Pattern *regexp.Regexp
	// Build turns the submatches of Pattern into a Command.
	Build func(match []string, raw string) Command
}

// BuiltinRules returns the game grammar in match order. The first matching
// rule wins, so quit is checked before every other form.
func BuiltinRules() []Rule {
	return []Rule{
		{
			Name:    "quit",
			Pattern: regexp.MustCompile(`(?i)^quit$`),
			Build: func(_ []string, raw string) Command {
				return Command{Kind: KindQuit, Raw: raw}
			},
		},
		{
			Name:    "move",
			Pattern: regexp.MustCompile(`(?i)^(go|move) (north|south|east|west)$`),
			Build: func(m []string, raw string) Command {
				dir, _ := world.ParseDirection(m[2])
				return Move(dir, raw)
			},
		},
		{
			Name:    "take",
			Pattern: regexp.MustCompile(`(?i)^take (.+)$`),
			Build: func(m []string, raw string) Command {
				return Command{Kind: KindTake, Arg: strings.ToLower(m[1]), Raw: raw}
			},
		},
		{
			Name:    "use",
			Pattern: regexp.MustCompile(`(?i)^use (.+)$`),
			Build: func(m []string, raw string) Command {
				return Command{Kind: KindUse, Arg: strings.ToLower(m[1]), Raw: raw}
			},
		},
		{
			// "look around" and "examine X" share one group.
			Name:    "look",
			Pattern: regexp.MustCompile(`(?i)^(look around|examine (.+))$`),
			Build: func(m []string, raw string) Command {
				if strings.ToLower(m[1]) == "look around" {
					return Command{Kind: KindLookAround, Raw: raw}
				}
				return Command{Kind: KindExamine, Arg: strings.ToLower(m[2]), Raw: raw}
			},
		},
		{
			Name:    "unscramble",
			Pattern: regexp.MustCompile(`(?i)^unscramble (.+)$`),
			Build: func(m []string, raw string) Command {
				return Command{Kind: KindUnscramble, Arg: m[1], Raw: raw}
			},
		},
	}
}

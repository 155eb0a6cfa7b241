// Package game implements the Hollowkeep command engine: a two-word
// parser, the player's state, and a pure request/response dispatcher
// that both the TUI and the plain REPL drive.
package game

import "strings"

// Verb is a canonical player action. Aliases ("get", "walk", "i") are
// folded into their canonical verb by ParseCommand.
type Verb string

const (
	// VerbLook describes the room, or an item when a noun is given.
	VerbLook Verb = "look"
	// VerbGo moves the player in a direction.
	VerbGo Verb = "go"
	// VerbTake picks an item up from the room.
	VerbTake Verb = "take"
	// VerbDrop puts a carried item down in the room.
	VerbDrop Verb = "drop"
	// VerbInventory lists carried items.
	VerbInventory Verb = "inventory"
	// VerbHelp prints the command summary.
	VerbHelp Verb = "help"
	// VerbQuit asks to end the session.
	VerbQuit Verb = "quit"
	// VerbUnknown is any verb the parser does not recognize.
	VerbUnknown Verb = ""
)

// Command is one parsed player input line.
type Command struct {
	// Verb is the canonical action.
	Verb Verb
	// Noun is the remainder of the line, original case preserved.
	// Matching against item names lowercases it at the comparison.
	Noun string
	// RawVerb is the verb as typed, for error messages.
	RawVerb string
}

// verbAliases maps every accepted spelling to its canonical verb.
var verbAliases = map[string]Verb{
	"look":      VerbLook,
	"go":        VerbGo,
	"move":      VerbGo,
	"walk":      VerbGo,
	"take":      VerbTake,
	"get":       VerbTake,
	"pickup":    VerbTake,
	"drop":      VerbDrop,
	"inventory": VerbInventory,
	"i":         VerbInventory,
	"help":      VerbHelp,
	"?":         VerbHelp,
	"quit":      VerbQuit,
	"exit":      VerbQuit,
}

// ParseCommand splits an input line into a verb and a noun phrase.
// ok is false for blank lines. The verb is matched case-insensitively;
// "look at <thing>" is normalized so the noun is just the thing.
func ParseCommand(line string) (cmd Command, ok bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{}, false
	}

	rawVerb := fields[0]
	noun := strings.TrimSpace(strings.Join(fields[1:], " "))

	verb, known := verbAliases[strings.ToLower(rawVerb)]
	if !known {
		return Command{Verb: VerbUnknown, Noun: noun, RawVerb: rawVerb}, true
	}

	// Accept both "look <thing>" and "look at <thing>".
	if verb == VerbLook && len(fields) > 2 && strings.EqualFold(fields[1], "at") {
		noun = strings.TrimSpace(strings.Join(fields[2:], " "))
	}

	return Command{Verb: verb, Noun: noun, RawVerb: rawVerb}, true
}

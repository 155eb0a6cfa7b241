package game

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/hollowkeep/hollowkeep/internal/errors"
	"github.com/hollowkeep/hollowkeep/internal/world"
)

// Response is the engine's answer to one input line. Text is ready to
// print; Quit is set once the player has confirmed leaving.
type Response struct {
	Text string
	Quit bool
}

// Engine dispatches parsed commands against the world graph. It is a
// pure request/response machine: no terminal I/O, no goroutines, one
// command at a time. The only state beyond the player is the pending
// quit confirmation.
type Engine struct {
	world       *world.World
	player      *Player
	confirmQuit bool
	log         *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the structured logger for command tracing.
func WithLogger(log *slog.Logger) Option {
	return func(e *Engine) {
		e.log = log
	}
}

// New creates an engine for the given world, placing the player in
// the start room.
func New(w *world.World, opts ...Option) (*Engine, error) {
	start, ok := w.Start()
	if !ok {
		return nil, errors.WorldError("world has no start room", nil)
	}

	e := &Engine{
		world:  w,
		player: NewPlayer(start),
		log:    slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Player exposes the player state for the UIs and tests.
func (e *Engine) Player() *Player {
	return e.player
}

// World returns the world the engine runs on.
func (e *Engine) World() *world.World {
	return e.world
}

// Welcome returns the opening banner and the first room description.
func (e *Engine) Welcome() string {
	var b strings.Builder
	sep := strings.Repeat("#", 60)
	title := e.world.Title
	if title == "" {
		title = "Hollowkeep"
	}
	b.WriteString(sep + "\n")
	b.WriteString(fmt.Sprintf("###%s###\n", center("Welcome to "+title+"!", 54)))
	b.WriteString(sep + "\n\n")
	b.WriteString("Type 'help' for commands.\n\n")
	b.WriteString(e.describeRoom(e.player.Room()))
	return b.String()
}

// Execute runs one input line and returns what to print. Blank lines
// yield an empty response so prompts can simply repeat.
func (e *Engine) Execute(line string) Response {
	if e.confirmQuit {
		return e.resolveQuit(line)
	}

	cmd, ok := ParseCommand(line)
	if !ok {
		return Response{}
	}

	e.log.Debug("command",
		slog.String("verb", string(cmd.Verb)),
		slog.String("noun", cmd.Noun),
		slog.String("room", e.player.Room().ID))

	switch cmd.Verb {
	case VerbLook:
		if cmd.Noun == "" {
			return Response{Text: e.describeRoom(e.player.Room())}
		}
		return Response{Text: e.lookAt(cmd.Noun)}
	case VerbGo:
		if cmd.Noun == "" {
			return Response{Text: "Go where? (e.g., 'go north')"}
		}
		return Response{Text: e.move(cmd.Noun)}
	case VerbTake:
		if cmd.Noun == "" {
			return Response{Text: "Take what?"}
		}
		return Response{Text: e.take(cmd.Noun)}
	case VerbDrop:
		if cmd.Noun == "" {
			return Response{Text: "Drop what?"}
		}
		return Response{Text: e.drop(cmd.Noun)}
	case VerbInventory:
		return Response{Text: e.inventory()}
	case VerbHelp:
		return Response{Text: helpText()}
	case VerbQuit:
		e.confirmQuit = true
		return Response{Text: "Are you sure you want to quit? (yes/no):"}
	default:
		return Response{Text: fmt.Sprintf("Sorry, I don't understand '%s'. Try 'help' for commands.", cmd.RawVerb)}
	}
}

// resolveQuit handles the yes/no answer after a quit request.
func (e *Engine) resolveQuit(line string) Response {
	e.confirmQuit = false
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "yes", "y":
		e.log.Info("session ended by player")
		return Response{Text: "Goodbye! Thanks for playing.", Quit: true}
	default:
		return Response{Text: "Okay, continuing game."}
	}
}

// move walks the player through an exit and describes the new room.
func (e *Engine) move(direction string) string {
	dir := strings.ToLower(direction)
	destID, ok := e.player.Room().Exit(dir)
	if !ok {
		return "You can't go that way."
	}
	dest, ok := e.world.Room(destID)
	if !ok {
		// Validate() guarantees exits resolve; reaching this means the
		// world was mutated after load.
		e.log.Error("exit resolved to missing room",
			slog.String("room", e.player.Room().ID),
			slog.String("destination", destID))
		return "You can't go that way."
	}

	e.player.MoveTo(dest)
	return fmt.Sprintf("You move %s...\n\n%s", dir, e.describeRoom(dest))
}

// take moves an item from the room into the inventory.
func (e *Engine) take(noun string) string {
	key := strings.ToLower(noun)
	room := e.player.Room()

	item, ok := room.FindItem(key)
	if !ok {
		return fmt.Sprintf("You don't see a '%s' here to take.", noun)
	}
	if !item.Takeable {
		return fmt.Sprintf("You can't take the %s.", item.Name)
	}

	item, _ = room.RemoveItem(key)
	e.player.AddItem(item)
	return fmt.Sprintf("You picked up the %s.", item.Name)
}

// drop moves a carried item into the current room.
func (e *Engine) drop(noun string) string {
	key := strings.ToLower(noun)

	item, ok := e.player.RemoveItem(key)
	if !ok {
		return fmt.Sprintf("You aren't carrying a '%s'.", noun)
	}

	e.player.Room().AddItem(item)
	return fmt.Sprintf("You dropped the %s.", item.Name)
}

// lookAt describes a named item, checking the inventory before the room.
func (e *Engine) lookAt(noun string) string {
	key := strings.ToLower(noun)

	if item, ok := e.player.FindItem(key); ok {
		return item.Description
	}
	if item, ok := e.player.Room().FindItem(key); ok {
		return item.Description
	}
	return fmt.Sprintf("You don't see any '%s' here.", noun)
}

// inventory lists carried items.
func (e *Engine) inventory() string {
	var b strings.Builder
	sep := strings.Repeat("=", 40)
	b.WriteString(sep + "\n")
	b.WriteString("Inventory:\n")
	if len(e.player.Inventory()) == 0 {
		b.WriteString("You are not carrying anything.\n")
	} else {
		for _, item := range e.player.Inventory() {
			b.WriteString(" - " + item.Name + "\n")
		}
	}
	b.WriteString(sep)
	return b.String()
}

// describeRoom renders the room, its items, and its exits.
func (e *Engine) describeRoom(r *world.Room) string {
	var b strings.Builder
	sep := strings.Repeat("-", 50)

	b.WriteString(sep + "\n")
	b.WriteString("Location: " + r.Name + "\n")
	b.WriteString(sep + "\n")
	b.WriteString(r.Description + "\n")

	if items := r.Items(); len(items) > 0 {
		b.WriteString("\nYou see here:\n")
		for _, item := range items {
			b.WriteString(" - " + item.Name + "\n")
		}
	} else {
		b.WriteString("\nThe room seems empty of loose items.\n")
	}

	if dirs := r.Directions(); len(dirs) > 0 {
		b.WriteString("\nExits:\n")
		for _, dir := range dirs {
			name := ""
			if destID, ok := r.Exit(dir); ok {
				if dest, ok := e.world.Room(destID); ok {
					name = dest.Name
				}
			}
			b.WriteString(fmt.Sprintf(" - %s (%s)\n", dir, name))
		}
	} else {
		b.WriteString("\nThere are no obvious exits.\n")
	}

	b.WriteString(sep)
	return b.String()
}

// helpText returns the command summary.
func helpText() string {
	var b strings.Builder
	sep := strings.Repeat("*", 40)
	b.WriteString(sep + "\n")
	b.WriteString("Available Commands:\n")
	b.WriteString("  look          : Describe the current room and items.\n")
	b.WriteString("  look at [item]: Describe a specific item.\n")
	b.WriteString("  go [direction]: Move in a direction (e.g., 'go north').\n")
	b.WriteString("  take [item]   : Pick up an item.\n")
	b.WriteString("  drop [item]   : Drop an item from your inventory.\n")
	b.WriteString("  inventory / i : Show items you are carrying.\n")
	b.WriteString("  help / ?      : Show this help message.\n")
	b.WriteString("  quit / exit   : Leave the game.\n")
	b.WriteString(sep)
	return b.String()
}

// center pads s to width with spaces on both sides.
func center(s string, width int) string {
	if len(s) >= width {
		return s
	}
	left := (width - len(s)) / 2
	right := width - len(s) - left
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}

package world

import (
	"slices"
	"strings"

	"github.com/hollowkeep/hollowkeep/internal/errors"
	"github.com/hollowkeep/hollowkeep/pkg/bsearch"
)

// World is the full game graph: a sorted room registry, a sorted item
// catalog, and the starting room. Construct one with Parse, Load or
// Default; the zero value is empty but usable.
type World struct {
	// Title is the display name of the world.
	Title string

	startID string
	rooms   []*Room // sorted by ID
	items   []*Item // sorted by ID
}

func compareRoomID(r *Room, id string) int {
	return strings.Compare(r.ID, id)
}

func compareItemID(i *Item, id string) int {
	return strings.Compare(i.ID, id)
}

// Room looks up a room by ID.
func (w *World) Room(id string) (*Room, bool) {
	idx, ok := bsearch.FindFunc(w.rooms, id, compareRoomID)
	if !ok {
		return nil, false
	}
	return w.rooms[idx], true
}

// Item looks up a catalog item by ID.
func (w *World) Item(id string) (*Item, bool) {
	idx, ok := bsearch.FindFunc(w.items, id, compareItemID)
	if !ok {
		return nil, false
	}
	return w.items[idx], true
}

// Start returns the starting room.
func (w *World) Start() (*Room, bool) {
	return w.Room(w.startID)
}

// Rooms returns all rooms ordered by ID. The slice is shared; callers
// must not mutate it.
func (w *World) Rooms() []*Room {
	return w.rooms
}

// RoomCount returns the number of rooms.
func (w *World) RoomCount() int { return len(w.rooms) }

// ItemCount returns the number of catalog items.
func (w *World) ItemCount() int { return len(w.items) }

// ExitCount returns the total number of exits across all rooms.
func (w *World) ExitCount() int {
	n := 0
	for _, r := range w.rooms {
		n += len(r.Exits)
	}
	return n
}

// Validate checks the structural invariants: the start room exists
// and every exit points to an existing room. Parse runs this
// automatically; it is exported for the world authoring commands.
func (w *World) Validate() error {
	if w.startID == "" {
		return errors.WorldError("no start room set", nil)
	}
	if _, ok := w.Room(w.startID); !ok {
		return errors.WorldError("start room does not exist", nil).
			WithDetail("start", w.startID)
	}

	for _, r := range w.rooms {
		for dir, dest := range r.Exits {
			if _, ok := w.Room(dest); !ok {
				return errors.WorldError("exit points to unknown room", nil).
					WithDetail("room", r.ID).
					WithDetail("direction", dir).
					WithDetail("destination", dest).
					WithSuggestion("check the exits map in the world file")
			}
		}
	}
	return nil
}

// Unreachable returns the IDs of rooms that cannot be walked to from
// the start room, in sorted order. Used by "world info" to flag
// authoring mistakes; an unreachable room is legal but probably
// unintended.
func (w *World) Unreachable() []string {
	start, ok := w.Start()
	if !ok {
		return nil
	}

	seen := map[string]bool{start.ID: true}
	queue := []*Room{start}
	for len(queue) > 0 {
		r := queue[0]
		queue = queue[1:]
		for _, dest := range r.Exits {
			if seen[dest] {
				continue
			}
			seen[dest] = true
			if next, ok := w.Room(dest); ok {
				queue = append(queue, next)
			}
		}
	}

	var missing []string
	for _, r := range w.rooms {
		if !seen[r.ID] {
			missing = append(missing, r.ID)
		}
	}
	slices.Sort(missing)
	return missing
}

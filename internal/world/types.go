// Package world defines the room/item graph the game runs on and the
// YAML format world files are authored in.
//
// All registries (rooms by ID, the item catalog by ID, room contents
// by spoken name) are kept sorted and resolved with pkg/bsearch, so
// every lookup the engine performs goes through the same ordered
// search primitive.
package world

import (
	"slices"
	"strings"

	"github.com/hollowkeep/hollowkeep/pkg/bsearch"
)

// Item is a thing the player can look at and possibly carry.
type Item struct {
	// ID is the stable identifier used by world files (e.g. "rusty-key").
	ID string
	// Name is the display name (e.g. "Rusty Key").
	Name string
	// Description is printed by "look at <name>".
	Description string
	// Takeable reports whether the player may pick the item up.
	// Scenery (statues, fountains) is not takeable.
	Takeable bool
}

// Key returns the lowercased display name, the form players type.
func (i *Item) Key() string {
	return strings.ToLower(i.Name)
}

// Room is a node in the world graph.
type Room struct {
	// ID is the stable identifier exits refer to.
	ID string
	// Name is the short display name (e.g. "Main Hall").
	Name string
	// Description is the long text shown by "look".
	Description string
	// Exits maps lowercase directions to room IDs.
	Exits map[string]string

	// items is kept sorted by Key so lookups can binary search.
	items []*Item
}

// compareItemKey orders items for the room-content registry.
func compareItemKey(i *Item, key string) int {
	return strings.Compare(i.Key(), key)
}

// Items returns the room's items in listing order (alphabetical by
// name). The returned slice is shared; callers must not mutate it.
func (r *Room) Items() []*Item {
	return r.items
}

// AddItem places an item in the room, keeping the registry sorted.
func (r *Room) AddItem(item *Item) {
	if item == nil {
		return
	}
	r.items = append(r.items, item)
	slices.SortFunc(r.items, func(a, b *Item) int {
		return strings.Compare(a.Key(), b.Key())
	})
}

// FindItem looks up an item by its lowercased name without removing it.
func (r *Room) FindItem(key string) (*Item, bool) {
	idx, ok := bsearch.FindFunc(r.items, key, compareItemKey)
	if !ok {
		return nil, false
	}
	return r.items[idx], true
}

// RemoveItem removes and returns the item with the given lowercased
// name, for when the player takes it.
func (r *Room) RemoveItem(key string) (*Item, bool) {
	idx, ok := bsearch.FindFunc(r.items, key, compareItemKey)
	if !ok {
		return nil, false
	}
	item := r.items[idx]
	r.items = slices.Delete(r.items, idx, idx+1)
	return item, true
}

// Exit returns the destination room ID for a direction.
func (r *Room) Exit(direction string) (string, bool) {
	id, ok := r.Exits[strings.ToLower(direction)]
	return id, ok
}

// Directions returns the room's exit directions in sorted order.
func (r *Room) Directions() []string {
	dirs := make([]string, 0, len(r.Exits))
	for d := range r.Exits {
		dirs = append(dirs, d)
	}
	slices.Sort(dirs)
	return dirs
}

package game

import (
	"slices"
	"strings"

	"github.com/hollowkeep/hollowkeep/internal/world"
	"github.com/hollowkeep/hollowkeep/pkg/bsearch"
)

// Player tracks where the player is and what they carry. The
// inventory is kept sorted by spoken name, same as room contents, so
// it shares the binary-search lookup path.
type Player struct {
	room      *world.Room
	inventory []*world.Item
}

// NewPlayer creates a player standing in the given room.
func NewPlayer(start *world.Room) *Player {
	return &Player{room: start}
}

// Room returns the room the player is in.
func (p *Player) Room() *world.Room {
	return p.room
}

// MoveTo relocates the player.
func (p *Player) MoveTo(r *world.Room) {
	if r != nil {
		p.room = r
	}
}

// Inventory returns carried items in listing order. The slice is
// shared; callers must not mutate it.
func (p *Player) Inventory() []*world.Item {
	return p.inventory
}

// AddItem puts an item into the inventory, keeping it sorted.
func (p *Player) AddItem(item *world.Item) {
	if item == nil {
		return
	}
	p.inventory = append(p.inventory, item)
	slices.SortFunc(p.inventory, func(a, b *world.Item) int {
		return strings.Compare(a.Key(), b.Key())
	})
}

// FindItem looks up a carried item by its lowercased name.
func (p *Player) FindItem(key string) (*world.Item, bool) {
	idx, ok := bsearch.FindFunc(p.inventory, key, func(i *world.Item, k string) int {
		return strings.Compare(i.Key(), k)
	})
	if !ok {
		return nil, false
	}
	return p.inventory[idx], true
}

// RemoveItem removes and returns a carried item, for dropping it.
func (p *Player) RemoveItem(key string) (*world.Item, bool) {
	idx, ok := bsearch.FindFunc(p.inventory, key, func(i *world.Item, k string) int {
		return strings.Compare(i.Key(), k)
	})
	if !ok {
		return nil, false
	}
	item := p.inventory[idx]
	p.inventory = slices.Delete(p.inventory, idx, idx+1)
	return item, true
}

// Has reports whether the player carries the named item.
func (p *Player) Has(key string) bool {
	_, ok := p.FindItem(key)
	return ok
}

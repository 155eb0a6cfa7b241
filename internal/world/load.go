package world

import (
	_ "embed"
	"fmt"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/hollowkeep/hollowkeep/internal/errors"
)

//go:embed castle.yaml
var defaultWorld []byte

// fileSchema mirrors the YAML layout of a world file.
type fileSchema struct {
	Title string       `yaml:"title"`
	Start string       `yaml:"start"`
	Items []itemSchema `yaml:"items"`
	Rooms []roomSchema `yaml:"rooms"`
}

type itemSchema struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Takeable    bool   `yaml:"takeable"`
}

type roomSchema struct {
	ID          string            `yaml:"id"`
	Name        string            `yaml:"name"`
	Description string            `yaml:"description"`
	Exits       map[string]string `yaml:"exits"`
	Items       []string          `yaml:"items"`
}

// Default returns the embedded Hollowkeep castle world.
func Default() *World {
	w, err := Parse(defaultWorld)
	if err != nil {
		// The embedded world is validated by tests; a parse failure
		// here means a broken build, not a runtime condition.
		panic(fmt.Sprintf("embedded world invalid: %v", err))
	}
	return w
}

// Load reads and parses a world file from disk.
func Load(path string) (*World, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New(errors.ErrCodeWorldNotFound, "world file not found", err).
				WithDetail("path", path)
		}
		return nil, errors.Wrap(errors.ErrCodeWorldNotFound, err)
	}
	w, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return w, nil
}

// Parse builds and validates a World from YAML.
func Parse(data []byte) (*World, error) {
	var f fileSchema
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrap(errors.ErrCodeWorldCorrupt, err)
	}

	w := &World{
		Title:   f.Title,
		startID: f.Start,
	}

	// Item catalog, sorted by ID for binary search.
	seenItems := make(map[string]bool, len(f.Items))
	for _, is := range f.Items {
		if is.ID == "" || is.Name == "" {
			return nil, errors.WorldError("item needs both id and name", nil).
				WithDetail("id", is.ID)
		}
		if seenItems[is.ID] {
			return nil, errors.WorldError("duplicate item id", nil).
				WithDetail("id", is.ID)
		}
		seenItems[is.ID] = true
		w.items = append(w.items, &Item{
			ID:          is.ID,
			Name:        is.Name,
			Description: is.Description,
			Takeable:    is.Takeable,
		})
	}
	slices.SortFunc(w.items, func(a, b *Item) int {
		return strings.Compare(a.ID, b.ID)
	})

	// Rooms, sorted by ID.
	seenRooms := make(map[string]bool, len(f.Rooms))
	for _, rs := range f.Rooms {
		if rs.ID == "" || rs.Name == "" {
			return nil, errors.WorldError("room needs both id and name", nil).
				WithDetail("id", rs.ID)
		}
		if seenRooms[rs.ID] {
			return nil, errors.WorldError("duplicate room id", nil).
				WithDetail("id", rs.ID)
		}
		seenRooms[rs.ID] = true

		exits := make(map[string]string, len(rs.Exits))
		for dir, dest := range rs.Exits {
			exits[strings.ToLower(dir)] = dest
		}
		w.rooms = append(w.rooms, &Room{
			ID:          rs.ID,
			Name:        rs.Name,
			Description: strings.TrimRight(rs.Description, "\n"),
			Exits:       exits,
		})
	}
	slices.SortFunc(w.rooms, func(a, b *Room) int {
		return strings.Compare(a.ID, b.ID)
	})

	// Place items. Each catalog item may appear in at most one room;
	// there is exactly one Rusty Key in the keep.
	placed := make(map[string]string)
	for _, rs := range f.Rooms {
		room, _ := w.Room(rs.ID)
		for _, itemID := range rs.Items {
			item, ok := w.Item(itemID)
			if !ok {
				return nil, errors.WorldError("room places unknown item", nil).
					WithDetail("room", rs.ID).
					WithDetail("item", itemID)
			}
			if prev, dup := placed[itemID]; dup {
				return nil, errors.WorldError("item placed in two rooms", nil).
					WithDetail("item", itemID).
					WithDetail("rooms", prev+", "+rs.ID)
			}
			placed[itemID] = rs.ID
			room.AddItem(item)
		}
	}

	if err := w.Validate(); err != nil {
		return nil, err
	}
	return w, nil
}

package world

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/hollowkeep/hollowkeep/internal/errors"
)

func TestParse_RejectsBadYAML(t *testing.T) {
	_, err := Parse([]byte("rooms: [  "))
	if err == nil {
		t.Fatal("expected error for malformed YAML")
	}
	if errors.GetCode(err) != errors.ErrCodeWorldCorrupt {
		t.Errorf("code = %q, want %q", errors.GetCode(err), errors.ErrCodeWorldCorrupt)
	}
}

func TestParse_RejectsDanglingExit(t *testing.T) {
	// Given: A room whose exit points nowhere
	_, err := Parse([]byte(`
start: a
rooms:
  - id: a
    name: A
    description: a
    exits: {north: nowhere}
`))

	// Then: Validation fails with a world-invalid code
	if err == nil {
		t.Fatal("expected error for dangling exit")
	}
	if !stderrors.Is(err, errors.New(errors.ErrCodeWorldInvalid, "", nil)) {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestParse_RejectsMissingStart(t *testing.T) {
	cases := map[string]string{
		"no start key": `
rooms:
  - {id: a, name: A, description: a}
`,
		"unknown start": `
start: ghost
rooms:
  - {id: a, name: A, description: a}
`,
	}

	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := Parse([]byte(src)); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestParse_RejectsDuplicateIDs(t *testing.T) {
	_, err := Parse([]byte(`
start: a
rooms:
  - {id: a, name: A, description: a}
  - {id: a, name: A again, description: a}
`))
	if err == nil {
		t.Fatal("expected error for duplicate room id")
	}

	_, err = Parse([]byte(`
start: a
items:
  - {id: key, name: Key, takeable: true}
  - {id: key, name: Key 2, takeable: true}
rooms:
  - {id: a, name: A, description: a}
`))
	if err == nil {
		t.Fatal("expected error for duplicate item id")
	}
}

func TestParse_RejectsUnknownPlacedItem(t *testing.T) {
	_, err := Parse([]byte(`
start: a
rooms:
  - id: a
    name: A
    description: a
    items: [ghost-item]
`))
	if err == nil {
		t.Fatal("expected error for unknown placed item")
	}
}

func TestParse_RejectsDoublePlacedItem(t *testing.T) {
	_, err := Parse([]byte(`
start: a
items:
  - {id: key, name: Key, takeable: true}
rooms:
  - {id: a, name: A, description: a, items: [key]}
  - {id: b, name: B, description: b, items: [key]}
`))
	if err == nil {
		t.Fatal("expected error for item placed twice")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if errors.GetCode(err) != errors.ErrCodeWorldNotFound {
		t.Errorf("code = %q", errors.GetCode(err))
	}
}

func TestLoad_RoundTrip(t *testing.T) {
	// Given: The embedded world written to disk
	path := filepath.Join(t.TempDir(), "w.yaml")
	if err := os.WriteFile(path, defaultWorld, 0o644); err != nil {
		t.Fatal(err)
	}

	// When: Loading it back
	w, err := Load(path)

	// Then: It matches the embedded world's shape
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if w.RoomCount() != Default().RoomCount() {
		t.Errorf("RoomCount = %d", w.RoomCount())
	}
}

// =============================================================================
// Embedded World
// =============================================================================

func TestDefault_CastleShape(t *testing.T) {
	w := Default()

	if w.Title != "Hollowkeep" {
		t.Errorf("Title = %q", w.Title)
	}
	if w.RoomCount() != 21 {
		t.Errorf("RoomCount = %d, want 21", w.RoomCount())
	}
	if w.ItemCount() != 20 {
		t.Errorf("ItemCount = %d, want 20", w.ItemCount())
	}

	start, ok := w.Start()
	if !ok || start.ID != "damp-cell" {
		t.Fatalf("Start = %v, %v", start, ok)
	}
	if _, ok := start.FindItem("dim torch"); !ok {
		t.Error("the cell should hold the torch")
	}
}

func TestDefault_FullyReachable(t *testing.T) {
	if missing := Default().Unreachable(); len(missing) != 0 {
		t.Errorf("unreachable rooms in default world: %v", missing)
	}
}

func TestDefault_ExitsAreBidirectionalWhereExpected(t *testing.T) {
	// Spot-check the main spine of the map.
	w := Default()
	hops := []struct{ from, dir, to string }{
		{"damp-cell", "north", "narrow-corridor"},
		{"guard-room", "west", "small-armory"},
		{"main-hall", "down", "cellar-stairs"},
		{"tower-stairs", "up", "tower-top"},
		{"storage-room", "east", "hidden-passage"},
	}

	for _, h := range hops {
		room, ok := w.Room(h.from)
		if !ok {
			t.Fatalf("room %q missing", h.from)
		}
		dest, ok := room.Exit(h.dir)
		if !ok || dest != h.to {
			t.Errorf("%s %s = %q, want %q", h.from, h.dir, dest, h.to)
		}
	}
}

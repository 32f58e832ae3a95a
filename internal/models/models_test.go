package models

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultMap(t *testing.T) {
	m, err := DefaultMap()
	if err != nil {
		t.Fatalf("Failed to decode default map: %v", err)
	}

	if m.StartRoom != "Foyer" {
		t.Errorf("Expected start room Foyer, got %s", m.StartRoom)
	}
	if m.TerminalRoom != "Kitchen" {
		t.Errorf("Expected terminal room Kitchen, got %s", m.TerminalRoom)
	}
	if m.RequiredItems != 6 {
		t.Errorf("Expected 6 required items, got %d", m.RequiredItems)
	}
	if len(m.Rooms) != 8 {
		t.Fatalf("Expected 8 rooms, got %d", len(m.Rooms))
	}

	items := 0
	for _, r := range m.Rooms {
		items += len(r.Items)
		if r.Name == "Living Room" && r.Exits[North] != "Movie Room" {
			t.Errorf("Expected Living Room north to be Movie Room, got %q", r.Exits[North])
		}
	}
	if items != 6 {
		t.Errorf("Expected 6 placed items, got %d", items)
	}
}

func TestDecodeMapRejectsUnknownFields(t *testing.T) {
	_, err := DecodeMap([]byte("title: x\nrooms: []\nstart: Foyer\n"))
	if err == nil {
		t.Fatal("Expected an error for unknown field 'start'")
	}
}

func TestLoadMapFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tiny.yaml")
	data := `title: Tiny
start_room: Hall
terminal_room: Exit
required_items: 1
rooms:
  - name: Hall
    exits: {north: Exit}
    items: [Key]
  - name: Exit
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	m, err := LoadMap(path)
	if err != nil {
		t.Fatalf("Failed to load map: %v", err)
	}
	if m.Title != "Tiny" {
		t.Errorf("Expected title Tiny, got %s", m.Title)
	}
	if got := m.Rooms[0].Exits["north"]; got != "Exit" {
		t.Errorf("Expected raw exit key to be preserved, got %q", got)
	}
}

func TestLoadMapMissingFile(t *testing.T) {
	if _, err := LoadMap(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("Expected an error for a missing map file")
	}
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		in   string
		want Direction
		ok   bool
	}{
		{"north", North, true},
		{"SOUTH", South, true},
		{"East", East, true},
		{"wEsT", West, true},
		{"up", "", false},
		{"n", "", false},
	}
	for _, tt := range tests {
		got, ok := ParseDirection(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseDirection(%q) = %q, %v; want %q, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestResult(t *testing.T) {
	if ResultNone.Terminal() {
		t.Error("ResultNone should not be terminal")
	}
	for _, r := range []Result{ResultWin, ResultLoss, ResultQuit} {
		if !r.Terminal() {
			t.Errorf("%s should be terminal", r)
		}
	}
}

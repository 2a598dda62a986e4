package menubar

import (
	"testing"

	"github.com/atomicstack/editor-menubar/internal/menu"
	"github.com/atomicstack/editor-menubar/internal/menu/snapshot"
)

func fileDropdown(t *testing.T) *Dropdown {
	t.Helper()
	f := newFixture(t)
	btn := f.bar.Buttons()[0]
	return newDropdown(btn.Menu, btn.Snapshot, btn.x)
}

func TestDropdownStartsOnFirstSelectable(t *testing.T) {
	d := fileDropdown(t)
	entry := d.Current()
	if entry == nil || entry.ID != "file.new" {
		t.Fatalf("expected highlight on file.new, got %+v", entry)
	}
}

func TestDropdownMovementSkipsSeparatorsAndWraps(t *testing.T) {
	d := fileDropdown(t)
	var visited []string
	for range d.Entries() {
		d.MoveDown()
		entry := d.Current()
		if entry.Kind == snapshot.KindSeparator {
			t.Fatalf("highlight landed on a separator")
		}
		visited = append(visited, entry.ID)
		if entry.ID == "file.new" {
			break
		}
	}
	want := []string{"file.open", menu.ActionOpenRecent, "file.exit", "file.new"}
	if len(visited) != len(want) {
		t.Fatalf("expected cycle %v, got %v", want, visited)
	}
	for i, id := range want {
		if visited[i] != id {
			t.Fatalf("expected cycle %v, got %v", want, visited)
		}
	}

	d.MoveUp()
	if d.Current().ID != "file.exit" {
		t.Fatalf("expected wrap upward to file.exit, got %s", d.Current().ID)
	}
}

func TestDropdownSubmenuStack(t *testing.T) {
	f := newFixture(t)
	btn := f.bar.Buttons()[2]
	d := newDropdown(btn.Menu, btn.Snapshot, btn.x)

	if d.Current().Kind != snapshot.KindSubmenu {
		t.Fatalf("expected the appearance submenu first, got %+v", d.Current())
	}
	if !d.EnterSubmenu() {
		t.Fatalf("expected EnterSubmenu to succeed")
	}
	if d.Depth() != 2 {
		t.Fatalf("expected depth 2, got %d", d.Depth())
	}
	if d.Current().ID != "view.toggleFullScreen" {
		t.Fatalf("expected nested highlight on full screen, got %s", d.Current().ID)
	}
	if !d.PopSubmenu() {
		t.Fatalf("expected PopSubmenu to succeed")
	}
	if d.PopSubmenu() {
		t.Fatalf("popping the root pane must fail")
	}
}

func TestDropdownTypeAhead(t *testing.T) {
	d := fileDropdown(t)

	if !d.TypeAhead('e') {
		t.Fatalf("expected a match for 'e'")
	}
	if !d.TypeAhead('x') {
		t.Fatalf("expected a match for 'ex'")
	}
	if d.Current().ID != "file.exit" {
		t.Fatalf("expected type-ahead to land on file.exit, got %s", d.Current().ID)
	}
	if d.TypeAheadQuery() != "ex" {
		t.Fatalf("expected query %q, got %q", "ex", d.TypeAheadQuery())
	}

	// A rune matching nothing leaves query and highlight alone.
	if d.TypeAhead('q') {
		t.Fatalf("expected no match for 'exq'")
	}
	if d.TypeAheadQuery() != "ex" || d.Current().ID != "file.exit" {
		t.Fatalf("failed match must not disturb state")
	}

	d.MoveDown()
	if d.TypeAheadQuery() != "" {
		t.Fatalf("movement must clear the type-ahead query")
	}
}

func TestDropdownDisposeIsSticky(t *testing.T) {
	d := fileDropdown(t)
	if d.Disposed() {
		t.Fatalf("fresh dropdown must not be disposed")
	}
	d.Dispose()
	d.Dispose()
	if !d.Disposed() {
		t.Fatalf("expected disposed after Dispose")
	}
	var nilDropdown *Dropdown
	if !nilDropdown.Disposed() {
		t.Fatalf("nil dropdown counts as disposed")
	}
}

package menubar

import (
	"github.com/atomicstack/editor-menubar/internal/menu"
	"github.com/atomicstack/editor-menubar/internal/menu/snapshot"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/google/uuid"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// pane is one visible level of a dropdown: the root action list or a
// nested submenu pushed on top of it.
type pane struct {
	menu    menu.ID
	entries []snapshot.Entry
	cursor  int
}

// Dropdown is the widget for one open menu. Nested submenus stack
// inside the same dropdown; Escape pops one level at a time. The
// Handle tags timer messages so a grace-delay close that outlives its
// dropdown becomes a no-op instead of closing a successor.
type Dropdown struct {
	Handle uuid.UUID
	Menu   menu.ID

	stack     []*pane
	typeahead string
	caret     cursor.Model
	anchorX   int
	disposed  bool
}

func newDropdown(id menu.ID, snap *snapshot.Snapshot, anchorX int) *Dropdown {
	root := &pane{menu: id, cursor: -1}
	if snap != nil {
		root.entries = snap.Entries
	}
	root.cursor = firstSelectable(root.entries)
	c := cursor.New()
	c.SetChar(" ")
	return &Dropdown{
		Handle:  uuid.New(),
		Menu:    id,
		stack:   []*pane{root},
		caret:   c,
		anchorX: anchorX,
	}
}

// Disposed reports whether the dropdown has been closed.
func (d *Dropdown) Disposed() bool {
	return d == nil || d.disposed
}

// Dispose marks the dropdown closed. Late blur timers check Disposed
// and do nothing.
func (d *Dropdown) Dispose() {
	if d != nil {
		d.disposed = true
	}
}

func (d *Dropdown) top() *pane {
	if d == nil || len(d.stack) == 0 {
		return nil
	}
	return d.stack[len(d.stack)-1]
}

// Current returns the highlighted entry, or nil on an empty pane.
func (d *Dropdown) Current() *snapshot.Entry {
	p := d.top()
	if p == nil || p.cursor < 0 || p.cursor >= len(p.entries) {
		return nil
	}
	return &p.entries[p.cursor]
}

// MoveDown advances the highlight to the next non-separator entry,
// wrapping at the bottom.
func (d *Dropdown) MoveDown() {
	d.step(1)
}

// MoveUp is the wrapping inverse of MoveDown.
func (d *Dropdown) MoveUp() {
	d.step(-1)
}

func (d *Dropdown) step(delta int) {
	p := d.top()
	if p == nil || len(p.entries) == 0 {
		return
	}
	d.typeahead = ""
	n := len(p.entries)
	i := p.cursor
	for range p.entries {
		i = ((i+delta)%n + n) % n
		if p.entries[i].Kind != snapshot.KindSeparator {
			p.cursor = i
			return
		}
	}
}

// EnterSubmenu pushes the highlighted submenu as a new pane. It
// reports whether the highlight was a submenu entry.
func (d *Dropdown) EnterSubmenu() bool {
	entry := d.Current()
	if entry == nil || entry.Kind != snapshot.KindSubmenu {
		return false
	}
	nested := &pane{menu: menu.ID(entry.ID)}
	if entry.Submenu != nil {
		nested.entries = entry.Submenu.Entries
	}
	nested.cursor = firstSelectable(nested.entries)
	d.stack = append(d.stack, nested)
	d.typeahead = ""
	return true
}

// PopSubmenu drops the top pane. It reports false at the root, where
// Escape should cancel the dropdown instead.
func (d *Dropdown) PopSubmenu() bool {
	if len(d.stack) <= 1 {
		return false
	}
	d.stack = d.stack[:len(d.stack)-1]
	d.typeahead = ""
	return true
}

// TypeAhead extends the incremental query with r and moves the
// highlight to the best fuzzy match. A rune that matches nothing is
// swallowed and the query left unchanged.
func (d *Dropdown) TypeAhead(r rune) bool {
	p := d.top()
	if p == nil || len(p.entries) == 0 {
		return false
	}
	query := d.typeahead + string(r)
	for i, entry := range p.entries {
		if entry.Kind == snapshot.KindSeparator {
			continue
		}
		if fuzzy.MatchFold(query, entry.Label) {
			d.typeahead = query
			p.cursor = i
			return true
		}
	}
	return false
}

// TypeAheadQuery exposes the live query for rendering.
func (d *Dropdown) TypeAheadQuery() string {
	if d == nil {
		return ""
	}
	return d.typeahead
}

// ClearTypeAhead resets the incremental query.
func (d *Dropdown) ClearTypeAhead() {
	if d != nil {
		d.typeahead = ""
	}
}

// Entries returns the visible pane's entries.
func (d *Dropdown) Entries() []snapshot.Entry {
	p := d.top()
	if p == nil {
		return nil
	}
	return p.entries
}

// Cursor returns the highlight index within the visible pane.
func (d *Dropdown) Cursor() int {
	p := d.top()
	if p == nil {
		return -1
	}
	return p.cursor
}

// Depth returns how many panes are stacked, the root included.
func (d *Dropdown) Depth() int {
	if d == nil {
		return 0
	}
	return len(d.stack)
}

// width computes the inner column width needed for the visible pane.
func (d *Dropdown) width() int {
	w := 0
	for _, entry := range d.Entries() {
		lw := displayWidth(entry.Label)
		if entry.Keybinding != "" {
			lw += 2 + displayWidth(entry.Keybinding)
		}
		if entry.Kind == snapshot.KindSubmenu {
			lw += 2
		}
		if lw > w {
			w = lw
		}
	}
	// Leading check/gap column plus breathing room.
	return w + 4
}

func firstSelectable(entries []snapshot.Entry) int {
	for i, entry := range entries {
		if entry.Kind != snapshot.KindSeparator {
			return i
		}
	}
	return -1
}

package menubar

import (
	"testing"

	"github.com/atomicstack/editor-menubar/internal/keybinding"
	"github.com/atomicstack/editor-menubar/internal/menu"
	"github.com/atomicstack/editor-menubar/internal/modkeys"
	"github.com/atomicstack/editor-menubar/internal/settings"
	"github.com/atomicstack/editor-menubar/internal/workspace"
)

// fixture bundles a controller with the live services behind it so
// tests can poke collaborators and observe the bar's reaction.
type fixture struct {
	bar      *MenuBar
	registry *menu.Registry
	settings *settings.Store
	keys     *keybinding.Service
	ws       *workspace.Service
	tracker  *modkeys.Tracker
}

func testRegistry() *menu.Registry {
	r := menu.NewRegistry([]menu.ID{menu.File, menu.Edit, menu.View})
	r.SetMenu(menu.File, "&File", []menu.Group{
		{
			{ID: "file.new", Title: "&New File"},
			{ID: "file.open", Title: "&Open File…"},
		},
		{
			{ID: menu.ActionOpenRecent, Title: "Open &Recent"},
		},
		{
			{ID: "file.exit", Title: "E&xit"},
		},
	})
	r.SetMenu(menu.Edit, "&Edit", []menu.Group{
		{
			{ID: "edit.undo", Title: "&Undo"},
			{ID: "edit.redo", Title: "&Redo", Disabled: true},
		},
	})
	r.SetMenu(menu.View, "&View", []menu.Group{
		{
			{ID: "", Title: "&Appearance", Submenu: menu.Appearance},
			{ID: "view.toggleStatusBar", Title: "&Status Bar"},
		},
	})
	r.SetMenu(menu.Appearance, "&Appearance", []menu.Group{
		{
			{ID: "view.toggleFullScreen", Title: "&Full Screen"},
		},
	})
	return r
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		registry: testRegistry(),
		settings: settings.NewStore(),
		keys: keybinding.NewService(map[string]string{
			"file.new":  "Ctrl+N",
			"edit.undo": "Ctrl+Z",
		}),
		ws:      workspace.NewService(),
		tracker: modkeys.NewTracker(),
	}
	f.ws.SetFocused(true)
	f.bar = New(Options{
		Registry:    f.registry,
		Settings:    f.settings,
		Keybindings: f.keys,
		Workspace:   f.ws,
		Tracker:     f.tracker,
	})
	f.bar.Layout(80, 24)
	t.Cleanup(f.bar.Dispose)
	t.Cleanup(f.tracker.Dispose)
	return f
}

// altTap simulates pressing and releasing Alt with nothing in
// between.
func (f *fixture) altTap() {
	f.tracker.KeyDown(modkeys.KeyAlt)
	f.tracker.KeyUp(modkeys.KeyAlt)
}

// focusBar drives the bar into the focused state on button 0.
func (f *fixture) focusBar(t *testing.T) {
	t.Helper()
	f.altTap()
	if f.bar.State() != StateFocused {
		t.Fatalf("expected focused state after alt tap, got %v", f.bar.State())
	}
}

// openMenu drives the bar into the open state on button idx.
func (f *fixture) openMenu(t *testing.T, idx int) {
	t.Helper()
	f.focusBar(t)
	for f.bar.Focused() != idx {
		f.bar.FocusNext()
	}
	f.bar.SetState(StateOpen)
	if f.bar.State() != StateOpen {
		t.Fatalf("expected open state, got %v", f.bar.State())
	}
	if f.bar.focused == nil || f.bar.focused.Dropdown == nil {
		t.Fatalf("expected a dropdown after opening")
	}
}

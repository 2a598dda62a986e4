package menubar

import (
	"strings"
	"testing"

	"github.com/atomicstack/editor-menubar/internal/keybinding"
	"github.com/atomicstack/editor-menubar/internal/menu"
	"github.com/atomicstack/editor-menubar/internal/settings"
	"github.com/atomicstack/editor-menubar/internal/workspace"
)

func TestRebuildsCoalesce(t *testing.T) {
	f := newFixture(t)

	f.registry.SetMenu(menu.File, "F&ile", f.registry.OrderedGroups(menu.File))
	f.keys.SetHints(map[string]string{"file.new": "Ctrl+Alt+N"})
	f.ws.SetRecentlyOpened(workspace.RecentlyOpened{
		Files: []workspace.Entry{{Path: "/tmp/a.go", Label: "a.go"}},
	})

	cmd := f.bar.Tick()
	if cmd == nil {
		t.Fatalf("expected a pending rebuild command")
	}
	f.bar.Update(cmd())
	if f.bar.Tick() != nil {
		t.Fatalf("a burst of changes must coalesce into one rebuild")
	}

	btn := f.bar.Buttons()[0]
	if btn.Title != "File" || btn.Mnemonic != 1 {
		t.Fatalf("rebuild must pick up the new title, got %q/%d", btn.Title, btn.Mnemonic)
	}
	if btn.Snapshot.Entries[0].Keybinding != "Ctrl+Alt+N" {
		t.Fatalf("rebuild must pick up new hints, got %q", btn.Snapshot.Entries[0].Keybinding)
	}
}

func TestRebuildPreservesButtonIdentity(t *testing.T) {
	f := newFixture(t)
	before := f.bar.Buttons()

	f.registry.SetMenu(menu.File, "&Fichier", f.registry.OrderedGroups(menu.File))
	f.bar.FlushPendingRebuild()

	after := f.bar.Buttons()
	if len(before) != len(after) {
		t.Fatalf("rebuild must not change the button count")
	}
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("rebuild must refresh buttons in place, button %d was recreated", i)
		}
	}
	if after[0].Title != "Fichier" {
		t.Fatalf("rebuild must refresh titles, got %q", after[0].Title)
	}
}

func TestUnrelatedSettingDoesNotRebuild(t *testing.T) {
	f := newFixture(t)
	f.settings.Set("editor.fontSize", 14)
	if f.bar.Tick() != nil {
		t.Fatalf("an unrelated setting must not schedule a rebuild")
	}
}

func TestDisposeReleasesSubscriptions(t *testing.T) {
	f := newFixture(t)
	f.bar.Dispose()
	f.bar.Dispose()

	f.registry.SetMenu(menu.File, "&Late", f.registry.OrderedGroups(menu.File))
	if f.bar.Tick() != nil {
		t.Fatalf("a disposed controller must not react to collaborators")
	}
}

func TestStaleFocusIndexClamped(t *testing.T) {
	f := newFixture(t)
	f.focusBar(t)
	f.bar.FocusNext()
	f.bar.FocusNext()
	if f.bar.Focused() != 2 {
		t.Fatalf("expected focus 2, got %d", f.bar.Focused())
	}

	// Shrink to two menus while button 2 is focused.
	f.bar.buttons = f.bar.buttons[:2]
	f.bar.performRebuild()
	if f.bar.Focused() != 1 {
		t.Fatalf("stale focus must clamp to the last button, got %d", f.bar.Focused())
	}
}

func TestNativeSyncOnlyWithoutCustomBar(t *testing.T) {
	registry := testRegistry()
	store := settings.NewStore()
	store.Set(settings.KeyTitleBarStyle, "native")
	sync := &RecordingSync{}
	bar := New(Options{
		Registry:    registry,
		Settings:    store,
		Keybindings: keybinding.NewService(nil),
		Workspace:   workspace.NewService(),
		Native:      sync,
	})
	defer bar.Dispose()

	if sync.Pushes != 1 {
		t.Fatalf("construction must push the native structure once, got %d", sync.Pushes)
	}
	if len(sync.Last) != 3 {
		t.Fatalf("expected 3 native menus, got %d", len(sync.Last))
	}
	if sync.Last[0].Title != "File" || sync.Last[0].ID != "file" {
		t.Fatalf("unexpected first native menu %+v", sync.Last[0])
	}

	// The custom bar never shows in native mode.
	if bar.State() != StateHidden {
		t.Fatalf("native mode keeps the custom bar dormant, got %v", bar.State())
	}

	registry.SetMenu(menu.File, "&Fichier", registry.OrderedGroups(menu.File))
	bar.FlushPendingRebuild()
	if sync.Pushes != 2 {
		t.Fatalf("rebuild must push again, got %d pushes", sync.Pushes)
	}
}

func TestNativeItemsMirrorSnapshot(t *testing.T) {
	f := newFixture(t)
	menus := f.bar.nativeMenus()

	var view NativeMenu
	for _, m := range menus {
		if m.ID == "view" {
			view = m
		}
	}
	if len(view.Items) != 2 {
		t.Fatalf("expected 2 view items, got %d", len(view.Items))
	}
	if len(view.Items[0].Submenu) != 1 {
		t.Fatalf("expected the appearance submenu to nest, got %+v", view.Items[0])
	}

	var file NativeMenu
	for _, m := range menus {
		if m.ID == "file" {
			file = m
		}
	}
	separators := 0
	for _, item := range file.Items {
		if item.Separator {
			separators++
		}
	}
	if separators != 2 {
		t.Fatalf("expected 2 separators in the file menu, got %d", separators)
	}
}

func TestViewRendersTitles(t *testing.T) {
	f := newFixture(t)
	view := f.bar.View()
	for _, title := range []string{"File", "Edit", "View"} {
		if !strings.Contains(view, title) {
			t.Fatalf("bar view missing %q:\n%s", title, view)
		}
	}
}

func TestDropdownViewShowsEntries(t *testing.T) {
	f := newFixture(t)
	if _, _, ok := f.bar.DropdownView(); ok {
		t.Fatalf("no dropdown view while closed")
	}

	f.openMenu(t, 0)
	view, rect, ok := f.bar.DropdownView()
	if !ok {
		t.Fatalf("expected a dropdown view while open")
	}
	if rows := strings.Count(view, "\n") + 1; rows != rect.Height {
		t.Fatalf("view has %d rows, rect says %d", rows, rect.Height)
	}
	for _, label := range []string{"New File", "Open Recent", "Exit", "Ctrl+N"} {
		if !strings.Contains(view, label) {
			t.Fatalf("dropdown view missing %q:\n%s", label, view)
		}
	}
}

func TestDropdownBlurGraceClosesOnlyMatchingHandle(t *testing.T) {
	f := newFixture(t)
	f.openMenu(t, 0)
	first := f.bar.focused.Dropdown

	cmd := f.bar.NoteDropdownBlur()
	if cmd == nil {
		t.Fatalf("expected a blur timer command")
	}

	// The menu moved before the timer fired; the stale handle must
	// not close the successor.
	f.bar.FocusNext()
	f.bar.Update(dropdownBlurMsg{Handle: first.Handle})
	if f.bar.State() != StateOpen {
		t.Fatalf("stale blur must be a no-op, got %v", f.bar.State())
	}

	current := f.bar.focused.Dropdown
	f.bar.Update(dropdownBlurMsg{Handle: current.Handle})
	if f.bar.State() != StateFocused {
		t.Fatalf("matching blur must close the dropdown, got %v", f.bar.State())
	}
}

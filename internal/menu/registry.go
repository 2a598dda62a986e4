package menu

import "runtime"

type definition struct {
	title  string
	groups []Group
}

// Registry holds the ordered action groups contributed to each menu
// and notifies listeners when a menu's contributions change.
type Registry struct {
	order     []ID
	menus     map[ID]*definition
	listeners []func(ID)
}

// NewRegistry constructs an empty registry with the given top-level
// display order.
func NewRegistry(order []ID) *Registry {
	return &Registry{
		order: append([]ID(nil), order...),
		menus: make(map[ID]*definition),
	}
}

// TopLevel returns the top-level menu ids in display order.
func (r *Registry) TopLevel() []ID {
	return append([]ID(nil), r.order...)
}

// Title returns the display title for a menu, or "" when unknown.
func (r *Registry) Title(id ID) string {
	if def, ok := r.menus[id]; ok {
		return def.title
	}
	return ""
}

// OrderedGroups returns the contribution groups for a menu in order.
// Unknown menus yield nil, which builds as an empty snapshot.
func (r *Registry) OrderedGroups(id ID) []Group {
	if def, ok := r.menus[id]; ok {
		return def.groups
	}
	return nil
}

// SetMenu registers or replaces a menu definition and notifies
// listeners for that id.
func (r *Registry) SetMenu(id ID, title string, groups []Group) {
	r.menus[id] = &definition{title: title, groups: groups}
	for _, fn := range r.listeners {
		if fn != nil {
			fn(id)
		}
	}
}

// OnChange registers a listener invoked with the id of each changed
// menu. The returned function removes the listener.
func (r *Registry) OnChange(fn func(ID)) func() {
	r.listeners = append(r.listeners, fn)
	idx := len(r.listeners) - 1
	return func() {
		if idx < len(r.listeners) {
			r.listeners[idx] = nil
		}
	}
}

// BuildRegistry assembles the stock editor menus for the current OS.
func BuildRegistry() *Registry {
	return buildRegistryForOS(runtime.GOOS)
}

func buildRegistryForOS(goos string) *Registry {
	order := []ID{File, Edit, Selection, View, Goto, Run, Terminal}
	if goos == "darwin" {
		order = append(order, Window)
	}
	order = append(order, Help)

	r := NewRegistry(order)

	r.SetMenu(File, "&File", []Group{
		{
			{ID: "file.newFile", Title: "&New File"},
			{ID: "file.newWindow", Title: "New &Window"},
		},
		{
			{ID: "file.openFile", Title: "&Open File…"},
			{ID: "file.openFolder", Title: "Open &Folder…"},
			{ID: ActionOpenRecent, Title: "Open &Recent"},
		},
		{
			{ID: "file.save", Title: "&Save"},
			{ID: "file.saveAs", Title: "Save &As…"},
			{ID: "file.saveAll", Title: "Save A&ll"},
			{ID: "file.toggleAutoSave", Title: "A&uto Save"},
		},
		{
			{ID: "file.preferences", Title: "Prefere&nces", Submenu: Preferences},
		},
		{
			{ID: "file.closeEditor", Title: "&Close Editor"},
			{ID: "file.closeWindow", Title: "Clos&e Window"},
			{ID: "file.exit", Title: "E&xit"},
		},
	})

	r.SetMenu(Preferences, "Prefere&nces", []Group{
		{
			{ID: "preferences.settings", Title: "&Settings"},
			{ID: "preferences.keyboardShortcuts", Title: "&Keyboard Shortcuts"},
		},
	})

	r.SetMenu(Edit, "&Edit", []Group{
		{
			{ID: "edit.undo", Title: "&Undo"},
			{ID: "edit.redo", Title: "&Redo"},
		},
		{
			{ID: "edit.cut", Title: "Cu&t"},
			{ID: "edit.copy", Title: "&Copy"},
			{ID: "edit.paste", Title: "&Paste"},
		},
		{
			{ID: "edit.find", Title: "&Find"},
			{ID: "edit.replace", Title: "Replac&e"},
		},
	})

	r.SetMenu(Selection, "&Selection", []Group{
		{
			{ID: "selection.selectAll", Title: "Select &All"},
			{ID: "selection.expand", Title: "&Expand Selection"},
			{ID: "selection.shrink", Title: "&Shrink Selection"},
		},
		{
			{ID: "selection.addCursorAbove", Title: "Add Cursor A&bove"},
			{ID: "selection.addCursorBelow", Title: "Add Cursor Belo&w"},
			{ID: "selection.switchMultiCursorModifier", Title: "Switch Multi-Cursor Modifier"},
		},
	})

	r.SetMenu(View, "&View", []Group{
		{
			{ID: "view.commandPalette", Title: "&Command Palette…"},
			{ID: "view.openView", Title: "Open &View…"},
		},
		{
			{ID: "view.appearance", Title: "&Appearance", Submenu: Appearance},
		},
		{
			{ID: "view.zoomIn", Title: "&Zoom In"},
			{ID: "view.zoomOut", Title: "Zoom &Out"},
			{ID: "view.resetZoom", Title: "&Reset Zoom"},
		},
	})

	r.SetMenu(Appearance, "&Appearance", []Group{
		{
			{ID: "view.toggleFullScreen", Title: "&Full Screen"},
		},
		{
			{ID: "view.toggleStatusBar", Title: "Show &Status Bar"},
			{ID: "view.toggleActivityBar", Title: "Show &Activity Bar"},
			{ID: "view.toggleSidebarPosition", Title: "Move Side Bar"},
		},
	})

	r.SetMenu(Goto, "&Go", []Group{
		{
			{ID: "go.gotoFile", Title: "Go to &File…"},
			{ID: "go.gotoSymbol", Title: "Go to &Symbol…"},
			{ID: "go.gotoLine", Title: "Go to &Line/Column…"},
		},
		{
			{ID: "go.back", Title: "&Back"},
			{ID: "go.forward", Title: "For&ward"},
		},
	})

	r.SetMenu(Run, "&Run", []Group{
		{
			{ID: "run.startDebugging", Title: "&Start Debugging"},
			{ID: "run.runWithoutDebugging", Title: "Run &Without Debugging"},
			{ID: "run.stopDebugging", Title: "S&top Debugging", Disabled: true},
		},
		{
			{ID: "run.toggleBreakpoint", Title: "Toggle &Breakpoint"},
		},
	})

	r.SetMenu(Terminal, "&Terminal", []Group{
		{
			{ID: "terminal.new", Title: "&New Terminal"},
			{ID: "terminal.split", Title: "&Split Terminal"},
		},
		{
			{ID: "terminal.runActiveFile", Title: "Run &Active File"},
		},
	})

	if goos == "darwin" {
		r.SetMenu(Window, "&Window", []Group{
			{
				{ID: "window.minimize", Title: "&Minimize"},
				{ID: "window.zoom", Title: "&Zoom"},
			},
		})
	}

	r.SetMenu(Help, "&Help", []Group{
		{
			{ID: "help.welcome", Title: "&Welcome"},
			{ID: "help.documentation", Title: "&Documentation"},
		},
		{
			{ID: "help.about", Title: "&About"},
		},
	})

	return r
}

package snapshot

import (
	"github.com/atomicstack/editor-menubar/internal/keybinding"
	"github.com/atomicstack/editor-menubar/internal/menu"
	"github.com/atomicstack/editor-menubar/internal/settings"
	"github.com/atomicstack/editor-menubar/internal/workspace"
)

// maxRecentEntries caps each injected recently-opened block.
const maxRecentEntries = 5

// Prefixes for injected recently-opened entry ids.
const (
	RecentWorkspacePrefix = "file.openRecent.workspace:"
	RecentFilePrefix      = "file.openRecent.file:"
)

// Builder turns registry contributions into display-ready snapshots,
// folding in configuration-driven labels and checked flags, keybinding
// hints, and recently-opened injection.
type Builder struct {
	registry *menu.Registry
	settings *settings.Store
	keys     *keybinding.Service
	ws       *workspace.Service
}

// NewBuilder wires a builder to its collaborating services.
func NewBuilder(registry *menu.Registry, store *settings.Store, keys *keybinding.Service, ws *workspace.Service) *Builder {
	return &Builder{registry: registry, settings: store, keys: keys, ws: ws}
}

// Build resolves one menu into a snapshot, recursing into submenus.
// A menu with no registry contributions yields an empty snapshot.
func (b *Builder) Build(id menu.ID) *Snapshot {
	mnemonics := b.settings.Bool(settings.KeyMnemonicsEnabled)
	snap := &Snapshot{}
	for _, group := range b.registry.OrderedGroups(id) {
		entries := b.buildGroup(group, mnemonics)
		if len(entries) == 0 {
			continue
		}
		if len(snap.Entries) > 0 {
			snap.Entries = append(snap.Entries, Separator())
		}
		snap.Entries = append(snap.Entries, entries...)
	}
	return snap
}

func (b *Builder) buildGroup(group menu.Group, mnemonics bool) []Entry {
	entries := make([]Entry, 0, len(group))
	for _, action := range group {
		if action.ID == menu.ActionOpenRecent {
			entries = append(entries, b.recentEntries()...)
		}
		if action.Submenu != "" {
			nested := b.Build(action.Submenu)
			entries = append(entries, b.newEntry(action, mnemonics, func(e *Entry) {
				e.Kind = KindSubmenu
				e.Submenu = nested
			}))
			continue
		}
		entries = append(entries, b.newEntry(action, mnemonics, nil))
	}
	return entries
}

func (b *Builder) newEntry(action menu.Action, mnemonics bool, mutate func(*Entry)) Entry {
	title := action.Title
	if override, ok := labelRules[action.ID]; ok {
		title = override(b.settings)
	}
	label, idx := ParseMnemonic(title)
	if !mnemonics {
		idx = -1
	}
	entry := Entry{
		Kind:       KindAction,
		ID:         action.ID,
		Label:      label,
		Mnemonic:   idx,
		Enabled:    !action.Disabled,
		Keybinding: b.keys.Lookup(action.ID),
	}
	if rule, ok := checkedRules[action.ID]; ok {
		entry.Checked = rule(b.settings, b.ws)
	}
	if mutate != nil {
		mutate(&entry)
	}
	return entry
}

// recentEntries expands the open-recent slot: up to five workspaces,
// a separator when any were emitted, up to five files, and a trailing
// separator when any were emitted. The slot action itself follows the
// block, so the trailing separator always has content after it.
func (b *Builder) recentEntries() []Entry {
	recent := b.ws.RecentlyOpened()
	entries := make([]Entry, 0, 2*maxRecentEntries+2)
	entries = appendRecentBlock(entries, recent.Workspaces, RecentWorkspacePrefix)
	entries = appendRecentBlock(entries, recent.Files, RecentFilePrefix)
	return entries
}

func appendRecentBlock(entries []Entry, list []workspace.Entry, prefix string) []Entry {
	n := len(list)
	if n == 0 {
		return entries
	}
	if n > maxRecentEntries {
		n = maxRecentEntries
	}
	for _, item := range list[:n] {
		label := item.Label
		if label == "" {
			label = item.Path
		}
		entries = append(entries, Entry{
			Kind:     KindAction,
			ID:       prefix + item.Path,
			Label:    label,
			Mnemonic: -1,
			Enabled:  true,
		})
	}
	return append(entries, Separator())
}

// labelRules recomputes raw titles from live configuration. Keeping
// them pure makes rebuilds deterministic for a given settings state.
var labelRules = map[string]func(*settings.Store) string{
	"selection.switchMultiCursorModifier": func(s *settings.Store) string {
		if s.String(settings.KeyMultiCursorModifier, "ctrlCmd") == "alt" {
			return "Switch to Ctrl+Click for &Multi-Cursor"
		}
		return "Switch to Alt+Click for &Multi-Cursor"
	},
	"view.toggleSidebarPosition": func(s *settings.Store) string {
		if s.String(settings.KeySidebarPosition, "left") == "left" {
			return "&Move Side Bar Right"
		}
		return "&Move Side Bar Left"
	},
}

var checkedRules = map[string]func(*settings.Store, *workspace.Service) bool{
	"file.toggleAutoSave": func(s *settings.Store, _ *workspace.Service) bool {
		return s.String(settings.KeyAutoSave, settings.AutoSaveOff) != settings.AutoSaveOff
	},
	"view.toggleStatusBar": func(s *settings.Store, _ *workspace.Service) bool {
		return s.Bool(settings.KeyStatusBarVisible)
	},
	"view.toggleActivityBar": func(s *settings.Store, _ *workspace.Service) bool {
		return s.Bool(settings.KeyActivityBarVisible)
	},
	"view.toggleFullScreen": func(_ *settings.Store, ws *workspace.Service) bool {
		return ws.Fullscreen()
	},
}

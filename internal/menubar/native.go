package menubar

import (
	"github.com/atomicstack/editor-menubar/internal/menu/snapshot"
)

// NativeSync receives the full menu structure whenever it changes.
// Implementations bridge to an OS menu bar; they are only consulted
// when the title-bar style is not custom.
type NativeSync interface {
	Push(menus []NativeMenu)
}

// NativeMenu is one top-level menu in host-neutral form.
type NativeMenu struct {
	ID    string
	Title string
	Items []NativeItem
}

// NativeItem is one entry of a native menu. Exactly one of Separator
// or a populated Label applies; Submenu is non-nil for nested menus.
type NativeItem struct {
	ID        string
	Label     string
	Enabled   bool
	Checked   bool
	Separator bool
	Submenu   []NativeItem
}

// nativeMenus flattens the current button snapshots into the
// host-neutral structure.
func (b *MenuBar) nativeMenus() []NativeMenu {
	menus := make([]NativeMenu, 0, len(b.buttons))
	for _, btn := range b.buttons {
		m := NativeMenu{ID: string(btn.Menu), Title: btn.Title}
		if btn.Snapshot != nil {
			m.Items = nativeItems(btn.Snapshot.Entries)
		}
		menus = append(menus, m)
	}
	return menus
}

func nativeItems(entries []snapshot.Entry) []NativeItem {
	items := make([]NativeItem, 0, len(entries))
	for _, entry := range entries {
		switch entry.Kind {
		case snapshot.KindSeparator:
			items = append(items, NativeItem{Separator: true})
		case snapshot.KindSubmenu:
			item := NativeItem{
				ID:      entry.ID,
				Label:   entry.Label,
				Enabled: true,
			}
			if entry.Submenu != nil {
				item.Submenu = nativeItems(entry.Submenu.Entries)
			}
			items = append(items, item)
		default:
			items = append(items, NativeItem{
				ID:      entry.ID,
				Label:   entry.Label,
				Enabled: entry.Enabled,
				Checked: entry.Checked,
			})
		}
	}
	return items
}

// RecordingSync is a NativeSync that keeps the last pushed structure.
// It stands in where no OS bridge exists.
type RecordingSync struct {
	Pushes int
	Last   []NativeMenu
}

func (r *RecordingSync) Push(menus []NativeMenu) {
	r.Pushes++
	r.Last = menus
}

package menubar

import (
	"github.com/atomicstack/editor-menubar/internal/menu"
	"github.com/atomicstack/editor-menubar/internal/menu/snapshot"
)

// Button is one rendered top-level menu button. The button set is
// created once and persists for the controller's lifetime; rebuilds
// refresh titles, mnemonics, and snapshots in place so keyboard focus
// survives.
type Button struct {
	Menu         menu.ID
	Title        string
	Mnemonic     int  // rune index into Title, -1 when none
	MnemonicRune rune // lower-cased jump key, 0 when none
	Snapshot     *snapshot.Snapshot

	x     int // cell offset of the button within the bar
	width int // rendered cell width including padding
}

// X returns the button's cell offset within the bar.
func (btn *Button) X() int {
	return btn.x
}

// Width returns the button's rendered cell width.
func (btn *Button) Width() int {
	return btn.width
}

// Buttons returns the button records in display order.
func (b *MenuBar) Buttons() []*Button {
	return b.buttons
}

// buttonAt hit-tests a bar-relative cell column.
func (b *MenuBar) buttonAt(x int) int {
	for i, btn := range b.buttons {
		if x >= btn.x && x < btn.x+btn.width {
			return i
		}
	}
	return -1
}

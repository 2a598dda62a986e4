package menubar

import (
	"strings"

	"github.com/atomicstack/editor-menubar/internal/menu/snapshot"
	"github.com/atomicstack/editor-menubar/internal/theme"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

// Box-drawing characters for the dropdown frame.
const (
	boxTLC = "╭"
	boxTRC = "╮"
	boxBLC = "╰"
	boxBRC = "╯"
	boxHZ  = "─"
	boxVT  = "│"
)

const (
	checkedMark  = "✓"
	submenuArrow = "▸"
)

// View renders the bar row, padded to the full width. It returns ""
// while the bar is hidden, in which case the host should not reserve
// the row.
func (b *MenuBar) View() string {
	if !b.visible {
		return ""
	}
	styles := theme.Default()
	showMnemonics := b.altHeld || b.state.AtLeast(StateFocused)

	var row strings.Builder
	used := 0
	pad := b.buttonPadding()
	padding := strings.Repeat(" ", pad)
	for i, btn := range b.buttons {
		focused := b.focused != nil && b.focused.Index == i
		row.WriteString(b.renderButton(btn, focused, showMnemonics, padding, styles))
		used += btn.width
	}
	if used < b.width {
		row.WriteString(styles.Bar.Render(strings.Repeat(" ", b.width-used)))
	}
	return row.String()
}

func (b *MenuBar) renderButton(btn *Button, focused, showMnemonics bool, padding string, styles *theme.Styles) string {
	base := styles.Button
	mark := styles.Mnemonic
	if focused {
		base = styles.ButtonFocused
		mark = styles.MnemonicFocused
	}
	if !showMnemonics || btn.Mnemonic < 0 {
		return base.Render(padding + btn.Title + padding)
	}
	runes := []rune(btn.Title)
	idx := btn.Mnemonic
	if idx >= len(runes) {
		return base.Render(padding + btn.Title + padding)
	}
	return base.Render(padding+string(runes[:idx])) +
		mark.Render(string(runes[idx])) +
		base.Render(string(runes[idx+1:])+padding)
}

// dropdownRect computes the cell box the open dropdown occupies, its
// border included. The box anchors under its button and is pulled
// left when it would spill past the right edge.
func (b *MenuBar) dropdownRect(d *Dropdown) Rect {
	if d == nil {
		return Rect{}
	}
	width := d.width() + 2
	height := len(d.Entries()) + 2
	x := d.anchorX
	if x+width > b.width {
		x = b.width - width
	}
	if x < 0 {
		x = 0
	}
	return Rect{X: x, Y: barHeight, Width: width, Height: height}
}

// DropdownView renders the open dropdown as an overlay block and
// reports where to paint it. ok is false when no dropdown is open.
func (b *MenuBar) DropdownView() (view string, rect Rect, ok bool) {
	if b.focused == nil || b.focused.Dropdown == nil {
		return "", Rect{}, false
	}
	d := b.focused.Dropdown
	rect = b.dropdownRect(d)
	return b.renderDropdown(d, rect), rect, true
}

func (b *MenuBar) renderDropdown(d *Dropdown, rect Rect) string {
	styles := theme.Default()
	innerW := rect.Width - 2
	entries := d.Entries()
	cursor := d.Cursor()

	rows := make([]string, 0, rect.Height)
	rows = append(rows, styles.DropdownBorder.Render(boxTLC+strings.Repeat(boxHZ, innerW)+boxTRC))

	for i, entry := range entries {
		var content string
		switch entry.Kind {
		case snapshot.KindSeparator:
			rows = append(rows,
				styles.DropdownBorder.Render(boxVT)+
					styles.Separator.Render(strings.Repeat(boxHZ, innerW))+
					styles.DropdownBorder.Render(boxVT))
			continue
		default:
			content = renderEntry(entry, innerW)
		}

		style := styles.DropdownItem
		switch {
		case entry.Kind == snapshot.KindAction && !entry.Enabled:
			style = styles.DropdownDisabled
		case i == cursor:
			style = styles.DropdownSelected
		}
		rows = append(rows,
			styles.DropdownBorder.Render(boxVT)+
				style.Render(content)+
				styles.DropdownBorder.Render(boxVT))
	}

	rows = append(rows, b.renderDropdownBottom(d, innerW, styles))
	return strings.Join(rows, "\n")
}

// renderEntry lays out one selectable row: a check column, the label,
// and a right-aligned keybinding hint or submenu arrow.
func renderEntry(entry snapshot.Entry, innerW int) string {
	left := "  "
	if entry.Checked {
		left = checkedMark + " "
	}
	left += entry.Label

	right := ""
	switch {
	case entry.Kind == snapshot.KindSubmenu:
		right = submenuArrow + " "
	case entry.Keybinding != "":
		right = entry.Keybinding + " "
	}

	gap := innerW - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		max := innerW - lipgloss.Width(right) - 2
		if max > 0 {
			left = truncate.StringWithTail(left, uint(max), "…")
		}
		gap = innerW - lipgloss.Width(left) - lipgloss.Width(right)
		if gap < 0 {
			gap = 0
		}
	}
	return left + strings.Repeat(" ", gap) + right
}

// renderDropdownBottom embeds the live type-ahead query into the
// bottom border: ╰─ query ────╯.
func (b *MenuBar) renderDropdownBottom(d *Dropdown, innerW int, styles *theme.Styles) string {
	query := d.TypeAheadQuery()
	if query == "" {
		return styles.DropdownBorder.Render(boxBLC + strings.Repeat(boxHZ, innerW) + boxBRC)
	}
	seg := " " + query
	dashes := innerW - 2 - len([]rune(seg))
	if dashes < 0 {
		seg = " … "
		dashes = innerW - 2 - len([]rune(seg))
	}
	if dashes < 0 {
		dashes = 0
	}
	return styles.DropdownBorder.Render(boxBLC+boxHZ) +
		styles.TypeAhead.Render(seg) +
		d.caret.View() +
		styles.DropdownBorder.Render(strings.Repeat(boxHZ, dashes)+boxBRC)
}

package ui

import (
	"strings"

	"github.com/atomicstack/editor-menubar/internal/menubar"
	"github.com/atomicstack/editor-menubar/internal/settings"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/truncate"
)

// View renders the bar, the placeholder editor surface, and the
// status line, then paints any open dropdown over the result.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	width, height := m.width, m.height
	if width <= 0 || height <= 0 {
		return ""
	}

	rows := make([]string, 0, height)
	if bar := m.bar.View(); bar != "" {
		rows = append(rows, bar)
	}

	statusBar := m.settings.Bool(settings.KeyStatusBarVisible)
	bodyRows := height - len(rows)
	if statusBar {
		bodyRows--
	}
	rows = append(rows, m.bodyLines(bodyRows)...)
	if statusBar {
		rows = append(rows, m.statusLine())
	}

	if dropdown, rect, ok := m.bar.DropdownView(); ok {
		overlay(rows, dropdown, rect)
	}
	return strings.Join(rows, "\n")
}

func (m *Model) bodyLines(n int) []string {
	if n <= 0 {
		return nil
	}
	hints := []string{
		"",
		"  Press F10 or tap Alt to focus the menu bar.",
		"  Arrow keys move between menus; Enter opens one.",
		"  Type to jump to a menu item; Esc walks back out.",
		"  Ctrl+Q quits.",
	}
	lines := make([]string, n)
	for i := range lines {
		var text string
		if i < len(hints) {
			text = hints[i]
		}
		lines[i] = pad(styles.Body.Render(text), m.width)
	}
	return lines
}

func (m *Model) statusLine() string {
	text := "  " + m.statusMsg
	if m.statusMsg == "" {
		text = "  Ready"
	}
	if m.settings.String(settings.KeyAutoSave, settings.AutoSaveOff) != settings.AutoSaveOff {
		text += "  •  Auto Save"
	}
	return pad(styles.Status.Render(text), m.width)
}

// overlay paints a multi-line block over rows at rect, splicing each
// block line into the target row with ANSI-aware cuts so underlying
// styling survives on both sides.
func overlay(rows []string, block string, rect menubar.Rect) {
	lines := strings.Split(block, "\n")
	for i, line := range lines {
		y := rect.Y + i
		if y < 0 || y >= len(rows) {
			continue
		}
		rows[y] = splice(rows[y], line, rect.X, rect.Width)
	}
}

// splice replaces width cells of row starting at column x with the
// overlay segment.
func splice(row, segment string, x, width int) string {
	if w := ansi.StringWidth(row); w < x+width {
		row += strings.Repeat(" ", x+width-w)
	}
	left := ansi.Truncate(row, x, "")
	right := ansi.TruncateLeft(row, x+width, "")
	return left + segment + right
}

func pad(text string, width int) string {
	w := ansi.StringWidth(text)
	if w > width {
		return truncate.StringWithTail(text, uint(width), "…")
	}
	return text + strings.Repeat(" ", width-w)
}

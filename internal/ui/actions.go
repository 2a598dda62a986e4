package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/atomicstack/editor-menubar/internal/menu/snapshot"
	"github.com/atomicstack/editor-menubar/internal/menubar"
	"github.com/atomicstack/editor-menubar/internal/settings"
	"github.com/atomicstack/editor-menubar/internal/ui/command"
	tea "github.com/charmbracelet/bubbletea"
)

// Zoom levels follow the editor convention: each step scales display
// size by 1.2, clamped to a sane range.
const (
	zoomStep     = 1.2
	minZoomLevel = -8
	maxZoomLevel = 8
)

// statusMsg replaces the status line text.
type statusMsg struct {
	text string
}

func status(format string, args ...interface{}) tea.Cmd {
	text := fmt.Sprintf(format, args...)
	return func() tea.Msg { return statusMsg{text: text} }
}

// actionHandler maps an invoked menu action onto the demo editor.
// Toggles write through the settings store, which schedules the menu
// rebuild that flips the corresponding check mark.
func (m *Model) actionHandler(invoked menubar.ActionInvokedMsg) command.Handler {
	if handler := m.recentHandler(invoked); handler != nil {
		return handler
	}
	switch invoked.ID {
	case "file.exit", "file.closeWindow":
		return func() tea.Msg {
			m.quitting = true
			m.bar.Dispose()
			return tea.Quit()
		}
	case "file.toggleAutoSave":
		return func() tea.Msg {
			mode := settings.AutoSaveAfterDelay
			if m.settings.String(settings.KeyAutoSave, settings.AutoSaveOff) != settings.AutoSaveOff {
				mode = settings.AutoSaveOff
			}
			m.settings.Set(settings.KeyAutoSave, mode)
			return statusMsg{text: "Auto save: " + mode}
		}
	case "view.toggleStatusBar":
		return m.toggleSetting(settings.KeyStatusBarVisible, "Status bar")
	case "view.toggleActivityBar":
		return m.toggleSetting(settings.KeyActivityBarVisible, "Activity bar")
	case "view.toggleFullScreen":
		return func() tea.Msg {
			m.ws.SetFullscreen(!m.ws.Fullscreen())
			return statusMsg{text: fmt.Sprintf("Full screen: %v", m.ws.Fullscreen())}
		}
	case "view.toggleSidebarPosition":
		return func() tea.Msg {
			side := "right"
			if m.settings.String(settings.KeySidebarPosition, "left") == "right" {
				side = "left"
			}
			m.settings.Set(settings.KeySidebarPosition, side)
			return statusMsg{text: "Side bar: " + side}
		}
	case "view.zoomIn":
		return m.adjustZoom(1)
	case "view.zoomOut":
		return m.adjustZoom(-1)
	case "view.resetZoom":
		return m.adjustZoom(0)
	case "selection.switchMultiCursorModifier":
		return func() tea.Msg {
			modifier := "alt"
			if m.settings.String(settings.KeyMultiCursorModifier, "ctrlCmd") == "alt" {
				modifier = "ctrlCmd"
			}
			m.settings.Set(settings.KeyMultiCursorModifier, modifier)
			return statusMsg{text: "Multi-cursor modifier: " + modifier}
		}
	}
	label := invoked.Label
	return func() tea.Msg {
		return statusMsg{text: label}
	}
}

// adjustZoom steps the display zoom level (delta 0 resets) and feeds
// the resulting factor to the bar so its padding compensates.
func (m *Model) adjustZoom(delta int) command.Handler {
	return func() tea.Msg {
		if delta == 0 {
			m.zoomLevel = 0
		} else {
			m.zoomLevel += delta
			if m.zoomLevel > maxZoomLevel {
				m.zoomLevel = maxZoomLevel
			}
			if m.zoomLevel < minZoomLevel {
				m.zoomLevel = minZoomLevel
			}
		}
		factor := math.Pow(zoomStep, float64(m.zoomLevel))
		m.bar.SetZoom(factor)
		return statusMsg{text: fmt.Sprintf("Zoom: %d%%", int(math.Round(factor*100)))}
	}
}

// recentHandler resolves the synthesized recently-opened entries,
// whose ids carry the target path.
func (m *Model) recentHandler(invoked menubar.ActionInvokedMsg) command.Handler {
	if path, ok := strings.CutPrefix(invoked.ID, snapshot.RecentWorkspacePrefix); ok {
		return func() tea.Msg {
			return statusMsg{text: "Opening workspace " + path}
		}
	}
	if path, ok := strings.CutPrefix(invoked.ID, snapshot.RecentFilePrefix); ok {
		return func() tea.Msg {
			return statusMsg{text: "Opening " + path}
		}
	}
	return nil
}

func (m *Model) toggleSetting(key, label string) command.Handler {
	return func() tea.Msg {
		visible := !m.settings.Bool(key)
		m.settings.Set(key, visible)
		state := "hidden"
		if visible {
			state = "shown"
		}
		return statusMsg{text: label + " " + state}
	}
}

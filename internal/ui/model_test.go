package ui

import (
	"testing"

	"github.com/atomicstack/editor-menubar/internal/menubar"
	tea "github.com/charmbracelet/bubbletea"
)

func newTestModel(t *testing.T) *Model {
	t.Helper()
	m := NewModel(Params{Width: 100, Height: 30, Mnemonics: true})
	t.Cleanup(m.bar.Dispose)
	return m
}

func TestWindowSizeRunsLayout(t *testing.T) {
	m := NewModel(Params{Mnemonics: true})
	defer m.bar.Dispose()

	m.Update(tea.WindowSizeMsg{Width: 132, Height: 43})
	if m.width != 132 || m.height != 43 {
		t.Fatalf("expected size 132x43, got %dx%d", m.width, m.height)
	}
	if box := m.bar.BoundingBox(); box.Width == 0 {
		t.Fatalf("expected buttons laid out after resize")
	}
}

func TestFixedSizeIgnoresWindowSize(t *testing.T) {
	m := newTestModel(t)
	m.Update(tea.WindowSizeMsg{Width: 10, Height: 5})
	if m.width != 100 || m.height != 30 {
		t.Fatalf("fixed dimensions must win, got %dx%d", m.width, m.height)
	}
}

func TestF10SynthesizesAltTap(t *testing.T) {
	m := newTestModel(t)
	m.Update(tea.KeyMsg{Type: tea.KeyF10})
	if m.bar.State() != menubar.StateFocused {
		t.Fatalf("expected F10 to focus the bar, got %v", m.bar.State())
	}
	m.Update(tea.KeyMsg{Type: tea.KeyF10})
	if m.bar.State() != menubar.StateVisible {
		t.Fatalf("expected a second F10 to unfocus, got %v", m.bar.State())
	}
}

func TestAltLetterOpensMenuDirectly(t *testing.T) {
	m := newTestModel(t)
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'f'}, Alt: true})
	if m.bar.State() != menubar.StateOpen {
		t.Fatalf("expected alt+f to open the file menu, got %v", m.bar.State())
	}
	if m.bar.Focused() != 0 {
		t.Fatalf("expected focus on the file button, got %d", m.bar.Focused())
	}
}

func TestTerminalBlurDropsModifiersAndFocus(t *testing.T) {
	m := newTestModel(t)
	m.Update(tea.KeyMsg{Type: tea.KeyF10})

	m.Update(tea.BlurMsg{})
	if m.bar.State() != menubar.StateVisible {
		t.Fatalf("expected blur to rest the bar, got %v", m.bar.State())
	}
	if st := m.tracker.Status(); st.Alt || st.Ctrl || st.Shift {
		t.Fatalf("expected blur to clear modifiers, got %+v", st)
	}

	m.Update(tea.FocusMsg{})
	if !m.ws.Focused() {
		t.Fatalf("expected focus message to restore window focus")
	}
}

func TestUnhandledKeysFallThroughToEditor(t *testing.T) {
	m := newTestModel(t)
	h := NewHarness(m)
	h.Send(tea.KeyMsg{Type: tea.KeyCtrlS})
	if h.Model().statusMsg != "Saved untitled.txt" {
		t.Fatalf("expected the editor fallback to run, got %q", h.Model().statusMsg)
	}
}

func TestQuitKeyDisposesBar(t *testing.T) {
	m := newTestModel(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlQ})
	if cmd == nil {
		t.Fatalf("expected a quit command")
	}
	if !m.quitting {
		t.Fatalf("expected the model to mark itself quitting")
	}
	if m.View() != "" {
		t.Fatalf("quitting model renders nothing")
	}
}

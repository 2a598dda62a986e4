package menubar

import (
	"testing"

	"github.com/atomicstack/editor-menubar/internal/menu"
	"github.com/atomicstack/editor-menubar/internal/modkeys"
	"github.com/atomicstack/editor-menubar/internal/settings"
	tea "github.com/charmbracelet/bubbletea"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func leftClick(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func TestKeysIgnoredWithoutFocus(t *testing.T) {
	f := newFixture(t)
	if handled, _ := f.bar.HandleKey(key("right")); handled {
		t.Fatalf("unfocused bar must not consume keys")
	}
}

func TestArrowAndTabNavigation(t *testing.T) {
	f := newFixture(t)
	f.focusBar(t)

	for _, s := range []string{"right", "tab"} {
		before := f.bar.Focused()
		if handled, _ := f.bar.HandleKey(key(s)); !handled {
			t.Fatalf("%s must be consumed while focused", s)
		}
		if f.bar.Focused() != (before+1)%3 {
			t.Fatalf("%s moved focus to %d, want %d", s, f.bar.Focused(), (before+1)%3)
		}
	}
	for _, s := range []string{"left", "shift+tab"} {
		before := f.bar.Focused()
		if handled, _ := f.bar.HandleKey(key(s)); !handled {
			t.Fatalf("%s must be consumed while focused", s)
		}
		if f.bar.Focused() != (before+2)%3 {
			t.Fatalf("%s moved focus to %d, want %d", s, f.bar.Focused(), (before+2)%3)
		}
	}
}

func TestEnterOpensAndEscWalksBack(t *testing.T) {
	f := newFixture(t)
	f.focusBar(t)

	f.bar.HandleKey(key("enter"))
	if f.bar.State() != StateOpen {
		t.Fatalf("enter must open the focused menu, got %v", f.bar.State())
	}
	f.bar.HandleKey(key("esc"))
	if f.bar.State() != StateFocused {
		t.Fatalf("esc from open must fall back to focused, got %v", f.bar.State())
	}
	f.bar.HandleKey(key("esc"))
	if f.bar.State() != StateVisible {
		t.Fatalf("esc from focused must rest the bar, got %v", f.bar.State())
	}
}

func TestEscPopsSubmenuBeforeClosing(t *testing.T) {
	f := newFixture(t)
	f.openMenu(t, 2)
	d := f.bar.focused.Dropdown

	f.bar.HandleKey(key("enter"))
	if d.Depth() != 2 {
		t.Fatalf("enter on a submenu entry must push a pane, got depth %d", d.Depth())
	}
	f.bar.HandleKey(key("esc"))
	if d.Depth() != 1 || f.bar.State() != StateOpen {
		t.Fatalf("first esc must only pop the pane, got depth %d state %v", d.Depth(), f.bar.State())
	}
	f.bar.HandleKey(key("esc"))
	if f.bar.State() != StateFocused {
		t.Fatalf("second esc must close the dropdown, got %v", f.bar.State())
	}
}

func TestMnemonicJumpOpensMenu(t *testing.T) {
	f := newFixture(t)
	f.focusBar(t)

	handled, _ := f.bar.HandleKey(key("e"))
	if !handled {
		t.Fatalf("mnemonic key must be consumed")
	}
	if f.bar.State() != StateOpen || f.bar.Focused() != 1 {
		t.Fatalf("expected the edit menu open, got %v/%d", f.bar.State(), f.bar.Focused())
	}
}

func TestMnemonicJumpDisabledBySetting(t *testing.T) {
	f := newFixture(t)
	f.settings.Set(settings.KeyMnemonicsEnabled, false)
	f.bar.FlushPendingRebuild()
	f.focusBar(t)

	handled, _ := f.bar.HandleKey(key("e"))
	if handled {
		t.Fatalf("mnemonic keys must be inert when disabled")
	}
}

func TestEnterActivatesAction(t *testing.T) {
	f := newFixture(t)
	f.openMenu(t, 0)

	_, cmd := f.bar.HandleKey(key("enter"))
	if cmd == nil {
		t.Fatalf("activating an action must produce a command")
	}
	msg, ok := cmd().(ActionInvokedMsg)
	if !ok {
		t.Fatalf("expected ActionInvokedMsg, got %T", cmd())
	}
	if msg.ID != "file.new" {
		t.Fatalf("expected file.new, got %s", msg.ID)
	}
	if f.bar.State() != StateVisible {
		t.Fatalf("activation must rest the bar, got %v", f.bar.State())
	}
}

func TestDisabledActionDoesNotActivate(t *testing.T) {
	f := newFixture(t)
	f.openMenu(t, 1)
	d := f.bar.focused.Dropdown
	d.MoveDown() // edit.redo, disabled

	_, cmd := f.bar.HandleKey(key("enter"))
	if cmd != nil {
		t.Fatalf("a disabled action must not dispatch")
	}
	if f.bar.State() != StateOpen {
		t.Fatalf("the menu stays open after a refused activation, got %v", f.bar.State())
	}
}

func TestOpenMenuSwallowsUnboundKeys(t *testing.T) {
	f := newFixture(t)
	f.openMenu(t, 0)

	if handled, _ := f.bar.HandleKey(key("f1")); !handled {
		t.Fatalf("unbound keys must be swallowed while a menu is open")
	}
	if f.bar.State() != StateOpen {
		t.Fatalf("swallowed key must not change state, got %v", f.bar.State())
	}
}

func TestTypeAheadViaKeys(t *testing.T) {
	f := newFixture(t)
	f.openMenu(t, 0)
	d := f.bar.focused.Dropdown

	f.bar.HandleKey(key("e"))
	f.bar.HandleKey(key("x"))
	if d.Current().ID != "file.exit" {
		t.Fatalf("expected type-ahead to reach file.exit, got %s", d.Current().ID)
	}
	f.bar.HandleKey(key("backspace"))
	if d.TypeAheadQuery() != "" {
		t.Fatalf("backspace must clear the query")
	}
}

func TestClickOpensTogglesAndMoves(t *testing.T) {
	f := newFixture(t)
	buttons := f.bar.Buttons()

	// First click opens.
	handled, _ := f.bar.HandleMouse(leftClick(buttons[0].x, 0))
	if !handled || f.bar.State() != StateOpen || f.bar.Focused() != 0 {
		t.Fatalf("click must open button 0, got %v/%d", f.bar.State(), f.bar.Focused())
	}
	// Clicking another button moves the open menu.
	f.bar.HandleMouse(leftClick(buttons[1].x, 0))
	if f.bar.State() != StateOpen || f.bar.Focused() != 1 {
		t.Fatalf("click must move the open menu, got %v/%d", f.bar.State(), f.bar.Focused())
	}
	if f.bar.focused.Dropdown.Menu != menu.Edit {
		t.Fatalf("expected the edit dropdown, got %s", f.bar.focused.Dropdown.Menu)
	}
	// Clicking the same button closes.
	f.bar.HandleMouse(leftClick(buttons[1].x, 0))
	if f.bar.State() != StateVisible {
		t.Fatalf("re-click must close the menu, got %v", f.bar.State())
	}
}

func TestModifiedClickPassesThrough(t *testing.T) {
	f := newFixture(t)
	f.tracker.KeyDown(modkeys.KeyCtrl)

	handled, _ := f.bar.HandleMouse(leftClick(f.bar.Buttons()[0].x, 0))
	if handled {
		t.Fatalf("ctrl+click must pass through to the host")
	}
	if f.bar.State() != StateVisible {
		t.Fatalf("ctrl+click must not open a menu, got %v", f.bar.State())
	}
	f.tracker.KeyUp(modkeys.KeyCtrl)
}

func TestChordFlagsOnMouseEventPassThrough(t *testing.T) {
	f := newFixture(t)

	// Terminals report the chord on the event; no key transition ever
	// reaches the tracker.
	for _, msg := range []tea.MouseMsg{
		{X: f.bar.Buttons()[0].x, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft, Ctrl: true},
		{X: f.bar.Buttons()[0].x, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft, Shift: true},
	} {
		handled, _ := f.bar.HandleMouse(msg)
		if handled {
			t.Fatalf("chorded click %+v must pass through to the host", msg)
		}
		if f.bar.State() != StateVisible {
			t.Fatalf("chorded click must not open a menu, got %v", f.bar.State())
		}
	}
}

func TestClickOutsideUnfocuses(t *testing.T) {
	f := newFixture(t)
	f.openMenu(t, 0)

	handled, _ := f.bar.HandleMouse(leftClick(60, 15))
	if !handled {
		t.Fatalf("the closing click must be consumed")
	}
	if f.bar.State() != StateVisible {
		t.Fatalf("click outside must rest the bar, got %v", f.bar.State())
	}
}

func TestDropdownClickActivatesRow(t *testing.T) {
	f := newFixture(t)
	f.openMenu(t, 0)
	d := f.bar.focused.Dropdown
	rect := f.bar.dropdownRect(d)

	// Row 1 inside the box is the second entry, file.open.
	handled, cmd := f.bar.HandleMouse(leftClick(rect.X+2, rect.Y+2))
	if !handled || cmd == nil {
		t.Fatalf("click on an action row must dispatch")
	}
	msg := cmd().(ActionInvokedMsg)
	if msg.ID != "file.open" {
		t.Fatalf("expected file.open, got %s", msg.ID)
	}
}

func TestDropdownClickOnSeparatorIsInert(t *testing.T) {
	f := newFixture(t)
	f.openMenu(t, 0)
	d := f.bar.focused.Dropdown
	rect := f.bar.dropdownRect(d)

	// Row 2 is the separator between the first two groups.
	handled, cmd := f.bar.HandleMouse(leftClick(rect.X+2, rect.Y+3))
	if !handled || cmd != nil {
		t.Fatalf("separator clicks are swallowed without dispatching")
	}
	if f.bar.State() != StateOpen {
		t.Fatalf("separator click must not close the menu, got %v", f.bar.State())
	}
}

func TestHoverMovesOpenMenu(t *testing.T) {
	f := newFixture(t)
	f.openMenu(t, 0)
	buttons := f.bar.Buttons()

	motion := tea.MouseMsg{X: buttons[2].x, Y: 0, Action: tea.MouseActionMotion}
	handled, _ := f.bar.HandleMouse(motion)
	if !handled || f.bar.Focused() != 2 {
		t.Fatalf("hover must move the open menu, got %d", f.bar.Focused())
	}
	if f.bar.focused.Dropdown == nil || f.bar.focused.Dropdown.Menu != menu.View {
		t.Fatalf("expected the view dropdown after hover")
	}
}

func TestHoverOffMenuArmsGraceClose(t *testing.T) {
	f := newFixture(t)
	f.openMenu(t, 0)
	d := f.bar.focused.Dropdown
	rect := f.bar.dropdownRect(d)

	inside := tea.MouseMsg{X: rect.X + 1, Y: rect.Y + 1, Action: tea.MouseActionMotion}
	outside := tea.MouseMsg{X: 60, Y: 15, Action: tea.MouseActionMotion}

	if _, cmd := f.bar.HandleMouse(inside); cmd != nil {
		t.Fatalf("motion inside the dropdown must not arm a close")
	}
	if _, cmd := f.bar.HandleMouse(outside); cmd == nil {
		t.Fatalf("leaving the menu must arm the grace close")
	}

	// Back inside before the timer fires: the menu stays open.
	f.bar.HandleMouse(inside)
	f.bar.Update(dropdownBlurMsg{Handle: d.Handle})
	if f.bar.State() != StateOpen {
		t.Fatalf("blur must be a no-op while hovered, got %v", f.bar.State())
	}

	// Still outside when it fires: the dropdown closes.
	f.bar.HandleMouse(outside)
	f.bar.Update(dropdownBlurMsg{Handle: d.Handle})
	if f.bar.State() != StateFocused {
		t.Fatalf("blur away from the menu must close it, got %v", f.bar.State())
	}
}

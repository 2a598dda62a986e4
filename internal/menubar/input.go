package menubar

import (
	"github.com/atomicstack/editor-menubar/internal/menu/snapshot"
	"github.com/atomicstack/editor-menubar/internal/modkeys"
	"github.com/atomicstack/editor-menubar/internal/settings"
	tea "github.com/charmbracelet/bubbletea"
)

// onModifier consumes tracker broadcasts. Wired only for the custom
// bar; a native menu bar owns its own modifier handling.
func (b *MenuBar) onModifier(st modkeys.Status) {
	b.altHeld = st.Alt && b.settings.Bool(settings.KeyMnemonicsEnabled)
	toggle := b.settings.String(settings.KeyVisibility, "visible") == settings.VisibilityToggle

	if st.LastPressed != "" && st.Chord() {
		// A chord is a shortcut in progress, not a reveal request.
		b.altTapPending = false
		if toggle && !b.state.AtLeast(StateFocused) {
			b.SetState(StateHidden)
		}
		return
	}
	if st.LastPressed == modkeys.KeyAlt {
		b.altTapPending = true
		if toggle && b.state == StateHidden {
			b.SetState(StateVisible)
		}
		return
	}
	if st.LastPressed != "" {
		b.altTapPending = false
		return
	}
	if st.LastReleased == modkeys.KeyAlt {
		if !b.altTapPending {
			return
		}
		b.altTapPending = false
		if !b.state.AtLeast(StateFocused) {
			b.moveFocus(0)
			b.SetState(StateFocused)
			return
		}
		if b.state == StateFocused {
			b.Unfocus()
		}
		return
	}
	if st.LastReleased != "" {
		b.altTapPending = false
	}
}

// HandleKey routes a key press when the bar holds keyboard focus. It
// reports whether the key was consumed.
func (b *MenuBar) HandleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	if !b.custom {
		return false, nil
	}
	// A real keystroke means Alt was part of a chord, not a tap.
	b.altTapPending = false
	if !b.state.AtLeast(StateFocused) {
		return false, nil
	}
	if b.state == StateOpen && b.focused != nil && b.focused.Dropdown != nil {
		return b.handleDropdownKey(msg)
	}
	switch msg.String() {
	case "left", "shift+tab":
		b.FocusPrevious()
		return true, nil
	case "right", "tab":
		b.FocusNext()
		return true, nil
	case "esc":
		b.Unfocus()
		return true, nil
	case "down", "enter":
		b.SetState(StateOpen)
		return true, nil
	}
	if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 {
		if idx := b.buttonForMnemonic(msg.Runes[0]); idx >= 0 {
			b.moveFocus(idx)
			b.SetState(StateOpen)
			return true, nil
		}
	}
	return false, nil
}

func (b *MenuBar) handleDropdownKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	d := b.focused.Dropdown
	switch msg.String() {
	case "esc":
		if !d.PopSubmenu() {
			b.SetState(StateFocused)
		}
		return true, nil
	case "up":
		d.MoveUp()
		return true, nil
	case "down":
		d.MoveDown()
		return true, nil
	case "left":
		b.FocusPrevious()
		return true, nil
	case "right":
		b.FocusNext()
		return true, nil
	case "enter":
		if d.EnterSubmenu() {
			return true, nil
		}
		if entry := d.Current(); entry != nil {
			return true, b.activate(*entry)
		}
		return true, nil
	case "backspace":
		d.ClearTypeAhead()
		return true, nil
	}
	if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 && !msg.Alt {
		d.TypeAhead(msg.Runes[0])
	}
	// Everything else is swallowed while a menu is open.
	return true, nil
}

// HandleMouse routes a mouse event. It reports whether the event was
// consumed by the bar or its dropdown.
func (b *MenuBar) HandleMouse(msg tea.MouseMsg) (bool, tea.Cmd) {
	if !b.custom || !b.visible {
		return false, nil
	}
	onBar := msg.Y == 0
	idx := -1
	if onBar {
		idx = b.buttonAt(msg.X)
	}
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return false, nil
		}
		if onBar && idx >= 0 {
			return b.clickButton(idx, msg)
		}
		if b.state == StateOpen {
			if handled, cmd := b.dropdownClick(msg); handled {
				return true, cmd
			}
		}
		if b.state.AtLeast(StateFocused) {
			// Click anywhere outside the bar drops the interaction.
			b.Unfocus()
			return true, nil
		}
		return false, nil
	case tea.MouseActionMotion:
		if onBar && idx >= 0 && b.focused != nil && idx != b.focused.Index {
			if b.state == StateOpen || b.state == StateFocused {
				b.moveFocus(idx)
				return true, nil
			}
		}
		if b.state == StateOpen && b.focused != nil && b.focused.Dropdown != nil {
			return false, b.noteHover(msg, onBar)
		}
		return false, nil
	}
	return false, nil
}

func (b *MenuBar) clickButton(idx int, msg tea.MouseMsg) (bool, tea.Cmd) {
	// Terminals report ctrl/shift on the mouse event itself, never as
	// bare key transitions, so the tracker alone cannot see the chord.
	st := b.modifierStatus()
	if msg.Ctrl || msg.Shift || st.Ctrl || st.Shift {
		// Part of a shortcut chord; let it pass through.
		return false, nil
	}
	if b.state == StateOpen && b.focused != nil {
		if b.focused.Index == idx {
			b.Unfocus()
			return true, nil
		}
		b.moveFocus(idx)
		return true, nil
	}
	b.moveFocus(idx)
	b.SetState(StateOpen)
	return true, nil
}

// noteHover tracks whether the pointer sits over the bar or the open
// dropdown. Leaving the menu arms the grace-delay close; coming back
// before it fires keeps the menu open.
func (b *MenuBar) noteHover(msg tea.MouseMsg, onBar bool) tea.Cmd {
	inside := onBar
	if !inside {
		rect := b.dropdownRect(b.focused.Dropdown)
		inside = msg.X >= rect.X && msg.X < rect.X+rect.Width &&
			msg.Y >= rect.Y && msg.Y < rect.Y+rect.Height
	}
	if inside {
		b.pointerInMenu = true
		return nil
	}
	if !b.pointerInMenu {
		return nil
	}
	b.pointerInMenu = false
	return b.NoteDropdownBlur()
}

func (b *MenuBar) dropdownClick(msg tea.MouseMsg) (bool, tea.Cmd) {
	if b.focused == nil || b.focused.Dropdown == nil {
		return false, nil
	}
	d := b.focused.Dropdown
	rect := b.dropdownRect(d)
	if msg.X < rect.X || msg.X >= rect.X+rect.Width || msg.Y < rect.Y || msg.Y >= rect.Y+rect.Height {
		return false, nil
	}
	// Border rows and columns swallow the click without acting.
	row := msg.Y - rect.Y - 1
	entries := d.Entries()
	if row < 0 || row >= len(entries) {
		return true, nil
	}
	entry := entries[row]
	if entry.Kind == snapshot.KindSeparator {
		return true, nil
	}
	if entry.Kind == snapshot.KindAction && !entry.Enabled {
		return true, nil
	}
	p := d.top()
	if p != nil {
		p.cursor = row
	}
	if d.EnterSubmenu() {
		return true, nil
	}
	if current := d.Current(); current != nil {
		return true, b.activate(*current)
	}
	return true, nil
}

// OpenByMnemonic opens the top-level menu whose mnemonic matches r.
// Hosts route Alt+letter chords here even while the bar is unfocused.
// It reports whether a menu matched.
func (b *MenuBar) OpenByMnemonic(r rune) bool {
	if !b.custom {
		return false
	}
	idx := b.buttonForMnemonic(r)
	if idx < 0 {
		return false
	}
	b.altTapPending = false
	b.moveFocus(idx)
	b.SetState(StateOpen)
	return true
}

func (b *MenuBar) buttonForMnemonic(r rune) int {
	if !b.settings.Bool(settings.KeyMnemonicsEnabled) {
		return -1
	}
	if r >= 'A' && r <= 'Z' {
		r += 'a' - 'A'
	}
	for i, btn := range b.buttons {
		if btn.MnemonicRune != 0 && btn.MnemonicRune == r {
			return i
		}
	}
	return -1
}

func (b *MenuBar) modifierStatus() modkeys.Status {
	if b.tracker == nil {
		return modkeys.Status{}
	}
	return b.tracker.Status()
}

package menubar

import (
	"github.com/atomicstack/editor-menubar/internal/logging/events"
	"github.com/atomicstack/editor-menubar/internal/settings"
)

// State is the interaction state of the bar, ordered by how much of
// the bar is revealed. Comparisons against the order implement the
// "at least this visible" queries used throughout the controller.
type State int

const (
	StateHidden State = iota
	StateVisible
	StateFocused
	StateOpen
)

func (s State) String() string {
	switch s {
	case StateHidden:
		return "hidden"
	case StateVisible:
		return "visible"
	case StateFocused:
		return "focused"
	case StateOpen:
		return "open"
	}
	return "unknown"
}

// AtLeast reports whether s reveals at least as much as o.
func (s State) AtLeast(o State) bool {
	return s >= o
}

// FocusedMenu identifies which button holds keyboard focus and, when
// the bar is open, its dropdown. At most one exists at a time.
type FocusedMenu struct {
	Index    int
	Dropdown *Dropdown
}

// State returns the current interaction state.
func (b *MenuBar) State() State {
	return b.state
}

// Focused returns the focused button index, or -1 when none.
func (b *MenuBar) Focused() int {
	if b.focused == nil {
		return -1
	}
	return b.focused.Index
}

// SetState is the single mutation entry point for the interaction
// state. Every event handler funnels its requested transition through
// here, so state changes stay serialized and traceable.
func (b *MenuBar) SetState(target State) {
	if b.state.AtLeast(StateFocused) && !target.AtLeast(StateFocused) && b.rebuildDeferred {
		b.rebuildDeferred = false
		b.performRebuild()
	}
	if target == b.state {
		return
	}
	from := b.state
	switch target {
	case StateHidden:
		b.hideBar()
		b.closeDropdown()
		b.blurFocused()
	case StateVisible:
		b.showBar()
		b.closeDropdown()
		b.blurFocused()
	case StateFocused:
		b.showBar()
		b.closeDropdown()
		if b.focused != nil {
			if !from.AtLeast(StateFocused) {
				b.notifyBarFocus(true)
			}
			events.Focus.Button(b.focused.Index, string(b.buttons[b.focused.Index].Menu))
		}
	case StateOpen:
		b.showBar()
		if b.focused != nil {
			if !from.AtLeast(StateFocused) {
				b.notifyBarFocus(true)
			}
			b.openDropdown()
		}
	}
	b.state = target
	events.Focus.State(from.String(), target.String())
}

// Unfocus drops any interaction and returns the bar to its resting
// state: VISIBLE normally, HIDDEN when visibility is toggle-by-Alt.
func (b *MenuBar) Unfocus() {
	b.SetState(b.restingState())
}

func (b *MenuBar) restingState() State {
	if b.settings.String(settings.KeyVisibility, "visible") == settings.VisibilityToggle {
		return StateHidden
	}
	return StateVisible
}

func (b *MenuBar) showBar() {
	if b.visible || !b.custom {
		return
	}
	b.visible = true
	events.Menubar.Show(b.width, barHeight)
	b.notifyVisibility(Dimension{Width: b.width, Height: barHeight})
}

func (b *MenuBar) hideBar() {
	if !b.visible {
		return
	}
	b.visible = false
	events.Menubar.Hide()
	b.notifyVisibility(Dimension{})
}

// blurFocused clears the focused button and hands keyboard focus back
// to whatever owned it before the bar took it.
func (b *MenuBar) blurFocused() {
	if b.focused == nil {
		return
	}
	b.focused = nil
	b.notifyBarFocus(false)
}

func (b *MenuBar) closeDropdown() {
	if b.focused == nil || b.focused.Dropdown == nil {
		return
	}
	b.focused.Dropdown.Dispose()
	events.Menubar.CloseMenu(string(b.focused.Dropdown.Menu))
	b.focused.Dropdown = nil
}

func (b *MenuBar) openDropdown() {
	if b.focused == nil {
		return
	}
	idx := b.focused.Index
	if idx < 0 || idx >= len(b.buttons) {
		return
	}
	btn := b.buttons[idx]
	if b.focused.Dropdown != nil {
		if b.focused.Dropdown.Menu == btn.Menu {
			return
		}
		b.closeDropdown()
	}
	b.focused.Dropdown = newDropdown(btn.Menu, btn.Snapshot, btn.x)
	b.pointerInMenu = false
	events.Menubar.OpenMenu(string(btn.Menu), idx)
}

// FocusNext moves focus to the next button, wrapping past the end.
// A bar with no focus or at most one button stays put.
func (b *MenuBar) FocusNext() {
	if b.focused == nil || len(b.buttons) <= 1 {
		return
	}
	b.moveFocus((b.focused.Index + 1) % len(b.buttons))
}

// FocusPrevious is the wrapping inverse of FocusNext.
func (b *MenuBar) FocusPrevious() {
	if b.focused == nil || len(b.buttons) <= 1 {
		return
	}
	b.moveFocus((b.focused.Index + len(b.buttons) - 1) % len(b.buttons))
}

// moveFocus points the FocusedMenu at index, moving the open dropdown
// along when one is showing. Stale indexes are clamped rather than
// trusted; a shrunken menu set must never leave focus out of range.
func (b *MenuBar) moveFocus(index int) {
	if len(b.buttons) == 0 {
		b.focused = nil
		return
	}
	if index < 0 {
		index = 0
	}
	if index >= len(b.buttons) {
		index = len(b.buttons) - 1
	}
	open := b.state == StateOpen
	b.closeDropdown()
	if b.focused == nil {
		b.focused = &FocusedMenu{}
	}
	b.focused.Index = index
	events.Focus.Button(index, string(b.buttons[index].Menu))
	if open {
		b.openDropdown()
	}
}

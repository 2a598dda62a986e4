package menubar

import (
	"time"

	"github.com/atomicstack/editor-menubar/internal/keybinding"
	"github.com/atomicstack/editor-menubar/internal/logging/events"
	"github.com/atomicstack/editor-menubar/internal/menu"
	"github.com/atomicstack/editor-menubar/internal/menu/snapshot"
	"github.com/atomicstack/editor-menubar/internal/modkeys"
	"github.com/atomicstack/editor-menubar/internal/settings"
	"github.com/atomicstack/editor-menubar/internal/workspace"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

// dropdownBlurGrace is how long a dropdown may stay unfocused before
// it closes. Debounces the focus flicker of moving between a button
// and its dropdown.
const dropdownBlurGrace = 150 * time.Millisecond

// Options wires the controller to its collaborating services. Native
// is consulted only when the title-bar style is not custom; Tracker
// is consulted only when it is.
type Options struct {
	Registry    *menu.Registry
	Settings    *settings.Store
	Keybindings *keybinding.Service
	Workspace   *workspace.Service
	Tracker     *modkeys.Tracker
	Native      NativeSync
}

// MenuBar owns the button and dropdown widgets and mediates every
// interaction-state transition. All mutation happens on the UI event
// loop through SetState and the rebuild entry points.
type MenuBar struct {
	registry *menu.Registry
	settings *settings.Store
	keys     *keybinding.Service
	ws       *workspace.Service
	tracker  *modkeys.Tracker
	builder  *snapshot.Builder
	native   NativeSync

	custom  bool
	buttons []*Button
	state   State
	focused *FocusedMenu
	visible bool

	width  int
	height int
	zoom   float64

	altHeld       bool
	altTapPending bool
	pointerInMenu bool

	rebuildPending  bool
	rebuildDeferred bool

	visibilityListeners []func(Dimension)
	focusListeners      []func(bool)
	unsubs              []func()
	disposed            bool
}

// ActionInvokedMsg reports a menu action the user activated. Hosts
// map the id onto whatever the action does.
type ActionInvokedMsg struct {
	ID    string
	Label string
}

// rebuildMsg executes a scheduled rebuild on the next loop turn.
type rebuildMsg struct{}

// dropdownBlurMsg fires after the blur grace delay for the dropdown
// identified by Handle.
type dropdownBlurMsg struct {
	Handle uuid.UUID
}

// New creates the controller, builds one button per top-level menu in
// display order, and performs the initial snapshot build. With a
// custom title bar the bar starts at its resting state; otherwise the
// controller stays dormant apart from native menu syncs.
func New(opts Options) *MenuBar {
	b := &MenuBar{
		registry: opts.Registry,
		settings: opts.Settings,
		keys:     opts.Keybindings,
		ws:       opts.Workspace,
		tracker:  opts.Tracker,
		native:   opts.Native,
		builder:  snapshot.NewBuilder(opts.Registry, opts.Settings, opts.Keybindings, opts.Workspace),
		zoom:     1,
	}
	b.custom = b.settings.String(settings.KeyTitleBarStyle, settings.TitleBarCustom) == settings.TitleBarCustom

	for _, id := range b.registry.TopLevel() {
		b.buttons = append(b.buttons, &Button{Menu: id, Mnemonic: -1})
	}
	b.performRebuild()
	b.subscribe()

	if b.custom {
		b.SetState(b.restingState())
	}
	return b
}

func (b *MenuBar) subscribe() {
	b.unsubs = append(b.unsubs,
		b.registry.OnChange(func(menu.ID) {
			b.scheduleRebuild("registry")
		}),
		b.settings.OnChange(func(keys []string) {
			if settings.Affects(keys) {
				b.scheduleRebuild("settings")
			}
		}),
		b.keys.OnChange(func() {
			b.scheduleRebuild("keybindings")
		}),
		b.ws.OnRecentlyOpenedChange(func() {
			b.scheduleRebuild("recently-opened")
		}),
		b.ws.OnFocusChange(func(focused bool) {
			if !focused {
				b.onWindowFocusLost()
			}
		}),
		b.ws.OnFullscreenChange(func(bool) {
			b.scheduleRebuild("fullscreen")
		}),
	)
	if b.custom && b.tracker != nil {
		b.unsubs = append(b.unsubs, b.tracker.Subscribe(b.onModifier))
	}
}

// Dispose releases every subscription exactly once. The controller
// must not be used afterwards.
func (b *MenuBar) Dispose() {
	if b.disposed {
		return
	}
	b.disposed = true
	b.closeDropdown()
	for _, unsub := range b.unsubs {
		unsub()
	}
	b.unsubs = nil
}

// OnVisibilityChange registers a listener invoked with the occupied
// area whenever the bar shows or hides; a zero Dimension means hidden.
func (b *MenuBar) OnVisibilityChange(fn func(Dimension)) func() {
	b.visibilityListeners = append(b.visibilityListeners, fn)
	idx := len(b.visibilityListeners) - 1
	return func() {
		if idx < len(b.visibilityListeners) {
			b.visibilityListeners[idx] = nil
		}
	}
}

// OnBarFocusChange registers a listener for the bar gaining or losing
// keyboard focus. Hosts use the false edge to return input focus to
// the element that held it before.
func (b *MenuBar) OnBarFocusChange(fn func(bool)) func() {
	b.focusListeners = append(b.focusListeners, fn)
	idx := len(b.focusListeners) - 1
	return func() {
		if idx < len(b.focusListeners) {
			b.focusListeners[idx] = nil
		}
	}
}

func (b *MenuBar) notifyVisibility(dim Dimension) {
	for _, fn := range b.visibilityListeners {
		if fn != nil {
			fn(dim)
		}
	}
}

func (b *MenuBar) notifyBarFocus(focused bool) {
	for _, fn := range b.focusListeners {
		if fn != nil {
			fn(focused)
		}
	}
}

// scheduleRebuild flags a rebuild for the next event-loop turn.
// Bursts coalesce into the single-slot flag; a request arriving while
// the user is focused on or inside a menu is deferred so the menu
// cannot change shape mid-interaction.
func (b *MenuBar) scheduleRebuild(reason string) {
	if b.state.AtLeast(StateFocused) {
		b.rebuildDeferred = true
		events.Rebuild.Deferred(reason)
		return
	}
	b.rebuildPending = true
	events.Rebuild.Scheduled(reason)
}

// Tick returns the command that drains a pending rebuild, or nil when
// nothing is pending. Hosts call it after routing each message.
func (b *MenuBar) Tick() tea.Cmd {
	if !b.rebuildPending {
		return nil
	}
	return func() tea.Msg { return rebuildMsg{} }
}

// FlushPendingRebuild synchronously executes any pending or deferred
// rebuild. Test hook.
func (b *MenuBar) FlushPendingRebuild() {
	if b.rebuildPending || b.rebuildDeferred {
		b.rebuildPending = false
		b.rebuildDeferred = false
		b.performRebuild()
	}
}

// Update consumes the controller's internal messages. Hosts forward
// every message here before their own handling.
func (b *MenuBar) Update(msg tea.Msg) tea.Cmd {
	switch m := msg.(type) {
	case rebuildMsg:
		if !b.rebuildPending {
			return nil
		}
		b.rebuildPending = false
		if b.state.AtLeast(StateFocused) {
			b.rebuildDeferred = true
			events.Rebuild.Deferred("in-flight")
			return nil
		}
		b.performRebuild()
		return nil
	case dropdownBlurMsg:
		b.handleDropdownBlur(m)
		return nil
	}
	if b.focused != nil && b.focused.Dropdown != nil {
		var cmd tea.Cmd
		b.focused.Dropdown.caret, cmd = b.focused.Dropdown.caret.Update(msg)
		return cmd
	}
	return nil
}

// performRebuild refreshes every button's title, mnemonic, and
// snapshot in place; it never recreates the widgets, so focus and
// layout identity survive. Completion pushes the structure to the
// native bar when one is in use.
func (b *MenuBar) performRebuild() {
	mnemonics := b.settings.Bool(settings.KeyMnemonicsEnabled)
	for _, btn := range b.buttons {
		title := b.registry.Title(btn.Menu)
		label, idx := snapshot.ParseMnemonic(title)
		if !mnemonics {
			idx = -1
		}
		btn.Title = label
		btn.Mnemonic = idx
		btn.MnemonicRune = snapshot.MnemonicRune(title)
		btn.Snapshot = b.builder.Build(btn.Menu)
	}
	b.layoutButtons()
	if b.focused != nil && b.focused.Index >= len(b.buttons) && len(b.buttons) > 0 {
		b.focused.Index = len(b.buttons) - 1
	}
	if b.native != nil && !b.custom {
		b.native.Push(b.nativeMenus())
		events.Menubar.NativeSync(len(b.buttons))
	}
	events.Rebuild.Done(len(b.buttons))
}

// NoteDropdownBlur arms the grace-delay close for the open dropdown.
// The returned command is nil when no dropdown is open.
func (b *MenuBar) NoteDropdownBlur() tea.Cmd {
	if b.focused == nil || b.focused.Dropdown == nil {
		return nil
	}
	handle := b.focused.Dropdown.Handle
	return tea.Tick(dropdownBlurGrace, func(time.Time) tea.Msg {
		return dropdownBlurMsg{Handle: handle}
	})
}

func (b *MenuBar) handleDropdownBlur(msg dropdownBlurMsg) {
	if b.focused == nil || b.focused.Dropdown == nil {
		return
	}
	d := b.focused.Dropdown
	if d.Disposed() || d.Handle != msg.Handle {
		return
	}
	if b.pointerInMenu {
		// The pointer came back before the timer fired.
		return
	}
	b.SetState(StateFocused)
}

func (b *MenuBar) onWindowFocusLost() {
	if b.state == StateHidden {
		return
	}
	events.Focus.WindowLost()
	b.Unfocus()
}

// activate dispatches an action entry and returns the bar to rest.
func (b *MenuBar) activate(entry snapshot.Entry) tea.Cmd {
	if entry.Kind != snapshot.KindAction || !entry.Enabled {
		events.Command.Skip(entry.ID, entry.Label)
		return nil
	}
	events.Command.Queue(entry.ID, entry.Label)
	b.Unfocus()
	return func() tea.Msg {
		msg := ActionInvokedMsg{ID: entry.ID, Label: entry.Label}
		events.Command.Result(entry.ID, entry.Label, "menubar.ActionInvokedMsg")
		return msg
	}
}

package ui

import (
	"reflect"

	"github.com/atomicstack/editor-menubar/internal/keybinding"
	"github.com/atomicstack/editor-menubar/internal/menu"
	"github.com/atomicstack/editor-menubar/internal/menubar"
	"github.com/atomicstack/editor-menubar/internal/modkeys"
	"github.com/atomicstack/editor-menubar/internal/settings"
	"github.com/atomicstack/editor-menubar/internal/theme"
	"github.com/atomicstack/editor-menubar/internal/ui/command"
	"github.com/atomicstack/editor-menubar/internal/workspace"
	tea "github.com/charmbracelet/bubbletea"
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Params carries the user-facing knobs through to the model.
type Params struct {
	Width      int
	Height     int
	Visibility string
	TitleBar   string
	Mnemonics  bool
	Verbose    bool
}

// Model implements the Bubble Tea model hosting the menu bar over a
// placeholder editor surface.
type Model struct {
	settings *settings.Store
	registry *menu.Registry
	keys     *keybinding.Service
	ws       *workspace.Service
	tracker  *modkeys.Tracker
	bar      *menubar.MenuBar
	bus      *command.Bus

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	zoomLevel   int
	verbose     bool
	statusMsg   string
	quitting    bool

	handlers map[reflect.Type]msgHandler
}

// NewModel wires the collaborating services, seeds demo content, and
// constructs the menu bar controller.
func NewModel(params Params) *Model {
	store := settings.NewStore()
	if params.Visibility != "" {
		store.Set(settings.KeyVisibility, params.Visibility)
	}
	if params.TitleBar != "" {
		store.Set(settings.KeyTitleBarStyle, params.TitleBar)
	}
	store.Set(settings.KeyMnemonicsEnabled, params.Mnemonics)

	ws := workspace.NewService()
	ws.SetFocused(true)
	ws.SetRecentlyOpened(seedRecentlyOpened())
	keys := keybinding.NewService(seedKeybindings())
	tracker := modkeys.NewTracker()

	m := &Model{
		settings: store,
		registry: menu.BuildRegistry(),
		keys:     keys,
		ws:       ws,
		tracker:  tracker,
		bus:      command.New(),
		verbose:  params.Verbose,
	}
	m.bar = menubar.New(menubar.Options{
		Registry:    m.registry,
		Settings:    store,
		Keybindings: keys,
		Workspace:   ws,
		Tracker:     tracker,
	})
	if params.Width > 0 {
		m.width = params.Width
		m.fixedWidth = true
	}
	if params.Height > 0 {
		m.height = params.Height
		m.fixedHeight = true
	}
	m.bar.Layout(m.width, m.height)
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if cmd := m.bar.Update(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):               m.handleKeyMsg,
		reflect.TypeOf(tea.MouseMsg{}):             m.handleMouseMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}):        m.handleWindowSizeMsg,
		reflect.TypeOf(tea.FocusMsg{}):             m.handleFocusMsg,
		reflect.TypeOf(tea.BlurMsg{}):              m.handleBlurMsg,
		reflect.TypeOf(menubar.ActionInvokedMsg{}): m.handleActionInvokedMsg,
		reflect.TypeOf(statusMsg{}):                m.handleStatusMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

// finishUpdate drains any rebuild the routed message scheduled.
func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if cmd := m.bar.Tick(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch key.String() {
	case "ctrl+c", "ctrl+q":
		m.quitting = true
		m.bar.Dispose()
		return tea.Quit
	case "f10":
		// Terminals deliver no bare-modifier events, so F10 stands in
		// for an Alt tap.
		m.tracker.KeyDown(modkeys.KeyAlt)
		m.tracker.KeyUp(modkeys.KeyAlt)
		return nil
	}
	if key.Type == tea.KeyRunes && key.Alt && len(key.Runes) == 1 {
		if m.bar.OpenByMnemonic(key.Runes[0]) {
			return nil
		}
	}
	if handled, cmd := m.bar.HandleKey(key); handled {
		return cmd
	}
	return m.handleEditorKey(key)
}

// handleEditorKey stands in for the editor surface under the bar.
func (m *Model) handleEditorKey(key tea.KeyMsg) tea.Cmd {
	switch key.String() {
	case "ctrl+s":
		return status("Saved untitled.txt")
	}
	return nil
}

func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	mouse, ok := msg.(tea.MouseMsg)
	if !ok {
		return nil
	}
	_, cmd := m.bar.HandleMouse(mouse)
	return cmd
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	size, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = size.Width
	}
	if !m.fixedHeight {
		m.height = size.Height
	}
	m.bar.Layout(m.width, m.height)
	return nil
}

func (m *Model) handleFocusMsg(tea.Msg) tea.Cmd {
	m.ws.SetFocused(true)
	return nil
}

func (m *Model) handleBlurMsg(tea.Msg) tea.Cmd {
	// Held modifiers can never be released while unfocused; drop them
	// before they go stale.
	m.tracker.WindowBlur()
	m.ws.SetFocused(false)
	return nil
}

func (m *Model) handleActionInvokedMsg(msg tea.Msg) tea.Cmd {
	invoked, ok := msg.(menubar.ActionInvokedMsg)
	if !ok {
		return nil
	}
	return m.bus.Execute(command.Request{
		ID:      invoked.ID,
		Label:   invoked.Label,
		Handler: m.actionHandler(invoked),
	})
}

func (m *Model) handleStatusMsg(msg tea.Msg) tea.Cmd {
	st, ok := msg.(statusMsg)
	if !ok {
		return nil
	}
	m.statusMsg = st.text
	return nil
}

// Bar exposes the controller for tests.
func (m *Model) Bar() *menubar.MenuBar {
	return m.bar
}

func seedRecentlyOpened() workspace.RecentlyOpened {
	return workspace.RecentlyOpened{
		Workspaces: []workspace.Entry{
			{Path: "~/src/editor-menubar", Label: "editor-menubar"},
			{Path: "~/src/dotfiles", Label: "dotfiles"},
		},
		Files: []workspace.Entry{
			{Path: "~/src/editor-menubar/README.md", Label: "README.md"},
			{Path: "~/notes/todo.md", Label: "todo.md"},
		},
	}
}

func seedKeybindings() map[string]string {
	return map[string]string{
		"file.newFile":            "Ctrl+N",
		"file.newWindow":          "Ctrl+Shift+N",
		"file.openFile":           "Ctrl+O",
		"file.save":               "Ctrl+S",
		"file.saveAs":             "Ctrl+Shift+S",
		"file.exit":               "Ctrl+Q",
		"edit.undo":               "Ctrl+Z",
		"edit.redo":               "Ctrl+Y",
		"edit.cut":                "Ctrl+X",
		"edit.copy":               "Ctrl+C",
		"edit.paste":              "Ctrl+V",
		"edit.find":               "Ctrl+F",
		"edit.replace":            "Ctrl+H",
		"selection.selectAll":     "Ctrl+A",
		"view.commandPalette":     "Ctrl+Shift+P",
		"view.toggleFullScreen":   "F11",
		"go.gotoFile":             "Ctrl+P",
		"go.gotoLine":             "Ctrl+G",
		"run.startDebugging":      "F5",
		"run.runWithoutDebugging": "Ctrl+F5",
		"run.toggleBreakpoint":    "F9",
		"terminal.new":            "Ctrl+`",
	}
}

package menu

// ID names a top-level or nested menu.
type ID string

const (
	File        ID = "file"
	Edit        ID = "edit"
	Selection   ID = "selection"
	View        ID = "view"
	Goto        ID = "go"
	Run         ID = "run"
	Terminal    ID = "terminal"
	Window      ID = "window"
	Help        ID = "help"
	Preferences ID = "preferences"
	Appearance  ID = "appearance"
)

// ActionOpenRecent marks the insertion slot for recently-opened
// entries. The snapshot builder expands the slot in place; the action
// itself stays in the menu after the injected block.
const ActionOpenRecent = "file.openRecent"

// Action is one raw menu contribution. Title may carry mnemonic
// markers: "&" marks the next rune, "&&" renders a literal ampersand.
// A non-empty Submenu turns the action into a nested menu reference.
type Action struct {
	ID       string
	Title    string
	Submenu  ID
	Disabled bool
}

// Group is an ordered run of actions separated from its neighbors.
type Group []Action

// Package ui contains the Bubble Tea program hosting the menu bar
// over a placeholder editor surface. The package is structured so the
// Model type focuses on message orchestration, while dedicated helpers
// own action dispatch and rendering.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages.
//   - Every message first passes through the menu bar controller,
//     which consumes its internal rebuild and blur-timer messages and
//     feeds the dropdown caret.
//   - The message is then routed through a typed handler registry so
//     each tea.Msg kind is handled by a focused function: key and
//     mouse input is offered to the bar before the editor surface,
//     window size changes re-run the bar layout, and terminal focus
//     events drive the workspace service and the modifier tracker.
//   - F10 stands in for a bare Alt tap, which terminals cannot
//     report; the handler synthesizes the press/release pair on the
//     shared modifier tracker.
//
// State ownership:
//   - Menu structure lives in internal/menu and is projected into
//     immutable snapshots by internal/menu/snapshot.
//   - Interaction state (hidden/visible/focused/open) is owned by
//     internal/menubar; the model never mutates it directly.
//   - Invoked actions run through the internal/ui/command bus, which
//     wraps each handler into a traced tea.Cmd. Toggle actions write
//     through the settings store, and the resulting change
//     notification schedules the menu rebuild that flips the
//     corresponding check mark.
//
// This separation keeps Model.Update compact and makes it easier to
// test independent concerns (state transitions, snapshot building,
// action dispatch) without reasoning about the entire TUI at once.
package ui

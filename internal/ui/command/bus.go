package command

import (
	"fmt"

	"github.com/atomicstack/editor-menubar/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

// Handler performs one editor action and returns a follow-up message,
// or nil when the action completes silently.
type Handler func() tea.Msg

// Request encapsulates an action invocation.
type Request struct {
	ID      string
	Label   string
	Handler Handler
}

// Bus coordinates the execution of editor actions.
type Bus struct{}

// New initialises a command bus instance.
func New() *Bus {
	return &Bus{}
}

// Execute wraps an action handler into a Bubble Tea command while
// emitting trace logs.
func (b *Bus) Execute(req Request) tea.Cmd {
	return func() tea.Msg {
		if req.Handler == nil {
			events.Command.Skip(req.ID, req.Label)
			return nil
		}
		msg := req.Handler()
		if msg == nil {
			events.Command.NoOp(req.ID, req.Label)
			return nil
		}
		events.Command.Result(req.ID, req.Label, fmt.Sprintf("%T", msg))
		return msg
	}
}

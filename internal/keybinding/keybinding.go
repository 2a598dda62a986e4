package keybinding

// Service resolves action identifiers to display hints such as
// "Ctrl+S". Hosts replace the table wholesale when keymaps change.
type Service struct {
	hints     map[string]string
	listeners []func()
}

// NewService creates a lookup service seeded with the given hints.
func NewService(hints map[string]string) *Service {
	s := &Service{hints: map[string]string{}}
	for id, hint := range hints {
		s.hints[id] = hint
	}
	return s
}

// Lookup returns the display hint for an action id, or "" when the
// action has no binding.
func (s *Service) Lookup(actionID string) string {
	return s.hints[actionID]
}

// SetHints replaces the hint table and notifies listeners.
func (s *Service) SetHints(hints map[string]string) {
	s.hints = map[string]string{}
	for id, hint := range hints {
		s.hints[id] = hint
	}
	s.notify()
}

// OnChange registers a listener for keymap changes. The returned
// function removes the listener.
func (s *Service) OnChange(fn func()) func() {
	s.listeners = append(s.listeners, fn)
	idx := len(s.listeners) - 1
	return func() {
		if idx < len(s.listeners) {
			s.listeners[idx] = nil
		}
	}
}

func (s *Service) notify() {
	for _, fn := range s.listeners {
		if fn != nil {
			fn()
		}
	}
}

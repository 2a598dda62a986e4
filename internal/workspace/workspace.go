package workspace

// Entry identifies one recently opened workspace or file.
type Entry struct {
	Path  string
	Label string
}

// RecentlyOpened carries both recent lists, most recent first.
type RecentlyOpened struct {
	Workspaces []Entry
	Files      []Entry
}

// Service exposes window-level state the menu bar consumes: the
// recently-opened lists, OS window focus, and fullscreen state.
type Service struct {
	recent     RecentlyOpened
	focused    bool
	fullscreen bool

	recentListeners     []func()
	focusListeners      []func(bool)
	fullscreenListeners []func(bool)
}

// NewService creates a service for a focused, windowed editor with no
// history.
func NewService() *Service {
	return &Service{focused: true}
}

// RecentlyOpened returns copies of the recent lists so consumers never
// observe later mutations.
func (s *Service) RecentlyOpened() RecentlyOpened {
	return RecentlyOpened{
		Workspaces: cloneEntries(s.recent.Workspaces),
		Files:      cloneEntries(s.recent.Files),
	}
}

// SetRecentlyOpened replaces both recent lists and notifies listeners.
func (s *Service) SetRecentlyOpened(recent RecentlyOpened) {
	s.recent = RecentlyOpened{
		Workspaces: cloneEntries(recent.Workspaces),
		Files:      cloneEntries(recent.Files),
	}
	for _, fn := range s.recentListeners {
		if fn != nil {
			fn()
		}
	}
}

// OnRecentlyOpenedChange registers a listener for recent-list changes.
func (s *Service) OnRecentlyOpenedChange(fn func()) func() {
	s.recentListeners = append(s.recentListeners, fn)
	idx := len(s.recentListeners) - 1
	return func() {
		if idx < len(s.recentListeners) {
			s.recentListeners[idx] = nil
		}
	}
}

// Focused reports whether the OS window currently holds focus.
func (s *Service) Focused() bool {
	return s.focused
}

// SetFocused records a window focus transition and notifies listeners
// when the value actually changed.
func (s *Service) SetFocused(focused bool) {
	if s.focused == focused {
		return
	}
	s.focused = focused
	for _, fn := range s.focusListeners {
		if fn != nil {
			fn(focused)
		}
	}
}

// OnFocusChange registers a listener for window focus transitions.
func (s *Service) OnFocusChange(fn func(bool)) func() {
	s.focusListeners = append(s.focusListeners, fn)
	idx := len(s.focusListeners) - 1
	return func() {
		if idx < len(s.focusListeners) {
			s.focusListeners[idx] = nil
		}
	}
}

// Fullscreen reports the current fullscreen state.
func (s *Service) Fullscreen() bool {
	return s.fullscreen
}

// SetFullscreen records a fullscreen transition.
func (s *Service) SetFullscreen(fullscreen bool) {
	if s.fullscreen == fullscreen {
		return
	}
	s.fullscreen = fullscreen
	for _, fn := range s.fullscreenListeners {
		if fn != nil {
			fn(fullscreen)
		}
	}
}

// OnFullscreenChange registers a listener for fullscreen transitions.
func (s *Service) OnFullscreenChange(fn func(bool)) func() {
	s.fullscreenListeners = append(s.fullscreenListeners, fn)
	idx := len(s.fullscreenListeners) - 1
	return func() {
		if idx < len(s.fullscreenListeners) {
			s.fullscreenListeners[idx] = nil
		}
	}
}

func cloneEntries(entries []Entry) []Entry {
	if len(entries) == 0 {
		return nil
	}
	dup := make([]Entry, len(entries))
	copy(dup, entries)
	return dup
}

package settings

// Recognized configuration keys. The menu bar only ever reads these;
// hosts may store additional keys without affecting it.
const (
	KeyAutoSave            = "files.autoSave"
	KeyVisibility          = "window.menuBarVisibility"
	KeyMultiCursorModifier = "editor.multiCursorModifier"
	KeySidebarPosition     = "workbench.sideBar.location"
	KeyStatusBarVisible    = "workbench.statusBar.visible"
	KeyActivityBarVisible  = "workbench.activityBar.visible"
	KeyMnemonicsEnabled    = "window.enableMenuBarMnemonics"
	KeyTitleBarStyle       = "window.titleBarStyle"
)

// Well-known values for the keys above.
const (
	AutoSaveOff        = "off"
	AutoSaveAfterDelay = "afterDelay"
	VisibilityToggle   = "toggle"
	TitleBarCustom     = "custom"
)

// Store holds live configuration values and notifies listeners of
// changes. All access happens on the UI event loop; no locking.
type Store struct {
	values    map[string]interface{}
	listeners []func(keys []string)
}

// NewStore initialises a store with the defaults the menu bar assumes.
func NewStore() *Store {
	return &Store{
		values: map[string]interface{}{
			KeyAutoSave:            AutoSaveOff,
			KeyVisibility:          "visible",
			KeyMultiCursorModifier: "ctrlCmd",
			KeySidebarPosition:     "left",
			KeyStatusBarVisible:    true,
			KeyActivityBarVisible:  true,
			KeyMnemonicsEnabled:    true,
			KeyTitleBarStyle:       TitleBarCustom,
		},
	}
}

// Value returns the raw stored value for key, or nil when absent.
func (s *Store) Value(key string) interface{} {
	return s.values[key]
}

// Bool reads key as a boolean. Missing or non-boolean values read as
// true, so a corrupted setting can never hide a UI element for good.
func (s *Store) Bool(key string) bool {
	v, ok := s.values[key]
	if !ok {
		return true
	}
	b, ok := v.(bool)
	if !ok {
		return true
	}
	return b
}

// String reads key as a string, substituting fallback for missing or
// non-string values.
func (s *Store) String(key, fallback string) string {
	v, ok := s.values[key]
	if !ok {
		return fallback
	}
	str, ok := v.(string)
	if !ok {
		return fallback
	}
	return str
}

// Set stores a value and notifies listeners with the changed key.
func (s *Store) Set(key string, value interface{}) {
	s.values[key] = value
	s.notify([]string{key})
}

// SetAll stores several values and emits a single notification.
func (s *Store) SetAll(values map[string]interface{}) {
	if len(values) == 0 {
		return
	}
	keys := make([]string, 0, len(values))
	for key, value := range values {
		s.values[key] = value
		keys = append(keys, key)
	}
	s.notify(keys)
}

// OnChange registers a listener invoked with the keys touched by each
// Set/SetAll. The returned function removes the listener.
func (s *Store) OnChange(fn func(keys []string)) func() {
	s.listeners = append(s.listeners, fn)
	idx := len(s.listeners) - 1
	return func() {
		if idx < len(s.listeners) {
			s.listeners[idx] = nil
		}
	}
}

func (s *Store) notify(keys []string) {
	for _, fn := range s.listeners {
		if fn != nil {
			fn(keys)
		}
	}
}

// Affects reports whether any of keys is one the menu bar renders
// from. Controllers use it to skip rebuilds for unrelated changes.
func Affects(keys []string) bool {
	for _, key := range keys {
		switch key {
		case KeyAutoSave, KeyVisibility, KeyMultiCursorModifier,
			KeySidebarPosition, KeyStatusBarVisible,
			KeyActivityBarVisible, KeyMnemonicsEnabled,
			KeyTitleBarStyle:
			return true
		}
	}
	return false
}

package modkeys

import "github.com/atomicstack/editor-menubar/internal/logging/events"

// Key names one of the tracked modifier keys.
type Key string

const (
	KeyAlt   Key = "alt"
	KeyCtrl  Key = "ctrl"
	KeyShift Key = "shift"
)

// Status is the broadcast state of the tracked modifiers. LastPressed
// and LastReleased record which modifier most recently transitioned,
// letting consumers tell a bare Alt press from Alt inside a chord.
type Status struct {
	Alt          bool
	Ctrl         bool
	Shift        bool
	LastPressed  Key
	LastReleased Key
}

func (s Status) held(k Key) bool {
	switch k {
	case KeyAlt:
		return s.Alt
	case KeyCtrl:
		return s.Ctrl
	case KeyShift:
		return s.Shift
	}
	return false
}

func (s *Status) setHeld(k Key, held bool) {
	switch k {
	case KeyAlt:
		s.Alt = held
	case KeyCtrl:
		s.Ctrl = held
	case KeyShift:
		s.Shift = held
	}
}

// Chord reports whether two or more modifiers are held simultaneously.
func (s Status) Chord() bool {
	n := 0
	if s.Alt {
		n++
	}
	if s.Ctrl {
		n++
	}
	if s.Shift {
		n++
	}
	return n >= 2
}

// Tracker observes raw key press/release and window blur events and
// broadcasts normalized modifier state. Hosts construct exactly one
// per window and share it; there is no package-level singleton.
type Tracker struct {
	status    Status
	listeners []func(Status)
	disposed  bool
}

// NewTracker creates a tracker with all modifiers released.
func NewTracker() *Tracker {
	return &Tracker{}
}

// Status returns the current modifier state.
func (t *Tracker) Status() Status {
	return t.status
}

// Subscribe registers a listener for status broadcasts. The returned
// function removes the listener.
func (t *Tracker) Subscribe(fn func(Status)) func() {
	t.assertLive()
	t.listeners = append(t.listeners, fn)
	idx := len(t.listeners) - 1
	return func() {
		if idx < len(t.listeners) {
			t.listeners[idx] = nil
		}
	}
}

// KeyDown records a key press. Only a modifier transitioning to held
// triggers a broadcast; repeats and non-modifier keys while a modifier
// is already down stay silent.
func (t *Tracker) KeyDown(k Key) {
	t.assertLive()
	if !isModifier(k) {
		return
	}
	if t.status.held(k) {
		return
	}
	t.status.setHeld(k, true)
	t.status.LastPressed = k
	t.status.LastReleased = ""
	events.Modifier.Pressed(string(k), t.status.Alt, t.status.Ctrl, t.status.Shift)
	t.broadcast()
}

// KeyUp records a key release, symmetric to KeyDown.
func (t *Tracker) KeyUp(k Key) {
	t.assertLive()
	if !isModifier(k) {
		return
	}
	if !t.status.held(k) {
		return
	}
	t.status.setHeld(k, false)
	t.status.LastReleased = k
	t.status.LastPressed = ""
	events.Modifier.Released(string(k), t.status.Alt, t.status.Ctrl, t.status.Shift)
	t.broadcast()
}

// WindowBlur force-releases every modifier and always broadcasts, so a
// focus loss can never leave stale held state behind.
func (t *Tracker) WindowBlur() {
	t.assertLive()
	t.status = Status{}
	events.Modifier.Blur()
	t.broadcast()
}

// Dispose drops all listeners. A disposed tracker must not be reused;
// any further call panics. Construct a fresh instance instead.
func (t *Tracker) Dispose() {
	t.assertLive()
	t.listeners = nil
	t.disposed = true
}

func (t *Tracker) assertLive() {
	if t.disposed {
		panic("modkeys: tracker used after Dispose")
	}
}

func (t *Tracker) broadcast() {
	status := t.status
	for _, fn := range t.listeners {
		if fn != nil {
			fn(status)
		}
	}
}

func isModifier(k Key) bool {
	switch k {
	case KeyAlt, KeyCtrl, KeyShift:
		return true
	}
	return false
}

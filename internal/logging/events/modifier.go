package events

import "github.com/atomicstack/editor-menubar/internal/logging"

type ModifierTracer struct{}

var Modifier = ModifierTracer{}

func (ModifierTracer) Pressed(key string, alt, ctrl, shift bool) {
	logging.Trace("modifier.pressed", map[string]interface{}{
		"key":   key,
		"alt":   alt,
		"ctrl":  ctrl,
		"shift": shift,
	})
}

func (ModifierTracer) Released(key string, alt, ctrl, shift bool) {
	logging.Trace("modifier.released", map[string]interface{}{
		"key":   key,
		"alt":   alt,
		"ctrl":  ctrl,
		"shift": shift,
	})
}

func (ModifierTracer) Blur() {
	logging.Trace("modifier.blur", nil)
}

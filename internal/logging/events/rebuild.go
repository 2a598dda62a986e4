package events

import "github.com/atomicstack/editor-menubar/internal/logging"

type RebuildTracer struct{}

type CommandTracer struct{}

var (
	Rebuild = RebuildTracer{}
	Command = CommandTracer{}
)

func (RebuildTracer) Scheduled(reason string) {
	logging.Trace("rebuild.scheduled", map[string]interface{}{"reason": reason})
}

func (RebuildTracer) Deferred(reason string) {
	logging.Trace("rebuild.deferred", map[string]interface{}{"reason": reason})
}

func (RebuildTracer) Done(menus int) {
	logging.Trace("rebuild.done", map[string]interface{}{"menus": menus})
}

func (CommandTracer) Queue(id, label string) {
	logging.Trace("command.queue", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) NoOp(id, label string) {
	logging.Trace("command.noop", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Skip(id, label string) {
	logging.Trace("command.skip", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Result(id, label, msgType string) {
	logging.Trace("command.result", map[string]interface{}{"id": id, "label": label, "msg": msgType})
}

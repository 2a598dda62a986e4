package events

import "github.com/atomicstack/editor-menubar/internal/logging"

type MenubarTracer struct{}

type FocusTracer struct{}

var (
	Menubar = MenubarTracer{}
	Focus   = FocusTracer{}
)

func (MenubarTracer) Show(width, height int) {
	logging.Trace("menubar.show", map[string]interface{}{"width": width, "height": height})
}

func (MenubarTracer) Hide() {
	logging.Trace("menubar.hide", nil)
}

func (MenubarTracer) OpenMenu(id string, index int) {
	logging.Trace("menubar.open", map[string]interface{}{"menu": id, "index": index})
}

func (MenubarTracer) CloseMenu(id string) {
	logging.Trace("menubar.close", map[string]interface{}{"menu": id})
}

func (MenubarTracer) NativeSync(menus int) {
	logging.Trace("menubar.native-sync", map[string]interface{}{"menus": menus})
}

func (FocusTracer) State(from, to string) {
	logging.Trace("focus.state", map[string]interface{}{"from": from, "to": to})
}

func (FocusTracer) Button(index int, id string) {
	logging.Trace("focus.button", map[string]interface{}{"index": index, "menu": id})
}

func (FocusTracer) WindowLost() {
	logging.Trace("focus.window-lost", nil)
}

package events

import "elsetup/internal/logging"

type UITracer struct{}

type FilterTracer struct{}

type ActionTracer struct{}

var (
	UI     = UITracer{}
	Filter = FilterTracer{}
	Action = ActionTracer{}
)

func (UITracer) MenuEnter(menu, item string, selected bool) {
	logging.Trace("menu.enter", map[string]interface{}{
		"menu":     menu,
		"item":     item,
		"selected": selected,
	})
}

func (UITracer) MenuBack(menu string) {
	logging.Trace("menu.back", map[string]interface{}{"menu": menu})
}

func (UITracer) MenuCursor(menu string, cursor int) {
	logging.Trace("menu.cursor", map[string]interface{}{"menu": menu, "cursor": cursor})
}

func (UITracer) ModeChange(mode string) {
	logging.Trace("mode.change", map[string]interface{}{"mode": mode})
}

func (ActionTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("action.error", map[string]interface{}{"error": err.Error()})
}

func (ActionTracer) Success(info string) {
	logging.Trace("action.success", map[string]interface{}{"info": info})
}

func (FilterTracer) Cleared(menu string) {
	logging.Trace("filter.clear", map[string]interface{}{"menu": menu})
}

func (FilterTracer) Append(menu, filter string) {
	logging.Trace("filter.append", map[string]interface{}{"menu": menu, "filter": filter})
}

func (FilterTracer) Backspace(menu, filter string) {
	logging.Trace("filter.backspace", map[string]interface{}{"menu": menu, "filter": filter})
}

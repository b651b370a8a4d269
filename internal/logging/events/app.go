package events

import "elsetup/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Finish(action string) {
	logging.Trace("app.finish", map[string]interface{}{"action": action})
}

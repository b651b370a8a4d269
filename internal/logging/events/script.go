package events

import "elsetup/internal/logging"

type ScriptTracer struct{}

var Script = ScriptTracer{}

func (ScriptTracer) Generated(items int, reboot bool) {
	logging.Trace("script.generate", map[string]interface{}{
		"items":  items,
		"reboot": reboot,
	})
}

func (ScriptTracer) Saved(path string, bytes int) {
	logging.Trace("script.save", map[string]interface{}{"path": path, "bytes": bytes})
}

func (ScriptTracer) Run(path string) {
	logging.Trace("script.run", map[string]interface{}{"path": path})
}

func (ScriptTracer) Copied(bytes int) {
	logging.Trace("script.copy", map[string]interface{}{"bytes": bytes})
}

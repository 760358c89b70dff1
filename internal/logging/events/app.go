package events

import "github.com/atomicstack/termdi/internal/logging"

type AppTracer struct{}

type ConfigTracer struct{}

var (
	App    = AppTracer{}
	Config = ConfigTracer{}
)

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Stop(views int) {
	logging.Trace("app.stop", map[string]interface{}{"views": views})
}

func (ConfigTracer) Watch(path string) {
	logging.Trace("config.watch", map[string]interface{}{"path": path})
}

func (ConfigTracer) Reload(path string) {
	logging.Trace("config.reload", map[string]interface{}{"path": path})
}

func (ConfigTracer) Error(path string, err error) {
	if err == nil {
		return
	}
	logging.Trace("config.error", map[string]interface{}{"path": path, "error": err.Error()})
}

package events

import "github.com/atomicstack/termdi/internal/logging"

type ViewTracer struct{}

type FrameTracer struct{}

type ArrangeTracer struct{}

type viewReason string

const (
	ReasonEscape viewReason = "escape"
	ReasonEmpty  viewReason = "empty"
)

var (
	View    = ViewTracer{}
	Frame   = FrameTracer{}
	Arrange = ArrangeTracer{}
)

func (ViewTracer) Event(kind, id, title string) {
	logging.Trace("view.event", map[string]interface{}{"kind": kind, "id": id, "title": title})
}

func (ViewTracer) Create(id, title string) {
	logging.Trace("view.create", map[string]interface{}{"id": id, "title": title})
}

func (ViewTracer) RenamePrompt(id string) {
	logging.Trace("view.rename.prompt", map[string]interface{}{"id": id})
}

func (ViewTracer) Rename(id, title string) {
	logging.Trace("view.rename", map[string]interface{}{"id": id, "title": title})
}

func (ViewTracer) CancelRename(id string, reason viewReason) {
	logging.Trace("view.rename.cancel", map[string]interface{}{"id": id, "reason": string(reason)})
}

func (ViewTracer) Yank(id string) {
	logging.Trace("view.yank", map[string]interface{}{"id": id})
}

func (FrameTracer) PaneChanged(from, to string) {
	logging.Trace("frame.pane", map[string]interface{}{"from": from, "to": to})
}

func (FrameTracer) Button(button string) {
	logging.Trace("frame.button", map[string]interface{}{"button": button})
}

func (FrameTracer) Chrome() {
	logging.Trace("frame.chrome", nil)
}

func (ArrangeTracer) Apply(op string, windows int) {
	logging.Trace("arrange.apply", map[string]interface{}{"op": op, "windows": windows})
}

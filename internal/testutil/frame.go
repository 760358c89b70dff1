package testutil

import (
	"sync"
	"testing"

	"github.com/atomicstack/termdi/internal/mdi"
)

// NewFrame builds a frame in mode with one plain view per title.
func NewFrame(t *testing.T, mode mdi.PaneMode, titles ...string) (*mdi.Frame, []*mdi.View) {
	t.Helper()
	opts := mdi.DefaultOptions()
	opts.Mode = mode
	f, err := mdi.NewFrame(opts)
	if err != nil {
		t.Fatalf("new frame: %v", err)
	}
	views := make([]*mdi.View, 0, len(titles))
	for _, title := range titles {
		v := mdi.NewView(title)
		if err := f.AddView(v); err != nil {
			t.Fatalf("add view %q: %v", title, err)
		}
		views = append(views, v)
	}
	return f, views
}

// Recorder collects frame notifications as strings such as "activated(A)"
// or "pane-changed(tabbed→windowed)".
type Recorder struct {
	mu     sync.Mutex
	events []string
}

// Record attaches a new recorder to f and detaches it when t ends.
func Record(t *testing.T, f *mdi.Frame) *Recorder {
	t.Helper()
	r := &Recorder{}
	id := f.AddFrameListener(r)
	t.Cleanup(func() { f.RemoveFrameListener(id) })
	return r
}

func (r *Recorder) HandleFrameEvent(e mdi.FrameEvent) {
	var entry string
	switch e.Kind {
	case mdi.FrameViewEvent:
		entry = e.View.String()
	case mdi.FramePaneChanged:
		entry = e.Kind.String() + "(" + e.OldMode.String() + "→" + e.NewMode.String() + ")"
	default:
		entry = e.Kind.String()
	}
	r.mu.Lock()
	r.events = append(r.events, entry)
	r.mu.Unlock()
}

// Events returns a copy of everything recorded so far.
func (r *Recorder) Events() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.events))
	copy(out, r.events)
	return out
}

// Count reports how often entry was recorded.
func (r *Recorder) Count(entry string) int {
	n := 0
	for _, e := range r.Events() {
		if e == entry {
			n++
		}
	}
	return n
}

func (r *Recorder) Reset() {
	r.mu.Lock()
	r.events = nil
	r.mu.Unlock()
}

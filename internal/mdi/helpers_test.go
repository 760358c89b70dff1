package mdi

import (
	"testing"
)

type recorder struct {
	events []string
}

func (r *recorder) HandleViewEvent(e ViewEvent) {
	r.events = append(r.events, e.String())
}

func (r *recorder) reset() {
	r.events = nil
}

func (r *recorder) count(event string) int {
	n := 0
	for _, e := range r.events {
		if e == event {
			n++
		}
	}
	return n
}

func newTestFrame(t *testing.T, mode PaneMode) *Frame {
	t.Helper()
	opts := DefaultOptions()
	opts.Mode = mode
	f, err := NewFrame(opts)
	if err != nil {
		t.Fatalf("new frame: %v", err)
	}
	return f
}

// addViews adds one view per title, all reporting to rec.
func addViews(t *testing.T, f *Frame, rec *recorder, titles ...string) []*View {
	t.Helper()
	views := make([]*View, 0, len(titles))
	for _, title := range titles {
		v := NewView(title)
		if rec != nil {
			v.AddViewListener(rec)
		}
		if err := f.AddView(v); err != nil {
			t.Fatalf("add view %q: %v", title, err)
		}
		views = append(views, v)
	}
	return views
}

func selectedCount(f *Frame) int {
	n := 0
	for _, v := range f.Views() {
		if v.IsSelected() {
			n++
		}
	}
	return n
}

package ui

import (
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/muesli/reflow/wordwrap"

	"github.com/atomicstack/termdi/internal/mdi"
)

var noteSeq atomic.Int64

// note is the content of the views created from the UI. It reports on the
// view it belongs to, which makes state changes visible on screen.
type note struct {
	view    *mdi.View
	created time.Time
}

// NewNoteView returns a view carrying note content. An empty title gets a
// numbered default.
func NewNoteView(title string) *mdi.View {
	n := noteSeq.Add(1)
	if strings.TrimSpace(title) == "" {
		title = fmt.Sprintf("Untitled %d", n)
	}
	content := &note{created: time.Now()}
	v := mdi.NewView(title, mdi.WithIcon("▤"), mdi.WithContent(content))
	content.view = v
	return v
}

func (n *note) Render(width, height int) string {
	if n.view == nil {
		return ""
	}
	text := fmt.Sprintf(
		"%s is %s. Opened at %s. Use the windows menu (:) or the number keys to switch between views, and v to toggle between tabs and windows.",
		n.view.Title(), n.view.State(), n.created.Format("15:04:05"),
	)
	if width > 0 {
		text = wordwrap.String(text, width)
	}
	lines := strings.Split(text, "\n")
	if height > 0 && len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}

package menu

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/termdi/internal/logging/events"
)

// RenameForm edits a view title.
type RenameForm struct {
	input  textinput.Model
	ctx    Context
	target string
	help   string
	title  string
}

func NewRenameForm(prompt RenamePrompt) *RenameForm {
	ti := textinput.New()
	ti.Placeholder = "view title"
	ti.CharLimit = 64
	ti.Cursor.SetMode(cursor.CursorStatic)
	if prompt.Initial != "" {
		ti.SetValue(prompt.Initial)
		ti.CursorEnd()
	}
	ti.Focus()
	title := "Rename view"
	if prompt.Initial != "" {
		title = fmt.Sprintf("Rename %s", prompt.Initial)
	}
	return &RenameForm{
		input:  ti,
		ctx:    prompt.Context,
		target: prompt.ViewID,
		help:   "Press Enter to rename. Esc to cancel.",
		title:  title,
	}
}

func (f *RenameForm) Context() Context  { return f.ctx }
func (f *RenameForm) Target() string    { return f.target }
func (f *RenameForm) Title() string     { return f.title }
func (f *RenameForm) Help() string      { return f.help }
func (f *RenameForm) Value() string     { return strings.TrimSpace(f.input.Value()) }
func (f *RenameForm) InputView() string { return f.input.View() }

func (f *RenameForm) ActionID() string { return "view:rename" }

func (f *RenameForm) PendingLabel() string {
	name := f.Value()
	if name == "" {
		return f.ActionID()
	}
	return fmt.Sprintf("%s → %s", f.title, name)
}

// Update returns the follow-up command plus whether the form finished or was
// cancelled.
func (f *RenameForm) Update(msg tea.Msg) (tea.Cmd, bool, bool) {
	switch m := msg.(type) {
	case tea.KeyMsg:
		switch m.String() {
		case "ctrl+u":
			if f.input.Value() != "" {
				f.input.SetValue("")
				f.input.CursorStart()
			}
			return nil, false, false
		}
		switch m.Type {
		case tea.KeyEsc:
			events.View.CancelRename(f.target, events.ReasonEscape)
			return nil, false, true
		case tea.KeyEnter:
			name := f.Value()
			if name == "" {
				events.View.CancelRename(f.target, events.ReasonEmpty)
				return nil, false, true
			}
			return RenameCommand(f.target, name), true, false
		}
	}
	updated, cmd := f.input.Update(msg)
	f.input = updated
	return cmd, false, false
}

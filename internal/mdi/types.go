package mdi

import (
	"fmt"
	"strings"
)

// PaneMode selects the container views are projected into.
type PaneMode int

const (
	Tabbed PaneMode = iota
	Windowed
)

func (m PaneMode) String() string {
	switch m {
	case Tabbed:
		return "tabbed"
	case Windowed:
		return "windowed"
	default:
		return fmt.Sprintf("PaneMode(%d)", int(m))
	}
}

func (m PaneMode) valid() bool {
	return m == Tabbed || m == Windowed
}

// ParsePaneMode accepts "tabbed"/"tabs" and "windowed"/"desktop".
func ParsePaneMode(s string) (PaneMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "tabbed", "tabs":
		return Tabbed, nil
	case "windowed", "desktop":
		return Windowed, nil
	}
	return Tabbed, fmt.Errorf("pane mode %q: %w", s, ErrInvalidArgument)
}

// State is the logical state stored on a view.
type State int

const (
	StateRestored State = iota
	StateIconified
	StateMaximized
)

func (s State) String() string {
	switch s {
	case StateRestored:
		return "restored"
	case StateIconified:
		return "iconified"
	case StateMaximized:
		return "maximized"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// ClosePolicy decides what a close request does once Closing was delivered.
type ClosePolicy int

const (
	DisposeOnClose ClosePolicy = iota
	DoNothingOnClose
)

func (p ClosePolicy) String() string {
	switch p {
	case DisposeOnClose:
		return "dispose"
	case DoNothingOnClose:
		return "do-nothing"
	default:
		return fmt.Sprintf("ClosePolicy(%d)", int(p))
	}
}

func (p ClosePolicy) valid() bool {
	return p == DisposeOnClose || p == DoNothingOnClose
}

// Rect is a window geometry in terminal cells.
type Rect struct {
	X, Y int
	W, H int
}

func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

func (r Rect) String() string {
	return fmt.Sprintf("%dx%d+%d+%d", r.W, r.H, r.X, r.Y)
}

// transition tags an internal state change with its origin. Only user
// initiated transitions emit view events; reprojections caused by a pane
// switch never do.
type transition int

const (
	userInitiated transition = iota
	reprojection
)

func (t transition) emits() bool {
	return t == userInitiated
}

func (t transition) String() string {
	if t == reprojection {
		return "reprojection"
	}
	return "user"
}

package mdi

// Tab is one entry of the tab strip.
type Tab struct {
	Title string
	Icon  Icon
	View  *View
}

// TabStrip projects views as tabs while the frame is in tabbed mode. It holds
// no callbacks: the frame mutates it and performs the selection bookkeeping
// itself.
type TabStrip struct {
	tabs        []Tab
	selected    int
	closeButton bool
}

func newTabStrip() *TabStrip {
	return &TabStrip{selected: -1}
}

func (t *TabStrip) Len() int { return len(t.tabs) }

// Tabs returns a copy of the tabs in display order.
func (t *TabStrip) Tabs() []Tab {
	if len(t.tabs) == 0 {
		return nil
	}
	out := make([]Tab, len(t.tabs))
	copy(out, t.tabs)
	return out
}

// Selected returns the selected index or -1.
func (t *TabStrip) Selected() int { return t.selected }

// SelectedView returns the view of the selected tab or nil.
func (t *TabStrip) SelectedView() *View {
	if t.selected < 0 || t.selected >= len(t.tabs) {
		return nil
	}
	return t.tabs[t.selected].View
}

// CloseButton reports whether tabs draw a close button.
func (t *TabStrip) CloseButton() bool { return t.closeButton }

func (t *TabStrip) IndexOf(v *View) int {
	for i, tab := range t.tabs {
		if tab.View == v {
			return i
		}
	}
	return -1
}

func (t *TabStrip) insert(index int, tab Tab) {
	if index < 0 || index > len(t.tabs) {
		index = len(t.tabs)
	}
	t.tabs = append(t.tabs, Tab{})
	copy(t.tabs[index+1:], t.tabs[index:])
	t.tabs[index] = tab
	if t.selected >= index {
		t.selected++
	}
}

// remove drops the tab at index. Removing the selected tab leaves nothing
// selected; the frame picks the successor.
func (t *TabStrip) remove(index int) {
	if index < 0 || index >= len(t.tabs) {
		return
	}
	t.tabs = append(t.tabs[:index], t.tabs[index+1:]...)
	switch {
	case index == t.selected:
		t.selected = -1
	case index < t.selected:
		t.selected--
	}
}

func (t *TabStrip) setSelected(index int) {
	if index < -1 || index >= len(t.tabs) {
		index = -1
	}
	t.selected = index
}

func (t *TabStrip) setTitleAt(index int, title string) {
	if index >= 0 && index < len(t.tabs) {
		t.tabs[index].Title = title
	}
}

func (t *TabStrip) setIconAt(index int, icon Icon) {
	if index >= 0 && index < len(t.tabs) {
		t.tabs[index].Icon = icon
	}
}

func (t *TabStrip) clear() {
	t.tabs = nil
	t.selected = -1
}

package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"

	"github.com/atomicstack/termdi/internal/mdi"
)

const (
	defaultWidth  = 80
	defaultHeight = 24

	iconWidth = 16
)

// desktopChromeRows is the number of rows the desktop reserves around the
// workspace: the menu bar, the status line and the optional footer.
func (m *Model) desktopChromeRows() int {
	rows := 2
	if m.showFooter {
		rows++
	}
	return rows
}

func (m *Model) screenSize() (int, int) {
	w, h := m.width, m.height
	if w <= 0 {
		w = defaultWidth
	}
	if h <= 0 {
		h = defaultHeight
	}
	return w, h
}

// resizeFrame hands the workspace area to the frame so new windows are placed
// and sized against what is actually on screen.
func (m *Model) resizeFrame() {
	w, h := m.screenSize()
	m.frame.Resize(w, h-m.desktopChromeRows())
}

func (m *Model) viewDesktop() string {
	w, h := m.screenSize()
	bodyH := h - m.desktopChromeRows()
	if bodyH < 1 {
		bodyH = 1
	}
	rows := make([]string, 0, h)
	rows = append(rows, m.renderMenuBar(w))
	if m.frame.PaneMode() == mdi.Tabbed {
		rows = append(rows, m.renderTabbed(w, bodyH)...)
	} else {
		rows = append(rows, m.renderWindowed(w, bodyH)...)
	}
	rows = append(rows, m.renderStatusLine(w))
	if m.showFooter {
		rows = append(rows, m.renderFooter(w))
	}
	return strings.Join(rows, "\n")
}

// renderMenuBar draws the application title, the windows menu title and the
// frame buttons flush right.
func (m *Model) renderMenuBar(width int) string {
	left := renderStyled(styles.MenuBarTitle, " "+appName+" ") +
		renderStyled(styles.MenuBar, " "+m.windows.Title()+" (:) ")
	var right strings.Builder
	for _, el := range m.frame.MenuBar().Elements() {
		label := "[" + el.Label + "]"
		if !el.Enabled {
			right.WriteString(renderStyled(styles.Status, label))
			continue
		}
		right.WriteString(renderStyled(styles.Button, label))
	}
	gap := width - lipgloss.Width(left) - lipgloss.Width(right.String())
	if gap < 0 {
		return fitWidth(left+right.String(), width)
	}
	return left + renderStyled(styles.MenuBar, strings.Repeat(" ", gap)) + right.String()
}

func (m *Model) renderTabbed(width, height int) []string {
	tabs := m.frame.Tabs()
	if tabs.Len() == 0 {
		return emptyWorkspace(width, height)
	}
	var strip strings.Builder
	selected := tabs.Selected()
	for i, tab := range tabs.Tabs() {
		label := " " + tabLabel(tab.Icon, tab.Title)
		if tabs.CloseButton() {
			label += " ×"
		}
		label += " "
		if i == selected {
			strip.WriteString(renderStyled(styles.ActiveTab, label))
		} else {
			strip.WriteString(renderStyled(styles.Tab, label))
		}
		strip.WriteString("│")
	}
	rows := []string{fitWidth(strip.String(), width)}
	bodyH := height - 1
	var body []string
	if v := tabs.SelectedView(); v != nil {
		body = contentLines(v, width, bodyH)
	}
	for i := 0; i < bodyH; i++ {
		var line string
		if i < len(body) {
			line = body[i]
		}
		rows = append(rows, renderStyled(styles.WindowBody, fitWidth(line, width)))
	}
	return rows
}

func tabLabel(icon mdi.Icon, title string) string {
	if icon == "" {
		return title
	}
	return string(icon) + " " + title
}

func emptyWorkspace(width, height int) []string {
	rows := make([]string, height)
	for i := range rows {
		rows[i] = strings.Repeat(" ", width)
	}
	if height > 0 {
		msg := "no views open, ctrl+n creates one"
		rows[height/2] = fitWidth(renderStyled(styles.EmptyWorkspace, centre(msg, width)), width)
	}
	return rows
}

func centre(s string, width int) string {
	pad := (width - runewidth.StringWidth(s)) / 2
	if pad <= 0 {
		return s
	}
	return strings.Repeat(" ", pad) + s
}

// renderWindowed paints the visible windows bottom to top onto a canvas and
// lines iconified windows up along the bottom edge.
func (m *Model) renderWindowed(width, height int) []string {
	desk := m.frame.Desktop()
	windows := desk.Windows()
	if len(windows) == 0 {
		return emptyWorkspace(width, height)
	}
	c := newCanvas(width, height)
	var icons []*mdi.Window
	for _, w := range windows {
		if w.IsIconified() {
			icons = append(icons, w)
			continue
		}
		c.drawWindow(w)
	}
	x := 0
	for _, w := range icons {
		label := fitWidth(" "+tabLabel(w.Icon(), w.Title()), iconWidth)
		style := styles.Icon
		if w.IsSelected() {
			style = styles.ActiveIcon
		}
		c.put(x, height-1, label, style)
		x += iconWidth + 1
	}
	return c.lines()
}

func (m *Model) renderStatusLine(width int) string {
	mode := renderStyled(styles.StatusMode, " "+m.frame.PaneMode().String()+" ")
	parts := []string{fmt.Sprintf("%d views", len(m.frame.Views()))}
	if v := m.frame.ActiveView(); v != nil {
		parts = append(parts, "active: "+v.Title())
	}
	if m.lastEvent != "" {
		parts = append(parts, m.lastEvent)
	}
	status := renderStyled(styles.Status, " "+strings.Join(parts, "  ·  "))
	switch {
	case m.errMsg != "":
		status += "  " + renderStyled(styles.Error, "Error: "+m.errMsg)
	case m.currentInfo() != "":
		status += "  " + renderStyled(styles.Info, m.infoMsg)
	case m.backendLastErr != "":
		status += "  " + renderStyled(styles.Error, "config: "+m.backendLastErr)
	}
	return fitWidth(mode+status, width)
}

func (m *Model) renderFooter(width int) string {
	parts := make([]string, 0, 8)
	for _, b := range m.keys.ShortHelp() {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return fitWidth(renderStyled(styles.Footer, strings.Join(parts, "  ")), width)
}

func contentLines(v *mdi.View, width, height int) []string {
	c := v.Content()
	if c == nil || width <= 0 || height <= 0 {
		return nil
	}
	lines := strings.Split(c.Render(width, height), "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	return lines
}

func renderStyled(style *lipgloss.Style, s string) string {
	if style == nil {
		return s
	}
	return style.Render(s)
}

// fitWidth truncates or pads s to exactly width cells, keeping escape
// sequences intact.
func fitWidth(s string, width int) string {
	if width <= 0 {
		return ""
	}
	w := ansi.StringWidth(s)
	if w > width {
		return ansi.Truncate(s, width, "")
	}
	return s + strings.Repeat(" ", width-w)
}

type cell struct {
	r     rune
	style *lipgloss.Style
	// cont marks the right half of a wide rune.
	cont bool
}

type canvas struct {
	width, height int
	cells         [][]cell
}

func newCanvas(width, height int) *canvas {
	cells := make([][]cell, height)
	for y := range cells {
		row := make([]cell, width)
		for x := range row {
			row[x] = cell{r: ' '}
		}
		cells[y] = row
	}
	return &canvas{width: width, height: height, cells: cells}
}

// put writes s starting at (x, y), clipped to the canvas. Escape sequences
// in s are dropped.
func (c *canvas) put(x, y int, s string, style *lipgloss.Style) {
	if y < 0 || y >= c.height {
		return
	}
	for _, r := range ansi.Strip(s) {
		rw := runewidth.RuneWidth(r)
		if rw == 0 {
			continue
		}
		if x >= 0 && x+rw <= c.width {
			c.clearWide(y, x)
			if rw == 2 {
				c.clearWide(y, x+1)
			}
			c.cells[y][x] = cell{r: r, style: style}
			if rw == 2 {
				c.cells[y][x+1] = cell{style: style, cont: true}
			}
		}
		x += rw
		if x >= c.width {
			return
		}
	}
}

// clearWide blanks the other half of a wide rune that overlaps (x, y).
func (c *canvas) clearWide(y, x int) {
	row := c.cells[y]
	if row[x].cont && x > 0 {
		row[x-1] = cell{r: ' ', style: row[x-1].style}
	}
	if !row[x].cont && x+1 < c.width && row[x+1].cont {
		row[x+1] = cell{r: ' ', style: row[x+1].style}
	}
}

func (c *canvas) fill(r mdi.Rect, style *lipgloss.Style) {
	for y := r.Y; y < r.Y+r.H; y++ {
		c.put(r.X, y, strings.Repeat(" ", r.W), style)
	}
}

func (c *canvas) drawWindow(w *mdi.Window) {
	b := w.Bounds()
	if b.W < 2 || b.H < 2 {
		return
	}
	border := styles.WindowBorder
	if w.IsSelected() {
		border = styles.ActiveBorder
	}
	innerW := b.W - 2
	title := runewidth.Truncate(" "+tabLabel(w.Icon(), w.Title())+" ", innerW, "…")
	dashes := innerW - runewidth.StringWidth(title)
	if dashes < 0 {
		dashes = 0
	}
	c.fill(b, styles.WindowBody)
	c.put(b.X, b.Y, "╭"+title+strings.Repeat("─", dashes)+"╮", border)
	for y := b.Y + 1; y < b.Y+b.H-1; y++ {
		c.put(b.X, y, "│", border)
		c.put(b.X+b.W-1, y, "│", border)
	}
	c.put(b.X, b.Y+b.H-1, "╰"+strings.Repeat("─", innerW)+"╯", border)
	for i, line := range contentLines(w.View(), innerW, b.H-2) {
		c.put(b.X+1, b.Y+1+i, runewidth.Truncate(ansi.Strip(line), innerW, ""), styles.WindowBody)
	}
}

// lines renders each row, grouping runs of cells that share a style.
func (c *canvas) lines() []string {
	out := make([]string, c.height)
	for y, row := range c.cells {
		var b strings.Builder
		var run strings.Builder
		var current *lipgloss.Style
		flush := func() {
			if run.Len() == 0 {
				return
			}
			b.WriteString(renderStyled(current, run.String()))
			run.Reset()
		}
		for _, cl := range row {
			if cl.cont {
				continue
			}
			if cl.style != current {
				flush()
				current = cl.style
			}
			run.WriteRune(cl.r)
		}
		flush()
		out[y] = b.String()
	}
	return out
}

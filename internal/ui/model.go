package ui

import (
	"reflect"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/termdi/internal/backend"
	"github.com/atomicstack/termdi/internal/data/dispatcher"
	"github.com/atomicstack/termdi/internal/mdi"
	"github.com/atomicstack/termdi/internal/menu"
	"github.com/atomicstack/termdi/internal/state"
	"github.com/atomicstack/termdi/internal/theme"
	"github.com/atomicstack/termdi/internal/ui/command"
	uistate "github.com/atomicstack/termdi/internal/ui/state"
	"github.com/atomicstack/termdi/internal/windowsmenu"
)

type level = uistate.Level

type Mode int

const (
	// ModeDesktop sends keys to the frame.
	ModeDesktop Mode = iota
	// ModeMenu shows the command menu.
	ModeMenu
	// ModeRenameForm edits a view title.
	ModeRenameForm
)

const (
	menuHeaderSeparator = "→"
	defaultRootTitle    = "command menu"
	appName             = "termdi"
)

var styles = theme.Default()

var headerSegmentCleaner = strings.NewReplacer("_", " ", "-", " ")

type msgHandler func(tea.Msg) tea.Cmd

func newLevel(id, title string, items []menu.Item, node *menu.Node) *level {
	return uistate.NewLevel(id, title, items, node)
}

// Options configures a Model.
type Options struct {
	Width      int
	Height     int
	ShowFooter bool
	Verbose    bool
	Watcher    *backend.Watcher
	RootMenu   string
	Settings   state.Settings
	ConfigPath string
}

// Model implements the Bubble Tea model for the MDI desktop and its command
// menu.
type Model struct {
	frame   *mdi.Frame
	windows *windowsmenu.Menu
	keys    KeyMap

	stack          []*level
	loading        bool
	pendingID      string
	pendingLabel   string
	errMsg         string
	infoMsg        string
	infoExpire     time.Time
	lastEvent      string
	width          int
	height         int
	fixedWidth     bool
	fixedHeight    bool
	backend        *backend.Watcher
	backendState   map[backend.Kind]error
	backendLastErr string
	showFooter     bool
	verbose        bool
	renameForm     *menu.RenameForm
	filterCursor   cursor.Model
	preview        map[string]*previewData
	snapshotDirty  bool
	handlers       map[reflect.Type]msgHandler
	registry       *menu.Registry
	bus            *command.Bus
	mode           Mode
	rootMenuID     string
	rootTitle      string
	views          state.ViewStore
	chrome         state.ChromeStore
	settings       state.SettingsStore
	dispatcher     *dispatcher.Dispatcher
	frameListener  mdi.ListenerID
}

// NewModel wires the frame to a windows menu, the stores and the command
// menu. A non-empty RootMenu opens the command menu at that submenu.
func NewModel(frame *mdi.Frame, opts Options) *Model {
	registry := menu.BuildRegistry()
	views := state.NewViewStore()
	chrome := state.NewChromeStore()
	settings := state.NewSettingsStore(opts.Settings)
	settings.SetSource(opts.ConfigPath)
	root := newLevel("root", "Command Menu", menu.RootItems(), registry.Root())
	m := &Model{
		frame:        frame,
		keys:         DefaultKeyMap(),
		stack:        []*level{root},
		registry:     registry,
		bus:          command.New(),
		backend:      opts.Watcher,
		backendState: map[backend.Kind]error{},
		showFooter:   opts.ShowFooter,
		verbose:      opts.Verbose,
		mode:         ModeDesktop,
		rootTitle:    defaultRootTitle,
		preview:      make(map[string]*previewData),
		views:        views,
		chrome:       chrome,
		settings:     settings,
		dispatcher:   dispatcher.New(views, chrome, settings),
	}
	m.windows = windowsmenu.New(frame,
		windowsmenu.WithTitle(opts.Settings.WindowsTitle),
		windowsmenu.WithRefreshHook(m.markSnapshotDirty),
	)
	m.frameListener = frame.AddFrameListener(mdi.FrameListenerFunc(m.traceFrameEvent))
	m.applyNodeSettings(root)
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	m.resizeFrame()
	c := cursor.New()
	c.SetMode(cursor.CursorStatic)
	if styles.Cursor != nil {
		c.Style = styles.Cursor.Copy()
	}
	if styles.Filter != nil {
		c.TextStyle = styles.Filter.Copy()
	}
	c.SetChar(" ")
	m.filterCursor = c
	m.syncSnapshot()
	m.syncViewport(root)
	m.applyRootMenuOverride(opts.RootMenu)
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{}
	if m.backend != nil {
		cmds = append(cmds, waitForBackendEvent(m.backend))
	}
	if cmd := m.filterCursor.Focus(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if cmd := m.updateFilterCursorModel(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if handled, cmd := m.handleActiveForm(msg); handled {
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		return m, m.finishUpdate(cmds)
	}

	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) handleActiveForm(msg tea.Msg) (bool, tea.Cmd) {
	if m.mode != ModeRenameForm {
		return false, nil
	}
	return m.handleRenameForm(msg)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(tea.MouseMsg{}):      m.handleMouseMsg,
		reflect.TypeOf(categoryLoadedMsg{}): m.handleCategoryLoadedMsg,
		reflect.TypeOf(menu.ActionResult{}): m.handleActionResultMsg,
		reflect.TypeOf(menu.Operation{}):    m.handleOperationMsg,
		reflect.TypeOf(menu.RenamePrompt{}): m.handleRenamePromptMsg,
		reflect.TypeOf(backendEventMsg{}):   m.handleBackendEventMsg,
		reflect.TypeOf(backendDoneMsg{}):    m.handleBackendDoneMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

// finishUpdate republishes the frame snapshot once per update, however many
// frame events the update produced.
func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if m.snapshotDirty {
		m.syncSnapshot()
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// Frame exposes the frame driven by the model.
func (m *Model) Frame() *mdi.Frame { return m.frame }

// WindowsMenu exposes the windows menu attached to the frame.
func (m *Model) WindowsMenu() *windowsmenu.Menu { return m.windows }

// Mode reports which surface currently receives keys.
func (m *Model) Mode() Mode { return m.mode }

// Close detaches the model's listeners from the frame.
func (m *Model) Close() {
	m.frame.RemoveFrameListener(m.frameListener)
	m.windows.Close()
}

func (m *Model) target() menu.Target {
	return menu.Target{Frame: m.frame, Windows: m.windows, NewView: NewNoteView}
}

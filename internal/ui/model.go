package ui

import (
	"reflect"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"elsetup/internal/distro"
	"elsetup/internal/menutree"
	"elsetup/internal/script"
	"elsetup/internal/theme"
	uistate "elsetup/internal/ui/state"
)

type level = uistate.Level

type Mode int

const (
	ModeMenu Mode = iota
	ModeReview
	ModeSave
)

func (m Mode) String() string {
	switch m {
	case ModeReview:
		return "review"
	case ModeSave:
		return "save"
	default:
		return "menu"
	}
}

const (
	menuHeaderSeparator = " → "
	defaultSaveName     = "install.sh"
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Model implements the Bubble Tea model for the installer menu.
type Model struct {
	tree *menutree.Tree
	nav  *menutree.Cursor
	dist distro.Distro

	stack []*level

	filtering         bool
	filterCursor      cursor.Model
	filterCursorDirty bool

	saveInput textinput.Model

	reviewReboot bool
	reviewScroll int

	preview previewData

	errMsg     string
	infoMsg    string
	infoExpire time.Time

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	verbose     bool

	runRequested bool

	handlers map[reflect.Type]msgHandler
	mode     Mode
}

// NewModel initialises the UI state around a built menu tree.
func NewModel(tree *menutree.Tree, dist distro.Distro, width, height int, showFooter, verbose bool) *Model {
	nav := menutree.NewCursor(tree)
	m := &Model{
		tree:       tree,
		nav:        nav,
		dist:       dist,
		showFooter: showFooter,
		verbose:    verbose,
		mode:       ModeMenu,
	}
	root := uistate.NewLevel(tree.Root(), menutree.RootName, m.currentRows())
	m.stack = []*level{root}
	if width > 0 {
		m.width = width
		m.fixedWidth = true
	}
	if height > 0 {
		m.height = height
		m.fixedHeight = true
	}
	c := cursor.New()
	if styles.Cursor != nil {
		c.Style = styles.Cursor.Copy()
	}
	if styles.Filter != nil {
		c.TextStyle = styles.Filter.Copy()
	}
	c.SetChar(" ")
	m.filterCursor = c

	ti := textinput.New()
	ti.Placeholder = defaultSaveName
	ti.CharLimit = 128
	if styles.FilterPrompt != nil {
		ti.PromptStyle = styles.FilterPrompt.Copy()
	}
	m.saveInput = ti

	m.refreshPreview()
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if m.filtering {
		if cmd := m.updateFilterCursorModel(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if m.mode == ModeSave {
		if handled, cmd := m.handleSaveForm(msg); handled {
			if cmd != nil {
				cmds = append(cmds, cmd)
			}
			return m, m.finishUpdate(cmds)
		}
	}
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(tea.MouseMsg{}):      m.handleMouseMsg,
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

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if m.filterCursorDirty {
		m.filterCursorDirty = false
		m.filterCursor.Blink = false
		if cmd := m.filterCursor.BlinkCmd(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// Result reports the outcome once the program has exited: whether the user
// asked to run the script, plus the script text and reboot flag to use.
func (m *Model) Result() (run bool, scriptText string, reboot bool) {
	return m.runRequested, script.Generate(m.tree, m.dist, m.reviewReboot), m.reviewReboot
}

// Tree exposes the underlying menu tree.
func (m *Model) Tree() *menutree.Tree {
	return m.tree
}

func (m *Model) currentLevel() *level {
	if len(m.stack) == 0 {
		return nil
	}
	return m.stack[len(m.stack)-1]
}

// currentRows converts the navigation cursor's visible nodes into level rows.
func (m *Model) currentRows() []uistate.Row {
	return m.rowsFor(m.nav.Current())
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(5 * time.Second)
}

func (m *Model) forceClearInfo() {
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.infoMsg = ""
		m.infoExpire = time.Time{}
	}
	return m.infoMsg
}

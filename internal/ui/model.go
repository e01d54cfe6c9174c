package ui

import (
	"reflect"

	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/xaota/popup-bus/bus"
	"github.com/xaota/popup-bus/internal/logging/events"
	"github.com/xaota/popup-bus/internal/theme"
	"github.com/xaota/popup-bus/internal/ui/state"
	"github.com/xaota/popup-bus/popup"
)

const (
	intentHelp        = "help"
	intentToast       = "toast"
	intentProfileEdit = "profile-edit"
	intentConfirmQuit = "confirm-quit"
	intentInspector   = "inspector"
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// launcherItems lists the popups the demo can broadcast to, with the sample
// payload each broadcast carries.
func launcherItems() []state.Item {
	return []state.Item{
		{Intent: intentHelp, Label: "Help", Hint: "keyboard reference"},
		{Intent: intentToast, Label: "Toast", Hint: "payload-carrying notice",
			Payload: map[string]any{"text": "saved", "level": "info"}},
		{Intent: intentProfileEdit, Label: "Profile editor", Hint: "payload with a user id",
			Payload: map[string]any{"userId": 42}},
		{Intent: intentConfirmQuit, Label: "Confirm quit", Hint: "also on ctrl+c"},
		{Intent: intentInspector, Label: "Inspector", Hint: "ctrl+t unmounts its consumer"},
	}
}

// Model implements the Bubble Tea model for the popup demo.
type Model struct {
	bus         *bus.Bus
	list        *state.List
	fixed       []*Overlay
	inspector   *Overlay
	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	verbose     bool

	filterCursor      cursor.Model
	filterCursorDirty bool

	handlers map[reflect.Type]msgHandler
}

// NewModel initialises the demo over the provided bus. Every overlay is
// mounted immediately; the inspector can be unmounted at runtime.
func NewModel(b *bus.Bus, width, height int, showFooter, verbose bool) *Model {
	m := &Model{
		bus:        b,
		list:       state.NewList(launcherItems()),
		showFooter: showFooter,
		verbose:    verbose,
	}
	m.fixed = []*Overlay{
		newOverlay(b, intentHelp, "Help",
			"enter opens the selected popup, esc closes visible ones,\nctrl+t toggles the inspector consumer, ctrl+c quits."),
		newOverlay(b, intentToast, "Toast", ""),
		newOverlay(b, intentProfileEdit, "Profile editor", ""),
		newOverlay(b, intentConfirmQuit, "Quit?", "y confirms, n keeps the session."),
	}
	m.inspector = newOverlay(b, intentInspector, "Inspector", "")
	if width > 0 {
		m.width = width
		m.fixedWidth = true
	}
	if height > 0 {
		m.height = height
		m.fixedHeight = true
	}
	c := cursor.New()
	if styles.FilterPrompt != nil {
		c.Style = styles.FilterPrompt.Copy()
	}
	if styles.Filter != nil {
		c.TextStyle = styles.Filter.Copy()
	}
	c.SetChar(" ")
	m.filterCursor = c
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return m.filterCursor.Focus()
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 2)
	if cmd := m.updateFilterCursorModel(msg); cmd != nil {
		cmds = append(cmds, cmd)
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

func (m *Model) updateFilterCursorModel(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.filterCursor, cmd = m.filterCursor.Update(msg)
	return cmd
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	size := msg.(tea.WindowSizeMsg)
	if !m.fixedWidth {
		m.width = size.Width
	}
	if !m.fixedHeight {
		m.height = size.Height
	}
	return nil
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	key := msg.(tea.KeyMsg)

	if m.confirmQuit().Visible() {
		return m.handleConfirmKey(key)
	}

	switch key.String() {
	case "ctrl+c":
		popup.OpenOn(m.bus, intentConfirmQuit, nil)
		return nil
	case "ctrl+t":
		m.toggleInspector()
		return nil
	case "esc":
		if m.list.ClearFilter() {
			m.filterCursorDirty = true
			events.UI.FilterChanged(m.list.Filter)
			return nil
		}
		m.closeVisibleOverlays()
		return nil
	case "enter":
		if item, ok := m.list.Current(); ok {
			events.UI.LauncherEnter(item.Intent, item.Label, m.list.Filter)
			popup.OpenOn(m.bus, item.Intent, item.Payload)
		}
		return nil
	case "up":
		if m.list.MoveCursorUp() {
			events.UI.LauncherCursor(m.list.Cursor)
		}
		return nil
	case "down":
		if m.list.MoveCursorDown() {
			events.UI.LauncherCursor(m.list.Cursor)
		}
		return nil
	case "home":
		if m.list.MoveCursorHome() {
			events.UI.LauncherCursor(m.list.Cursor)
		}
		return nil
	case "end":
		if m.list.MoveCursorEnd() {
			events.UI.LauncherCursor(m.list.Cursor)
		}
		return nil
	case "backspace":
		if m.list.DeleteFilterRuneBackward() {
			m.filterCursorDirty = true
			events.UI.FilterChanged(m.list.Filter)
		}
		return nil
	}

	switch key.Type {
	case tea.KeyRunes:
		if m.list.AppendFilter(string(key.Runes)) {
			m.filterCursorDirty = true
			events.UI.FilterChanged(m.list.Filter)
		}
	case tea.KeySpace:
		if m.list.AppendFilter(" ") {
			m.filterCursorDirty = true
			events.UI.FilterChanged(m.list.Filter)
		}
	}
	return nil
}

// handleConfirmKey routes keys while the quit confirmation popup is open.
func (m *Model) handleConfirmKey(key tea.KeyMsg) tea.Cmd {
	switch key.String() {
	case "y", "Y", "ctrl+c":
		events.App.Stop()
		return tea.Quit
	case "n", "N", "esc":
		popup.CloseOn(m.bus, intentConfirmQuit, nil)
	}
	return nil
}

// overlays returns every currently mounted overlay.
func (m *Model) overlays() []*Overlay {
	mounted := make([]*Overlay, 0, len(m.fixed)+1)
	mounted = append(mounted, m.fixed...)
	if m.inspector != nil {
		mounted = append(mounted, m.inspector)
	}
	return mounted
}

func (m *Model) confirmQuit() *Overlay {
	for _, o := range m.fixed {
		if o.Intent() == intentConfirmQuit {
			return o
		}
	}
	return nil
}

// closeVisibleOverlays broadcasts a close for every visible overlay's intent.
// The overlays react through the bus, same as any out-of-process producer.
func (m *Model) closeVisibleOverlays() {
	for _, o := range m.overlays() {
		if o.Visible() {
			popup.CloseOn(m.bus, o.Intent(), nil)
		}
	}
}

// toggleInspector unmounts the inspector consumer or mounts a fresh one.
// A remounted inspector starts hidden: broadcasts sent while it was away are
// gone, never replayed.
func (m *Model) toggleInspector() {
	if m.inspector != nil {
		m.inspector.Unmount()
		m.inspector = nil
		return
	}
	m.inspector = newOverlay(m.bus, intentInspector, "Inspector", "")
}

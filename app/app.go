// Package app wires the demo TUI: a list of collections as the base view,
// with detail and picker bottom sheets presented over it through the
// sheet lifecycle machinery.
package app

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/sheetstack/internal/config"
	"github.com/jask/sheetstack/internal/store"
	"github.com/jask/sheetstack/sheet"
	"github.com/jask/sheetstack/sheetview"
	"github.com/jask/sheetstack/widgets"
)

const pickerKey = "picker"

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Padding(0, 1)
	cursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Padding(0, 1)
)

// FrameMsg paces animation stepping and the deferred-mount flush.
type FrameMsg time.Time

type sheetEntry struct {
	ctrl    *sheet.Controller
	view    *sheetview.Model
	content Content
}

// Model is the demo application.
type Model struct {
	cfg   config.Config
	store *store.Store
	items []store.Item

	stack  *sheet.Stack
	portal *sheet.Portal
	frames *sheet.FrameQueue
	sheets map[string]*sheetEntry

	cursor    int
	width     int
	height    int
	lastFrame time.Time
	status    string
	statusErr bool
	quitting  bool
}

// NewModel builds the demo model over an opened store.
func NewModel(cfg config.Config, st *store.Store) (*Model, error) {
	items, err := st.List()
	if err != nil {
		return nil, err
	}
	return &Model{
		cfg:    cfg,
		store:  st,
		items:  items,
		stack:  sheet.NewStack(),
		portal: sheet.NewPortal(),
		frames: sheet.NewFrameQueue(),
		sheets: make(map[string]*sheetEntry),
		status: "Ready",
		width:  100,
		height: 32,
	}, nil
}

func (m *Model) frameInterval() time.Duration {
	return time.Second / time.Duration(m.cfg.UI.FPS)
}

func (m *Model) nextFrame() tea.Cmd {
	return tea.Tick(m.frameInterval(), func(t time.Time) tea.Msg { return FrameMsg(t) })
}

// Init starts the frame loop.
func (m *Model) Init() tea.Cmd {
	m.lastFrame = time.Now()
	return m.nextFrame()
}

// Update routes messages. Keys go to the top sheet first, like any modal
// layer; the base list only sees them when no sheet is presented.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case FrameMsg:
		now := time.Time(msg)
		dt := now.Sub(m.lastFrame)
		m.lastFrame = now
		for _, e := range m.sheets {
			e.view.Step(dt)
		}
		m.frames.Flush()
		if m.quitting {
			return m, tea.Quit
		}
		return m, m.nextFrame()
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		m.quitting = true
		m.portal.Reset()
		return m, nil
	case "x":
		// simulate the host reclaiming every subtree
		m.portal.Reset()
		m.setStatus("Host teardown: portal reset")
		return m, nil
	}

	if top := m.topSheet(); top != nil {
		m.handleSheetKey(top, msg)
		return m, nil
	}

	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case "enter":
		if len(m.items) > 0 {
			m.presentDetail(m.items[m.cursor])
		}
	case "p":
		m.presentPicker()
	}
	return m, nil
}

func (m *Model) handleSheetKey(top *sheetEntry, msg tea.KeyMsg) {
	switch msg.String() {
	case "esc", "d":
		top.ctrl.Dismiss()
	case "m":
		top.ctrl.Minimize()
	case "e":
		top.ctrl.Expand()
	case "c":
		top.ctrl.Collapse()
	case "p":
		m.presentPicker()
	default:
		if top.content != nil {
			top.content.HandleKey(msg.String())
		}
	}
}

// topSheet returns the entry for the frontmost non-minimized sheet.
func (m *Model) topSheet() *sheetEntry {
	keys := m.stack.Keys()
	for i := len(keys) - 1; i >= 0; i-- {
		e, ok := m.sheets[keys[i]]
		if ok && !e.ctrl.Minimized() {
			return e
		}
	}
	return nil
}

func (m *Model) newSheetView(title string, content Content) *sheetview.Model {
	view := sheetview.New(title, content, m.cfg.Sheet.SnapPoints)
	if ms := m.cfg.Sheet.DurationMS; ms > 0 {
		view.SetDuration(time.Duration(ms) * time.Millisecond)
	}
	return view
}

func (m *Model) presentDetail(it store.Item) {
	content := NewTextContent(it.Detail)
	view := m.newSheetView(it.Title, content)
	opts := sheet.DefaultOptions()
	opts.Index = 0
	opts.Surface = view
	opts.Content = view
	opts.OnChange = func(index int) {
		m.setStatus(fmt.Sprintf("%s: index %d", it.Title, index))
	}
	var key string
	opts.OnDismiss = func() {
		delete(m.sheets, key)
		m.setStatus(it.Title + " dismissed")
	}
	ctrl := sheet.New(m.stack, m.portal, m.frames, opts)
	key = ctrl.Key()
	view.OnChange(ctrl.HandleChange)
	m.sheets[key] = &sheetEntry{ctrl: ctrl, view: view, content: content}
	if err := ctrl.Present(); err != nil {
		m.setError(err)
		delete(m.sheets, key)
		return
	}
	view.SnapToIndex(opts.Index)
}

func (m *Model) presentPicker() {
	if e, ok := m.sheets[pickerKey]; ok {
		if err := e.ctrl.Present(); err != nil {
			m.setError(err)
		}
		return
	}
	content := NewPickerContent(m.items, func(it store.Item) {
		m.setStatus("Picked " + it.Title)
		if e, ok := m.sheets[pickerKey]; ok {
			e.ctrl.Dismiss()
		}
	})
	view := m.newSheetView("Collections", content)
	opts := sheet.DefaultOptions()
	opts.Name = pickerKey
	opts.StackBehavior = sheet.StackSwitch
	opts.Index = 1
	opts.PanDownToClose = true
	opts.Surface = view
	opts.Content = view
	opts.OnDismiss = func() {
		delete(m.sheets, pickerKey)
		m.setStatus("Picker dismissed")
	}
	ctrl := sheet.New(m.stack, m.portal, m.frames, opts)
	view.OnChange(ctrl.HandleChange)
	m.sheets[pickerKey] = &sheetEntry{ctrl: ctrl, view: view, content: content}
	if err := ctrl.Present(); err != nil {
		m.setError(err)
		delete(m.sheets, pickerKey)
		return
	}
	view.SnapToIndex(opts.Index)
}

func (m *Model) setStatus(text string) {
	m.status = text
	m.statusErr = false
}

func (m *Model) setError(err error) {
	m.status = err.Error()
	m.statusErr = true
}

// View renders the base list, then composites every mounted sheet over it
// in portal order.
func (m *Model) View() string {
	if m.quitting {
		return "Goodbye\n"
	}
	header := headerStyle.Render("sheetstack demo")
	status := statusStyle.Render(m.status)
	if m.statusErr {
		status = errStyle.Render(m.status)
	}
	footer := footerStyle.Render("enter detail · p picker · m min · esc dismiss · x host teardown · q quit")
	bodyHeight := m.height - lipgloss.Height(header) - lipgloss.Height(status) - lipgloss.Height(footer)
	if bodyHeight < 1 {
		bodyHeight = 1
	}

	body := m.renderList(m.width, bodyHeight)
	cardWidth := m.width - 8
	if cardWidth > 48 {
		cardWidth = 48
	}
	if cardWidth < 16 {
		cardWidth = 16
	}
	for _, key := range m.portal.Keys() {
		e, ok := m.sheets[key]
		if !ok {
			continue
		}
		card := e.view.View(cardWidth, bodyHeight)
		body = widgets.RenderSheet(body, card, m.width, bodyHeight, e.view.VisibleRows(bodyHeight))
	}
	return header + "\n" + status + "\n" + body + "\n" + footer
}

func (m *Model) renderList(width, height int) string {
	out := ""
	for i, it := range m.items {
		if i >= height {
			break
		}
		line := "  " + it.Title
		if i == m.cursor {
			line = cursorStyle.Render("> " + it.Title)
		}
		out += line
		if i < len(m.items)-1 {
			out += "\n"
		}
	}
	return out
}

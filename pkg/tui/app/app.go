// Package teaui hosts the Bubble Tea program for the gantt TUI.
package teaui

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/gantt/pkg/app"
	"tableflip.dev/gantt/pkg/collection"
	"tableflip.dev/gantt/pkg/schedule"
	"tableflip.dev/gantt/pkg/store"
	"tableflip.dev/gantt/pkg/timeline"
	"tableflip.dev/gantt/pkg/tui/theme"
)

type mode int

const (
	modeNormal mode = iota
	modeInsert
	modeHistory
)

// highlightDuration matches the fade applied to freshly changed bars.
const highlightDuration = 600 * time.Millisecond

const minCellWidth = 3

var errServiceUnavailable = errors.New("service unavailable")

// Model contains UI state
type Model struct {
	svc    *app.Service
	ctx    context.Context
	cancel context.CancelFunc
	mode   mode

	pivot      schedule.Date
	dateOffset int
	window     timeline.Window

	col  *collection.Collection
	ctrl *timeline.Controller
	rows []*schedule.Schedule

	selected    int
	highlightID string

	input textinput.Model

	termWidth  int
	termHeight int
	cellWidth  int

	watchCh     <-chan store.Event
	watchCancel context.CancelFunc

	status string
	theme  theme.Theme
}

func New(svc *app.Service) *Model {
	ti := textinput.New()
	ti.Placeholder = "2025-12-11 2025-12-16"
	ti.CharLimit = 64
	ti.Prompt = "new: "
	ti.VirtualCursor = true
	ti.Styles.Cursor.Color = lipgloss.Color("212")
	ti.Styles.Cursor.Shape = tea.CursorBlock
	ti.Styles.Cursor.Blink = true

	ctx, cancel := context.WithCancel(context.Background())

	m := &Model{
		svc:       svc,
		ctx:       ctx,
		cancel:    cancel,
		mode:      modeNormal,
		pivot:     schedule.Today(),
		input:     ti,
		col:       collection.New(),
		cellWidth: minCellWidth,
		theme:     theme.Default(),
	}
	m.window = timeline.NewWindow(m.pivot, m.dateOffset)
	m.ctrl = timeline.NewController(m.col)
	m.ctrl.SetGridWidth(m.cellWidth * timeline.Size)
	return m
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.loadSchedules(), startWatchCmd(m.ctx, m.svc))
}

// messages
type errMsg struct{ err error }
type schedulesLoadedMsg struct{ schedules []*schedule.Schedule }
type scheduleSavedMsg struct{ id string }
type highlightExpiredMsg struct{ id string }

type watchStartedMsg struct {
	ch     <-chan store.Event
	cancel context.CancelFunc
	err    error
}

type watchEventMsg struct {
	event store.Event
}

type watchStoppedMsg struct{}

func (m *Model) loadSchedules() tea.Cmd {
	if m.svc == nil {
		return func() tea.Msg { return errMsg{errServiceUnavailable} }
	}
	svc, ctx := m.svc, m.ctx
	win := m.window
	return func() tea.Msg {
		schedules, err := svc.List(ctx, win.First, win.Last.AddDays(1))
		if err != nil {
			return errMsg{err}
		}
		return schedulesLoadedMsg{schedules: schedules}
	}
}

func (m *Model) saveSchedule(s *schedule.Schedule) tea.Cmd {
	if m.svc == nil {
		return func() tea.Msg { return errMsg{errServiceUnavailable} }
	}
	svc, ctx := m.svc, m.ctx
	return func() tea.Msg {
		if err := svc.Save(ctx, s); err != nil {
			return errMsg{err}
		}
		return scheduleSavedMsg{id: s.ID}
	}
}

func (m *Model) createSchedule(start, end schedule.Date) tea.Cmd {
	if m.svc == nil {
		return func() tea.Msg { return errMsg{errServiceUnavailable} }
	}
	svc, ctx := m.svc, m.ctx
	return func() tea.Msg {
		s, err := svc.Create(ctx, start, end)
		if err != nil {
			return errMsg{err}
		}
		return scheduleSavedMsg{id: s.ID}
	}
}

func (m *Model) deleteSchedule(id string) tea.Cmd {
	if m.svc == nil {
		return func() tea.Msg { return errMsg{errServiceUnavailable} }
	}
	svc, ctx := m.svc, m.ctx
	return func() tea.Msg {
		if err := svc.Delete(ctx, id); err != nil {
			return errMsg{err}
		}
		return scheduleSavedMsg{id: ""}
	}
}

func (m *Model) highlight(id string) tea.Cmd {
	m.highlightID = id
	if id == "" {
		return nil
	}
	return tea.Tick(highlightDuration, func(time.Time) tea.Msg {
		return highlightExpiredMsg{id: id}
	})
}

func startWatchCmd(parent context.Context, svc *app.Service) tea.Cmd {
	if svc == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithCancel(parent)
		ch, err := svc.Watch(ctx)
		if err != nil {
			cancel()
			return watchStartedMsg{err: err}
		}
		return watchStartedMsg{ch: ch, cancel: cancel}
	}
}

func (m *Model) waitForWatch() tea.Cmd {
	if m.watchCh == nil {
		return nil
	}
	ch := m.watchCh
	return func() tea.Msg {
		if ev, ok := <-ch; ok {
			return watchEventMsg{event: ev}
		}
		return watchStoppedMsg{}
	}
}

func (m *Model) stopWatch() {
	if m.watchCancel != nil {
		m.watchCancel()
		m.watchCancel = nil
	}
	m.watchCh = nil
}

func (m *Model) setStatus(s string) { m.status = s }

// setWindow re-anchors the visible date range and drops any drag in
// flight, since pointer columns from the old anchor are meaningless.
func (m *Model) setWindow(offset int) tea.Cmd {
	m.dateOffset = offset
	m.window = timeline.NewWindow(m.pivot, m.dateOffset)
	if m.ctrl.Dragging() {
		m.ctrl = timeline.NewController(m.col)
		m.ctrl.SetGridWidth(m.cellWidth * timeline.Size)
	}
	return m.loadSchedules()
}

func (m *Model) applySchedules(schedules []*schedule.Schedule) {
	m.col = collection.New(schedules...)
	m.ctrl = timeline.NewController(m.col)
	m.ctrl.SetGridWidth(m.cellWidth * timeline.Size)
	m.rows = m.col.All()
	if m.selected >= len(m.rows) {
		m.selected = len(m.rows) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

func (m *Model) applySizes() {
	if m.termWidth == 0 {
		return
	}
	w := m.termWidth / timeline.Size
	if w < minCellWidth {
		w = minCellWidth
	}
	m.cellWidth = w
	m.ctrl.SetGridWidth(m.cellWidth * timeline.Size)
}

func (m *Model) selectedSchedule() *schedule.Schedule {
	if m.selected < 0 || m.selected >= len(m.rows) {
		return nil
	}
	return m.rows[m.selected]
}

// Update handles messages and keybindings
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		m.applySizes()
	case errMsg:
		m.setStatus("ERR: " + msg.err.Error())
	case schedulesLoadedMsg:
		m.applySchedules(msg.schedules)
	case scheduleSavedMsg:
		if cmd := m.highlight(msg.id); cmd != nil {
			cmds = append(cmds, cmd)
		}
		cmds = append(cmds, m.loadSchedules())
	case highlightExpiredMsg:
		if m.highlightID == msg.id {
			m.highlightID = ""
		}
	case watchStartedMsg:
		if msg.err != nil {
			m.setStatus("ERR: watch " + msg.err.Error())
			break
		}
		m.stopWatch()
		m.watchCh = msg.ch
		m.watchCancel = msg.cancel
		if cmd := m.waitForWatch(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	case watchEventMsg:
		m.handleWatchEvent(msg.event, &cmds)
		if cmd := m.waitForWatch(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	case watchStoppedMsg:
		m.stopWatch()
		cmds = append(cmds, startWatchCmd(m.ctx, m.svc))
	case tea.KeyPressMsg:
		m.handleKeyPress(msg, &cmds)
	case tea.MouseClickMsg:
		m.handleMouseDown(tea.Mouse(msg), &cmds)
	case tea.MouseMotionMsg:
		m.handleMouseMove(tea.Mouse(msg))
	case tea.MouseReleaseMsg:
		m.handleMouseUp(tea.Mouse(msg), &cmds)
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) handleWatchEvent(ev store.Event, cmds *[]tea.Cmd) {
	// A drag owns the in-memory collection until release. Reloading
	// underneath it would detach the dragged record, so defer to the
	// reload that follows the commit.
	if m.ctrl.Dragging() {
		return
	}
	// Every event kind means the visible range may be stale; a full
	// windowed reload is cheap enough that record-level events get no
	// special handling.
	*cmds = append(*cmds, m.loadSchedules())
}

func (m *Model) handleKeyPress(msg tea.KeyPressMsg, cmds *[]tea.Cmd) {
	switch m.mode {
	case modeInsert:
		m.handleInsertKey(msg, cmds)
		return
	case modeHistory:
		switch msg.String() {
		case "esc", "enter", "q":
			m.mode = modeNormal
		}
		return
	}

	switch msg.String() {
	case "ctrl+c", "q":
		m.stopWatch()
		m.cancel()
		*cmds = append(*cmds, tea.Quit)
	case "left", "h":
		*cmds = append(*cmds, m.setWindow(m.dateOffset-1))
	case "right", "l":
		*cmds = append(*cmds, m.setWindow(m.dateOffset+1))
	case "shift+left", "H":
		*cmds = append(*cmds, m.setWindow(m.dateOffset-timeline.Size))
	case "shift+right", "L":
		*cmds = append(*cmds, m.setWindow(m.dateOffset+timeline.Size))
	case "t":
		*cmds = append(*cmds, m.setWindow(0))
	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
	case "down", "j":
		if m.selected < len(m.rows)-1 {
			m.selected++
		}
	case "n":
		m.mode = modeInsert
		m.input.SetValue("")
		m.input.Focus()
	case "d":
		if s := m.selectedSchedule(); s != nil {
			*cmds = append(*cmds, m.deleteSchedule(s.ID))
		}
	case "enter":
		if m.selectedSchedule() != nil {
			m.mode = modeHistory
		}
	case "r":
		*cmds = append(*cmds, m.loadSchedules())
	}
}

func (m *Model) handleInsertKey(msg tea.KeyPressMsg, cmds *[]tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeNormal
		m.input.Blur()
	case "enter":
		start, end, err := parseDateInput(m.input.Value())
		if err != nil {
			m.setStatus("ERR: " + err.Error())
			return
		}
		m.mode = modeNormal
		m.input.Blur()
		*cmds = append(*cmds, m.createSchedule(start, end))
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		*cmds = append(*cmds, cmd)
	}
}

// parseDateInput accepts "start end" or a single date for a one-day
// schedule.
func parseDateInput(v string) (start, end schedule.Date, err error) {
	fields := strings.Fields(v)
	switch len(fields) {
	case 1:
		start, err = schedule.ParseDate(fields[0])
		return start, start, err
	case 2:
		if start, err = schedule.ParseDate(fields[0]); err != nil {
			return start, end, err
		}
		end, err = schedule.ParseDate(fields[1])
		return start, end, err
	default:
		return start, end, errors.New("expected START [END] dates")
	}
}

// Run launches the interactive TUI program.
func Run(svc *app.Service) error {
	p := tea.NewProgram(New(svc), tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err := p.Run()
	return err
}

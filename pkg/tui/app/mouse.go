package teaui

import (
	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/gantt/pkg/schedule"
	"tableflip.dev/gantt/pkg/timeline"
)

// Rows above the schedule grid: the title line and the day labels.
const gridTop = 2

// columnAt maps a terminal x coordinate to a 1-based grid column.
func (m *Model) columnAt(x int) int {
	col := x/m.cellWidth + 1
	if col < 1 {
		col = 1
	}
	if col > timeline.Size {
		col = timeline.Size
	}
	return col
}

func (m *Model) dateAt(x int) schedule.Date {
	return m.window.First.AddDays(m.columnAt(x) - 1)
}

// hitBar reports which schedule bar sits under the pointer and which
// drag the grab point implies. The first and last cells of a bar are
// resize handles; anything between them moves the whole bar. One-cell
// bars only move.
func (m *Model) hitBar(x, y int) (*schedule.Schedule, timeline.DragType, bool) {
	row := y - gridTop
	if row < 0 || row >= len(m.rows) {
		return nil, timeline.DragMove, false
	}
	s := m.rows[row]
	startCol, endCol := timeline.ColumnSpan(m.window, s.StartDate, s.EndDate)
	col := m.columnAt(x)
	if col < startCol || col >= endCol {
		return nil, timeline.DragMove, false
	}
	if endCol-startCol >= 2 {
		switch col {
		case startCol:
			return s, timeline.DragResizeStart, true
		case endCol - 1:
			return s, timeline.DragResizeEnd, true
		}
	}
	return s, timeline.DragMove, true
}

func (m *Model) handleMouseDown(ev tea.Mouse, cmds *[]tea.Cmd) {
	if ev.Button != tea.MouseLeft || m.mode != modeNormal {
		return
	}
	if s, dragType, ok := m.hitBar(ev.X, ev.Y); ok {
		m.selected = rowIndex(m.rows, s.ID)
		m.ctrl.PointerDown(s.ID, dragType, ev.X)
		return
	}
	// A press on an empty grid cell, including the blank line right
	// below the last bar, plants a one-day schedule on that date.
	row := ev.Y - gridTop
	if row < 0 || row > len(m.rows) || ev.X >= m.cellWidth*timeline.Size {
		return
	}
	date := m.dateAt(ev.X)
	*cmds = append(*cmds, m.createSchedule(date, date))
}

func (m *Model) handleMouseMove(ev tea.Mouse) {
	if !m.ctrl.Dragging() {
		return
	}
	m.ctrl.PointerMove(ev.X)
}

func (m *Model) handleMouseUp(ev tea.Mouse, cmds *[]tea.Cmd) {
	if !m.ctrl.Dragging() {
		return
	}
	m.ctrl.PointerMove(ev.X)
	mutated := m.ctrl.PointerUp()
	if mutated == nil {
		return
	}
	*cmds = append(*cmds, m.saveSchedule(mutated))
}

func rowIndex(rows []*schedule.Schedule, id string) int {
	for i, s := range rows {
		if s.ID == id {
			return i
		}
	}
	return 0
}

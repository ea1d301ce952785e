package teaui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/gantt/pkg/schedule"
	"tableflip.dev/gantt/pkg/timeline"
)

func (m *Model) View() string {
	var sections []string

	sections = append(sections, m.renderTitle())
	sections = append(sections, m.renderHeader())
	for i, s := range m.rows {
		sections = append(sections, m.renderBarRow(i, s))
	}
	sections = append(sections, "")

	if m.mode == modeHistory {
		if pane := m.renderHistoryPane(); pane != "" {
			sections = append(sections, pane)
		}
	}

	if m.mode == modeInsert {
		sections = append(sections, m.input.View())
	} else if m.status != "" {
		style := m.theme.Footer.Status
		if strings.HasPrefix(m.status, "ERR:") {
			style = m.theme.Footer.Error
		}
		sections = append(sections, style.Render(m.status))
	}

	sections = append(sections, m.theme.Footer.Help.Render(m.helpLine()))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *Model) renderTitle() string {
	title := m.theme.Title.Render("gantt")
	span := fmt.Sprintf("%s .. %s", m.window.First, m.window.Last)
	offset := ""
	if m.dateOffset != 0 {
		offset = fmt.Sprintf("  (offset %+d)", m.dateOffset)
	}
	return title + "  " + m.theme.Footer.Status.Render(span+offset)
}

func (m *Model) renderHeader() string {
	var b strings.Builder
	for _, day := range m.window.Days() {
		style := m.theme.DayLabel
		if day.IsWeekend {
			style = m.theme.Weekend
		}
		b.WriteString(style.Render(pad(day.Label, m.cellWidth)))
	}
	return b.String()
}

func (m *Model) renderBarRow(row int, s *schedule.Schedule) string {
	start, end := m.ctrl.Preview(s)
	startCol, endCol := timeline.ColumnSpan(m.window, start, end)
	barStyle := m.barStyle(row, s)

	var b strings.Builder
	for col := 1; col <= timeline.Size; col++ {
		if col >= startCol && col < endCol {
			cell := " "
			if col == startCol {
				cell = start.Label()
			}
			b.WriteString(barStyle.Render(pad(cell, m.cellWidth)))
			continue
		}
		b.WriteString(m.theme.GridDot.Render(pad("·", m.cellWidth)))
	}
	return b.String()
}

func (m *Model) barStyle(row int, s *schedule.Schedule) lipgloss.Style {
	if state := m.ctrl.State(); state != nil && state.ScheduleID == s.ID {
		return m.theme.BarPreview
	}
	if m.highlightID == s.ID {
		return m.theme.BarHighlight
	}
	if row == m.selected {
		return m.theme.BarSelected
	}
	return m.theme.Bar
}

func (m *Model) renderHistoryPane() string {
	s := m.selectedSchedule()
	if s == nil {
		return ""
	}
	width := m.cellWidth * timeline.Size
	if m.termWidth > 0 && m.termWidth < width {
		width = m.termWidth
	}
	inner := width - 4
	if inner < 20 {
		inner = 20
	}

	var lines []string
	header := fmt.Sprintf("%s .. %s", s.StartDate, s.EndDate)
	lines = append(lines, m.theme.Panel.Header.Render(header))
	lines = append(lines, m.theme.Panel.Date.Render(s.ID))
	for _, rec := range s.ModificationRecords {
		line := fmt.Sprintf("%s  %s", rec.ModificationDate, rec.ChangeDescription)
		lines = append(lines, m.theme.Panel.Body.Render(wordwrap.String(line, inner)))
	}
	return m.theme.Panel.Border.Width(inner + 2).Render(strings.Join(lines, "\n"))
}

func (m *Model) helpLine() string {
	switch m.mode {
	case modeInsert:
		return "enter confirm | esc cancel"
	case modeHistory:
		return "esc close"
	default:
		return "h/l pan | j/k select | drag bar or edge | click empty cell new | n new | d delete | enter history | q quit"
	}
}

func pad(s string, width int) string {
	runes := []rune(s)
	if len(runes) >= width {
		return string(runes[:width])
	}
	return s + strings.Repeat(" ", width-len(runes))
}

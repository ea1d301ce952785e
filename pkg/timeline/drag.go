package timeline

import (
	"math"

	"tableflip.dev/gantt/pkg/collection"
	"tableflip.dev/gantt/pkg/schedule"
)

// DragType selects which mutation a pointer drag will commit on release.
type DragType int

const (
	DragMove DragType = iota
	DragResizeStart
	DragResizeEnd
)

func (t DragType) String() string {
	switch t {
	case DragMove:
		return "move"
	case DragResizeStart:
		return "resize-start"
	case DragResizeEnd:
		return "resize-end"
	default:
		return "unknown"
	}
}

// DragState is the transient state of an in-flight drag. It exists from
// pointer-down to pointer-up and is discarded on release.
type DragState struct {
	ScheduleID   string
	Type         DragType
	StartX       int
	ColumnOffset int
	InitialStart schedule.Date
	InitialEnd   schedule.Date
}

// Controller is the drag state machine: Idle until a pointer-down lands on
// a schedule, Dragging until the pointer is released. While dragging it
// quantizes pixel movement into whole grid columns; on release it commits
// the corresponding mutation through the collection, or discards the drag
// when nothing moved. The controller never mutates committed state before
// release; previews are computed on the side.
type Controller struct {
	col       *collection.Collection
	gridWidth int
	state     *DragState
}

func NewController(col *collection.Collection) *Controller {
	return &Controller{col: col}
}

// SetGridWidth records the rendered grid width used to quantize pointer
// movement. A non-positive width disables quantization until the next
// resize.
func (c *Controller) SetGridWidth(w int) {
	c.gridWidth = w
}

// Dragging reports whether a drag is in flight.
func (c *Controller) Dragging() bool { return c.state != nil }

// State returns the in-flight drag state, or nil when idle.
func (c *Controller) State() *DragState { return c.state }

// PointerDown starts a drag on the given schedule. Unknown ids stay in
// Idle; a pointer-down while already dragging is ignored, since no mutation
// has been committed yet.
func (c *Controller) PointerDown(id string, t DragType, x int) {
	if c.state != nil {
		return
	}
	s := c.col.Get(id)
	if s == nil {
		return
	}
	c.state = &DragState{
		ScheduleID:   id,
		Type:         t,
		StartX:       x,
		InitialStart: s.StartDate,
		InitialEnd:   s.EndDate,
	}
}

// PointerMove requantizes the pointer position into a column offset. It
// returns true when the offset changed, so callers can skip redundant
// redraws; movement within a column reports false.
func (c *Controller) PointerMove(x int) bool {
	if c.state == nil || c.gridWidth <= 0 {
		return false
	}
	columnWidth := float64(c.gridWidth) / float64(Size)
	moved := int(math.Round(float64(x-c.state.StartX) / columnWidth))
	if moved == c.state.ColumnOffset {
		return false
	}
	c.state.ColumnOffset = moved
	return true
}

// PointerUp ends the drag and commits the pending mutation. A release with
// a zero column offset is a plain click and commits nothing. Resizes that
// would invert the interval are silently discarded; the bar reverts to its
// committed dates. Returns the mutated schedule, or nil when nothing was
// committed.
//
// A pointer leaving the tracking surface is treated as a release; there is
// no separate cancel gesture.
func (c *Controller) PointerUp() *schedule.Schedule {
	state := c.state
	c.state = nil
	if state == nil || state.ColumnOffset == 0 {
		return nil
	}

	switch state.Type {
	case DragMove:
		return c.col.Move(state.ScheduleID, state.ColumnOffset)

	case DragResizeStart:
		s := c.col.Get(state.ScheduleID)
		if s == nil {
			return nil
		}
		newStart := state.InitialStart.AddDays(state.ColumnOffset)
		if newStart.After(s.EndDate) {
			return nil
		}
		return c.col.UpdateStartDate(state.ScheduleID, newStart)

	case DragResizeEnd:
		s := c.col.Get(state.ScheduleID)
		if s == nil {
			return nil
		}
		newEnd := state.InitialEnd.AddDays(state.ColumnOffset)
		if newEnd.Before(s.StartDate) {
			return nil
		}
		return c.col.UpdateEndDate(state.ScheduleID, newEnd)
	}
	return nil
}

// Preview returns the dates a schedule should render at while a drag is in
// flight. It is a pure function of the committed schedule and the drag
// state: the committed dates are never touched until PointerUp, and a drag
// of another schedule leaves this one unchanged.
func (c *Controller) Preview(s *schedule.Schedule) (start, end schedule.Date) {
	start, end = s.StartDate, s.EndDate
	state := c.state
	if state == nil || state.ScheduleID != s.ID || state.ColumnOffset == 0 {
		return start, end
	}
	switch state.Type {
	case DragMove:
		start = state.InitialStart.AddDays(state.ColumnOffset)
		end = state.InitialEnd.AddDays(state.ColumnOffset)
	case DragResizeStart:
		start = state.InitialStart.AddDays(state.ColumnOffset)
	case DragResizeEnd:
		end = state.InitialEnd.AddDays(state.ColumnOffset)
	}
	return start, end
}

package timeline

import (
	"testing"

	"tableflip.dev/gantt/pkg/collection"
	"tableflip.dev/gantt/pkg/schedule"
)

// gridWidth of 29 columns at 48px each keeps the quantization arithmetic
// easy to follow in these tests.
const gridWidth = Size * 48

func newFixture(t *testing.T) (*collection.Collection, *Controller, *schedule.Schedule) {
	t.Helper()
	col := collection.New()
	s := col.Create(date("2025-01-10"), date("2025-01-15"))
	ctrl := NewController(col)
	ctrl.SetGridWidth(gridWidth)
	return col, ctrl, s
}

func TestPointerDownStartsDrag(t *testing.T) {
	_, ctrl, s := newFixture(t)

	ctrl.PointerDown(s.ID, DragMove, 100)
	if !ctrl.Dragging() {
		t.Fatal("expected Dragging after pointer down")
	}
	state := ctrl.State()
	if state.ScheduleID != s.ID || state.Type != DragMove || state.StartX != 100 {
		t.Fatalf("unexpected drag state: %+v", state)
	}
	if state.ColumnOffset != 0 {
		t.Fatalf("offset must start at 0, got %d", state.ColumnOffset)
	}
	if !state.InitialStart.Equal(s.StartDate) || !state.InitialEnd.Equal(s.EndDate) {
		t.Fatal("drag state must capture the committed dates")
	}
}

func TestPointerDownUnknownIDStaysIdle(t *testing.T) {
	_, ctrl, _ := newFixture(t)
	ctrl.PointerDown("missing", DragMove, 100)
	if ctrl.Dragging() {
		t.Fatal("unknown id must not start a drag")
	}
}

func TestPointerDownWhileDraggingIgnored(t *testing.T) {
	col, ctrl, s := newFixture(t)
	other := col.Create(date("2025-02-01"), date("2025-02-03"))

	ctrl.PointerDown(s.ID, DragMove, 100)
	ctrl.PointerDown(other.ID, DragResizeEnd, 500)

	if got := ctrl.State().ScheduleID; got != s.ID {
		t.Fatalf("second pointer down must be ignored, dragging %s", got)
	}
}

func TestPointerMoveQuantizesToColumns(t *testing.T) {
	_, ctrl, s := newFixture(t)
	ctrl.PointerDown(s.ID, DragMove, 100)

	// Within half a column: rounds to 0, no change reported.
	if ctrl.PointerMove(100 + 23) {
		t.Fatal("sub-column movement should not change the offset")
	}
	// Past half a column: rounds to 1.
	if !ctrl.PointerMove(100 + 25) {
		t.Fatal("crossing the half-column boundary should change the offset")
	}
	if got := ctrl.State().ColumnOffset; got != 1 {
		t.Fatalf("expected offset 1, got %d", got)
	}
	// Same column again: reported as unchanged.
	if ctrl.PointerMove(100 + 47) {
		t.Fatal("movement within the same column should report no change")
	}
	// Negative movement quantizes symmetrically.
	if !ctrl.PointerMove(100 - 3*48) {
		t.Fatal("expected change for leftward movement")
	}
	if got := ctrl.State().ColumnOffset; got != -3 {
		t.Fatalf("expected offset -3, got %d", got)
	}
}

func TestPointerMoveWhileIdleIsNoop(t *testing.T) {
	_, ctrl, _ := newFixture(t)
	if ctrl.PointerMove(500) {
		t.Fatal("pointer move while idle should do nothing")
	}
}

func TestReleaseWithoutMovementIsClick(t *testing.T) {
	_, ctrl, s := newFixture(t)
	ctrl.PointerDown(s.ID, DragMove, 100)

	if got := ctrl.PointerUp(); got != nil {
		t.Fatal("zero-offset release must not mutate")
	}
	if ctrl.Dragging() {
		t.Fatal("controller must return to Idle")
	}
	if len(s.ModificationRecords) != 1 {
		t.Fatalf("no record may be appended, got %d", len(s.ModificationRecords))
	}
}

func TestMoveDragCommits(t *testing.T) {
	_, ctrl, s := newFixture(t)
	ctrl.PointerDown(s.ID, DragMove, 100)
	ctrl.PointerMove(100 + 3*48)

	got := ctrl.PointerUp()
	if got == nil {
		t.Fatal("expected committed schedule")
	}
	if s.StartDate.String() != "2025-01-13" || s.EndDate.String() != "2025-01-18" {
		t.Fatalf("move by 3: got %s..%s", s.StartDate, s.EndDate)
	}
	if desc := s.ModificationRecords[len(s.ModificationRecords)-1].ChangeDescription; desc != "Moved by 3 days" {
		t.Fatalf("unexpected record: %q", desc)
	}
}

func TestResizeStartCommits(t *testing.T) {
	_, ctrl, s := newFixture(t)
	ctrl.PointerDown(s.ID, DragResizeStart, 100)
	ctrl.PointerMove(100 + 2*48)

	if got := ctrl.PointerUp(); got == nil {
		t.Fatal("expected commit")
	}
	if s.StartDate.String() != "2025-01-12" || s.EndDate.String() != "2025-01-15" {
		t.Fatalf("resize-start by 2: got %s..%s", s.StartDate, s.EndDate)
	}
	if desc := s.ModificationRecords[len(s.ModificationRecords)-1].ChangeDescription; desc != schedule.DescUpdated {
		t.Fatalf("unexpected record: %q", desc)
	}
}

// Shrinking the start edge onto the end date is still a valid one-day
// schedule; only inverting past it is rejected.
func TestResizeStartToSameDayAllowed(t *testing.T) {
	_, ctrl, s := newFixture(t)
	ctrl.PointerDown(s.ID, DragResizeStart, 100)
	ctrl.PointerMove(100 + 5*48)

	if got := ctrl.PointerUp(); got == nil {
		t.Fatal("expected commit for same-day resize")
	}
	if s.StartDate.String() != "2025-01-15" || s.EndDate.String() != "2025-01-15" {
		t.Fatalf("got %s..%s", s.StartDate, s.EndDate)
	}
}

func TestResizeStartInversionRejected(t *testing.T) {
	_, ctrl, s := newFixture(t)
	ctrl.PointerDown(s.ID, DragResizeStart, 100)
	// Candidate start 2025-01-20 is past the end date 2025-01-15.
	ctrl.PointerMove(100 + 10*48)

	if got := ctrl.PointerUp(); got != nil {
		t.Fatal("inverting resize must be discarded")
	}
	if s.StartDate.String() != "2025-01-10" || s.EndDate.String() != "2025-01-15" {
		t.Fatalf("schedule must be unchanged, got %s..%s", s.StartDate, s.EndDate)
	}
	if len(s.ModificationRecords) != 1 {
		t.Fatalf("rejected resize must not append a record, got %d", len(s.ModificationRecords))
	}
	if ctrl.Dragging() {
		t.Fatal("controller must return to Idle after a rejected resize")
	}
}

func TestResizeEndCommitsAndRejectsInversion(t *testing.T) {
	_, ctrl, s := newFixture(t)

	ctrl.PointerDown(s.ID, DragResizeEnd, 100)
	ctrl.PointerMove(100 + 4*48)
	if got := ctrl.PointerUp(); got == nil {
		t.Fatal("expected commit")
	}
	if s.EndDate.String() != "2025-01-19" {
		t.Fatalf("resize-end by 4: got %s", s.EndDate)
	}

	ctrl.PointerDown(s.ID, DragResizeEnd, 100)
	// Candidate end 2025-01-09 is before the start date 2025-01-10.
	ctrl.PointerMove(100 - 10*48)
	if got := ctrl.PointerUp(); got != nil {
		t.Fatal("inverting resize-end must be discarded")
	}
	if s.EndDate.String() != "2025-01-19" {
		t.Fatalf("schedule must be unchanged, got %s", s.EndDate)
	}
}

func TestPreviewTracksPointerWithoutMutating(t *testing.T) {
	col, ctrl, s := newFixture(t)
	other := col.Create(date("2025-02-01"), date("2025-02-03"))

	ctrl.PointerDown(s.ID, DragMove, 100)
	ctrl.PointerMove(100 + 2*48)

	start, end := ctrl.Preview(s)
	if start.String() != "2025-01-12" || end.String() != "2025-01-17" {
		t.Fatalf("preview: got %s..%s", start, end)
	}
	// Committed dates are untouched while dragging.
	if s.StartDate.String() != "2025-01-10" || s.EndDate.String() != "2025-01-15" {
		t.Fatalf("committed dates mutated during drag: %s..%s", s.StartDate, s.EndDate)
	}
	// Other schedules preview at their committed dates.
	oStart, oEnd := ctrl.Preview(other)
	if !oStart.Equal(other.StartDate) || !oEnd.Equal(other.EndDate) {
		t.Fatal("preview of undragged schedule must match committed dates")
	}
}

func TestPreviewResizeEdges(t *testing.T) {
	_, ctrl, s := newFixture(t)

	ctrl.PointerDown(s.ID, DragResizeStart, 100)
	ctrl.PointerMove(100 + 2*48)
	start, end := ctrl.Preview(s)
	if start.String() != "2025-01-12" || end.String() != "2025-01-15" {
		t.Fatalf("resize-start preview: got %s..%s", start, end)
	}
	ctrl.PointerUp()

	ctrl.PointerDown(s.ID, DragResizeEnd, 100)
	ctrl.PointerMove(100 - 48)
	start, end = ctrl.Preview(s)
	if !start.Equal(s.StartDate) || end.String() != "2025-01-14" {
		t.Fatalf("resize-end preview: got %s..%s", start, end)
	}
	ctrl.PointerUp()
}

// An invalid resize preview may track the pointer freely; releasing simply
// reverts the bar to the last committed dates.
func TestPreviewRevertsAfterRejectedResize(t *testing.T) {
	_, ctrl, s := newFixture(t)
	ctrl.PointerDown(s.ID, DragResizeStart, 100)
	ctrl.PointerMove(100 + 10*48)

	start, _ := ctrl.Preview(s)
	if start.String() != "2025-01-20" {
		t.Fatalf("preview should track the pointer, got %s", start)
	}

	ctrl.PointerUp()
	start, end := ctrl.Preview(s)
	if start.String() != "2025-01-10" || end.String() != "2025-01-15" {
		t.Fatalf("after rejected release preview must equal committed dates, got %s..%s", start, end)
	}
}

func TestPointerMoveWithoutGridWidth(t *testing.T) {
	col := collection.New()
	s := col.Create(date("2025-01-10"), date("2025-01-15"))
	ctrl := NewController(col)

	ctrl.PointerDown(s.ID, DragMove, 100)
	if ctrl.PointerMove(500) {
		t.Fatal("movement with no grid width must not quantize")
	}
	if got := ctrl.PointerUp(); got != nil {
		t.Fatal("release with zero offset must not mutate")
	}
}

// The move preview is computed from the dates captured at pointer-down,
// so a committed-state change that lands mid-drag does not bend the bar.
func TestPreviewMoveUsesCapturedDates(t *testing.T) {
	_, ctrl, s := newFixture(t)

	ctrl.PointerDown(s.ID, DragMove, 100)
	ctrl.PointerMove(100 + 2*48)

	s.EndDate = date("2025-01-16")

	start, end := ctrl.Preview(s)
	if start.String() != "2025-01-12" || end.String() != "2025-01-17" {
		t.Fatalf("preview must use pointer-down dates, got %s..%s", start, end)
	}
}

package schedule

// InRange reports whether the schedule intersects the half-open query range
// [rangeStart, rangeEnd). A schedule matches when its start falls inside the
// range, its end falls strictly inside the range, or the schedule fully
// spans the range. The start clause admits rangeStart itself while the end
// clause does not; callers depend on that boundary behavior, so keep the
// three clauses as they are rather than collapsing them into a symmetric
// interval-overlap test.
func (s *Schedule) InRange(rangeStart, rangeEnd Date) bool {
	startBetweenRange := !s.StartDate.Before(rangeStart) && s.StartDate.Before(rangeEnd)
	endBetweenRange := s.EndDate.After(rangeStart) && s.EndDate.Before(rangeEnd)
	scheduleEncompassesRange := s.StartDate.Before(rangeStart) && !rangeEnd.After(s.EndDate)

	return startBetweenRange || endBetweenRange || scheduleEncompassesRange
}

// FilterRange selects the schedules intersecting [rangeStart, rangeEnd),
// preserving input order.
func FilterRange(schedules []*Schedule, rangeStart, rangeEnd Date) []*Schedule {
	selected := make([]*Schedule, 0, len(schedules))
	for _, s := range schedules {
		if s.InRange(rangeStart, rangeEnd) {
			selected = append(selected, s)
		}
	}
	return selected
}

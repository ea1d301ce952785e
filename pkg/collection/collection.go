// Package collection holds the in-memory schedule collection: an arena of
// schedules keyed by id plus a sorted index by start date. Mutations keep
// the index sorted and append exactly one history record per committed
// change.
package collection

import (
	"sort"
	"time"

	"tableflip.dev/gantt/pkg/schedule"
)

// Collection owns the current set of schedules. It is not safe for
// concurrent use; the interaction surface is single-writer.
type Collection struct {
	arena map[string]*schedule.Schedule
	index []string // schedule ids, ascending by start date

	// Now is injectable for deterministic history timestamps in tests.
	Now func() time.Time
}

// New builds a collection from the given schedules.
func New(schedules ...*schedule.Schedule) *Collection {
	c := &Collection{
		arena: make(map[string]*schedule.Schedule, len(schedules)),
		index: make([]string, 0, len(schedules)),
		Now:   time.Now,
	}
	for _, s := range schedules {
		if s == nil || s.ID == "" {
			continue
		}
		if _, ok := c.arena[s.ID]; ok {
			continue
		}
		c.arena[s.ID] = s
		c.index = append(c.index, s.ID)
	}
	c.resort()
	return c
}

// resort rebuilds the start-date ordering. The sort is stable so schedules
// sharing a start date keep their relative order across mutations.
func (c *Collection) resort() {
	sort.SliceStable(c.index, func(i, j int) bool {
		return c.arena[c.index[i]].StartDate.Before(c.arena[c.index[j]].StartDate)
	})
}

func (c *Collection) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

// Len returns the number of schedules held.
func (c *Collection) Len() int { return len(c.arena) }

// Get returns the schedule for id, or nil when absent.
func (c *Collection) Get(id string) *schedule.Schedule {
	return c.arena[id]
}

// All returns the schedules in start-date order.
func (c *Collection) All() []*schedule.Schedule {
	out := make([]*schedule.Schedule, 0, len(c.index))
	for _, id := range c.index {
		out = append(out, c.arena[id])
	}
	return out
}

// InRange returns the schedules intersecting the half-open range
// [rangeStart, rangeEnd), in start-date order.
func (c *Collection) InRange(rangeStart, rangeEnd schedule.Date) []*schedule.Schedule {
	return schedule.FilterRange(c.All(), rangeStart, rangeEnd)
}

// Create inserts a new schedule covering start..end and returns it. The
// caller guarantees start <= end. History is seeded with the creation
// record as part of the insert.
func (c *Collection) Create(start, end schedule.Date) *schedule.Schedule {
	s := schedule.New(start, end, c.now())
	c.arena[s.ID] = s
	c.index = append(c.index, s.ID)
	c.resort()
	return s
}

// Remove deletes the schedule for id. Removing an unknown id is a no-op.
func (c *Collection) Remove(id string) {
	if _, ok := c.arena[id]; !ok {
		return
	}
	delete(c.arena, id)
	for i, indexed := range c.index {
		if indexed == id {
			c.index = append(c.index[:i], c.index[i+1:]...)
			break
		}
	}
}

// Move shifts both edges of the schedule by deltaDays and records the
// change. Unknown ids are ignored.
func (c *Collection) Move(id string, deltaDays int) *schedule.Schedule {
	s, ok := c.arena[id]
	if !ok {
		return nil
	}
	s.Shift(deltaDays)
	s.AppendRecord(schedule.DescribeMove(deltaDays), c.now())
	c.resort()
	return s
}

// UpdateStartDate replaces the start date and records the change. Interval
// validity is the caller's responsibility; the drag controller checks the
// candidate against the current end date before committing.
func (c *Collection) UpdateStartDate(id string, date schedule.Date) *schedule.Schedule {
	s, ok := c.arena[id]
	if !ok {
		return nil
	}
	s.StartDate = date
	s.AppendRecord(schedule.DescUpdated, c.now())
	c.resort()
	return s
}

// UpdateEndDate replaces the end date and records the change.
func (c *Collection) UpdateEndDate(id string, date schedule.Date) *schedule.Schedule {
	s, ok := c.arena[id]
	if !ok {
		return nil
	}
	s.EndDate = date
	s.AppendRecord(schedule.DescUpdated, c.now())
	c.resort()
	return s
}

package app

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/gantt/pkg/schedule"
	"tableflip.dev/gantt/pkg/store"
)

// Service provides high-level schedule operations. It wraps persistence so
// the CLI, TUI, and HTTP surfaces share one code path.
type Service struct {
	Persistence store.Persistence
}

var errNoPersistence = errors.New("app: no persistence configured")

// ErrInvalidInterval marks create/update requests whose start date falls
// after the end date.
var ErrInvalidInterval = errors.New("app: start date must not be after end date")

// List returns the stored schedules intersecting the half-open range
// [rangeStart, rangeEnd), sorted by start date.
func (s *Service) List(ctx context.Context, rangeStart, rangeEnd schedule.Date) ([]*schedule.Schedule, error) {
	if s.Persistence == nil {
		return nil, errNoPersistence
	}
	return s.Persistence.List(ctx, rangeStart, rangeEnd)
}

// Get returns one stored schedule by id.
func (s *Service) Get(ctx context.Context, id string) (*schedule.Schedule, error) {
	if s.Persistence == nil {
		return nil, errNoPersistence
	}
	return s.Persistence.Get(id)
}

// Create stores a new schedule covering start..end.
func (s *Service) Create(ctx context.Context, start, end schedule.Date) (*schedule.Schedule, error) {
	if s.Persistence == nil {
		return nil, errNoPersistence
	}
	if start.After(end) {
		return nil, ErrInvalidInterval
	}
	created := schedule.New(start, end, now())
	if err := s.Persistence.Put(created); err != nil {
		return nil, err
	}
	return created, nil
}

// Update replaces the interval of an existing schedule, appending an update
// record to its history.
func (s *Service) Update(ctx context.Context, id string, start, end schedule.Date) (*schedule.Schedule, error) {
	if s.Persistence == nil {
		return nil, errNoPersistence
	}
	if start.After(end) {
		return nil, ErrInvalidInterval
	}
	existing, err := s.Persistence.Get(id)
	if err != nil {
		return nil, err
	}
	existing.StartDate = start
	existing.EndDate = end
	existing.AppendRecord(schedule.DescUpdated, now())
	if err := s.Persistence.Put(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// Save writes through a schedule already mutated in memory, e.g. by a drag
// commit. The schedule carries its own history; no record is appended here.
func (s *Service) Save(ctx context.Context, sched *schedule.Schedule) error {
	if s.Persistence == nil {
		return errNoPersistence
	}
	if sched == nil {
		return errors.New("app: nil schedule")
	}
	return s.Persistence.Put(sched)
}

// Delete removes a schedule permanently. Deleting an unknown id is a no-op.
func (s *Service) Delete(ctx context.Context, id string) error {
	if s.Persistence == nil {
		return errNoPersistence
	}
	if id == "" {
		return fmt.Errorf("app: schedule id required")
	}
	return s.Persistence.Delete(id)
}

// Watch subscribes to persistence change events.
func (s *Service) Watch(ctx context.Context) (<-chan store.Event, error) {
	if s.Persistence == nil {
		return nil, errNoPersistence
	}
	return s.Persistence.Watch(ctx)
}

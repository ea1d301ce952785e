package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/peterbourgon/diskv/v3"
	"golang.org/x/sync/errgroup"

	"tableflip.dev/gantt/pkg/schedule"
)

// ErrNotFound marks reads and updates referencing an unknown schedule id.
var ErrNotFound = errors.New("store: schedule not found")

// readConcurrency bounds the parallel per-record reads a range query fans
// out.
const readConcurrency = 8

// Persistence is the durable per-record schedule store. One JSON document
// per schedule, keyed by id. Writes are single-record and independent;
// there is no cross-record transaction, and readers do not lock records
// against concurrent writers.
type Persistence interface {
	Put(s *schedule.Schedule) error
	Get(id string) (*schedule.Schedule, error)
	Delete(id string) error
	ListIDs(ctx context.Context) ([]string, error)
	List(ctx context.Context, rangeStart, rangeEnd schedule.Date) ([]*schedule.Schedule, error)
	Watch(ctx context.Context) (<-chan Event, error)
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

func (p *persistence) Put(s *schedule.Schedule) error {
	if s.ID == "" {
		return errors.New("store: schedule id required")
	}
	s.EnsureHistorySeed()
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	if err := p.d.Write(s.ID, data); err != nil {
		return fmt.Errorf("store: write %s: %w", s.ID, err)
	}
	return nil
}

func (p *persistence) Get(id string) (*schedule.Schedule, error) {
	val, err := p.d.Read(id)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return nil, fmt.Errorf("store: read %s: %w", id, err)
	}
	s := &schedule.Schedule{}
	if err := json.Unmarshal(val, s); err != nil {
		return nil, fmt.Errorf("store: decode %s: %w", id, err)
	}
	// The filename is authoritative for identity.
	s.ID = id
	s.EnsureHistorySeed()
	return s, nil
}

// Delete removes the record for id. Deleting an absent record is not an
// error.
func (p *persistence) Delete(id string) error {
	if err := p.d.Erase(id); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("store: delete %s: %w", id, err)
	}
	return nil
}

func (p *persistence) ListIDs(ctx context.Context) ([]string, error) {
	ids := make([]string, 0)
	for key := range p.d.Keys(ctx.Done()) {
		ids = append(ids, key)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	sort.Strings(ids)
	return ids, nil
}

// List returns the schedules intersecting the half-open range
// [rangeStart, rangeEnd), sorted by start date. Record reads fan out
// concurrently and the call is all-or-nothing: any failed read fails the
// whole query rather than returning partial results.
func (p *persistence) List(ctx context.Context, rangeStart, rangeEnd schedule.Date) ([]*schedule.Schedule, error) {
	ids, err := p.ListIDs(ctx)
	if err != nil {
		return nil, err
	}

	all := make([]*schedule.Schedule, len(ids))
	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(readConcurrency)
	for i, id := range ids {
		g.Go(func() error {
			s, err := p.Get(id)
			if err != nil {
				return err
			}
			all[i] = s
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	selected := schedule.FilterRange(all, rangeStart, rangeEnd)
	sortSchedules(selected)
	return selected, nil
}

func sortSchedules(schedules []*schedule.Schedule) {
	sort.SliceStable(schedules, func(i, j int) bool {
		left := schedules[i]
		right := schedules[j]
		if left.StartDate.Equal(right.StartDate) {
			return left.ID < right.ID
		}
		return left.StartDate.Before(right.StartDate)
	})
}

const fileExtension = ".json"

func keyToPathTransform(s string) *diskv.PathKey {
	return &diskv.PathKey{
		Path:     []string{},
		FileName: s + fileExtension,
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return strings.TrimSuffix(pathKey.FileName, fileExtension)
}

package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// EventType describes the nature of a persistence change notification.
type EventType int

const (
	// EventRecordChanged indicates a schedule record was written or
	// removed.
	EventRecordChanged EventType = iota

	// EventStoreInvalidated signals callers should refresh their full view
	// because the store itself changed in a way that cannot be attributed
	// to a single record.
	EventStoreInvalidated
)

// Event is emitted by Persistence.Watch when underlying storage changes.
type Event struct {
	Type EventType
	ID   string
}

// Watch streams change events until ctx is cancelled. Callers should drain
// the returned channel to avoid blocking the watcher. The channel is closed
// once ctx is done or the watcher encounters an unrecoverable error.
func (p *persistence) Watch(ctx context.Context) (<-chan Event, error) {
	if p.basePath == "" {
		return nil, errors.New("store: persistence base path unknown")
	}

	if err := os.MkdirAll(p.basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("store: create watcher: %w", err)
	}
	var closeOnce sync.Once
	closeWatcher := func() {
		closeOnce.Do(func() {
			if err := watcher.Close(); err != nil {
				fmt.Fprintf(os.Stderr, "store: watcher close: %v\n", err)
			}
		})
	}

	if err := watcher.Add(p.basePath); err != nil {
		closeWatcher()
		return nil, fmt.Errorf("store: watch %s: %w", p.basePath, err)
	}

	events := make(chan Event, 64)

	go func() {
		defer close(events)
		defer closeWatcher()

		for {
			select {
			case <-ctx.Done():
				return
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				out, relevant := translate(evt)
				if !relevant {
					continue
				}
				select {
				case events <- out:
				case <-ctx.Done():
					return
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				fmt.Fprintf(os.Stderr, "store: watcher error: %v\n", err)
			}
		}
	}()

	return events, nil
}

// translate maps a filesystem event onto a store event. Writes covering
// record files attribute the change to the record id; anything else that
// touches the store directory invalidates the whole view.
func translate(evt fsnotify.Event) (Event, bool) {
	if evt.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
		return Event{}, false
	}
	name := filepath.Base(evt.Name)
	if strings.HasPrefix(name, ".") {
		return Event{}, false
	}
	if !strings.HasSuffix(name, fileExtension) {
		return Event{Type: EventStoreInvalidated}, true
	}
	return Event{
		Type: EventRecordChanged,
		ID:   strings.TrimSuffix(name, fileExtension),
	}, true
}

package commands

import (
	"tableflip.dev/gantt/pkg/app"
	"tableflip.dev/gantt/pkg/store"
)

// loadService builds the shared service on top of the configured store.
func loadService() (*app.Service, error) {
	p, err := store.Load(nil)
	if err != nil {
		return nil, err
	}
	return &app.Service{Persistence: p}, nil
}

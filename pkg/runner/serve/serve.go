package serve

import (
	"context"
	"errors"
	"os"

	"github.com/rs/zerolog"

	"tableflip.dev/gantt/pkg/api"
	"tableflip.dev/gantt/pkg/app"
)

type Serve struct {
	Addr string

	Service *app.Service
}

func (n *Serve) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not serve, no service")
	}
	if n.Addr == "" {
		n.Addr = ":8080"
	}

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	srv := api.NewServer(api.Config{Addr: n.Addr}, n.Service, log)
	return srv.Run(ctx)
}

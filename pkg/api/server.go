// Package api exposes the schedule store over HTTP. The handlers are thin:
// date parsing and status codes here, all semantics in the app service.
package api

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog"

	"tableflip.dev/gantt/pkg/app"
	"tableflip.dev/gantt/pkg/schedule"
	"tableflip.dev/gantt/pkg/store"
)

// Config wraps the knobs that impact runtime behavior.
type Config struct {
	Addr string
}

// Server exposes the Fiber application.
type Server struct {
	app *fiber.App
	svc *app.Service
	cfg Config
	log zerolog.Logger
}

// NewServer wires handlers and middleware.
func NewServer(cfg Config, svc *app.Service, log zerolog.Logger) *Server {
	fapp := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ReadTimeout:           15 * time.Second,
		WriteTimeout:          15 * time.Second,
	})
	fapp.Use(recover.New())

	srv := &Server{app: fapp, svc: svc, cfg: cfg, log: log}
	fapp.Use(srv.requestLogger)
	srv.registerRoutes()
	return srv
}

// Run starts listening for HTTP traffic until the context is cancelled.
func (s *Server) Run(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		_ = s.app.Shutdown()
	}()

	s.log.Info().Str("addr", s.cfg.Addr).Msg("schedule service listening")
	return s.app.Listen(s.cfg.Addr)
}

// App returns the underlying fiber application, used by tests to drive
// requests without a listener.
func (s *Server) App() *fiber.App {
	return s.app
}

func (s *Server) requestLogger(c *fiber.Ctx) error {
	started := time.Now()
	err := c.Next()
	s.log.Info().
		Str("method", c.Method()).
		Str("path", c.Path()).
		Int("status", c.Response().StatusCode()).
		Dur("latency", time.Since(started)).
		Msg("request")
	return err
}

func (s *Server) registerRoutes() {
	s.app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := s.app.Group("/api")
	api.Get("/schedules", s.handleList)
	api.Post("/schedules", s.handleCreate)
	api.Patch("/schedules/:id", s.handleUpdate)
	api.Delete("/schedules/:id", s.handleDelete)
}

// scheduleBody is the create/update request payload.
type scheduleBody struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

func (b scheduleBody) dates() (schedule.Date, schedule.Date, error) {
	if b.StartDate == "" || b.EndDate == "" {
		return schedule.Date{}, schedule.Date{}, errors.New("startDate and endDate are required")
	}
	start, err := schedule.ParseDate(b.StartDate)
	if err != nil {
		return schedule.Date{}, schedule.Date{}, err
	}
	end, err := schedule.ParseDate(b.EndDate)
	if err != nil {
		return schedule.Date{}, schedule.Date{}, err
	}
	return start, end, nil
}

func (s *Server) handleList(c *fiber.Ctx) error {
	rawStart := c.Query("startDate")
	rawEnd := c.Query("endDate")
	if rawStart == "" || rawEnd == "" {
		return fiber.NewError(fiber.StatusBadRequest, "missing startDate or endDate parameter")
	}
	rangeStart, err := schedule.ParseDate(rawStart)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "malformed startDate")
	}
	rangeEnd, err := schedule.ParseDate(rawEnd)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "malformed endDate")
	}

	schedules, err := s.svc.List(c.UserContext(), rangeStart, rangeEnd)
	if err != nil {
		return s.storageError(c, err)
	}
	return c.JSON(fiber.Map{"schedules": schedules})
}

func (s *Server) handleCreate(c *fiber.Ctx) error {
	var body scheduleBody
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	start, end, err := body.dates()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	created, err := s.svc.Create(c.UserContext(), start, end)
	if err != nil {
		if errors.Is(err, app.ErrInvalidInterval) {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		return s.storageError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"schedule": created})
}

func (s *Server) handleUpdate(c *fiber.Ctx) error {
	id := c.Params("id")
	var body scheduleBody
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	start, end, err := body.dates()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	updated, err := s.svc.Update(c.UserContext(), id, start, end)
	if err != nil {
		if errors.Is(err, app.ErrInvalidInterval) {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if errors.Is(err, store.ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "schedule not found")
		}
		return s.storageError(c, err)
	}
	return c.JSON(fiber.Map{"schedule": updated})
}

func (s *Server) handleDelete(c *fiber.Ctx) error {
	if err := s.svc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return s.storageError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (s *Server) storageError(c *fiber.Ctx, err error) error {
	s.log.Error().Err(err).Str("path", c.Path()).Msg("storage failure")
	return fiber.NewError(fiber.StatusInternalServerError, err.Error())
}

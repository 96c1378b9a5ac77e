// Package server exposes the pipeline over HTTP.
package server

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/ramzor-dev/ramzor/internal/buildinfo"
	"github.com/ramzor-dev/ramzor/internal/export"
	"github.com/ramzor-dev/ramzor/internal/model"
	"github.com/ramzor-dev/ramzor/internal/pipeline"
)

// BodyLimit caps a single upload request.
const BodyLimit = 32 << 20

// FormField is the repeated multipart field carrying documents.
const FormField = "files"

// ErrorResponse is the JSON body of a failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Server handles document uploads.
type Server struct {
	app      *fiber.App
	pipeline *pipeline.Pipeline
	declared model.DeclaredBudget
	logger   *log.Logger
}

// New creates a Server. declared is attached to every report.
func New(p *pipeline.Pipeline, declared model.DeclaredBudget, logger *log.Logger) *Server {
	s := &Server{pipeline: p, declared: declared, logger: logger}
	s.app = fiber.New(fiber.Config{
		AppName:               "ramzor",
		BodyLimit:             BodyLimit,
		DisableStartupMessage: true,
		ErrorHandler:          s.handleError,
	})
	s.app.Use(recover.New())
	s.app.Use(s.withLogging)
	s.app.Get("/api/health", s.handleHealth)
	s.app.Post("/api/analyze", s.handleAnalyze)
	return s
}

// App returns the underlying fiber app.
func (s *Server) App() *fiber.App {
	return s.app
}

// Listen serves on addr until Shutdown is called.
func (s *Server) Listen(addr string) error {
	s.logger.Info("starting server", "addr", addr)
	return s.app.Listen(addr)
}

// Shutdown stops accepting requests and waits for in-flight ones.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

func (s *Server) withLogging(c *fiber.Ctx) error {
	start := time.Now()
	err := c.Next()
	s.logger.Info("request",
		"method", c.Method(),
		"path", c.Path(),
		"duration", time.Since(start),
		"error", err,
	)
	return err
}

func (s *Server) handleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"version": buildinfo.Version,
	})
}

func (s *Server) handleAnalyze(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "expected multipart form")
	}
	files := form.File[FormField]
	if len(files) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("no documents uploaded; use form field %q", FormField))
	}

	docs := make([]model.Document, 0, len(files))
	for _, fh := range files {
		f, err := fh.Open()
		if err != nil {
			return fmt.Errorf("opening %s: %w", fh.Filename, err)
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return fmt.Errorf("reading %s: %w", fh.Filename, err)
		}
		docs = append(docs, model.Document{Name: fh.Filename, Data: data})
	}

	report, err := s.pipeline.Run(c.UserContext(), docs)
	if err != nil {
		return fmt.Errorf("running pipeline: %w", err)
	}
	return c.JSON(export.NewDocument(report.WithDeclared(s.declared)))
}

func (s *Server) handleError(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}
	if code >= fiber.StatusInternalServerError {
		s.logger.Error("request failed", "path", c.Path(), "error", err)
	}
	return c.Status(code).JSON(ErrorResponse{Error: err.Error()})
}

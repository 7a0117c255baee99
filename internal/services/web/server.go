package web

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/louisbranch/topbrands/internal/directory"
	"github.com/louisbranch/topbrands/internal/platform/timeouts"
	"github.com/louisbranch/topbrands/internal/services/web/analytics"
	"github.com/louisbranch/topbrands/internal/services/web/static"
)

// Config defines the inputs for the directory web server.
type Config struct {
	HTTPAddr string
	// BaseURL is the public origin used for canonical and alternate links.
	BaseURL string
	// AnalyticsID enables the client usage beacon when set.
	AnalyticsID string
	// LogPageViews also writes each page view to the service log.
	LogPageViews bool
	// Directory overrides the compiled-in directory.
	Directory *directory.Directory
	// Recorder overrides the page view recorder built from the flags above.
	Recorder analytics.Recorder
}

// Server hosts the directory HTTP server.
type Server struct {
	httpAddr   string
	httpServer *http.Server
}

type handler struct {
	config    Config
	directory *directory.Directory
	recorder  analytics.Recorder
}

var subStaticFS = func() (fs.FS, error) {
	return fs.Sub(static.FS, ".")
}

// NewHandler creates the HTTP handler for the directory.
func NewHandler(config Config) (http.Handler, error) {
	staticFS, err := subStaticFS()
	if err != nil {
		return nil, fmt.Errorf("resolve static assets: %w", err)
	}

	d := config.Directory
	if d == nil {
		d = directory.Default()
	}
	h := &handler{
		config:    config,
		directory: d,
		recorder:  recorderFor(config),
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(tracing)

	r.Get("/", h.handleDirectory)
	r.Get("/healthz", h.handleHealth)
	r.Get("/robots.txt", h.handleRobots)
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))
	return r, nil
}

func recorderFor(config Config) analytics.Recorder {
	if config.Recorder != nil {
		return config.Recorder
	}
	recorders := analytics.Multi{analytics.TraceRecorder{}}
	if config.LogPageViews {
		recorders = append(recorders, analytics.LogRecorder{Logger: log.Default()})
	}
	return recorders
}

// NewServer builds a configured directory server.
func NewServer(ctx context.Context, config Config) (*Server, error) {
	if ctx == nil {
		return nil, errors.New("context is required")
	}
	httpAddr := strings.TrimSpace(config.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	if strings.TrimSpace(config.BaseURL) == "" {
		return nil, errors.New("base url is required")
	}

	serverHandler, err := NewHandler(config)
	if err != nil {
		return nil, fmt.Errorf("build handler: %w", err)
	}
	httpServer := &http.Server{
		Addr:              httpAddr,
		Handler:           serverHandler,
		ReadHeaderTimeout: timeouts.ReadHeader,
		WriteTimeout:      timeouts.Write,
		IdleTimeout:       timeouts.Idle,
	}
	return &Server{httpAddr: httpAddr, httpServer: httpServer}, nil
}

// ListenAndServe runs the HTTP server until the context ends.
//
// On cancellation, it performs a bounded shutdown so in-flight requests
// are drained before hard close.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	log.Printf("web listening on %s", s.httpAddr)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}

// Close stops the HTTP server immediately.
func (s *Server) Close() {
	if s == nil || s.httpServer == nil {
		return
	}
	if err := s.httpServer.Close(); err != nil {
		log.Printf("close http server: %v", err)
	}
}

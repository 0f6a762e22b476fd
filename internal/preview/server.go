package preview

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/vango-go/overridable/internal/config"
	"github.com/vango-go/overridable/pkg/devmode"
	"github.com/vango-go/overridable/pkg/overridable"
	"github.com/vango-go/overridable/pkg/render"
	"github.com/vango-go/overridable/pkg/vdom"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "overridable/preview"

// Options configures the preview server.
type Options struct {
	// Config is the loaded configuration. Required.
	Config *config.Config

	// Store holds the overrides applied to the page. Defaults to
	// overridable.DefaultStore.
	Store *overridable.Store

	// Mode is the dev-mode flag. Defaults to devmode.Default().
	Mode *devmode.Mode

	// Logger is the server logger. Defaults to slog.Default().
	Logger *slog.Logger

	// Gatherer serves /metrics when Config.Metrics is set. Defaults to
	// prometheus.DefaultGatherer.
	Gatherer prometheus.Gatherer

	// Body builds the page body. Defaults to DemoPage.
	Body func() *vdom.VNode
}

// Server is the preview HTTP server.
type Server struct {
	config     *config.Config
	store      *overridable.Store
	mode       *devmode.Mode
	hub        *devmode.Hub
	logger     *slog.Logger
	gatherer   prometheus.Gatherer
	body       func() *vdom.VNode
	tracer     trace.Tracer
	httpServer *http.Server
	mu         sync.Mutex
}

// New creates a preview server.
func New(opts Options) *Server {
	if opts.Config == nil {
		opts.Config = config.New()
	}
	if opts.Store == nil {
		opts.Store = overridable.DefaultStore
	}
	if opts.Mode == nil {
		opts.Mode = devmode.Default()
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Gatherer == nil {
		opts.Gatherer = prometheus.DefaultGatherer
	}
	if opts.Body == nil {
		opts.Body = DemoPage
	}
	logger := opts.Logger.With("component", "preview")
	return &Server{
		config:   opts.Config,
		store:    opts.Store,
		mode:     opts.Mode,
		hub:      devmode.NewHub(opts.Mode, logger),
		logger:   logger,
		gatherer: opts.Gatherer,
		body:     opts.Body,
		tracer:   otel.Tracer(tracerName),
	}
}

// Handler returns the HTTP handler serving the preview.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/", s.handlePage)
	r.Get("/overrides", s.handleOverrides)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		io.WriteString(w, "ok")
	})
	r.HandleFunc(devmode.TriggerPath, s.hub.HandleTrigger)
	r.HandleFunc(devmode.WebSocketPath, s.hub.HandleWebSocket)
	if s.config.Metrics {
		r.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	}
	return r
}

// RenderPage writes the full preview page to w. Nothing is written when the
// tree fails to render.
func (s *Server) RenderPage(ctx context.Context, w io.Writer) error {
	ctx, span := s.tracer.Start(ctx, "preview.RenderPage")
	defer span.End()

	ctx = devmode.WithMode(ctx, s.mode)
	active := s.mode.Active()
	span.SetAttributes(
		attribute.Bool("overridable.devmode", active),
		attribute.Int("overridable.overrides", s.store.Len()),
	)

	var buf bytes.Buffer
	renderer := render.NewRenderer(render.RendererConfig{Pretty: s.config.Pretty})
	err := renderer.RenderPage(ctx, &buf, render.PageData{
		Title:   s.config.Title,
		Body:    s.store.Provider(s.body()),
		Styles:  []string{demoStyles},
		Scripts: []render.ScriptTag{{Inline: devmode.ClientScript(active)}},
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	_, err = buf.WriteTo(w)
	return err
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := s.RenderPage(r.Context(), &buf); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, context.Canceled) {
			status = http.StatusServiceUnavailable
		}
		s.logger.Error("render failed", "error", err, "ambiguous_region", errors.Is(err, overridable.ErrMultipleChildren))
		http.Error(w, "render failed: "+err.Error(), status)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	buf.WriteTo(w)
}

// OverrideInfo describes one store entry in the /overrides listing.
type OverrideInfo struct {
	ID           string   `json:"id"`
	List         bool     `json:"list"`
	Replacements []string `json:"replacements"`
}

// Overrides returns the store contents in identifier order.
func (s *Server) Overrides() []OverrideInfo {
	reg := s.store.GetAll()
	out := make([]OverrideInfo, 0, len(reg))
	for _, id := range reg.IDs() {
		entry := reg[id]
		info := OverrideInfo{ID: id, List: entry.IsList(), Replacements: []string{}}
		for _, rep := range entry.Replacements() {
			info.Replacements = append(info.Replacements, vdom.DisplayName(rep))
		}
		out = append(out, info)
	}
	return out
}

func (s *Server) handleOverrides(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(s.Overrides()); err != nil {
		s.logger.Debug("write overrides failed", "error", err)
	}
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}

// Start serves the preview on the configured address until ctx is done.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.httpServer != nil {
		s.mu.Unlock()
		return fmt.Errorf("preview: server already started")
	}
	s.httpServer = &http.Server{
		Addr:              s.config.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	srv := s.httpServer
	s.mu.Unlock()

	s.logger.Info("preview server running", "addr", s.config.Addr, "overrides", s.store.Len(), "devmode", s.mode.Active())

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case <-ctx.Done():
		s.Stop()
		return nil
	case err := <-errCh:
		s.Stop()
		return err
	}
}

// Stop shuts the server down and disconnects dev-mode clients.
func (s *Server) Stop() {
	s.mu.Lock()
	srv := s.httpServer
	s.mu.Unlock()

	s.hub.Close()
	if srv == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		s.logger.Warn("shutdown failed", "error", err)
	}
}

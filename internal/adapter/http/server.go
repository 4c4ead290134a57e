package http

import (
	"context"
	"crypto/tls"
	"log/slog"
	"net/http"
	"time"

	"github.com/couchcryptid/plant-survivability-service/internal/domain"
	"github.com/couchcryptid/plant-survivability-service/internal/pipeline"
	sharedobs "github.com/couchcryptid/storm-data-shared/observability"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MapService is the query surface the API serves.
type MapService interface {
	Plants() []domain.Plant
	Years() (pipeline.YearRange, error)
	Geometries() pipeline.GeometryList
	Defaults() domain.Request
	Legend() pipeline.Legend
	Mapper() *domain.ColorMapper
	Map(ctx context.Context, req domain.Request, geometry string) (pipeline.MapResult, error)
	Export(year int) ([]domain.ExportRow, error)
	Markers(ctx context.Context, plantID string) (domain.MarkerSet, error)
	Check(year int) (pipeline.IntegrityReport, error)
}

// Server exposes the map API alongside health, readiness, and metrics endpoints.
type Server struct {
	httpServer *http.Server
	svc        MapService
	logger     *slog.Logger
}

// NewServer creates an HTTP server with /healthz, /readyz, /metrics and the
// /api routes.
func NewServer(addr string, svc MapService, ready sharedobs.ReadinessChecker, logger *slog.Logger) *Server {
	mux := http.NewServeMux()

	s := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		svc:    svc,
		logger: logger,
	}

	mux.HandleFunc("GET /healthz", sharedobs.LivenessHandler())
	mux.HandleFunc("GET /readyz", sharedobs.ReadinessHandler(ready))
	mux.Handle("GET /metrics", promhttp.Handler())

	mux.HandleFunc("GET /api/plants", s.handlePlants)
	mux.HandleFunc("GET /api/years", s.handleYears)
	mux.HandleFunc("GET /api/geometries", s.handleGeometries)
	mux.HandleFunc("GET /api/defaults", s.handleDefaults)
	mux.HandleFunc("GET /api/map", s.handleMap)
	mux.HandleFunc("GET /api/export", s.handleExport)
	mux.HandleFunc("GET /api/legend", s.handleLegend)
	mux.HandleFunc("GET /api/legend.png", s.handleLegendPNG)
	mux.HandleFunc("GET /api/markers", s.handleMarkers)
	mux.HandleFunc("GET /api/check", s.handleCheck)

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// StartTLS begins listening with cfg, whose GetCertificate supplies the
// certificates. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) StartTLS(cfg *tls.Config) error {
	s.httpServer.TLSConfig = cfg
	s.logger.Info("https server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServeTLS("", "")
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

package http

import (
	"context"
	"embed"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/couchcryptid/polar-risk-service/internal/domain"
	sharedobs "github.com/couchcryptid/storm-data-shared/observability"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

//go:embed templates/index.html
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html"))

// Evaluator produces a fresh risk assessment per request.
type Evaluator interface {
	Evaluate(ctx context.Context) (domain.Assessment, error)
}

// Server exposes the risk page, the JSON API, and health, readiness and metrics endpoints.
type Server struct {
	httpServer *http.Server
	evaluator  Evaluator
	logger     *slog.Logger
}

// NewServer creates an HTTP server with /, /api/v1/risk, /healthz, /readyz and /metrics routes.
func NewServer(addr string, evaluator Evaluator, ready sharedobs.ReadinessChecker, logger *slog.Logger) *Server {
	mux := http.NewServeMux()

	s := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		evaluator: evaluator,
		logger:    logger,
	}

	mux.HandleFunc("GET /{$}", s.handlePage)
	mux.HandleFunc("GET /api/v1/risk", s.handleRisk)
	mux.HandleFunc("GET /healthz", sharedobs.LivenessHandler())
	mux.HandleFunc("GET /readyz", sharedobs.ReadinessHandler(ready))
	mux.Handle("GET /metrics", promhttp.Handler())

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

// pageData is the view model for the risk page.
type pageData struct {
	Date      string
	RiskIndex float64
	Progress  int
	Status    string
	Color     string
	Guidance  string
	Readings  domain.Readings
}

func newPageData(a domain.Assessment) pageData {
	return pageData{
		Date:      a.DateString(),
		RiskIndex: a.RiskIndex,
		Progress:  int(a.RiskIndex),
		Status:    a.Status.String(),
		Color:     a.Status.Color(),
		Guidance:  a.Guidance,
		Readings:  a.Readings,
	}
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	a, err := s.evaluator.Evaluate(r.Context())
	if err != nil {
		s.logger.Error("render risk page", "error", err)
		http.Error(w, "risk index unavailable: configuration error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTemplate.Execute(w, newPageData(a)); err != nil {
		s.logger.Error("execute page template", "error", err)
	}
}

func (s *Server) handleRisk(w http.ResponseWriter, r *http.Request) {
	a, err := s.evaluator.Evaluate(r.Context())
	if err != nil {
		s.logger.Error("evaluate risk", "error", err)
		sharedobs.WriteJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	sharedobs.WriteJSON(w, http.StatusOK, a)
}

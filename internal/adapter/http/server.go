// Package adapthttp implements the HTTP adapter for the application.
package adapthttp

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"fitness/internal/app"
	"fitness/internal/metrics"
)

// Server is the driving HTTP adapter that routes requests to application
// services.
type Server struct {
	weight   *app.WeightService
	calories *app.CalorieService
	tdee     *app.TdeeService
	charts   *app.ChartsService
	log      logrus.FieldLogger
	metrics  *metrics.Collector
	gatherer prometheus.Gatherer
}

// New creates a Server wired to the given application services.
func New(ws *app.WeightService, cs *app.CalorieService, ts *app.TdeeService, chs *app.ChartsService, log logrus.FieldLogger) *Server {
	return &Server{weight: ws, calories: cs, tdee: ts, charts: chs, log: log}
}

// WithMetrics records request metrics on c and serves g on /metrics.
func (s *Server) WithMetrics(c *metrics.Collector, g prometheus.Gatherer) *Server {
	s.metrics = c
	s.gatherer = g
	return s
}

// Handler returns the root http.Handler for the application. The API is
// served at the root and again under /api.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	r.Use(s.loggingMiddleware)

	r.HandleFunc("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("healthy"))
	}).Methods(http.MethodGet)

	for _, prefix := range []string{"", "/api"} {
		s.routes(r, prefix)
	}

	if s.gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{})).Methods(http.MethodGet)
	}

	return withNoCache(r)
}

// routes registers the API on r with every path prefixed by prefix. Routes
// live on the root router so a method mismatch answers 405.
func (s *Server) routes(r *mux.Router, prefix string) {
	r.HandleFunc(prefix+"/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	}).Methods(http.MethodGet)

	r.HandleFunc(prefix+"/tdee", s.handleTdee).Methods(http.MethodGet)
	r.HandleFunc(prefix+"/tdee/breakdown", s.handleTdeeBreakdown).Methods(http.MethodGet)

	r.HandleFunc(prefix+"/calories", s.handleCaloriesList).Methods(http.MethodGet)
	r.HandleFunc(prefix+"/calories", s.handleCaloriesCreate).Methods(http.MethodPost)
	r.HandleFunc(prefix+"/calories/{id:[0-9]+}", s.handleCaloriesDelete).Methods(http.MethodDelete)

	r.HandleFunc(prefix+"/weight", s.handleWeightList).Methods(http.MethodGet)
	r.HandleFunc(prefix+"/weight", s.handleWeightCreate).Methods(http.MethodPost)
	r.HandleFunc(prefix+"/weight/today", s.handleWeightToday).Methods(http.MethodGet)
	r.HandleFunc(prefix+"/weight/{date}", s.handleWeightDelete).Methods(http.MethodDelete)

	r.HandleFunc(prefix+"/charts/daily", s.handleChartsDaily).Methods(http.MethodGet)
}

package api

import (
	"encoding/json"
	"net/http"

	chi "github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"valuemed-backend/internal/common/errors"
	"valuemed-backend/internal/common/logger"
	"valuemed-backend/internal/common/observability"
	"valuemed-backend/internal/pillars"
	"valuemed-backend/internal/quiz"
	"valuemed-backend/internal/relay/contact"
	"valuemed-backend/internal/wizard"
)

// Server wires the content store, wizard engine, quiz, and contact relay
// onto one chi router.
type Server struct {
	router       chi.Router
	logger       logger.Logger
	errorHandler *errors.ErrorHandler

	pillars   *pillars.Store
	searcher  *pillars.Searcher
	sessions  wizard.SessionStore
	estimator *wizard.Estimator
	contact   *contact.Handler
	obs       *observability.Observability
	tracing   *observability.Tracing
}

type Dependencies struct {
	Logger    logger.Logger
	Pillars   *pillars.Store
	Searcher  *pillars.Searcher
	Sessions  wizard.SessionStore
	Estimator *wizard.Estimator
	Contact   *contact.Handler
	Obs       *observability.Observability
	Tracing   *observability.Tracing
}

func NewServer(deps Dependencies) *Server {
	srv := &Server{
		router:       chi.NewRouter(),
		logger:       deps.Logger,
		errorHandler: errors.NewErrorHandler(deps.Logger),
		pillars:      deps.Pillars,
		searcher:     deps.Searcher,
		sessions:     deps.Sessions,
		estimator:    deps.Estimator,
		contact:      deps.Contact,
		obs:          deps.Obs,
		tracing:      deps.Tracing,
	}
	srv.routes()
	return srv
}

func (s *Server) Router() http.Handler {
	return s.router
}

func (s *Server) routes() {
	s.router.Use(s.requestLogging)
	if s.tracing != nil {
		s.router.Use(s.requestTracing)
	}
	if s.obs != nil {
		s.router.Use(s.requestMetrics)
	}

	s.router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	s.router.Get("/ready", s.handleReady)
	s.router.Handle("/metrics", promhttp.Handler())

	s.router.Get("/api/pillars", s.handleListPillars)
	s.router.Get("/api/pillars/search", s.handleSearchPillars)
	s.router.Get("/api/pillars/{slug}", s.handleGetPillar)

	s.router.Post("/api/contact", s.contact.HandleSubmit)

	s.router.Post("/api/wizard", s.handleWizardCreate)
	s.router.Get("/api/wizard/{id}", s.handleWizardGet)
	s.router.Patch("/api/wizard/{id}", s.handleWizardUpdate)
	s.router.Post("/api/wizard/{id}/submit", s.handleWizardSubmit)

	s.router.Get("/api/quiz", s.handleQuizQuestions)
	s.router.Post("/api/quiz/score", s.handleQuizScore)
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	// The pillar store is in-process; session and search backends degrade
	// to fallbacks, so readiness only requires the store to be loaded.
	if s.pillars == nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

func (s *Server) handleQuizQuestions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"questions": quiz.Questions(),
	})
}

func (s *Server) handleQuizScore(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Answers []int `json:"answers"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorHandler.HandleHTTPError(w, r, errors.NewMalformedRequestError(err))
		return
	}
	result, err := quiz.Score(req.Answers)
	if err != nil {
		s.errorHandler.HandleHTTPError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

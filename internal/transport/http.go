package transport

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/triagekit/triage/internal/domain/intent"
	"github.com/triagekit/triage/internal/triage"
)

// Server wires HTTP handlers over the processor.
//
// The store's read-mutate-write cycle is not safe against concurrent
// writers, so the server serializes all processor calls behind one
// mutex; the store itself carries no locking.
type Server struct {
	processor *triage.Processor
	logger    *slog.Logger
	mu        sync.Mutex
}

// ProcessRequest is the request body for /api/process. Action and ID
// are optional hints for callers that already know them.
type ProcessRequest struct {
	Message string `json:"message"`
	Action  string `json:"action,omitempty"`
	ID      string `json:"id,omitempty"`
}

// NewRouter creates the HTTP router with middleware.
func NewRouter(processor *triage.Processor, logger *slog.Logger) *chi.Mux {
	r := chi.NewRouter()
	r.Use(RequestIDMiddleware)
	r.Use(LoggingMiddleware(logger))

	srv := &Server{processor: processor, logger: logger}

	r.Post("/api/process", srv.handleProcess)
	r.Get("/api/tickets", srv.handleTickets)
	r.Get("/api/stats", srv.handleStats)
	r.Get("/health", srv.handleHealth)

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// handleProcess runs the classifier pipeline. The envelope always
// travels with a 200; failures are carried in-band in its status
// field, not via transport-level codes.
func (s *Server) handleProcess(w http.ResponseWriter, r *http.Request) {
	var req ProcessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	hints := intent.Hints{
		Action: intent.Action(strings.ToUpper(req.Action)),
		ID:     req.ID,
	}

	s.mu.Lock()
	resp := s.processor.ProcessWithHints(r.Context(), req.Message, hints)
	s.mu.Unlock()

	writeJSON(w, resp)
}

func (s *Server) handleTickets(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	tickets, err := s.processor.Tickets(r.Context())
	s.mu.Unlock()
	if err != nil {
		s.logger.Error("listing tickets", "error", err)
		http.Error(w, "storage failed", http.StatusInternalServerError)
		return
	}
	writeJSON(w, tickets)
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	stats, err := s.processor.Stats(r.Context())
	s.mu.Unlock()
	if err != nil {
		s.logger.Error("aggregating stats", "error", err)
		http.Error(w, "storage failed", http.StatusInternalServerError)
		return
	}
	writeJSON(w, stats)
}

func writeJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(payload)
}

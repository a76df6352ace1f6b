// Package api - Thin HTTP layer
// The API is only responsible for input ingestion, engine orchestration,
// and output serialization. It never performs pricing logic.
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"logirate/core/catalog"
	"logirate/core/pricing"
	"logirate/core/proposal"
	"logirate/internal/logging"
)

// Server is the API server
type Server struct {
	engine       *pricing.Engine
	source       catalog.Source
	materializer *proposal.Materializer
	directory    proposal.ClientDirectory
	version      string
	mux          *http.ServeMux
}

// NewServer creates an API server. The directory may be nil when no client
// database is wired; contact pre-fill is then unavailable.
func NewServer(version string, source catalog.Source, materializer *proposal.Materializer, directory proposal.ClientDirectory) *Server {
	s := &Server{
		engine:       pricing.NewEngine(source),
		source:       source,
		materializer: materializer,
		directory:    directory,
		version:      version,
		mux:          http.NewServeMux(),
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.mux.HandleFunc("POST /quote", s.handleQuote)
	s.mux.HandleFunc("POST /proposals", s.handleCreateProposal)
	s.mux.HandleFunc("GET /rates", s.handleListRates)
	s.mux.HandleFunc("GET /rates/{key}", s.handleGetRate)
	s.mux.HandleFunc("GET /health", s.handleHealth)
	s.mux.HandleFunc("GET /version", s.handleVersion)
}

// handleQuote handles POST /quote
func (s *Server) handleQuote(w http.ResponseWriter, r *http.Request) {
	var req QuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, "INVALID_JSON", err.Error(), http.StatusBadRequest, "")
		return
	}

	breakdown, err := s.engine.Compute(req)
	if err != nil {
		s.writeCoreError(w, err)
		return
	}

	s.writeJSON(w, QuoteResponse{
		Breakdown: mapBreakdown(breakdown),
		RateKey:   req.RateKey,
	}, http.StatusOK)
}

// handleCreateProposal handles POST /proposals
func (s *Server) handleCreateProposal(w http.ResponseWriter, r *http.Request) {
	var req ProposalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, "INVALID_JSON", err.Error(), http.StatusBadRequest, "")
		return
	}

	// The proposal snapshots a freshly computed breakdown for the request;
	// clients preview with /quote but the persisted quote is computed here.
	breakdown, err := s.engine.Compute(req.Request)
	if err != nil {
		s.writeCoreError(w, err)
		return
	}

	contact := req.Contact
	if contact.Name == "" && req.ClientRef != "" && s.directory != nil {
		if summary, err := s.directory.Lookup(r.Context(), req.ClientRef); err == nil {
			contact.Name = summary.Name
			if contact.Email == "" {
				contact.Email = summary.Email
			}
			if contact.Phone == "" {
				contact.Phone = summary.Phone
			}
		}
	}

	saved, err := s.materializer.Materialize(r.Context(), proposal.Input{
		Request:      req.Request,
		Breakdown:    *breakdown,
		Contact:      contact,
		ClientRef:    req.ClientRef,
		ValidityDays: req.ValidityDays,
		ActorID:      req.ActorID,
	})
	if err != nil {
		s.writeCoreError(w, err)
		return
	}

	logging.Info("proposal created",
		zap.String("proposal_id", saved.ID),
		zap.String("client_ref", saved.ClientRef))
	s.writeJSON(w, mapProposal(saved), http.StatusCreated)
}

// handleListRates handles GET /rates
func (s *Server) handleListRates(w http.ResponseWriter, r *http.Request) {
	var entries []*catalog.Entry
	if category := r.URL.Query().Get("category"); category != "" {
		entries = s.source.ListByCategory(catalog.Category(category))
	} else {
		entries = s.source.Entries()
	}

	rates := make([]RateResponse, 0, len(entries))
	for _, e := range entries {
		rates = append(rates, mapRate(e))
	}
	s.writeJSON(w, map[string]interface{}{
		"rates": rates,
		"count": len(rates),
	}, http.StatusOK)
}

// handleGetRate handles GET /rates/{key}
func (s *Server) handleGetRate(w http.ResponseWriter, r *http.Request) {
	entry, err := s.source.Lookup(r.PathValue("key"))
	if err != nil {
		s.writeCoreError(w, err)
		return
	}
	s.writeJSON(w, mapRate(entry), http.StatusOK)
}

// handleHealth handles GET /health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]interface{}{
		"status":  "healthy",
		"version": s.version,
		"time":    time.Now().UTC().Format(time.RFC3339),
	}, http.StatusOK)
}

// handleVersion handles GET /version
func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]string{
		"version": s.version,
		"engine":  "logirate",
	}, http.StatusOK)
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

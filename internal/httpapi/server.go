// ABOUTME: HTTP boundary for the recommendation service using chi
// ABOUTME: Maps pipeline failures to status codes; zero matches is a success
package httpapi

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/rasheed1306/movienight/internal/models"
)

// Recommender is the core surface the HTTP layer exposes.
type Recommender interface {
	Recommend(ctx context.Context, prefs models.PreferenceRecord, templateName string) ([]models.RankedResult, error)
	TemplateNames() []string
	DefaultTemplateName() string
}

// Server serves the recommendation API.
type Server struct {
	recommender Recommender
}

// NewServer creates an HTTP server over the given recommender.
func NewServer(recommender Recommender) *Server {
	return &Server{recommender: recommender}
}

// Router builds the route tree.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Post("/recommend", s.handleRecommend)
	r.Get("/templates", s.handleTemplates)
	r.Get("/health", s.handleHealth)
	return r
}

type recommendRequest struct {
	Preferences models.PreferenceRecord `json:"preferences"`
	Template    string                  `json:"template"`
}

type recommendResponse struct {
	Recommendations []models.RankedResult `json:"recommendations"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleRecommend(w http.ResponseWriter, r *http.Request) {
	var req recommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body: " + err.Error()})
		return
	}
	if err := req.Preferences.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	results, err := s.recommender.Recommend(r.Context(), req.Preferences, req.Template)
	if err != nil {
		// Aggregation and retrieval failures abort the request; the
		// underlying message travels to the client
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}

	if results == nil {
		results = []models.RankedResult{}
	}
	writeJSON(w, http.StatusOK, recommendResponse{Recommendations: results})
}

type templatesResponse struct {
	Templates []string `json:"templates"`
	Default   string   `json:"default"`
}

func (s *Server) handleTemplates(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, templatesResponse{
		Templates: s.recommender.TemplateNames(),
		Default:   s.recommender.DefaultTemplateName(),
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Warning: writing response: %v", err)
	}
}

// Package api serves stored pass results over HTTP.
package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/guestlink/guestlink/internal/model"
	"github.com/guestlink/guestlink/internal/store"
)

// Handlers holds dependencies for the HTTP endpoints.
type Handlers struct {
	Store store.Store
}

// NewRouter builds the API router.
func NewRouter(h *Handlers) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/healthz", h.Health)

	r.Route("/api/passes", func(r chi.Router) {
		r.Get("/", h.ListPasses)
		r.Get("/latest", h.LatestPass)
		r.Get("/{id}", h.GetPass)
		r.Get("/{id}/profiles", h.PassProfiles)
		r.Get("/{id}/journeys", h.PassJourneys)
		r.Get("/{id}/quality", h.PassQuality)
	})

	return r
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handlers) ListPasses(w http.ResponseWriter, r *http.Request) {
	passes, err := h.Store.ListPasses(r.Context(), 100)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, passes)
}

func (h *Handlers) LatestPass(w http.ResponseWriter, r *http.Request) {
	pass, err := h.Store.LatestPass(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	if pass == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "no passes stored"})
		return
	}
	writeJSON(w, http.StatusOK, pass)
}

func (h *Handlers) GetPass(w http.ResponseWriter, r *http.Request) {
	pass, ok := h.pass(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, pass)
}

func (h *Handlers) PassProfiles(w http.ResponseWriter, r *http.Request) {
	pass, ok := h.pass(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, pass.Profiles)
}

func (h *Handlers) PassJourneys(w http.ResponseWriter, r *http.Request) {
	pass, ok := h.pass(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, pass.Journeys)
}

func (h *Handlers) PassQuality(w http.ResponseWriter, r *http.Request) {
	pass, ok := h.pass(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, pass.Quality)
}

func (h *Handlers) pass(w http.ResponseWriter, r *http.Request) (*model.PassResult, bool) {
	id := chi.URLParam(r, "id")
	p, err := h.Store.GetPass(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return nil, false
	}
	if p == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "pass not found"})
		return nil, false
	}
	return p, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.L().Error("api: encode response", zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	zap.L().Error("api: request failed", zap.Error(err))
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

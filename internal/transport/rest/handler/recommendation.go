package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"mentara/internal/engine"
	"mentara/internal/model"
	"mentara/internal/service"
	"mentara/internal/transport/rest/middleware"
)

// RecommendationHandler handles therapist ranking endpoints
type RecommendationHandler struct {
	matchingSvc *service.MatchingService
}

// NewRecommendationHandler creates a new recommendation handler
func NewRecommendationHandler(matchingSvc *service.MatchingService) *RecommendationHandler {
	return &RecommendationHandler{matchingSvc: matchingSvc}
}

// Create handles POST /v1/recommendations
func (h *RecommendationHandler) Create(w http.ResponseWriter, r *http.Request) {
	clientID := middleware.GetClientID(r.Context())

	var req model.RecommendationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	results, err := h.matchingSvc.Recommend(r.Context(), clientID, &req)
	if err != nil {
		var invalid *engine.InvalidInputError
		switch {
		case errors.As(err, &invalid):
			writeError(w, http.StatusBadRequest, invalid.Error())
		case errors.Is(err, service.ErrNoAssessment):
			writeError(w, http.StatusConflict, "submit an assessment before requesting recommendations")
		case errors.Is(err, service.ErrNoTherapists):
			writeError(w, http.StatusNotFound, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, "failed to rank therapists")
		}
		return
	}

	writeJSON(w, http.StatusOK, results)
}

// GetCached handles GET /v1/recommendations
func (h *RecommendationHandler) GetCached(w http.ResponseWriter, r *http.Request) {
	clientID := middleware.GetClientID(r.Context())

	results, err := h.matchingSvc.Cached(r.Context(), clientID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load recommendations")
		return
	}
	if results == nil {
		writeError(w, http.StatusNotFound, "no recommendations computed yet")
		return
	}

	writeJSON(w, http.StatusOK, results)
}

// GetTop handles GET /v1/recommendations/top
func (h *RecommendationHandler) GetTop(w http.ResponseWriter, r *http.Request) {
	clientID := middleware.GetClientID(r.Context())

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}

	entries, err := h.matchingSvc.TopCached(r.Context(), clientID, limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load ranking")
		return
	}
	if len(entries) == 0 {
		writeError(w, http.StatusNotFound, "no recommendations computed yet")
		return
	}

	writeJSON(w, http.StatusOK, entries)
}

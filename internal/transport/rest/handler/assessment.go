package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"mentara/internal/engine"
	"mentara/internal/service"
	"mentara/internal/transport/rest/middleware"
)

// AssessmentHandler handles assessment scoring endpoints
type AssessmentHandler struct {
	assessmentSvc *service.AssessmentService
}

// NewAssessmentHandler creates a new assessment handler
func NewAssessmentHandler(assessmentSvc *service.AssessmentService) *AssessmentHandler {
	return &AssessmentHandler{assessmentSvc: assessmentSvc}
}

type submitAssessmentRequest struct {
	Answers []int `json:"answers"`
}

// Submit handles POST /v1/assessments
func (h *AssessmentHandler) Submit(w http.ResponseWriter, r *http.Request) {
	clientID := middleware.GetClientID(r.Context())

	var req submitAssessmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	assessment, err := h.assessmentSvc.Submit(r.Context(), clientID, req.Answers)
	if err != nil {
		var invalid *engine.InvalidInputError
		if errors.As(err, &invalid) {
			writeError(w, http.StatusBadRequest, invalid.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to score assessment")
		return
	}

	writeJSON(w, http.StatusCreated, assessment)
}

// GetLatest handles GET /v1/assessments/latest
func (h *AssessmentHandler) GetLatest(w http.ResponseWriter, r *http.Request) {
	clientID := middleware.GetClientID(r.Context())

	assessment, err := h.assessmentSvc.Latest(r.Context(), clientID)
	if err != nil {
		if errors.Is(err, service.ErrNoAssessment) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to load assessment")
		return
	}

	writeJSON(w, http.StatusOK, assessment)
}

// GetRiskProfile handles GET /v1/assessments/latest/risk-profile
func (h *AssessmentHandler) GetRiskProfile(w http.ResponseWriter, r *http.Request) {
	clientID := middleware.GetClientID(r.Context())

	profile, err := h.assessmentSvc.RiskProfile(r.Context(), clientID)
	if err != nil {
		if errors.Is(err, service.ErrNoAssessment) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to load risk profile")
		return
	}

	writeJSON(w, http.StatusOK, profile)
}

// History handles GET /v1/assessments
func (h *AssessmentHandler) History(w http.ResponseWriter, r *http.Request) {
	clientID := middleware.GetClientID(r.Context())

	assessments, err := h.assessmentSvc.History(r.Context(), clientID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load assessments")
		return
	}

	writeJSON(w, http.StatusOK, assessments)
}

package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/mongo"

	"mentara/internal/model"
	"mentara/internal/repository"
	"mentara/internal/service"
)

// TherapistHandler handles roster management endpoints
type TherapistHandler struct {
	therapistSvc *service.TherapistService
}

// NewTherapistHandler creates a new therapist handler
func NewTherapistHandler(therapistSvc *service.TherapistService) *TherapistHandler {
	return &TherapistHandler{therapistSvc: therapistSvc}
}

// Create handles POST /v1/therapists
func (h *TherapistHandler) Create(w http.ResponseWriter, r *http.Request) {
	var therapist model.TherapistProfile
	if err := json.NewDecoder(r.Body).Decode(&therapist); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.therapistSvc.Create(r.Context(), &therapist); err != nil {
		if errors.Is(err, service.ErrInvalidTherapist) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to create therapist")
		return
	}

	writeJSON(w, http.StatusCreated, therapist)
}

// Get handles GET /v1/therapists/{id}
func (h *TherapistHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	therapist, err := h.therapistSvc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			writeError(w, http.StatusNotFound, "therapist not found")
			return
		}
		writeError(w, http.StatusBadRequest, "invalid therapist id")
		return
	}

	writeJSON(w, http.StatusOK, therapist)
}

// List handles GET /v1/therapists
func (h *TherapistHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := repository.TherapistFilter{
		Specialty: q.Get("specialty"),
		Language:  q.Get("language"),
		Modality:  q.Get("modality"),
		PriceBand: q.Get("priceBand"),
	}

	therapists, err := h.therapistSvc.List(r.Context(), filter)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list therapists")
		return
	}

	writeJSON(w, http.StatusOK, therapists)
}

// Update handles PUT /v1/therapists/{id}
func (h *TherapistHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var therapist model.TherapistProfile
	if err := json.NewDecoder(r.Body).Decode(&therapist); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	therapist.ID = id

	if err := h.therapistSvc.Update(r.Context(), &therapist); err != nil {
		if errors.Is(err, service.ErrInvalidTherapist) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to update therapist")
		return
	}

	writeJSON(w, http.StatusOK, therapist)
}

// Delete handles DELETE /v1/therapists/{id}
func (h *TherapistHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.therapistSvc.Delete(r.Context(), id); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to delete therapist")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

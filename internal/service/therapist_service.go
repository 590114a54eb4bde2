package service

import (
	"context"
	"errors"

	"mentara/internal/model"
	"mentara/internal/repository"
)

var ErrInvalidTherapist = errors.New("therapist profile failed validation")

// TherapistService manages the roster consumed by the matching pipeline
type TherapistService struct {
	therapists repository.TherapistRepository
}

// NewTherapistService creates a new therapist service
func NewTherapistService(therapists repository.TherapistRepository) *TherapistService {
	return &TherapistService{therapists: therapists}
}

// Create validates and stores a new roster entry
func (s *TherapistService) Create(ctx context.Context, therapist *model.TherapistProfile) error {
	if err := validateTherapist(therapist); err != nil {
		return err
	}
	return s.therapists.Create(ctx, therapist)
}

// Get returns one therapist by id
func (s *TherapistService) Get(ctx context.Context, id string) (*model.TherapistProfile, error) {
	return s.therapists.GetByID(ctx, id)
}

// List returns the roster, optionally filtered
func (s *TherapistService) List(ctx context.Context, filter repository.TherapistFilter) ([]*model.TherapistProfile, error) {
	return s.therapists.List(ctx, filter)
}

// Update validates and replaces a roster entry
func (s *TherapistService) Update(ctx context.Context, therapist *model.TherapistProfile) error {
	if err := validateTherapist(therapist); err != nil {
		return err
	}
	return s.therapists.Update(ctx, therapist)
}

// Delete removes a roster entry
func (s *TherapistService) Delete(ctx context.Context, id string) error {
	return s.therapists.Delete(ctx, id)
}

func validateTherapist(t *model.TherapistProfile) error {
	if t.Name == "" {
		return ErrInvalidTherapist
	}
	if t.YearsOfExperience < 0 {
		return ErrInvalidTherapist
	}
	if t.AverageRating < 0 || t.AverageRating > 5 {
		return ErrInvalidTherapist
	}
	if t.ReviewCount < 0 {
		return ErrInvalidTherapist
	}
	switch t.PriceBand {
	case "", model.PriceBandLow, model.PriceBandStandard, model.PriceBandPremium:
	default:
		return ErrInvalidTherapist
	}
	return nil
}

package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"go.mongodb.org/mongo-driver/mongo"

	"mentara/internal/cache"
	"mentara/internal/engine"
	"mentara/internal/model"
	"mentara/internal/repository"
)

var ErrNoAssessment = errors.New("client has no assessment on record")

// AssessmentService scores submissions and serves risk profiles
type AssessmentService struct {
	registry    *engine.Registry
	assessments repository.AssessmentRepository
	riskCache   cache.RiskCache
	broadcaster Broadcaster
}

// NewAssessmentService creates a new assessment service
func NewAssessmentService(registry *engine.Registry, assessments repository.AssessmentRepository, riskCache cache.RiskCache) *AssessmentService {
	return &AssessmentService{
		registry:    registry,
		assessments: assessments,
		riskCache:   riskCache,
	}
}

// SetBroadcaster sets the broadcaster for WebSocket events
func (s *AssessmentService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// Submit scores a full answer vector and persists the result. The vector is
// immutable after this point; subscales and risk profile are derived from it
// in full, never patched.
func (s *AssessmentService) Submit(ctx context.Context, clientID string, answers []int) (*model.Assessment, error) {
	subscales, err := s.registry.Score(answers)
	if err != nil {
		return nil, err
	}

	riskProfile, err := s.registry.EstimateRisk(answers, subscales)
	if err != nil {
		return nil, err
	}

	assessment := &model.Assessment{
		ClientID:    clientID,
		Answers:     answers,
		Subscales:   subscales,
		RiskProfile: riskProfile,
	}
	if err := s.assessments.Create(ctx, assessment); err != nil {
		return nil, fmt.Errorf("store assessment: %w", err)
	}

	if err := s.riskCache.Set(ctx, clientID, riskProfile); err != nil {
		log.Printf("Failed to cache risk profile for %s: %v", clientID, err)
	}

	if s.broadcaster != nil {
		s.broadcaster.BroadcastToClient(clientID, "risk_profile_ready", map[string]interface{}{
			"assessmentId":    assessment.ID,
			"overallSeverity": riskProfile.OverallSeverity,
			"confidence":      riskProfile.Confidence,
		})
	}

	return assessment, nil
}

// Latest returns the client's most recent assessment
func (s *AssessmentService) Latest(ctx context.Context, clientID string) (*model.Assessment, error) {
	assessment, err := s.assessments.GetLatestByClientID(ctx, clientID)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNoAssessment
	}
	if err != nil {
		return nil, err
	}
	return assessment, nil
}

// RiskProfile returns the latest risk profile, cache-first
func (s *AssessmentService) RiskProfile(ctx context.Context, clientID string) (*model.RiskProfile, error) {
	cached, err := s.riskCache.Get(ctx, clientID)
	if err != nil {
		log.Printf("Risk cache read failed for %s: %v", clientID, err)
	}
	if cached != nil {
		return cached, nil
	}

	assessment, err := s.Latest(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if assessment.RiskProfile == nil {
		return nil, ErrNoAssessment
	}

	if err := s.riskCache.Set(ctx, clientID, assessment.RiskProfile); err != nil {
		log.Printf("Failed to cache risk profile for %s: %v", clientID, err)
	}
	return assessment.RiskProfile, nil
}

// History returns all of a client's assessments, newest first
func (s *AssessmentService) History(ctx context.Context, clientID string) ([]*model.Assessment, error) {
	return s.assessments.GetByClientID(ctx, clientID)
}

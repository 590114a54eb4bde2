package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"mentara/internal/cache"
	"mentara/internal/engine"
	"mentara/internal/model"
	"mentara/internal/repository"
)

var ErrNoTherapists = errors.New("no therapists available")

const (
	defaultRecommendationLimit = 10
	maxRecommendationLimit     = 100
)

// MatchingService runs the ranking pipeline over the therapist roster
type MatchingService struct {
	registry    *engine.Registry
	assessments *AssessmentService
	therapists  repository.TherapistRepository
	recCache    cache.RecommendationCache
	broadcaster Broadcaster
}

// NewMatchingService creates a new matching service
func NewMatchingService(registry *engine.Registry, assessments *AssessmentService, therapists repository.TherapistRepository, recCache cache.RecommendationCache) *MatchingService {
	return &MatchingService{
		registry:    registry,
		assessments: assessments,
		therapists:  therapists,
		recCache:    recCache,
	}
}

// SetBroadcaster sets the broadcaster for WebSocket events
func (s *MatchingService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// Recommend ranks the roster for a client. The client's latest scored
// assessment drives the structured half; transcript data, when supplied,
// blends in the conversation half. Results are cached per client.
func (s *MatchingService) Recommend(ctx context.Context, clientID string, req *model.RecommendationRequest) ([]model.MatchResult, error) {
	assessment, err := s.assessments.Latest(ctx, clientID)
	if err != nil {
		return nil, err
	}

	profile := engine.BuildClientProfile(assessment.RiskProfile, assessment.Subscales, req.Preferences)

	candidates, err := s.therapists.List(ctx, repository.TherapistFilter{
		Language:  req.Preferences.Language,
		Modality:  req.Preferences.Modality,
		PriceBand: req.Preferences.PriceBand,
	})
	if err != nil {
		return nil, fmt.Errorf("list therapists: %w", err)
	}
	// An over-constrained filter is not an empty roster: retry unfiltered
	// and let the logistics score express the mismatch.
	if len(candidates) == 0 {
		candidates, err = s.therapists.List(ctx, repository.TherapistFilter{})
		if err != nil {
			return nil, fmt.Errorf("list therapists: %w", err)
		}
	}
	if len(candidates) == 0 {
		return nil, ErrNoTherapists
	}

	roster := make([]model.TherapistProfile, len(candidates))
	for i, t := range candidates {
		roster[i] = *t
	}

	var signals *model.ConversationSignals
	if len(req.Transcript) > 0 {
		sig := engine.ExtractSignals(req.Transcript)
		signals = &sig
	}

	results, err := engine.Rank(profile, roster, signals, engine.DefaultWeights)
	if err != nil {
		return nil, err
	}

	limit := req.Limit
	if limit <= 0 {
		limit = defaultRecommendationLimit
	}
	if limit > maxRecommendationLimit {
		limit = maxRecommendationLimit
	}
	if len(results) > limit {
		results = results[:limit]
	}

	if err := s.recCache.Set(ctx, clientID, results); err != nil {
		log.Printf("Failed to cache recommendations for %s: %v", clientID, err)
	}

	if s.broadcaster != nil {
		s.broadcaster.BroadcastToClient(clientID, "recommendations_ready", map[string]interface{}{
			"count": len(results),
		})
	}

	return results, nil
}

// Cached returns the last ranked result set for a client, if any
func (s *MatchingService) Cached(ctx context.Context, clientID string) ([]model.MatchResult, error) {
	return s.recCache.Get(ctx, clientID)
}

// TopCached returns the score-ordered id index for a client, if any
func (s *MatchingService) TopCached(ctx context.Context, clientID string, limit int) ([]cache.RankedID, error) {
	if limit <= 0 {
		limit = defaultRecommendationLimit
	}
	return s.recCache.TopIDs(ctx, clientID, limit)
}

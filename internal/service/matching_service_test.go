package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"go.mongodb.org/mongo-driver/mongo"

	"mentara/internal/cache"
	"mentara/internal/engine"
	"mentara/internal/model"
	"mentara/internal/repository"
)

type fakeTherapistRepo struct {
	roster []*model.TherapistProfile
}

func (r *fakeTherapistRepo) Create(_ context.Context, t *model.TherapistProfile) error {
	t.ID = fmt.Sprintf("t%d", len(r.roster)+1)
	r.roster = append(r.roster, t)
	return nil
}

func (r *fakeTherapistRepo) GetByID(_ context.Context, id string) (*model.TherapistProfile, error) {
	for _, t := range r.roster {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (r *fakeTherapistRepo) List(_ context.Context, filter repository.TherapistFilter) ([]*model.TherapistProfile, error) {
	var out []*model.TherapistProfile
	for _, t := range r.roster {
		if filter.Language != "" && !containsIgnoreCase(t.Languages, filter.Language) {
			continue
		}
		if filter.Modality != "" && !containsIgnoreCase(t.Modalities, filter.Modality) {
			continue
		}
		if filter.PriceBand != "" && t.PriceBand != filter.PriceBand {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func (r *fakeTherapistRepo) Update(_ context.Context, t *model.TherapistProfile) error { return nil }
func (r *fakeTherapistRepo) Delete(_ context.Context, id string) error                { return nil }

func containsIgnoreCase(vals []string, want string) bool {
	for _, v := range vals {
		if strings.EqualFold(v, want) {
			return true
		}
	}
	return false
}

type fakeRecCache struct {
	store map[string][]model.MatchResult
}

func newFakeRecCache() *fakeRecCache {
	return &fakeRecCache{store: make(map[string][]model.MatchResult)}
}

func (c *fakeRecCache) Set(_ context.Context, clientID string, results []model.MatchResult) error {
	c.store[clientID] = results
	return nil
}

func (c *fakeRecCache) Get(_ context.Context, clientID string) ([]model.MatchResult, error) {
	return c.store[clientID], nil
}

func (c *fakeRecCache) TopIDs(_ context.Context, clientID string, limit int) ([]cache.RankedID, error) {
	results := c.store[clientID]
	if len(results) > limit {
		results = results[:limit]
	}
	out := make([]cache.RankedID, len(results))
	for i, r := range results {
		out[i] = cache.RankedID{TherapistID: r.TherapistID, FinalScore: r.FinalScore, Rank: i + 1}
	}
	return out, nil
}

func (c *fakeRecCache) Delete(_ context.Context, clientID string) error {
	delete(c.store, clientID)
	return nil
}

func seedRoster() *fakeTherapistRepo {
	return &fakeTherapistRepo{roster: []*model.TherapistProfile{
		{ID: "t1", Name: "A", Specialties: []string{"depression"}, Approaches: []string{"CBT"},
			YearsOfExperience: 10, AverageRating: 4.5, ReviewCount: 40,
			Languages: []string{"English"}, Modalities: []string{"online"}, PriceBand: model.PriceBandStandard},
		{ID: "t2", Name: "B", Specialties: []string{"ptsd"}, Approaches: []string{"EMDR"},
			YearsOfExperience: 15, AverageRating: 4.8, ReviewCount: 120,
			Languages: []string{"English"}, Modalities: []string{"in-person"}, PriceBand: model.PriceBandPremium},
		{ID: "t3", Name: "C", Specialties: []string{"anxiety"}, Approaches: []string{"Mindfulness"},
			YearsOfExperience: 5, AverageRating: 4.0, ReviewCount: 12,
			Languages: []string{"Spanish"}, Modalities: []string{"online"}, PriceBand: model.PriceBandLow},
	}}
}

func newMatchingFixture(t *testing.T) (*MatchingService, *AssessmentService, *fakeRecCache, *fakeTherapistRepo) {
	t.Helper()
	registry, err := engine.NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry() error = %v", err)
	}
	assessSvc := NewAssessmentService(registry, newFakeAssessmentRepo(), newFakeRiskCache())
	roster := seedRoster()
	recCache := newFakeRecCache()
	svc := NewMatchingService(registry, assessSvc, roster, recCache)
	return svc, assessSvc, recCache, roster
}

func TestRecommendRequiresAssessment(t *testing.T) {
	svc, _, _, _ := newMatchingFixture(t)

	_, err := svc.Recommend(context.Background(), "c_1", &model.RecommendationRequest{})
	if !errors.Is(err, ErrNoAssessment) {
		t.Fatalf("error = %v, want ErrNoAssessment", err)
	}
}

func TestRecommendRanksRoster(t *testing.T) {
	svc, assessSvc, recCache, _ := newMatchingFixture(t)
	ctx := context.Background()

	if _, err := assessSvc.Submit(ctx, "c_1", validVector()); err != nil {
		t.Fatalf("Submit() error = %v", err)
	}

	results, err := svc.Recommend(ctx, "c_1", &model.RecommendationRequest{
		Preferences: model.ClientPreferences{PreferredApproaches: []string{"CBT"}},
	})
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("got %d results, want full roster of 3", len(results))
	}
	for i := 1; i < len(results); i++ {
		if results[i].FinalScore > results[i-1].FinalScore {
			t.Errorf("results out of order at %d: %v > %v", i, results[i].FinalScore, results[i-1].FinalScore)
		}
	}
	if results[0].ConversationMatch != nil {
		t.Error("conversationMatch attached without transcript")
	}
	if len(recCache.store["c_1"]) != 3 {
		t.Error("results not cached")
	}
}

func TestRecommendBlendsTranscript(t *testing.T) {
	svc, assessSvc, _, _ := newMatchingFixture(t)
	ctx := context.Background()

	if _, err := assessSvc.Submit(ctx, "c_1", validVector()); err != nil {
		t.Fatalf("Submit() error = %v", err)
	}

	results, err := svc.Recommend(ctx, "c_1", &model.RecommendationRequest{
		Transcript: []model.TranscriptMessage{
			{Author: model.AuthorClient, Text: "I've been anxious and depressed, I want to try CBT."},
		},
	})
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	for _, r := range results {
		if r.ConversationMatch == nil {
			t.Fatalf("result %s missing conversationMatch", r.TherapistID)
		}
		if r.FinalScore == r.CompositeScore && r.ConversationMatch.Factors.Total != 0 {
			t.Errorf("result %s finalScore not blended", r.TherapistID)
		}
	}
}

func TestRecommendLimitClamp(t *testing.T) {
	svc, assessSvc, _, _ := newMatchingFixture(t)
	ctx := context.Background()

	if _, err := assessSvc.Submit(ctx, "c_1", validVector()); err != nil {
		t.Fatalf("Submit() error = %v", err)
	}

	results, err := svc.Recommend(ctx, "c_1", &model.RecommendationRequest{Limit: 2})
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if len(results) != 2 {
		t.Errorf("got %d results, want 2", len(results))
	}
}

func TestRecommendFallsBackWhenFilterEmpty(t *testing.T) {
	svc, assessSvc, _, _ := newMatchingFixture(t)
	ctx := context.Background()

	if _, err := assessSvc.Submit(ctx, "c_1", validVector()); err != nil {
		t.Fatalf("Submit() error = %v", err)
	}

	// No therapist speaks Mandarin; the roster should still be ranked with
	// the mismatch reflected in logistics scores.
	results, err := svc.Recommend(ctx, "c_1", &model.RecommendationRequest{
		Preferences: model.ClientPreferences{Language: "Mandarin"},
	})
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("got %d results, want unfiltered roster of 3", len(results))
	}
	for _, r := range results {
		if r.Breakdown.LogisticsScore > 60 {
			t.Errorf("result %s logisticsScore %v should reflect language mismatch", r.TherapistID, r.Breakdown.LogisticsScore)
		}
	}
}

func TestRecommendEmptyRoster(t *testing.T) {
	svc, assessSvc, _, roster := newMatchingFixture(t)
	ctx := context.Background()

	if _, err := assessSvc.Submit(ctx, "c_1", validVector()); err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	roster.roster = nil

	_, err := svc.Recommend(ctx, "c_1", &model.RecommendationRequest{})
	if !errors.Is(err, ErrNoTherapists) {
		t.Fatalf("error = %v, want ErrNoTherapists", err)
	}
}

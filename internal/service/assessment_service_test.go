package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"go.mongodb.org/mongo-driver/mongo"

	"mentara/internal/engine"
	"mentara/internal/model"
)

type fakeAssessmentRepo struct {
	byClient map[string][]*model.Assessment
	nextID   int
}

func newFakeAssessmentRepo() *fakeAssessmentRepo {
	return &fakeAssessmentRepo{byClient: make(map[string][]*model.Assessment)}
}

func (r *fakeAssessmentRepo) Create(_ context.Context, a *model.Assessment) error {
	r.nextID++
	a.ID = fmt.Sprintf("a%d", r.nextID)
	r.byClient[a.ClientID] = append([]*model.Assessment{a}, r.byClient[a.ClientID]...)
	return nil
}

func (r *fakeAssessmentRepo) GetByID(_ context.Context, id string) (*model.Assessment, error) {
	for _, list := range r.byClient {
		for _, a := range list {
			if a.ID == id {
				return a, nil
			}
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (r *fakeAssessmentRepo) GetLatestByClientID(_ context.Context, clientID string) (*model.Assessment, error) {
	list := r.byClient[clientID]
	if len(list) == 0 {
		return nil, mongo.ErrNoDocuments
	}
	return list[0], nil
}

func (r *fakeAssessmentRepo) GetByClientID(_ context.Context, clientID string) ([]*model.Assessment, error) {
	return r.byClient[clientID], nil
}

func (r *fakeAssessmentRepo) Delete(_ context.Context, id string) error {
	return nil
}

type fakeRiskCache struct {
	store map[string]*model.RiskProfile
	sets  int
}

func newFakeRiskCache() *fakeRiskCache {
	return &fakeRiskCache{store: make(map[string]*model.RiskProfile)}
}

func (c *fakeRiskCache) Set(_ context.Context, clientID string, p *model.RiskProfile) error {
	c.sets++
	c.store[clientID] = p
	return nil
}

func (c *fakeRiskCache) Get(_ context.Context, clientID string) (*model.RiskProfile, error) {
	return c.store[clientID], nil
}

func (c *fakeRiskCache) Delete(_ context.Context, clientID string) error {
	delete(c.store, clientID)
	return nil
}

type fakeBroadcaster struct {
	events []string
}

func (b *fakeBroadcaster) BroadcastToClient(clientID, msgType string, _ interface{}) {
	b.events = append(b.events, clientID+":"+msgType)
}

func (b *fakeBroadcaster) DisconnectClient(string) {}

func validVector() []int {
	answers := make([]int, model.AnswerVectorLength)
	for i := range answers {
		answers[i] = i % 5
	}
	return answers
}

func newAssessmentFixture(t *testing.T) (*AssessmentService, *fakeAssessmentRepo, *fakeRiskCache, *fakeBroadcaster) {
	t.Helper()
	registry, err := engine.NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry() error = %v", err)
	}
	repo := newFakeAssessmentRepo()
	riskCache := newFakeRiskCache()
	b := &fakeBroadcaster{}
	svc := NewAssessmentService(registry, repo, riskCache)
	svc.SetBroadcaster(b)
	return svc, repo, riskCache, b
}

func TestSubmitScoresAndPersists(t *testing.T) {
	svc, repo, riskCache, b := newAssessmentFixture(t)
	ctx := context.Background()

	assessment, err := svc.Submit(ctx, "c_1", validVector())
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if assessment.ID == "" {
		t.Error("assessment id not assigned")
	}
	if len(assessment.Subscales) != 14 {
		t.Errorf("got %d subscales, want 14", len(assessment.Subscales))
	}
	if assessment.RiskProfile == nil {
		t.Fatal("risk profile missing")
	}
	if len(repo.byClient["c_1"]) != 1 {
		t.Errorf("persisted %d assessments, want 1", len(repo.byClient["c_1"]))
	}
	if riskCache.store["c_1"] != assessment.RiskProfile {
		t.Error("risk profile not cached")
	}
	if len(b.events) != 1 || b.events[0] != "c_1:risk_profile_ready" {
		t.Errorf("broadcast events = %v", b.events)
	}
}

func TestSubmitRejectsInvalidVector(t *testing.T) {
	svc, repo, _, b := newAssessmentFixture(t)
	ctx := context.Background()

	_, err := svc.Submit(ctx, "c_1", make([]int, 7))
	if err == nil {
		t.Fatal("expected error for short vector")
	}
	var invalid *engine.InvalidInputError
	if !errors.As(err, &invalid) {
		t.Fatalf("error type = %T, want *engine.InvalidInputError", err)
	}
	if len(repo.byClient["c_1"]) != 0 {
		t.Error("invalid submission must not persist")
	}
	if len(b.events) != 0 {
		t.Error("invalid submission must not broadcast")
	}
}

func TestRiskProfileCacheFirst(t *testing.T) {
	svc, _, riskCache, _ := newAssessmentFixture(t)
	ctx := context.Background()

	if _, err := svc.Submit(ctx, "c_1", validVector()); err != nil {
		t.Fatalf("Submit() error = %v", err)
	}

	setsBefore := riskCache.sets
	if _, err := svc.RiskProfile(ctx, "c_1"); err != nil {
		t.Fatalf("RiskProfile() error = %v", err)
	}
	if riskCache.sets != setsBefore {
		t.Error("cache hit must not rewrite the cache")
	}

	// Evict and confirm the profile is rebuilt from the stored assessment.
	riskCache.Delete(ctx, "c_1")
	profile, err := svc.RiskProfile(ctx, "c_1")
	if err != nil {
		t.Fatalf("RiskProfile() after evict error = %v", err)
	}
	if profile == nil {
		t.Fatal("profile missing after cache evict")
	}
	if riskCache.store["c_1"] == nil {
		t.Error("cache not repopulated")
	}
}

func TestRiskProfileNoAssessment(t *testing.T) {
	svc, _, _, _ := newAssessmentFixture(t)

	_, err := svc.RiskProfile(context.Background(), "c_unknown")
	if !errors.Is(err, ErrNoAssessment) {
		t.Fatalf("error = %v, want ErrNoAssessment", err)
	}
}

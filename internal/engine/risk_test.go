package engine

import (
	"testing"

	"mentara/internal/model"
)

func estimate(t *testing.T, r *Registry, answers []int) *model.RiskProfile {
	t.Helper()
	scores, err := r.Score(answers)
	if err != nil {
		t.Fatalf("Score() error = %v", err)
	}
	rp, err := r.EstimateRisk(answers, scores)
	if err != nil {
		t.Fatalf("EstimateRisk() error = %v", err)
	}
	return rp
}

func TestEstimateRiskAllZeros(t *testing.T) {
	r := mustRegistry(t)
	rp := estimate(t, r, fullVector(0))

	if rp.OverallSeverity != model.SeverityLow {
		t.Errorf("overall severity = %q, want low", rp.OverallSeverity)
	}
	if len(rp.RiskFactors) != 0 {
		t.Errorf("risk factors = %v, want none", rp.RiskFactors)
	}
	if len(rp.RecommendedInterventions) != 0 {
		t.Errorf("interventions = %v, want none", rp.RecommendedInterventions)
	}
	for domain, v := range rp.PerDomainSeverity {
		if v != 0 {
			t.Errorf("perDomainSeverity[%s] = %v, want 0", domain, v)
		}
	}
}

func TestEstimateRiskDepressionMaxed(t *testing.T) {
	r := mustRegistry(t)
	dep, ok := r.Lookup("phq-15")
	if !ok {
		t.Fatal("phq-15 missing from registry")
	}

	answers := fullVector(0)
	for i := dep.StartIndex; i <= dep.EndIndex; i++ {
		answers[i] = model.AnswerMax
	}
	rp := estimate(t, r, answers)

	if got := rp.PerDomainSeverity["depression"]; got != 1.0 {
		t.Errorf("perDomainSeverity[depression] = %v, want 1.0", got)
	}
	found := false
	for _, f := range rp.RiskFactors {
		if f == "depression" {
			found = true
		} else {
			t.Errorf("unexpected risk factor %q", f)
		}
	}
	if !found {
		t.Error("depression missing from risk factors")
	}
	for domain, v := range rp.PerDomainSeverity {
		if domain != "depression" && v != 0 {
			t.Errorf("perDomainSeverity[%s] = %v, want 0", domain, v)
		}
	}
	if len(rp.RecommendedInterventions) == 0 {
		t.Error("expected intervention categories for flagged depression")
	}
}

func TestEstimateRiskOverallTiers(t *testing.T) {
	r := mustRegistry(t)

	if rp := estimate(t, r, fullVector(4)); rp.OverallSeverity != model.SeverityHigh {
		t.Errorf("all-4 vector: overall = %q, want high", rp.OverallSeverity)
	}
	if rp := estimate(t, r, fullVector(2)); rp.OverallSeverity != model.SeverityModerate {
		t.Errorf("all-2 vector: overall = %q, want moderate", rp.OverallSeverity)
	}
}

func TestEstimateRiskDeduplicatesInterventions(t *testing.T) {
	r := mustRegistry(t)

	// audit and dast-10 share substance-use categories.
	answers := fullVector(0)
	for _, id := range []string{"audit", "dast-10"} {
		inst, _ := r.Lookup(id)
		for i := inst.StartIndex; i <= inst.EndIndex; i++ {
			answers[i] = model.AnswerMax
		}
	}
	rp := estimate(t, r, answers)

	seen := make(map[string]int)
	for _, cat := range rp.RecommendedInterventions {
		seen[cat]++
	}
	for cat, n := range seen {
		if n > 1 {
			t.Errorf("intervention %q appears %d times", cat, n)
		}
	}
	if seen["motivational-interviewing"] != 1 {
		t.Errorf("expected motivational-interviewing once, got %d", seen["motivational-interviewing"])
	}
}

func TestConfidenceHeuristic(t *testing.T) {
	r := mustRegistry(t)

	flat := estimate(t, r, fullVector(2))
	if flat.Confidence != confidenceBase {
		t.Errorf("flat-response confidence = %v, want floor %v", flat.Confidence, confidenceBase)
	}

	varied := fullVector(0)
	for i := range varied {
		varied[i] = i % 5
	}
	vp := estimate(t, r, varied)
	if vp.Confidence <= flat.Confidence {
		t.Errorf("varied confidence %v not above flat %v", vp.Confidence, flat.Confidence)
	}
	if vp.Confidence >= 1.0 {
		t.Errorf("confidence %v must stay below 1.0", vp.Confidence)
	}
}

func TestEstimateRiskRejectsEmptySubscales(t *testing.T) {
	r := mustRegistry(t)
	_, err := r.EstimateRisk(fullVector(0), nil)
	if err == nil {
		t.Fatal("expected error for empty subscale set")
	}
	if _, ok := err.(*InvalidInputError); !ok {
		t.Fatalf("error type = %T, want *InvalidInputError", err)
	}
}

package engine

import (
	"testing"

	"mentara/internal/model"
)

func tierIndex(inst model.Instrument, label string) int {
	for i, c := range inst.Cutoffs {
		if c.Label == label {
			return i
		}
	}
	return -1
}

func TestClassifyKnownBoundaries(t *testing.T) {
	r := mustRegistry(t)
	gad, ok := r.Lookup("gad-7")
	if !ok {
		t.Fatal("gad-7 missing from registry")
	}

	tests := []struct {
		raw  int
		want string
	}{
		{0, "Minimal"},
		{6, "Minimal"},
		{7, "Mild"},
		{12, "Mild"},
		{13, "Moderate"},
		{19, "Moderate"},
		{20, "Severe"},
		{28, "Severe"},
	}
	for _, tt := range tests {
		if got := Classify(gad, tt.raw); got != tt.want {
			t.Errorf("Classify(gad-7, %d) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestClassifyClampsAboveMax(t *testing.T) {
	r := mustRegistry(t)
	for _, inst := range r.All() {
		top := inst.Cutoffs[len(inst.Cutoffs)-1].Label
		if got := Classify(inst, inst.MaxScore+100); got != top {
			t.Errorf("%s: Classify(max+100) = %q, want top tier %q", inst.ID, got, top)
		}
	}
}

func TestClassifyMonotonic(t *testing.T) {
	r := mustRegistry(t)
	for _, inst := range r.All() {
		prev := -1
		for raw := inst.MinScore; raw <= inst.MaxScore; raw++ {
			idx := tierIndex(inst, Classify(inst, raw))
			if idx < 0 {
				t.Fatalf("%s: Classify(%d) returned unknown label", inst.ID, raw)
			}
			if idx < prev {
				t.Fatalf("%s: severity tier dropped from %d to %d at raw score %d", inst.ID, prev, idx, raw)
			}
			prev = idx
		}
	}
}

func TestScoreAttachesLabels(t *testing.T) {
	r := mustRegistry(t)
	scores, err := r.Score(fullVector(0))
	if err != nil {
		t.Fatalf("Score() error = %v", err)
	}
	for _, s := range scores {
		inst, _ := r.Lookup(s.InstrumentID)
		if s.SeverityLabel != inst.Cutoffs[0].Label {
			t.Errorf("%s: label %q, want lowest tier %q", s.InstrumentID, s.SeverityLabel, inst.Cutoffs[0].Label)
		}
	}
}

package engine

import (
	"testing"

	"mentara/internal/model"
)

func TestNewRegistryValidates(t *testing.T) {
	r, err := NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry() error = %v", err)
	}
	if got := len(r.All()); got != 14 {
		t.Fatalf("registry holds %d instruments, want 14", got)
	}
	for _, inst := range r.All() {
		if _, ok := r.Lookup(inst.ID); !ok {
			t.Fatalf("Lookup(%q) missed", inst.ID)
		}
	}
}

func TestNewRegistryRejectsBadTables(t *testing.T) {
	valid := func() model.Instrument {
		return model.Instrument{
			ID: "a", Name: "A", Domain: "a",
			ItemCount: 5, StartIndex: 0, EndIndex: 4, MinScore: 0, MaxScore: 20,
			Cutoffs: []model.SeverityCutoff{
				{Label: "Low", LowerBound: 0},
				{Label: "High", LowerBound: 10},
			},
		}
	}

	tests := []struct {
		name   string
		mutate func() []model.Instrument
	}{
		{
			name: "overlapping ranges",
			mutate: func() []model.Instrument {
				a := valid()
				b := valid()
				b.ID = "b"
				b.StartIndex, b.EndIndex = 4, 8
				return []model.Instrument{a, b}
			},
		},
		{
			name: "range exceeds vector",
			mutate: func() []model.Instrument {
				a := valid()
				a.StartIndex, a.EndIndex = 197, 201
				return []model.Instrument{a}
			},
		},
		{
			name: "span does not match item count",
			mutate: func() []model.Instrument {
				a := valid()
				a.EndIndex = 5
				return []model.Instrument{a}
			},
		},
		{
			name: "cutoffs not ascending",
			mutate: func() []model.Instrument {
				a := valid()
				a.Cutoffs = []model.SeverityCutoff{
					{Label: "Low", LowerBound: 0},
					{Label: "Mid", LowerBound: 10},
					{Label: "High", LowerBound: 10},
				}
				return []model.Instrument{a}
			},
		},
		{
			name: "duplicate id",
			mutate: func() []model.Instrument {
				a := valid()
				b := valid()
				b.StartIndex, b.EndIndex = 10, 14
				return []model.Instrument{a, b}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newRegistry(tt.mutate())
			if err == nil {
				t.Fatal("expected configuration error, got nil")
			}
			if _, ok := err.(*ConfigurationError); !ok {
				t.Fatalf("error type = %T, want *ConfigurationError", err)
			}
		})
	}
}

func TestRegistryRangesAreContiguousPerInstrument(t *testing.T) {
	r, err := NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry() error = %v", err)
	}
	for _, inst := range r.All() {
		if span := inst.EndIndex - inst.StartIndex + 1; span != inst.ItemCount {
			t.Errorf("%s: span %d != item count %d", inst.ID, span, inst.ItemCount)
		}
		if inst.MaxScore != inst.ItemCount*model.AnswerMax {
			t.Errorf("%s: max score %d does not fit %d items", inst.ID, inst.MaxScore, inst.ItemCount)
		}
	}
}

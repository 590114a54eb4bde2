package engine

import (
	"fmt"

	"mentara/internal/model"
)

// instrumentTable is the declarative definition of the 201-item
// pre-assessment. Index ranges follow the original questionnaire layout;
// slots 165-173 are reserved and ignored by scoring. Cutoff bounds come
// from each instrument's published scoring guide, rescaled proportionally
// where the published item scale is not 0-4 (PHQ, ASRS, BES, DAST-10,
// GAD-7, MBI and MDQ); AUDIT, ISI, OCI-R, PCL-5, PDSS, PSS and SPIN are
// already scored on 0-4 items and use their published bounds unchanged.
var instrumentTable = []model.Instrument{
	{
		ID: "phq-15", Name: "Depression", Domain: "depression",
		ItemCount: 15, StartIndex: 0, EndIndex: 14, MinScore: 0, MaxScore: 60,
		Cutoffs: []model.SeverityCutoff{
			{Label: "Minimal", LowerBound: 0},
			{Label: "Mild", LowerBound: 11},
			{Label: "Moderate", LowerBound: 22},
			{Label: "Moderately Severe", LowerBound: 33},
			{Label: "Severe", LowerBound: 44},
		},
	},
	{
		ID: "asrs", Name: "ADD / ADHD", Domain: "adhd",
		ItemCount: 18, StartIndex: 15, EndIndex: 32, MinScore: 0, MaxScore: 72,
		Cutoffs: []model.SeverityCutoff{
			{Label: "Low", LowerBound: 0},
			{Label: "Mild", LowerBound: 24},
			{Label: "Clinical", LowerBound: 44},
			{Label: "Severe", LowerBound: 58},
		},
	},
	{
		ID: "audit", Name: "Substance or Alcohol Use Issues", Domain: "alcohol-use",
		ItemCount: 10, StartIndex: 33, EndIndex: 42, MinScore: 0, MaxScore: 40,
		Cutoffs: []model.SeverityCutoff{
			{Label: "Low Risk", LowerBound: 0},
			{Label: "Hazardous", LowerBound: 8},
			{Label: "Harmful", LowerBound: 16},
			{Label: "Severe", LowerBound: 20},
		},
	},
	{
		ID: "bes", Name: "Binge Eating / Eating Disorders", Domain: "eating",
		ItemCount: 16, StartIndex: 43, EndIndex: 58, MinScore: 0, MaxScore: 64,
		Cutoffs: []model.SeverityCutoff{
			{Label: "Minimal", LowerBound: 0},
			{Label: "Moderate", LowerBound: 24},
			{Label: "Severe", LowerBound: 38},
		},
	},
	{
		ID: "dast-10", Name: "Drug Abuse", Domain: "drug-use",
		ItemCount: 10, StartIndex: 59, EndIndex: 68, MinScore: 0, MaxScore: 40,
		Cutoffs: []model.SeverityCutoff{
			{Label: "None", LowerBound: 0},
			{Label: "Low", LowerBound: 12},
			{Label: "Moderate", LowerBound: 24},
			{Label: "Substantial", LowerBound: 32},
			{Label: "Severe", LowerBound: 36},
		},
	},
	{
		ID: "gad-7", Name: "Anxiety", Domain: "anxiety",
		ItemCount: 7, StartIndex: 69, EndIndex: 75, MinScore: 0, MaxScore: 28,
		Cutoffs: []model.SeverityCutoff{
			{Label: "Minimal", LowerBound: 0},
			{Label: "Mild", LowerBound: 7},
			{Label: "Moderate", LowerBound: 13},
			{Label: "Severe", LowerBound: 20},
		},
	},
	{
		ID: "isi", Name: "Insomnia", Domain: "insomnia",
		ItemCount: 7, StartIndex: 76, EndIndex: 82, MinScore: 0, MaxScore: 28,
		Cutoffs: []model.SeverityCutoff{
			{Label: "None", LowerBound: 0},
			{Label: "Subthreshold", LowerBound: 8},
			{Label: "Moderate", LowerBound: 15},
			{Label: "Severe", LowerBound: 22},
		},
	},
	{
		ID: "mbi", Name: "Burnout", Domain: "burnout",
		ItemCount: 22, StartIndex: 83, EndIndex: 104, MinScore: 0, MaxScore: 88,
		Cutoffs: []model.SeverityCutoff{
			{Label: "Low", LowerBound: 0},
			{Label: "Moderate", LowerBound: 30},
			{Label: "High", LowerBound: 54},
		},
	},
	{
		ID: "mdq", Name: "Bipolar Disorder", Domain: "bipolar",
		ItemCount: 15, StartIndex: 105, EndIndex: 119, MinScore: 0, MaxScore: 60,
		Cutoffs: []model.SeverityCutoff{
			{Label: "Negative", LowerBound: 0},
			{Label: "Possible", LowerBound: 20},
			{Label: "Positive", LowerBound: 35},
		},
	},
	{
		ID: "oci-r", Name: "Obsessive Compulsive Disorder", Domain: "ocd",
		ItemCount: 18, StartIndex: 120, EndIndex: 137, MinScore: 0, MaxScore: 72,
		Cutoffs: []model.SeverityCutoff{
			{Label: "Subclinical", LowerBound: 0},
			{Label: "Clinical", LowerBound: 21},
			{Label: "Severe", LowerBound: 40},
		},
	},
	{
		ID: "pcl-5", Name: "Post-Traumatic Stress Disorder", Domain: "ptsd",
		ItemCount: 20, StartIndex: 138, EndIndex: 157, MinScore: 0, MaxScore: 80,
		Cutoffs: []model.SeverityCutoff{
			{Label: "Minimal", LowerBound: 0},
			{Label: "Mild", LowerBound: 15},
			{Label: "Moderate", LowerBound: 31},
			{Label: "Severe", LowerBound: 49},
		},
	},
	{
		ID: "pdss", Name: "Panic", Domain: "panic",
		ItemCount: 7, StartIndex: 158, EndIndex: 164, MinScore: 0, MaxScore: 28,
		Cutoffs: []model.SeverityCutoff{
			{Label: "None", LowerBound: 0},
			{Label: "Mild", LowerBound: 4},
			{Label: "Moderate", LowerBound: 8},
			{Label: "Marked", LowerBound: 11},
			{Label: "Extreme", LowerBound: 16},
		},
	},
	{
		ID: "pss", Name: "Stress", Domain: "stress",
		ItemCount: 10, StartIndex: 174, EndIndex: 183, MinScore: 0, MaxScore: 40,
		Cutoffs: []model.SeverityCutoff{
			{Label: "Low", LowerBound: 0},
			{Label: "Moderate", LowerBound: 14},
			{Label: "High", LowerBound: 27},
		},
	},
	{
		ID: "spin", Name: "Social Anxiety", Domain: "social-anxiety",
		ItemCount: 17, StartIndex: 184, EndIndex: 200, MinScore: 0, MaxScore: 68,
		Cutoffs: []model.SeverityCutoff{
			{Label: "None", LowerBound: 0},
			{Label: "Mild", LowerBound: 21},
			{Label: "Moderate", LowerBound: 31},
			{Label: "Severe", LowerBound: 41},
			{Label: "Very Severe", LowerBound: 51},
		},
	},
}

// Registry is the read-only instrument table, validated once at startup and
// safe for unsynchronized concurrent reads afterwards.
type Registry struct {
	instruments []model.Instrument
	byID        map[string]model.Instrument
}

// NewRegistry builds and validates the registry. Any integrity violation is
// a ConfigurationError and the process must not serve requests.
func NewRegistry() (*Registry, error) {
	return newRegistry(instrumentTable)
}

func newRegistry(table []model.Instrument) (*Registry, error) {
	r := &Registry{
		instruments: table,
		byID:        make(map[string]model.Instrument, len(table)),
	}

	occupied := make([]string, model.AnswerVectorLength)
	for _, inst := range table {
		if _, dup := r.byID[inst.ID]; dup {
			return nil, &ConfigurationError{Detail: fmt.Sprintf("duplicate instrument id %q", inst.ID)}
		}
		r.byID[inst.ID] = inst

		if inst.StartIndex < 0 || inst.EndIndex >= model.AnswerVectorLength {
			return nil, &ConfigurationError{Detail: fmt.Sprintf("instrument %q range [%d,%d] exceeds the %d-slot vector",
				inst.ID, inst.StartIndex, inst.EndIndex, model.AnswerVectorLength)}
		}
		if span := inst.EndIndex - inst.StartIndex + 1; span != inst.ItemCount {
			return nil, &ConfigurationError{Detail: fmt.Sprintf("instrument %q spans %d slots but declares %d items",
				inst.ID, span, inst.ItemCount)}
		}
		if inst.MaxScore != inst.MinScore+inst.ItemCount*model.AnswerMax {
			return nil, &ConfigurationError{Detail: fmt.Sprintf("instrument %q score range [%d,%d] does not fit %d items",
				inst.ID, inst.MinScore, inst.MaxScore, inst.ItemCount)}
		}
		for i := inst.StartIndex; i <= inst.EndIndex; i++ {
			if occupied[i] != "" {
				return nil, &ConfigurationError{Detail: fmt.Sprintf("instruments %q and %q overlap at slot %d",
					occupied[i], inst.ID, i)}
			}
			occupied[i] = inst.ID
		}

		if len(inst.Cutoffs) < 2 {
			return nil, &ConfigurationError{Detail: fmt.Sprintf("instrument %q needs at least two severity tiers", inst.ID)}
		}
		if inst.Cutoffs[0].LowerBound != inst.MinScore {
			return nil, &ConfigurationError{Detail: fmt.Sprintf("instrument %q lowest cutoff must start at %d", inst.ID, inst.MinScore)}
		}
		for i := 1; i < len(inst.Cutoffs); i++ {
			if inst.Cutoffs[i].LowerBound <= inst.Cutoffs[i-1].LowerBound {
				return nil, &ConfigurationError{Detail: fmt.Sprintf("instrument %q cutoffs not ascending at tier %q",
					inst.ID, inst.Cutoffs[i].Label)}
			}
			if inst.Cutoffs[i].LowerBound > inst.MaxScore {
				return nil, &ConfigurationError{Detail: fmt.Sprintf("instrument %q cutoff %q exceeds max score",
					inst.ID, inst.Cutoffs[i].Label)}
			}
		}
	}

	return r, nil
}

// Lookup returns the instrument with the given id.
func (r *Registry) Lookup(id string) (model.Instrument, bool) {
	inst, ok := r.byID[id]
	return inst, ok
}

// All returns every instrument in vector order.
func (r *Registry) All() []model.Instrument {
	return r.instruments
}

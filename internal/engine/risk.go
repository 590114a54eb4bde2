package engine

import (
	"fmt"

	"github.com/montanaflynn/stats"

	"mentara/internal/model"
)

// Overall severity thresholds over the mean per-domain value.
const (
	moderateThreshold = 0.34
	highThreshold     = 0.67
)

// Confidence heuristic bounds. A fully answered vector contributes the base;
// response variance contributes the rest, so a flat-line respondent (all 2s)
// lands at the floor and a fully varied vector approaches but never reaches 1.
const (
	confidenceBase     = 0.40
	confidenceVarSpan  = 0.55
	varianceFullSpread = 4.0
)

// interventionTable maps each clinical domain to its suggested intervention
// categories. Many-to-many: several domains share a category and the
// estimator deduplicates.
var interventionTable = map[string][]string{
	"depression":     {"cognitive-behavioral-therapy", "behavioral-activation"},
	"adhd":           {"behavioral-coaching", "organizational-skills-training"},
	"alcohol-use":    {"motivational-interviewing", "substance-use-counseling"},
	"eating":         {"cognitive-behavioral-therapy", "nutritional-counseling"},
	"drug-use":       {"motivational-interviewing", "substance-use-counseling"},
	"anxiety":        {"cognitive-behavioral-therapy", "mindfulness-based-therapy"},
	"insomnia":       {"cbt-for-insomnia", "sleep-hygiene-training"},
	"burnout":        {"stress-management", "acceptance-commitment-therapy"},
	"bipolar":        {"psychiatric-referral", "interpersonal-social-rhythm-therapy"},
	"ocd":            {"exposure-response-prevention", "cognitive-behavioral-therapy"},
	"ptsd":           {"trauma-focused-therapy", "emdr"},
	"panic":          {"panic-focused-cbt", "breathing-retraining"},
	"stress":         {"stress-management", "mindfulness-based-therapy"},
	"social-anxiety": {"exposure-therapy", "cognitive-behavioral-therapy"},
}

// severityWeightTable ranks every label the registry emits on a common 0-5
// scale so labels from different instruments can be compared.
var severityWeightTable = map[string]int{
	"None":              0,
	"Negative":          0,
	"Minimal":           1,
	"Low":               1,
	"Low Risk":          1,
	"Subclinical":       1,
	"Subthreshold":      2,
	"Mild":              2,
	"Possible":          2,
	"Hazardous":         2,
	"Moderate":          3,
	"Moderately Severe": 4,
	"Clinical":          4,
	"High":              4,
	"Substantial":       4,
	"Harmful":           4,
	"Marked":            4,
	"Positive":          4,
	"Severe":            5,
	"Very Severe":       5,
	"Extreme":           5,
}

func severityWeightFor(label string) int {
	return severityWeightTable[label]
}

// EstimateRisk aggregates labelled subscale scores into a holistic risk
// profile. Recomputed in full per submission, never patched incrementally.
// The answers slice feeds only the confidence heuristic.
func (r *Registry) EstimateRisk(answers []int, subscales []model.SubscaleScore) (*model.RiskProfile, error) {
	if len(subscales) == 0 {
		return nil, &InvalidInputError{Field: "subscales", Reason: "empty subscale set"}
	}

	perDomain := make(map[string]float64, len(subscales))
	var riskFactors []string
	var sum float64

	for _, s := range subscales {
		inst, ok := r.Lookup(s.InstrumentID)
		if !ok {
			return nil, &ConfigurationError{Detail: fmt.Sprintf("unknown instrument %q in subscale set", s.InstrumentID)}
		}
		normalized := float64(s.RawScore-inst.MinScore) / float64(inst.MaxScore-inst.MinScore)
		perDomain[inst.Domain] = normalized
		sum += normalized

		if flaggedTier(inst, s.SeverityLabel) {
			riskFactors = append(riskFactors, inst.Domain)
		}
	}

	mean := sum / float64(len(subscales))
	overall := model.SeverityLow
	switch {
	case mean >= highThreshold:
		overall = model.SeverityHigh
	case mean >= moderateThreshold:
		overall = model.SeverityModerate
	}

	return &model.RiskProfile{
		OverallSeverity:          overall,
		PerDomainSeverity:        perDomain,
		RiskFactors:              riskFactors,
		RecommendedInterventions: interventionsFor(riskFactors),
		Confidence:               confidence(answers),
	}, nil
}

// flaggedTier reports whether the label sits at or above the instrument's
// second-highest cutoff tier.
func flaggedTier(inst model.Instrument, label string) bool {
	for i, c := range inst.Cutoffs {
		if c.Label == label {
			return i >= len(inst.Cutoffs)-2
		}
	}
	return false
}

// interventionsFor resolves flagged domains through the intervention table,
// deduplicating while preserving first-seen order.
func interventionsFor(domains []string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, d := range domains {
		for _, cat := range interventionTable[d] {
			if !seen[cat] {
				seen[cat] = true
				out = append(out, cat)
			}
		}
	}
	return out
}

// confidence scores answer variance against the maximum possible spread.
// Heuristic only: a flat response pattern suggests disengagement, so it
// lowers confidence rather than failing the submission.
func confidence(answers []int) float64 {
	if len(answers) != model.AnswerVectorLength {
		return confidenceBase
	}
	vals := make([]float64, len(answers))
	for i, v := range answers {
		vals[i] = float64(v)
	}
	variance, err := stats.PopulationVariance(vals)
	if err != nil {
		return confidenceBase
	}
	ratio := variance / varianceFullSpread
	if ratio > 1 {
		ratio = 1
	}
	return confidenceBase + ratio*confidenceVarSpan
}

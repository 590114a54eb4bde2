package engine

import (
	"fmt"

	"mentara/internal/model"
)

// Classify maps a raw subscale score onto the instrument's severity label by
// walking the cutoff table from the highest lower bound downward. Scores
// above the instrument maximum are clamped before lookup; scores below the
// lowest bound get the lowest label.
func Classify(inst model.Instrument, rawScore int) string {
	if rawScore > inst.MaxScore {
		rawScore = inst.MaxScore
	}
	for i := len(inst.Cutoffs) - 1; i > 0; i-- {
		if rawScore >= inst.Cutoffs[i].LowerBound {
			return inst.Cutoffs[i].Label
		}
	}
	return inst.Cutoffs[0].Label
}

// Score runs Normalize then Classify over a full answer vector, returning
// labelled subscale scores in instrument order.
func (r *Registry) Score(answers []int) ([]model.SubscaleScore, error) {
	scores, err := r.Normalize(answers)
	if err != nil {
		return nil, err
	}
	for i := range scores {
		inst, ok := r.Lookup(scores[i].InstrumentID)
		if !ok {
			return nil, &ConfigurationError{Detail: fmt.Sprintf("unknown instrument %q in subscale set", scores[i].InstrumentID)}
		}
		scores[i].SeverityLabel = Classify(inst, scores[i].RawScore)
	}
	return scores, nil
}

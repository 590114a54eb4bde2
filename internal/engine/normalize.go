package engine

import (
	"fmt"

	"mentara/internal/model"
)

// Normalize slices the flat answer vector into per-instrument sub-vectors
// and sums each into a raw subscale score. Labels are not attached here;
// Classify does that. Partial vectors are not supported: the input must be
// exactly the full vector with every slot answered.
func (r *Registry) Normalize(answers []int) ([]model.SubscaleScore, error) {
	if len(answers) != model.AnswerVectorLength {
		return nil, &InvalidInputError{
			Field:  "answers",
			Reason: fmt.Sprintf("expected %d answers, got %d", model.AnswerVectorLength, len(answers)),
		}
	}
	for i, v := range answers {
		if v < model.AnswerMin || v > model.AnswerMax {
			return nil, &InvalidInputError{
				Field:  fmt.Sprintf("answers[%d]", i),
				Reason: fmt.Sprintf("value %d outside [%d,%d]", v, model.AnswerMin, model.AnswerMax),
			}
		}
	}

	scores := make([]model.SubscaleScore, 0, len(r.instruments))
	for _, inst := range r.instruments {
		raw := 0
		for i := inst.StartIndex; i <= inst.EndIndex; i++ {
			raw += answers[i]
		}
		scores = append(scores, model.SubscaleScore{
			InstrumentID: inst.ID,
			Domain:       inst.Domain,
			RawScore:     raw,
		})
	}
	return scores, nil
}

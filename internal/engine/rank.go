package engine

import (
	"sort"

	"mentara/internal/model"
)

// Blend split between the structured composite and the conversation-derived
// score when transcript signals are present.
const (
	structuredBlendWeight   = 0.7
	conversationBlendWeight = 0.3
)

// Rank scores every candidate against the client profile and orders them
// best-first. When conversation signals are present the final score blends
// the structured composite with the normalized conversation total, and each
// result carries the shared signals so the UI can explain both halves.
// Stateless and idempotent: same inputs, same order, same scores.
func Rank(client ClientProfile, candidates []model.TherapistProfile, signals *model.ConversationSignals, w Weights) ([]model.MatchResult, error) {
	if len(candidates) == 0 {
		return nil, &InvalidInputError{Field: "candidates", Reason: "empty candidate list"}
	}

	results := make([]model.MatchResult, 0, len(candidates))
	for _, t := range candidates {
		res := ScoreMatch(client, t, w)
		if signals != nil {
			conversationScore := float64(signals.Factors.Total) / ConversationTotalCap * 100
			res.FinalScore = res.CompositeScore*structuredBlendWeight + conversationScore*conversationBlendWeight
			res.ConversationMatch = signals
		}
		results = append(results, res)
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].FinalScore != results[j].FinalScore {
			return results[i].FinalScore > results[j].FinalScore
		}
		if results[i].Breakdown.ReviewScore != results[j].Breakdown.ReviewScore {
			return results[i].Breakdown.ReviewScore > results[j].Breakdown.ReviewScore
		}
		return results[i].TherapistID < results[j].TherapistID
	})
	return results, nil
}

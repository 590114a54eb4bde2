package engine

import (
	"sort"
	"strings"

	"mentara/internal/model"
)

// Conversation factor ceilings.
const (
	sentimentCap     = 15
	conditionCap     = 20
	preferenceCap    = 15
	communicationCap = 10

	// ConversationTotalCap bounds the factor sum used when blending with
	// the structured composite score.
	ConversationTotalCap = sentimentCap + conditionCap + preferenceCap + communicationCap
)

const noConversationData = "No conversation data available"

// ExtractSignals scans the client-authored portion of a transcript for
// sentiment polarity, condition keywords, approach preferences and
// communication style. Pure function: same transcript, same signals. An
// empty or therapist-only transcript yields zero factors rather than an
// error so ranking can proceed on structured data alone.
func ExtractSignals(transcript []model.TranscriptMessage) model.ConversationSignals {
	var clientMessages []string
	for _, m := range transcript {
		if m.Author == model.AuthorClient && strings.TrimSpace(m.Text) != "" {
			clientMessages = append(clientMessages, m.Text)
		}
	}
	if len(clientMessages) == 0 {
		return model.ConversationSignals{
			Explanation: model.ConversationExplanation{
				SentimentMatch:     noConversationData,
				CommunicationMatch: noConversationData,
			},
		}
	}

	text := strings.ToLower(strings.Join(clientMessages, " "))

	sentiment, sentimentExpl := scoreSentiment(text)
	conditionMatches := matchTerms(text, conditionTaxonomyTerms())
	preferenceMatches := matchTerms(text, approachTaxonomy)
	style, styleExpl := scoreCommunicationStyle(clientMessages)

	conditions := min(conditionCap, 4*len(conditionMatches))
	preferences := min(preferenceCap, 5*len(preferenceMatches))

	factors := model.ConversationFactors{
		SentimentAlignment:       sentiment,
		MentionedConditionsMatch: conditions,
		PreferenceAlignment:      preferences,
		CommunicationStyleMatch:  style,
	}
	factors.Total = factors.SentimentAlignment + factors.MentionedConditionsMatch +
		factors.PreferenceAlignment + factors.CommunicationStyleMatch

	return model.ConversationSignals{
		Factors: factors,
		Explanation: model.ConversationExplanation{
			SentimentMatch:     sentimentExpl,
			ConditionMatches:   conditionMatches,
			PreferenceMatches:  preferenceMatches,
			CommunicationMatch: styleExpl,
		},
	}
}

// scoreSentiment classifies polarity on the distress-disclosure scale. More
// disclosed distress scores higher: it gives the matcher a clearer picture,
// it is not a clinical judgment. Crisis terms pin the ceiling outright.
func scoreSentiment(text string) (int, string) {
	for _, term := range crisisTerms {
		if strings.Contains(text, term) {
			return sentimentCap, "Crisis-level distress language detected"
		}
	}

	neg := countTerms(text, negativeTerms)
	pos := countTerms(text, positiveTerms)
	switch {
	case neg > pos:
		return min(sentimentCap, 8+2*neg), "Significant distress disclosed"
	case pos > neg:
		return 5, "Positive outlook expressed"
	default:
		return 8, "Neutral emotional tone"
	}
}

// scoreCommunicationStyle buckets the client by average words per message.
func scoreCommunicationStyle(messages []string) (int, string) {
	words := 0
	for _, m := range messages {
		words += len(strings.Fields(m))
	}
	avg := float64(words) / float64(len(messages))
	switch {
	case avg >= 40:
		return communicationCap, "Expressive, detailed communicator"
	case avg >= 15:
		return 7, "Balanced communicator"
	case avg >= 8:
		return 6, "Direct communicator"
	default:
		return 4, "Brief communicator"
	}
}

// matchTerms returns the distinct taxonomy terms present in the text,
// ordered by first appearance.
func matchTerms(text string, terms []string) []string {
	type hit struct {
		term string
		pos  int
	}
	var hits []hit
	for _, term := range terms {
		if pos := strings.Index(text, term); pos >= 0 {
			hits = append(hits, hit{term: term, pos: pos})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].pos < hits[j].pos })

	out := make([]string, 0, len(hits))
	for _, h := range hits {
		out = append(out, h.term)
	}
	return out
}

func countTerms(text string, terms []string) int {
	n := 0
	for _, term := range terms {
		if strings.Contains(text, term) {
			n++
		}
	}
	return n
}

func conditionTaxonomyTerms() []string {
	terms := make([]string, len(conditionTaxonomy))
	for i, c := range conditionTaxonomy {
		terms[i] = c.Term
	}
	return terms
}

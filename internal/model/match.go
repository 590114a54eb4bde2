package model

// ScoreBreakdown holds the five structured matching sub-scores, each 0-100.
type ScoreBreakdown struct {
	ConditionScore  float64 `json:"conditionScore"`
	ApproachScore   float64 `json:"approachScore"`
	ExperienceScore float64 `json:"experienceScore"`
	ReviewScore     float64 `json:"reviewScore"`
	LogisticsScore  float64 `json:"logisticsScore"`
}

// MatchExplanation names the matched domains and approaches (not just
// counts) so the UI can render why a therapist ranked where it did.
type MatchExplanation struct {
	PrimaryMatches   []string `json:"primaryMatches"`
	SecondaryMatches []string `json:"secondaryMatches"`
	ApproachMatches  []string `json:"approachMatches"`
	ExperienceYears  int      `json:"experienceYears"`
	AverageRating    float64  `json:"averageRating"`
	TotalReviews     int      `json:"totalReviews"`
}

// MatchResult is the scored outcome for one (client, therapist) pair.
// Ephemeral: recomputed per ranking request. ConversationMatch is present
// only when transcript data was supplied with the request.
type MatchResult struct {
	TherapistID       string               `json:"therapistId"`
	CompositeScore    float64              `json:"compositeScore"`
	FinalScore        float64              `json:"finalScore"`
	Breakdown         ScoreBreakdown       `json:"breakdown"`
	Explanation       MatchExplanation     `json:"explanation"`
	ConversationMatch *ConversationSignals `json:"conversationMatch,omitempty"`
}

// RecommendationRequest is the caller-supplied input for a ranking run.
type RecommendationRequest struct {
	Transcript  []TranscriptMessage `json:"transcript,omitempty"`
	Preferences ClientPreferences   `json:"preferences"`
	Limit       int                 `json:"limit,omitempty"`
}

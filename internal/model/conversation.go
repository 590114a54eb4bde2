package model

import "time"

// Transcript message authorship. Only client-authored messages carry
// matching signal; therapist and system messages are ignored.
const (
	AuthorClient = "client"
	AuthorOther  = "other"
)

// TranscriptMessage is one entry of an onboarding/chat transcript supplied
// by the caller.
type TranscriptMessage struct {
	Author    string    `json:"author"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// ConversationFactors holds the four bounded sub-scores extracted from a
// transcript. Total is always the arithmetic sum of the four factors.
type ConversationFactors struct {
	SentimentAlignment       int `json:"sentimentAlignment"`       // 0-15
	MentionedConditionsMatch int `json:"mentionedConditionsMatch"` // 0-20
	PreferenceAlignment      int `json:"preferenceAlignment"`      // 0-15
	CommunicationStyleMatch  int `json:"communicationStyleMatch"`  // 0-10
	Total                    int `json:"total"`                    // 0-60
}

// ConversationExplanation echoes the literal matched keywords, deduplicated
// in first-seen order, for UI consumption.
type ConversationExplanation struct {
	SentimentMatch     string   `json:"sentimentMatch"`
	ConditionMatches   []string `json:"conditionMatches"`
	PreferenceMatches  []string `json:"preferenceMatches"`
	CommunicationMatch string   `json:"communicationMatch"`
}

// ConversationSignals is the full extractor output for one transcript.
type ConversationSignals struct {
	Factors     ConversationFactors     `json:"factors"`
	Explanation ConversationExplanation `json:"explanation"`
}

package model

import "time"

// AnswerVectorLength is the fixed size of a pre-assessment submission.
const AnswerVectorLength = 201

// Answer value bounds (5-point Likert scale, never..always).
const (
	AnswerMin = 0
	AnswerMax = 4
)

// Severity is the overall three-tier risk classification.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityModerate Severity = "moderate"
	SeverityHigh     Severity = "high"
)

// RiskProfile is the aggregated cross-instrument summary derived from one
// assessment submission. Field names are a stable contract consumed by the
// presentation layer.
type RiskProfile struct {
	OverallSeverity          Severity           `json:"overallSeverity" bson:"overallSeverity"`
	PerDomainSeverity        map[string]float64 `json:"perDomainSeverity" bson:"perDomainSeverity"`
	RiskFactors              []string           `json:"riskFactors" bson:"riskFactors"`
	RecommendedInterventions []string           `json:"recommendedInterventions" bson:"recommendedInterventions"`
	Confidence               float64            `json:"confidence" bson:"confidence"`
}

// Assessment is a scored submission persisted for a client. The answer
// vector is immutable after submission; subscales and the risk profile are
// derived from it in full whenever it is (re)scored.
type Assessment struct {
	ID          string          `json:"id" bson:"_id,omitempty"`
	ClientID    string          `json:"clientId" bson:"clientId"`
	Answers     []int           `json:"answers" bson:"answers"`
	Subscales   []SubscaleScore `json:"subscales" bson:"subscales"`
	RiskProfile *RiskProfile    `json:"riskProfile" bson:"riskProfile"`
	SubmittedAt time.Time       `json:"submittedAt" bson:"submittedAt"`
}

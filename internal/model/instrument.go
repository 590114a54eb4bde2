package model

// SeverityCutoff maps the lower bound of a raw-score band to its clinical
// severity label. Cutoffs for an instrument are ordered ascending by
// LowerBound; the first cutoff always starts at the instrument's minimum.
type SeverityCutoff struct {
	Label      string `json:"label"`
	LowerBound int    `json:"lowerBound"`
}

// Instrument is the immutable definition of one clinical questionnaire
// inside the 201-slot pre-assessment vector.
type Instrument struct {
	ID         string           `json:"id"`
	Name       string           `json:"name"`
	Domain     string           `json:"domain"`
	ItemCount  int              `json:"itemCount"`
	StartIndex int              `json:"startIndex"`
	EndIndex   int              `json:"endIndex"` // inclusive
	MinScore   int              `json:"minScore"`
	MaxScore   int              `json:"maxScore"`
	Cutoffs    []SeverityCutoff `json:"severityCutoffs"`
}

// SubscaleScore is the summed raw score for one instrument, with the
// severity label attached once classification has run. Derived data:
// recomputed from the answer vector, never edited in place.
type SubscaleScore struct {
	InstrumentID  string `json:"instrumentId" bson:"instrumentId"`
	Domain        string `json:"domain" bson:"domain"`
	RawScore      int    `json:"rawScore" bson:"rawScore"`
	SeverityLabel string `json:"severityLabel,omitempty" bson:"severityLabel,omitempty"`
}

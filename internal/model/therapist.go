package model

import "time"

// Price bands a therapist can advertise.
const (
	PriceBandLow      = "low"
	PriceBandStandard = "standard"
	PriceBandPremium  = "premium"
)

// TherapistProfile is a candidate record supplied by the roster store. The
// engine consumes these; it never fetches or mutates them itself.
type TherapistProfile struct {
	ID                string    `json:"id" bson:"_id,omitempty"`
	Name              string    `json:"name" bson:"name"`
	Specialties       []string  `json:"specialties" bson:"specialties"` // condition domain tags
	Approaches        []string  `json:"approaches" bson:"approaches"`
	YearsOfExperience int       `json:"yearsOfExperience" bson:"yearsOfExperience"`
	AverageRating     float64   `json:"averageRating" bson:"averageRating"` // 0-5
	ReviewCount       int       `json:"reviewCount" bson:"reviewCount"`
	Languages         []string  `json:"languages" bson:"languages"`
	Modalities        []string  `json:"modalities" bson:"modalities"` // online, in-person
	PriceBand         string    `json:"priceBand" bson:"priceBand"`
	Availability      string    `json:"availability" bson:"availability"` // weekday, evening, weekend
	CreatedAt         time.Time `json:"createdAt" bson:"createdAt"`
}

// ClientPreferences are the stated (not inferred) matching preferences a
// client supplies during onboarding.
type ClientPreferences struct {
	PreferredApproaches []string `json:"preferredApproaches"`
	Language            string   `json:"language,omitempty"`
	Modality            string   `json:"modality,omitempty"`
	PriceBand           string   `json:"priceBand,omitempty"`
}

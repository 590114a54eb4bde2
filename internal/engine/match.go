package engine

import (
	"strings"

	"mentara/internal/model"
)

// Review and experience scoring constants.
const (
	experienceCeilingYears = 15
	minReviewSample        = 5
	lowSampleReviewCap     = 70.0
	neutralReviewScore     = 50.0
)

// Logistics sub-weights (language, modality, price band). Unstated client
// dimensions earn full credit: not expressing a preference is not a mismatch.
const (
	languageWeight  = 40.0
	modalityWeight  = 30.0
	priceBandWeight = 30.0
)

// primaryDomainWeight splits explanation matches: domains at or above this
// common severity weight are primary concerns, the rest secondary.
const primaryDomainWeight = 4

// Weights are the composite blend across the five structured sub-scores.
// They must sum to 1.0.
type Weights struct {
	Condition  float64
	Approach   float64
	Experience float64
	Review     float64
	Logistics  float64
}

// DefaultWeights prioritize clinical fit over logistics.
var DefaultWeights = Weights{
	Condition:  0.35,
	Approach:   0.20,
	Experience: 0.15,
	Review:     0.15,
	Logistics:  0.15,
}

// ClientProfile is the matching-side view of a scored assessment: flagged
// domains with their severity weights, plus stated preferences.
type ClientProfile struct {
	FlaggedDomains []string
	DomainWeights  map[string]int
	Preferences    model.ClientPreferences
}

// BuildClientProfile folds a risk profile and its labelled subscales into
// the shape the match scorer consumes.
func BuildClientProfile(rp *model.RiskProfile, subscales []model.SubscaleScore, prefs model.ClientPreferences) ClientProfile {
	weights := make(map[string]int, len(subscales))
	for _, s := range subscales {
		weights[s.Domain] = severityWeightFor(s.SeverityLabel)
	}
	profile := ClientProfile{
		DomainWeights: weights,
		Preferences:   prefs,
	}
	if rp != nil {
		profile.FlaggedDomains = rp.RiskFactors
	}
	return profile
}

// ScoreMatch compares one client profile against one therapist, producing
// the weighted composite with its per-factor breakdown and explanation.
// Conversation fields are left empty; the ranker attaches them.
func ScoreMatch(client ClientProfile, therapist model.TherapistProfile, w Weights) model.MatchResult {
	condition, primary, secondary := scoreCondition(client, therapist)
	approach, approachMatches := scoreApproach(client.Preferences.PreferredApproaches, therapist.Approaches)
	experience := scoreExperience(therapist.YearsOfExperience)
	review := scoreReview(therapist.AverageRating, therapist.ReviewCount)
	logistics := scoreLogistics(client.Preferences, therapist)

	breakdown := model.ScoreBreakdown{
		ConditionScore:  condition,
		ApproachScore:   approach,
		ExperienceScore: experience,
		ReviewScore:     review,
		LogisticsScore:  logistics,
	}
	composite := condition*w.Condition + approach*w.Approach +
		experience*w.Experience + review*w.Review + logistics*w.Logistics

	return model.MatchResult{
		TherapistID:    therapist.ID,
		CompositeScore: composite,
		FinalScore:     composite,
		Breakdown:      breakdown,
		Explanation: model.MatchExplanation{
			PrimaryMatches:   primary,
			SecondaryMatches: secondary,
			ApproachMatches:  approachMatches,
			ExperienceYears:  therapist.YearsOfExperience,
			AverageRating:    therapist.AverageRating,
			TotalReviews:     therapist.ReviewCount,
		},
	}
}

// scoreCondition is the flagged-domain overlap. A client with no flagged
// domains scores every therapist 100: an unremarkable profile is not
// penalized for specialties it does not need.
func scoreCondition(client ClientProfile, therapist model.TherapistProfile) (float64, []string, []string) {
	if len(client.FlaggedDomains) == 0 {
		return 100, nil, nil
	}

	specialties := make(map[string]bool, len(therapist.Specialties))
	for _, s := range therapist.Specialties {
		specialties[strings.ToLower(s)] = true
	}

	var primary, secondary []string
	matched := 0
	for _, domain := range client.FlaggedDomains {
		if !specialties[strings.ToLower(domain)] {
			continue
		}
		matched++
		if client.DomainWeights[domain] >= primaryDomainWeight {
			primary = append(primary, domain)
		} else {
			secondary = append(secondary, domain)
		}
	}
	return float64(matched) / float64(len(client.FlaggedDomains)) * 100, primary, secondary
}

func scoreApproach(preferred, offered []string) (float64, []string) {
	offeredSet := make(map[string]bool, len(offered))
	for _, a := range offered {
		offeredSet[strings.ToLower(a)] = true
	}

	var matches []string
	for _, p := range preferred {
		if offeredSet[strings.ToLower(p)] {
			matches = append(matches, p)
		}
	}
	return float64(len(matches)) / float64(max(1, len(preferred))) * 100, matches
}

// scoreExperience is linear up to the ceiling, then flat at 100.
func scoreExperience(years int) float64 {
	if years >= experienceCeilingYears {
		return 100
	}
	if years <= 0 {
		return 0
	}
	return float64(years) / experienceCeilingYears * 100
}

// scoreReview maps the 0-5 rating linearly onto 0-100. No reviews yet gets
// a neutral floor rather than zero, and a sample below the minimum caps the
// score so one five-star review cannot outrank an established record.
func scoreReview(rating float64, count int) float64 {
	if count <= 0 {
		return neutralReviewScore
	}
	score := rating / 5 * 100
	if count < minReviewSample && score > lowSampleReviewCap {
		return lowSampleReviewCap
	}
	return score
}

func scoreLogistics(prefs model.ClientPreferences, therapist model.TherapistProfile) float64 {
	score := 0.0

	if prefs.Language == "" || containsFold(therapist.Languages, prefs.Language) {
		score += languageWeight
	}
	if prefs.Modality == "" || containsFold(therapist.Modalities, prefs.Modality) {
		score += modalityWeight
	}
	if prefs.PriceBand == "" || strings.EqualFold(prefs.PriceBand, therapist.PriceBand) {
		score += priceBandWeight
	}
	return score
}

func containsFold(haystack []string, needle string) bool {
	for _, h := range haystack {
		if strings.EqualFold(h, needle) {
			return true
		}
	}
	return false
}

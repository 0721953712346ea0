package pipeline

import "github.com/LakshyaPrd/cv-screening-new/internal/types"

// Confidence point values. Each populated signal adds its points; the sum is
// capped at 100. The rule is monotone: populating more fields never lowers
// the score.
const (
	pointsName          = 10
	pointsSummary       = 15
	pointsAnyExperience = 25
	pointsDeepHistory   = 10
	pointsAnyProject    = 15
	pointsSkillSpread   = 15
	pointsEducation     = 10

	minSummaryChars  = 20
	deepHistoryCount = 3
	skillSpreadCount = 3

	// ConfidenceThreshold separates success from low_confidence status
	ConfidenceThreshold = 60
)

// ScoreConfidence computes the additive confidence score for a profile
func ScoreConfidence(profile *types.ExtractedProfile) int {
	score := 0
	if profile.Name != "" {
		score += pointsName
	}
	if len(profile.Summary) > minSummaryChars {
		score += pointsSummary
	}
	if len(profile.WorkHistory) > 0 {
		score += pointsAnyExperience
	}
	if len(profile.WorkHistory) >= deepHistoryCount {
		score += pointsDeepHistory
	}
	if len(profile.Projects) > 0 {
		score += pointsAnyProject
	}
	if len(profile.Skills) > skillSpreadCount {
		score += pointsSkillSpread
	}
	if len(profile.Education) > 0 {
		score += pointsEducation
	}
	if score > 100 {
		score = 100
	}
	return score
}

// ApplyConfidence stamps the profile's confidence score and advisory status
func ApplyConfidence(profile *types.ExtractedProfile) {
	profile.Confidence = ScoreConfidence(profile)
	if profile.Confidence >= ConfidenceThreshold {
		profile.Status = types.StatusSuccess
	} else {
		profile.Status = types.StatusLowConfidence
	}
}

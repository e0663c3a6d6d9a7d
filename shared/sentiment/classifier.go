package sentiment

import (
	"strings"

	"moodtunes/internal/models"
)

// Fixed keyword phrases, one per mood bucket. The classifier always emits
// exactly one of these, never a blend.
const (
	PositiveKeywords = "happy upbeat music"
	NegativeKeywords = "sad acoustic songs"
	NeutralKeywords  = "chill lofi music"
)

// Classification thresholds. Tunable policy values carried over from the
// original product behavior, not derived from anything; if they are ever
// retuned so the positive and negative conditions overlap, rule order
// (positive first) decides.
const (
	scoreThreshold       = 1
	comparativeThreshold = 0.1
	confidenceDivisor    = 5.0
	neutralConfidence    = 0.5
)

// reliabilityFloor is the advisory confidence minimum checked by IsReliable.
const reliabilityFloor = 0.2

// Classify maps a sentiment result to a mood bucket. Pure and total: every
// input yields one of the three categories with confidence in [0,1] and the
// bucket's fixed keyword phrase.
func Classify(result models.SentimentResult) models.MoodClassification {
	switch {
	case result.Score > scoreThreshold || result.Comparative > comparativeThreshold:
		return models.MoodClassification{
			Category:   models.MoodPositive,
			Confidence: scaledConfidence(result.Score),
			Keywords:   PositiveKeywords,
		}
	case result.Score < -scoreThreshold || result.Comparative < -comparativeThreshold:
		return models.MoodClassification{
			Category:   models.MoodNegative,
			Confidence: scaledConfidence(result.Score),
			Keywords:   NegativeKeywords,
		}
	default:
		return models.MoodClassification{
			Category:   models.MoodNeutral,
			Confidence: neutralConfidence,
			Keywords:   NeutralKeywords,
		}
	}
}

func scaledConfidence(score int) float64 {
	if score < 0 {
		score = -score
	}
	confidence := float64(score) / confidenceDivisor
	if confidence > 1 {
		return 1
	}
	if confidence < 0 {
		return 0
	}
	return confidence
}

// IsReliable is an advisory check on a classification. Unreliable
// classifications are logged by the caller but still propagate unchanged;
// the gate observes, it never corrects.
func IsReliable(c models.MoodClassification) (bool, string) {
	if !c.Category.Valid() {
		return false, "category outside known buckets"
	}
	if c.Confidence < reliabilityFloor {
		return false, "confidence below floor"
	}
	if strings.TrimSpace(c.Keywords) == "" {
		return false, "empty keyword phrase"
	}
	return true, ""
}

package models

// MoodCategory is one of the three fixed sentiment buckets.
type MoodCategory string

const (
	MoodPositive MoodCategory = "positive"
	MoodNegative MoodCategory = "negative"
	MoodNeutral  MoodCategory = "neutral"
)

// Valid reports whether the category is one of the three known buckets.
func (m MoodCategory) Valid() bool {
	switch m {
	case MoodPositive, MoodNegative, MoodNeutral:
		return true
	}
	return false
}

// SentimentResult is the output of a single scoring pass over mood text.
type SentimentResult struct {
	Score        int      `json:"score"`
	Comparative  float64  `json:"comparative"` // score normalized by token count
	Tokens       []string `json:"tokens"`
	PositiveHits []string `json:"positive_hits"`
	NegativeHits []string `json:"negative_hits"`
}

// MoodClassification maps a sentiment result onto a mood bucket with a
// confidence value and the fixed keyword phrase used for video search.
type MoodClassification struct {
	Category   MoodCategory `json:"category"`
	Confidence float64      `json:"confidence"` // clamped to [0,1]
	Keywords   string       `json:"keywords"`
}

package sentiment

import (
	"testing"

	"moodtunes/internal/models"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name           string
		result         models.SentimentResult
		wantCategory   models.MoodCategory
		wantConfidence float64
		wantKeywords   string
	}{
		{
			name:           "ScoreAboveThreshold",
			result:         models.SentimentResult{Score: 3, Comparative: 0.05},
			wantCategory:   models.MoodPositive,
			wantConfidence: 0.6,
			wantKeywords:   PositiveKeywords,
		},
		{
			name:           "ComparativeAboveThreshold",
			result:         models.SentimentResult{Score: 1, Comparative: 0.5},
			wantCategory:   models.MoodPositive,
			wantConfidence: 0.2,
			wantKeywords:   PositiveKeywords,
		},
		{
			name:           "ScoreBelowThreshold",
			result:         models.SentimentResult{Score: -4, Comparative: -0.05},
			wantCategory:   models.MoodNegative,
			wantConfidence: 0.8,
			wantKeywords:   NegativeKeywords,
		},
		{
			name:           "ComparativeBelowThreshold",
			result:         models.SentimentResult{Score: -1, Comparative: -0.2},
			wantCategory:   models.MoodNegative,
			wantConfidence: 0.2,
			wantKeywords:   NegativeKeywords,
		},
		{
			name:           "NeutralZero",
			result:         models.SentimentResult{Score: 0, Comparative: 0},
			wantCategory:   models.MoodNeutral,
			wantConfidence: 0.5,
			wantKeywords:   NeutralKeywords,
		},
		{
			name:           "NeutralBoundaryScoreOne",
			result:         models.SentimentResult{Score: 1, Comparative: 0.1},
			wantCategory:   models.MoodNeutral,
			wantConfidence: 0.5,
			wantKeywords:   NeutralKeywords,
		},
		{
			name:           "NeutralBoundaryScoreMinusOne",
			result:         models.SentimentResult{Score: -1, Comparative: -0.1},
			wantCategory:   models.MoodNeutral,
			wantConfidence: 0.5,
			wantKeywords:   NeutralKeywords,
		},
		{
			name:           "ConfidenceClampedAtOne",
			result:         models.SentimentResult{Score: 25, Comparative: 1},
			wantCategory:   models.MoodPositive,
			wantConfidence: 1,
			wantKeywords:   PositiveKeywords,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.result)
			if got.Category != tt.wantCategory {
				t.Errorf("Category = %s, want %s", got.Category, tt.wantCategory)
			}
			if got.Confidence != tt.wantConfidence {
				t.Errorf("Confidence = %f, want %f", got.Confidence, tt.wantConfidence)
			}
			if got.Keywords != tt.wantKeywords {
				t.Errorf("Keywords = %q, want %q", got.Keywords, tt.wantKeywords)
			}
		})
	}
}

func TestClassifyIsTotal(t *testing.T) {
	// Sweep a range of results and check the output invariants hold for
	// every one of them.
	for score := -30; score <= 30; score++ {
		for _, comp := range []float64{-2, -0.11, -0.1, 0, 0.1, 0.11, 2} {
			got := Classify(models.SentimentResult{Score: score, Comparative: comp})
			if !got.Category.Valid() {
				t.Fatalf("Classify(%d, %f) produced category %q", score, comp, got.Category)
			}
			if got.Confidence < 0 || got.Confidence > 1 {
				t.Fatalf("Classify(%d, %f) confidence %f out of [0,1]", score, comp, got.Confidence)
			}
			if got.Keywords == "" {
				t.Fatalf("Classify(%d, %f) produced empty keywords", score, comp)
			}
		}
	}
}

func TestIsReliable(t *testing.T) {
	tests := []struct {
		name           string
		classification models.MoodClassification
		want           bool
	}{
		{
			name:           "HealthyClassification",
			classification: models.MoodClassification{Category: models.MoodPositive, Confidence: 0.6, Keywords: PositiveKeywords},
			want:           true,
		},
		{
			name:           "LowConfidence",
			classification: models.MoodClassification{Category: models.MoodPositive, Confidence: 0.1, Keywords: PositiveKeywords},
			want:           false,
		},
		{
			name:           "UnknownCategory",
			classification: models.MoodClassification{Category: "confused", Confidence: 0.9, Keywords: PositiveKeywords},
			want:           false,
		},
		{
			name:           "BlankKeywords",
			classification: models.MoodClassification{Category: models.MoodNeutral, Confidence: 0.5, Keywords: "   "},
			want:           false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, reason := IsReliable(tt.classification)
			if got != tt.want {
				t.Errorf("IsReliable() = %v (%s), want %v", got, reason, tt.want)
			}
			if !got && reason == "" {
				t.Error("unreliable classification must carry a reason")
			}
		})
	}
}

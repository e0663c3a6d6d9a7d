// Package discovery coordinates the mood-to-music pipeline: validate the
// mood text, score and classify it, query the video source for the
// classifier's keyword phrase, normalize the payload, and assemble the
// response. Steps run strictly in sequence and short-circuit on the first
// failure.
package discovery

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"moodtunes/discovery/youtube"
	"moodtunes/internal/models"
	"moodtunes/shared/apperrors"
	"moodtunes/shared/sentiment"
)

const (
	minMoodLength = 3
	maxMoodLength = 500

	// DefaultLanguage applies when a caller hands the orchestrator an empty
	// language code.
	DefaultLanguage = "id"

	// upstreamTimeout bounds the single suspension point, the video source
	// call.
	upstreamTimeout = 10 * time.Second
)

// VideoSource is the external gateway the orchestrator fetches raw items
// from. Failures must come back already classified.
type VideoSource interface {
	Fetch(ctx context.Context, query models.VideoQuery) ([]models.RawVideoItem, error)
}

// Orchestrator wires the pipeline components together. All collaborators
// are constructed at startup and injected; the orchestrator itself holds no
// mutable state and is safe for concurrent requests.
type Orchestrator struct {
	scorer sentiment.Scorer
	source VideoSource
}

func NewOrchestrator(scorer sentiment.Scorer, source VideoSource) *Orchestrator {
	return &Orchestrator{scorer: scorer, source: source}
}

// Discover runs the full pipeline for one request.
func (o *Orchestrator) Discover(ctx context.Context, moodText, language string) (*models.DiscoveryResponse, error) {
	start := time.Now()

	mood := strings.TrimSpace(moodText)
	if length := len([]rune(mood)); length < minMoodLength || length > maxMoodLength {
		return nil, apperrors.Validation(fmt.Sprintf(
			"Mood description must be between %d and %d characters.", minMoodLength, maxMoodLength))
	}

	if language == "" {
		language = DefaultLanguage
	}

	stepStart := time.Now()
	result, err := o.scorer.Score(mood)
	if err != nil {
		return nil, err
	}
	classification := sentiment.Classify(*result)
	if ok, reason := sentiment.IsReliable(classification); !ok {
		// Advisory only; the classification still propagates unchanged.
		slog.WarnContext(ctx, "unreliable mood classification",
			"reason", reason,
			"category", string(classification.Category),
			"confidence", classification.Confidence)
	}
	slog.DebugContext(ctx, "mood classified",
		"scorer", o.scorer.Name(),
		"score", result.Score,
		"comparative", result.Comparative,
		"category", string(classification.Category),
		"duration_ms", time.Since(stepStart).Milliseconds())

	region := ResolveRegion(language)
	query := youtube.BuildQuery(classification.Keywords, region)

	stepStart = time.Now()
	fetchCtx, cancel := context.WithTimeout(ctx, upstreamTimeout)
	defer cancel()
	items, err := o.source.Fetch(fetchCtx, query)
	if err != nil {
		return nil, apperrors.Classify(err)
	}
	slog.DebugContext(ctx, "videos fetched",
		"shape", string(query.Shape),
		"region", region,
		"items", len(items),
		"duration_ms", time.Since(stepStart).Milliseconds())

	transformed := youtube.Transform(items)
	if !transformed.Valid() {
		slog.WarnContext(ctx, "no usable videos in payload",
			"dropped", transformed.DroppedCount,
			"reasons", strings.Join(transformed.Reasons, "; "))
		return nil, apperrors.API("", fmt.Errorf("no valid videos: %s", strings.Join(transformed.Reasons, "; ")))
	}
	if transformed.DroppedCount > 0 {
		slog.DebugContext(ctx, "dropped invalid videos",
			"dropped", transformed.DroppedCount,
			"reasons", strings.Join(transformed.Reasons, "; "))
	}

	slog.InfoContext(ctx, "discovery completed",
		"category", string(classification.Category),
		"videos", len(transformed.Videos),
		"dropped", transformed.DroppedCount,
		"duration_ms", time.Since(start).Milliseconds())

	return &models.DiscoveryResponse{
		Success: true,
		Data:    transformed.Videos,
		MoodAnalysis: &models.MoodSummary{
			Sentiment: classification.Category,
			Score:     round2(classification.Confidence),
			Keywords:  classification.Keywords,
		},
	}, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

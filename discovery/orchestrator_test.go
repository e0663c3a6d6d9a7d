package discovery

import (
	"context"
	"strings"
	"testing"

	"moodtunes/internal/models"
	"moodtunes/shared/apperrors"
	"moodtunes/shared/sentiment"
)

// stubSource records the query it was given and returns canned data.
type stubSource struct {
	items []models.RawVideoItem
	err   error

	calls     int
	lastQuery models.VideoQuery
}

func (s *stubSource) Fetch(ctx context.Context, query models.VideoQuery) ([]models.RawVideoItem, error) {
	s.calls++
	s.lastQuery = query
	if s.err != nil {
		return nil, s.err
	}
	return s.items, nil
}

func rawItem(id string) models.RawVideoItem {
	return models.RawVideoItem{
		ID: id,
		Snippet: &models.RawSnippet{
			Title:        "Track " + id,
			ChannelTitle: "Channel",
			PublishedAt:  "2024-05-01T10:00:00Z",
			Thumbnails: models.RawThumbnails{
				High: &models.RawThumbnail{URL: "https://i.ytimg.com/vi/" + id + "/hq.jpg"},
			},
		},
	}
}

func newTestOrchestrator(source VideoSource) *Orchestrator {
	return NewOrchestrator(sentiment.New(), source)
}

func TestDiscoverPositiveIndonesianMood(t *testing.T) {
	source := &stubSource{items: []models.RawVideoItem{rawItem("a1"), rawItem("a2")}}
	orchestrator := newTestOrchestrator(source)

	response, err := orchestrator.Discover(context.Background(), "Aku sangat senang dan bahagia hari ini", "id")
	if err != nil {
		t.Fatalf("Discover() failed: %v", err)
	}

	if !response.Success {
		t.Fatal("expected success")
	}
	if response.MoodAnalysis.Sentiment != models.MoodPositive {
		t.Errorf("Sentiment = %s, want positive", response.MoodAnalysis.Sentiment)
	}
	if response.MoodAnalysis.Keywords != sentiment.PositiveKeywords {
		t.Errorf("Keywords = %q, want the fixed positive phrase", response.MoodAnalysis.Keywords)
	}
	if source.lastQuery.RegionCode != "ID" {
		t.Errorf("RegionCode = %q, want ID", source.lastQuery.RegionCode)
	}
	if source.lastQuery.Shape != models.ShapeSearch {
		t.Errorf("Shape = %s, want search", source.lastQuery.Shape)
	}
	if len(response.Data) != 2 {
		t.Errorf("Data = %d videos, want 2", len(response.Data))
	}
}

func TestDiscoverValidatesLength(t *testing.T) {
	tests := []struct {
		name string
		mood string
	}{
		{"TooShort", "ok"},
		{"TooShortAfterTrim", "  a  "},
		{"Empty", ""},
		{"TooLong", strings.Repeat("x", 501)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source := &stubSource{items: []models.RawVideoItem{rawItem("a1")}}
			orchestrator := newTestOrchestrator(source)

			_, err := orchestrator.Discover(context.Background(), tt.mood, "en")
			ae, ok := apperrors.AsError(err)
			if !ok || ae.Kind != apperrors.KindValidation {
				t.Fatalf("error = %v, want VALIDATION", err)
			}
			if source.calls != 0 {
				t.Errorf("gateway was called %d times before validation", source.calls)
			}
		})
	}
}

func TestDiscoverBoundaryLengthsAccepted(t *testing.T) {
	for _, mood := range []string{"sad", strings.Repeat("y", 500)} {
		source := &stubSource{items: []models.RawVideoItem{rawItem("a1")}}
		orchestrator := newTestOrchestrator(source)

		if _, err := orchestrator.Discover(context.Background(), mood, "en"); err != nil {
			t.Errorf("Discover(%d chars) failed: %v", len(mood), err)
		}
	}
}

func TestDiscoverDefaultsLanguage(t *testing.T) {
	source := &stubSource{items: []models.RawVideoItem{rawItem("a1")}}
	orchestrator := newTestOrchestrator(source)

	if _, err := orchestrator.Discover(context.Background(), "feeling fine today", ""); err != nil {
		t.Fatalf("Discover() failed: %v", err)
	}
	// Empty language falls back to the orchestrator default, "id".
	if source.lastQuery.RegionCode != "ID" {
		t.Errorf("RegionCode = %q, want ID", source.lastQuery.RegionCode)
	}
}

func TestDiscoverPropagatesGatewayKind(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want apperrors.Kind
	}{
		{"Auth", apperrors.Auth(nil), apperrors.KindAuth},
		{"RateLimit", apperrors.RateLimit(nil), apperrors.KindRateLimit},
		{"Network", apperrors.Network("", nil), apperrors.KindNetwork},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orchestrator := newTestOrchestrator(&stubSource{err: tt.err})

			_, err := orchestrator.Discover(context.Background(), "senang sekali hari ini", "id")
			if got := apperrors.KindOf(err); got != tt.want {
				t.Errorf("Kind = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestDiscoverEmptyPayloadBecomesAPIError(t *testing.T) {
	orchestrator := newTestOrchestrator(&stubSource{items: []models.RawVideoItem{}})

	response, err := orchestrator.Discover(context.Background(), "senang sekali hari ini", "id")
	if response != nil {
		t.Fatal("an empty result set must never be a success")
	}
	if got := apperrors.KindOf(err); got != apperrors.KindAPI {
		t.Errorf("Kind = %s, want API", got)
	}
}

func TestDiscoverDropsInvalidItems(t *testing.T) {
	broken := rawItem("broken")
	broken.Snippet.Thumbnails = models.RawThumbnails{}

	source := &stubSource{items: []models.RawVideoItem{broken, rawItem("ok1")}}
	orchestrator := newTestOrchestrator(source)

	response, err := orchestrator.Discover(context.Background(), "senang sekali hari ini", "id")
	if err != nil {
		t.Fatalf("Discover() failed: %v", err)
	}
	if len(response.Data) != 1 || response.Data[0].ID != "ok1" {
		t.Errorf("Data = %v, want only ok1", response.Data)
	}
}

func TestDiscoverRoundsConfidence(t *testing.T) {
	source := &stubSource{items: []models.RawVideoItem{rawItem("a1")}}
	orchestrator := newTestOrchestrator(source)

	// "senang" alone scores +3 on the lexicon: confidence 3/5 = 0.6.
	response, err := orchestrator.Discover(context.Background(), "senang banget rasanya", "id")
	if err != nil {
		t.Fatalf("Discover() failed: %v", err)
	}
	if response.MoodAnalysis.Score != 0.6 {
		t.Errorf("Score = %v, want 0.6", response.MoodAnalysis.Score)
	}
}

// Package youtube talks to the YouTube Data API v3: it builds one of the
// two query shapes used for mood discovery, executes the call, and
// classifies transport failures into the shared error taxonomy.
package youtube

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"strconv"
	"strings"
	"time"

	"moodtunes/internal/models"
	"moodtunes/shared/apperrors"

	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

// Fixed query parameters shared by both shapes.
const (
	maxResults      = 12
	musicCategoryID = "10"
	safeSearch      = "moderate"
)

type Gateway struct {
	service *youtube.Service
}

// NewGateway builds a key-authenticated client for public data calls.
func NewGateway(ctx context.Context, apiKey string) (*Gateway, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("YouTube API key is required")
	}

	service, err := youtube.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create YouTube service: %w", err)
	}

	return &Gateway{service: service}, nil
}

// BuildQuery chooses the query shape: a keyword phrase selects the search
// shape, an empty phrase falls back to the region's music chart.
func BuildQuery(keywordPhrase, regionCode string) models.VideoQuery {
	shape := models.ShapeSearch
	if strings.TrimSpace(keywordPhrase) == "" {
		shape = models.ShapeChart
	}
	return models.VideoQuery{
		RegionCode:    regionCode,
		KeywordPhrase: strings.TrimSpace(keywordPhrase),
		Shape:         shape,
	}
}

// Fetch executes the query as a single network call and returns the raw
// items. Failures come back classified; a parseable response with zero
// items is an API-kind failure, never an empty success.
func (g *Gateway) Fetch(ctx context.Context, query models.VideoQuery) ([]models.RawVideoItem, error) {
	start := time.Now()

	var (
		items []models.RawVideoItem
		err   error
	)
	switch query.Shape {
	case models.ShapeChart:
		items, err = g.fetchChart(ctx, query.RegionCode)
	default:
		items, err = g.fetchSearch(ctx, query.KeywordPhrase, query.RegionCode)
	}
	if err != nil {
		return nil, classifyCallError(err)
	}

	slog.DebugContext(ctx, "youtube fetch completed",
		"shape", string(query.Shape),
		"region", query.RegionCode,
		"items", len(items),
		"duration_ms", time.Since(start).Milliseconds())

	if len(items) == 0 {
		return nil, apperrors.API("No videos found for this mood. Try describing it differently.", nil)
	}

	return items, nil
}

// fetchChart requests the most popular music videos for the region, with
// statistics in the same call. The videos endpoint has no safe-search
// parameter, so the chart shape carries none.
func (g *Gateway) fetchChart(ctx context.Context, regionCode string) ([]models.RawVideoItem, error) {
	call := g.service.Videos.List([]string{"snippet", "statistics"}).
		Chart("mostPopular").
		VideoCategoryId(musicCategoryID).
		RegionCode(regionCode).
		MaxResults(maxResults).
		Context(ctx)

	response, err := call.Do()
	if err != nil {
		return nil, err
	}

	items := make([]models.RawVideoItem, 0, len(response.Items))
	for _, item := range response.Items {
		raw := models.RawVideoItem{
			ID:      item.Id,
			Snippet: toRawVideoSnippet(item.Snippet),
		}
		if item.Statistics != nil {
			raw.Statistics = &models.RawStatistics{
				ViewCount: strconv.FormatUint(item.Statistics.ViewCount, 10),
				LikeCount: strconv.FormatUint(item.Statistics.LikeCount, 10),
			}
		}
		items = append(items, raw)
	}
	return items, nil
}

// fetchSearch runs the keyword search shape. The search endpoint returns
// metadata only; statistics would need a second call and the product does
// not make one.
func (g *Gateway) fetchSearch(ctx context.Context, phrase, regionCode string) ([]models.RawVideoItem, error) {
	call := g.service.Search.List([]string{"snippet"}).
		Q(phrase).
		Type("video").
		VideoCategoryId(musicCategoryID).
		Order("relevance").
		SafeSearch(safeSearch).
		RegionCode(regionCode).
		MaxResults(maxResults).
		Context(ctx)

	response, err := call.Do()
	if err != nil {
		return nil, err
	}

	items := make([]models.RawVideoItem, 0, len(response.Items))
	for _, item := range response.Items {
		raw := models.RawVideoItem{
			Snippet: toRawSnippet(item.Snippet),
		}
		if item.Id != nil {
			raw.VideoID = item.Id.VideoId
		}
		items = append(items, raw)
	}
	return items, nil
}

func toRawSnippet(snippet *youtube.SearchResultSnippet) *models.RawSnippet {
	if snippet == nil {
		return nil
	}
	return &models.RawSnippet{
		Title:        snippet.Title,
		ChannelTitle: snippet.ChannelTitle,
		PublishedAt:  snippet.PublishedAt,
		Thumbnails:   toRawThumbnails(snippet.Thumbnails),
	}
}

func toRawVideoSnippet(snippet *youtube.VideoSnippet) *models.RawSnippet {
	if snippet == nil {
		return nil
	}
	return &models.RawSnippet{
		Title:        snippet.Title,
		ChannelTitle: snippet.ChannelTitle,
		PublishedAt:  snippet.PublishedAt,
		Thumbnails:   toRawThumbnails(snippet.Thumbnails),
	}
}

func toRawThumbnails(details *youtube.ThumbnailDetails) models.RawThumbnails {
	var thumbs models.RawThumbnails
	if details == nil {
		return thumbs
	}
	if details.High != nil {
		thumbs.High = &models.RawThumbnail{URL: details.High.Url}
	}
	if details.Medium != nil {
		thumbs.Medium = &models.RawThumbnail{URL: details.Medium.Url}
	}
	if details.Default != nil {
		thumbs.Default = &models.RawThumbnail{URL: details.Default.Url}
	}
	return thumbs
}

// quotaReasons are the googleapi 403 reasons that mean "slow down" rather
// than "wrong credentials".
var quotaReasons = map[string]bool{
	"quotaExceeded":         true,
	"rateLimitExceeded":     true,
	"userRateLimitExceeded": true,
	"dailyLimitExceeded":    true,
	"servingLimitExceeded":  true,
}

// classifyCallError maps a failed call into the error taxonomy, keyed on
// structured status codes rather than error text.
func classifyCallError(err error) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case 401:
			return apperrors.Auth(err)
		case 403:
			for _, item := range apiErr.Errors {
				if quotaReasons[item.Reason] {
					return apperrors.RateLimit(err)
				}
			}
			return apperrors.Auth(err)
		case 429:
			return apperrors.RateLimit(err)
		case 404:
			return apperrors.API("", err)
		default:
			return apperrors.API("", err)
		}
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return apperrors.Network("Request to video service timed out.", err)
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return apperrors.Network("", err)
	}

	return apperrors.API("", err)
}

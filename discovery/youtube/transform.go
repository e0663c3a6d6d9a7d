package youtube

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"moodtunes/internal/models"
)

// Defaults applied when the source leaves a field empty. Identity fields
// (id, thumbnail) have no default; items missing them are dropped.
const (
	defaultTitle   = "Untitled"
	defaultChannel = "Unknown Channel"
	defaultCount   = "0"
)

// TransformResult is the outcome of normalizing one raw payload, including
// a data-quality report of what was dropped and why.
type TransformResult struct {
	Videos       []models.CanonicalVideo
	DroppedCount int
	Reasons      []string
}

// Valid reports whether the payload produced at least one usable video.
func (r TransformResult) Valid() bool {
	return len(r.Videos) > 0
}

// Transform normalizes raw source items into canonical videos. Items that
// cannot yield a complete record are dropped whole, never emitted partially
// constructed.
func Transform(items []models.RawVideoItem) TransformResult {
	var result TransformResult

	if len(items) == 0 {
		result.Reasons = append(result.Reasons, "response contained no items")
		return result
	}

	for i, item := range items {
		video, reason := transformItem(item)
		if reason != "" {
			result.DroppedCount++
			result.Reasons = append(result.Reasons, fmt.Sprintf("item %d: %s", i, reason))
			continue
		}
		result.Videos = append(result.Videos, video)
	}

	if len(result.Videos) == 0 {
		result.Reasons = append(result.Reasons, "every item was dropped during mapping")
	}

	return result
}

// transformItem maps one raw item. A non-empty reason means the item was
// dropped.
func transformItem(item models.RawVideoItem) (models.CanonicalVideo, string) {
	id := sanitize(item.ID)
	if id == "" {
		id = sanitize(item.VideoID)
	}
	if id == "" {
		return models.CanonicalVideo{}, "no video id"
	}

	video := models.CanonicalVideo{
		ID:           id,
		Title:        defaultTitle,
		ChannelTitle: defaultChannel,
		PublishedAt:  time.Now().UTC().Format(time.RFC3339),
		ViewCount:    defaultCount,
		LikeCount:    defaultCount,
	}

	var thumbnails models.RawThumbnails
	if item.Snippet != nil {
		thumbnails = item.Snippet.Thumbnails
		if title := sanitize(item.Snippet.Title); title != "" {
			video.Title = title
		}
		if channel := sanitize(item.Snippet.ChannelTitle); channel != "" {
			video.ChannelTitle = channel
		}
		if publishedAt := sanitize(item.Snippet.PublishedAt); publishedAt != "" {
			video.PublishedAt = publishedAt
		}
	}

	thumbnail := selectThumbnail(thumbnails)
	if thumbnail == "" {
		return models.CanonicalVideo{}, "no valid thumbnail"
	}
	video.Thumbnail = thumbnail

	if item.Statistics != nil {
		if viewCount := sanitize(item.Statistics.ViewCount); viewCount != "" {
			video.ViewCount = viewCount
		}
		if likeCount := sanitize(item.Statistics.LikeCount); likeCount != "" {
			video.LikeCount = likeCount
		}
	}

	return video, ""
}

// selectThumbnail picks the first candidate, high to default, that is a
// valid http(s) URL.
func selectThumbnail(thumbs models.RawThumbnails) string {
	for _, candidate := range []*models.RawThumbnail{thumbs.High, thumbs.Medium, thumbs.Default} {
		if candidate == nil {
			continue
		}
		raw := sanitize(candidate.URL)
		if isHTTPURL(raw) {
			return raw
		}
	}
	return ""
}

func isHTTPURL(raw string) bool {
	if raw == "" {
		return false
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (parsed.Scheme == "http" || parsed.Scheme == "https") && parsed.Host != ""
}

var angleBrackets = strings.NewReplacer("<", "", ">", "")

// sanitize trims a string and strips angle brackets before acceptance.
func sanitize(s string) string {
	return strings.TrimSpace(angleBrackets.Replace(s))
}

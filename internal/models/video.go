package models

// RawVideoItem is a single item as returned by the video source, before
// validation. The chart endpoint returns a plain string id while the search
// endpoint nests the id one level down; both forms are carried here and the
// transformer resolves them.
type RawVideoItem struct {
	ID         string         `json:"id,omitempty"`
	VideoID    string         `json:"video_id,omitempty"` // nested form (search results)
	Snippet    *RawSnippet    `json:"snippet,omitempty"`
	Statistics *RawStatistics `json:"statistics,omitempty"`
}

// RawSnippet holds the metadata block of a raw item. Any field may be empty.
type RawSnippet struct {
	Title        string        `json:"title,omitempty"`
	ChannelTitle string        `json:"channelTitle,omitempty"`
	PublishedAt  string        `json:"publishedAt,omitempty"`
	Thumbnails   RawThumbnails `json:"thumbnails,omitempty"`
}

// RawThumbnails carries the three size tiers the source exposes.
type RawThumbnails struct {
	High    *RawThumbnail `json:"high,omitempty"`
	Medium  *RawThumbnail `json:"medium,omitempty"`
	Default *RawThumbnail `json:"default,omitempty"`
}

type RawThumbnail struct {
	URL string `json:"url,omitempty"`
}

// RawStatistics is the optional statistics block. The search endpoint never
// returns it; the chart endpoint usually does.
type RawStatistics struct {
	ViewCount string `json:"viewCount,omitempty"`
	LikeCount string `json:"likeCount,omitempty"`
}

// CanonicalVideo is the validated, normalized record returned to callers.
// Every field is non-empty and Thumbnail is a valid http(s) URL; items that
// cannot satisfy this are dropped, never partially built.
type CanonicalVideo struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	ChannelTitle string `json:"channel_title"`
	Thumbnail    string `json:"thumbnail"`
	PublishedAt  string `json:"published_at"`
	ViewCount    string `json:"view_count"`
	LikeCount    string `json:"like_count"`
}

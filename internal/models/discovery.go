package models

// QueryShape selects which request is sent to the video source.
type QueryShape string

const (
	// ShapeChart asks for the most popular videos in the region's music
	// chart. Used when no keyword phrase is supplied.
	ShapeChart QueryShape = "chart"
	// ShapeSearch runs a keyword search. This is the normal discovery path.
	ShapeSearch QueryShape = "search"
)

// VideoQuery describes one outbound call to the video source.
type VideoQuery struct {
	RegionCode    string     `json:"region_code"`
	KeywordPhrase string     `json:"keyword_phrase"`
	Shape         QueryShape `json:"shape"`
}

// MoodSummary is the sentiment block attached to a successful discovery.
// Score is the classifier confidence rounded to two decimals.
type MoodSummary struct {
	Sentiment MoodCategory `json:"sentiment"`
	Score     float64      `json:"score"`
	Keywords  string       `json:"keywords"`
}

// DiscoveryResponse is the public result of a discovery request. On success
// Data holds the ranked canonical videos and MoodAnalysis the inferred
// sentiment; on failure Error and Code carry the classified failure.
type DiscoveryResponse struct {
	Success      bool             `json:"success"`
	Data         []CanonicalVideo `json:"data,omitempty"`
	MoodAnalysis *MoodSummary     `json:"mood_analysis,omitempty"`
	Error        string           `json:"error,omitempty"`
	Code         string           `json:"code,omitempty"`
}

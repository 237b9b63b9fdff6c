package domain

import "time"

// NewsItem is a single aggregated headline. PublishedAt is ISO-8601 so
// the payload sorts and renders without further normalization.
type NewsItem struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Link        string `json:"link"`
	Source      string `json:"source"`
	PublishedAt string `json:"publishedAt"`
}

// PublishedTime parses PublishedAt, returning the zero time when the
// value is malformed so broken items sort last.
func (n NewsItem) PublishedTime() time.Time {
	t, err := time.Parse(time.RFC3339, n.PublishedAt)
	if err != nil {
		return time.Time{}
	}
	return t
}

// NewsSnapshot is a cached aggregation result with its capture time.
type NewsSnapshot struct {
	News      []NewsItem `json:"news"`
	Timestamp int64      `json:"timestamp"` // epoch millis
}

// CapturedAt returns the capture time of the snapshot.
func (s NewsSnapshot) CapturedAt() time.Time {
	return time.UnixMilli(s.Timestamp)
}

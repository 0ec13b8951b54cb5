package model

import "time"

const (
	SourceTypeRSS  = "rss"
	SourceTypeHTML = "html"
)

// Source is a configured content origin. The pipeline only ever
// mutates LastCrawled; everything else is managed externally.
type Source struct {
	ID          int64
	URL         string
	Vendor      string
	Type        string
	Active      bool
	LastCrawled *time.Time
}

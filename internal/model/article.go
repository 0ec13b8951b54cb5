package model

import "time"

// Category names assigned by the classifier. An article carries one or
// more of these; General is the catch-all when nothing matched.
const (
	CategoryProductLaunch  = "Product Launch"
	CategorySecurityUpdate = "Security Update"
	CategoryMarketTrend    = "Market Trend"
	CategoryPartnership    = "Partnership"
	CategoryAcquisition    = "Acquisition"
	CategoryAIInnovation   = "AI Innovation"
	CategoryGeneral        = "General"
)

// Article is the canonical normalized unit of content. URL is the
// dedup/upsert key; ImageURL is empty when no valid absolute image URL
// was found and is stored as NULL.
type Article struct {
	ID          int64
	Title       string
	Summary     string
	Content     string
	URL         string
	ImageURL    string
	PublishedAt time.Time
	Vendor      string
	Categories  []string
	IsAIRelated bool
	SourceID    int64
}

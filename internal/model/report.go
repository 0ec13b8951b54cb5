package model

const (
	CrawlStatusSuccess = "success"
	CrawlStatusError   = "error"
)

// SourceResult records the outcome of crawling a single source.
type SourceResult struct {
	Source   string
	URL      string
	Status   string
	Error    string
	Articles int
}

// NewArticle identifies an article ingested during the current run,
// in the shape the downstream summarizer consumes.
type NewArticle struct {
	ID      int64
	Title   string
	URL     string
	Content string
}

// CrawlReport is the orchestrator's return value. It carries both call
// shapes: the per-source status list for health reporting, and the flat
// new-items list for the summarization consumer.
type CrawlReport struct {
	RunID       string
	Results     []SourceResult
	NewArticles []NewArticle
}

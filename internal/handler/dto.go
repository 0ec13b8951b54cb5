package handler

type ArticleResponse struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Summary     string   `json:"summary"`
	Content     string   `json:"content"`
	URL         string   `json:"url"`
	ImageURL    string   `json:"image_url,omitempty"`
	PublishedAt string   `json:"published_at"`
	Vendor      string   `json:"vendor"`
	Categories  []string `json:"categories"`
	IsAIRelated bool     `json:"is_ai_related"`
}

type FeedResponse struct {
	Articles []ArticleResponse `json:"articles"`
	Total    int               `json:"total"`
	Limit    int               `json:"limit"`
	Offset   int               `json:"offset"`
}

type SourceResponse struct {
	ID          int64  `json:"id"`
	URL         string `json:"url"`
	Vendor      string `json:"vendor"`
	Type        string `json:"type"`
	Active      bool   `json:"active"`
	LastCrawled string `json:"last_crawled,omitempty"`
}

// BatchSize is a pointer so an omitted field is distinguishable from an
// explicit zero (zero means crawl every active source).
type CrawlRequest struct {
	SourceID  int64 `json:"source_id"`
	BatchSize *int  `json:"batch_size"`
}

type SourceResultResponse struct {
	Source   string `json:"source"`
	URL      string `json:"url"`
	Status   string `json:"status"`
	Error    string `json:"error,omitempty"`
	Articles int    `json:"articles"`
}

type NewArticleResponse struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	URL   string `json:"url"`
}

type CrawlResponse struct {
	RunID       string                 `json:"run_id"`
	Results     []SourceResultResponse `json:"results"`
	NewArticles []NewArticleResponse   `json:"new_articles"`
}

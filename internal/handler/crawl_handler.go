package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/richardawe/erp-world/internal/crawler"
	"github.com/richardawe/erp-world/internal/model"
)

type CrawlRunner interface {
	Run(opts crawler.Options) (*model.CrawlReport, error)
}

type SourceStore interface {
	ListActive() ([]model.Source, error)
}

type CrawlHandler struct {
	runner       CrawlRunner
	sources      SourceStore
	defaultBatch int
}

func NewCrawlHandler(runner CrawlRunner, sources SourceStore, defaultBatch int) *CrawlHandler {
	return &CrawlHandler{runner: runner, sources: sources, defaultBatch: defaultBatch}
}

// TriggerCrawl runs the pipeline on demand. The optional JSON body may
// narrow the run to one source or override the batch size; an omitted
// batch size falls back to the configured bound so manual triggers stay
// batch-limited.
func (h *CrawlHandler) TriggerCrawl(c *gin.Context) {
	var req CrawlRequest

	if c.Request.Body != nil && c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			slog.Warn("malformed crawl request", "error", err)
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}
	}

	batchSize := h.defaultBatch
	if req.BatchSize != nil {
		batchSize = *req.BatchSize
	}

	if req.SourceID < 0 || batchSize < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "source_id and batch_size must be positive"})
		return
	}

	report, err := h.runner.Run(crawler.Options{
		BatchSize: batchSize,
		SourceID:  req.SourceID,
	})
	if err != nil {
		slog.Error("crawl run failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	results := make([]SourceResultResponse, 0, len(report.Results))
	for _, r := range report.Results {
		results = append(results, SourceResultResponse{
			Source:   r.Source,
			URL:      r.URL,
			Status:   r.Status,
			Error:    r.Error,
			Articles: r.Articles,
		})
	}

	newArticles := make([]NewArticleResponse, 0, len(report.NewArticles))
	for _, a := range report.NewArticles {
		newArticles = append(newArticles, NewArticleResponse{
			ID:    a.ID,
			Title: a.Title,
			URL:   a.URL,
		})
	}

	c.JSON(http.StatusOK, CrawlResponse{
		RunID:       report.RunID,
		Results:     results,
		NewArticles: newArticles,
	})
}

func (h *CrawlHandler) GetSources(c *gin.Context) {
	sources, err := h.sources.ListActive()
	if err != nil {
		slog.Error("error fetching sources", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	var res []SourceResponse
	for _, s := range sources {
		source := SourceResponse{
			ID:     s.ID,
			URL:    s.URL,
			Vendor: s.Vendor,
			Type:   s.Type,
			Active: s.Active,
		}
		if s.LastCrawled != nil {
			source.LastCrawled = s.LastCrawled.Format(time.RFC3339)
		}
		res = append(res, source)
	}

	c.JSON(http.StatusOK, res)
}

package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/richardawe/erp-world/internal/model"
)

type ArticleStore interface {
	GetFeed(limit, offset int, vendor, category string, aiOnly bool) ([]model.Article, error)
	GetFeedTotal() (int, error)
}

type ArticleHandler struct {
	repository ArticleStore
}

func NewArticleHandler(repository ArticleStore) *ArticleHandler {
	return &ArticleHandler{repository: repository}
}

func (h *ArticleHandler) GetFeed(c *gin.Context) {
	limit := getQueryLimit(c)
	offset := getQueryOffset(c)
	vendor := c.Query("vendor")
	category := c.Query("category")
	aiOnly := c.Query("ai") == "true"

	articles, err := h.repository.GetFeed(limit, offset, vendor, category, aiOnly)
	if err != nil {
		slog.Error("error fetching feed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	total, err := h.repository.GetFeedTotal()
	if err != nil {
		slog.Error("error fetching feed total", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	var articleRes []ArticleResponse
	for _, a := range articles {
		articleRes = append(articleRes, ArticleResponse{
			ID:          a.ID,
			Title:       a.Title,
			Summary:     a.Summary,
			Content:     a.Content,
			URL:         a.URL,
			ImageURL:    a.ImageURL,
			PublishedAt: a.PublishedAt.Format(time.RFC3339),
			Vendor:      a.Vendor,
			Categories:  a.Categories,
			IsAIRelated: a.IsAIRelated,
		})
	}

	c.JSON(http.StatusOK, FeedResponse{
		Articles: articleRes,
		Total:    total,
		Limit:    limit,
		Offset:   offset,
	})
}

func (h *ArticleHandler) GetHealth(c *gin.Context) {
	_, err := h.repository.GetFeedTotal()
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"database": "disconnected",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"database": "connected",
	})
}

func getQueryInt(name string, defaultValue int, c *gin.Context) int {
	param := c.Query(name)

	if param == "" {
		return defaultValue
	}

	parsed, err := strconv.Atoi(param)
	if err != nil {
		slog.Warn("invalid query parameter, using default", "param", name, "value", param, "error", err)
		return defaultValue
	}

	return parsed
}

func getQueryLimit(c *gin.Context) int {
	const (
		defaultLimit = 10
		maxLimit     = 100
	)

	limit := getQueryInt("limit", defaultLimit, c)
	if limit < 1 {
		slog.Warn("invalid query parameter, using default", "param", "limit", "value", limit, "default", defaultLimit)
		return defaultLimit
	}

	if limit > maxLimit {
		slog.Warn("query parameter exceeds max, clamping", "param", "limit", "value", limit, "max", maxLimit)
		return maxLimit
	}

	return limit
}

func getQueryOffset(c *gin.Context) int {
	offset := getQueryInt("offset", 0, c)
	if offset < 0 {
		slog.Warn("invalid query parameter, using default", "param", "offset", "value", offset, "default", 0)
		return 0
	}
	return offset
}

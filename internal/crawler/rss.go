package crawler

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/richardawe/erp-world/internal/model"
	"github.com/richardawe/erp-world/pkg/classify"
	"github.com/richardawe/erp-world/pkg/dates"
	"github.com/richardawe/erp-world/pkg/scrape"
)

// Vendors whose feeds omit usable images; for these the entry's page
// meta image wins over whatever the feed carries.
var pageImageVendors = map[string]bool{
	"VentureBeat": true,
	"TechCrunch":  true,
}

// crawlFeed ingests one syndication feed. A bad entry is skipped, never
// fatal for the feed; a feed-level failure is returned to the
// orchestrator's per-source loop.
func (p *Pipeline) crawlFeed(source model.Source) ([]model.Article, error) {
	feed, err := p.parser.ParseURL(source.URL)
	if err != nil {
		return nil, fmt.Errorf("parse feed %s: %w", source.URL, err)
	}

	if len(feed.Items) == 0 {
		slog.Warn("no items found in feed", "source", source.Vendor, "url", source.URL)
		return nil, nil
	}

	var saved []model.Article

	for _, item := range feed.Items {
		title := strings.TrimSpace(item.Title)
		link := resolveURL(source.URL, item.Link)
		if title == "" || link == "" {
			slog.Warn("skipping entry missing required fields", "source", source.Vendor)
			continue
		}

		published := p.entryPublished(source, item)
		summary := strings.TrimSpace(item.Description)

		imageURL := feedImage(item)
		var content string

		// Best-effort page fetch for full-body content and a better
		// image than the feed provides.
		page, err := p.fetchDoc(link)
		if err != nil {
			slog.Warn("article page fetch failed", "source", source.Vendor, "url", link, "error", err)
		} else {
			content = scrape.ExtractContent(page)

			if imageURL == "" || pageImageVendors[source.Vendor] {
				if img := scrape.MetaImage(page); img != "" {
					imageURL = img
				} else if img := scrape.FirstArticleImage(page); img != "" {
					imageURL = img
				}
			}
		}

		article := model.Article{
			Title:       title,
			Summary:     summary,
			Content:     content,
			URL:         link,
			ImageURL:    validImageURL(imageURL),
			PublishedAt: published,
			Vendor:      source.Vendor,
			Categories:  classify.Categorize(title, summary),
			IsAIRelated: classify.IsAIRelated(title + " " + summary + " " + content),
			SourceID:    source.ID,
		}

		if err := p.saveArticle(source, &article); err != nil {
			slog.Error("error upserting article", "source", source.Vendor, "url", link, "error", err)
			continue
		}

		saved = append(saved, article)
	}

	return saved, nil
}

func (p *Pipeline) entryPublished(source model.Source, item *gofeed.Item) time.Time {
	if item.PublishedParsed != nil {
		return *item.PublishedParsed
	}

	if item.Published != "" {
		t, ok := dates.Parse(item.Published)
		if !ok {
			slog.Warn("unparseable entry date, using current time",
				"source", source.Vendor, "date", item.Published)
		}
		return t
	}

	return time.Now()
}

func feedImage(item *gofeed.Item) string {
	if item.Image != nil && strings.TrimSpace(item.Image.URL) != "" {
		return strings.TrimSpace(item.Image.URL)
	}

	for _, enc := range item.Enclosures {
		if strings.HasPrefix(enc.Type, "image/") && strings.TrimSpace(enc.URL) != "" {
			return strings.TrimSpace(enc.URL)
		}
	}

	return ""
}

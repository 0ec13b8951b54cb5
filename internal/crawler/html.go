package crawler

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/richardawe/erp-world/internal/model"
	"github.com/richardawe/erp-world/pkg/classify"
	"github.com/richardawe/erp-world/pkg/dates"
	"github.com/richardawe/erp-world/pkg/scrape"
)

// crawlHTML ingests a vendor's HTML newsroom: discover article links on
// the index page through the vendor's strategy, deduplicate them, then
// fetch and extract each article. An index fetch failure is terminal
// for this source only.
func (p *Pipeline) crawlHTML(source model.Source) ([]model.Article, error) {
	index, err := p.fetchDoc(source.URL)
	if err != nil {
		return nil, fmt.Errorf("fetch index %s: %w", source.URL, err)
	}

	strategy := scrape.ForVendor(source.Vendor)

	links := scrape.DedupeLinks(strategy.DiscoverLinks(index))
	if len(links) == 0 {
		slog.Warn("no article links discovered", "source", source.Vendor, "url", source.URL)
		return nil, nil
	}

	var saved []model.Article

	for _, link := range links {
		pageURL := resolveURL(source.URL, link)
		if pageURL == "" {
			slog.Warn("skipping malformed article link", "source", source.Vendor, "href", link)
			continue
		}

		page, err := p.fetchDoc(pageURL)
		if err != nil {
			slog.Warn("article fetch failed", "source", source.Vendor, "url", pageURL, "error", err)
			continue
		}

		draft := strategy.ExtractArticle(page, pageURL)

		title := strings.TrimSpace(draft.Title)
		if title == "" {
			slog.Warn("skipping article without title", "source", source.Vendor, "url", pageURL)
			continue
		}

		article := model.Article{
			Title:       title,
			Summary:     strings.TrimSpace(draft.Summary),
			Content:     draft.Content,
			URL:         pageURL,
			ImageURL:    validImageURL(resolveURL(pageURL, draft.ImageURL)),
			PublishedAt: p.pagePublished(source, pageURL, draft.DateText),
			Vendor:      source.Vendor,
			Categories:  classify.Categorize(title, draft.Summary),
			IsAIRelated: classify.IsAIRelated(title + " " + draft.Summary + " " + draft.Content),
			SourceID:    source.ID,
		}

		if err := p.saveArticle(source, &article); err != nil {
			slog.Error("error upserting article", "source", source.Vendor, "url", pageURL, "error", err)
			continue
		}

		saved = append(saved, article)
	}

	return saved, nil
}

// pagePublished resolves a publish date for a scraped page. The URL
// path is the most reliable carrier; visible/meta dates come next, and
// anything unparseable or implausible falls back to now.
func (p *Pipeline) pagePublished(source model.Source, pageURL, dateText string) time.Time {
	if t, ok := dates.ExtractFromURL(pageURL); ok {
		return t
	}

	if strings.TrimSpace(dateText) != "" {
		t, ok := dates.Parse(dateText)
		if ok && dates.PlausibleYear(t.Year()) {
			return t
		}
		slog.Warn("unparseable or implausible page date, using current time",
			"source", source.Vendor, "url", pageURL, "date", dateText)
	}

	return time.Now()
}

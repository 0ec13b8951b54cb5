// Package crawler orchestrates the content acquisition pipeline:
// resolve active sources, dispatch each to the RSS or HTML path,
// normalize what comes back and upsert it, isolating failures per
// source and per article.
package crawler

import (
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/uuid"
	"github.com/mmcdole/gofeed"

	"github.com/richardawe/erp-world/internal/model"
	"github.com/richardawe/erp-world/pkg/fetch"
)

// SourceStore is the registry view the pipeline needs.
type SourceStore interface {
	ListActive() ([]model.Source, error)
	GetActiveByID(id int64) (*model.Source, error)
	TouchLastCrawled(id int64, at time.Time) error
}

// ArticleStore persists normalized articles keyed on URL.
type ArticleStore interface {
	Upsert(article *model.Article) error
}

// Options narrows a run. SourceID selects exactly one source.
// BatchSize > 0 bounds per-invocation work to the first N active
// sources; zero crawls them all.
type Options struct {
	BatchSize int
	SourceID  int64
}

type Pipeline struct {
	sources  SourceStore
	articles ArticleStore
	client   *fetch.Client
	parser   *gofeed.Parser
}

func New(sources SourceStore, articles ArticleStore, client *fetch.Client) *Pipeline {
	parser := gofeed.NewParser()
	parser.UserAgent = fetch.UserAgent
	parser.Client = client.HTTPClient()

	return &Pipeline{
		sources:  sources,
		articles: articles,
		client:   client,
		parser:   parser,
	}
}

// Run crawls the selected sources sequentially and returns a report
// carrying both the per-source status list and the flat list of
// articles ingested this run. A failing source never aborts its
// siblings; a registry-resolution failure is returned as an error so
// callers can distinguish it from an empty source set.
func (p *Pipeline) Run(opts Options) (*model.CrawlReport, error) {
	report := &model.CrawlReport{RunID: uuid.NewString()}

	selected, err := p.selectSources(opts)
	if err != nil {
		return report, fmt.Errorf("resolve active sources: %w", err)
	}

	if len(selected) == 0 {
		slog.Info("no active sources to crawl", "run_id", report.RunID)
		return report, nil
	}

	slog.Info("crawl run starting", "run_id", report.RunID, "sources", len(selected))

	for _, source := range selected {
		articles, err := p.crawlSource(source)

		result := model.SourceResult{
			Source:   source.Vendor,
			URL:      source.URL,
			Status:   model.CrawlStatusSuccess,
			Articles: len(articles),
		}
		if err != nil {
			slog.Error("source crawl failed",
				"run_id", report.RunID, "source", source.Vendor, "url", source.URL, "error", err)
			result.Status = model.CrawlStatusError
			result.Error = err.Error()
		}

		report.Results = append(report.Results, result)
		for _, a := range articles {
			report.NewArticles = append(report.NewArticles, model.NewArticle{
				ID:      a.ID,
				Title:   a.Title,
				URL:     a.URL,
				Content: a.Content,
			})
		}
	}

	slog.Info("crawl run complete",
		"run_id", report.RunID, "sources", len(report.Results), "new_articles", len(report.NewArticles))

	return report, nil
}

func (p *Pipeline) selectSources(opts Options) ([]model.Source, error) {
	if opts.SourceID != 0 {
		source, err := p.sources.GetActiveByID(opts.SourceID)
		if err != nil {
			return nil, err
		}
		if source == nil {
			return nil, nil
		}
		return []model.Source{*source}, nil
	}

	sources, err := p.sources.ListActive()
	if err != nil {
		return nil, err
	}

	if opts.BatchSize > 0 && len(sources) > opts.BatchSize {
		sources = sources[:opts.BatchSize]
	}

	return sources, nil
}

func (p *Pipeline) crawlSource(source model.Source) ([]model.Article, error) {
	switch source.Type {
	case model.SourceTypeRSS:
		return p.crawlFeed(source)
	case model.SourceTypeHTML:
		return p.crawlHTML(source)
	default:
		return nil, fmt.Errorf("unknown source type %q", source.Type)
	}
}

// saveArticle upserts one normalized article and records the fetch
// attempt on the source. Used by both paths.
func (p *Pipeline) saveArticle(source model.Source, article *model.Article) error {
	if err := p.articles.Upsert(article); err != nil {
		return err
	}

	if err := p.sources.TouchLastCrawled(source.ID, time.Now()); err != nil {
		slog.Warn("error updating last_crawled", "source", source.Vendor, "error", err)
	}

	return nil
}

func (p *Pipeline) fetchDoc(pageURL string) (*goquery.Document, error) {
	body, err := p.client.Get(pageURL)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(body)))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", pageURL, err)
	}

	return doc, nil
}

// resolveURL makes href absolute against base. Returns "" when the
// result is not a well-formed absolute http(s) URL.
func resolveURL(base, href string) string {
	href = strings.TrimSpace(href)
	if href == "" {
		return ""
	}

	baseURL, err := url.Parse(base)
	if err != nil {
		return ""
	}

	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}

	resolved := baseURL.ResolveReference(ref)
	if !resolved.IsAbs() || (resolved.Scheme != "http" && resolved.Scheme != "https") || resolved.Host == "" {
		return ""
	}

	return resolved.String()
}

// validImageURL nulls out anything that is not a syntactically valid
// absolute URL.
func validImageURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}

	u, err := url.Parse(raw)
	if err != nil || !u.IsAbs() || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return ""
	}

	return raw
}

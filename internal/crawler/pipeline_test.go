package crawler

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"

	"github.com/richardawe/erp-world/internal/model"
	"github.com/richardawe/erp-world/pkg/fetch"
)

type fakeSources struct {
	sources []model.Source
	byID    map[int64]*model.Source
	touched int
	err     error
}

func (f *fakeSources) ListActive() ([]model.Source, error) {
	return f.sources, f.err
}

func (f *fakeSources) GetActiveByID(id int64) (*model.Source, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.byID[id], nil
}

func (f *fakeSources) TouchLastCrawled(id int64, at time.Time) error {
	f.touched++
	return nil
}

type fakeArticles struct {
	rows    map[string]model.Article
	upserts int
	nextID  int64
	err     error
}

func newFakeArticles() *fakeArticles {
	return &fakeArticles{rows: make(map[string]model.Article)}
}

func (f *fakeArticles) Upsert(article *model.Article) error {
	if f.err != nil {
		return f.err
	}
	f.upserts++
	if existing, ok := f.rows[article.URL]; ok {
		article.ID = existing.ID
	} else {
		f.nextID++
		article.ID = f.nextID
	}
	f.rows[article.URL] = *article
	return nil
}

const articlePage = `<html>
<head><meta property="og:image" content="https://cdn.example/hero.jpg"></head>
<body><article><h1>%s</h1><p>Full body text.</p></article></body>
</html>`

// newVendorServer serves an RSS feed with two entries, one of which is
// missing a title, plus the linked article page.
func newVendorServer() *httptest.Server {
	mux := http.NewServeMux()
	server := httptest.NewServer(mux)

	mux.HandleFunc("/feed", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0"><channel>
<title>Vendor News</title>
<item>
	<title>New suite released</title>
	<link>%s/articles/suite</link>
	<description>A big release.</description>
	<pubDate>Fri, 08 Mar 2024 00:00:00 GMT</pubDate>
</item>
<item>
	<link>%s/articles/untitled</link>
	<description>No title here.</description>
</item>
</channel></rss>`, server.URL, server.URL)
	})

	mux.HandleFunc("/articles/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, articlePage, "New suite released")
	})

	return server
}

func TestRun_FeedSkipsEntryWithoutTitle(t *testing.T) {
	server := newVendorServer()
	defer server.Close()

	sources := &fakeSources{sources: []model.Source{
		{ID: 1, URL: server.URL + "/feed", Vendor: "SAP", Type: model.SourceTypeRSS, Active: true},
	}}
	articles := newFakeArticles()

	p := New(sources, articles, fetch.New())
	report, err := p.Run(Options{})

	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(report.Results))
	assert.Equal(t, model.CrawlStatusSuccess, report.Results[0].Status)
	assert.Equal(t, 1, report.Results[0].Articles)
	assert.Equal(t, 1, len(articles.rows))

	stored := articles.rows[server.URL+"/articles/suite"]
	assert.Equal(t, "New suite released", stored.Title)
	assert.Equal(t, "SAP", stored.Vendor)
	assert.Equal(t, "https://cdn.example/hero.jpg", stored.ImageURL)
	assert.Equal(t, true, len(stored.Content) > 0)
	assert.Equal(t, 2024, stored.PublishedAt.Year())
	assert.Equal(t, true, len(stored.Categories) > 0)
	assert.Equal(t, true, sources.touched > 0)
}

func TestRun_IsIdempotent(t *testing.T) {
	server := newVendorServer()
	defer server.Close()

	sources := &fakeSources{sources: []model.Source{
		{ID: 1, URL: server.URL + "/feed", Vendor: "SAP", Type: model.SourceTypeRSS, Active: true},
	}}
	articles := newFakeArticles()

	p := New(sources, articles, fetch.New())
	p.Run(Options{})
	p.Run(Options{})

	// Two upserts, one logical row.
	assert.Equal(t, 2, articles.upserts)
	assert.Equal(t, 1, len(articles.rows))
}

func TestRun_SourceFailureDoesNotAbortSiblings(t *testing.T) {
	server := newVendorServer()
	defer server.Close()

	dead := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	deadURL := dead.URL
	dead.Close()

	sources := &fakeSources{sources: []model.Source{
		{ID: 1, URL: deadURL + "/feed", Vendor: "Oracle", Type: model.SourceTypeRSS, Active: true},
		{ID: 2, URL: server.URL + "/feed", Vendor: "SAP", Type: model.SourceTypeRSS, Active: true},
	}}
	articles := newFakeArticles()

	p := New(sources, articles, fetch.New())
	report, err := p.Run(Options{})

	assert.Equal(t, nil, err)
	assert.Equal(t, 2, len(report.Results))
	assert.Equal(t, model.CrawlStatusError, report.Results[0].Status)
	assert.Equal(t, true, report.Results[0].Error != "")
	assert.Equal(t, model.CrawlStatusSuccess, report.Results[1].Status)
	assert.Equal(t, 1, report.Results[1].Articles)
}

func TestRun_BatchSizeBoundsWork(t *testing.T) {
	server := newVendorServer()
	defer server.Close()

	sources := &fakeSources{sources: []model.Source{
		{ID: 1, URL: server.URL + "/feed", Vendor: "SAP", Type: model.SourceTypeRSS, Active: true},
		{ID: 2, URL: server.URL + "/feed", Vendor: "Oracle", Type: model.SourceTypeRSS, Active: true},
		{ID: 3, URL: server.URL + "/feed", Vendor: "Infor", Type: model.SourceTypeRSS, Active: true},
	}}

	p := New(sources, newFakeArticles(), fetch.New())
	report, _ := p.Run(Options{BatchSize: 2})

	assert.Equal(t, 2, len(report.Results))
}

func TestRun_RegistryFailureReturnsError(t *testing.T) {
	sources := &fakeSources{err: errors.New("store unreachable")}

	p := New(sources, newFakeArticles(), fetch.New())
	report, err := p.Run(Options{})

	assert.NotEqual(t, nil, err)
	assert.Equal(t, 0, len(report.Results))
	assert.Equal(t, 0, len(report.NewArticles))
}

func TestRun_InactiveSourceIDYieldsEmptyReport(t *testing.T) {
	sources := &fakeSources{byID: map[int64]*model.Source{}}

	p := New(sources, newFakeArticles(), fetch.New())
	report, err := p.Run(Options{SourceID: 7})

	assert.Equal(t, nil, err)
	assert.Equal(t, 0, len(report.Results))
	assert.Equal(t, 0, len(report.NewArticles))
}

func TestRun_HTMLSourceExtractsArticles(t *testing.T) {
	mux := http.NewServeMux()
	server := httptest.NewServer(mux)
	defer server.Close()

	mux.HandleFunc("/news", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html><body>
			<a href="/news/2024-03-08-new-platform">New platform</a>
			<a href="/fr/news/2024-03-08-new-platform">Nouvelle plateforme</a>
			<a href="/about">About</a>
		</body></html>`)
	})
	mux.HandleFunc("/news/2024-03-08-new-platform", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, articlePage, "Vendor unveils new platform")
	})

	sources := &fakeSources{sources: []model.Source{
		{ID: 1, URL: server.URL + "/news", Vendor: "Forterro", Type: model.SourceTypeHTML, Active: true},
	}}
	articles := newFakeArticles()

	p := New(sources, articles, fetch.New())
	report, _ := p.Run(Options{})

	assert.Equal(t, model.CrawlStatusSuccess, report.Results[0].Status)
	// The locale mirror collapses into the canonical link.
	assert.Equal(t, 1, len(articles.rows))

	stored := articles.rows[server.URL+"/news/2024-03-08-new-platform"]
	assert.Equal(t, "Vendor unveils new platform", stored.Title)
	assert.Equal(t, 2024, stored.PublishedAt.Year())
	assert.Equal(t, time.March, stored.PublishedAt.Month())
	assert.Equal(t, 8, stored.PublishedAt.Day())
}

func TestRun_NewArticlesListMatchesUpserts(t *testing.T) {
	server := newVendorServer()
	defer server.Close()

	sources := &fakeSources{sources: []model.Source{
		{ID: 1, URL: server.URL + "/feed", Vendor: "SAP", Type: model.SourceTypeRSS, Active: true},
	}}
	articles := newFakeArticles()

	p := New(sources, articles, fetch.New())
	report, _ := p.Run(Options{})

	assert.Equal(t, 1, len(report.NewArticles))
	assert.Equal(t, "New suite released", report.NewArticles[0].Title)
	assert.Equal(t, server.URL+"/articles/suite", report.NewArticles[0].URL)
	assert.Equal(t, true, report.NewArticles[0].ID > 0)
}

package scrape

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Draft is the partially extracted article a strategy yields from a
// vendor page. DateText is raw; the caller runs it through the date
// normalizer.
type Draft struct {
	Title    string
	Summary  string
	DateText string
	ImageURL string
	Content  string
}

// Strategy is the per-vendor extraction contract: discover article
// permalinks on an index page, then extract fields from an article
// page. New vendors register an implementation instead of extending a
// conditional.
type Strategy interface {
	DiscoverLinks(doc *goquery.Document) []string
	ExtractArticle(doc *goquery.Document, pageURL string) Draft
}

var datedPathRe = regexp.MustCompile(`/20\d{2}[/-]\d{1,2}[/-]\d{1,2}`)

// Newsroom is a configurable Strategy covering the newsroom and blog
// layouts the configured vendors share. Zero-value fields fall back to
// the generic selector chains.
type Newsroom struct {
	// LinkSelector scopes link discovery; defaults to every anchor.
	LinkSelector string
	// LinkPatterns are href substrings identifying article permalinks.
	LinkPatterns []string
	// DatedPaths additionally accepts hrefs with a YYYY-MM-DD path
	// segment.
	DatedPaths bool

	TitleSelectors   []string
	SummarySelectors []string
	DateSelectors    []string

	// ImageExcludes rejects boilerplate assets (static logos) so the
	// stored image is never branding chrome.
	ImageExcludes []string
}

func (n *Newsroom) DiscoverLinks(doc *goquery.Document) []string {
	selector := n.LinkSelector
	if selector == "" {
		selector = "a[href]"
	}

	var links []string
	doc.Find(selector).Each(func(_ int, a *goquery.Selection) {
		href, ok := a.Attr("href")
		if !ok {
			return
		}
		href = strings.TrimSpace(href)
		if href == "" || strings.HasPrefix(href, "#") ||
			strings.HasPrefix(href, "mailto:") || strings.HasPrefix(href, "javascript:") {
			return
		}
		if n.matchesLink(href) {
			links = append(links, href)
		}
	})

	return links
}

func (n *Newsroom) matchesLink(href string) bool {
	lower := strings.ToLower(href)
	for _, pattern := range n.LinkPatterns {
		if strings.Contains(lower, pattern) {
			return true
		}
	}
	return n.DatedPaths && datedPathRe.MatchString(lower)
}

func (n *Newsroom) ExtractArticle(doc *goquery.Document, pageURL string) Draft {
	var d Draft

	d.Title = firstText(doc, n.TitleSelectors)
	if d.Title == "" {
		d.Title = firstText(doc, []string{"article h1", "main h1", "h1"})
	}
	if d.Title == "" {
		d.Title = MetaTitle(doc)
	}

	d.Summary = firstText(doc, n.SummarySelectors)
	if d.Summary == "" {
		d.Summary = MetaDescription(doc)
	}
	if d.Summary == "" {
		// First paragraph adjacent to the title.
		d.Summary = strings.TrimSpace(doc.Find("article p").First().Text())
	}

	d.DateText = firstText(doc, n.DateSelectors)
	if d.DateText == "" {
		d.DateText = timeElementText(doc)
	}
	if d.DateText == "" {
		d.DateText = MetaPublishedTime(doc)
	}

	d.ImageURL = n.articleImage(doc)
	d.Content = ExtractContent(doc)

	return d
}

func (n *Newsroom) articleImage(doc *goquery.Document) string {
	image := MetaImage(doc)
	if image == "" {
		image = FirstArticleImage(doc)
	}
	lower := strings.ToLower(image)
	for _, exclude := range n.ImageExcludes {
		if strings.Contains(lower, exclude) {
			return ""
		}
	}
	return image
}

func firstText(doc *goquery.Document, selectors []string) string {
	for _, selector := range selectors {
		if t := strings.TrimSpace(doc.Find(selector).First().Text()); t != "" {
			return t
		}
	}
	return ""
}

func timeElementText(doc *goquery.Document) string {
	el := doc.Find("time").First()
	if v, ok := el.Attr("datetime"); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return strings.TrimSpace(el.Text())
}

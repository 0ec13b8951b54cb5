// Package scrape isolates article data from vendor HTML: main-body
// extraction, meta-tag lookup, link discovery and the per-vendor
// extraction strategies.
package scrape

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Selector candidates for the main article body, in preference order.
// These cover the press-release and blog templates the configured
// vendors use.
var contentSelectors = []string{
	"article .content",
	".article-content",
	".news-content",
	"article .body",
	".press-release-content",
	".article-body",
	".post-content",
	".entry-content",
}

// Noise stripped out of a matched body before returning it.
const noiseSelector = "script, style, .social-share, .related-articles, nav"

// ExtractContent returns the main article body markup from a parsed
// document, or "" when nothing usable was found. An empty result is not
// an error condition; articles remain valid without content.
func ExtractContent(doc *goquery.Document) string {
	for _, selector := range contentSelectors {
		sel := doc.Find(selector)
		if sel.Length() == 0 {
			continue
		}

		sel.Find(noiseSelector).Remove()

		if html, err := sel.Html(); err == nil && strings.TrimSpace(html) != "" {
			return strings.TrimSpace(html)
		}
	}

	// Last resort: collect paragraphs inside an <article> container.
	var paragraphs []string
	doc.Find("article p").Each(func(_ int, p *goquery.Selection) {
		if html, err := p.Html(); err == nil && strings.TrimSpace(html) != "" {
			paragraphs = append(paragraphs, strings.TrimSpace(html))
		}
	})

	return strings.Join(paragraphs, "\n")
}

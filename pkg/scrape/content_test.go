package scrape

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-playground/assert/v2"
)

func doc(t *testing.T, html string) *goquery.Document {
	t.Helper()
	d, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("parse html: %v", err)
	}
	return d
}

func TestExtractContent_SelectorMatch(t *testing.T) {
	d := doc(t, `
		<html><body>
			<div class="article-content">
				<script>trackPageView()</script>
				<p>The actual story.</p>
				<div class="social-share">Share this</div>
			</div>
		</body></html>`)

	content := ExtractContent(d)

	assert.Equal(t, true, strings.Contains(content, "The actual story."))
	assert.Equal(t, false, strings.Contains(content, "trackPageView"))
	assert.Equal(t, false, strings.Contains(content, "Share this"))
}

func TestExtractContent_ParagraphFallback(t *testing.T) {
	d := doc(t, `
		<html><body>
			<article>
				<h1>Headline</h1>
				<p>First paragraph.</p>
				<p>Second paragraph.</p>
			</article>
		</body></html>`)

	content := ExtractContent(d)

	assert.Equal(t, "First paragraph.\nSecond paragraph.", content)
}

func TestExtractContent_NothingFound(t *testing.T) {
	d := doc(t, `<html><body><div>Nav only</div></body></html>`)

	assert.Equal(t, "", ExtractContent(d))
}

func TestMetaImage_PrefersOpenGraph(t *testing.T) {
	d := doc(t, `
		<html><head>
			<meta property="og:image" content="https://cdn.example/og.jpg">
			<meta name="twitter:image" content="https://cdn.example/tw.jpg">
		</head><body></body></html>`)

	assert.Equal(t, "https://cdn.example/og.jpg", MetaImage(d))
}

func TestMetaImage_TwitterFallback(t *testing.T) {
	d := doc(t, `
		<html><head>
			<meta name="twitter:image" content="https://cdn.example/tw.jpg">
		</head><body></body></html>`)

	assert.Equal(t, "https://cdn.example/tw.jpg", MetaImage(d))
}

func TestFirstArticleImage_DataSrc(t *testing.T) {
	d := doc(t, `
		<html><body><article>
			<img data-src="https://cdn.example/lazy.jpg">
		</article></body></html>`)

	assert.Equal(t, "https://cdn.example/lazy.jpg", FirstArticleImage(d))
}

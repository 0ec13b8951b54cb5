package scrape

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

func metaContent(doc *goquery.Document, key string) string {
	if v, ok := doc.Find(`meta[property="` + key + `"]`).Attr("content"); ok {
		return strings.TrimSpace(v)
	}
	if v, ok := doc.Find(`meta[name="` + key + `"]`).Attr("content"); ok {
		return strings.TrimSpace(v)
	}
	return ""
}

// MetaImage returns the page's social-card image, og:image first.
func MetaImage(doc *goquery.Document) string {
	if v := metaContent(doc, "og:image"); v != "" {
		return v
	}
	return metaContent(doc, "twitter:image")
}

// MetaTitle returns the page's social-card title.
func MetaTitle(doc *goquery.Document) string {
	if v := metaContent(doc, "og:title"); v != "" {
		return v
	}
	return metaContent(doc, "twitter:title")
}

// MetaDescription returns the page description tag.
func MetaDescription(doc *goquery.Document) string {
	if v := metaContent(doc, "description"); v != "" {
		return v
	}
	return metaContent(doc, "og:description")
}

// MetaPublishedTime returns the article:published_time meta value.
func MetaPublishedTime(doc *goquery.Document) string {
	return metaContent(doc, "article:published_time")
}

// FirstArticleImage returns the src of the first image inside an
// article container, honouring lazy-load data-src attributes.
func FirstArticleImage(doc *goquery.Document) string {
	img := doc.Find("article img").First()
	if src, ok := img.Attr("src"); ok && strings.TrimSpace(src) != "" {
		return strings.TrimSpace(src)
	}
	if src, ok := img.Attr("data-src"); ok && strings.TrimSpace(src) != "" {
		return strings.TrimSpace(src)
	}
	return ""
}

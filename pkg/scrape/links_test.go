package scrape

import (
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestNormalizeLink(t *testing.T) {
	assert.Equal(t, "vendor.example/news/a", NormalizeLink("HTTPS://WWW.Vendor.example/news/a/"))
	assert.Equal(t, "vendor.example/news/a", NormalizeLink("http://vendor.example/news/a"))
}

func TestDedupeLinks_ProtocolAndTrailingSlash(t *testing.T) {
	links := DedupeLinks([]string{
		"https://www.vendor.example/news/a/",
		"http://vendor.example/news/a",
		"https://vendor.example/news/b",
	})

	assert.Equal(t, 2, len(links))
	assert.Equal(t, "https://www.vendor.example/news/a/", links[0])
	assert.Equal(t, "https://vendor.example/news/b", links[1])
}

func TestDedupeLinks_DropsLocaleMirrors(t *testing.T) {
	links := DedupeLinks([]string{
		"https://vendor.example/news/a",
		"https://vendor.example/fr/news/a",
		"https://vendor.example/de/news/a",
		"/fr/news/b",
		"/news/b",
	})

	assert.Equal(t, 2, len(links))
	assert.Equal(t, "https://vendor.example/news/a", links[0])
	assert.Equal(t, "/news/b", links[1])
}

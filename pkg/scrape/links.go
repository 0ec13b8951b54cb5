package scrape

import "strings"

// Locale path prefixes whose pages are translated mirrors of articles
// already discovered under the default locale.
var localePrefixes = map[string]bool{
	"fr": true,
	"de": true,
	"es": true,
	"it": true,
	"nl": true,
	"sv": true,
	"pl": true,
	"pt": true,
}

// NormalizeLink canonicalizes a discovered href for dedup comparison:
// lower-case, protocol and www. stripped, trailing slash stripped.
func NormalizeLink(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = strings.TrimPrefix(s, "https://")
	s = strings.TrimPrefix(s, "http://")
	s = strings.TrimPrefix(s, "www.")
	return strings.TrimRight(s, "/")
}

func isLocaleMirror(normalized string) bool {
	segments := strings.Split(strings.Trim(normalized, "/"), "/")
	idx := 0
	// Absolute links carry the host as the first segment.
	if len(segments) > 0 && strings.Contains(segments[0], ".") {
		idx = 1
	}
	return len(segments) > idx && localePrefixes[segments[idx]]
}

// DedupeLinks removes duplicate hrefs by normalized form and drops
// locale-prefixed mirrors so translations are not re-crawled as
// distinct articles. The original href form of the first occurrence is
// kept.
func DedupeLinks(links []string) []string {
	seen := make(map[string]bool, len(links))
	var out []string

	for _, link := range links {
		normalized := NormalizeLink(link)
		if normalized == "" || seen[normalized] {
			continue
		}
		if isLocaleMirror(normalized) {
			continue
		}
		seen[normalized] = true
		out = append(out, link)
	}

	return out
}

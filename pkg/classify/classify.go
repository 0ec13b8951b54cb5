// Package classify assigns topical categories and an AI-relevance flag
// to article text using keyword heuristics.
package classify

import (
	"regexp"
	"strings"

	"github.com/richardawe/erp-world/internal/model"
)

// Evaluation order fixes the category sequence in the result.
var categoryOrder = []string{
	model.CategoryProductLaunch,
	model.CategorySecurityUpdate,
	model.CategoryMarketTrend,
	model.CategoryPartnership,
	model.CategoryAcquisition,
}

var categoryTriggers = map[string][]string{
	model.CategoryProductLaunch:  {"launch", "release", "new feature", "announce", "introduc", "unveil"},
	model.CategorySecurityUpdate: {"security", "vulnerability", "patch", "protection", "privacy"},
	model.CategoryMarketTrend:    {"market", "trend", "industry", "growth", "forecast", "future"},
	model.CategoryPartnership:    {"partner", "collaboration", "alliance", "partnership", "joint venture"},
	model.CategoryAcquisition:    {"acquire", "acquisition", "merge", "merger", "takeover"},
}

var aiInnovationTriggers = []string{
	"artificial intelligence", "machine learning", "ml", "ai", "deep learning",
	"neural network", "nlp", "natural language", "computer vision",
	"predictive analytics", "generative ai", "large language model", "llm",
	"chatbot", "intelligent automation", "cognitive computing",
	"ai-powered", "ai powered", "ai-driven", "ai driven",
}

var (
	nonWordRe    = regexp.MustCompile(`[^a-z0-9\s-]`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// normalize lowercases, strips punctuation to whitespace (keeping
// hyphens so compound terms like "ai-powered" survive), and collapses
// repeated whitespace.
func normalize(text string) string {
	t := strings.ToLower(text)
	t = nonWordRe.ReplaceAllString(t, " ")
	t = whitespaceRe.ReplaceAllString(t, " ")
	return strings.TrimSpace(t)
}

// containsPhrase reports whether phrase occurs in text on word
// boundaries.
func containsPhrase(text, phrase string) bool {
	return strings.Contains(" "+text+" ", " "+phrase+" ")
}

// matches applies substring matching for stems ("announce" covers
// "announces" and "announced") but requires word boundaries for short
// tokens, so "ml" does not fire on "html".
func matches(text, trigger string) bool {
	if len(trigger) <= 3 {
		return containsPhrase(text, trigger)
	}
	return strings.Contains(text, trigger)
}

func matchesAny(text string, triggers []string) bool {
	for _, trigger := range triggers {
		if matches(text, trigger) {
			return true
		}
	}
	return false
}

// Categorize assigns topical tags to a title+body pair. AI Innovation
// is evaluated first; the remaining categories are non-exclusive. The
// result is never empty: General is assigned when nothing matched.
func Categorize(title, body string) []string {
	text := normalize(title + " " + body)

	var categories []string
	if matchesAny(text, aiInnovationTriggers) {
		categories = append(categories, model.CategoryAIInnovation)
	}

	for _, category := range categoryOrder {
		if matchesAny(text, categoryTriggers[category]) {
			categories = append(categories, category)
		}
	}

	if len(categories) == 0 {
		categories = append(categories, model.CategoryGeneral)
	}

	return categories
}

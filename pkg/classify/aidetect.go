package classify

import "strings"

// aiKeywords is the exact-match tier: unambiguous AI vocabulary
// covering vendor/product names, generic and business-AI terms. Bare
// tokens like "ai" and "ml" are deliberately absent here; they are only
// honoured by the co-occurrence tier below.
var aiKeywords = []string{
	// Core AI terms
	"artificial intelligence",
	"machine learning",
	"deep learning",
	"neural network",

	// Modern AI
	"generative ai",
	"gen ai",
	"large language model",
	"llm",
	"chatgpt",
	"gpt",
	"copilot",
	"openai",
	"bard",
	"claude",
	"gemini",

	// AI applications
	"ai-powered",
	"ai powered",
	"ai-driven",
	"ai driven",
	"ai-enabled",
	"ai enabled",
	"ai capabilities",
	"ai features",
	"ai technology",
	"ai solution",

	// Business AI
	"intelligent automation",
	"cognitive computing",
	"predictive analytics",
	"natural language processing",
	"nlp",
	"robotic process automation",
	"rpa",
	"automated workflow",
	"smart automation",
	"intelligent process",
	"ai transformation",
	"digital assistant",
	"virtual assistant",
	"intelligent assistant",
	"conversational ai",
	"ai analytics",
	"predictive intelligence",

	// ERP-specific AI
	"intelligent erp",
	"smart erp",
	"ai integration",
	"automated decision",
	"intelligent decision",
	"smart decision",
	"predictive maintenance",
	"automated reporting",
	"intelligent insights",
	"smart insights",
	"automated processing",
	"intelligent processing",
}

// coOccurrenceTerms corroborate a bare AI mention. A lone "ai" token is
// too ambiguous on its own.
var coOccurrenceTerms = []string{
	"automation",
	"intelligence",
	"smart",
	"cognitive",
	"predictive",
	"automated",
	"processing",
	"analytics",
	"insight",
}

// IsAIRelated reports whether the text discusses AI. The first tier
// checks exact-phrase containment against the keyword list; the second
// accepts a bare AI token only when accompanied by corroborating
// vocabulary, suppressing false positives from the token alone.
func IsAIRelated(text string) bool {
	if text == "" {
		return false
	}

	cleaned := normalize(text)

	for _, keyword := range aiKeywords {
		if containsPhrase(cleaned, normalize(keyword)) {
			return true
		}
	}

	hasBareTerm := containsPhrase(cleaned, "ai") ||
		strings.Contains(cleaned, "artificial intelligence") ||
		strings.Contains(cleaned, "machine learning")
	if !hasBareTerm {
		return false
	}

	for _, term := range coOccurrenceTerms {
		if strings.Contains(cleaned, term) {
			return true
		}
	}

	return false
}

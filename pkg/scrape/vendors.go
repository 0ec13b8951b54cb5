package scrape

// Registered per-vendor strategies. The selector chains follow each
// vendor's newsroom markup; vendors without an entry get the generic
// strategy.
var vendorStrategies = map[string]Strategy{
	"SAP": &Newsroom{
		LinkPatterns: []string{"/news/", "/press-room/"},
		DatedPaths:   true,
		ImageExcludes: []string{
			"sap-logo",
		},
	},
	"Oracle": &Newsroom{
		LinkPatterns: []string{"/announcement/", "/news/"},
		ImageExcludes: []string{
			"oracle-logo",
			"/assets/logo",
		},
	},
	"Microsoft": &Newsroom{
		LinkPatterns: []string{"/news/", "/blog/"},
		DatedPaths:   true,
	},
	"Workday": &Newsroom{
		LinkPatterns: []string{"/blog/", "/newsroom/"},
		DatedPaths:   true,
	},
	"Unit4": &Newsroom{
		LinkPatterns: []string{"/news/", "/press-release"},
	},
	"Infor": &Newsroom{
		LinkPatterns: []string{"/news/", "/press-releases/"},
		ImageExcludes: []string{
			"infor-logo",
		},
	},
	"Forterro": &Newsroom{
		LinkSelector:     ".news-item a, a[href]",
		LinkPatterns:     []string{"/news/"},
		TitleSelectors:   []string{".news-title", "article h1"},
		SummarySelectors: []string{".news-summary"},
		DateSelectors:    []string{".news-date"},
		ImageExcludes: []string{
			"forterro-logo",
		},
	},
}

var genericStrategy Strategy = &Newsroom{
	LinkPatterns: []string{"/news/", "/announcement/", "/press/"},
	DatedPaths:   true,
}

// ForVendor returns the strategy registered for a vendor, or the
// generic newsroom strategy.
func ForVendor(vendor string) Strategy {
	if s, ok := vendorStrategies[vendor]; ok {
		return s
	}
	return genericStrategy
}

// Register installs a strategy for a vendor. New vendors plug in here
// rather than growing a switch in the crawler.
func Register(vendor string, s Strategy) {
	vendorStrategies[vendor] = s
}

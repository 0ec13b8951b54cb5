package dates

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Layouts tried before falling back to pattern matching. Vendor feeds
// and newsrooms mix RFC forms with human-readable dates.
var layouts = []string{
	time.RFC3339,
	time.RFC1123Z,
	time.RFC1123,
	time.RFC822Z,
	time.RFC822,
	"2006-01-02 15:04:05",
	"January 2, 2006, 3:04 PM",
	"January 2, 2006 15:04",
	"January 2, 2006",
	"Jan 2, 2006",
	"2 January 2006",
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	"01-02-2006",
}

var months = map[string]time.Month{
	"january":   time.January,
	"february":  time.February,
	"march":     time.March,
	"april":     time.April,
	"may":       time.May,
	"june":      time.June,
	"july":      time.July,
	"august":    time.August,
	"september": time.September,
	"october":   time.October,
	"november":  time.November,
	"december":  time.December,
}

var (
	// March 8, 2024 / March 8th 2024
	monthDayYearRe = regexp.MustCompile(`([A-Za-z]+)\s+(\d{1,2})(?:st|nd|rd|th)?,?\s+(\d{4})`)
	// 8 March 2024 / 8th March 2024
	dayMonthYearRe = regexp.MustCompile(`(\d{1,2})(?:st|nd|rd|th)?\s+([A-Za-z]+)\s+(\d{4})`)
	// 03/08/2024 or 03-08-2024 (US order)
	slashMDYRe = regexp.MustCompile(`(\d{1,2})[/-](\d{1,2})[/-](\d{4})`)
	// 2024/03/08 or 2024-03-08
	yearFirstRe = regexp.MustCompile(`(\d{4})[/-](\d{1,2})[/-](\d{1,2})`)
	// March 2024
	monthYearRe = regexp.MustCompile(`([A-Za-z]+)\s+(\d{4})`)

	urlDateRe = regexp.MustCompile(`/(20\d{2})([/-])(\d{1,2})(?:[/-])(\d{1,2})(?:[/-]|$)`)
)

// Parse resolves a raw date string to a timestamp. The second return
// value reports whether the input was actually parsed; on failure the
// current time is returned and the caller should log the raw input.
// Parse never fails hard: every input yields a valid time.
func Parse(raw string) (time.Time, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Now(), false
	}

	if t, ok := tryLayouts(s); ok {
		return t, true
	}

	// Collapse duplicate whitespace and retry.
	s = strings.Join(strings.Fields(s), " ")
	if t, ok := tryLayouts(s); ok {
		return t, true
	}

	if m := monthDayYearRe.FindStringSubmatch(s); m != nil {
		if month, ok := months[strings.ToLower(m[1])]; ok {
			day, _ := strconv.Atoi(m[2])
			year, _ := strconv.Atoi(m[3])
			return time.Date(year, month, day, 0, 0, 0, 0, time.UTC), true
		}
	}

	if m := dayMonthYearRe.FindStringSubmatch(s); m != nil {
		if month, ok := months[strings.ToLower(m[2])]; ok {
			day, _ := strconv.Atoi(m[1])
			year, _ := strconv.Atoi(m[3])
			return time.Date(year, month, day, 0, 0, 0, 0, time.UTC), true
		}
	}

	if m := yearFirstRe.FindStringSubmatch(s); m != nil {
		year, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		day, _ := strconv.Atoi(m[3])
		if validDate(year, month, day) {
			return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), true
		}
	}

	if m := slashMDYRe.FindStringSubmatch(s); m != nil {
		month, _ := strconv.Atoi(m[1])
		day, _ := strconv.Atoi(m[2])
		year, _ := strconv.Atoi(m[3])
		if validDate(year, month, day) {
			return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), true
		}
	}

	if m := monthYearRe.FindStringSubmatch(s); m != nil {
		if month, ok := months[strings.ToLower(m[1])]; ok {
			year, _ := strconv.Atoi(m[2])
			return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC), true
		}
	}

	return time.Now(), false
}

func tryLayouts(s string) (time.Time, bool) {
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ExtractFromURL pulls a publish date out of a date-stamped URL path
// segment such as /2024-03-08-title or /2024/03/08/title. Vendor link
// structures often encode the publish date, which beats anything the
// page markup claims.
func ExtractFromURL(rawURL string) (time.Time, bool) {
	m := urlDateRe.FindStringSubmatch(rawURL)
	if m == nil {
		return time.Time{}, false
	}

	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[3])
	day, _ := strconv.Atoi(m[4])

	if !PlausibleYear(year) || !validDate(year, month, day) {
		return time.Time{}, false
	}

	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), true
}

// PlausibleYear rejects obviously broken publish years picked up from
// scraped markup.
func PlausibleYear(year int) bool {
	return year >= 2000 && year <= time.Now().Year()+1
}

func validDate(year, month, day int) bool {
	return year >= 1000 && month >= 1 && month <= 12 && day >= 1 && day <= 31
}

package dates

import (
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
)

func TestParse_RFC1123(t *testing.T) {
	got, ok := Parse("Mon, 02 Jan 2006 15:04:05 GMT")

	assert.Equal(t, true, ok)
	assert.Equal(t, 2006, got.Year())
	assert.Equal(t, time.January, got.Month())
	assert.Equal(t, 2, got.Day())
	assert.Equal(t, 15, got.Hour())
}

func TestParse_MonthDayYearWithTime(t *testing.T) {
	got, ok := Parse("March 08, 2024, 12:00 AM")

	assert.Equal(t, true, ok)
	assert.Equal(t, 2024, got.Year())
	assert.Equal(t, time.March, got.Month())
	assert.Equal(t, 8, got.Day())
	assert.Equal(t, 0, got.Hour())
	assert.Equal(t, 0, got.Minute())
}

func TestParse_OrdinalDayMonthYear(t *testing.T) {
	got, ok := Parse("3rd September 2025")

	assert.Equal(t, true, ok)
	assert.Equal(t, 2025, got.Year())
	assert.Equal(t, time.September, got.Month())
	assert.Equal(t, 3, got.Day())
}

func TestParse_SlashUSOrder(t *testing.T) {
	got, ok := Parse("03/08/2024")

	assert.Equal(t, true, ok)
	assert.Equal(t, time.March, got.Month())
	assert.Equal(t, 8, got.Day())
}

func TestParse_YearFirst(t *testing.T) {
	got, ok := Parse("2024-03-08")

	assert.Equal(t, true, ok)
	assert.Equal(t, 2024, got.Year())
	assert.Equal(t, time.March, got.Month())
	assert.Equal(t, 8, got.Day())
}

func TestParse_MonthYearDefaultsDayToFirst(t *testing.T) {
	got, ok := Parse("March 2024")

	assert.Equal(t, true, ok)
	assert.Equal(t, time.March, got.Month())
	assert.Equal(t, 1, got.Day())
}

func TestParse_DuplicateWhitespace(t *testing.T) {
	got, ok := Parse("  March   8,    2024 ")

	assert.Equal(t, true, ok)
	assert.Equal(t, time.March, got.Month())
	assert.Equal(t, 8, got.Day())
}

// Unparseable input falls back to the current time rather than failing.
func TestParse_FallbackIsAlwaysValid(t *testing.T) {
	for _, input := range []string{"", "not a date", "yesterday-ish", "???"} {
		before := time.Now()
		got, ok := Parse(input)
		after := time.Now()

		assert.Equal(t, false, ok)
		assert.Equal(t, false, got.Before(before))
		assert.Equal(t, false, got.After(after))
	}
}

func TestExtractFromURL_DashSegment(t *testing.T) {
	got, ok := ExtractFromURL("https://vendor.example/news/2024-03-08-product-launch")

	assert.Equal(t, true, ok)
	assert.Equal(t, 2024, got.Year())
	assert.Equal(t, time.March, got.Month())
	assert.Equal(t, 8, got.Day())
}

func TestExtractFromURL_SlashSegments(t *testing.T) {
	got, ok := ExtractFromURL("https://vendor.example/2024/03/08/product-launch")

	assert.Equal(t, true, ok)
	assert.Equal(t, 2024, got.Year())
	assert.Equal(t, time.March, got.Month())
	assert.Equal(t, 8, got.Day())
}

func TestExtractFromURL_ImplausibleYear(t *testing.T) {
	_, ok := ExtractFromURL("https://vendor.example/news/1999-01-01-archive")
	assert.Equal(t, false, ok)
}

func TestExtractFromURL_NoDate(t *testing.T) {
	_, ok := ExtractFromURL("https://vendor.example/news/product-launch")
	assert.Equal(t, false, ok)
}

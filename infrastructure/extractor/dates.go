package extractor

import (
	"regexp"
	"strconv"
	"time"
)

var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05Z",
	"January 2, 2006",
	"Jan 2, 2006",
	"01/02/2006",
	"2 January 2006",
}

// parseDate tries the date formats commonly seen in page markup,
// returning the zero time when none match.
func parseDate(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

var (
	yearPattern    = regexp.MustCompile(`\b(20\d{2})\b`)
	quarterPattern = regexp.MustCompile(`(?i)\bQ([1-4])\b`)
)

// reportDateFromText derives a report date from titles like
// "Q4 2024 Letter" or "2023 Annual Report". A quarter maps to the first
// day of its opening month; a bare year maps to January 1.
func reportDateFromText(text string) time.Time {
	yearMatch := yearPattern.FindStringSubmatch(text)
	if yearMatch == nil {
		return time.Time{}
	}
	year, _ := strconv.Atoi(yearMatch[1])

	if quarterMatch := quarterPattern.FindStringSubmatch(text); quarterMatch != nil {
		quarter, _ := strconv.Atoi(quarterMatch[1])
		month := time.Month((quarter-1)*3 + 1)
		return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	}
	return time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
}

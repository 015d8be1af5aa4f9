package extractor

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
	}{
		{"2026-09-15", time.Date(2026, time.September, 15, 0, 0, 0, 0, time.UTC)},
		{"January 2, 2026", time.Date(2026, time.January, 2, 0, 0, 0, 0, time.UTC)},
		{"Jan 2, 2026", time.Date(2026, time.January, 2, 0, 0, 0, 0, time.UTC)},
		{"03/04/2026", time.Date(2026, time.March, 4, 0, 0, 0, 0, time.UTC)},
		{"15 September 2026", time.Date(2026, time.September, 15, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		assert.True(t, tt.want.Equal(parseDate(tt.in)), tt.in)
	}

	assert.True(t, parseDate("").IsZero())
	assert.True(t, parseDate("next Tuesday").IsZero())
}

func TestReportDateFromText(t *testing.T) {
	date := reportDateFromText("Q3 2025 Investor Letter")
	assert.Equal(t, time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC), date)

	date = reportDateFromText("Annual Report 2024")
	assert.Equal(t, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), date)

	assert.True(t, reportDateFromText("Fund Overview").IsZero())
}

package format

import (
	"testing"
	"time"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
)

func TestFormatViews(t *testing.T) {
	tests := []struct {
		views    uint64
		expected string
	}{
		{0, "0 views"},
		{999, "999 views"},
		{1000, "1.0K views"},
		{1500, "1.5K views"},
		{999_949, "999.9K views"},
		{1_000_000, "1.0M views"},
		{12_340_000, "12.3M views"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatViews(tt.views))
		})
	}
}

func TestFormatAge(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		at       time.Time
		expected string
	}{
		{"same instant", now, "Today"},
		{"hours ago", now.Add(-5 * time.Hour), "Today"},
		{"one day", now.Add(-25 * time.Hour), "1 day ago"},
		{"several days", now.AddDate(0, 0, -3), "3 days ago"},
		{"thirty days is still days", now.AddDate(0, 0, -30), "30 days ago"},
		{"months", now.AddDate(0, 0, -65), "2 months ago"},
		{"one year", now.AddDate(0, 0, -400), "1 year ago"},
		{"years", now.AddDate(0, 0, -800), "2 years ago"},
		{"future dates use the absolute difference", now.AddDate(0, 0, 3), "3 days ago"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatAge(tt.at, now))
		})
	}
}

func TestTruncateAndPad(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "abcdefghi…", Truncate("abcdefghijklmnop", 10))

	padded := Pad("日本語のタイトルです", 8)
	assert.Equal(t, 8, runewidth.StringWidth(padded))

	assert.Equal(t, "ab   ", Pad("ab", 5))
}

// Package format holds presentation helpers shared by the HTTP API and the CLI.
package format

import (
	"fmt"
	"strconv"
	"time"

	"github.com/mattn/go-runewidth"
)

// ViewsUnavailable is shown when a video has no statistics
const ViewsUnavailable = "Views unavailable"

const day = 24 * time.Hour

// FormatViews renders a view count as "N views", "1.2K views" or "3.4M views"
func FormatViews(views uint64) string {
	switch {
	case views >= 1_000_000:
		return strconv.FormatFloat(float64(views)/1_000_000, 'f', 1, 64) + "M views"
	case views >= 1_000:
		return strconv.FormatFloat(float64(views)/1_000, 'f', 1, 64) + "K views"
	default:
		return fmt.Sprintf("%d views", views)
	}
}

// FormatAge renders how long ago t was relative to now using whole days,
// 30-day months and 365-day years.
func FormatAge(t, now time.Time) string {
	diff := now.Sub(t)
	if diff < 0 {
		diff = -diff
	}
	days := int(diff / day)

	switch {
	case days > 365:
		return plural(days/365, "year") + " ago"
	case days > 30:
		return plural(days/30, "month") + " ago"
	case days > 0:
		return plural(days, "day") + " ago"
	default:
		return "Today"
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return "1 " + unit
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

// Truncate shortens s to at most width terminal cells, ending in "…" when cut
func Truncate(s string, width int) string {
	return runewidth.Truncate(s, width, "…")
}

// Pad right-pads s with spaces to exactly width terminal cells, truncating first
func Pad(s string, width int) string {
	return runewidth.FillRight(Truncate(s, width), width)
}

package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"zentube/internal/domain"
	"zentube/pkg/errors"
	"zentube/pkg/format"

	"github.com/charmbracelet/lipgloss"
)

const (
	titleWidth   = 56
	channelWidth = 22
	viewsWidth   = 18
)

type renderer struct {
	w   io.Writer
	now func() time.Time

	heading lipgloss.Style
	title   lipgloss.Style
	meta    lipgloss.Style
	faint   lipgloss.Style
	failure lipgloss.Style
}

func newRenderer(w io.Writer) *renderer {
	r := lipgloss.NewRenderer(w)
	return &renderer{
		w:       w,
		now:     time.Now,
		heading: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF0033")).MarginBottom(1),
		title:   r.NewStyle().Bold(true),
		meta:    r.NewStyle().Foreground(lipgloss.Color("245")),
		faint:   r.NewStyle().Faint(true),
		failure: r.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
	}
}

func (r *renderer) feed(heading string, page domain.FeedPage) {
	fmt.Fprintln(r.w, r.heading.Render(heading))

	if len(page.Items) == 0 {
		fmt.Fprintln(r.w, r.faint.Render("No videos"))
		return
	}

	now := r.now()
	for i, v := range page.Items {
		fmt.Fprintf(r.w, "%3d  %s  %s  %s  %s\n",
			i+1,
			r.title.Render(format.Pad(v.Title, titleWidth)),
			r.meta.Render(format.Pad(v.ChannelTitle, channelWidth)),
			r.meta.Render(format.Pad(viewsLabel(v), viewsWidth)),
			r.meta.Render(ageLabel(v, now)),
		)
		fmt.Fprintf(r.w, "     %s\n", r.faint.Render(v.ID))
	}

	if page.NextCursor != "" {
		fmt.Fprintln(r.w, r.faint.Render("\nmore available, rerun with a larger --pages"))
	}
}

func (r *renderer) watch(s *domain.WatchSession) {
	v := s.Video
	fmt.Fprintln(r.w, r.heading.Render(v.Title))
	fmt.Fprintln(r.w, r.meta.Render(strings.Join(nonEmpty(v.ChannelTitle, viewsLabel(v), ageLabel(v, r.now())), " · ")))
	fmt.Fprintln(r.w, "https://www.youtube.com/watch?v="+v.ID)

	if d := strings.TrimSpace(v.Description); d != "" {
		fmt.Fprintln(r.w)
		fmt.Fprintln(r.w, r.faint.Render(format.Truncate(firstLine(d), titleWidth+channelWidth)))
	}

	fmt.Fprintln(r.w)
	r.feed("Related", domain.FeedPage{Items: s.Related})
}

func (r *renderer) categories(categories []domain.Category) {
	fmt.Fprintln(r.w, r.heading.Render("Categories"))
	for _, c := range categories {
		fmt.Fprintf(r.w, "%4s  %s\n", c.ID, r.title.Render(c.Name))
	}
}

func (r *renderer) setupStatus(configured bool) {
	if configured {
		fmt.Fprintln(r.w, "API key configured")
		return
	}
	fmt.Fprintln(r.w, r.faint.Render("No API key configured. Run: zentube setup <api-key>"))
}

func (r *renderer) errorLine(err error) string {
	msg := err.Error()
	if appErr, ok := errors.As(err); ok {
		msg = appErr.Message
		if appErr.Type == errors.ErrorTypeConfiguration {
			msg += ". Run: zentube setup <api-key>"
		}
	}
	return r.failure.Render("error: " + msg)
}

func viewsLabel(v domain.VideoItem) string {
	if !v.HasStatistics() {
		return format.ViewsUnavailable
	}
	return format.FormatViews(v.Statistics.ViewCount)
}

func ageLabel(v domain.VideoItem, now time.Time) string {
	if v.PublishedAt.IsZero() {
		return ""
	}
	return format.FormatAge(v.PublishedAt, now)
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

func nonEmpty(parts ...string) []string {
	out := parts[:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

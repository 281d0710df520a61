package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/mohammed-danyal/brainrot-news/internal/domain"
	"github.com/mohammed-danyal/brainrot-news/internal/feedview"
	"github.com/mohammed-danyal/brainrot-news/internal/ingest"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

const titleWidth = 72

func newTable(w io.Writer) *tablewriter.Table {
	return tablewriter.NewTable(w,
		tablewriter.WithConfig(tablewriter.Config{
			Row: tw.CellConfig{
				Formatting: tw.CellFormatting{
					AutoWrap: tw.WrapNone,
				},
				Alignment: tw.CellAlignment{
					Global: tw.AlignLeft,
				},
			},
			Header: tw.CellConfig{
				Formatting: tw.CellFormatting{
					AutoFormat: tw.On,
				},
				Alignment: tw.CellAlignment{
					Global: tw.AlignLeft,
				},
			},
		}),
		tablewriter.WithRendition(tw.Rendition{
			Borders: tw.BorderNone,
			Settings: tw.Settings{
				Separators: tw.Separators{
					ShowHeader: tw.Off,
				},
			},
		}),
	)
}

func heading(w io.Writer, title string) {
	color.New(color.FgWhite, color.Bold).Fprintf(w, "\n%s\n", title)
	color.New(color.FgWhite).Fprintf(w, "%s\n", strings.Repeat("─", len([]rune(title))))
}

func renderArticles(w io.Writer, articles []domain.Article) {
	rows := make([][]string, 0, len(articles))
	for _, a := range articles {
		rows = append(rows, []string{
			a.ID.String(),
			string(a.Category),
			string(a.Section),
			truncate(a.Title, titleWidth),
		})
	}

	t := newTable(w)
	t.Header([]string{"id", "category", "section", "title"})
	_ = t.Bulk(rows)
	_ = t.Render()
}

func renderFeed(w io.Writer, m *feedview.Model) {
	if e := m.EmptyState(); e != feedview.EmptyNone {
		renderEmpty(w, e)
		return
	}

	if trending := m.Trending(); len(trending) > 0 {
		heading(w, m.TrendingHeading())
		renderArticles(w, trending)
	}
	if feed := m.Feed(); len(feed) > 0 {
		heading(w, "Latest Updates")
		renderArticles(w, feed)
	}

	if m.HasMore() {
		color.New(color.Faint).Fprintln(w, "\nmore available, use --more to reveal the next page")
	} else {
		color.New(color.Faint).Fprintln(w, "\n/// END OF TRANSMISSION ///")
	}
}

func renderEmpty(w io.Writer, e feedview.Empty) {
	c := color.New(color.FgYellow)
	if e == feedview.EmptyError {
		c = color.New(color.FgRed)
	}
	c.Fprintln(w, e.Message())
}

func renderDetail(w io.Writer, a domain.Article) {
	heading(w, a.Title)
	color.New(color.FgCyan).Fprintf(w, "[%s] %s\n\n", strings.ToUpper(string(a.Category)), a.Section)
	fmt.Fprintln(w, feedview.DetailSummary(a))
	fmt.Fprintf(w, "\nimage:  %s\nsource: %s\n", a.ImageURL, a.SourceURL)
}

func renderReport(w io.Writer, r ingest.Report) {
	t := newTable(w)
	t.Header([]string{"inserted", "enriched", "fallback", "duplicates", "malformed", "source failures"})
	_ = t.Append([]string{
		strconv.Itoa(r.Inserted),
		strconv.Itoa(r.Enriched),
		strconv.Itoa(r.Fallbacks),
		strconv.Itoa(r.Duplicates),
		strconv.Itoa(r.Malformed),
		strconv.Itoa(r.SourceFailures),
	})
	_ = t.Render()
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

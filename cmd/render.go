package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"waifulist/core/reconcile"
	"waifulist/feature/catalog"
	"waifulist/feature/collection"
	"waifulist/feature/health"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	mutedStyle   = lipgloss.NewStyle().Faint(true)
	missingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#e53935"))
	sharedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#8BC34A"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFC107"))
	headerStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printListing writes a listing as a header and a table.
func printListing(w io.Writer, l *collection.Listing) {
	fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("%s (%s)", l.User.Name, l.Source)))
	if l.User.Quote != "" {
		fmt.Fprintln(w, mutedStyle.Render(l.User.Quote))
	}
	if l.Stale {
		at := ""
		if l.FetchedAt != nil {
			at = " from " + l.FetchedAt.Format("2006-01-02 15:04")
		}
		fmt.Fprintln(w, warnStyle.Render("collection service unreachable, showing snapshot"+at))
	}
	if len(l.Compare) > 0 {
		names := make([]string, 0, len(l.Compare))
		for _, u := range l.Compare {
			names = append(names, u.Name)
		}
		fmt.Fprintln(w, mutedStyle.Render("compared with "+strings.Join(names, ", ")))
	}

	sortLabel := l.Sort.Key.String()
	if l.Sort.Reversed {
		sortLabel += " (reversed)"
	}
	fmt.Fprintln(w, mutedStyle.Render(fmt.Sprintf(
		"%d owned, %d missing, %d shared, showing %d of %d, sorted by %s",
		l.Summary.Owned, l.Summary.Missing, l.Summary.Shared, l.Summary.Shown, l.Summary.Total, sortLabel,
	)))

	if len(l.Characters) == 0 {
		fmt.Fprintln(w, mutedStyle.Render("no characters"))
		return
	}

	rows := make([][]string, 0, len(l.Characters))
	for _, c := range l.Characters {
		rows = append(rows, characterRow(c))
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "NAME", "DATE", "OWNERS").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			c := l.Characters[row]
			switch {
			case c.Missing:
				return cellStyle.Inherit(missingStyle)
			case c.Owners != nil:
				return cellStyle.Inherit(sharedStyle)
			}
			return cellStyle
		})
	fmt.Fprintln(w, t.Render())
}

func characterRow(c reconcile.OwnedCharacter) []string {
	date := ""
	if c.HasDate() {
		date = c.Date.Format("2006-01-02")
	}
	if c.Missing {
		date = "missing"
	}
	return []string{string(c.ID), c.Name, date, strings.Join(c.Owners, ", ")}
}

func printMedia(w io.Writer, media []catalog.Media) {
	rows := make([][]string, 0, len(media))
	for _, m := range media {
		rows = append(rows, []string{strconv.FormatInt(m.ID, 10), m.Title})
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "TITLE").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	fmt.Fprintln(w, t.Render())
}

func printRoster(w io.Writer, roster []reconcile.Character) {
	rows := make([][]string, 0, len(roster))
	for _, c := range roster {
		rows = append(rows, []string{string(c.ID), c.Name})
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "NAME").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	fmt.Fprintln(w, t.Render())
}

func printHealth(w io.Writer, report health.Report) {
	for _, c := range report.Checks {
		style := sharedStyle
		switch c.Status {
		case health.StatusDown:
			style = missingStyle
		case health.StatusDisabled:
			style = mutedStyle
		}
		line := fmt.Sprintf("%-10s %-8s %s", c.Name, c.Status, c.Latency)
		if c.Error != "" {
			line += "  " + c.Error
		}
		fmt.Fprintln(w, style.Render(line))
	}
}

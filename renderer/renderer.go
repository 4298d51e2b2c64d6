// Package renderer builds markdown reports from engine aggregates. It owns
// formatting only; all numbers come in already computed.
package renderer

import (
	"fmt"
	"slices"
	"strings"

	"github.com/ecodex/carbontrack"
)

// maxBarWidth is the width of the largest bar in a daily series chart.
const maxBarWidth = 40

// SummaryMarkdown renders the aggregate report for one user.
func SummaryMarkdown(username string, s *carbontrack.Summary, tip string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Footprint Summary for %s on %s\n\n", username, s.Date)
	fmt.Fprintf(&b, "Weekly total: **%.2f kg CO2e**\n\n", s.WeeklyTotal)
	fmt.Fprintf(&b, "Goal: %.2f kg CO2e (%s), %.0f%% used\n", s.Goal, s.GoalType, s.Progress*100)

	if len(s.Breakdown) > 0 {
		b.WriteString("\n## By Category (last 7 days)\n\n")
		b.WriteString("| Category | kg CO2e |\n|---|---:|\n")
		// Known categories first in their fixed order, so equal runs render stably.
		for cat := range carbontrack.Categories() {
			if total, ok := s.Breakdown[cat.String()]; ok {
				fmt.Fprintf(&b, "| %s | %.2f |\n", cat, total)
			}
		}
		var extras []string
		for cat := range s.Breakdown {
			if _, err := carbontrack.ParseCategory(cat); err != nil {
				extras = append(extras, cat)
			}
		}
		slices.Sort(extras)
		for _, cat := range extras {
			fmt.Fprintf(&b, "| %s | %.2f |\n", cat, s.Breakdown[cat])
		}
		fmt.Fprintf(&b, "\nTop contributing category: **%s**\n", s.TopCategory)
	}

	if len(s.Series) > 0 {
		fmt.Fprintf(&b, "\n## Last %d Days\n\n", len(s.Series))
		b.WriteString(SeriesChart(s.Series))
	}

	if tip != "" {
		fmt.Fprintf(&b, "\n> Tip: %s\n", tip)
	}
	return b.String()
}

// SeriesChart renders a daily series as a monospace bar chart block.
func SeriesChart(series []carbontrack.DailyPoint) string {
	peak := 0.0
	for _, p := range series {
		if p.Footprint > peak {
			peak = p.Footprint
		}
	}

	var b strings.Builder
	b.WriteString("```\n")
	for _, p := range series {
		width := 0
		if peak > 0 {
			width = int(p.Footprint / peak * maxBarWidth)
		}
		fmt.Fprintf(&b, "%s %s %.2f\n", p.Date, strings.Repeat("█", width), p.Footprint)
	}
	b.WriteString("```\n")
	return b.String()
}

// ComparisonMarkdown renders the population comparison for one user.
func ComparisonMarkdown(username string, c carbontrack.Comparison) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Population Comparison for %s\n\n", username)
	fmt.Fprintf(&b, "| | kg CO2e / week |\n|---|---:|\n")
	fmt.Fprintf(&b, "| Your weekly total | %.2f |\n", c.UserTotal)
	fmt.Fprintf(&b, "| Population average | %.2f |\n\n", c.SystemAverage)

	switch {
	case c.SystemAverage == 0:
		b.WriteString("There is no population activity to compare against yet.\n")
	case c.PercentDiff < 0:
		fmt.Fprintf(&b, "Your footprint is **%.1f%% below** the population average. 🎉\n", -c.PercentDiff)
	case c.PercentDiff > 0:
		fmt.Fprintf(&b, "Your footprint is **%.1f%% above** the population average.\n", c.PercentDiff)
	default:
		b.WriteString("Your footprint matches the population average.\n")
	}
	return b.String()
}

// LogsMarkdown renders the log history as an index-addressed table. The index
// column is the positional index used by the edit and rm commands.
func LogsMarkdown(username string, logs []carbontrack.LogEntry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Activity Log for %s\n\n", username)
	if len(logs) == 0 {
		b.WriteString("No activity logged yet.\n")
		return b.String()
	}
	b.WriteString("| # | Timestamp | Category | Activity | Value | kg CO2e | Description |\n")
	b.WriteString("|---:|---|---|---|---:|---:|---|\n")
	for i, e := range logs {
		fmt.Fprintf(&b, "| %d | %s | %s | %s | %g | %.2f | %s |\n",
			i, e.Timestamp, e.Category, e.Activity, e.Value, e.Footprint, e.Description)
	}
	return b.String()
}

// ActivitiesMarkdown lists the known activities and factors per category.
func ActivitiesMarkdown() string {
	var b strings.Builder
	b.WriteString("# Known Activities\n")
	for cat := range carbontrack.Categories() {
		fmt.Fprintf(&b, "\n## %s\n\n| Activity | kg CO2e per unit |\n|---|---:|\n", cat)
		for _, name := range cat.Activities() {
			fmt.Fprintf(&b, "| %s | %g |\n", name, cat.Factors()[name])
		}
	}
	return b.String()
}

// Package report renders sweep results as markdown summaries and HTML.
package report

import (
	"fmt"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"critval/app"
)

var familyTitles = map[app.Family]string{
	app.FamilyOneSample:   "One-sample t-test",
	app.FamilyTwoSample:   "Two-sample t-test",
	app.FamilyPaired:      "Paired t-test",
	app.FamilyCorrelation: "Correlation test",
}

// RenderSweep produces a markdown table of the evaluated grid.
func RenderSweep(result *app.SweepResult) string {
	title, ok := familyTitles[result.Family]
	if !ok {
		title = string(result.Family)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Critical values: %s\n\n", title)
	fmt.Fprintf(&b, "Sweep `%s`, %d cells evaluated in %dms.\n\n", result.SweepID, len(result.Rows), result.RuntimeMs)

	b.WriteString("| n | conf. level | critical quantile | critical effect | corrected effect |\n")
	b.WriteString("|---|---|---|---|---|\n")
	for _, row := range result.Rows {
		fmt.Fprintf(&b, "| %.0f | %.3f | %.4f | %.4f | %.4f |\n",
			row.N, row.ConfLevel, row.CriticalQuantile, row.CriticalEffect, row.CorrectedEffect)
	}
	return b.String()
}

// ToHTML converts a markdown document to a standalone HTML fragment.
func ToHTML(md string) []byte {
	p := parser.NewWithExtensions(parser.CommonExtensions)
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
	return markdown.ToHTML([]byte(md), p, renderer)
}

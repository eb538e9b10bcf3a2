package report

import (
	"context"
	"sort"
	"strings"

	"masterylint/internal/lint"
)

// RenderReportHTML renders the report component into a string.
func RenderReportHTML(ctx context.Context, results lint.Results) (string, error) {
	var builder strings.Builder
	if err := ReportPage(results).Render(ctx, &builder); err != nil {
		return "", err
	}
	return builder.String(), nil
}

// sortedKinds returns finding kinds in stable display order.
func sortedKinds(byKind map[string]int) []string {
	kinds := make([]string, 0, len(byKind))
	for kind := range byKind {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	return kinds
}

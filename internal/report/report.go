package report

import (
	"context"

	"masterylint/internal/lint"
)

// BuildReportHTML renders the HTML report for a lint run.
func BuildReportHTML(results lint.Results) (string, error) {
	return RenderReportHTML(context.Background(), results)
}

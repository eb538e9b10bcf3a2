package report

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"masterylint/internal/lint"
)

const pageStyle = `body{font-family:ui-sans-serif,system-ui,sans-serif;margin:2rem;color:#1a1a1a}
h1{font-size:1.4rem}h2{font-size:1.1rem;margin-top:2rem}
table{border-collapse:collapse;margin-top:.5rem}
th,td{border:1px solid #ccc;padding:.3rem .6rem;text-align:left;font-size:.9rem}
th{background:#f4f4f4}
.clean{color:#1a7f37}.findings{color:#b35900}.error{color:#cf222e}
code{background:#f4f4f4;padding:.1rem .3rem;border-radius:3px}`

// ReportPage builds the HTML report component for one lint run.
func ReportPage(results lint.Results) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		p := func(format string, args ...any) error {
			_, err := fmt.Fprintf(w, format, args...)
			return err
		}
		esc := func(s string) string { return templ.EscapeString(s) }

		if err := p("<!doctype html>\n<html><head><meta charset=\"utf-8\"><title>masterylint Report</title><style>%s</style></head><body>\n", pageStyle); err != nil {
			return err
		}
		if err := p("<h1>masterylint Report</h1>\n<p>Run <code>%s</code> on <code>%s</code> commit <code>%s</code> (id scope: %s)</p>\n",
			esc(results.RunID), esc(results.Repo.Name), esc(shortCommit(results.Repo.Commit)), esc(results.IDScope)); err != nil {
			return err
		}

		summary := results.Summary
		if err := p("<h2>Summary</h2>\n<table><tr><th>Files</th><th>Clean</th><th>With findings</th><th>Errored</th><th>Blocks</th><th>Valid blocks</th><th>Findings</th><th>Clean rate</th></tr>"); err != nil {
			return err
		}
		if err := p("<tr><td>%d</td><td>%d</td><td>%d</td><td>%d</td><td>%d</td><td>%d</td><td>%d</td><td>%s%%</td></tr></table>\n",
			summary.FilesTotal, summary.FilesClean, summary.FilesWithFindings, summary.FilesErrored,
			summary.BlocksTotal, summary.BlocksValid, summary.FindingsTotal, formatCleanRate(summary.FilesClean, summary.FilesTotal)); err != nil {
			return err
		}

		if len(summary.FindingsByKind) > 0 {
			if err := p("<h2>Findings by kind</h2>\n<table><tr><th>Kind</th><th>Count</th></tr>"); err != nil {
				return err
			}
			for _, kind := range sortedKinds(summary.FindingsByKind) {
				if err := p("<tr><td><code>%s</code></td><td>%d</td></tr>", esc(kind), summary.FindingsByKind[kind]); err != nil {
					return err
				}
			}
			if err := p("</table>\n"); err != nil {
				return err
			}
		}

		if err := p("<h2>Files</h2>\n"); err != nil {
			return err
		}
		for _, file := range results.Files {
			if err := p("<h3><code>%s</code> <span class=\"%s\">%s</span></h3>\n", esc(file.Path), esc(string(file.Status)), esc(string(file.Status))); err != nil {
				return err
			}
			if file.ReadErr != "" {
				if err := p("<p class=\"error\">%s</p>\n", esc(file.ReadErr)); err != nil {
					return err
				}
			}
			if len(file.Findings) == 0 {
				continue
			}
			if err := p("<table><tr><th>Line</th><th>Kind</th><th>Block</th><th>Field</th><th>Message</th></tr>"); err != nil {
				return err
			}
			for _, finding := range file.Findings {
				if err := p("<tr><td>%d</td><td><code>%s</code></td><td><code>%s</code></td><td>%s</td><td>%s</td></tr>",
					finding.Line, esc(string(finding.Kind)), esc(finding.BlockID), esc(finding.Field), esc(finding.Message)); err != nil {
					return err
				}
			}
			if err := p("</table>\n"); err != nil {
				return err
			}
		}
		return p("</body></html>\n")
	})
}

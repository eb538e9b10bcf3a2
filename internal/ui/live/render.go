package live

import (
	"time"

	"github.com/charmbracelet/lipgloss"
)

// renderHeader renders the run header line.
func renderHeader(state State, now time.Time, noColor bool) string {
	elapsed := ""
	if !state.StartedAt.IsZero() {
		elapsed = now.Sub(state.StartedAt).Round(100 * time.Millisecond).String()
	}
	line := "Lint " + state.RunID
	if state.Repo != "" {
		line += " | Repo: " + state.Repo
	}
	if elapsed != "" {
		line += " | Elapsed: " + elapsed
	}
	return stylize(line, noColor, lipgloss.Color("33"))
}

// renderSummary renders the status counts line.
func renderSummary(state State, noColor bool) string {
	counts := state.Counts
	line := "Files: " + fmtInt(state.FileTotal) +
		" Queued: " + fmtInt(counts.Queued) +
		" Scanning: " + fmtInt(counts.Scanning) +
		" Clean: " + fmtInt(counts.Clean) +
		" Findings: " + fmtInt(counts.Findings) +
		" Errors: " + fmtInt(counts.Errors)
	return stylize(line, noColor, lipgloss.Color("242"))
}

// renderFooter renders the last event line, or the final summary.
func renderFooter(state State, noColor bool) string {
	if state.Finished {
		line := "Done: " + fmtInt(state.Summary.FindingsTotal) + " finding(s) in " +
			fmtInt(state.Summary.FilesWithFindings) + " of " + fmtInt(state.Summary.FilesTotal) + " file(s)"
		return stylize(line, noColor, lipgloss.Color("252"))
	}
	if state.LastEvent == "" {
		return ""
	}
	return stylize("Last event: "+state.LastEvent, noColor, lipgloss.Color("244"))
}

// stylize applies optional color styling.
func stylize(text string, noColor bool, color lipgloss.Color) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}

package report

import "fmt"

// formatCleanRate returns a percentage string for report output.
func formatCleanRate(clean, total int) string {
	if total == 0 {
		return "100.00"
	}
	return fmt.Sprintf("%.2f", float64(clean)/float64(total)*100)
}

// shortCommit truncates a commit hash for display.
func shortCommit(commit string) string {
	if len(commit) > 12 {
		return commit[:12]
	}
	return commit
}

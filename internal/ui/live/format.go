package live

import (
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"masterylint/internal/lint"
)

// fmtInt converts an int to string.
func fmtInt(value int) string {
	return strconv.Itoa(value)
}

// formatPath truncates a document path for display, keeping the tail.
func formatPath(path string) string {
	const limit = 60
	if len(path) <= limit {
		return path
	}
	return "..." + path[len(path)-limit+3:]
}

// formatStatus renders a status string for a row.
func formatStatus(row FileRow, noColor bool) string {
	label := statusLabel(row.Status)
	if row.Status == lint.FileError && row.Error != "" {
		label = label + " (" + firstLine(row.Error) + ")"
	}
	return stylizeStatus(label, row.Status, noColor)
}

// statusLabel maps status codes to display labels.
func statusLabel(status lint.FileEventType) string {
	switch status {
	case lint.FileQueued:
		return "queued"
	case lint.FileScanning:
		return "scanning"
	case lint.FileClean:
		return "clean"
	case lint.FileFindings:
		return "findings"
	case lint.FileError:
		return "error"
	default:
		return string(status)
	}
}

// firstLine trims an error to its first line for display.
func firstLine(text string) string {
	if idx := strings.IndexByte(text, '\n'); idx >= 0 {
		return text[:idx]
	}
	return text
}

// formatRowDuration returns elapsed or total time for a row.
func formatRowDuration(row FileRow, now time.Time) string {
	if !row.FinishedAt.IsZero() && !row.StartedAt.IsZero() {
		return row.FinishedAt.Sub(row.StartedAt).Round(time.Millisecond).String()
	}
	if !row.StartedAt.IsZero() {
		return now.Sub(row.StartedAt).Round(time.Millisecond).String()
	}
	return ""
}

// formatCount renders a count, hiding zeros for quiet rows.
func formatCount(value int) string {
	if value <= 0 {
		return ""
	}
	return fmtInt(value)
}

// stylizeStatus applies status coloring when enabled.
func stylizeStatus(text string, status lint.FileEventType, noColor bool) string {
	if noColor {
		return text
	}
	return statusStyle(status).Render(text)
}

// statusStyle selects a style for a given status.
func statusStyle(status lint.FileEventType) lipgloss.Style {
	color := lipgloss.Color("244")
	switch status {
	case lint.FileClean:
		color = lipgloss.Color("42")
	case lint.FileFindings:
		color = lipgloss.Color("220")
	case lint.FileError:
		color = lipgloss.Color("196")
	case lint.FileScanning:
		color = lipgloss.Color("33")
	case lint.FileQueued:
		color = lipgloss.Color("246")
	}
	return lipgloss.NewStyle().Foreground(color)
}

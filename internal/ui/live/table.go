package live

import (
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// defaultColumns returns the file table layout.
func defaultColumns() []table.Column {
	return []table.Column{
		{Title: "File", Width: 60},
		{Title: "Status", Width: 20},
		{Title: "Blocks", Width: 7},
		{Title: "Findings", Width: 9},
		{Title: "Elapsed", Width: 10},
	}
}

// tableStyles returns table styles for the UI.
func tableStyles(noColor bool) table.Styles {
	if noColor {
		return table.DefaultStyles()
	}
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Foreground(lipgloss.Color("252"))
	return styles
}

// rowsForState converts UI state into table rows.
func rowsForState(state State, now time.Time, noColor bool) []table.Row {
	rows := make([]table.Row, 0, len(state.Rows))
	for _, row := range state.Rows {
		rows = append(rows, table.Row{
			formatPath(row.Path),
			formatStatus(row, noColor),
			formatCount(row.Blocks),
			formatCount(row.Findings),
			formatRowDuration(row, now),
		})
	}
	return rows
}

package main

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

const tableColumns = 6

// renderCandidateTable flows words left to right into a fixed number
// of columns.
func renderCandidateTable(words []string) string {
	if len(words) == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	for i := 0; i < len(words); i += tableColumns {
		row := make(table.Row, 0, tableColumns)
		for j := i; j < i+tableColumns && j < len(words); j++ {
			row = append(row, words[j])
		}
		tw.AppendRow(row)
	}

	columnConfigs := make([]table.ColumnConfig, 0, tableColumns)
	for i := 0; i < tableColumns; i++ {
		columnConfigs = append(columnConfigs, table.ColumnConfig{
			Number: i + 1,
			Align:  text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(columnConfigs)

	return tw.Render()
}

package tui

import (
	"fmt"
	"strings"

	"renamefiles/internal/processor"
)

type SummaryRow struct {
	Label string
	Value string
}

func SummaryRows(summary processor.Summary) []SummaryRow {
	return []SummaryRow{
		{Label: "Entries scanned", Value: fmt.Sprintf("%d", summary.Scanned)},
		{Label: "Skipped", Value: fmt.Sprintf("%d", summary.Skipped)},
		{Label: "Renamed", Value: fmt.Sprintf("%d", summary.Renamed)},
		{Label: "Total matches", Value: fmt.Sprintf("%d", summary.Matched)},
	}
}

func (s Styles) RenderSummary(rows []SummaryRow) string {
	labelWidth := 0
	valueWidth := 0
	for _, row := range rows {
		if len(row.Label) > labelWidth {
			labelWidth = len(row.Label)
		}
		if len(row.Value) > valueWidth {
			valueWidth = len(row.Value)
		}
	}

	hline := s.Dim.Render(strings.Repeat("-", labelWidth+valueWidth+3))
	lines := []string{hline}

	for _, row := range rows {
		label := padRight(row.Label, labelWidth)
		value := padRight(row.Value, valueWidth)
		lines = append(lines, fmt.Sprintf("%s | %s", s.Label.Render(label), s.Value.Render(value)))
	}

	lines = append(lines, hline)
	return strings.Join(lines, "\n")
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

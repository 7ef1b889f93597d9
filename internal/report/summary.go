package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/atasolouki/DX-Solutions-sentiment-analysis/internal/domain/entity"
)

const barWidth = 40

// Summary holds per-label counts for a classified feedback table
type Summary struct {
	Total  int
	Counts map[entity.Label]int
}

// labelOrder fixes the display order of the chart
var labelOrder = []entity.Label{entity.LabelPositive, entity.LabelNegative}

// Summarize counts records per normalized label
func Summarize(table entity.FeedbackTable) Summary {
	return Summary{
		Total:  len(table),
		Counts: table.CountByLabel(),
	}
}

// Render writes a fixed-width text bar chart of label counts.
// Bars are scaled so the largest count fills the full width.
func (s Summary) Render(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "Sentiment distribution (%d records)\n", s.Total); err != nil {
		return err
	}

	max := 0
	for _, label := range labelOrder {
		if s.Counts[label] > max {
			max = s.Counts[label]
		}
	}

	for _, label := range labelOrder {
		count := s.Counts[label]
		width := 0
		if max > 0 {
			width = count * barWidth / max
		}
		bar := strings.Repeat("#", width)
		if _, err := fmt.Fprintf(w, "%-8s %-*s %d\n", label, barWidth, bar, count); err != nil {
			return err
		}
	}

	return nil
}

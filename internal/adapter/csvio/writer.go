package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/atasolouki/DX-Solutions-sentiment-analysis/internal/domain/entity"
)

// WriteTable writes the annotated feedback table as CSV with a
// feedback,label,score header, preserving the table's row order.
// Scores are formatted with four decimal places.
func WriteTable(w io.Writer, table entity.FeedbackTable) error {
	writer := csv.NewWriter(w)

	if err := writer.Write([]string{"feedback", "label", "score"}); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, record := range table {
		row := []string{
			record.Text,
			string(record.Label),
			strconv.FormatFloat(record.Score, 'f', 4, 64),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// WriteTableFile writes the annotated feedback table to a CSV file
func WriteTableFile(path string, table entity.FeedbackTable) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer f.Close()

	if err := WriteTable(f, table); err != nil {
		return err
	}
	return f.Close()
}

package csvio

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

// DefaultFeedbackColumn is the column the feedback table is expected to carry
const DefaultFeedbackColumn = "feedback"

// ReadTexts reads a CSV stream and returns the values of the named column in
// row order. Column matching is case-insensitive. Blank cells and fully blank
// lines are kept as empty texts so the output sequence stays aligned with the
// input rows; encoding/csv on its own silently skips blank lines, which would
// break that alignment.
func ReadTexts(r io.Reader, column string) ([]string, error) {
	if column == "" {
		column = DefaultFeedbackColumn
	}

	records, err := readRecords(r)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("empty input: missing header row")
	}

	header := records[0]
	colIdx := -1
	for i, name := range header {
		if strings.EqualFold(strings.TrimSpace(name), column) {
			colIdx = i
			break
		}
	}
	if colIdx == -1 {
		return nil, fmt.Errorf("column %q not found in header %v", column, header)
	}

	texts := make([]string, 0, len(records)-1)
	for _, record := range records[1:] {
		if colIdx >= len(record) {
			texts = append(texts, "")
			continue
		}
		texts = append(texts, record[colIdx])
	}

	return texts, nil
}

// readRecords splits the input into CSV records one at a time so blank lines
// become empty rows instead of disappearing. A record may span several lines
// when a quoted field contains newlines; quote-count parity marks where the
// record ends.
func readRecords(r io.Reader) ([][]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)

	var records [][]string
	var chunk strings.Builder
	quotes := 0
	row := 0

	flush := func() error {
		raw := chunk.String()
		chunk.Reset()
		quotes = 0
		row++

		if strings.TrimRight(raw, "\r") == "" {
			records = append(records, []string{""})
			return nil
		}

		cr := csv.NewReader(strings.NewReader(raw))
		cr.FieldsPerRecord = -1
		record, err := cr.Read()
		if err != nil {
			return fmt.Errorf("read row %d: %w", row, err)
		}
		records = append(records, record)
		return nil
	}

	for scanner.Scan() {
		line := scanner.Text()
		if chunk.Len() > 0 {
			chunk.WriteString("\n")
		}
		chunk.WriteString(line)
		quotes += strings.Count(line, `"`)
		if quotes%2 == 1 {
			// inside a quoted field that continues on the next line
			continue
		}
		if err := flush(); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	if chunk.Len() > 0 {
		if err := flush(); err != nil {
			return nil, err
		}
	}

	return records, nil
}

// ReadTextsFile opens a CSV file and reads the named feedback column
func ReadTextsFile(path, column string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input file: %w", err)
	}
	defer f.Close()
	return ReadTexts(f, column)
}

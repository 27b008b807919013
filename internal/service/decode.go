package service

import (
	"encoding/csv"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptySheet means the export came back blank, usually because the
	// publisher was mid-save.
	ErrEmptySheet = errors.New("sheet export is empty")
	// ErrNoTable means the export had content but no usable header row.
	ErrNoTable = errors.New("sheet export has no table")
)

// RawRow is one data row of the sheet keyed by the header labels. Values
// are raw cell text; cells missing from short rows are empty strings.
type RawRow map[string]string

// DecodeSheet parses the CSV export of the tracking sheet. Only the first
// table is read: the first line names the columns and every following line
// becomes one RawRow, in sheet order. Rows shorter than the header get
// empty strings for the missing cells; extra cells are ignored.
func DecodeSheet(text string) ([]RawRow, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptySheet
	}

	reader := csv.NewReader(strings.NewReader(text))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	lines, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoTable, err)
	}
	if len(lines) == 0 {
		return nil, ErrNoTable
	}

	header := make([]string, len(lines[0]))
	usable := false
	for i, label := range lines[0] {
		header[i] = strings.TrimSpace(label)
		if header[i] != "" {
			usable = true
		}
	}
	if !usable {
		return nil, ErrNoTable
	}

	rows := make([]RawRow, 0, len(lines)-1)
	for _, line := range lines[1:] {
		row := make(RawRow, len(header))
		for i, label := range header {
			if label == "" {
				continue
			}
			if i < len(line) {
				row[label] = line[i]
			} else {
				row[label] = ""
			}
		}
		rows = append(rows, row)
	}

	return rows, nil
}

package importer

import (
	"encoding/csv"
	"io"
	"strings"
)

// Recognized header names. Any extra columns are ignored.
const (
	colName        = "name"
	colDescription = "description"
	colCategory    = "category"
	colPrice       = "price"
	colAllergens   = "allergens"
)

// ExtractCSV parses delimited text into RawRows, using the header row
// as field names. The name column is mandatory; without it the whole
// file is rejected and no rows are produced. Parser-level errors
// (malformed quoting etc.) surface as a single generic failure with
// no per-line recovery.
func ExtractCSV(r io.Reader) ([]RawRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, ErrCSVParse
	}

	if len(records) == 0 {
		return nil, ErrMissingNameColumn
	}

	columns := make(map[string]int)
	for i, header := range records[0] {
		columns[strings.ToLower(strings.TrimSpace(header))] = i
	}

	if _, ok := columns[colName]; !ok {
		return nil, ErrMissingNameColumn
	}

	field := func(record []string, column string) string {
		idx, ok := columns[column]
		if !ok || idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[idx])
	}

	rows := make([]RawRow, 0, len(records)-1)
	for _, record := range records[1:] {
		rows = append(rows, RawRow{
			Name:        field(record, colName),
			Description: field(record, colDescription),
			Category:    field(record, colCategory),
			Price:       field(record, colPrice),
			Allergens:   field(record, colAllergens),
		})
	}

	return rows, nil
}

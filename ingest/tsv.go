// Package ingest reads the tab-separated source sheets into row structs
// for catalog construction. The files are exports of the curated
// spreadsheet: a header row naming the columns, then one record per
// line. Readers tolerate reordered and trailing extra columns by
// resolving every column through the header.
package ingest

import (
	"encoding/csv"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/giovannicoppola/alfred-WhoWasWhen/catalog"
	"github.com/giovannicoppola/alfred-WhoWasWhen/errors"
)

// Column names as they appear in the sheet headers.
var (
	rulerColumns = []string{"RulerID", "Name", "Personal Name", "Wikipedia", "Epithet", "Notes"}
	reignColumns = []string{"Title", "RulerID", "Period", "Notes"}
	eventColumns = []string{"Name", "Period", "Notes", "Wikipedia"}
)

// ReadRulers reads the rulers sheet.
func ReadRulers(path string, logger *zap.SugaredLogger) ([]catalog.RulerRow, error) {
	records, header, err := readSheet(path, rulerColumns, logger)
	if err != nil {
		return nil, err
	}

	rows := make([]catalog.RulerRow, 0, len(records))
	for _, record := range records {
		rows = append(rows, catalog.RulerRow{
			RulerID:      header.field(record, "RulerID"),
			Name:         header.field(record, "Name"),
			PersonalName: header.field(record, "Personal Name"),
			Link:         header.field(record, "Wikipedia"),
			Epithet:      header.field(record, "Epithet"),
			Notes:        header.field(record, "Notes"),
		})
	}
	return rows, nil
}

// ReadReigns reads the periods sheet.
func ReadReigns(path string, logger *zap.SugaredLogger) ([]catalog.ReignRow, error) {
	records, header, err := readSheet(path, reignColumns, logger)
	if err != nil {
		return nil, err
	}

	rows := make([]catalog.ReignRow, 0, len(records))
	for _, record := range records {
		rows = append(rows, catalog.ReignRow{
			Title:   header.field(record, "Title"),
			RulerID: header.field(record, "RulerID"),
			Period:  header.field(record, "Period"),
			Notes:   header.field(record, "Notes"),
		})
	}
	return rows, nil
}

// ReadEvents reads the events sheet. The sheet is optional: a missing
// file yields no events rather than an error.
func ReadEvents(path string, logger *zap.SugaredLogger) ([]catalog.EventRow, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if logger != nil {
			logger.Debugw("No events sheet, skipping", "path", path)
		}
		return nil, nil
	}

	records, header, err := readSheet(path, eventColumns, logger)
	if err != nil {
		return nil, err
	}

	rows := make([]catalog.EventRow, 0, len(records))
	for _, record := range records {
		rows = append(rows, catalog.EventRow{
			Name:   header.field(record, "Name"),
			Period: header.field(record, "Period"),
			Notes:  header.field(record, "Notes"),
			Link:   header.field(record, "Wikipedia"),
		})
	}
	return rows, nil
}

// headerIndex resolves sheet columns by name.
type headerIndex map[string]int

// field returns the named column of a record, or "" when the column is
// absent or the record is short.
func (h headerIndex) field(record []string, column string) string {
	i, ok := h[column]
	if !ok || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

// readSheet parses a tab-separated file and returns its data records
// plus the header index. A header that does not carry the expected
// columns is logged but not fatal; missing columns read as empty.
func readSheet(path string, expected []string, logger *zap.SugaredLogger) ([][]string, headerIndex, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "open sheet %s", path)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = '\t'
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	headerRecord, err := r.Read()
	if err == io.EOF {
		return nil, nil, errors.NewValidationError("sheet %s is empty", path)
	}
	if err != nil {
		return nil, nil, errors.Wrapf(err, "read header of %s", path)
	}

	header := make(headerIndex, len(headerRecord))
	for i, name := range headerRecord {
		header[strings.TrimSpace(name)] = i
	}
	for _, column := range expected {
		if _, ok := header[column]; !ok && logger != nil {
			logger.Warnw("Sheet header missing expected column",
				"path", path, "column", column)
		}
	}

	var records [][]string
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, errors.Wrapf(err, "read %s", path)
		}
		if isBlank(record) {
			continue
		}
		records = append(records, record)
	}

	if logger != nil {
		logger.Debugw("Sheet loaded", "path", path, "rows", len(records))
	}
	return records, header, nil
}

func isBlank(record []string) bool {
	for _, field := range record {
		if strings.TrimSpace(field) != "" {
			return false
		}
	}
	return true
}

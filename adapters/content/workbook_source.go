package content

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"roadmap/domain/quarter"
	"roadmap/internal"
	"roadmap/internal/errors"

	"github.com/xuri/excelize/v2"
)

// WorkbookSource reads an .xlsx file: one sheet per year, named after the
// year, with a header row holding "quarter", "title" and "blurb" columns.
type WorkbookSource struct {
	path string
	log  *internal.Logger
}

// NewWorkbookSource returns a source for path.
func NewWorkbookSource(path string) *WorkbookSource {
	return &WorkbookSource{path: path, log: internal.DefaultLogger.With("workbook")}
}

func (s *WorkbookSource) Describe() string {
	return "xlsx:" + s.path
}

func (s *WorkbookSource) Load(ctx context.Context) (*quarter.Book, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := excelize.OpenFile(s.path)
	if err != nil {
		return nil, errors.Wrapf(err, "open workbook %s", s.path)
	}
	defer f.Close()

	entries := yearEntries{}
	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			return nil, errors.Wrapf(err, "read sheet %s", sheet)
		}
		s.log.Debug("sheet %s: %d rows", sheet, len(rows))
		if err := addRows(entries, rows, []string{"quarter", "title", "blurb"}, func(row map[string]string) string {
			return sheet
		}); err != nil {
			return nil, errors.Wrapf(err, "sheet %s", sheet)
		}
	}
	if len(entries) == 0 {
		return nil, errors.ValidationError("workbook has no roadmap rows")
	}
	return entries.book("")
}

// CSVSource reads a flat .csv file with "year", "quarter", "title" and
// "blurb" columns.
type CSVSource struct {
	path string
}

// NewCSVSource returns a source for path.
func NewCSVSource(path string) *CSVSource {
	return &CSVSource{path: path}
}

func (s *CSVSource) Describe() string {
	return "csv:" + s.path
}

func (s *CSVSource) Load(ctx context.Context) (*quarter.Book, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	file, err := os.Open(s.path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", s.path)
	}
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, errors.Wrap(errors.InvalidInput(err.Error()), "read csv content")
	}

	entries := yearEntries{}
	if err := addRows(entries, rows, []string{"year", "quarter", "title", "blurb"}, func(row map[string]string) string {
		return row["year"]
	}); err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, errors.ValidationError("csv has no roadmap rows")
	}
	return entries.book("")
}

// addRows reads a header row plus data rows. Empty rows are skipped.
func addRows(entries yearEntries, rows [][]string, required []string, yearOf func(map[string]string) string) error {
	if len(rows) == 0 {
		return nil
	}

	index := make(map[string]int, len(rows[0]))
	for i, h := range rows[0] {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, col := range required {
		if _, ok := index[col]; !ok {
			return errors.ValidationError(fmt.Sprintf("missing %q column", col))
		}
	}

	for n, raw := range rows[1:] {
		row := make(map[string]string, len(index))
		empty := true
		for col, i := range index {
			if i < len(raw) {
				row[col] = strings.TrimSpace(raw[i])
				if row[col] != "" {
					empty = false
				}
			}
		}
		if empty {
			continue
		}

		id, err := quarter.ParseID(row["quarter"])
		if err != nil {
			return errors.Wrapf(err, "row %d", n+2)
		}
		info := quarter.Info{Title: row["title"], Blurb: row["blurb"]}
		if err := entries.add(yearOf(row), id, info); err != nil {
			return errors.Wrapf(err, "row %d", n+2)
		}
	}
	return nil
}

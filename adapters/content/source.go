// Package content loads roadmap quarter text from files.
package content

import (
	"fmt"
	"path/filepath"
	"strings"

	"roadmap/domain/quarter"
	"roadmap/internal/errors"
	"roadmap/ports"
)

// Open picks a source by file extension. An empty path yields the built-in book.
func Open(path string) (ports.ContentSource, error) {
	if strings.TrimSpace(path) == "" {
		return NewStaticSource(quarter.DefaultBook()), nil
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return NewYAMLSource(path), nil
	case ".json":
		return NewJSONSource(path), nil
	case ".xlsx":
		return NewWorkbookSource(path), nil
	case ".csv":
		return NewCSVSource(path), nil
	default:
		return nil, errors.ConfigInvalid(fmt.Sprintf("unsupported content file type %q (want .yaml, .json, .xlsx or .csv)", ext))
	}
}

// yearEntries accumulates quarter text per year while a file is parsed.
type yearEntries map[string]map[quarter.ID]quarter.Info

func (y yearEntries) add(year string, id quarter.ID, info quarter.Info) error {
	year = strings.TrimSpace(year)
	if y[year] == nil {
		y[year] = make(map[quarter.ID]quarter.Info)
	}
	if _, dup := y[year][id]; dup {
		return errors.ValidationError(fmt.Sprintf("year %s: %s defined twice", year, id))
	}
	y[year][id] = info
	return nil
}

func (y yearEntries) book(defaultYear string) (*quarter.Book, error) {
	maps := make(map[string]quarter.Map, len(y))
	for year, entries := range y {
		m, err := quarter.NewMap(entries)
		if err != nil {
			return nil, errors.Wrapf(err, "year %s", year)
		}
		maps[year] = m
	}
	return quarter.NewBook(maps, strings.TrimSpace(defaultYear))
}

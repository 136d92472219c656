package content

import (
	"context"
	"os"

	"roadmap/domain/quarter"
	"roadmap/internal/errors"

	"github.com/tidwall/gjson"
)

// JSONSource reads a JSON content file with the same shape as the YAML one:
// {"default_year": "2024", "years": {"2024": {"1": {"title": "...", "blurb": "..."}}}}
type JSONSource struct {
	path string
}

// NewJSONSource returns a source for path.
func NewJSONSource(path string) *JSONSource {
	return &JSONSource{path: path}
}

func (s *JSONSource) Describe() string {
	return "json:" + s.path
}

func (s *JSONSource) Load(ctx context.Context) (*quarter.Book, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", s.path)
	}
	return ParseJSON(data)
}

// ParseJSON decodes a JSON document into a validated book.
func ParseJSON(data []byte) (*quarter.Book, error) {
	if !gjson.ValidBytes(data) {
		return nil, errors.InvalidInput("content is not valid JSON")
	}

	years := gjson.GetBytes(data, "years")
	if !years.IsObject() {
		return nil, errors.ValidationError(`json content needs a "years" object`)
	}

	entries := yearEntries{}
	var parseErr error
	years.ForEach(func(year, quarters gjson.Result) bool {
		quarters.ForEach(func(key, value gjson.Result) bool {
			id, err := quarter.ParseID(key.String())
			if err != nil {
				parseErr = errors.Wrapf(err, "year %s", year.String())
				return false
			}
			info := quarter.Info{
				Title: value.Get("title").String(),
				Blurb: value.Get("blurb").String(),
			}
			if err := entries.add(year.String(), id, info); err != nil {
				parseErr = err
				return false
			}
			return true
		})
		return parseErr == nil
	})
	if parseErr != nil {
		return nil, parseErr
	}
	if len(entries) == 0 {
		return nil, errors.ValidationError("json content has no years")
	}
	return entries.book(gjson.GetBytes(data, "default_year").String())
}

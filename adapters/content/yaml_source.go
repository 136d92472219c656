package content

import (
	"context"
	"os"

	"roadmap/domain/quarter"
	"roadmap/internal/errors"

	"gopkg.in/yaml.v3"
)

// yamlDocument is the YAML layout:
//
//	default_year: "2024"
//	years:
//	  "2024":
//	    1: {title: "...", blurb: "..."}
//	    2: ...
type yamlDocument struct {
	DefaultYear string                            `yaml:"default_year"`
	Years       map[string]map[string]quarter.Info `yaml:"years"`
}

// YAMLSource reads a YAML content file.
type YAMLSource struct {
	path string
}

// NewYAMLSource returns a source for path.
func NewYAMLSource(path string) *YAMLSource {
	return &YAMLSource{path: path}
}

func (s *YAMLSource) Describe() string {
	return "yaml:" + s.path
}

func (s *YAMLSource) Load(ctx context.Context) (*quarter.Book, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", s.path)
	}
	return ParseYAML(data)
}

// ParseYAML decodes a YAML document into a validated book.
func ParseYAML(data []byte) (*quarter.Book, error) {
	var doc yamlDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(errors.InvalidInput(err.Error()), "decode yaml content")
	}

	entries := yearEntries{}
	for year, quarters := range doc.Years {
		for key, info := range quarters {
			id, err := quarter.ParseID(key)
			if err != nil {
				return nil, errors.Wrapf(err, "year %s", year)
			}
			if err := entries.add(year, id, info); err != nil {
				return nil, err
			}
		}
	}
	if len(entries) == 0 {
		return nil, errors.ValidationError("yaml content has no years")
	}
	return entries.book(doc.DefaultYear)
}

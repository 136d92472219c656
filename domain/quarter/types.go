package quarter

import (
	"fmt"
	"strconv"
	"strings"

	"roadmap/internal/errors"
)

// ID identifies a quarter of the roadmap year.
type ID int

const (
	Q1 ID = 1
	Q2 ID = 2
	Q3 ID = 3
	Q4 ID = 4
)

// All lists every quarter in numeric order.
var All = [4]ID{Q1, Q2, Q3, Q4}

// Valid reports whether id is one of Q1..Q4.
func (id ID) Valid() bool {
	return id >= Q1 && id <= Q4
}

// String returns the display heading, e.g. "Q3".
func (id ID) String() string {
	return fmt.Sprintf("Q%d", int(id))
}

// ParseID accepts "1".."4" and "Q1".."Q4" (case-insensitive).
func ParseID(s string) (ID, error) {
	raw := strings.TrimPrefix(strings.ToUpper(strings.TrimSpace(s)), "Q")
	n, err := strconv.Atoi(raw)
	if err != nil || !ID(n).Valid() {
		return 0, errors.InvalidInput(fmt.Sprintf("invalid quarter %q: want 1-4", s))
	}
	return ID(n), nil
}

// Info is the text shown next to a quarter's wedge.
type Info struct {
	Title string `json:"title" yaml:"title"`
	Blurb string `json:"blurb" yaml:"blurb"`
}

// Map holds the text of all four quarters.
type Map map[ID]Info

// NewMap copies entries and validates the result.
func NewMap(entries map[ID]Info) (Map, error) {
	m := make(Map, len(entries))
	for id, info := range entries {
		m[id] = Info{Title: strings.TrimSpace(info.Title), Blurb: strings.TrimSpace(info.Blurb)}
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// Validate requires exactly the keys Q1..Q4, each with a title and blurb.
func (m Map) Validate() error {
	for _, id := range All {
		info, ok := m[id]
		if !ok {
			return errors.ValidationError(fmt.Sprintf("quarter %s is missing", id))
		}
		if strings.TrimSpace(info.Title) == "" {
			return errors.ValidationError(fmt.Sprintf("quarter %s has an empty title", id))
		}
		if strings.TrimSpace(info.Blurb) == "" {
			return errors.ValidationError(fmt.Sprintf("quarter %s has an empty blurb", id))
		}
	}
	if len(m) != len(All) {
		for id := range m {
			if !id.Valid() {
				return errors.ValidationError(fmt.Sprintf("unknown quarter %d", int(id)))
			}
		}
	}
	return nil
}

package quarter

import (
	"fmt"
	"sort"

	"roadmap/internal/errors"
)

// Book is the roadmap content for several years, one Map per year.
type Book struct {
	years       []string
	maps        map[string]Map
	defaultYear string
}

// NewBook validates every year's map. Years are kept in ascending order.
// An empty defaultYear selects the latest year.
func NewBook(years map[string]Map, defaultYear string) (*Book, error) {
	if len(years) == 0 {
		return nil, errors.ValidationError("roadmap content has no years")
	}

	b := &Book{maps: make(map[string]Map, len(years))}
	for year, m := range years {
		if year == "" {
			return nil, errors.ValidationError("roadmap year must not be empty")
		}
		if err := m.Validate(); err != nil {
			return nil, errors.Wrapf(err, "year %s", year)
		}
		b.years = append(b.years, year)
		b.maps[year] = m
	}
	sort.Strings(b.years)

	if defaultYear == "" {
		defaultYear = b.years[len(b.years)-1]
	}
	if _, ok := b.maps[defaultYear]; !ok {
		return nil, errors.ValidationError(fmt.Sprintf("default year %s has no content", defaultYear))
	}
	b.defaultYear = defaultYear
	return b, nil
}

// Years returns the years in ascending order.
func (b *Book) Years() []string {
	out := make([]string, len(b.years))
	copy(out, b.years)
	return out
}

// DefaultYear is the year shown when none is requested.
func (b *Book) DefaultYear() string {
	return b.defaultYear
}

// Quarters returns the map for year; an empty year means the default.
func (b *Book) Quarters(year string) (Map, string, error) {
	if year == "" {
		year = b.defaultYear
	}
	m, ok := b.maps[year]
	if !ok {
		return nil, year, errors.NotFound(fmt.Sprintf("roadmap year %s", year))
	}
	return m, year, nil
}

// WithDefaultYear returns a copy of b that defaults to year.
func (b *Book) WithDefaultYear(year string) (*Book, error) {
	if _, ok := b.maps[year]; !ok {
		return nil, errors.NotFound(fmt.Sprintf("roadmap year %s", year))
	}
	c := *b
	c.defaultYear = year
	return &c, nil
}

const (
	placeholderTitle = "Lorem ipsum dolor sit amet, consectetur adipiscing elit."
	placeholderBlurb = "Vestibulum in tortor at massa faucibus dictum a a metus. Integer maximus quam vitae lacus ultricies, eget blandit massa bibendum."
)

// PlaceholderMap fills all four quarters with placeholder text.
func PlaceholderMap() Map {
	m := make(Map, len(All))
	for _, id := range All {
		m[id] = Info{Title: placeholderTitle, Blurb: placeholderBlurb}
	}
	return m
}

// DefaultBook is the built-in content: 2023-2025 with placeholder text,
// defaulting to 2024.
func DefaultBook() *Book {
	b, err := NewBook(map[string]Map{
		"2023": PlaceholderMap(),
		"2024": PlaceholderMap(),
		"2025": PlaceholderMap(),
	}, "2024")
	if err != nil {
		panic(err)
	}
	return b
}

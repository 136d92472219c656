package ports

import (
	"context"

	"roadmap/domain/quarter"
)

// ContentSource loads the roadmap text for every year.
type ContentSource interface {
	Load(ctx context.Context) (*quarter.Book, error)

	// Describe names the source for logs, e.g. "yaml:content/roadmap.yaml".
	Describe() string
}

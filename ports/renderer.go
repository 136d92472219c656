package ports

import (
	"io"

	"roadmap/domain/roadmap"
)

// SceneRenderer writes a composed scene for the given year.
type SceneRenderer interface {
	Render(w io.Writer, year string, scene roadmap.Scene) error
}

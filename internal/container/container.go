package container

import (
	"context"
	"fmt"

	"roadmap/adapters/content"
	"roadmap/adapters/svg"
	"roadmap/app"
	"roadmap/domain/quarter"
	"roadmap/domain/roadmap"
	"roadmap/internal"
	"roadmap/internal/config"
	"roadmap/internal/errors"
	"roadmap/ports"
)

// Container holds all application dependencies
type Container struct {
	Config *config.Config

	Content  ports.ContentSource
	Variants roadmap.Variants

	Roadmaps *app.RoadmapService
	Sessions *app.SessionStore
	Exporter *app.ExportService
}

// New builds the dependency graph. Content is not read until Init.
func New(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	internal.DefaultLogger = internal.NewLogger(internal.ParseLogLevel(cfg.Log.Level))

	source, err := content.Open(cfg.Roadmap.ContentPath)
	if err != nil {
		return nil, err
	}

	sessions, err := app.NewSessionStore(quarter.ID(cfg.Roadmap.DefaultActive), app.SessionLimits{Max: cfg.Server.MaxSessions})
	if err != nil {
		return nil, err
	}

	c := &Container{
		Config:   cfg,
		Content:  source,
		Variants: roadmap.NewVariants(),
		Sessions: sessions,
	}
	c.Roadmaps = app.NewRoadmapService(c.Content, c.Variants)
	c.Exporter = app.NewExportService(c.Roadmaps, svg.DocumentWriter{}, cfg.Export.Workers)
	return c, nil
}

// Init loads the roadmap content. ROADMAP_YEAR only applies when the
// content has that year; otherwise the content's own default wins.
func (c *Container) Init(ctx context.Context) error {
	if err := c.Roadmaps.Load(ctx, ""); err != nil {
		return err
	}
	year := c.Config.Roadmap.DefaultYear
	if year == "" {
		return nil
	}
	err := c.Roadmaps.SetDefaultYear(year)
	if errors.HasCode(err, errors.CodeNotFound) {
		internal.DefaultLogger.With("container").Warn("ROADMAP_YEAR %s not in content, using %s", year, c.Roadmaps.Book().DefaultYear())
		return nil
	}
	return err
}

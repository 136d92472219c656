package app

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"roadmap/domain/quarter"
	"roadmap/domain/roadmap"
	"roadmap/internal"
	"roadmap/internal/errors"
	"roadmap/ports"

	"golang.org/x/sync/semaphore"
)

// ExportJob is one rendered file.
type ExportJob struct {
	Year   string       `json:"year"`
	Kind   roadmap.Kind `json:"variant"`
	Active quarter.ID   `json:"active"`
	Path   string       `json:"path"`
}

// ExportService renders every (year, variant, active quarter) combination to disk.
type ExportService struct {
	roadmaps *RoadmapService
	renderer ports.SceneRenderer
	workers  int64
	log      *internal.Logger
}

func NewExportService(roadmaps *RoadmapService, renderer ports.SceneRenderer, workers int) *ExportService {
	if workers < 1 {
		workers = 1
	}
	return &ExportService{
		roadmaps: roadmaps,
		renderer: renderer,
		workers:  int64(workers),
		log:      internal.DefaultLogger.With("export"),
	}
}

// Plan lists the files Export would write. No years means all of them.
func (s *ExportService) Plan(dir string, years []string) ([]ExportJob, error) {
	book := s.roadmaps.Book()
	if book == nil {
		return nil, errors.InternalError("roadmap content not loaded")
	}
	if len(years) == 0 {
		years = book.Years()
	}

	var jobs []ExportJob
	for _, year := range years {
		if _, _, err := book.Quarters(year); err != nil {
			return nil, err
		}
		for _, kind := range []roadmap.Kind{roadmap.KindDesktop, roadmap.KindMobile} {
			for _, q := range quarter.All {
				name := fmt.Sprintf("roadmap-%s-%s-q%d.svg", year, kind, int(q))
				jobs = append(jobs, ExportJob{Year: year, Kind: kind, Active: q, Path: filepath.Join(dir, name)})
			}
		}
	}
	return jobs, nil
}

// Export writes the planned files using at most the configured number of
// concurrent workers. It returns the first failure.
func (s *ExportService) Export(ctx context.Context, dir string, years []string) ([]ExportJob, error) {
	jobs, err := s.Plan(dir, years)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "create %s", dir)
	}

	sem := semaphore.NewWeighted(s.workers)
	var (
		mu       sync.Mutex
		firstErr error
	)
	fail := func(err error) {
		mu.Lock()
		defer mu.Unlock()
		if firstErr == nil {
			firstErr = err
		}
	}

	for _, job := range jobs {
		if err := sem.Acquire(ctx, 1); err != nil {
			fail(err)
			break
		}
		go func(job ExportJob) {
			defer sem.Release(1)
			if err := s.write(job); err != nil {
				fail(err)
			}
		}(job)
	}

	// Wait for the workers still running.
	if err := sem.Acquire(context.Background(), s.workers); err == nil {
		sem.Release(s.workers)
	}

	if firstErr != nil {
		return nil, firstErr
	}
	s.log.Info("exported %d files to %s", len(jobs), dir)
	return jobs, nil
}

func (s *ExportService) write(job ExportJob) error {
	scene, _, err := s.roadmaps.Scene(job.Year, job.Kind, job.Active)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := s.renderer.Render(&buf, job.Year, scene); err != nil {
		return errors.Wrapf(err, "render %s", job.Path)
	}
	if err := os.WriteFile(job.Path, buf.Bytes(), 0o644); err != nil {
		return errors.Wrapf(err, "write %s", job.Path)
	}
	s.log.Debug("wrote %s", job.Path)
	return nil
}

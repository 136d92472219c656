package app

import (
	"context"
	"sync"

	"roadmap/domain/quarter"
	"roadmap/domain/roadmap"
	"roadmap/internal"
	"roadmap/internal/errors"
	"roadmap/ports"
)

type sceneKey struct {
	year   string
	kind   roadmap.Kind
	active quarter.ID
}

// RoadmapService turns loaded content into scenes.
type RoadmapService struct {
	source   ports.ContentSource
	variants roadmap.Variants
	log      *internal.Logger

	mu     sync.RWMutex
	book   *quarter.Book
	scenes map[sceneKey]roadmap.Scene
}

func NewRoadmapService(source ports.ContentSource, variants roadmap.Variants) *RoadmapService {
	return &RoadmapService{
		source:   source,
		variants: variants,
		log:      internal.DefaultLogger.With("roadmap"),
		scenes:   make(map[sceneKey]roadmap.Scene),
	}
}

// Load reads the content source and drops every cached scene.
// defaultYear overrides the source's default when non-empty.
func (s *RoadmapService) Load(ctx context.Context, defaultYear string) error {
	book, err := s.source.Load(ctx)
	if err != nil {
		return errors.Wrapf(err, "load content from %s", s.source.Describe())
	}
	if defaultYear != "" {
		if book, err = book.WithDefaultYear(defaultYear); err != nil {
			return errors.Wrap(err, "apply default year")
		}
	}

	s.mu.Lock()
	s.book = book
	s.scenes = make(map[sceneKey]roadmap.Scene)
	s.mu.Unlock()

	s.log.Info("loaded %s: years %v, default %s", s.source.Describe(), book.Years(), book.DefaultYear())
	return nil
}

// SetDefaultYear changes the year used when a request names none.
func (s *RoadmapService) SetDefaultYear(year string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.book == nil {
		return errors.InternalError("roadmap content not loaded")
	}
	book, err := s.book.WithDefaultYear(year)
	if err != nil {
		return err
	}
	s.book = book
	return nil
}

// Book returns the loaded content, or nil before Load.
func (s *RoadmapService) Book() *quarter.Book {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.book
}

// Scene composes (or returns the cached) scene for year, kind and active.
// An empty year means the default one; the resolved year is returned.
func (s *RoadmapService) Scene(year string, kind roadmap.Kind, active quarter.ID) (roadmap.Scene, string, error) {
	s.mu.RLock()
	book := s.book
	s.mu.RUnlock()
	if book == nil {
		return roadmap.Scene{}, year, errors.InternalError("roadmap content not loaded")
	}

	m, year, err := book.Quarters(year)
	if err != nil {
		return roadmap.Scene{}, year, err
	}
	v := s.variants.Get(kind)
	if v == nil {
		return roadmap.Scene{}, year, errors.InvalidInput("unknown roadmap variant " + string(kind))
	}

	key := sceneKey{year: year, kind: kind, active: active}
	s.mu.RLock()
	scene, ok := s.scenes[key]
	s.mu.RUnlock()
	if ok {
		return scene, year, nil
	}

	scene, err = v.Compose(m, active)
	if err != nil {
		return roadmap.Scene{}, year, err
	}

	s.mu.Lock()
	if s.book == book {
		s.scenes[key] = scene
	}
	s.mu.Unlock()
	s.log.Debug("composed %s scene for %s with %s active", kind, year, active)
	return scene, year, nil
}

// Cached is the number of memoized scenes.
func (s *RoadmapService) Cached() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.scenes)
}

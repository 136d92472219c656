package app

import (
	"context"
	"sync"
	"time"

	"roadmap/domain/viewport"
	"roadmap/internal"
	"roadmap/internal/resize"
)

// Transition records a frame where the device class or variant changed.
type Transition struct {
	From viewport.Badge `json:"from"`
	To   viewport.Badge `json:"to"`
}

func (t Transition) DeviceChanged() bool  { return t.From.Device != t.To.Device }
func (t Transition) VariantChanged() bool { return t.From.Variant != t.To.Variant }

// ViewportService tracks the viewport size with one recompute per frame.
type ViewportService struct {
	tracker *resize.Tracker[viewport.Size]
	log     *internal.Logger

	mu          sync.RWMutex
	current     viewport.Badge
	transitions []Transition
	listeners   []func(Transition)
}

func NewViewportService(initial viewport.Size) *ViewportService {
	v := &ViewportService{
		current: viewport.NewBadge(initial),
		log:     internal.DefaultLogger.With("viewport"),
	}
	v.tracker = resize.New(v.apply)
	return v
}

func (v *ViewportService) apply(size viewport.Size) {
	next := viewport.NewBadge(size)

	v.mu.Lock()
	prev := v.current
	v.current = next
	var listeners []func(Transition)
	t := Transition{From: prev, To: next}
	changed := t.DeviceChanged() || t.VariantChanged()
	if changed {
		v.transitions = append(v.transitions, t)
		listeners = append(listeners, v.listeners...)
	}
	v.mu.Unlock()

	if !changed {
		return
	}
	v.log.Debug("viewport %dx%d: %s/%s -> %s/%s", size.Width, size.Height, prev.Device, prev.Variant, next.Device, next.Variant)
	for _, l := range listeners {
		l(t)
	}
}

// Resize records a new size; see resize.Tracker.Resize.
func (v *ViewportService) Resize(size viewport.Size) bool {
	return v.tracker.Resize(size)
}

// Frame applies the newest pending size.
func (v *ViewportService) Frame() bool {
	return v.tracker.Frame()
}

// Run drives frames until ctx is done or frames closes.
func (v *ViewportService) Run(ctx context.Context, frames <-chan time.Time) error {
	return v.tracker.Run(ctx, frames)
}

// Current is the badge for the last applied size.
func (v *ViewportService) Current() viewport.Badge {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.current
}

// Transitions lists every recorded transition, oldest first.
func (v *ViewportService) Transitions() []Transition {
	v.mu.RLock()
	defer v.mu.RUnlock()
	out := make([]Transition, len(v.transitions))
	copy(out, v.transitions)
	return out
}

// Dropped counts sizes superseded before a frame applied them.
func (v *ViewportService) Dropped() int {
	return v.tracker.Dropped()
}

// OnTransition registers fn for future transitions.
func (v *ViewportService) OnTransition(fn func(Transition)) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.listeners = append(v.listeners, fn)
}

// Package viewport classifies screen widths into device classes and picks the
// roadmap variant for a width.
package viewport

import (
	"fmt"

	"roadmap/domain/roadmap"
)

// Width breakpoints (min-width, in CSS pixels)
const (
	// BreakpointSM is where "medium" starts.
	BreakpointSM = 640

	// BreakpointMD is shown on the badge only; it does not change the class.
	BreakpointMD = 768

	// BreakpointLG is where "wide" starts and the desktop wheel replaces the mobile one.
	BreakpointLG = 1024
)

// Device is a coarse device class.
type Device string

const (
	Compact Device = "compact"
	Medium  Device = "medium"
	Wide    Device = "wide"
)

// Classify maps a width to its device class.
func Classify(width int) Device {
	switch {
	case width < BreakpointSM:
		return Compact
	case width < BreakpointLG:
		return Medium
	default:
		return Wide
	}
}

// VariantFor returns the roadmap variant shown at width.
func VariantFor(width int) roadmap.Kind {
	if width >= BreakpointLG {
		return roadmap.KindDesktop
	}
	return roadmap.KindMobile
}

// Size is a viewport size in CSS pixels.
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Badge is the developer overlay content.
type Badge struct {
	Size    Size         `json:"size"`
	Device  Device       `json:"device"`
	Variant roadmap.Kind `json:"variant"`
	Legend  string       `json:"legend"`
}

// NewBadge describes s.
func NewBadge(s Size) Badge {
	return Badge{
		Size:    s,
		Device:  Classify(s.Width),
		Variant: VariantFor(s.Width),
		Legend:  Legend(),
	}
}

// Legend lists the breakpoints, e.g. "sm≥640 • md≥768 • lg≥1024".
func Legend() string {
	return fmt.Sprintf("sm≥%d • md≥%d • lg≥%d", BreakpointSM, BreakpointMD, BreakpointLG)
}

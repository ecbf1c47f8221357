package life

import "github.com/vovakirdan/tui-life/internal/core"

// DeviceClass buckets viewports into the three responsive layout classes.
type DeviceClass int

const (
	DeviceMobile DeviceClass = iota
	DeviceTablet
	DeviceDesktop
)

// String returns a human-readable name for the device class.
func (d DeviceClass) String() string {
	switch d {
	case DeviceMobile:
		return "mobile"
	case DeviceTablet:
		return "tablet"
	case DeviceDesktop:
		return "desktop"
	default:
		return "unknown"
	}
}

// Dimensions is a computed grid size.
type Dimensions struct {
	Rows int
	Cols int
}

// LayoutPolicy computes grid dimensions from an abstract viewport. All
// values are in layout units; the presentation layer decides how terminal
// geometry maps onto units. The zero value is not usable, construct with
// DefaultLayoutPolicy or from config.
type LayoutPolicy struct {
	CellSize     int // Edge length of one cell in layout units
	MarginX      int // Horizontal margin reserved on mobile, per side
	ChromeHeight int // Vertical space reserved for controls on tablet/desktop

	MinRows       int
	MaxRows       int
	MaxRowsMobile int
	MinCols       int
	MaxCols       int

	FallbackRows int // Used when a computed size is degenerate
	FallbackCols int

	TabletMinWidth  int // Viewport width where tablet class starts
	DesktopMinWidth int // Viewport width where desktop class starts
}

// Recovery grid used when the policy itself is unusable, for example when it
// was built from a config document with the layout section missing.
const (
	recoveryRows = 15
	recoveryCols = 20
)

// DefaultLayoutPolicy returns the standard responsive policy.
func DefaultLayoutPolicy() LayoutPolicy {
	return LayoutPolicy{
		CellSize:        20,
		MarginX:         20,
		ChromeHeight:    120,
		MinRows:         8,
		MaxRows:         40,
		MaxRowsMobile:   25,
		MinCols:         10,
		MaxCols:         40,
		FallbackRows:    recoveryRows,
		FallbackCols:    recoveryCols,
		TabletMinWidth:  768,
		DesktopMinWidth: 1024,
	}
}

// DeviceClass returns the layout class for a viewport width.
func (p LayoutPolicy) DeviceClass(width int) DeviceClass {
	switch {
	case width >= p.DesktopMinWidth:
		return DeviceDesktop
	case width >= p.TabletMinWidth:
		return DeviceTablet
	default:
		return DeviceMobile
	}
}

// Dimensions computes row and column counts for a viewport. The drawing
// region depends on the device class: mobile uses roughly 30% of the height
// across the full width minus margins, tablet uses the height minus chrome
// over half the width, desktop uses a square sized from the height minus
// chrome. Results are clamped to the policy's row/col bounds.
//
// The boolean reports whether the fallback grid was substituted because the
// policy was unusable or the computed size was degenerate (zero or below, or
// above 100 on either axis). With sane policy values the clamps keep that
// branch unreachable; callers surface it as a warning, not an error.
func (p LayoutPolicy) Dimensions(width, height int, class DeviceClass) (Dimensions, bool) {
	if p.CellSize < 1 {
		return p.fallback(), true
	}

	var regionW, regionH int
	switch class {
	case DeviceMobile:
		regionW = width - 2*p.MarginX
		regionH = height * 30 / 100
	case DeviceTablet:
		regionW = width / 2
		regionH = height - p.ChromeHeight
	default:
		side := height - p.ChromeHeight
		regionW = side
		regionH = side
	}

	maxRows := p.MaxRows
	if class == DeviceMobile {
		maxRows = p.MaxRowsMobile
	}

	d := Dimensions{
		Rows: core.Clamp(regionH/p.CellSize, p.MinRows, maxRows),
		Cols: core.Clamp(regionW/p.CellSize, p.MinCols, p.MaxCols),
	}

	if d.Rows <= 0 || d.Cols <= 0 || d.Rows > 100 || d.Cols > 100 {
		return p.fallback(), true
	}
	return d, false
}

// fallback returns the policy's configured fallback grid, or the fixed
// recovery grid when the configured values are themselves degenerate. The
// result is always a valid grid size, so the fallback path can never panic
// downstream in NewGrid.
func (p LayoutPolicy) fallback() Dimensions {
	d := Dimensions{Rows: p.FallbackRows, Cols: p.FallbackCols}
	if d.Rows < 1 || d.Cols < 1 || d.Rows > 100 || d.Cols > 100 {
		return Dimensions{Rows: recoveryRows, Cols: recoveryCols}
	}
	return d
}

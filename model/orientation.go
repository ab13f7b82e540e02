package model

import "math"

// Orientation classifies the direction of a glyph's baseline relative to the
// page axes.
type Orientation int

const (
	// Horizontal text runs left to right along the X axis.
	Horizontal Orientation = iota
	// Rotate90 text is turned 90° counter-clockwise and runs bottom to top.
	Rotate90
	// Rotate180 text is upside down and runs right to left.
	Rotate180
	// Rotate270 text is turned 90° clockwise and runs top to bottom.
	Rotate270
	// Other covers every baseline that is not aligned with an axis.
	Other
)

// orientationTolerance is the angular slack, in radians, allowed when snapping
// a baseline to an axis.
const orientationTolerance = 1e-3

// String returns a string representation of the orientation
func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "horizontal"
	case Rotate90:
		return "rotate90"
	case Rotate180:
		return "rotate180"
	case Rotate270:
		return "rotate270"
	case Other:
		return "other"
	default:
		return "unknown"
	}
}

// IsAxisAligned reports whether text with this orientation runs along one of
// the page axes.
func (o Orientation) IsAxisAligned() bool {
	switch o {
	case Horizontal, Rotate90, Rotate180, Rotate270:
		return true
	default:
		return false
	}
}

// OrientationOf classifies the baseline running from start to end.
// A degenerate baseline (start == end) is treated as Horizontal.
func OrientationOf(start, end Point) Orientation {
	dx := end.X - start.X
	dy := end.Y - start.Y
	if dx == 0 && dy == 0 {
		return Horizontal
	}
	angle := math.Atan2(dy, dx)
	switch {
	case math.Abs(angle) <= orientationTolerance:
		return Horizontal
	case math.Abs(angle-math.Pi/2) <= orientationTolerance:
		return Rotate90
	case math.Abs(angle+math.Pi/2) <= orientationTolerance:
		return Rotate270
	case math.Pi-math.Abs(angle) <= orientationTolerance:
		return Rotate180
	default:
		return Other
	}
}

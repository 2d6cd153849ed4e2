package editor

import (
	"math"

	"github.com/philipparndt/gowall/pkg/analysis"
	"github.com/philipparndt/gowall/pkg/geometry"
	"github.com/philipparndt/gowall/pkg/plan"
)

// HandleRadius is the pick radius of the endpoint handles in plan units
const HandleRadius = 0.15

// HitKind identifies what a pointer position resolved to
type HitKind int

const (
	HitNone HitKind = iota
	HitWall
	HitStartHandle
	HitEndHandle
	HitDimension
	HitLabel
)

func (k HitKind) String() string {
	switch k {
	case HitWall:
		return "wall"
	case HitStartHandle:
		return "start-handle"
	case HitEndHandle:
		return "end-handle"
	case HitDimension:
		return "dimension"
	case HitLabel:
		return "label"
	default:
		return "none"
	}
}

// Hit is a resolved pointer target
type Hit struct {
	Kind   HitKind
	WallID string
}

// HitOptions tunes hit testing
type HitOptions struct {
	// Tolerance is the pick distance in plan units
	Tolerance float64
	// HandleRadius overrides the endpoint handle radius
	HandleRadius float64
	// LabelExtent returns the half width and half height of a wall's label
	// in plan units. Labels are not hit-tested when nil.
	LabelExtent func(w *plan.Wall) (halfWidth, halfHeight float64)
}

// HitTest resolves a plan position to a target. Candidates are ranked
// label, then handles of the selected wall, then dimension lines, then wall
// bodies; within a rank the nearest wins. Extension lines are not picked
// over their own wall's body.
func HitTest(walls []*plan.Wall, selectedID string, world geometry.Vector3, opts HitOptions) Hit {
	world = world.Flat()
	radius := opts.HandleRadius
	if radius <= 0 {
		radius = HandleRadius
	}

	if opts.LabelExtent != nil {
		for i := len(walls) - 1; i >= 0; i-- {
			w := walls[i]
			line, ok := w.DimensionLine()
			if !ok {
				continue
			}
			hw, hh := opts.LabelExtent(w)
			if insideLabel(world, line, hw+opts.Tolerance, hh+opts.Tolerance) {
				return Hit{Kind: HitLabel, WallID: w.ID()}
			}
		}
	}

	if selectedID != "" {
		for _, w := range walls {
			if w.ID() != selectedID {
				continue
			}
			ds := world.Distance(w.StartPoint())
			de := world.Distance(w.EndPoint())
			limit := radius + opts.Tolerance
			switch {
			case ds <= limit && ds <= de:
				return Hit{Kind: HitStartHandle, WallID: w.ID()}
			case de <= limit:
				return Hit{Kind: HitEndHandle, WallID: w.ID()}
			}
		}
	}

	best := Hit{}
	bestDist := math.Inf(1)
	for _, w := range walls {
		line, ok := w.DimensionLine()
		if !ok {
			continue
		}
		// extension lines start at the wall's end points; over the wall
		// body the wall takes the click
		onBody := onWall(w, world, opts.Tolerance)
		for i, seg := range line.Segments() {
			if i > 0 && onBody {
				continue
			}
			d := analysis.DistanceToSegment(world, seg[0], seg[1])
			if d <= opts.Tolerance && d < bestDist {
				best, bestDist = Hit{Kind: HitDimension, WallID: w.ID()}, d
			}
		}
	}
	if best.Kind != HitNone {
		return best
	}

	for _, w := range walls {
		d := analysis.DistanceToSegment(world, w.StartPoint(), w.EndPoint())
		if d <= w.Thickness()/2+opts.Tolerance && d < bestDist {
			best, bestDist = Hit{Kind: HitWall, WallID: w.ID()}, d
		}
	}
	return best
}

func onWall(w *plan.Wall, p geometry.Vector3, tolerance float64) bool {
	return analysis.DistanceToSegment(p, w.StartPoint(), w.EndPoint()) <= w.Thickness()/2+tolerance
}

// insideLabel reports whether p lies in the rotated label box of line
func insideLabel(p geometry.Vector3, line plan.DimensionLine, hw, hh float64) bool {
	d := p.Sub(line.DimCenter)
	sin, cos := math.Sincos(-line.LabelAngle)
	x := d.X*cos - d.Y*sin
	y := d.X*sin + d.Y*cos
	return math.Abs(x) <= hw && math.Abs(y) <= hh
}

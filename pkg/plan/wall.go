package plan

import (
	"github.com/google/uuid"
	"github.com/philipparndt/gowall/pkg/geometry"
)

// DefaultThickness is the thickness of newly drawn walls
const DefaultThickness = 0.2

// WallGeometry is a read-only snapshot of a wall's end points.
// All derived values are recomputed on every call.
type WallGeometry struct {
	Start geometry.Vector3
	End   geometry.Vector3
}

// Length returns |End - Start|
func (g WallGeometry) Length() float64 {
	return g.Start.Distance(g.End)
}

// Center returns the midpoint of the wall
func (g WallGeometry) Center() geometry.Vector3 {
	return geometry.Midpoint(g.Start, g.End)
}

// Direction returns the unit vector from Start to End (zero for a degenerate wall)
func (g WallGeometry) Direction() geometry.Vector3 {
	return g.End.Sub(g.Start).Normalize()
}

// Normal returns the in-plane perpendicular of Direction
func (g WallGeometry) Normal() geometry.Vector3 {
	return g.Direction().Perp().Normalize()
}

// Angle returns the direction angle in radians
func (g WallGeometry) Angle() float64 {
	return g.Direction().Angle()
}

// Wall is a straight partition drawn in the plan.
// It exclusively owns at most one Dimension.
type Wall struct {
	id         string
	startPoint geometry.Vector3
	endPoint   geometry.Vector3
	thickness  float64
	dimension  *Dimension
	notify     func(Change)
}

// NewWall creates a wall between start and end with the default thickness
func NewWall(start, end geometry.Vector3) *Wall {
	return &Wall{
		id:         uuid.NewString(),
		startPoint: start.Flat(),
		endPoint:   end.Flat(),
		thickness:  DefaultThickness,
	}
}

// ID returns the stable identifier of the wall
func (w *Wall) ID() string { return w.id }

// StartPoint returns the start point
func (w *Wall) StartPoint() geometry.Vector3 { return w.startPoint }

// EndPoint returns the end point
func (w *Wall) EndPoint() geometry.Vector3 { return w.endPoint }

// Thickness returns the wall thickness
func (w *Wall) Thickness() float64 { return w.thickness }

// Geometry returns a snapshot of the current end points
func (w *Wall) Geometry() WallGeometry {
	return WallGeometry{Start: w.startPoint, End: w.endPoint}
}

// Length returns the wall length
func (w *Wall) Length() float64 { return w.Geometry().Length() }

// Center returns the wall center
func (w *Wall) Center() geometry.Vector3 { return w.Geometry().Center() }

// Direction returns the unit direction from start to end
func (w *Wall) Direction() geometry.Vector3 { return w.Geometry().Direction() }

// Normal returns the in-plane normal
func (w *Wall) Normal() geometry.Vector3 { return w.Geometry().Normal() }

// Angle returns the direction angle in radians
func (w *Wall) Angle() float64 { return w.Geometry().Angle() }

// SetStartPoint moves the start point
func (w *Wall) SetStartPoint(p geometry.Vector3) {
	w.startPoint = p.Flat()
	w.moved()
}

// SetEndPoint moves the end point
func (w *Wall) SetEndPoint(p geometry.Vector3) {
	w.endPoint = p.Flat()
	w.moved()
}

// SetThickness replaces the thickness.
// Callers must pass a non-negative value; it is not checked here.
func (w *Wall) SetThickness(t float64) {
	w.thickness = t
	w.emit(WallChanged)
}

// Dimension returns the attached dimension or nil
func (w *Wall) Dimension() *Dimension { return w.dimension }

// SetDimension attaches d (or detaches with nil) and refreshes its cached points
func (w *Wall) SetDimension(d *Dimension) {
	if w.dimension != nil {
		w.dimension.owner = nil
	}
	w.dimension = d
	if d != nil {
		d.owner = w
		d.points = nil
		w.RefreshDimension()
		return
	}
	w.emit(DimensionChanged)
}

// EnsureDimension returns the attached dimension, creating one if missing
func (w *Wall) EnsureDimension() *Dimension {
	if w.dimension == nil {
		w.SetDimension(NewDimension())
	}
	return w.dimension
}

// DimensionLine derives the dimension geometry from the current state.
// ok is false when the wall has no dimension.
func (w *Wall) DimensionLine() (line DimensionLine, ok bool) {
	if w.dimension == nil {
		return DimensionLine{}, false
	}
	return ComputeDimensionLine(w.Geometry(), w.dimension.offset, w.dimension.lockedAxis), true
}

// RefreshDimension recomputes the dimension's cached point buffer and
// reports whether it changed
func (w *Wall) RefreshDimension() bool {
	line, ok := w.DimensionLine()
	if !ok {
		return false
	}
	positions := line.Positions()
	return w.dimension.SetPoints(positions[:])
}

// moved refreshes the cached dimension points before listeners hear about
// the move
func (w *Wall) moved() {
	w.RefreshDimension()
	w.emit(WallMoved)
}

func (w *Wall) emit(kind ChangeKind) {
	if w.notify != nil {
		w.notify(Change{Kind: kind, WallID: w.id})
	}
}

package plan

import (
	"math"

	"github.com/philipparndt/gowall/pkg/geometry"
)

// TickSize is the length of the extension ticks drawn past the dimension line
const TickSize = 0.2

// DimensionLine is the derived geometry of a dimension annotation
type DimensionLine struct {
	Axis       LockedAxis
	WallStart  geometry.Vector3
	WallEnd    geometry.Vector3
	DimStart   geometry.Vector3
	DimEnd     geometry.Vector3
	DimCenter  geometry.Vector3 // label anchor
	ExtStart   geometry.Vector3
	ExtEnd     geometry.Vector3
	Tick       geometry.Vector3
	LabelAngle float64 // radians
	Length     float64 // displayed length
}

// ComputeDimensionLine derives the dimension line for a wall.
//
// With AxisX the line is horizontal at center.y+offset and spans the wall's
// x extent; AxisY is the same with x and y swapped. With AxisNone the line
// is the wall shifted by normal*offset. Ticks point away from the wall on
// the offset side; a zero offset counts as positive.
func ComputeDimensionLine(w WallGeometry, offset float64, axis LockedAxis) DimensionLine {
	start := w.Start.Flat()
	end := w.End.Flat()
	center := w.Center().Flat()
	side := geometry.SignOrOne(offset)

	line := DimensionLine{
		Axis:      axis,
		WallStart: start,
		WallEnd:   end,
	}

	switch axis {
	case AxisX:
		y := center.Y + offset
		line.DimStart = geometry.NewVector2(start.X, y)
		line.DimEnd = geometry.NewVector2(end.X, y)
		line.DimCenter = geometry.Midpoint(line.DimStart, line.DimEnd)
		line.Tick = geometry.UnitY.Mul(TickSize * side)
		line.Length = math.Abs(end.X - start.X)
		line.LabelAngle = 0
	case AxisY:
		x := center.X + offset
		line.DimStart = geometry.NewVector2(x, start.Y)
		line.DimEnd = geometry.NewVector2(x, end.Y)
		line.DimCenter = geometry.Midpoint(line.DimStart, line.DimEnd)
		line.Tick = geometry.UnitX.Mul(TickSize * side)
		line.Length = math.Abs(end.Y - start.Y)
		line.LabelAngle = math.Pi / 2
	default:
		normal := w.Normal()
		shift := normal.Mul(offset)
		line.DimStart = start.Add(shift)
		line.DimEnd = end.Add(shift)
		line.DimCenter = center.Add(shift)
		line.Tick = normal.Mul(TickSize * side)
		line.Length = w.Length()
		line.LabelAngle = ReadableAngle(w.Angle())
	}

	line.ExtStart = line.DimStart.Add(line.Tick)
	line.ExtEnd = line.DimEnd.Add(line.Tick)
	return line
}

// Positions returns the flattened point buffer
// [dimStart, dimEnd, wallStart, extStart, wallEnd, extEnd], three numbers per
// point. Consecutive pairs form the three line segments to draw.
func (l DimensionLine) Positions() [18]float64 {
	var out [18]float64
	for i, p := range l.points() {
		out[i*3] = p.X
		out[i*3+1] = p.Y
		out[i*3+2] = 0
	}
	return out
}

// Segments returns the main line and the two extension lines
func (l DimensionLine) Segments() [3][2]geometry.Vector3 {
	p := l.points()
	return [3][2]geometry.Vector3{
		{p[0], p[1]},
		{p[2], p[3]},
		{p[4], p[5]},
	}
}

func (l DimensionLine) points() [6]geometry.Vector3 {
	return [6]geometry.Vector3{l.DimStart, l.DimEnd, l.WallStart, l.ExtStart, l.WallEnd, l.ExtEnd}
}

// ReadableAngle folds an angle into (-π/2, π/2] so text along a line that
// points "backwards" is never upside down.
func ReadableAngle(angle float64) float64 {
	a := math.Atan2(math.Sin(angle), math.Cos(angle))
	if a > math.Pi/2 {
		a -= math.Pi
	}
	if a <= -math.Pi/2 {
		a += math.Pi
	}
	return a
}

// OffsetFromPointer converts a pointer position on the plan plane into a
// dimension offset by projecting (pointer - wall center) onto the offset
// axis of the lock mode.
func OffsetFromPointer(w WallGeometry, pointer geometry.Vector3, axis LockedAxis) float64 {
	toPointer := pointer.Flat().Sub(w.Center().Flat())
	return toPointer.Dot(OffsetAxis(w, axis))
}

// OffsetAxis returns the unit vector the offset is measured along
func OffsetAxis(w WallGeometry, axis LockedAxis) geometry.Vector3 {
	switch axis {
	case AxisX:
		return geometry.UnitY
	case AxisY:
		return geometry.UnitX
	default:
		return w.Normal()
	}
}

// LabelScaleOptions controls how label size follows camera zoom
type LabelScaleOptions struct {
	BaseZoom  float64 `toml:"base_zoom"`
	BaseScale float64 `toml:"base_scale"`
	Power     float64 `toml:"power"`
	Min       float64 `toml:"min"`
	Max       float64 `toml:"max"`
}

// DefaultLabelScale keeps labels legible across zoom levels
var DefaultLabelScale = LabelScaleOptions{
	BaseZoom:  50,
	BaseScale: 1.5,
	Power:     1,
	Min:       0.75,
	Max:       3,
}

// LabelScale returns the label scale for a camera zoom (pixels per unit).
// The result shrinks as zoom grows and is clamped to [Min, Max].
func LabelScale(zoom float64, opts LabelScaleOptions) float64 {
	safeZoom := math.Max(zoom, 0.0001)
	scale := opts.BaseScale * math.Pow(opts.BaseZoom/safeZoom, opts.Power)
	return geometry.Clamp(scale, opts.Min, opts.Max)
}

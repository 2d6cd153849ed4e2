package analysis

import (
	"fmt"
	"math"
	"sort"

	"github.com/philipparndt/gowall/pkg/geometry"
	"github.com/philipparndt/gowall/pkg/plan"
)

// WallInfo contains information about a wall in the plan
type WallInfo struct {
	ID        string
	Index     int
	Start     geometry.Vector3
	End       geometry.Vector3
	Length    float64
	Angle     float64
	Dimension *plan.DimensionLine
}

// PlanStats contains various measurements of a plan
type PlanStats struct {
	BoundingBox    geometry.BoundingBox
	Extent         geometry.Vector3
	WallCount      int
	DimensionCount int
	LockedX        int
	LockedY        int
	TotalLength    float64
	MinWallLength  float64
	MaxWallLength  float64
	AvgWallLength  float64
	AllWalls       []WallInfo
}

// AnalyzePlan collects statistics over every wall of a plan
func AnalyzePlan(p *plan.Plan) *PlanStats {
	result := &PlanStats{
		BoundingBox: p.BoundingBox(),
		AllWalls:    make([]WallInfo, 0, p.Len()),
	}
	if !result.BoundingBox.Empty() {
		result.Extent = result.BoundingBox.Size()
	}

	minLength := math.MaxFloat64
	maxLength := 0.0

	for i, w := range p.Walls() {
		info := WallInfo{
			ID:     w.ID(),
			Index:  i,
			Start:  w.StartPoint(),
			End:    w.EndPoint(),
			Length: w.Length(),
			Angle:  w.Angle(),
		}
		if line, ok := w.DimensionLine(); ok {
			info.Dimension = &line
			result.DimensionCount++
			switch w.Dimension().LockedAxis() {
			case plan.AxisX:
				result.LockedX++
			case plan.AxisY:
				result.LockedY++
			}
		}
		result.AllWalls = append(result.AllWalls, info)

		result.TotalLength += info.Length
		minLength = math.Min(minLength, info.Length)
		maxLength = math.Max(maxLength, info.Length)
	}

	result.WallCount = len(result.AllWalls)
	if result.WallCount > 0 {
		result.MinWallLength = minLength
		result.MaxWallLength = maxLength
		result.AvgWallLength = result.TotalLength / float64(result.WallCount)
	}

	return result
}

// FindWallsByLength finds all walls within a length range
func FindWallsByLength(result *PlanStats, minLength, maxLength float64) []WallInfo {
	var walls []WallInfo
	for _, w := range result.AllWalls {
		if w.Length >= minLength && w.Length <= maxLength {
			walls = append(walls, w)
		}
	}
	return walls
}

// FindLongestWalls returns the N longest walls in the plan
func FindLongestWalls(result *PlanStats, count int) []WallInfo {
	return sortedWalls(result, count, func(a, b WallInfo) bool { return a.Length > b.Length })
}

// FindShortestWalls returns the N shortest walls in the plan
func FindShortestWalls(result *PlanStats, count int) []WallInfo {
	return sortedWalls(result, count, func(a, b WallInfo) bool { return a.Length < b.Length })
}

func sortedWalls(result *PlanStats, count int, less func(a, b WallInfo) bool) []WallInfo {
	walls := make([]WallInfo, len(result.AllWalls))
	copy(walls, result.AllWalls)

	sort.SliceStable(walls, func(i, j int) bool {
		return less(walls[i], walls[j])
	})

	if count > len(walls) {
		count = len(walls)
	}
	if count < 0 {
		count = 0
	}

	return walls[:count]
}

// DistanceToSegment returns the distance from p to the segment a-b in the XY plane
func DistanceToSegment(p, a, b geometry.Vector3) float64 {
	p, a, b = p.Flat(), a.Flat(), b.Flat()
	ab := b.Sub(a)
	lenSq := ab.Dot(ab)
	if lenSq == 0 {
		return p.Distance(a)
	}
	t := geometry.Clamp(p.Sub(a).Dot(ab)/lenSq, 0, 1)
	return p.Distance(a.Add(ab.Mul(t)))
}

// FindNearestWall finds the wall whose center line is nearest to a point
func FindNearestWall(p *plan.Plan, point geometry.Vector3) (*plan.Wall, float64) {
	var nearest *plan.Wall
	minDistance := math.MaxFloat64

	for _, w := range p.Walls() {
		distance := DistanceToSegment(point, w.StartPoint(), w.EndPoint())
		if distance < minDistance {
			minDistance = distance
			nearest = w
		}
	}

	return nearest, minDistance
}

// FormatMeasurement formats a measurement with appropriate units
func FormatMeasurement(value float64, unit string) string {
	if unit == "" {
		unit = "units"
	}
	return fmt.Sprintf("%.4f %s", value, unit)
}

// FormatVector formats a plan point
func FormatVector(v geometry.Vector3) string {
	return fmt.Sprintf("(%.4f, %.4f)", v.X, v.Y)
}

// FormatAngle formats an angle in radians as degrees
func FormatAngle(rad float64) string {
	return fmt.Sprintf("%.2f°", rad*180/math.Pi)
}

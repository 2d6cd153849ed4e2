package analysis

import (
	"math"
	"testing"

	"github.com/philipparndt/gowall/pkg/geometry"
	"github.com/philipparndt/gowall/pkg/plan"
)

func samplePlan(t *testing.T) *plan.Plan {
	t.Helper()
	p := plan.New()
	walls := [][2]geometry.Vector3{
		{geometry.NewVector2(0, 0), geometry.NewVector2(4, 0)},
		{geometry.NewVector2(4, 0), geometry.NewVector2(4, 3)},
		{geometry.NewVector2(4, 3), geometry.NewVector2(0, 0)},
	}
	for i, pts := range walls {
		w := plan.NewWall(pts[0], pts[1])
		if err := p.AddWall(w); err != nil {
			t.Fatalf("AddWall failed: %v", err)
		}
		if i == 0 {
			w.EnsureDimension().SetLockedAxis(plan.AxisX)
		}
		if i == 2 {
			w.EnsureDimension()
		}
	}
	return p
}

func TestAnalyzePlan(t *testing.T) {
	result := AnalyzePlan(samplePlan(t))

	if result.WallCount != 3 {
		t.Errorf("WallCount failed: expected 3, got %d", result.WallCount)
	}
	if result.DimensionCount != 2 || result.LockedX != 1 || result.LockedY != 0 {
		t.Errorf("dimension counts failed: %d total, %d x, %d y", result.DimensionCount, result.LockedX, result.LockedY)
	}
	if math.Abs(result.TotalLength-12) > 1e-9 {
		t.Errorf("TotalLength failed: expected 12, got %v", result.TotalLength)
	}
	if result.MinWallLength != 3 || result.MaxWallLength != 5 {
		t.Errorf("Min/Max failed: got %v / %v", result.MinWallLength, result.MaxWallLength)
	}
	if math.Abs(result.AvgWallLength-4) > 1e-9 {
		t.Errorf("AvgWallLength failed: expected 4, got %v", result.AvgWallLength)
	}
	if result.Extent != geometry.NewVector2(4, 3) {
		t.Errorf("Extent failed: expected (4, 3), got %v", result.Extent)
	}
	if result.AllWalls[1].Dimension != nil || result.AllWalls[0].Dimension == nil {
		t.Error("Dimension presence failed")
	}
}

func TestAnalyzeEmptyPlan(t *testing.T) {
	result := AnalyzePlan(plan.New())
	if result.WallCount != 0 || result.MinWallLength != 0 || result.AvgWallLength != 0 {
		t.Errorf("empty plan stats failed: %+v", result)
	}
}

func TestFindLongestAndShortestWalls(t *testing.T) {
	result := AnalyzePlan(samplePlan(t))

	longest := FindLongestWalls(result, 2)
	if len(longest) != 2 || longest[0].Length != 5 || longest[1].Length != 4 {
		t.Errorf("FindLongestWalls failed: %+v", longest)
	}
	shortest := FindShortestWalls(result, 10)
	if len(shortest) != 3 || shortest[0].Length != 3 {
		t.Errorf("FindShortestWalls failed: %+v", shortest)
	}
	if got := FindWallsByLength(result, 3.5, 4.5); len(got) != 1 || got[0].Index != 0 {
		t.Errorf("FindWallsByLength failed: %+v", got)
	}
}

func TestDistanceToSegment(t *testing.T) {
	a := geometry.NewVector2(0, 0)
	b := geometry.NewVector2(4, 0)
	tests := []struct {
		p    geometry.Vector3
		want float64
	}{
		{geometry.NewVector2(2, 1), 1},
		{geometry.NewVector2(-3, 4), 5},
		{geometry.NewVector2(7, 0), 3},
		{geometry.NewVector3(1, 0, 9), 0},
	}
	for _, tt := range tests {
		if got := DistanceToSegment(tt.p, a, b); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("DistanceToSegment(%v) failed: expected %v, got %v", tt.p, tt.want, got)
		}
	}
	if got := DistanceToSegment(geometry.NewVector2(3, 4), a, a); got != 5 {
		t.Errorf("degenerate segment failed: expected 5, got %v", got)
	}
}

func TestFindNearestWall(t *testing.T) {
	p := samplePlan(t)
	w, d := FindNearestWall(p, geometry.NewVector2(4.5, 1.5))
	if w != p.Walls()[1] || math.Abs(d-0.5) > 1e-9 {
		t.Errorf("FindNearestWall failed: got %v at %v", w, d)
	}
	if w, _ := FindNearestWall(plan.New(), geometry.Vector3{}); w != nil {
		t.Error("expected nil for empty plan")
	}
}

func TestFormatting(t *testing.T) {
	if got := FormatVector(geometry.NewVector2(1, -2.5)); got != "(1.0000, -2.5000)" {
		t.Errorf("FormatVector failed: got %s", got)
	}
	if got := FormatMeasurement(2, ""); got != "2.0000 units" {
		t.Errorf("FormatMeasurement failed: got %s", got)
	}
	if got := FormatAngle(math.Pi / 2); got != "90.00°" {
		t.Errorf("FormatAngle failed: got %s", got)
	}
}

package editor

import (
	"testing"

	"github.com/philipparndt/gowall/pkg/geometry"
	"github.com/philipparndt/gowall/pkg/plan"
)

func hitFixture(t *testing.T) (horizontalWall, verticalWall *plan.Wall, walls []*plan.Wall) {
	t.Helper()
	h := plan.NewWall(geometry.NewVector2(0, 0), geometry.NewVector2(4, 0))
	v := plan.NewWall(geometry.NewVector2(10, 0), geometry.NewVector2(10, 3))
	h.EnsureDimension()
	v.EnsureDimension()
	return h, v, []*plan.Wall{h, v}
}

func labelExtent(*plan.Wall) (float64, float64) { return 0.5, 0.2 }

func TestHitTestPriority(t *testing.T) {
	h, v, walls := hitFixture(t)
	opts := HitOptions{Tolerance: 0.1, LabelExtent: labelExtent}

	tests := []struct {
		name     string
		world    geometry.Vector3
		selected string
		want     Hit
	}{
		{"wall body", geometry.NewVector2(2, 0.05), "", Hit{HitWall, h.ID()}},
		{"dimension line", geometry.NewVector2(1, 0.52), "", Hit{HitDimension, h.ID()}},
		{"label over line", geometry.NewVector2(2.3, 0.55), "", Hit{HitLabel, h.ID()}},
		{"wall end under extension line", geometry.NewVector2(0, 0.01), "", Hit{HitWall, h.ID()}},
		{"wall end past the corner", geometry.NewVector2(4.05, -0.05), "", Hit{HitWall, h.ID()}},
		{"extension line beyond wall", geometry.NewVector2(0, 0.3), "", Hit{HitDimension, h.ID()}},
		{"start handle of selected", geometry.NewVector2(0, 0.01), h.ID(), Hit{HitStartHandle, h.ID()}},
		{"end handle of selected", geometry.NewVector2(4.1, 0), h.ID(), Hit{HitEndHandle, h.ID()}},
		{"handles only for selection", geometry.NewVector2(4.1, 0), v.ID(), Hit{HitWall, h.ID()}},
		{"rotated label", geometry.NewVector2(9.5, 1.9), "", Hit{HitLabel, v.ID()}},
		{"beside rotated label", geometry.NewVector2(9.9, 1.5), "", Hit{HitWall, v.ID()}},
		{"empty space", geometry.NewVector2(2, 5), "", Hit{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HitTest(walls, tt.selected, tt.world, opts)
			if got != tt.want {
				t.Errorf("HitTest failed: expected %v %s, got %v %s", tt.want.Kind, tt.want.WallID, got.Kind, got.WallID)
			}
		})
	}
}

func TestHitTestWithoutLabels(t *testing.T) {
	h, _, walls := hitFixture(t)
	got := HitTest(walls, "", geometry.NewVector2(2.3, 0.55), HitOptions{Tolerance: 0.1})
	if got.Kind != HitDimension || got.WallID != h.ID() {
		t.Errorf("expected dimension hit, got %v", got.Kind)
	}
}

func TestHitTestNearestWall(t *testing.T) {
	a := plan.NewWall(geometry.NewVector2(0, 0), geometry.NewVector2(4, 0))
	b := plan.NewWall(geometry.NewVector2(0, 0.3), geometry.NewVector2(4, 0.3))
	got := HitTest([]*plan.Wall{a, b}, "", geometry.NewVector2(2, 0.2), HitOptions{Tolerance: 0.1})
	if got.WallID != b.ID() {
		t.Errorf("expected nearest wall %s, got %s", b.ID(), got.WallID)
	}
}

func TestEditorHitTestSkipsHidden(t *testing.T) {
	e, walls := newTestEditor(t, horizontal())
	w := walls[0]
	e.SetSeedWalls([]string{w.ID()})
	e.SetSeedVisible(0)

	if got := e.HitTest(w.Center(), HitOptions{Tolerance: 0.1}); got.Kind != HitNone {
		t.Errorf("hidden wall was hit: %v", got.Kind)
	}
}

package export

import (
	"bytes"
	"image/png"
	"math"
	"path/filepath"
	"testing"

	"github.com/philipparndt/gowall/pkg/geometry"
	"github.com/philipparndt/gowall/pkg/plan"
)

func samplePlan(t *testing.T) *plan.Plan {
	t.Helper()
	p := plan.New()
	w := plan.NewWall(geometry.NewVector2(0, 0), geometry.NewVector2(4, 0))
	if err := p.AddWall(w); err != nil {
		t.Fatal(err)
	}
	w.EnsureDimension().SetOffset(1)
	return p
}

func TestViewRoundTrip(t *testing.T) {
	opts := DefaultOptions()
	v := NewView(samplePlan(t), opts)

	// plan spans 4 x 1.2 including the dimension ticks
	want := math.Min((1600-120)/4.0, (1000-120)/1.2)
	if math.Abs(v.Zoom-want) > 1e-9 {
		t.Errorf("Zoom failed: expected %v, got %v", want, v.Zoom)
	}

	p := geometry.NewVector2(1.25, -0.5)
	x, y := v.ToScreen(p)
	if !v.ToPlan(x, y).AlmostEqual(p, 1e-9) {
		t.Errorf("ToPlan(ToScreen) failed: got %v", v.ToPlan(x, y))
	}

	x0, y0 := v.ToScreen(geometry.NewVector2(0, 0))
	x1, y1 := v.ToScreen(geometry.NewVector2(0, 1))
	if x0 != x1 || y1 >= y0 {
		t.Errorf("plan Y should point up on screen: %v,%v -> %v,%v", x0, y0, x1, y1)
	}
}

func TestViewEmptyPlan(t *testing.T) {
	v := NewView(plan.New(), DefaultOptions())
	if v.Zoom != plan.DefaultLabelScale.BaseZoom {
		t.Errorf("empty plan zoom failed: got %v", v.Zoom)
	}
	if x, y := v.ToScreen(geometry.Vector3{}); x != 800 || y != 500 {
		t.Errorf("origin should be centered, got %v,%v", x, y)
	}
}

func TestViewAt(t *testing.T) {
	v := ViewAt(geometry.NewVector3(2, 3, 7), 10, 200, 100)
	if v.Center() != geometry.NewVector2(2, 3) {
		t.Errorf("Center failed: expected (2, 3, 0), got %v", v.Center())
	}
	if x, y := v.ToScreen(geometry.NewVector2(3, 3)); x != 110 || y != 50 {
		t.Errorf("ToScreen failed: expected 110,50, got %v,%v", x, y)
	}
}

func TestRenderDrawsWall(t *testing.T) {
	opts := DefaultOptions()
	opts.Width, opts.Height = 400, 300
	p := samplePlan(t)

	dc, err := Render(p, opts)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	defer dc.Close()

	img := dc.Image()
	if b := img.Bounds(); b.Dx() != 400 || b.Dy() != 300 {
		t.Fatalf("image size failed: %v", b)
	}

	v := NewView(p, opts)
	x, y := v.ToScreen(geometry.NewVector2(1, 0))
	r, g, b, _ := img.At(int(x), int(y)).RGBA()
	if r > 0x4000 || g > 0x4000 || b > 0x4000 {
		t.Errorf("expected dark wall pixel at %v,%v, got %v %v %v", x, y, r, g, b)
	}

	r, g, b, _ = img.At(2, 2).RGBA()
	if r < 0xe000 || g < 0xe000 || b < 0xe000 {
		t.Errorf("expected light background, got %v %v %v", r, g, b)
	}
}

func TestWritePNG(t *testing.T) {
	opts := DefaultOptions()
	opts.Width, opts.Height = 200, 100

	var buf bytes.Buffer
	if err := WritePNG(&buf, samplePlan(t), opts); err != nil {
		t.Fatalf("WritePNG failed: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("output is not a png: %v", err)
	}
	if img.Bounds().Dx() != 200 {
		t.Errorf("width failed: got %d", img.Bounds().Dx())
	}

	if err := SavePNG(filepath.Join(t.TempDir(), "plan.png"), samplePlan(t), opts); err != nil {
		t.Errorf("SavePNG failed: %v", err)
	}
}

func TestRenderRejectsEmptyImage(t *testing.T) {
	opts := DefaultOptions()
	opts.Width = 0
	if _, err := Render(plan.New(), opts); err == nil {
		t.Error("expected error for zero width")
	}
}

package planfile

import (
	"errors"
	"math"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/philipparndt/gowall/pkg/plan"
)

const sample = `version: 1
walls:
  - center_x: 2
    center_y: 1
    angle: 0
    length: 4
    dimension_offset: -0.5
    locked_axis: x
  - center_x: 0
    center_y: 0
    angle: 1.5707963267948966
    length: 2
    thickness: 0.3
`

func TestDecodeSample(t *testing.T) {
	doc, err := Decode(strings.NewReader(sample))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if len(doc.Walls) != 2 {
		t.Fatalf("expected 2 walls, got %d", len(doc.Walls))
	}
	first := doc.Walls[0]
	if first.LockedAxis != plan.AxisX || first.DimensionOffset == nil || *first.DimensionOffset != -0.5 {
		t.Errorf("first record failed: %+v", first)
	}
	second := doc.Walls[1]
	if second.DimensionOffset != nil || second.Thickness != 0.3 {
		t.Errorf("second record failed: %+v", second)
	}
}

func TestDecodeRejects(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"unknown field", "walls:\n  - colour: red\n"},
		{"bad axis", "walls:\n  - length: 1\n    locked_axis: z\n"},
		{"not yaml", "walls: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Decode(strings.NewReader(tt.input)); err == nil {
				t.Error("expected error")
			}
		})
	}

	if _, err := Decode(strings.NewReader("version: 2\n")); !errors.Is(err, ErrUnsupportedVersion) {
		t.Errorf("expected ErrUnsupportedVersion, got %v", err)
	}
}

func TestDecodeEmpty(t *testing.T) {
	doc, err := Decode(strings.NewReader(""))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if doc.Version != CurrentVersion || len(doc.Walls) != 0 {
		t.Errorf("empty document failed: %+v", doc)
	}
}

func TestUnmarshalRejectsDegenerateWall(t *testing.T) {
	if _, err := Unmarshal([]byte("walls:\n  - length: 0\n")); !errors.Is(err, plan.ErrDegenerateWall) {
		t.Errorf("expected ErrDegenerateWall, got %v", err)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	p, err := plan.FromRecords(plan.RandomRecords(rng, 10))
	if err != nil {
		t.Fatal(err)
	}
	p.Walls()[0].Dimension().SetLockedAxis(plan.AxisY)

	path := filepath.Join(t.TempDir(), "plan.yaml")
	if err := Save(path, p); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.Len() != p.Len() {
		t.Fatalf("wall count failed: expected %d, got %d", p.Len(), loaded.Len())
	}
	for i, w := range p.Walls() {
		other := loaded.Walls()[i]
		if math.Abs(w.Length()-other.Length()) > 1e-9 {
			t.Errorf("wall %d length failed: expected %v, got %v", i, w.Length(), other.Length())
		}
		if w.Dimension().LockedAxis() != other.Dimension().LockedAxis() {
			t.Errorf("wall %d axis failed", i)
		}
	}

	entries, _ := os.ReadDir(filepath.Dir(path))
	if len(entries) != 1 {
		t.Errorf("temp file left behind: %d entries", len(entries))
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected os.ErrNotExist, got %v", err)
	}
}

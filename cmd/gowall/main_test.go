package main

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/philipparndt/gowall/pkg/geometry"
	"github.com/philipparndt/gowall/pkg/plan"
	"github.com/philipparndt/gowall/pkg/planfile"
)

func execute(t *testing.T, args ...string) error {
	t.Helper()
	configFile := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(configFile, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	rootCmd.SetArgs(append(args, "--config", configFile))
	return rootCmd.Execute()
}

func TestSeedPlanIsReproducible(t *testing.T) {
	a, idsA, err := seedPlan(20, 7)
	if err != nil {
		t.Fatal(err)
	}
	b, _, err := seedPlan(20, 7)
	if err != nil {
		t.Fatal(err)
	}

	if a.Len() != 20 || len(idsA) != 20 {
		t.Fatalf("seedPlan failed: expected 20 walls, got %d (%d ids)", a.Len(), len(idsA))
	}
	for i, w := range a.Walls() {
		if w.ID() != idsA[i] {
			t.Errorf("id %d failed: expected %s, got %s", i, w.ID(), idsA[i])
		}
		other := b.Walls()[i]
		if !w.StartPoint().AlmostEqual(other.StartPoint(), 1e-12) || !w.EndPoint().AlmostEqual(other.EndPoint(), 1e-12) {
			t.Errorf("wall %d differs between runs with the same seed", i)
		}
	}
}

func TestResolveWall(t *testing.T) {
	p, ids, err := seedPlan(3, 1)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		ref     string
		index   int
		wantErr bool
	}{
		{ids[1], 1, false},
		{"2", 2, false},
		{"0", 0, false},
		{"3", -1, true},
		{"-1", -1, true},
		{"kitchen", -1, true},
	}
	for _, tt := range tests {
		w, index, err := resolveWall(p, tt.ref)
		if (err != nil) != tt.wantErr {
			t.Errorf("resolveWall(%q) failed: unexpected error %v", tt.ref, err)
			continue
		}
		if tt.wantErr {
			continue
		}
		if index != tt.index || w.ID() != ids[tt.index] {
			t.Errorf("resolveWall(%q) failed: expected index %d, got %d", tt.ref, tt.index, index)
		}
	}
}

func TestParsePoint(t *testing.T) {
	p, err := parsePoint("1.5, -2")
	if err != nil {
		t.Fatal(err)
	}
	if p != geometry.NewVector2(1.5, -2) {
		t.Errorf("parsePoint failed: expected (1.5, -2), got %v", p)
	}
	for _, bad := range []string{"", "1", "a,2", "1,b"} {
		if _, err := parsePoint(bad); err == nil {
			t.Errorf("parsePoint(%q) should fail", bad)
		}
	}
}

func TestSeedAndSetLength(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "plan.yaml")

	if err := execute(t, "seed", file, "--count", "5", "--seed", "3"); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	p, err := planfile.Load(file)
	if err != nil {
		t.Fatal(err)
	}
	if p.Len() != 5 {
		t.Fatalf("seed failed: expected 5 walls, got %d", p.Len())
	}
	start := p.Walls()[2].StartPoint()

	if err := execute(t, "set-length", file, "--wall", "2", "--length", "4", "--axis", "none"); err != nil {
		t.Fatalf("set-length failed: %v", err)
	}
	p, err = planfile.Load(file)
	if err != nil {
		t.Fatal(err)
	}
	w := p.Walls()[2]
	if math.Abs(w.Length()-4) > 1e-6 {
		t.Errorf("set-length failed: expected length 4, got %v", w.Length())
	}
	if !w.StartPoint().AlmostEqual(start, 1e-6) {
		t.Errorf("set-length moved the start point: %v -> %v", start, w.StartPoint())
	}
	if w.Dimension() == nil || w.Dimension().LockedAxis() != plan.AxisNone {
		t.Errorf("set-length should keep the dimension")
	}
}

func TestSetLengthRejectsZero(t *testing.T) {
	file := filepath.Join(t.TempDir(), "plan.yaml")
	if err := execute(t, "seed", file, "--count", "3", "--seed", "5"); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	before, err := os.ReadFile(file)
	if err != nil {
		t.Fatal(err)
	}

	for _, axis := range []string{"none", "x", "y"} {
		err := execute(t, "set-length", file, "--wall", "1", "--length", "0", "--axis", axis, "--output", file)
		if !errors.Is(err, plan.ErrDegenerateWall) {
			t.Errorf("set-length --axis %s failed: expected ErrDegenerateWall, got %v", axis, err)
		}
	}

	after, err := os.ReadFile(file)
	if err != nil {
		t.Fatal(err)
	}
	if string(after) != string(before) {
		t.Error("rejected set-length rewrote the plan file")
	}
	if _, err := planfile.Load(file); err != nil {
		t.Errorf("plan file no longer loads: %v", err)
	}
}

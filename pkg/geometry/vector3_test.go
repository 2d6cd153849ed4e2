package geometry

import (
	"math"
	"testing"
)

func TestVector3Add(t *testing.T) {
	v1 := NewVector3(1, 2, 3)
	v2 := NewVector3(4, 5, 6)
	result := v1.Add(v2)

	expected := NewVector3(5, 7, 9)
	if result != expected {
		t.Errorf("Add failed: expected %v, got %v", expected, result)
	}
}

func TestVector3Sub(t *testing.T) {
	v1 := NewVector3(5, 7, 9)
	v2 := NewVector3(1, 2, 3)
	result := v1.Sub(v2)

	expected := NewVector3(4, 5, 6)
	if result != expected {
		t.Errorf("Sub failed: expected %v, got %v", expected, result)
	}
}

func TestVector3Distance(t *testing.T) {
	v1 := NewVector2(0, 0)
	v2 := NewVector2(3, 4)
	distance := v1.Distance(v2)

	expected := 5.0
	if math.Abs(distance-expected) > 1e-10 {
		t.Errorf("Distance failed: expected %v, got %v", expected, distance)
	}
}

func TestVector3Normalize(t *testing.T) {
	v := NewVector2(3, 4)
	normalized := v.Normalize()

	if math.Abs(normalized.Length()-1.0) > 1e-10 {
		t.Errorf("Normalize failed: expected length 1, got %v", normalized.Length())
	}

	if zero := (Vector3{}).Normalize(); zero != (Vector3{}) {
		t.Errorf("Normalize of zero vector failed: expected zero, got %v", zero)
	}
}

func TestVector3Dot(t *testing.T) {
	v1 := NewVector3(1, 2, 3)
	v2 := NewVector3(4, 5, 6)
	result := v1.Dot(v2)

	expected := 32.0 // 1*4 + 2*5 + 3*6 = 32
	if math.Abs(result-expected) > 1e-10 {
		t.Errorf("Dot failed: expected %v, got %v", expected, result)
	}
}

func TestVector3Perp(t *testing.T) {
	tests := []struct {
		in, want Vector3
	}{
		{UnitX, UnitY},
		{UnitY, NewVector2(-1, 0)},
		{NewVector2(-1, 0), NewVector2(0, -1)},
		{NewVector2(0.6, 0.8), NewVector2(-0.8, 0.6)},
	}

	for _, tt := range tests {
		if got := tt.in.Perp(); !got.AlmostEqual(tt.want, 1e-12) {
			t.Errorf("Perp(%v) failed: expected %v, got %v", tt.in, tt.want, got)
		}
	}
}

func TestVector3Angle(t *testing.T) {
	if a := NewVector2(0, 1).Angle(); math.Abs(a-math.Pi/2) > 1e-12 {
		t.Errorf("Angle failed: expected %v, got %v", math.Pi/2, a)
	}
	if a := NewVector2(-1, 0).Angle(); math.Abs(a-math.Pi) > 1e-12 {
		t.Errorf("Angle failed: expected %v, got %v", math.Pi, a)
	}
}

func TestMidpoint(t *testing.T) {
	got := Midpoint(NewVector2(0, 0), NewVector2(4, 2))
	if got != NewVector2(2, 1) {
		t.Errorf("Midpoint failed: expected (2,1,0), got %v", got)
	}
}

func TestSignOrOne(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{-3, -1},
		{-0.0001, -1},
		{0, 1},
		{math.Copysign(0, -1), 1},
		{2.5, 1},
		{math.NaN(), 1},
	}
	for _, tt := range tests {
		if got := SignOrOne(tt.in); got != tt.want {
			t.Errorf("SignOrOne(%v) failed: expected %v, got %v", tt.in, tt.want, got)
		}
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 3); got != 3 {
		t.Errorf("Clamp high failed: got %v", got)
	}
	if got := Clamp(-1, 0, 3); got != 0 {
		t.Errorf("Clamp low failed: got %v", got)
	}
	if got := Clamp(1.5, 0, 3); got != 1.5 {
		t.Errorf("Clamp inside failed: got %v", got)
	}
}

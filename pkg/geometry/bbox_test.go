package geometry

import "testing"

func TestBoundingBoxExtend(t *testing.T) {
	bbox := NewBoundingBox()
	if !bbox.Empty() {
		t.Fatal("new bounding box should be empty")
	}

	bbox.Extend(NewVector2(-1, 2))
	bbox.Extend(NewVector2(3, -4))

	if bbox.Min != NewVector2(-1, -4) {
		t.Errorf("Min failed: expected (-1,-4,0), got %v", bbox.Min)
	}
	if bbox.Max != NewVector2(3, 2) {
		t.Errorf("Max failed: expected (3,2,0), got %v", bbox.Max)
	}
	if c := bbox.Center(); c != NewVector2(1, -1) {
		t.Errorf("Center failed: expected (1,-1,0), got %v", c)
	}
	if s := bbox.Size(); s != NewVector2(4, 6) {
		t.Errorf("Size failed: expected (4,6,0), got %v", s)
	}
}

func TestBoundingBoxEmptyCenter(t *testing.T) {
	bbox := NewBoundingBox()
	if c := bbox.Center(); c != (Vector3{}) {
		t.Errorf("Center of empty box failed: expected origin, got %v", c)
	}
}

package plan

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/philipparndt/gowall/pkg/geometry"
)

// Record is the persisted form of a wall and its dimension
type Record struct {
	CenterX         float64    `yaml:"center_x"`
	CenterY         float64    `yaml:"center_y"`
	Angle           float64    `yaml:"angle"`
	Length          float64    `yaml:"length"`
	Thickness       float64    `yaml:"thickness,omitempty"`
	DimensionOffset *float64   `yaml:"dimension_offset,omitempty"`
	LockedAxis      LockedAxis `yaml:"locked_axis,omitempty"`
}

// WallFromRecord rebuilds a wall (and its dimension, when the record has an
// offset) from center, angle and length
func WallFromRecord(r Record) (*Wall, error) {
	if !finite(r.CenterX, r.CenterY, r.Angle, r.Length, r.Thickness) {
		return nil, fmt.Errorf("record center (%v, %v) angle %v length %v: %w",
			r.CenterX, r.CenterY, r.Angle, r.Length, ErrNonFinite)
	}
	if r.DimensionOffset != nil && !finite(*r.DimensionOffset) {
		return nil, fmt.Errorf("record dimension offset %v: %w", *r.DimensionOffset, ErrNonFinite)
	}
	if r.Length < MinWallLength {
		return nil, fmt.Errorf("record length %v: %w", r.Length, ErrDegenerateWall)
	}

	center := geometry.NewVector2(r.CenterX, r.CenterY)
	half := geometry.NewVector2(math.Cos(r.Angle), math.Sin(r.Angle)).Mul(r.Length / 2)
	w := NewWall(center.Sub(half), center.Add(half))
	if r.Thickness > 0 {
		w.SetThickness(r.Thickness)
	}

	if r.DimensionOffset != nil {
		d := NewDimension()
		d.offset = *r.DimensionOffset
		d.lockedAxis = r.LockedAxis
		w.SetDimension(d)
	}
	return w, nil
}

// RecordFromWall is the inverse of WallFromRecord
func RecordFromWall(w *Wall) Record {
	center := w.Center()
	r := Record{
		CenterX:   center.X,
		CenterY:   center.Y,
		Angle:     w.Angle(),
		Length:    w.Length(),
		Thickness: w.Thickness(),
	}
	if d := w.Dimension(); d != nil {
		offset := d.Offset()
		r.DimensionOffset = &offset
		r.LockedAxis = d.LockedAxis()
	}
	return r
}

// FromRecords builds a plan from persisted records
func FromRecords(records []Record) (*Plan, error) {
	p := New()
	for i, r := range records {
		w, err := WallFromRecord(r)
		if err != nil {
			return nil, fmt.Errorf("wall %d: %w", i, err)
		}
		if err := p.AddWall(w); err != nil {
			return nil, fmt.Errorf("wall %d: %w", i, err)
		}
	}
	return p, nil
}

// Records returns the persisted form of every wall
func (p *Plan) Records() []Record {
	records := make([]Record, 0, len(p.walls))
	for _, w := range p.walls {
		records = append(records, RecordFromWall(w))
	}
	return records
}

// RandomRecords generates count scattered sample walls, each with a
// dimension on a random side
func RandomRecords(rng *rand.Rand, count int) []Record {
	records := make([]Record, 0, count)
	for range count {
		offset := 0.25 + rng.Float64()*0.75
		if rng.Float64() < 0.5 {
			offset = -offset
		}
		records = append(records, Record{
			CenterX:         (rng.Float64() - 0.5) * 30,
			CenterY:         (rng.Float64() - 0.5) * 20,
			Length:          0.6 + rng.Float64()*1.8,
			Angle:           rng.Float64() * math.Pi * 2,
			DimensionOffset: &offset,
		})
	}
	return records
}

func finite(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

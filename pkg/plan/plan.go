// Package plan holds the floor-plan model: walls, their dimension
// annotations, and the rules that derive dimension geometry from them.
//
// All state is owned by a single goroutine (the editor's event loop).
// Mutators notify subscribers synchronously after the state and every
// dependent cache have been updated, so a listener never observes a
// half-applied change.
package plan

import (
	"fmt"

	"github.com/philipparndt/gowall/pkg/geometry"
)

// MinWallLength is the shortest wall the plan accepts
const MinWallLength = 1e-4

// ChangeKind identifies what changed
type ChangeKind int

const (
	WallAdded ChangeKind = iota
	WallRemoved
	WallMoved
	WallChanged
	DimensionChanged
)

func (k ChangeKind) String() string {
	switch k {
	case WallAdded:
		return "wall-added"
	case WallRemoved:
		return "wall-removed"
	case WallMoved:
		return "wall-moved"
	case WallChanged:
		return "wall-changed"
	case DimensionChanged:
		return "dimension-changed"
	}
	return fmt.Sprintf("change(%d)", int(k))
}

// Change is delivered to subscribers after every mutation
type Change struct {
	Kind   ChangeKind
	WallID string
}

// Plan is the ordered collection of walls
type Plan struct {
	walls       []*Wall
	subscribers map[int]func(Change)
	nextSubID   int
}

// New creates an empty plan
func New() *Plan {
	return &Plan{subscribers: make(map[int]func(Change))}
}

// Subscribe registers fn for change notifications and returns a function
// that removes it
func (p *Plan) Subscribe(fn func(Change)) (unsubscribe func()) {
	id := p.nextSubID
	p.nextSubID++
	p.subscribers[id] = fn
	return func() { delete(p.subscribers, id) }
}

func (p *Plan) publish(c Change) {
	for _, fn := range p.subscribers {
		fn(c)
	}
}

// AddWall appends w to the plan. Walls shorter than MinWallLength, or with
// non-finite end points, are rejected.
func (p *Plan) AddWall(w *Wall) error {
	start, end := w.StartPoint(), w.EndPoint()
	if !finite(start.X, start.Y, end.X, end.Y) || !(w.Length() >= MinWallLength) {
		return ErrDegenerateWall
	}
	w.notify = p.publish
	p.walls = append(p.walls, w)
	p.publish(Change{Kind: WallAdded, WallID: w.ID()})
	return nil
}

// Remove deletes the wall (and its dimension) with the given id
func (p *Plan) Remove(id string) bool {
	i := p.Index(id)
	if i < 0 {
		return false
	}
	w := p.walls[i]
	p.walls = append(p.walls[:i], p.walls[i+1:]...)
	w.notify = nil
	w.SetDimension(nil)
	p.publish(Change{Kind: WallRemoved, WallID: id})
	return true
}

// Find returns the wall with the given id or nil
func (p *Plan) Find(id string) *Wall {
	if i := p.Index(id); i >= 0 {
		return p.walls[i]
	}
	return nil
}

// Index returns the position of the wall with the given id or -1
func (p *Plan) Index(id string) int {
	for i, w := range p.walls {
		if w.ID() == id {
			return i
		}
	}
	return -1
}

// Walls returns the walls in insertion order
func (p *Plan) Walls() []*Wall {
	out := make([]*Wall, len(p.walls))
	copy(out, p.walls)
	return out
}

// Len returns the number of walls
func (p *Plan) Len() int { return len(p.walls) }

// DimensionPositions concatenates the cached point buffers of all
// dimensions, for drawing every dimension line in a single batch
func (p *Plan) DimensionPositions() []float64 {
	out := make([]float64, 0, len(p.walls)*18)
	for _, w := range p.walls {
		if d := w.Dimension(); d != nil {
			out = append(out, d.Points()...)
		}
	}
	return out
}

// BoundingBox returns the box around all wall end points
func (p *Plan) BoundingBox() geometry.BoundingBox {
	bbox := geometry.NewBoundingBox()
	for _, w := range p.walls {
		bbox.Extend(w.StartPoint())
		bbox.Extend(w.EndPoint())
	}
	return bbox
}

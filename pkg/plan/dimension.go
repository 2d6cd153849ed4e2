package plan

// DefaultOffset is the offset of a newly created dimension
const DefaultOffset = 0.5

// Dimension annotates its owning wall with a measured length.
//
// The points cache always mirrors ComputeDimensionLine for the owning wall:
// every mutator on the dimension or the wall recomputes it before returning.
type Dimension struct {
	offset     float64
	lockedAxis LockedAxis
	points     []float64
	owner      *Wall
}

// NewDimension creates an unlocked dimension with the default offset
func NewDimension() *Dimension {
	return &Dimension{offset: DefaultOffset, lockedAxis: AxisNone}
}

// Offset returns the signed offset along the axis implied by the lock
func (d *Dimension) Offset() float64 { return d.offset }

// LockedAxis returns the active axis lock
func (d *Dimension) LockedAxis() LockedAxis { return d.lockedAxis }

// SetOffset replaces the offset
func (d *Dimension) SetOffset(offset float64) {
	if d.offset == offset {
		return
	}
	d.offset = offset
	d.changed()
}

// SetLockedAxis changes the axis lock. The offset keeps its numeric value,
// so the dimension line may jump when switching modes.
func (d *Dimension) SetLockedAxis(axis LockedAxis) {
	if d.lockedAxis == axis {
		return
	}
	d.lockedAxis = axis
	d.changed()
}

// ToggleAxis locks to axis, or unlocks if already locked to it
func (d *Dimension) ToggleAxis(axis LockedAxis) {
	if d.lockedAxis == axis {
		d.SetLockedAxis(AxisNone)
		return
	}
	d.SetLockedAxis(axis)
}

// Points returns the cached 18-number line buffer (nil when detached)
func (d *Dimension) Points() []float64 { return d.points }

// SetPoints stores p in the cache. Identical content is a no-op and
// reports false without notifying listeners.
func (d *Dimension) SetPoints(p []float64) bool {
	if equalPoints(d.points, p) {
		return false
	}
	d.points = append(d.points[:0:0], p...)
	if d.owner != nil {
		d.owner.emit(DimensionChanged)
	}
	return true
}

// changed refreshes the cache and makes sure listeners hear about the
// state change even when the line buffer came out identical.
func (d *Dimension) changed() {
	if d.owner == nil {
		return
	}
	if !d.owner.RefreshDimension() {
		d.owner.emit(DimensionChanged)
	}
}

func equalPoints(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Package editor turns pointer and keyboard events into plan edits.
//
// The Editor is toolkit agnostic: a window layer resolves raw input into
// plan coordinates and hit targets, then calls the event methods. Every
// event applies its mutation synchronously, and the plan refreshes
// dimension geometry before the method returns, so the next frame always
// renders consistent state.
package editor

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/philipparndt/gowall/pkg/geometry"
	"github.com/philipparndt/gowall/pkg/plan"
)

// SeedStep is the increment used when changing the visible seed wall count
const SeedStep = 50

// GestureKind identifies the active pointer gesture
type GestureKind int

const (
	GestureNone GestureKind = iota
	GestureDrawWall
	GestureDragEndpoint
	GestureDragOffset
)

func (g GestureKind) String() string {
	switch g {
	case GestureDrawWall:
		return "draw-wall"
	case GestureDragEndpoint:
		return "drag-endpoint"
	case GestureDragOffset:
		return "drag-offset"
	default:
		return "none"
	}
}

type gesture struct {
	kind   GestureKind
	wallID string
	// end selects the dragged endpoint for GestureDragEndpoint
	end bool
	// start is the first click of GestureDrawWall
	start geometry.Vector3
}

// LengthDialog is the state of the numeric length entry
type LengthDialog struct {
	Open   bool
	WallID string
	Axis   plan.LockedAxis
	// Value is the prefilled input text
	Value string
}

// Title returns the dialog heading for the edited axis
func (d LengthDialog) Title() string {
	switch d.Axis {
	case plan.AxisX:
		return "Edit Horizontal Length"
	case plan.AxisY:
		return "Edit Vertical Length"
	default:
		return "Edit Wall Length"
	}
}

// Editor is the interaction state machine over a plan
type Editor struct {
	plan       *plan.Plan
	logger     *log.Logger
	tool       Tool
	selectedID string
	gesture    gesture
	preview    *plan.Wall
	drawAxis   plan.LockedAxis
	dialog     LengthDialog

	seedIDs     []string
	seedVisible int
	hidden      map[string]bool
}

// New creates an editor over p with the select tool active
func New(p *plan.Plan, logger *log.Logger) *Editor {
	if logger == nil {
		logger = log.Default()
	}
	return &Editor{plan: p, logger: logger, hidden: make(map[string]bool)}
}

// Plan returns the edited plan
func (e *Editor) Plan() *plan.Plan { return e.plan }

// SetPlan replaces the edited plan, e.g. after the file was reloaded.
// The selection is kept only if the new plan still holds that wall.
func (e *Editor) SetPlan(p *plan.Plan) {
	e.Cancel()
	e.plan = p
	e.seedIDs = nil
	e.seedVisible = 0
	e.hidden = make(map[string]bool)
	if e.selectedID != "" && p.Find(e.selectedID) == nil {
		e.selectedID = ""
	}
	if e.dialog.Open && p.Find(e.dialog.WallID) == nil {
		e.dialog.Open = false
	}
}

// Tool returns the active tool
func (e *Editor) Tool() Tool { return e.tool }

// Gesture returns the active gesture
func (e *Editor) Gesture() GestureKind { return e.gesture.kind }

// Selected returns the selected wall, or nil
func (e *Editor) Selected() *plan.Wall {
	if e.selectedID == "" {
		return nil
	}
	return e.plan.Find(e.selectedID)
}

// SelectedID returns the id of the selected wall, or ""
func (e *Editor) SelectedID() string { return e.selectedID }

// Preview returns the rubber-band wall while drawing, or nil. It is not
// part of the plan.
func (e *Editor) Preview() *plan.Wall { return e.preview }

// DrawAxis returns the axis constraint of the wall being drawn
func (e *Editor) DrawAxis() plan.LockedAxis { return e.drawAxis }

// Dialog returns the length dialog state
func (e *Editor) Dialog() LengthDialog { return e.dialog }

// SetTool switches tools. The active gesture is cancelled, leaving select
// clears the selection and entering the wall tool closes the length dialog.
func (e *Editor) SetTool(t Tool) {
	if t == e.tool {
		return
	}
	e.Cancel()
	e.tool = t
	if t != ToolSelect {
		e.selectedID = ""
	}
	if t == ToolWall {
		e.dialog.Open = false
	}
	e.logger.Debug("tool changed", "tool", t)
}

// Cancel aborts the active gesture. Values already applied while dragging
// are kept.
func (e *Editor) Cancel() {
	if e.gesture.kind != GestureNone {
		e.logger.Debug("gesture cancelled", "gesture", e.gesture.kind)
	}
	e.gesture = gesture{}
	e.preview = nil
	e.drawAxis = plan.AxisNone
}

// PointerDown handles a primary button press at world over target
func (e *Editor) PointerDown(world geometry.Vector3, target Hit) {
	world = world.Flat()

	if e.tool == ToolWall {
		e.drawClick(world)
		return
	}

	w := e.plan.Find(target.WallID)
	if w == nil || !e.Visible(w) {
		return
	}

	switch target.Kind {
	case HitStartHandle, HitEndHandle:
		if target.WallID != e.selectedID {
			return
		}
		e.gesture = gesture{kind: GestureDragEndpoint, wallID: w.ID(), end: target.Kind == HitEndHandle}

	case HitDimension, HitLabel:
		if w.Dimension() == nil {
			return
		}
		e.gesture = gesture{kind: GestureDragOffset, wallID: w.ID()}

	case HitWall:
		e.selectedID = w.ID()
		if e.tool == ToolDimension && w.Dimension() == nil {
			w.EnsureDimension()
			e.logger.Debug("dimension added", "wall", w.ID())
		}
	}
}

func (e *Editor) drawClick(world geometry.Vector3) {
	if e.gesture.kind != GestureDrawWall {
		e.gesture = gesture{kind: GestureDrawWall, start: world}
		e.preview = plan.NewWall(world, world)
		return
	}

	end := e.constrain(world)
	wall := plan.NewWall(e.gesture.start, end)
	if err := e.plan.AddWall(wall); err != nil {
		e.logger.Debug("wall rejected", "err", err)
		return
	}
	e.logger.Debug("wall added", "wall", wall.ID(), "length", wall.Length())
	e.Cancel()
}

// constrain applies the drawing axis lock to the rubber-band end point
func (e *Editor) constrain(world geometry.Vector3) geometry.Vector3 {
	switch e.drawAxis {
	case plan.AxisX:
		return geometry.NewVector2(world.X, e.gesture.start.Y)
	case plan.AxisY:
		return geometry.NewVector2(e.gesture.start.X, world.Y)
	}
	return world
}

// PointerMove handles pointer motion to world
func (e *Editor) PointerMove(world geometry.Vector3) {
	world = world.Flat()

	switch e.gesture.kind {
	case GestureDrawWall:
		e.preview.SetEndPoint(e.constrain(world))

	case GestureDragEndpoint:
		w := e.plan.Find(e.gesture.wallID)
		if w == nil {
			e.Cancel()
			return
		}
		fixed := w.StartPoint()
		if !e.gesture.end {
			fixed = w.EndPoint()
		}
		if world.Distance(fixed) < plan.MinWallLength {
			return
		}
		if e.gesture.end {
			w.SetEndPoint(world)
		} else {
			w.SetStartPoint(world)
		}

	case GestureDragOffset:
		w := e.plan.Find(e.gesture.wallID)
		if w == nil || w.Dimension() == nil {
			e.Cancel()
			return
		}
		d := w.Dimension()
		d.SetOffset(plan.OffsetFromPointer(w.Geometry(), world, d.LockedAxis()))
	}
}

// PointerUp ends a drag gesture. Drawing continues until the second click.
func (e *Editor) PointerUp(world geometry.Vector3) {
	switch e.gesture.kind {
	case GestureDragEndpoint, GestureDragOffset:
		e.logger.Debug("gesture finished", "gesture", e.gesture.kind, "wall", e.gesture.wallID)
		e.gesture = gesture{}
	}
}

// KeyPress handles a key press
func (e *Editor) KeyPress(key Key, mods Modifiers) {
	if e.dialog.Open {
		if key == KeyEscape {
			e.CloseLengthDialog()
		}
		return
	}

	if key == KeyEscape {
		e.Cancel()
		return
	}

	if t, ok := toolForKey(key); ok && !mods.Has(ModCtrl) {
		e.SetTool(t)
		return
	}

	switch key {
	case KeyDelete, KeyBackspace:
		e.DeleteSelected()
		return
	case KeyPlus:
		e.SetSeedVisible(e.seedVisible + SeedStep)
		return
	case KeyMinus:
		e.SetSeedVisible(e.seedVisible - SeedStep)
		return
	}

	if e.tool == ToolWall {
		if e.gesture.kind == GestureDrawWall {
			switch key {
			case KeyX:
				e.drawAxis = toggle(e.drawAxis, plan.AxisX)
			case KeyY:
				e.drawAxis = toggle(e.drawAxis, plan.AxisY)
			}
			e.preview.SetEndPoint(e.constrain(e.preview.EndPoint()))
		}
		return
	}

	w := e.Selected()
	if w == nil || w.Dimension() == nil {
		return
	}
	d := w.Dimension()
	switch {
	case key == KeyX:
		d.ToggleAxis(plan.AxisX)
	case key == KeyY:
		d.ToggleAxis(plan.AxisY)
	case mods.Has(ModCtrl):
		d.SetLockedAxis(plan.AxisNone)
	default:
		return
	}
	e.logger.Debug("axis lock", "wall", w.ID(), "axis", d.LockedAxis())
}

func toggle(current, axis plan.LockedAxis) plan.LockedAxis {
	if current == axis {
		return plan.AxisNone
	}
	return axis
}

// DeleteSelected removes the selected wall and its dimension
func (e *Editor) DeleteSelected() {
	if e.selectedID == "" {
		return
	}
	id := e.selectedID
	if e.gesture.wallID == id {
		e.Cancel()
	}
	e.plan.Remove(id)
	e.selectedID = ""
	e.dialog.Open = false
	e.logger.Debug("wall deleted", "wall", id)
}

// DoubleClickLabel opens the length dialog for the wall's dimension axis
func (e *Editor) DoubleClickLabel(wallID string) {
	if e.tool == ToolWall {
		return
	}
	w := e.plan.Find(wallID)
	if w == nil || w.Dimension() == nil {
		return
	}
	axis := w.Dimension().LockedAxis()
	e.selectedID = wallID
	e.dialog = LengthDialog{
		Open:   true,
		WallID: wallID,
		Axis:   axis,
		Value:  fmt.Sprintf("%.2f", plan.EditableLength(w, axis)),
	}
}

// CommitLength applies the dialog input. Rejected input leaves the wall
// and the open dialog untouched; the error says why.
func (e *Editor) CommitLength(input string) error {
	if !e.dialog.Open {
		return nil
	}
	w := e.plan.Find(e.dialog.WallID)
	if w == nil {
		e.dialog.Open = false
		return nil
	}
	if err := SetLength(w, e.dialog.Axis, input); err != nil {
		e.logger.Debug("length rejected", "wall", w.ID(), "input", input, "err", err)
		return err
	}
	e.logger.Debug("length applied", "wall", w.ID(), "axis", e.dialog.Axis, "length", w.Length())
	e.dialog.Open = false
	return nil
}

// SetLength applies a typed length to w. Unlike plan.ApplyLength it refuses
// targets that would leave the wall shorter than plan.MinWallLength, so the
// plan never holds a wall it could not save and reload.
func SetLength(w *plan.Wall, axis plan.LockedAxis, input string) error {
	target, err := plan.ParseLength(input)
	if err != nil {
		return err
	}
	end, err := plan.SolveWallLength(w, axis, target)
	if err != nil {
		return err
	}
	if end.Distance(w.StartPoint()) < plan.MinWallLength {
		return fmt.Errorf("length %v: %w", target, plan.ErrDegenerateWall)
	}
	w.SetEndPoint(end)
	return nil
}

// CloseLengthDialog closes the dialog without applying
func (e *Editor) CloseLengthDialog() {
	e.dialog.Open = false
}

// IsRejection reports whether err is one of the absorbed edit rejections
func IsRejection(err error) bool {
	return errors.Is(err, plan.ErrInvalidLength) ||
		errors.Is(err, plan.ErrAxisDegenerate) ||
		errors.Is(err, plan.ErrDegenerateWall)
}

// HitTest resolves world against the visible walls and current selection
func (e *Editor) HitTest(world geometry.Vector3, opts HitOptions) Hit {
	return HitTest(e.VisibleWalls(), e.selectedID, world, opts)
}

// SetSeedWalls marks the walls that belong to generated seed data; all of
// them start visible
func (e *Editor) SetSeedWalls(ids []string) {
	e.seedIDs = append([]string(nil), ids...)
	e.SetSeedVisible(len(ids))
}

// SeedVisible returns the visible and total seed wall counts
func (e *Editor) SeedVisible() (visible, total int) {
	return e.seedVisible, len(e.seedIDs)
}

// SetSeedVisible shows the first n seed walls. n is clamped to the seed
// count; values between steps round down to a multiple of SeedStep unless
// they reach the total.
func (e *Editor) SetSeedVisible(n int) {
	total := len(e.seedIDs)
	switch {
	case n >= total:
		n = total
	case n <= 0:
		n = 0
	default:
		n -= n % SeedStep
	}
	e.seedVisible = n

	e.hidden = make(map[string]bool, total-n)
	for _, id := range e.seedIDs[n:] {
		e.hidden[id] = true
	}
	if e.hidden[e.selectedID] {
		e.selectedID = ""
		e.dialog.Open = false
	}
	if e.hidden[e.gesture.wallID] {
		e.Cancel()
	}
}

// Visible reports whether w is shown
func (e *Editor) Visible(w *plan.Wall) bool {
	return !e.hidden[w.ID()]
}

// VisibleWalls returns the walls that are shown, in plan order
func (e *Editor) VisibleWalls() []*plan.Wall {
	walls := e.plan.Walls()
	if len(e.hidden) == 0 {
		return walls
	}
	visible := walls[:0]
	for _, w := range walls {
		if e.Visible(w) {
			visible = append(visible, w)
		}
	}
	return visible
}

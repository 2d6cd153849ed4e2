// Package export renders plans to raster images.
package export

import (
	"fmt"
	"io"
	"math"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/philipparndt/gowall/pkg/geometry"
	"github.com/philipparndt/gowall/pkg/plan"
	"github.com/philipparndt/gowall/pkg/units"
)

// Options controls the exported image
type Options struct {
	Width  int
	Height int
	// Margin is the border around the plan in pixels
	Margin float64
	// GridSpacing is the grid cell size in plan units; 0 disables the grid
	GridSpacing float64
	// FontSize is the label font size before label scaling
	FontSize   float64
	LabelScale plan.LabelScaleOptions
	Formatter  units.Formatter
}

// DefaultOptions returns 1600x1000 output with labels formatted in feet
// and inches
func DefaultOptions() Options {
	return Options{
		Width:       1600,
		Height:      1000,
		Margin:      60,
		GridSpacing: 1,
		FontSize:    12,
		LabelScale:  plan.DefaultLabelScale,
		Formatter:   units.DefaultFormatter,
	}
}

const (
	colorBackground = "#f8fafc"
	colorGrid       = "#e2e8f0"
	colorWall       = "#000000"
	colorDimension  = "#3b82f6"
	colorLabelText  = "#1e293b"
	colorLabelFill  = "#ffffff"
	colorLabelEdge  = "#e2e8f0"
)

var fontSource = sync.OnceValues(func() (*text.FontSource, error) {
	return text.NewFontSource(goregular.TTF)
})

// View maps plan coordinates to image pixels. Plan Y points up, image Y
// points down.
type View struct {
	// Zoom is the scale in pixels per plan unit
	Zoom   float64
	center geometry.Vector3
	width  float64
	height float64
}

// NewView fits the plan, including its dimension lines, into the image
func NewView(p *plan.Plan, opts Options) View {
	bbox := p.BoundingBox()
	for _, w := range p.Walls() {
		if line, ok := w.DimensionLine(); ok {
			for _, seg := range line.Segments() {
				bbox.Extend(seg[0])
				bbox.Extend(seg[1])
			}
		}
	}

	v := View{Zoom: opts.LabelScale.BaseZoom, width: float64(opts.Width), height: float64(opts.Height)}
	if v.Zoom <= 0 {
		v.Zoom = plan.DefaultLabelScale.BaseZoom
	}
	if bbox.Empty() {
		return v
	}

	v.center = bbox.Center()
	size := bbox.Size()
	availW := math.Max(v.width-2*opts.Margin, 1)
	availH := math.Max(v.height-2*opts.Margin, 1)
	switch {
	case size.X > 0 && size.Y > 0:
		v.Zoom = math.Min(availW/size.X, availH/size.Y)
	case size.X > 0:
		v.Zoom = availW / size.X
	case size.Y > 0:
		v.Zoom = availH / size.Y
	}
	return v
}

// ViewAt returns a view of the given size centered on center
func ViewAt(center geometry.Vector3, zoom float64, width, height int) View {
	return View{Zoom: zoom, center: center.Flat(), width: float64(width), height: float64(height)}
}

// Center returns the plan point shown in the middle of the image
func (v View) Center() geometry.Vector3 { return v.center }

// ToScreen converts a plan point to pixel coordinates
func (v View) ToScreen(p geometry.Vector3) (x, y float64) {
	return v.width/2 + (p.X-v.center.X)*v.Zoom, v.height/2 - (p.Y-v.center.Y)*v.Zoom
}

// ToPlan converts pixel coordinates to a plan point
func (v View) ToPlan(x, y float64) geometry.Vector3 {
	return geometry.NewVector2(v.center.X+(x-v.width/2)/v.Zoom, v.center.Y-(y-v.height/2)/v.Zoom)
}

// Render draws the plan into a new context
func Render(p *plan.Plan, opts Options) (*gg.Context, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("invalid image size %dx%d", opts.Width, opts.Height)
	}

	source, err := fontSource()
	if err != nil {
		return nil, fmt.Errorf("failed to load font: %w", err)
	}

	view := NewView(p, opts)
	dc := gg.NewContext(opts.Width, opts.Height)
	dc.ClearWithColor(gg.Hex(colorBackground))

	r := renderer{dc: dc, view: view}
	if opts.GridSpacing > 0 {
		r.grid(opts.GridSpacing)
	}
	for _, w := range p.Walls() {
		r.wall(w)
	}

	labelScale := plan.LabelScale(view.Zoom, opts.LabelScale)
	dc.SetFont(source.Face(opts.FontSize * labelScale))
	for _, w := range p.Walls() {
		line, ok := w.DimensionLine()
		if !ok {
			continue
		}
		r.dimension(line, opts.Formatter.Format(line.Length))
	}

	if r.err != nil {
		_ = dc.Close()
		return nil, r.err
	}
	return dc, nil
}

// WritePNG renders the plan and encodes it as PNG
func WritePNG(w io.Writer, p *plan.Plan, opts Options) error {
	dc, err := Render(p, opts)
	if err != nil {
		return err
	}
	defer dc.Close()
	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return nil
}

// SavePNG renders the plan into a PNG file
func SavePNG(path string, p *plan.Plan, opts Options) error {
	dc, err := Render(p, opts)
	if err != nil {
		return err
	}
	defer dc.Close()
	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	return nil
}

// renderer keeps the first drawing error
type renderer struct {
	dc   *gg.Context
	view View
	err  error
}

func (r *renderer) check(err error) {
	if err != nil && r.err == nil {
		r.err = fmt.Errorf("render failed: %w", err)
	}
}

func (r *renderer) line(a, b geometry.Vector3) {
	x1, y1 := r.view.ToScreen(a)
	x2, y2 := r.view.ToScreen(b)
	r.dc.DrawLine(x1, y1, x2, y2)
}

func (r *renderer) grid(spacing float64) {
	w, h := float64(r.dc.Width()), float64(r.dc.Height())
	if spacing*r.view.Zoom < 4 {
		return
	}
	lo := r.view.ToPlan(0, h)
	hi := r.view.ToPlan(w, 0)

	r.dc.SetHexColor(colorGrid)
	r.dc.SetLineWidth(1)
	for x := math.Floor(lo.X/spacing) * spacing; x <= hi.X; x += spacing {
		r.line(geometry.NewVector2(x, lo.Y), geometry.NewVector2(x, hi.Y))
	}
	for y := math.Floor(lo.Y/spacing) * spacing; y <= hi.Y; y += spacing {
		r.line(geometry.NewVector2(lo.X, y), geometry.NewVector2(hi.X, y))
	}
	r.check(r.dc.Stroke())
}

func (r *renderer) wall(w *plan.Wall) {
	r.dc.SetHexColor(colorWall)
	r.dc.SetLineWidth(math.Max(w.Thickness()*r.view.Zoom, 1))
	r.dc.SetLineCap(gg.LineCapButt)
	r.line(w.StartPoint(), w.EndPoint())
	r.check(r.dc.Stroke())
}

func (r *renderer) dimension(line plan.DimensionLine, label string) {
	r.dc.SetHexColor(colorDimension)
	r.dc.SetLineWidth(1.5)
	for _, seg := range line.Segments() {
		r.line(seg[0], seg[1])
	}
	r.check(r.dc.Stroke())

	x, y := r.view.ToScreen(line.DimCenter)
	tw, th := r.dc.MeasureString(label)
	padX, padY := 4.0, 2.0

	r.dc.Push()
	defer r.dc.Pop()
	r.dc.Translate(x, y)
	// plan angles are counter-clockwise with Y up
	r.dc.Rotate(-line.LabelAngle)

	r.dc.DrawRoundedRectangle(-tw/2-padX, -th/2-padY, tw+2*padX, th+2*padY, 6)
	r.dc.SetHexColor(colorLabelFill)
	r.check(r.dc.FillPreserve())
	r.dc.SetHexColor(colorLabelEdge)
	r.dc.SetLineWidth(1)
	r.check(r.dc.Stroke())

	r.dc.SetHexColor(colorLabelText)
	r.dc.DrawStringAnchored(label, 0, 0, 0.5, 0.5)
}

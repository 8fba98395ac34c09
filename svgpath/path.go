// Implements an abstract representation of
// freehand svg paths, which can then be serialized
// as path data or consumed by a painting driver.
package svgpath

import (
	"strings"
)

// Operation groups the different path commands
type Operation interface {
	// replay itself on the driver `d`
	drawTo(d Drawer)
}

type MoveTo Point

type LineTo Point

// CubicTo holds the two control points and the end point.
type CubicTo [3]Point

type Close struct{}

func (op MoveTo) drawTo(d Drawer) {
	d.Start(Point(op))
}

func (op LineTo) drawTo(d Drawer) {
	d.Line(Point(op))
}

func (op CubicTo) drawTo(d Drawer) {
	d.CubeBezier(op[0], op[1], op[2])
}

func (Close) drawTo(d Drawer) {
	d.Stop(true)
}

// Drawer knows how to do the actual draw operations,
// such as a rasterizer or a pdf writer.
type Drawer interface {
	// Start starts a new path at the given point.
	Start(a Point)

	// Line adds a line from the current point to `b`
	Line(b Point)

	// CubeBezier adds a cubic bezier curve to the path
	CubeBezier(b, c, d Point)

	// Stop closes the path to the start point if `closeLoop` is true
	Stop(closeLoop bool)
}

// Path describes a sequence of basic path operations.
// A non empty path always starts with a MoveTo.
type Path []Operation

// ToSVGPath returns the path data (the `d` attribute of an svg path),
// using `f` to write the coordinates.
func (p Path) ToSVGPath(f Format) string {
	chunks := make([]string, len(p))
	for i, op := range p {
		switch op := op.(type) {
		case MoveTo:
			chunks[i] = "M " + f.point(Point(op))
		case LineTo:
			chunks[i] = "L " + f.point(Point(op))
		case CubicTo:
			chunks[i] = "C " + f.point(op[0]) + " " + f.point(op[1]) + " " + f.point(op[2])
		case Close:
			chunks[i] = "Z"
		}
	}
	return strings.Join(chunks, " ")
}

// String returns a readable representation of a Path.
func (p Path) String() string {
	return p.ToSVGPath(DefaultFormat)
}

// DrawTo replays the path on `d`. The path is stopped
// without closing when it has no Close operation.
func (p Path) DrawTo(d Drawer) {
	closed := false
	for _, op := range p {
		op.drawTo(d)
		_, closed = op.(Close)
	}
	if len(p) != 0 && !closed {
		d.Stop(false)
	}
}

// Clear zeros the path slice
func (p *Path) Clear() {
	*p = (*p)[:0]
}

// Start starts a new curve at the given point.
func (p *Path) Start(a Point) {
	*p = append(*p, MoveTo(a))
}

// Line adds a linear segment to the current curve.
func (p *Path) Line(b Point) {
	*p = append(*p, LineTo(b))
}

// CubeBezier adds a cubic segment to the current curve.
func (p *Path) CubeBezier(b, c, d Point) {
	*p = append(*p, CubicTo{b, c, d})
}

// Stop joins the ends of the path
func (p *Path) Stop(closeLoop bool) {
	if closeLoop {
		*p = append(*p, Close{})
	}
}

package sketch

import (
	"bytes"
	"encoding/xml"
	"fmt"

	svg "github.com/ajstarks/svgo"
	"github.com/benoitkugler/svgsketch/svgpath"
)

// StyledPath binds a style to a sequence of points.
// Its serialization only depends on its current fields.
type StyledPath struct {
	closed, circul bool
	strokeWidth    float32
	stroke, fill   string
	points         []svgpath.Point
}

// NewStyledPath returns an empty path, using the style in `opts`.
func NewStyledPath(opts Options) *StyledPath {
	return &StyledPath{
		closed:      opts.Close,
		circul:      opts.Circul,
		strokeWidth: opts.StrokeWidth,
		stroke:      opts.Stroke,
		fill:        opts.Fill,
	}
}

// Add appends a point to the path.
func (p *StyledPath) Add(pt svgpath.Point) { p.points = append(p.points, pt) }

// Clear removes all the points, keeping the style.
func (p *StyledPath) Clear() { p.points = p.points[:0] }

// Copy returns a deep copy of the path: modifying one never
// affects the other.
func (p StyledPath) Copy() StyledPath {
	out := p
	out.points = append([]svgpath.Point(nil), p.points...)
	return out
}

// Scale multiplies every point and the stroke width by r.
func (p *StyledPath) Scale(r float32) {
	for i, pt := range p.points {
		p.points[i] = pt.Scale(r)
	}
	p.strokeWidth *= r
}

// Len returns the number of points.
func (p StyledPath) Len() int { return len(p.points) }

// Points returns a copy of the points.
func (p StyledPath) Points() []svgpath.Point {
	return append([]svgpath.Point(nil), p.points...)
}

// Point returns the point at index `i`.
func (p StyledPath) Point(i int) (svgpath.Point, error) {
	if i < 0 || i >= len(p.points) {
		return svgpath.Point{}, fmt.Errorf("point %d of %d: %w", i, len(p.points), ErrOutOfRange)
	}
	return p.points[i], nil
}

// SetPoint replaces the point at index `i`.
func (p *StyledPath) SetPoint(i int, pt svgpath.Point) error {
	if i < 0 || i >= len(p.points) {
		return fmt.Errorf("point %d of %d: %w", i, len(p.points), ErrOutOfRange)
	}
	p.points[i] = pt
	return nil
}

func (p StyledPath) Closed() bool          { return p.closed }
func (p *StyledPath) SetClose(closed bool) { p.closed = closed }
func (p *StyledPath) ToggleClose()         { p.closed = !p.closed }

func (p StyledPath) Circul() bool           { return p.circul }
func (p *StyledPath) SetCircul(circul bool) { p.circul = circul }
func (p *StyledPath) ToggleCircul()         { p.circul = !p.circul }

func (p StyledPath) Fill() string              { return p.fill }
func (p *StyledPath) SetFill(fill string)      { p.fill = fill }
func (p StyledPath) Stroke() string            { return p.stroke }
func (p *StyledPath) SetStroke(stroke string)  { p.stroke = stroke }
func (p StyledPath) StrokeWidth() float32      { return p.strokeWidth }
func (p *StyledPath) SetStrokeWidth(w float32) { p.strokeWidth = w }

// Path returns the geometry of the path.
func (p StyledPath) Path() svgpath.Path {
	return svgpath.Build(p.points, p.closed, p.circul)
}

// Data returns the path data, written with `f`.
func (p StyledPath) Data(f svgpath.Format) string {
	return p.Path().ToSVGPath(f)
}

// Join returns the join used between segments:
// round for smooth paths, miter otherwise.
func (p StyledPath) Join() JoinMode {
	if p.circul {
		return Round
	}
	return Miter
}

// Cap returns the cap used at the ends of the path.
func (p StyledPath) Cap() CapMode {
	if p.circul {
		return RoundCap
	}
	return SquareCap
}

// StrokeOptions returns the stroking parameters of the path.
// Negative widths are mapped to 0.
func (p StyledPath) StrokeOptions() StrokeOptions {
	w := p.strokeWidth
	if w < 0 {
		w = 0
	}
	return StrokeOptions{Width: w, Join: p.Join(), Cap: p.Cap()}
}

// attr returns `name="value"`, with value escaped
func attr(name, value string) string {
	var buf bytes.Buffer
	buf.WriteString(name)
	buf.WriteString(`="`)
	xml.EscapeText(&buf, []byte(value))
	buf.WriteByte('"')
	return buf.String()
}

// attributes returns the style attributes, in the order they are written
func (p StyledPath) attributes() []string {
	fill := p.fill
	if fill == "" {
		fill = "none"
	}
	attrs := []string{attr("stroke", p.stroke)}
	if p.strokeWidth >= 0 {
		attrs = append(attrs, attr("stroke-width", svgpath.DefaultFormat.Number(p.strokeWidth)))
	}
	return append(attrs,
		attr("fill", fill),
		attr("stroke-linejoin", p.Join().String()),
		attr("stroke-linecap", p.Cap().String()),
	)
}

func (p StyledPath) writeTo(canvas *svg.SVG, f svgpath.Format) {
	canvas.Path(p.Data(f), p.attributes()...)
}

// Serialize returns the svg path element.
func (p StyledPath) Serialize() string {
	var buf bytes.Buffer
	p.writeTo(svg.New(&buf), svgpath.DefaultFormat)
	return buf.String()
}

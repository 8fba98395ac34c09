// Implements a PDF backend to render drawings,
// by wrapping github.com/jung-kurt/gofpdf.
package svgpdf

import (
	"image/color"
	"io"

	"github.com/benoitkugler/svgsketch/sketch"
	"github.com/benoitkugler/svgsketch/svgpath"
	"github.com/jung-kurt/gofpdf"
)

// assert interface conformance
var (
	_ sketch.Driver  = Renderer{}
	_ sketch.Drawer  = filler{}
	_ sketch.Stroker = stroker{}
)

type Renderer struct {
	pdf *gofpdf.Fpdf
}

// implements the common path commands,
// shared by the filler and the stroker
type pather struct {
	pdf *gofpdf.Fpdf
}

// implements the filling operation
type filler struct {
	pather
}

// implements the stroking operation
type stroker struct {
	pather
}

// NewRenderer return a renderer which will
// write to the current page of `pdf`.
func NewRenderer(pdf *gofpdf.Fpdf) Renderer {
	return Renderer{pdf: pdf}
}

// SetupDrawers implements sketch.Driver.
func (rd Renderer) SetupDrawers(willFill, willStroke bool) (f sketch.Drawer, s sketch.Stroker) {
	if willFill {
		f = filler{pather{rd.pdf}}
	}
	if willStroke {
		s = stroker{pather{rd.pdf}}
	}
	return f, s
}

// PageSize returns the page size used for the drawing, in points:
// its dimensions, or when one of them is not positive, the
// bottom right corner of its paths.
func PageSize(d *sketch.Drawing) (w, h float64) {
	w, h = float64(d.Width()), float64(d.Height())
	if w > 0 && h > 0 {
		return w, h
	}
	w, h = 1, 1
	if box, ok := d.Bounds(); ok {
		if box.Max.X > 1 {
			w = float64(box.Max.X)
		}
		if box.Max.Y > 1 {
			h = float64(box.Max.Y)
		}
	}
	return w, h
}

// RenderDrawing writes a one page PDF document, sized
// after the drawing (see PageSize), to `w`.
func RenderDrawing(d *sketch.Drawing, w io.Writer) error {
	width, height := PageSize(d)
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: width, Ht: height},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	d.Draw(NewRenderer(pdf))

	sketch.Logger().Debug("svgpdf: rendering", "width", width, "height", height, "paths", d.Len())
	return pdf.Output(w)
}

func (p pather) Clear() {}

func (p pather) Start(a svgpath.Point) {
	p.pdf.MoveTo(float64(a.X), float64(a.Y))
}

func (p pather) Line(b svgpath.Point) {
	p.pdf.LineTo(float64(b.X), float64(b.Y))
}

func (p pather) CubeBezier(b, c, d svgpath.Point) {
	p.pdf.CurveBezierCubicTo(float64(b.X), float64(b.Y), float64(c.X), float64(c.Y), float64(d.X), float64(d.Y))
}

func (p pather) Stop(closeLoop bool) {
	if closeLoop {
		p.pdf.ClosePath()
	}
}

// returns the non premultiplied components and the opacity
func toRGBA(c color.Color) (r, g, b int, alpha float64) {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return int(n.R), int(n.G), int(n.B), float64(n.A) / 255
}

func (f filler) SetColor(c color.Color) {
	r, g, b, alpha := toRGBA(c)
	f.pdf.SetFillColor(r, g, b)
	f.pdf.SetAlpha(alpha, "Normal")
}

// non-zero winding, as SVG does by default
func (f filler) Draw() { f.pdf.DrawPath("F") }

var (
	joinToStyle = [...]string{
		sketch.Miter: "miter",
		sketch.Round: "round",
		sketch.Bevel: "bevel",
	}
	capToStyle = [...]string{
		sketch.SquareCap: "square",
		sketch.RoundCap:  "round",
		sketch.ButtCap:   "butt",
	}
)

func (s stroker) SetStrokeOptions(options sketch.StrokeOptions) {
	s.pdf.SetLineWidth(float64(options.Width))
	s.pdf.SetLineJoinStyle(joinToStyle[options.Join])
	s.pdf.SetLineCapStyle(capToStyle[options.Cap])
}

func (s stroker) SetColor(c color.Color) {
	r, g, b, alpha := toRGBA(c)
	s.pdf.SetDrawColor(r, g, b)
	s.pdf.SetAlpha(alpha, "Normal")
}

func (s stroker) Draw() { s.pdf.DrawPath("D") }

// Implements a raster backend to render drawings,
// by wrapping rasterx.
package svgraster

import (
	"image"
	"image/color"
	"io"
	"math"

	"github.com/benoitkugler/svgsketch/sketch"
	"github.com/benoitkugler/svgsketch/svgpath"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/draw"
	"golang.org/x/image/math/fixed"
)

var _ sketch.Driver = (*Renderer)(nil) // assert interface conformance

type Renderer struct {
	dasher *rasterx.Dasher // to avoid shared state
	filler *rasterx.Filler // we use separated instance
}

// NewRenderer returns a renderer painting with `scanner`,
// using the non-zero winding rule, as SVG does by default.
func NewRenderer(width, height int, scanner rasterx.Scanner) *Renderer {
	rd := &Renderer{dasher: rasterx.NewDasher(width, height, scanner), filler: rasterx.NewFiller(width, height, scanner)}
	rd.dasher.SetWinding(true)
	rd.filler.SetWinding(true)
	return rd
}

// SetupDrawers implements sketch.Driver.
func (rd *Renderer) SetupDrawers(willFill, willStroke bool) (f sketch.Drawer, s sketch.Stroker) {
	if willFill {
		f = painter{rd.filler}
	}
	if willStroke {
		s = stroker{painter: painter{rd.dasher}, dasher: rd.dasher}
	}
	return f, s
}

// RasterDrawing paints the drawing into a new image, sized after
// the drawing dimensions (rounded up).
// If `background` is not nil, the image is first filled with it.
func RasterDrawing(d *sketch.Drawing, background color.Color) *image.RGBA {
	w, h := int(math.Ceil(float64(d.Width()))), int(math.Ceil(float64(d.Height())))
	if w <= 0 || h <= 0 {
		return image.NewRGBA(image.Rectangle{})
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	if background != nil {
		draw.Draw(img, img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)
	}

	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	d.Draw(NewRenderer(w, h, scanner))
	return img
}

// RasterSVGToImage reads an svg document and rasterizes it.
func RasterSVGToImage(stream io.Reader, background color.Color) (*image.RGBA, error) {
	d, err := sketch.ReadDrawing(stream, sketch.IgnoreErrorMode)
	if err != nil {
		return nil, err
	}
	return RasterDrawing(d, background), nil
}

// the subset of rasterx.Filler and rasterx.Dasher we need
type rasterPainter interface {
	Clear()
	Start(a fixed.Point26_6)
	Line(b fixed.Point26_6)
	CubeBezier(b, c, d fixed.Point26_6)
	Stop(closeLoop bool)
	SetColor(color interface{})
	Draw()
}

func toFixed(p svgpath.Point) fixed.Point26_6 {
	return fixed.Point26_6{X: fixed.Int26_6(p.X * 64), Y: fixed.Int26_6(p.Y * 64)}
}

// painter implements sketch.Drawer
type painter struct {
	r rasterPainter
}

func (p painter) Clear()                 { p.r.Clear() }
func (p painter) Start(a svgpath.Point)  { p.r.Start(toFixed(a)) }
func (p painter) Line(b svgpath.Point)   { p.r.Line(toFixed(b)) }
func (p painter) Stop(closeLoop bool)    { p.r.Stop(closeLoop) }
func (p painter) SetColor(c color.Color) { p.r.SetColor(c) }
func (p painter) Draw()                  { p.r.Draw() }

func (p painter) CubeBezier(b, c, d svgpath.Point) {
	p.r.CubeBezier(toFixed(b), toFixed(c), toFixed(d))
}

// SVG default
const miterLimit = 4 * 64

var (
	joinToJoin = [...]rasterx.JoinMode{
		sketch.Miter: rasterx.Miter,
		sketch.Round: rasterx.Round,
		sketch.Bevel: rasterx.Bevel,
	}

	capToFunc = [...]rasterx.CapFunc{
		sketch.SquareCap: rasterx.SquareCap,
		sketch.RoundCap:  rasterx.RoundCap,
		sketch.ButtCap:   rasterx.ButtCap,
	}
)

type stroker struct {
	painter
	dasher *rasterx.Dasher
}

func (s stroker) SetStrokeOptions(options sketch.StrokeOptions) {
	gap := rasterx.FlatGap
	if options.Join == sketch.Round {
		gap = rasterx.RoundGap
	}
	capF := capToFunc[options.Cap]
	s.dasher.SetStroke(
		fixed.Int26_6(options.Width*64), miterLimit, capF, capF,
		gap, joinToJoin[options.Join], nil, 0,
	)
}

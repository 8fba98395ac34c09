package sketch

import (
	"image/color"

	"github.com/benoitkugler/svgsketch/svgpath"
)

// Given a drawing, implements how to paint it with a backend,
// such as a rasterizer to output .png images or a pdf writer.

// Drawer knows how to do the actual draw operations
// but doesn't need any SVG knowledge.
type Drawer interface {
	svgpath.Drawer

	// Clear must reset the internal state (used before starting a new path painting)
	Clear()

	// SetColor set the color for the current path
	SetColor(c color.Color)

	// Draw fills or strokes the accumulated path using the current settings
	Draw()
}

type Stroker interface {
	Drawer

	// Parametrize the stroking style for the current path
	SetStrokeOptions(options StrokeOptions)
}

type Driver interface {
	// SetupDrawers returns the backend painters, and
	// will be called at the begining of every path.
	// If the `willXXX` boolean is false, the returned drawer should be nil
	// to avoid useless operations.
	SetupDrawers(willFill, willStroke bool) (filler Drawer, stroker Stroker)
}

// Draw paints every path on the driver `d`, in order.
// A path is filled when its fill is a color, then stroked
// when its stroke is a color and its width is positive.
func (dr *Drawing) Draw(d Driver) {
	for _, p := range dr.paths {
		p.draw(d)
	}
}

func (p StyledPath) draw(d Driver) {
	path := p.Path()
	if len(path) == 0 {
		return
	}
	fillColor, willFill := ParseColor(p.fill)
	strokeColor, willStroke := ParseColor(p.stroke)
	options := p.StrokeOptions()
	willStroke = willStroke && options.Width > 0

	filler, stroker := d.SetupDrawers(willFill, willStroke)
	if filler != nil {
		filler.Clear()
		path.DrawTo(filler)
		filler.SetColor(fillColor)
		filler.Draw()
	}
	if stroker != nil {
		stroker.Clear()
		stroker.SetStrokeOptions(options)
		path.DrawTo(stroker)
		stroker.SetColor(strokeColor)
		stroker.Draw()
	}
}

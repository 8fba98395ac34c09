// Implements the drawing model: styled paths, collected
// in a drawing which serializes to an svg document
// and can be painted by drivers (see svgraster and svgpdf).
package sketch

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"
	"github.com/benoitkugler/svgsketch/svgpath"
)

var (
	// ErrOutOfRange is returned when accessing a path or a point
	// with an invalid index.
	ErrOutOfRange = errors.New("index out of range")

	// ErrNoDocument is returned when reading an input without svg element.
	ErrNoDocument = errors.New("no svg document")

	// ErrUnsupportedElement is returned in StrictErrorMode when reading
	// an element which is not a path.
	ErrUnsupportedElement = errors.New("unsupported svg element")
)

// Drawing is an ordered collection of paths, rendered
// in a canvas of the given size.
// Paths are stored by value: the Drawing never shares
// its points with the caller.
type Drawing struct {
	width, height float32
	paths         []StyledPath
}

// NewDrawing returns an empty drawing.
func NewDrawing(width, height float32) *Drawing {
	return &Drawing{width: width, height: height}
}

func (d *Drawing) Width() float32  { return d.width }
func (d *Drawing) Height() float32 { return d.height }

// Len returns the number of paths.
func (d *Drawing) Len() int { return len(d.paths) }

// Add appends a copy of `path`.
func (d *Drawing) Add(path StyledPath) {
	d.paths = append(d.paths, path.Copy())
}

// Undo removes and returns the last path.
// It returns false if the drawing is empty.
func (d *Drawing) Undo() (StyledPath, bool) {
	if len(d.paths) == 0 {
		return StyledPath{}, false
	}
	last := d.paths[len(d.paths)-1]
	d.paths[len(d.paths)-1] = StyledPath{} // release the points
	d.paths = d.paths[:len(d.paths)-1]
	return last, true
}

func (d *Drawing) checkIndex(i int) error {
	if i < 0 || i >= len(d.paths) {
		return fmt.Errorf("path %d of %d: %w", i, len(d.paths), ErrOutOfRange)
	}
	return nil
}

// Get returns a copy of the path at index `i`.
func (d *Drawing) Get(i int) (StyledPath, error) {
	if err := d.checkIndex(i); err != nil {
		return StyledPath{}, err
	}
	return d.paths[i].Copy(), nil
}

// Update replaces the path at index `i` by a copy of `path`.
func (d *Drawing) Update(i int, path StyledPath) error {
	if err := d.checkIndex(i); err != nil {
		return err
	}
	d.paths[i] = path.Copy()
	return nil
}

// UpdateLast replaces the last path, failing on an empty drawing.
func (d *Drawing) UpdateLast(path StyledPath) error {
	return d.Update(len(d.paths)-1, path)
}

// Paths returns a copy of every path.
func (d *Drawing) Paths() []StyledPath {
	out := make([]StyledPath, len(d.paths))
	for i, p := range d.paths {
		out[i] = p.Copy()
	}
	return out
}

// Clear removes all the paths.
func (d *Drawing) Clear() {
	d.paths = nil
}

// ChangeSize resizes the canvas, scaling every path by
// the width ratio `width / d.Width()`.
// The height ratio is not used: the paths keep their aspect ratio.
// When the current width is 0, the paths are left unchanged.
func (d *Drawing) ChangeSize(width, height float32) {
	if d.width != 0 {
		r := width / d.width
		for i := range d.paths {
			d.paths[i].Scale(r)
		}
	}
	d.width, d.height = width, height
}

// Bounds returns the union of the path bounds, or false
// if no path has points.
func (d *Drawing) Bounds() (svgpath.Rect, bool) {
	var (
		out svgpath.Rect
		ok  bool
	)
	for _, p := range d.paths {
		box, has := p.Path().Bounds()
		if !has {
			continue
		}
		if ok {
			out = out.Union(box)
		} else {
			out, ok = box, true
		}
	}
	return out, ok
}

// WriteSVG writes the svg document, using `f` for the path coordinates.
func (d *Drawing) WriteSVG(w io.Writer, f svgpath.Format) {
	canvas := svg.New(w)
	canvas.Startraw(
		attr("width", svgpath.DefaultFormat.Number(d.width)),
		attr("height", svgpath.DefaultFormat.Number(d.height)),
	)
	for _, p := range d.paths {
		p.writeTo(canvas, f)
	}
	canvas.End()
}

// Serialize returns the svg document holding every path.
// It does not modify the drawing.
func (d *Drawing) Serialize() string {
	var buf bytes.Buffer
	d.WriteSVG(&buf, svgpath.DefaultFormat)
	return buf.String()
}

// String implements fmt.Stringer, returning Serialize().
func (d *Drawing) String() string { return d.Serialize() }

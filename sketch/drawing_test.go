package sketch

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/benoitkugler/svgsketch/svgpath"
)

func TestDrawingUndo(t *testing.T) {
	d := NewDrawing(500, 500)
	if _, ok := d.Undo(); ok {
		t.Fatal("undo on an empty drawing must return nothing")
	}

	d.Add(*newTestPath(DefaultOptions(), svgpath.Pt(0, 0)))
	before := d.Len()
	p := newTestPath(Options{Close: true, Stroke: "red", StrokeWidth: 2}, svgpath.Pt(1, 2), svgpath.Pt(3, 4))
	d.Add(*p)
	got, ok := d.Undo()
	if !ok {
		t.Fatal("expected a path")
	}
	if d.Len() != before {
		t.Errorf("expected %d paths, got %d", before, d.Len())
	}
	if !reflect.DeepEqual(got, *p) {
		t.Errorf("expected %v, got %v", *p, got)
	}
}

func TestDrawingAddCopies(t *testing.T) {
	d := NewDrawing(100, 100)
	p := newTestPath(DefaultOptions(), svgpath.Pt(1, 1))
	d.Add(*p)
	p.Add(svgpath.Pt(2, 2))
	p.SetStroke("red")

	stored, err := d.Get(0)
	if err != nil {
		t.Fatal(err)
	}
	if stored.Len() != 1 || stored.Stroke() != "#000" {
		t.Errorf("the drawing must not share the added path: %v", stored)
	}

	stored.Add(svgpath.Pt(5, 5))
	if again, _ := d.Get(0); again.Len() != 1 {
		t.Errorf("Get must return a copy")
	}
}

func TestDrawingUpdate(t *testing.T) {
	d := NewDrawing(100, 100)
	p := newTestPath(DefaultOptions(), svgpath.Pt(1, 1))
	if err := d.UpdateLast(*p); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("expected ErrOutOfRange on empty drawing, got %v", err)
	}
	if _, err := d.Get(0); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("expected ErrOutOfRange, got %v", err)
	}

	d.Add(*p)
	d.Add(*p)
	p.Add(svgpath.Pt(2, 2))
	if err := d.Update(0, *p); err != nil {
		t.Fatal(err)
	}
	if err := d.Update(2, *p); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("expected ErrOutOfRange, got %v", err)
	}
	if err := d.Update(-1, *p); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("expected ErrOutOfRange, got %v", err)
	}
	first, _ := d.Get(0)
	second, _ := d.Get(1)
	if first.Len() != 2 || second.Len() != 1 {
		t.Errorf("Update must only change the given index: %d %d", first.Len(), second.Len())
	}

	p.Add(svgpath.Pt(3, 3))
	if err := d.UpdateLast(*p); err != nil {
		t.Fatal(err)
	}
	if last, _ := d.Get(1); last.Len() != 3 {
		t.Errorf("expected 3 points, got %d", last.Len())
	}
}

func TestDrawingClear(t *testing.T) {
	d := NewDrawing(100, 100)
	d.Add(*newTestPath(DefaultOptions(), svgpath.Pt(1, 1)))
	d.Clear()
	if d.Len() != 0 || len(d.Paths()) != 0 {
		t.Errorf("expected an empty drawing")
	}
	if strings.Contains(d.Serialize(), "<path") {
		t.Errorf("expected no path element")
	}
}

func TestDrawingChangeSize(t *testing.T) {
	d := NewDrawing(200, 100)
	d.Add(*newTestPath(Options{StrokeWidth: 1}, svgpath.Pt(10, 20), svgpath.Pt(-4, 0.5)))
	d.Add(*newTestPath(Options{StrokeWidth: 2}, svgpath.Pt(100, 50)))

	d.ChangeSize(300, 150)
	if d.Width() != 300 || d.Height() != 150 {
		t.Errorf("unexpected size %v x %v", d.Width(), d.Height())
	}
	paths := d.Paths()
	if got := paths[0].Points(); got[0] != svgpath.Pt(15, 30) || got[1] != svgpath.Pt(-6, 0.75) {
		t.Errorf("unexpected points %v", got)
	}
	if got := paths[1].Points(); got[0] != svgpath.Pt(150, 75) {
		t.Errorf("unexpected points %v", got)
	}
	if paths[1].StrokeWidth() != 3 {
		t.Errorf("expected width 3, got %v", paths[1].StrokeWidth())
	}
}

// Only the width ratio is applied: a change of height alone
// updates the canvas but leaves the points untouched.
func TestDrawingChangeSizeHeightOnly(t *testing.T) {
	d := NewDrawing(200, 100)
	d.Add(*newTestPath(Options{StrokeWidth: 1}, svgpath.Pt(10, 20)))
	d.ChangeSize(200, 400)
	if d.Height() != 400 {
		t.Errorf("expected height 400, got %v", d.Height())
	}
	if p, _ := d.Get(0); p.Points()[0] != svgpath.Pt(10, 20) {
		t.Errorf("points must not follow the height: %v", p.Points())
	}
}

func TestDrawingChangeSizeFromZero(t *testing.T) {
	d := NewDrawing(0, 0)
	d.Add(*newTestPath(Options{StrokeWidth: 1}, svgpath.Pt(10, 20)))
	d.ChangeSize(640, 480)
	if p, _ := d.Get(0); p.Points()[0] != svgpath.Pt(10, 20) {
		t.Errorf("points must be kept when the width was 0: %v", p.Points())
	}
	if d.Width() != 640 || d.Height() != 480 {
		t.Errorf("unexpected size %v x %v", d.Width(), d.Height())
	}
}

func TestDrawingSerialize(t *testing.T) {
	d := NewDrawing(500, 250.5)
	d.Add(*newTestPath(Options{Close: true, Stroke: "black", StrokeWidth: 1, Fill: "none"},
		svgpath.Pt(0, 0), svgpath.Pt(1, 1), svgpath.Pt(-1, -1)))
	d.Add(*newTestPath(Options{Stroke: "red", StrokeWidth: 2}, svgpath.Pt(5, 5)))

	s := d.Serialize()
	for _, want := range []string{`<svg`, `width="500"`, `height="250.5"`, `xmlns="http://www.w3.org/2000/svg"`, `</svg>`} {
		if !strings.Contains(s, want) {
			t.Errorf("expected %s in %s", want, s)
		}
	}
	first := strings.Index(s, `d="M 0 0 L 1 1 L -1 -1 Z"`)
	second := strings.Index(s, `d="M 5 5"`)
	if first < 0 || second < first {
		t.Errorf("paths must be written in order: %s", s)
	}
	if s != d.String() || d.Len() != 2 {
		t.Errorf("serialization must not modify the drawing")
	}
}

func TestDrawingBounds(t *testing.T) {
	d := NewDrawing(100, 100)
	if _, ok := d.Bounds(); ok {
		t.Error("empty drawing has no bounds")
	}
	d.Add(*newTestPath(DefaultOptions(), svgpath.Pt(10, 20), svgpath.Pt(30, 5)))
	d.Add(*NewStyledPath(DefaultOptions()))
	d.Add(*newTestPath(DefaultOptions(), svgpath.Pt(-5, 40)))
	box, ok := d.Bounds()
	if !ok || box != (svgpath.Rect{Min: svgpath.Pt(-5, 5), Max: svgpath.Pt(30, 40)}) {
		t.Errorf("unexpected bounds %v", box)
	}
}

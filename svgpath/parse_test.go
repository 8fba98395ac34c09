package svgpath

import (
	"errors"
	"reflect"
	"testing"
)

func TestParsePathDataRoundTrip(t *testing.T) {
	pts := []Point{Pt(0, 0), Pt(12.5, 3.75), Pt(-7, 0.1), Pt(8, 8), Pt(1e-3, 250)}
	for _, closed := range []bool{false, true} {
		for _, circul := range []bool{false, true} {
			d := CreatePath(pts, closed, circul)
			got, gotClosed, err := ParsePathData(d)
			if err != nil {
				t.Fatal(err)
			}
			if !reflect.DeepEqual(got, pts) || gotClosed != closed {
				t.Errorf("round trip of %q: got %v %v", d, got, gotClosed)
			}
		}
	}
}

func TestParsePathDataSyntax(t *testing.T) {
	for _, test := range []struct {
		d      string
		want   []Point
		closed bool
	}{
		{"", nil, false},
		{"M 1 2", []Point{Pt(1, 2)}, false},
		{"M1,2L3,4Z", []Point{Pt(1, 2), Pt(3, 4)}, true},
		{"M 0,0 1,1 2,2", []Point{Pt(0, 0), Pt(1, 1), Pt(2, 2)}, false},
		{"M 0 0 L 1 1 2 2", []Point{Pt(0, 0), Pt(1, 1), Pt(2, 2)}, false},
		{"M-1-2L1e2-3.5", []Point{Pt(-1, -2), Pt(100, -3.5)}, false},
		{"M 0 0 C 1 1 2 2 3 3 4 4 5 5 6 6", []Point{Pt(0, 0), Pt(3, 3), Pt(6, 6)}, false},
		{"  M 0 0 Z  ", []Point{Pt(0, 0)}, true},
	} {
		got, closed, err := ParsePathData(test.d)
		if err != nil {
			t.Fatalf("%q: %s", test.d, err)
		}
		if !reflect.DeepEqual(got, test.want) || closed != test.closed {
			t.Errorf("%q: expected %v %v, got %v %v", test.d, test.want, test.closed, got, closed)
		}
	}
}

func TestParsePathDataInvalid(t *testing.T) {
	for _, d := range []string{
		"L 1 1",
		"1 1",
		"M 1",
		"M 0 0 Q 1 1 2 2",
		"M 0 0 m 1 1",
		"M 0 0 Z L 1 1",
		"M 0 0 M 1 1",
		"M 0 0 C 1 1 2 2",
		"M a b",
	} {
		if _, _, err := ParsePathData(d); !errors.Is(err, ErrPathData) {
			t.Errorf("%q: expected ErrPathData, got %v", d, err)
		}
	}
}

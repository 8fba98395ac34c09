package svgpath

import "math"

// compute the exact bounding box of a path, using
// the critical points of its bezier curves

// Rect is an axis aligned rectangle.
type Rect struct {
	Min, Max Point
}

// Union returns the smallest rectangle containing r and s.
func (r Rect) Union(s Rect) Rect {
	return Rect{
		Min: Point{X: min32(r.Min.X, s.Min.X), Y: min32(r.Min.Y, s.Min.Y)},
		Max: Point{X: max32(r.Max.X, s.Max.X), Y: max32(r.Max.Y, s.Max.Y)},
	}
}

// Dx returns the width of r.
func (r Rect) Dx() float32 { return r.Max.X - r.Min.X }

// Dy returns the height of r.
func (r Rect) Dy() float32 { return r.Max.Y - r.Min.Y }

func min32(a, b float32) float32 { return float32(math.Min(float64(a), float64(b))) }
func max32(a, b float32) float32 { return float32(math.Max(float64(a), float64(b))) }

type bezier interface {
	// compute the t zeroing the derivative
	criticalPoints() (tX, tY []float64)
	// compute the point a time t
	evaluateCurve(t float64) (x, y float64)
}

type line [2]Point

func (l line) criticalPoints() (tX, tY []float64) { return nil, nil }

func (l line) evaluateCurve(t float64) (x, y float64) {
	return bezierLine(float64(l[0].X), float64(l[1].X), t), bezierLine(float64(l[0].Y), float64(l[1].Y), t)
}

func bezierLine(p0, p1, t float64) float64 {
	return (p1-p0)*t + p0
}

type cubicBezier [4]Point

func (cu cubicBezier) criticalPoints() (tX, tY []float64) {
	aX, bX, cX := cubicDerivative(float64(cu[0].X), float64(cu[1].X), float64(cu[2].X), float64(cu[3].X))
	aY, bY, cY := cubicDerivative(float64(cu[0].Y), float64(cu[1].Y), float64(cu[2].Y), float64(cu[3].Y))
	return quadraticRoots(aX, bX, cX), quadraticRoots(aY, bY, cY)
}

func (cu cubicBezier) evaluateCurve(t float64) (x, y float64) {
	x = bezierSpline(float64(cu[0].X), float64(cu[1].X), float64(cu[2].X), float64(cu[3].X), t)
	y = bezierSpline(float64(cu[0].Y), float64(cu[1].Y), float64(cu[2].Y), float64(cu[3].Y), t)
	return x, y
}

// cubic polinomial
// x = At^3 + Bt^2 + Ct + D
// where A,B,C,D:
// A = p3 -3 * p2 + 3 * p1 - p0
// B = 3 * p2 - 6 * p1 +3 * p0
// C = 3 * p1 - 3 * p0
// D = p0
func bezierSpline(p0, p1, p2, p3, t float64) float64 {
	return (p3-3*p2+3*p1-p0)*t*t*t +
		(3*p2-6*p1+3*p0)*t*t +
		(3*p1-3*p0)*t +
		(p0)
}

// derivative of the cubic polinomial, taken as at^2 + bt + c
func cubicDerivative(p0, p1, p2, p3 float64) (a, b, c float64) {
	return 3*p3 - 9*p2 + 9*p1 - 3*p0, 6*p2 - 12*p1 + 6*p0, 3*p1 - 3*p0
}

func quadraticRoots(a, b, c float64) []float64 {
	if a == 0 {
		if b == 0 {
			return nil
		}
		// bt + c = 0
		return []float64{-c / b}
	}
	d := b*b - 4*a*c
	if d < 0 {
		return nil
	}
	sq := math.Sqrt(d)
	return []float64{(-b + sq) / (2 * a), (-b - sq) / (2 * a)}
}

func computeBoundingBox(curve bezier) Rect {
	resX, resY := curve.criticalPoints()

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	// begin and end points are always included
	for _, t := range append(append(resX, 0, 1), resY...) {
		if !(0 <= t && t <= 1) {
			continue
		}
		x, y := curve.evaluateCurve(t)
		minX, minY = math.Min(x, minX), math.Min(y, minY)
		maxX, maxY = math.Max(x, maxX), math.Max(y, maxY)
	}
	return Rect{
		Min: Point{X: float32(minX), Y: float32(minY)},
		Max: Point{X: float32(maxX), Y: float32(maxY)},
	}
}

// Bounds returns the bounding box of the path, taking
// the bezier curves into account.
// It returns false for an empty path.
func (p Path) Bounds() (Rect, bool) {
	if len(p) == 0 {
		return Rect{}, false
	}
	var (
		out     Rect
		current Point
	)
	for i, op := range p {
		var box Rect
		switch op := op.(type) {
		case MoveTo:
			current = Point(op)
			box = Rect{Min: current, Max: current}
		case LineTo:
			box = computeBoundingBox(line{current, Point(op)})
			current = Point(op)
		case CubicTo:
			box = computeBoundingBox(cubicBezier{current, op[0], op[1], op[2]})
			current = op[2]
		case Close:
			continue
		}
		if i == 0 {
			out = box
		} else {
			out = out.Union(box)
		}
	}
	return out, true
}

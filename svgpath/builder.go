package svgpath

// SmoothRatio is the fraction of the neighbors chord used
// to place the bezier control points in circular mode.
const SmoothRatio float32 = 0.2

// Build converts the ordered `points` into a path.
//
// The first point is a MoveTo. When `circul` is false, the following points
// are joined by lines. When it is true, every point having two neighbors on
// each side is reached with a cubic bezier whose control points follow the
// chord between its neighbors (a Catmull-Rom like tangent estimate);
// the two points at each end fall back to lines.
// A closed path ends with a single Close operation.
//
// Build never fails: an empty input gives an empty path
// and non finite coordinates are propagated.
func Build(points []Point, closed, circul bool) Path {
	if len(points) == 0 {
		return nil
	}
	n := len(points)
	path := make(Path, 0, n+1)
	path.Start(points[0])
	for i := 1; i < n; i++ {
		if !circul || i < 2 || i > n-2 {
			path.Line(points[i])
			continue
		}
		cl := Control(points[i-1], NewVector(points[i-2], points[i]).Scale(SmoothRatio))
		cr := Control(points[i], NewVector(points[i+1], points[i-1]).Scale(SmoothRatio))
		path.CubeBezier(cl, cr, points[i])
	}
	path.Stop(closed)
	return path
}

// CreatePath returns the path data of Build(points, closed, circul),
// written with DefaultFormat.
func CreatePath(points []Point, closed, circul bool) string {
	return Build(points, closed, circul).ToSVGPath(DefaultFormat)
}

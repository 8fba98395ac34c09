package svgpath

import (
	"math"
	"strconv"
)

// Format controls how coordinates are written in path data.
type Format struct {
	// Precision is the number of decimals kept.
	// A negative value writes the shortest representation
	// of the float32 value, without rounding.
	Precision int
}

// DefaultFormat writes coordinates without rounding.
var DefaultFormat = Format{Precision: -1}

// Number returns the textual form of `v`.
// NaN and infinite values are written as is.
func (f Format) Number(v float32) string {
	if f.Precision >= 0 {
		pow := math.Pow10(f.Precision)
		v = float32(math.Round(float64(v)*pow) / pow)
	}
	if v == 0 {
		v = 0 // avoid "-0"
	}
	return strconv.FormatFloat(float64(v), 'f', -1, 32)
}

func (f Format) point(p Point) string {
	return f.Number(p.X) + " " + f.Number(p.Y)
}

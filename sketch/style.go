package sketch

import (
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// JoinMode specifies how segments join.
type JoinMode uint8

const (
	Miter JoinMode = iota
	Round
	Bevel
)

func (j JoinMode) String() string {
	switch j {
	case Miter:
		return "miter"
	case Round:
		return "round"
	case Bevel:
		return "bevel"
	default:
		return "<unknown JoinMode>"
	}
}

// CapMode defines how to draw caps on the ends of lines
type CapMode uint8

const (
	SquareCap CapMode = iota
	RoundCap
	ButtCap
)

func (c CapMode) String() string {
	switch c {
	case SquareCap:
		return "square"
	case RoundCap:
		return "round"
	case ButtCap:
		return "butt"
	default:
		return "<unknown CapMode>"
	}
}

// StrokeOptions parametrize the stroking of a path.
type StrokeOptions struct {
	Width float32
	Join  JoinMode
	Cap   CapMode
}

// ParseColor resolves a CSS color as used in the fill and
// stroke attributes: `#rgb`, `#rrggbb`, `#rrggbbaa`,
// `rgb(r,g,b)`, `rgba(r,g,b,a)` or a named color.
// It returns false for "", "none", "transparent" and unknown values,
// meaning the path is not painted.
func ParseColor(s string) (color.Color, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch {
	case s == "", s == "none", s == "transparent":
		return nil, false
	case strings.HasPrefix(s, "#"):
		return parseHexColor(s[1:])
	case strings.HasPrefix(s, "rgb(") || strings.HasPrefix(s, "rgba("):
		return parseRGBColor(s)
	}
	c, ok := colornames.Map[s]
	if !ok {
		return nil, false
	}
	return c, true
}

func parseHexColor(s string) (color.Color, bool) {
	var digits [8]uint8
	switch len(s) {
	case 3, 4: // short form: each digit is repeated
		for i := 0; i < len(s); i++ {
			v, err := strconv.ParseUint(s[i:i+1], 16, 8)
			if err != nil {
				return nil, false
			}
			digits[i] = uint8(v * 17)
		}
		if len(s) == 3 {
			digits[3] = 0xff
		}
	case 6, 8:
		for i := 0; i < len(s); i += 2 {
			v, err := strconv.ParseUint(s[i:i+2], 16, 8)
			if err != nil {
				return nil, false
			}
			digits[i/2] = uint8(v)
		}
		if len(s) == 6 {
			digits[3] = 0xff
		}
	default:
		return nil, false
	}
	return color.NRGBA{R: digits[0], G: digits[1], B: digits[2], A: digits[3]}, true
}

func parseRGBColor(s string) (color.Color, bool) {
	start, end := strings.IndexByte(s, '('), strings.IndexByte(s, ')')
	if end < start {
		return nil, false
	}
	fields := strings.FieldsFunc(s[start+1:end], func(r rune) bool { return r == ',' || r == ' ' })
	if len(fields) != 3 && len(fields) != 4 {
		return nil, false
	}
	var out [4]uint8
	out[3] = 0xff
	for i, f := range fields {
		if i == 3 { // alpha, in [0, 1]
			a, err := strconv.ParseFloat(f, 64)
			if err != nil || a < 0 || a > 1 {
				return nil, false
			}
			out[3] = uint8(a*255 + 0.5)
			continue
		}
		v, err := strconv.ParseUint(f, 10, 8)
		if err != nil {
			return nil, false
		}
		out[i] = uint8(v)
	}
	return color.NRGBA{R: out[0], G: out[1], B: out[2], A: out[3]}, true
}

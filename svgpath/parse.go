package svgpath

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrPathData is returned when path data can't be read back.
var ErrPathData = errors.New("invalid path data")

// pathCursor scans path data written by ToSVGPath
type pathCursor struct {
	data string
	pos  int
}

func isSeparator(c byte) bool {
	return c == ' ' || c == ',' || c == '\t' || c == '\n' || c == '\r'
}

func (c *pathCursor) skipSeparators() {
	for c.pos < len(c.data) && isSeparator(c.data[c.pos]) {
		c.pos++
	}
}

// next returns the next command letter, or 0 if a number follows
func (c *pathCursor) nextCommand() byte {
	c.skipSeparators()
	if c.pos >= len(c.data) {
		return 0
	}
	switch b := c.data[c.pos]; b {
	case '+', '-', '.', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9', 'N', 'I':
		return 0
	default:
		c.pos++
		return b
	}
}

func (c *pathCursor) done() bool {
	c.skipSeparators()
	return c.pos >= len(c.data)
}

// readNumber reads one coordinate, also accepting the NaN and Inf
// spellings produced by Format.Number.
func (c *pathCursor) readNumber() (float32, error) {
	c.skipSeparators()
	start := c.pos
	for c.pos < len(c.data) {
		b := c.data[c.pos]
		isSign := b == '+' || b == '-'
		if isSign && c.pos != start && c.data[c.pos-1] != 'e' && c.data[c.pos-1] != 'E' {
			break
		}
		if isSeparator(b) || (!isSign && !isNumberByte(b)) {
			break
		}
		c.pos++
	}
	if start == c.pos {
		return 0, fmt.Errorf("%w: missing number at %d", ErrPathData, start)
	}
	f, err := strconv.ParseFloat(c.data[start:c.pos], 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrPathData, err)
	}
	return float32(f), nil
}

func isNumberByte(b byte) bool {
	switch {
	case '0' <= b && b <= '9', b == '.', b == 'e', b == 'E':
		return true
	}
	// NaN, Inf
	switch b {
	case 'N', 'a', 'I', 'n', 'f':
		return true
	}
	return false
}

func (c *pathCursor) readPoints(n int) ([]Point, error) {
	out := make([]Point, n)
	for i := range out {
		x, err := c.readNumber()
		if err != nil {
			return nil, err
		}
		y, err := c.readNumber()
		if err != nil {
			return nil, err
		}
		out[i] = Point{x, y}
	}
	return out, nil
}

// ParsePathData reads back path data using the absolute
// M, L, C and Z commands, as written by ToSVGPath.
// It returns the points reached by the path, in order (control points
// are dropped), and whether the path is closed.
// As in SVG, coordinates following a command without a new letter
// repeat it, a MoveTo being repeated as LineTo.
func ParsePathData(d string) (points []Point, closed bool, err error) {
	c := pathCursor{data: d}
	var cmd byte
	for !c.done() {
		if closed {
			return nil, false, fmt.Errorf("%w: data after Z", ErrPathData)
		}
		if letter := c.nextCommand(); letter != 0 {
			cmd = letter
		} else if cmd == 'M' {
			cmd = 'L'
		}
		switch cmd {
		case 'M':
			if len(points) != 0 {
				return nil, false, fmt.Errorf("%w: only one subpath is supported", ErrPathData)
			}
			fallthrough
		case 'L':
			if cmd == 'L' && len(points) == 0 {
				return nil, false, fmt.Errorf("%w: path must start with M", ErrPathData)
			}
			ps, err := c.readPoints(1)
			if err != nil {
				return nil, false, err
			}
			points = append(points, ps[0])
		case 'C':
			if len(points) == 0 {
				return nil, false, fmt.Errorf("%w: path must start with M", ErrPathData)
			}
			ps, err := c.readPoints(3)
			if err != nil {
				return nil, false, err
			}
			points = append(points, ps[2])
		case 'Z':
			closed = true
		case 0:
			return nil, false, fmt.Errorf("%w: path must start with M", ErrPathData)
		default:
			return nil, false, fmt.Errorf("%w: unsupported command %q", ErrPathData, cmd)
		}
	}
	return points, closed, nil
}

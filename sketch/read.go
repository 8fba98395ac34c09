package sketch

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/benoitkugler/svgsketch/svgpath"
	"golang.org/x/net/html/charset"
)

// ErrorMode is the for setting how the parser reacts to unsupported elements
type ErrorMode uint8

const (
	// IgnoreErrorMode skips unsupported elements silently
	IgnoreErrorMode ErrorMode = iota

	// WarnErrorMode skips unsupported elements, logging a warning
	WarnErrorMode

	// StrictErrorMode returns ErrUnsupportedElement
	StrictErrorMode
)

// elements read without effect, but whose children are inspected
var containerElements = map[string]bool{
	"g": true,
}

// elements skipped with their children, without warning
var metadataElements = map[string]bool{
	"title":    true,
	"desc":     true,
	"metadata": true,
}

// readAttrs returns the attributes of the element, plus the properties
// found in its `style` attribute
func readAttrs(attrs []xml.Attr) map[string]string {
	out := make(map[string]string, len(attrs))
	var pairs []string
	for _, attr := range attrs {
		switch name := strings.ToLower(attr.Name.Local); name {
		case "style":
			pairs = append(pairs, strings.Split(attr.Value, ";")...)
		default:
			out[name] = strings.TrimSpace(attr.Value)
		}
	}
	// style properties have precedence over attributes
	for _, pair := range pairs {
		kv := strings.SplitN(pair, ":", 2)
		if len(kv) == 2 {
			out[strings.ToLower(strings.TrimSpace(kv[0]))] = strings.TrimSpace(kv[1])
		}
	}
	return out
}

func parseLength(v string) (float32, error) {
	v = strings.TrimSuffix(strings.TrimSpace(v), "px")
	f, err := strconv.ParseFloat(v, 32)
	return float32(f), err
}

// readSize reads the canvas size of the svg element,
// falling back to its viewBox
func (dr *Drawing) readSize(attrs map[string]string) error {
	var err error
	if v, ok := attrs["width"]; ok {
		if dr.width, err = parseLength(v); err != nil {
			return fmt.Errorf("invalid width: %s", err)
		}
	}
	if v, ok := attrs["height"]; ok {
		if dr.height, err = parseLength(v); err != nil {
			return fmt.Errorf("invalid height: %s", err)
		}
	}
	if vb, ok := attrs["viewbox"]; ok && (dr.width == 0 || dr.height == 0) {
		fields := strings.FieldsFunc(vb, func(r rune) bool { return r == ',' || r == ' ' })
		if len(fields) != 4 {
			return fmt.Errorf("invalid viewBox %q", vb)
		}
		w, errW := parseLength(fields[2])
		h, errH := parseLength(fields[3])
		if errW != nil || errH != nil {
			return fmt.Errorf("invalid viewBox %q", vb)
		}
		if dr.width == 0 {
			dr.width = w
		}
		if dr.height == 0 {
			dr.height = h
		}
	}
	return nil
}

// readPath builds a path from the element attributes.
// Missing colors use the svg defaults (black fill, no stroke) and a
// missing stroke-width is kept negative, so that it is written back as missing.
func readPath(attrs map[string]string) (StyledPath, error) {
	points, closed, err := svgpath.ParsePathData(attrs["d"])
	if err != nil {
		return StyledPath{}, err
	}
	out := StyledPath{
		closed:      closed,
		circul:      attrs["stroke-linejoin"] == "round",
		points:      points,
		fill:        "black",
		stroke:      "none",
		strokeWidth: -1,
	}
	if v, ok := attrs["fill"]; ok {
		out.fill = v
	}
	if v, ok := attrs["stroke"]; ok {
		out.stroke = v
	}
	if v, ok := attrs["stroke-width"]; ok {
		if out.strokeWidth, err = parseLength(v); err != nil {
			return StyledPath{}, fmt.Errorf("invalid stroke-width: %s", err)
		}
	}
	return out, nil
}

// ReadDrawing reads back a drawing from an svg document, such
// as the ones written by Serialize.
// Only svg, g and path elements are supported: errMode determines
// if other elements are ignored, logged or rejected.
// Non UTF-8 documents are decoded using their declared charset.
func ReadDrawing(stream io.Reader, errMode ErrorMode) (*Drawing, error) {
	decoder := xml.NewDecoder(stream)
	decoder.CharsetReader = charset.NewReaderLabel
	var out *Drawing
	for {
		t, err := decoder.Token()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, err
		}
		se, ok := t.(xml.StartElement)
		if !ok {
			continue
		}

		name := se.Name.Local
		switch {
		case name == "svg":
			if out != nil {
				return nil, fmt.Errorf("%w: nested svg", ErrUnsupportedElement)
			}
			out = &Drawing{}
			if err = out.readSize(readAttrs(se.Attr)); err != nil {
				return nil, err
			}
			continue
		case out == nil:
			return nil, ErrNoDocument
		case name == "path":
			path, err := readPath(readAttrs(se.Attr))
			if err != nil {
				return nil, err
			}
			out.paths = append(out.paths, path)
		case containerElements[name]:
			continue
		case metadataElements[name]:
		default:
			switch errMode {
			case StrictErrorMode:
				return nil, fmt.Errorf("%w: %s", ErrUnsupportedElement, name)
			case WarnErrorMode:
				Logger().Warn("skipping svg element", "element", name)
			}
		}

		// the children of a path or of an unsupported element are not drawn
		if err = decoder.Skip(); err != nil {
			return nil, err
		}
	}
	if out == nil {
		return nil, ErrNoDocument
	}
	Logger().Debug("drawing read", "paths", len(out.paths), "width", out.width, "height", out.height)
	return out, nil
}

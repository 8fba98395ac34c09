package svgraster

import (
	"errors"
	"fmt"
	"image/color"
	"image/jpeg"
	"image/png"
	"io"
	"strings"

	"github.com/benoitkugler/svgsketch/sketch"
)

// ErrUnknownFormat is returned for an image format other than png or jpeg.
var ErrUnknownFormat = errors.New("unknown image format")

// Format is an image encoding.
type Format uint8

const (
	PNG Format = iota
	JPEG
)

func (f Format) String() string {
	switch f {
	case PNG:
		return "png"
	case JPEG:
		return "jpeg"
	default:
		return fmt.Sprintf("<unknown Format %d>", uint8(f))
	}
}

// ParseFormat accepts "png", "jpeg" and "jpg", ignoring case.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "png":
		return PNG, nil
	case "jpeg", "jpg":
		return JPEG, nil
	default:
		return 0, fmt.Errorf("%q: %w", name, ErrUnknownFormat)
	}
}

// JPEGQuality is the quality used when encoding to JPEG.
const JPEGQuality = 92

// Encode rasterizes the drawing on a white background and
// writes it to `w` in the given format.
func Encode(w io.Writer, d *sketch.Drawing, format Format) error {
	if format != PNG && format != JPEG {
		return fmt.Errorf("%s: %w", format, ErrUnknownFormat)
	}
	img := RasterDrawing(d, color.White)
	sketch.Logger().Debug("svgraster: encoding", "format", format, "bounds", img.Bounds(), "paths", d.Len())
	if format == JPEG {
		return jpeg.Encode(w, img, &jpeg.Options{Quality: JPEGQuality})
	}
	return png.Encode(w, img)
}

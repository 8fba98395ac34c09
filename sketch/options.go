package sketch

// Options is the style given to new paths.
type Options struct {
	Close  bool // end the path with a close command
	Circul bool // join points with smooth curves instead of lines

	Fill        string  // fill color, "" or "none" for no fill
	Stroke      string  // stroke color
	StrokeWidth float32 // a negative width omits the attribute
}

// DefaultOptions returns open, straight paths,
// stroked in black with a width of 1 and not filled.
func DefaultOptions() Options {
	return Options{
		Fill:        "none",
		Stroke:      "#000",
		StrokeWidth: 1,
	}
}

package gesture

import (
	"time"

	"github.com/benoitkugler/svgsketch/sketch"
)

// DefaultThrottle is the minimum delay between two accepted
// pencil moves.
const DefaultThrottle = 20 * time.Millisecond

// Mode selects how input events build paths.
type Mode uint8

const (
	// Pencil records a free hand stroke: Begin, Extend, End.
	Pencil Mode = iota
	// Pen appends one point per Click to the open path, until Release.
	Pen
)

func (m Mode) String() string {
	switch m {
	case Pencil:
		return "pencil"
	case Pen:
		return "pen"
	default:
		return "<unknown Mode>"
	}
}

type options struct {
	mode     Mode
	style    sketch.Options
	throttle time.Duration
	now      func() time.Time
}

func defaultOptions() options {
	return options{
		mode:     Pencil,
		style:    sketch.DefaultOptions(),
		throttle: DefaultThrottle,
		now:      time.Now,
	}
}

// Option configures a Session.
type Option func(*options)

// WithMode sets the initial input mode (Pencil by default).
func WithMode(m Mode) Option {
	return func(o *options) { o.mode = m }
}

// WithStyle sets the style of the paths created by the session.
func WithStyle(style sketch.Options) Option {
	return func(o *options) { o.style = style }
}

// WithThrottle sets the minimum delay between two pencil moves.
// A zero or negative delay accepts every move.
func WithThrottle(d time.Duration) Option {
	return func(o *options) { o.throttle = d }
}

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

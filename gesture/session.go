// Package gesture turns pointer events into the paths of a sketch.Drawing.
//
// A Session owns a drawing and tracks the path being drawn. In Pencil mode
// every accepted move appends a point and replaces the path in the drawing,
// so that Render always shows the stroke in progress. In Pen mode each click
// adds a corner to the open path.
package gesture

import (
	"errors"
	"time"

	"github.com/benoitkugler/svgsketch/sketch"
	"github.com/benoitkugler/svgsketch/svgpath"
)

var (
	// ErrNoGesture is returned when extending or ending a stroke
	// which was never started.
	ErrNoGesture = errors.New("no gesture in progress")
	// ErrWrongMode is returned when an event does not belong to the current mode.
	ErrWrongMode = errors.New("event not available in the current mode")
)

type Session struct {
	drawing *sketch.Drawing
	opts    options

	active   *sketch.StyledPath // nil when idle
	index    int                // position of active in drawing
	lastMove time.Time

	redo []sketch.StyledPath // undone paths, last undone at the end
}

// NewSession returns a session over an empty drawing of the given size.
func NewSession(width, height float32, opts ...Option) *Session {
	s := &Session{drawing: sketch.NewDrawing(width, height), opts: defaultOptions()}
	for _, opt := range opts {
		opt(&s.opts)
	}
	return s
}

// Drawing returns the underlying drawing. Modifying it while
// a gesture is active is not supported.
func (s *Session) Drawing() *sketch.Drawing { return s.drawing }

func (s *Session) Mode() Mode { return s.opts.mode }

// SetMode switches the input mode, committing the current path.
func (s *Session) SetMode(m Mode) {
	s.finish()
	s.opts.mode = m
}

func (s *Session) Style() sketch.Options { return s.opts.style }

// SetStyle changes the style of the next paths.
// The path being drawn keeps its style.
func (s *Session) SetStyle(style sketch.Options) { s.opts.style = style }

// Active returns true while a path is being drawn.
func (s *Session) Active() bool { return s.active != nil }

// start adds a new path with its first point to the drawing
func (s *Session) start(p svgpath.Point) {
	s.finish()
	s.active = sketch.NewStyledPath(s.opts.style)
	s.active.Add(p)
	s.drawing.Add(*s.active)
	s.index = s.drawing.Len() - 1
}

// push appends `p` to the active path and refreshes the drawing
func (s *Session) push(p svgpath.Point) error {
	s.active.Add(p)
	if err := s.drawing.Update(s.index, *s.active); err != nil {
		s.active = nil
		return err
	}
	return nil
}

// finish commits the active path, if any
func (s *Session) finish() {
	if s.active == nil {
		return
	}
	sketch.Logger().Debug("gesture: path committed", "index", s.index, "points", s.active.Len())
	s.active = nil
}

// Begin starts a pencil stroke at `p`.
func (s *Session) Begin(p svgpath.Point) error {
	if s.opts.mode != Pencil {
		return ErrWrongMode
	}
	s.start(p)
	s.lastMove = s.opts.now()
	sketch.Logger().Debug("gesture: stroke started", "index", s.index)
	return nil
}

// Extend adds `p` to the current stroke. Moves arriving less than
// the throttle delay after the last accepted one are dropped.
func (s *Session) Extend(p svgpath.Point) error {
	if s.opts.mode != Pencil {
		return ErrWrongMode
	}
	if s.active == nil {
		sketch.Logger().Warn("gesture: move without stroke")
		return ErrNoGesture
	}
	now := s.opts.now()
	if s.opts.throttle > 0 && now.Sub(s.lastMove) < s.opts.throttle {
		return nil
	}
	s.lastMove = now
	return s.push(p)
}

// End adds the final point `p` and commits the stroke.
// It is never throttled.
func (s *Session) End(p svgpath.Point) error {
	if s.opts.mode != Pencil {
		return ErrWrongMode
	}
	if s.active == nil {
		sketch.Logger().Warn("gesture: release without stroke")
		return ErrNoGesture
	}
	if err := s.push(p); err != nil {
		return err
	}
	s.finish()
	return nil
}

// Click adds a point to the open pen path, starting one if needed.
func (s *Session) Click(p svgpath.Point) error {
	if s.opts.mode != Pen {
		return ErrWrongMode
	}
	if s.active == nil {
		s.start(p)
		return nil
	}
	return s.push(p)
}

// Release commits the open pen path. It is a no-op when idle.
func (s *Session) Release() { s.finish() }

// Undo commits the current path and removes the last path of the
// drawing, which may then be restored by Redo.
func (s *Session) Undo() bool {
	s.finish()
	p, ok := s.drawing.Undo()
	if ok {
		s.redo = append(s.redo, p)
	}
	return ok
}

// Redo restores the last undone path.
// Drawing new paths does not forget the undone ones.
func (s *Session) Redo() bool {
	if len(s.redo) == 0 {
		return false
	}
	s.finish()
	last := len(s.redo) - 1
	s.drawing.Add(s.redo[last])
	s.redo = s.redo[:last]
	return true
}

// CanRedo returns true if Redo would restore a path.
func (s *Session) CanRedo() bool { return len(s.redo) != 0 }

// Clear removes every path, including the undone ones.
func (s *Session) Clear() {
	s.finish()
	s.drawing.Clear()
	s.redo = nil
}

// Resize changes the canvas size, scaling the existing paths
// (see sketch.Drawing.ChangeSize). The active path, if any, stays active.
func (s *Session) Resize(width, height float32) {
	s.drawing.ChangeSize(width, height)
	if s.active == nil {
		return
	}
	p, err := s.drawing.Get(s.index)
	if err != nil {
		s.active = nil
		return
	}
	s.active = &p
}

// Render returns the svg document of the drawing.
func (s *Session) Render() string { return s.drawing.Serialize() }

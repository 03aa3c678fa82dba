package draw

import (
	"github.com/sirupsen/logrus"
)

// Point is a position in surface coordinates.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Canvas is the immediate-mode 2D context a surface hands to the engine.
// *gg.Context satisfies it.
type Canvas interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	SetHexColor(hex string)
	SetLineWidth(width float64)
	Stroke() error
}

// SessionState is the stroke session state of an engine.
type SessionState int

const (
	Idle SessionState = iota
	Active
)

func (s SessionState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Active:
		return "active"
	default:
		return "unknown"
	}
}

// Segment is one rendered line piece of a stroke.
type Segment struct {
	From, To Point
	Settings Settings
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger replaces the engine's log entry.
func WithLogger(log *logrus.Entry) Option {
	return func(e *Engine) {
		if log != nil {
			e.log = log
		}
	}
}

// OnSegment registers a callback run after every rendered segment.
// The host view uses it to repaint.
func OnSegment(fn func(Segment)) Option {
	return func(e *Engine) {
		e.onSegment = fn
	}
}

// Engine turns pointer events into stroke segments on an attached canvas.
//
// An Engine is driven from the host's UI goroutine and is not safe for
// concurrent use.
type Engine struct {
	cfg       Config
	canvas    Canvas
	state     SessionState
	prev      Point
	segments  int
	onSegment func(Segment)
	log       *logrus.Entry
}

// New creates an engine that reads its tool configuration from cfg.
// No surface is bound until Attach.
func New(cfg Config, opts ...Option) *Engine {
	e := &Engine{
		cfg: cfg,
		log: logrus.WithField("component", "stroke-engine"),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Attach binds the engine to c. A nil canvas is ignored. Re-attaching
// drops any active session.
func (e *Engine) Attach(c Canvas) {
	if c == nil {
		e.log.Debug("attach skipped: no surface")
		return
	}
	if s, ok := c.(*Surface); ok && s == nil {
		e.log.Debug("attach skipped: no surface")
		return
	}
	e.canvas = c
	e.state = Idle
	if s, ok := c.(*Surface); ok {
		e.log = e.log.WithField("surface_id", s.ID())
	}
	e.log.Debug("engine attached")
}

// Attached reports whether a surface is bound.
func (e *Engine) Attached() bool {
	return e.canvas != nil
}

// State returns the current stroke session state.
func (e *Engine) State() SessionState {
	return e.state
}

// Segments returns how many segments have been rendered since New.
func (e *Engine) Segments() int {
	return e.segments
}

// OnPointerDown starts a stroke session at p. It is ignored while a session
// is already active.
func (e *Engine) OnPointerDown(p Point) {
	if e.canvas == nil {
		return
	}
	if e.state == Active {
		e.log.Debug("pointer down during active stroke ignored")
		return
	}

	s := ResolveSettings(e.cfg)
	e.canvas.MoveTo(p.X, p.Y)
	e.prev = p
	e.state = Active

	e.log.WithFields(logrus.Fields{
		"x":     p.X,
		"y":     p.Y,
		"tool":  s.Tool,
		"color": s.Color,
		"width": s.Width,
	}).Debug("stroke started")
}

// OnPointerMove renders the segment from the previous position to p using
// the configuration current at this moment. Moves outside a session are ignored.
func (e *Engine) OnPointerMove(p Point) {
	if e.canvas == nil || e.state != Active {
		return
	}

	s := ResolveSettings(e.cfg)
	e.canvas.SetHexColor(s.Color)
	e.canvas.SetLineWidth(float64(s.Width))
	e.canvas.MoveTo(e.prev.X, e.prev.Y)
	e.canvas.LineTo(p.X, p.Y)
	if err := e.canvas.Stroke(); err != nil {
		e.log.WithError(err).Warn("stroke segment failed")
	}

	seg := Segment{From: e.prev, To: p, Settings: s}
	e.prev = p
	e.segments++

	if e.onSegment != nil {
		e.onSegment(seg)
	}
}

// OnPointerUp ends the active session, if any.
func (e *Engine) OnPointerUp() {
	e.end("up")
}

// OnPointerLeave ends the active session when the pointer exits the surface,
// so re-entering without a fresh press does not resume drawing.
func (e *Engine) OnPointerLeave() {
	e.end("leave")
}

func (e *Engine) end(reason string) {
	if e.state != Active {
		return
	}
	e.state = Idle
	e.log.WithField("reason", reason).Debug("stroke ended")
}

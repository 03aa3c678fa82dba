package draw

import (
	"errors"
	"fmt"
	"testing"
)

// recordingCanvas records every call and turns each Stroke into a segment.
type recordingCanvas struct {
	calls     []string
	segments  []Segment
	color     string
	width     float64
	pathStart Point
	pathEnd   Point
	strokeErr error
}

func (r *recordingCanvas) MoveTo(x, y float64) {
	r.calls = append(r.calls, fmt.Sprintf("move %g,%g", x, y))
	r.pathStart = Pt(x, y)
	r.pathEnd = Pt(x, y)
}

func (r *recordingCanvas) LineTo(x, y float64) {
	r.calls = append(r.calls, fmt.Sprintf("line %g,%g", x, y))
	r.pathEnd = Pt(x, y)
}

func (r *recordingCanvas) SetHexColor(hex string) {
	r.color = hex
}

func (r *recordingCanvas) SetLineWidth(width float64) {
	r.width = width
}

func (r *recordingCanvas) Stroke() error {
	r.calls = append(r.calls, "stroke")
	r.segments = append(r.segments, Segment{
		From:     r.pathStart,
		To:       r.pathEnd,
		Settings: Settings{Color: r.color, Width: int(r.width)},
	})
	return r.strokeErr
}

// mapConfig is a mutable fake of the host's tool configuration.
type mapConfig map[string]string

func (m mapConfig) Lookup(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

func newAttachedEngine(cfg Config) (*Engine, *recordingCanvas) {
	rc := &recordingCanvas{}
	e := New(cfg)
	e.Attach(rc)
	return e, rc
}

func TestScenario_TwoSegments(t *testing.T) {
	e, rc := newAttachedEngine(mapConfig{KeyColor: "#FF0000", KeyWidth: "4"})

	e.OnPointerDown(Pt(10, 10))
	e.OnPointerMove(Pt(20, 20))
	e.OnPointerMove(Pt(30, 10))
	e.OnPointerUp()

	want := []Segment{
		{From: Pt(10, 10), To: Pt(20, 20), Settings: Settings{Color: "#FF0000", Width: 4}},
		{From: Pt(20, 20), To: Pt(30, 10), Settings: Settings{Color: "#FF0000", Width: 4}},
	}
	if len(rc.segments) != len(want) {
		t.Fatalf("Expected %d segments, got %d", len(want), len(rc.segments))
	}
	for i := range want {
		if rc.segments[i] != want[i] {
			t.Errorf("segment %d: got %+v, want %+v", i, rc.segments[i], want[i])
		}
	}
	if e.State() != Idle {
		t.Errorf("Expected idle after up, got %s", e.State())
	}
}

func TestScenario_DownUpDrawsNothing(t *testing.T) {
	e, rc := newAttachedEngine(mapConfig{})

	e.OnPointerDown(Pt(0, 0))
	e.OnPointerUp()

	if len(rc.segments) != 0 {
		t.Errorf("Expected 0 segments, got %d", len(rc.segments))
	}
	if e.Segments() != 0 {
		t.Errorf("Segments() = %d, want 0", e.Segments())
	}
}

func TestScenario_MoveWithoutDown(t *testing.T) {
	e, rc := newAttachedEngine(mapConfig{})

	e.OnPointerMove(Pt(5, 5))

	if len(rc.calls) != 0 {
		t.Errorf("Expected no canvas calls, got %v", rc.calls)
	}
	if e.State() != Idle {
		t.Errorf("Expected idle, got %s", e.State())
	}
}

func TestSegmentCountMatchesMoves(t *testing.T) {
	for n := 0; n <= 12; n++ {
		t.Run(fmt.Sprintf("moves=%d", n), func(t *testing.T) {
			e, rc := newAttachedEngine(mapConfig{})
			e.OnPointerDown(Pt(0, 0))
			for i := 1; i <= n; i++ {
				e.OnPointerMove(Pt(float64(i), float64(i*2)))
			}
			e.OnPointerUp()

			if len(rc.segments) != n {
				t.Errorf("Expected %d segments, got %d", n, len(rc.segments))
			}
			if e.Segments() != n {
				t.Errorf("Segments() = %d, want %d", e.Segments(), n)
			}
		})
	}
}

func TestLeaveEndsSession(t *testing.T) {
	e, rc := newAttachedEngine(mapConfig{})

	e.OnPointerDown(Pt(1, 1))
	e.OnPointerMove(Pt(2, 2))
	e.OnPointerLeave()
	e.OnPointerMove(Pt(3, 3))

	if len(rc.segments) != 1 {
		t.Errorf("Expected 1 segment, got %d", len(rc.segments))
	}
	if e.State() != Idle {
		t.Errorf("Expected idle after leave, got %s", e.State())
	}
}

func TestUpAndLeaveAreIdempotent(t *testing.T) {
	e, rc := newAttachedEngine(mapConfig{})

	e.OnPointerUp()
	e.OnPointerLeave()
	e.OnPointerDown(Pt(1, 1))
	e.OnPointerUp()
	e.OnPointerUp()
	e.OnPointerLeave()

	if e.State() != Idle {
		t.Errorf("Expected idle, got %s", e.State())
	}
	if len(rc.segments) != 0 {
		t.Errorf("Expected 0 segments, got %d", len(rc.segments))
	}
}

func TestConfigChangeMidStroke(t *testing.T) {
	cfg := mapConfig{KeyColor: "#111111", KeyWidth: "3"}
	e, rc := newAttachedEngine(cfg)

	e.OnPointerDown(Pt(0, 0))
	e.OnPointerMove(Pt(10, 0))
	cfg[KeyColor] = "#00FF00"
	cfg[KeyWidth] = "7"
	e.OnPointerMove(Pt(20, 0))

	if len(rc.segments) != 2 {
		t.Fatalf("Expected 2 segments, got %d", len(rc.segments))
	}
	first, second := rc.segments[0].Settings, rc.segments[1].Settings
	if first.Color != "#111111" || first.Width != 3 {
		t.Errorf("first segment used %+v, want #111111/3", first)
	}
	if second.Color != "#00FF00" || second.Width != 7 {
		t.Errorf("second segment used %+v, want #00FF00/7", second)
	}
}

func TestDefaultsWhenConfigAbsent(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"nil config", nil},
		{"empty config", mapConfig{}},
		{"malformed values", mapConfig{KeyColor: "", KeyWidth: "thick", KeyTool: "spray"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e, rc := newAttachedEngine(tc.cfg)
			e.OnPointerDown(Pt(0, 0))
			e.OnPointerMove(Pt(1, 1))

			if len(rc.segments) != 1 {
				t.Fatalf("Expected 1 segment, got %d", len(rc.segments))
			}
			got := rc.segments[0].Settings
			if got.Color != DefaultColor {
				t.Errorf("color = %q, want %q", got.Color, DefaultColor)
			}
			if got.Width != DefaultWidth {
				t.Errorf("width = %d, want %d", got.Width, DefaultWidth)
			}
		})
	}
}

func TestSecondDownWhileActiveIgnored(t *testing.T) {
	e, rc := newAttachedEngine(mapConfig{})

	e.OnPointerDown(Pt(0, 0))
	e.OnPointerDown(Pt(50, 50))
	e.OnPointerMove(Pt(5, 5))

	if len(rc.segments) != 1 {
		t.Fatalf("Expected 1 segment, got %d", len(rc.segments))
	}
	if rc.segments[0].From != Pt(0, 0) {
		t.Errorf("segment started at %+v, want origin", rc.segments[0].From)
	}
}

func TestRenderingContract(t *testing.T) {
	e, rc := newAttachedEngine(mapConfig{})

	e.OnPointerDown(Pt(1, 2))
	e.OnPointerMove(Pt(3, 4))
	e.OnPointerMove(Pt(5, 6))

	want := []string{
		"move 1,2",
		"move 1,2", "line 3,4", "stroke",
		"move 3,4", "line 5,6", "stroke",
	}
	if len(rc.calls) != len(want) {
		t.Fatalf("calls = %v, want %v", rc.calls, want)
	}
	for i := range want {
		if rc.calls[i] != want[i] {
			t.Errorf("call %d = %q, want %q", i, rc.calls[i], want[i])
		}
	}
}

func TestEventsBeforeAttachIgnored(t *testing.T) {
	e := New(mapConfig{})

	e.OnPointerDown(Pt(0, 0))
	e.OnPointerMove(Pt(1, 1))

	if e.Attached() {
		t.Error("Expected engine to be unattached")
	}
	if e.State() != Idle {
		t.Errorf("Expected idle, got %s", e.State())
	}
	if e.Segments() != 0 {
		t.Errorf("Segments() = %d, want 0", e.Segments())
	}
}

func TestAttachNil(t *testing.T) {
	e := New(mapConfig{})

	e.Attach(nil)
	var s *Surface
	e.Attach(s)

	if e.Attached() {
		t.Error("Attach(nil) should be a no-op")
	}
}

func TestReattachResetsSession(t *testing.T) {
	e, _ := newAttachedEngine(mapConfig{})
	e.OnPointerDown(Pt(0, 0))

	other := &recordingCanvas{}
	e.Attach(other)
	e.OnPointerMove(Pt(1, 1))

	if e.State() != Idle {
		t.Errorf("Expected idle after re-attach, got %s", e.State())
	}
	if len(other.calls) != 0 {
		t.Errorf("Expected no calls on new canvas, got %v", other.calls)
	}
}

func TestStrokeErrorIsSwallowed(t *testing.T) {
	e, rc := newAttachedEngine(mapConfig{})
	rc.strokeErr = errors.New("raster failure")

	e.OnPointerDown(Pt(0, 0))
	e.OnPointerMove(Pt(1, 1))
	e.OnPointerMove(Pt(2, 2))

	if e.State() != Active {
		t.Errorf("Expected session to stay active, got %s", e.State())
	}
	if e.Segments() != 2 {
		t.Errorf("Segments() = %d, want 2", e.Segments())
	}
}

func TestOnSegmentHook(t *testing.T) {
	var seen []Segment
	rc := &recordingCanvas{}
	e := New(mapConfig{KeyTool: "eraser"}, OnSegment(func(s Segment) {
		seen = append(seen, s)
	}))
	e.Attach(rc)

	e.OnPointerDown(Pt(0, 0))
	e.OnPointerMove(Pt(4, 4))
	e.OnPointerUp()

	if len(seen) != 1 {
		t.Fatalf("Expected 1 hook call, got %d", len(seen))
	}
	if seen[0].Settings.Tool != ToolEraser {
		t.Errorf("tool = %q, want eraser", seen[0].Settings.Tool)
	}
	if seen[0].To != Pt(4, 4) {
		t.Errorf("To = %+v, want (4,4)", seen[0].To)
	}
}

package draw

import (
	"math"
	"strconv"
	"strings"
)

// Tool is the drawing tool picked in the palette.
type Tool string

const (
	ToolPencil    Tool = "pencil"
	ToolBrush     Tool = "brush"
	ToolEraser    Tool = "eraser"
	ToolLine      Tool = "line"
	ToolRectangle Tool = "rectangle"
	ToolCircle    Tool = "circle"
)

// Tools lists every tool the palette offers, in display order.
var Tools = []Tool{ToolPencil, ToolBrush, ToolEraser, ToolLine, ToolRectangle, ToolCircle}

// Configuration keys read on every pointer event.
const (
	KeyTool  = "tool"
	KeyColor = "color"
	KeyWidth = "width"
)

const (
	DefaultTool  = ToolPencil
	DefaultColor = "#000000"
	DefaultWidth = 2
)

// Config is read-only access to the tool configuration the host keeps for a surface.
type Config interface {
	Lookup(key string) (string, bool)
}

// ConfigFunc adapts a plain function to Config.
type ConfigFunc func(key string) (string, bool)

func (f ConfigFunc) Lookup(key string) (string, bool) { return f(key) }

// Settings is the resolved tool configuration applied to a segment.
type Settings struct {
	Tool  Tool
	Color string
	Width int
}

// ResolveSettings reads the three configuration fields and substitutes the
// defaults for anything missing or malformed.
func ResolveSettings(cfg Config) Settings {
	s := Settings{Tool: DefaultTool, Color: DefaultColor, Width: DefaultWidth}
	if cfg == nil {
		return s
	}
	if v, ok := cfg.Lookup(KeyTool); ok {
		s.Tool = ParseTool(v)
	}
	if v, ok := cfg.Lookup(KeyColor); ok {
		if c, ok := ParseColor(v); ok {
			s.Color = c
		}
	}
	if v, ok := cfg.Lookup(KeyWidth); ok {
		if w, ok := ParseWidth(v); ok {
			s.Width = w
		}
	}
	return s
}

// ParseTool maps a configured value to a known tool, falling back to pencil.
func ParseTool(v string) Tool {
	t := Tool(strings.ToLower(strings.TrimSpace(v)))
	for _, known := range Tools {
		if t == known {
			return t
		}
	}
	return DefaultTool
}

// ParseColor accepts "#" followed by 3, 4, 6 or 8 hex digits and returns
// the value upper-cased.
func ParseColor(v string) (string, bool) {
	v = strings.TrimSpace(v)
	if !strings.HasPrefix(v, "#") {
		return "", false
	}
	digits := v[1:]
	switch len(digits) {
	case 3, 4, 6, 8:
	default:
		return "", false
	}
	for i := 0; i < len(digits); i++ {
		c := digits[i]
		isHex := ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
		if !isHex {
			return "", false
		}
	}
	return "#" + strings.ToUpper(digits), true
}

// ParseWidth coerces a configured width to a positive integer. Non-numeric
// and non-positive values are rejected; fractions round to the nearest
// integer but never below 1.
func ParseWidth(v string) (int, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f <= 0 {
		return 0, false
	}
	w := math.Round(f)
	if w < 1 {
		w = 1
	}
	if w > math.MaxInt32 {
		w = math.MaxInt32
	}
	return int(w), true
}

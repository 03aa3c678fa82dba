package state

import (
	"strconv"
	"sync"

	"ChronoDraw/internal/draw"
)

// Colors are the swatches offered by the palette.
var Colors = []string{"#000000", "#FF0000", "#00FF00", "#0000FF", "#FFFF00", "#FF00FF", "#00FFFF", "#FFFFFF"}

// BrushSize is a named width preset.
type BrushSize struct {
	Label string
	Width int
}

var BrushSizes = []BrushSize{
	{Label: "S", Width: 1},
	{Label: "M", Width: 3},
	{Label: "L", Width: 5},
}

// Palette is the tool configuration shared by the toolbar (writer) and the
// stroke engine (reader). Values are kept raw; the engine validates them.
type Palette struct {
	values   map[string]string
	mu       sync.RWMutex
	OnChange func(key, value string)
}

var _ draw.Config = (*Palette)(nil)

func NewPalette() *Palette {
	return &Palette{
		values: map[string]string{
			draw.KeyTool:  string(draw.DefaultTool),
			draw.KeyColor: draw.DefaultColor,
			draw.KeyWidth: strconv.Itoa(draw.DefaultWidth),
		},
	}
}

// Lookup implements draw.Config.
func (p *Palette) Lookup(key string) (string, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	v, ok := p.values[key]
	return v, ok
}

func (p *Palette) SetTool(t draw.Tool) { p.set(draw.KeyTool, string(t)) }
func (p *Palette) SetColor(c string)   { p.set(draw.KeyColor, c) }
func (p *Palette) SetWidth(w int)      { p.set(draw.KeyWidth, strconv.Itoa(w)) }

// Set stores a raw value, for hosts that hand over strings as-is.
func (p *Palette) Set(key, value string) { p.set(key, value) }

// Unset removes a key so the engine falls back to its default.
func (p *Palette) Unset(key string) {
	p.mu.Lock()
	delete(p.values, key)
	p.mu.Unlock()
	if p.OnChange != nil {
		p.OnChange(key, "")
	}
}

// Settings returns the palette as the engine would resolve it right now.
func (p *Palette) Settings() draw.Settings {
	return draw.ResolveSettings(p)
}

func (p *Palette) set(key, value string) {
	p.mu.Lock()
	p.values[key] = value
	p.mu.Unlock()
	if p.OnChange != nil {
		p.OnChange(key, value)
	}
}

package draw

import (
	"fmt"
	"image"

	"github.com/gogpu/gg"
)

// Background is the colour a fresh or cleared surface is painted with.
var Background = gg.White

// Surface is a raster drawing surface backed by a gg context.
type Surface struct {
	id     string
	width  int
	height int
	dc     *gg.Context
}

var _ Canvas = (*Surface)(nil)

// NewSurface creates a white width x height surface identified by id.
func NewSurface(id string, width, height int) (*Surface, error) {
	if id == "" {
		return nil, fmt.Errorf("surface id is required")
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("surface %s: invalid size %dx%d", id, width, height)
	}

	dc := gg.NewContext(width, height)
	dc.SetLineCap(gg.LineCapRound)
	dc.SetLineJoin(gg.LineJoinRound)
	dc.ClearWithColor(Background)

	return &Surface{id: id, width: width, height: height, dc: dc}, nil
}

func (s *Surface) ID() string  { return s.id }
func (s *Surface) Width() int  { return s.width }
func (s *Surface) Height() int { return s.height }

// MoveTo begins a new path at (x, y), discarding any unstroked path.
func (s *Surface) MoveTo(x, y float64) {
	s.dc.ClearPath()
	s.dc.MoveTo(x, y)
}

func (s *Surface) LineTo(x, y float64) {
	s.dc.LineTo(x, y)
}

func (s *Surface) SetHexColor(hex string) {
	s.dc.SetHexColor(hex)
}

func (s *Surface) SetLineWidth(width float64) {
	s.dc.SetLineWidth(width)
}

// Stroke paints the current path into the pixel buffer and clears it.
func (s *Surface) Stroke() error {
	if err := s.dc.Stroke(); err != nil {
		return fmt.Errorf("surface %s: stroke: %w", s.id, err)
	}
	return nil
}

// Image returns a snapshot of the pixel buffer.
func (s *Surface) Image() image.Image {
	return s.dc.Image()
}

// Clear repaints the whole surface with the background colour.
func (s *Surface) Clear() {
	s.dc.ClearPath()
	s.dc.ClearWithColor(Background)
}

// Close releases the gg context. The surface must not be used afterwards.
func (s *Surface) Close() error {
	return s.dc.Close()
}

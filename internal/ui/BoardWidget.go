package ui

import (
	"fmt"
	"image/color"

	"ChronoDraw/internal/draw"
	"ChronoDraw/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"github.com/sirupsen/logrus"
)

// BoardWidget hosts a drawing surface and forwards pointer events to the
// stroke engine.
type BoardWidget struct {
	widget.BaseWidget
	engine    *draw.Engine
	surfaces  *state.Registry
	surfaceID string
	ready     func()
	image     *canvas.Image
	statusBar *widget.Label
	log       *logrus.Entry
}

var _ fyne.Widget = (*BoardWidget)(nil)
var _ fyne.Draggable = (*BoardWidget)(nil)
var _ desktop.Mouseable = (*BoardWidget)(nil)
var _ desktop.Hoverable = (*BoardWidget)(nil)

// NewBoardWidget creates the view for the surface registered under
// surfaceID. The engine is mounted now if the surface exists, otherwise
// when the widget is first rendered.
func NewBoardWidget(engine *draw.Engine, surfaces *state.Registry, surfaceID string) *BoardWidget {
	b := &BoardWidget{
		engine:    engine,
		surfaces:  surfaces,
		surfaceID: surfaceID,
		statusBar: widget.NewLabel("Ready"),
		log:       logrus.WithField("surface_id", surfaceID),
	}
	b.ready = draw.Mount(engine, surfaces, surfaceID)
	b.ExtendBaseWidget(b)
	return b
}

// StatusBar returns the label the board reports to.
func (b *BoardWidget) StatusBar() *widget.Label {
	return b.statusBar
}

func (b *BoardWidget) SetStatus(text string) {
	b.statusBar.SetText(text)
}

// Clear wipes the surface back to the background colour.
func (b *BoardWidget) Clear() {
	s, ok := b.surfaces.Surface(b.surfaceID)
	if !ok {
		return
	}
	s.Clear()
	b.log.Info("Canvas cleared")
	b.SetStatus("Canvas cleared")
	b.repaint()
}

func (b *BoardWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	b.engine.OnPointerDown(toPoint(e.Position))
}

func (b *BoardWidget) MouseUp(e *desktop.MouseEvent) {
	b.engine.OnPointerUp()
}

func (b *BoardWidget) MouseMoved(e *desktop.MouseEvent) {
	b.move(e.Position)
}

func (b *BoardWidget) Dragged(e *fyne.DragEvent) {
	// Drags keep reporting once the pointer has left the widget.
	if !b.inside(e.Position) {
		b.engine.OnPointerLeave()
		return
	}
	b.move(e.Position)
}

func (b *BoardWidget) DragEnd() {
	b.engine.OnPointerUp()
}

func (b *BoardWidget) MouseIn(*desktop.MouseEvent) {}

func (b *BoardWidget) MouseOut() {
	b.engine.OnPointerLeave()
}

func (b *BoardWidget) move(pos fyne.Position) {
	before := b.engine.Segments()
	b.engine.OnPointerMove(toPoint(pos))
	if b.engine.Segments() != before {
		b.repaint()
	}
}

func (b *BoardWidget) inside(pos fyne.Position) bool {
	s, ok := b.surfaces.Surface(b.surfaceID)
	if !ok {
		return false
	}
	return pos.X >= 0 && pos.Y >= 0 && pos.X < float32(s.Width()) && pos.Y < float32(s.Height())
}

func (b *BoardWidget) repaint() {
	if b.image == nil {
		return
	}
	s, ok := b.surfaces.Surface(b.surfaceID)
	if !ok {
		return
	}
	b.image.Image = s.Image()
	b.image.Refresh()
}

func toPoint(p fyne.Position) draw.Point {
	return draw.Pt(float64(p.X), float64(p.Y))
}

// CreateRenderer is the view-ready signal: the first render completes a
// deferred mount.
func (b *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	b.ready()

	r := &boardWidgetRenderer{board: b}
	r.border = canvas.NewRectangle(color.Transparent)
	r.border.StrokeColor = color.Black
	r.border.StrokeWidth = 2

	if s, ok := b.surfaces.Surface(b.surfaceID); ok {
		b.image = canvas.NewImageFromImage(s.Image())
		r.size = fyne.NewSize(float32(s.Width()), float32(s.Height()))
		b.SetStatus(fmt.Sprintf("Canvas %dx%d", s.Width(), s.Height()))
	} else {
		b.image = canvas.NewImageFromImage(nil)
		r.size = fyne.NewSize(300, 300)
		b.log.Warn("No surface to display")
	}
	b.image.FillMode = canvas.ImageFillOriginal
	b.image.ScaleMode = canvas.ImageScalePixels
	r.image = b.image
	return r
}

type boardWidgetRenderer struct {
	board  *BoardWidget
	image  *canvas.Image
	border *canvas.Rectangle
	size   fyne.Size
}

func (r *boardWidgetRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.image, r.border}
}

func (r *boardWidgetRenderer) Layout(fyne.Size) {
	r.image.Move(fyne.NewPos(0, 0))
	r.image.Resize(r.size)
	r.border.Move(fyne.NewPos(0, 0))
	r.border.Resize(r.size)
}

func (r *boardWidgetRenderer) MinSize() fyne.Size {
	return r.size
}

func (r *boardWidgetRenderer) Refresh() {
	r.image.Refresh()
	canvas.Refresh(r.board)
}

func (r *boardWidgetRenderer) Destroy() {}

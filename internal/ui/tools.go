package ui

import (
	"image/color"

	"ChronoDraw/internal/draw"
	"ChronoDraw/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/gogpu/gg"
)

var toolLabels = map[draw.Tool]string{
	draw.ToolPencil:    "✏️",
	draw.ToolBrush:     "🖌️",
	draw.ToolEraser:    "🧽",
	draw.ToolLine:      "📏",
	draw.ToolRectangle: "⬛",
	draw.ToolCircle:    "⭕",
}

// --- Custom Widget for Color Swatches ---
type colorSwatch struct {
	widget.BaseWidget
	Hex      string
	OnTapped func(hex string)
}

func newColorSwatch(hex string, tapped func(string)) *colorSwatch {
	s := &colorSwatch{Hex: hex, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(gg.Hex(s.Hex).Color())
	rect.SetMinSize(fyne.NewSize(30, 30))
	rect.CornerRadius = 4

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 200}
	border.StrokeWidth = 1
	border.CornerRadius = 4

	return widget.NewSimpleRenderer(container.NewStack(rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Hex)
	}
}

// NewToolbar builds the sidebar that writes into the palette.
func NewToolbar(board *BoardWidget, palette *state.Palette) fyne.CanvasObject {
	// --- Tools ---
	toolButtons := make(map[draw.Tool]*widget.Button, len(draw.Tools))
	highlight := func(active draw.Tool) {
		for t, btn := range toolButtons {
			if t == active {
				btn.Importance = widget.HighImportance
			} else {
				btn.Importance = widget.MediumImportance
			}
			btn.Refresh()
		}
	}
	toolRow := container.NewHBox()
	for _, t := range draw.Tools {
		t := t
		btn := widget.NewButton(toolLabels[t], func() {
			palette.SetTool(t)
			highlight(t)
		})
		toolButtons[t] = btn
		toolRow.Add(btn)
	}
	highlight(palette.Settings().Tool)

	// --- Color Palette ---
	colorRow := container.NewHBox()
	for _, hex := range state.Colors {
		colorRow.Add(newColorSwatch(hex, palette.SetColor))
	}

	// --- Brush Size ---
	sizeRow := container.NewHBox()
	for _, size := range state.BrushSizes {
		size := size
		sizeRow.Add(widget.NewButton(size.Label, func() {
			palette.SetWidth(size.Width)
		}))
	}

	clearBtn := widget.NewButton("Clear", board.Clear)
	clearBtn.Importance = widget.DangerImportance

	return container.NewVBox(
		widget.NewLabelWithStyle("Tools", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		toolRow,
		widget.NewLabelWithStyle("Colors", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		colorRow,
		widget.NewLabelWithStyle("Brush Size", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		sizeRow,
		widget.NewSeparator(),
		clearBtn,
	)
}

package ui

import (
	"ChronoDraw/internal/config"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// RunApp opens the drawing window and blocks until it is closed. build runs
// once the fyne app exists and returns the board and its toolbar.
func RunApp(cfg config.Config, build func() (*BoardWidget, fyne.CanvasObject)) {
	myApp := app.New()
	myWindow := myApp.NewWindow(cfg.Title)
	myWindow.Resize(fyne.NewSize(float32(cfg.Width)+260, float32(cfg.Height)+120))

	board, toolbar := build()

	header := container.NewHBox(
		widget.NewLabelWithStyle("🎨 "+cfg.Title, fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
	)
	sidebar := container.NewPadded(toolbar)
	content := container.NewBorder(header, board.StatusBar(), sidebar, nil, container.NewPadded(board))

	myWindow.SetContent(content)
	myWindow.ShowAndRun()
}

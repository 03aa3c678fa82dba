package main

import (
	"os"

	"ChronoDraw/internal/config"
	"ChronoDraw/internal/draw"
	"ChronoDraw/internal/state"
	"ChronoDraw/internal/ui"

	"fyne.io/fyne/v2"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		logrus.Fatalf("Invalid configuration: %v", err)
	}
	logrus.SetLevel(cfg.LogLevel)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	surfaces := state.NewRegistry()
	palette := state.NewPalette()
	palette.OnChange = func(key, value string) {
		logrus.WithFields(logrus.Fields{"key": key, "value": value}).Debug("palette changed")
	}

	defer surfaces.Remove(config.SurfaceID)

	logrus.WithFields(logrus.Fields{
		"width":  cfg.Width,
		"height": cfg.Height,
	}).Info("Starting Mac Draw")

	ui.RunApp(cfg, func() (*ui.BoardWidget, fyne.CanvasObject) {
		// The engine exists before its surface; the board mounts it.
		engine := draw.New(palette)
		board := ui.NewBoardWidget(engine, surfaces, config.SurfaceID)

		if _, err := surfaces.Create(config.SurfaceID, cfg.Width, cfg.Height); err != nil {
			logrus.WithField("event", "create surface").Fatal(err)
		}
		return board, ui.NewToolbar(board, palette)
	})
}

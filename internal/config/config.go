package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const (
	EnvWidth    = "CHRONODRAW_WIDTH"
	EnvHeight   = "CHRONODRAW_HEIGHT"
	EnvLogLevel = "CHRONODRAW_LOG_LEVEL"
	EnvTitle    = "CHRONODRAW_TITLE"

	// SurfaceID is the identifier the board view registers its surface under.
	SurfaceID = "drawingCanvas"
)

// Config holds the process settings for the drawing app.
type Config struct {
	Width    int
	Height   int
	LogLevel logrus.Level
	Title    string
}

func Default() Config {
	return Config{
		Width:    600,
		Height:   400,
		LogLevel: logrus.InfoLevel,
		Title:    "Mac Draw",
	}
}

// Load reads an optional .env file, then the environment, then args.
// Flags win over the environment.
func Load(args []string) (Config, error) {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("No .env file found")
	}
	return parse(args, os.LookupEnv)
}

func parse(args []string, getenv func(string) (string, bool)) (Config, error) {
	cfg := Default()
	level := cfg.LogLevel.String()

	if v, ok := getenv(EnvWidth); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("parse %s: %w", EnvWidth, err)
		}
		cfg.Width = n
	}
	if v, ok := getenv(EnvHeight); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("parse %s: %w", EnvHeight, err)
		}
		cfg.Height = n
	}
	if v, ok := getenv(EnvLogLevel); ok {
		level = v
	}
	if v, ok := getenv(EnvTitle); ok && v != "" {
		cfg.Title = v
	}

	fs := flag.NewFlagSet("chronodraw", flag.ContinueOnError)
	fs.IntVar(&cfg.Width, "width", cfg.Width, "Drawing surface width in pixels")
	fs.IntVar(&cfg.Height, "height", cfg.Height, "Drawing surface height in pixels")
	fs.StringVar(&level, "loglevel", level, "Set the logging level: debug, info, warn, error")
	fs.StringVar(&cfg.Title, "title", cfg.Title, "Window title")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return cfg, fmt.Errorf("invalid log level: %w", err)
	}
	cfg.LogLevel = lvl

	if cfg.Width <= 0 || cfg.Height <= 0 {
		return cfg, fmt.Errorf("invalid surface size %dx%d", cfg.Width, cfg.Height)
	}
	return cfg, nil
}

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"student-roster/internal/logger"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

const (
	AppName = "Student Management System"
	AppID   = "com.example.student-roster"

	DefaultWidth  = float32(600)
	DefaultHeight = float32(400)
)

// Config holds the runtime settings of the application. Nothing here
// describes roster data; records only live for the lifetime of the process.
type Config struct {
	LogLevel  zerolog.Level
	LogFormat string

	WindowWidth  float32
	WindowHeight float32
}

// Load reads an optional .env file from the working directory, then the
// process environment. Variables already set in the environment win.
func Load() (*Config, error) {
	return LoadFile(".env")
}

// LoadFile is Load with an explicit dotenv path. A missing file is not an error.
func LoadFile(path string) (*Config, error) {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	level, err := logger.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		return nil, fmt.Errorf("LOG_LEVEL: %w", err)
	}

	format := strings.ToLower(strings.TrimSpace(os.Getenv("LOG_FORMAT")))
	switch format {
	case "":
		format = "console"
	case "console", "json":
	default:
		return nil, fmt.Errorf("LOG_FORMAT: unsupported format %q", format)
	}

	return &Config{
		LogLevel:     level,
		LogFormat:    format,
		WindowWidth:  DefaultWidth,
		WindowHeight: DefaultHeight,
	}, nil
}

package logger

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// Logger is the component-tagged logging surface shared by the application.
type Logger interface {
	Debug(component, message string, fields map[string]interface{})
	Info(component, message string, fields map[string]interface{})
	Warning(component, message string, fields map[string]interface{})
	Error(component string, err error, fields map[string]interface{})
}

// ParseLevel maps the LOG_LEVEL values accepted by the application onto
// zerolog levels. An empty value selects info.
func ParseLevel(value string) (zerolog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "":
		return zerolog.InfoLevel, nil
	case "debug":
		return zerolog.DebugLevel, nil
	case "info":
		return zerolog.InfoLevel, nil
	case "warn", "warning":
		return zerolog.WarnLevel, nil
	case "error":
		return zerolog.ErrorLevel, nil
	default:
		return zerolog.InfoLevel, fmt.Errorf("unknown log level %q", value)
	}
}

// Nop discards everything. Used where no logger has been wired.
type Nop struct{}

func (Nop) Debug(string, string, map[string]interface{})   {}
func (Nop) Info(string, string, map[string]interface{})    {}
func (Nop) Warning(string, string, map[string]interface{}) {}
func (Nop) Error(string, error, map[string]interface{})    {}

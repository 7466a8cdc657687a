package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// ZerologAdapter implements Logger on top of zerolog. Every entry carries a
// "component" field naming the part of the application that wrote it, so
// callers must not pass their own "component" in fields.
type ZerologAdapter struct {
	logger zerolog.Logger
}

// NewZerolog writes timestamped JSON lines at or above level to writer.
func NewZerolog(writer io.Writer, level zerolog.Level) *ZerologAdapter {
	logger := zerolog.New(writer).
		Level(level).
		With().
		Timestamp().
		Logger()

	return &ZerologAdapter{logger: logger}
}

// NewConsoleLogger writes human-readable lines to stdout.
func NewConsoleLogger(level zerolog.Level) *ZerologAdapter {
	consoleWriter := zerolog.ConsoleWriter{Out: os.Stdout}
	return NewZerolog(consoleWriter, level)
}

// New picks the console writer for human use and plain JSON otherwise.
func New(format string, level zerolog.Level) *ZerologAdapter {
	if format == "json" {
		return NewZerolog(os.Stdout, level)
	}
	return NewConsoleLogger(level)
}

func (z *ZerologAdapter) Info(component, message string, fields map[string]interface{}) {
	event := z.logger.Info().Str("component", component)
	for k, v := range fields {
		event = event.Interface(k, v)
	}
	event.Msg(message)
}

func (z *ZerologAdapter) Error(component string, err error, fields map[string]interface{}) {
	event := z.logger.Error().Str("component", component).Err(err)
	for k, v := range fields {
		event = event.Interface(k, v)
	}
	// Error carries no message of its own; the error text is the message.
	event.Msg("operation failed")
}

func (z *ZerologAdapter) Warning(component, message string, fields map[string]interface{}) {
	event := z.logger.Warn().Str("component", component)
	for k, v := range fields {
		event = event.Interface(k, v)
	}
	event.Msg(message)
}

func (z *ZerologAdapter) Debug(component, message string, fields map[string]interface{}) {
	event := z.logger.Debug().Str("component", component)
	for k, v := range fields {
		event = event.Interface(k, v)
	}
	event.Msg(message)
}

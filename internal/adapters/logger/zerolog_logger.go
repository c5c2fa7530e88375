package logger

import (
	"io"

	"github.com/baditaflorin/go_lcs_similarity/internal/ports"
	"github.com/rs/zerolog"
)

// ZerologLogger adapts a zerolog.Logger to the ports.Logger interface.
type ZerologLogger struct {
	logger zerolog.Logger
	closer io.Closer
}

// NewZerologLogger writes JSON lines to w. When w is an io.Closer, Close
// closes it.
func NewZerologLogger(w io.Writer, level zerolog.Level) ports.Logger {
	zl := &ZerologLogger{
		logger: zerolog.New(w).Level(level).With().Timestamp().Logger(),
	}
	if c, ok := w.(io.Closer); ok {
		zl.closer = c
	}
	return zl
}

// Debug logs a debug message.
func (z *ZerologLogger) Debug(msg string, keysAndValues ...interface{}) {
	z.logger.Debug().Fields(keysAndValues).Msg(msg)
}

// Info logs an info message.
func (z *ZerologLogger) Info(msg string, keysAndValues ...interface{}) {
	z.logger.Info().Fields(keysAndValues).Msg(msg)
}

// Warn logs a warning message.
func (z *ZerologLogger) Warn(msg string, keysAndValues ...interface{}) {
	z.logger.Warn().Fields(keysAndValues).Msg(msg)
}

// Error logs an error message.
func (z *ZerologLogger) Error(msg string, keysAndValues ...interface{}) {
	z.logger.Error().Fields(keysAndValues).Msg(msg)
}

// Close releases the underlying writer, if it owns one.
func (z *ZerologLogger) Close() error {
	if z.closer == nil {
		return nil
	}
	return z.closer.Close()
}

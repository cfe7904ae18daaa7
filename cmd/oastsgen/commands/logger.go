package commands

import (
	"io"

	"github.com/rs/zerolog"

	"github.com/erraggy/oastsgen/generator"
)

// zerologAdapter implements generator.Logger on top of zerolog.
type zerologAdapter struct {
	logger zerolog.Logger
}

// newLogger returns a console logger writing to w. Verbose selects debug
// level, otherwise only warnings and errors are shown.
func newLogger(w io.Writer, verbose bool) generator.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	output := zerolog.ConsoleWriter{Out: w, NoColor: true, TimeFormat: "15:04:05"}
	return &zerologAdapter{logger: zerolog.New(output).Level(level).With().Timestamp().Logger()}
}

func (z *zerologAdapter) Debug(msg string, attrs ...any) { z.logger.Debug().Fields(attrs).Msg(msg) }
func (z *zerologAdapter) Info(msg string, attrs ...any)  { z.logger.Info().Fields(attrs).Msg(msg) }
func (z *zerologAdapter) Warn(msg string, attrs ...any)  { z.logger.Warn().Fields(attrs).Msg(msg) }
func (z *zerologAdapter) Error(msg string, attrs ...any) { z.logger.Error().Fields(attrs).Msg(msg) }

func (z *zerologAdapter) With(attrs ...any) generator.Logger {
	return &zerologAdapter{logger: z.logger.With().Fields(attrs).Logger()}
}

var _ generator.Logger = (*zerologAdapter)(nil)

package console

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// Logger writes human readable log lines through charmbracelet/log.
type Logger struct {
	logger *log.Logger
}

type Params struct {
	Debug bool
	// Output defaults to stderr.
	Output io.Writer
	// Plain drops timestamps, for golden output in tests.
	Plain bool
}

func New(p Params) *Logger {
	level := log.InfoLevel
	if p.Debug {
		level = log.DebugLevel
	}
	out := p.Output
	if out == nil {
		out = os.Stderr
	}
	return &Logger{logger: log.NewWithOptions(out, log.Options{
		ReportTimestamp: !p.Plain,
		Level:           level,
		Prefix:          "caseview",
	})}
}

func (c *Logger) Debug(message string, keyvals ...any) { c.logger.Debug(message, keyvals...) }
func (c *Logger) Info(message string, keyvals ...any)  { c.logger.Info(message, keyvals...) }
func (c *Logger) Warn(message string, keyvals ...any)  { c.logger.Warn(message, keyvals...) }
func (c *Logger) Error(message string, keyvals ...any) { c.logger.Error(message, keyvals...) }

package logger_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"caseview/internal/logger"
	"caseview/internal/logger/console"
)

type recorder struct{ lines []string }

func (r *recorder) Debug(m string, _ ...any) { r.lines = append(r.lines, "debug "+m) }
func (r *recorder) Info(m string, _ ...any)  { r.lines = append(r.lines, "info "+m) }
func (r *recorder) Warn(m string, _ ...any)  { r.lines = append(r.lines, "warn "+m) }
func (r *recorder) Error(m string, _ ...any) { r.lines = append(r.lines, "error "+m) }

func TestDispatch(t *testing.T) {
	defer logger.Init()

	logger.Init()
	logger.Info("dropped")

	a, b := &recorder{}, &recorder{}
	logger.Init(a, b)
	logger.Debug("d")
	logger.Warn("w", "k", 1)
	logger.Error("e")

	want := []string{"debug d", "warn w", "error e"}
	assert.Equal(t, want, a.lines)
	assert.Equal(t, want, b.lines)
}

func TestConsoleLevels(t *testing.T) {
	var buf bytes.Buffer
	c := console.New(console.Params{Output: &buf, Plain: true})
	c.Debug("hidden")
	c.Info("loaded", "objects", 3)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "loaded")
	assert.Contains(t, out, "objects=3")

	buf.Reset()
	console.New(console.Params{Output: &buf, Plain: true, Debug: true}).Debug("shown")
	assert.Contains(t, buf.String(), "shown")

	buf.Reset()
	c.Error("failed to load evidence", "path", "broken.json")
	assert.Contains(t, buf.String(), "ERRO")
	assert.Contains(t, buf.String(), "path=broken.json")
}

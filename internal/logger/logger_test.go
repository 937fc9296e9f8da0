package logger

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

// captureOutput points the default logger at a buffer and returns a restore
// function. Init runs first at debug level so every helper level passes the
// global filter.
func captureOutput() (*bytes.Buffer, func()) {
	Init("debug", "json")
	saved := defaultLogger
	var buf bytes.Buffer
	defaultLogger = zerolog.New(&buf)
	return &buf, func() { defaultLogger = saved }
}

func TestGetSupportsChainedEvents(t *testing.T) {
	buf, restore := captureOutput()
	defer restore()

	if Get() == nil {
		t.Fatal("Expected non-nil logger")
	}
	Get().Info().Str("component", "test").Msg("ready")

	out := buf.String()
	if !strings.Contains(out, `"message":"ready"`) {
		t.Errorf("Expected message in output, got %q", out)
	}
	if !strings.Contains(out, `"component":"test"`) {
		t.Errorf("Expected component field in output, got %q", out)
	}
}

func TestHelpersLogAtTheirLevels(t *testing.T) {
	buf, restore := captureOutput()
	defer restore()

	Info("info line")
	Warn("warn line")
	Error("error line", errors.New("boom"))
	Debug("debug line")

	out := buf.String()
	for _, want := range []string{
		`"level":"info"`,
		`"level":"warn"`,
		`"level":"error"`,
		`"level":"debug"`,
		"info line",
		"warn line",
		"error line",
		"debug line",
		`"error":"boom"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %s in output, got %q", want, out)
		}
	}
}

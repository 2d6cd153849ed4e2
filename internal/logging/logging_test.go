package logging

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNewLevels(t *testing.T) {
	tests := []struct {
		name    string
		verbose bool
		logFunc func(*log.Logger)
		wantLog bool
	}{
		{"info at info level", false, func(l *log.Logger) { l.Info("test") }, true},
		{"debug at info level", false, func(l *log.Logger) { l.Debug("test") }, false},
		{"debug at debug level", true, func(l *log.Logger) { l.Debug("test") }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.logFunc(New(&buf, Level(tt.verbose)))
			if got := buf.Len() > 0; got != tt.wantLog {
				t.Errorf("log output failed: expected %v, got %v", tt.wantLog, got)
			}
		})
	}
}

func TestContextRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, log.InfoLevel)
	ctx := WithLogger(context.Background(), l)

	if FromContext(ctx) != l {
		t.Error("FromContext did not return the attached logger")
	}
	if FromContext(context.Background()) != log.Default() {
		t.Error("FromContext without logger should return log.Default()")
	}
}

func TestProgressDone(t *testing.T) {
	var buf bytes.Buffer
	p := StartProgress(New(&buf, log.InfoLevel))
	p.Done("Saved plan")

	out := buf.String()
	if !strings.Contains(out, "Saved plan (") {
		t.Errorf("Progress output failed: got %q", out)
	}
}

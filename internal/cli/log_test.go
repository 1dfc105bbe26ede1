package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/jebreimo/HexPic/pkg/observability"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name    string
		level   log.Level
		logFunc func(*log.Logger)
		wantLog bool
	}{
		{"info at info level", log.InfoLevel, func(l *log.Logger) { l.Info("read input") }, true},
		{"debug at info level", log.InfoLevel, func(l *log.Logger) { l.Debug("measured glyphs") }, false},
		{"debug at debug level", log.DebugLevel, func(l *log.Logger) { l.Debug("measured glyphs") }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.logFunc(newLogger(&buf, tt.level))
			if got := buf.Len() > 0; got != tt.wantLog {
				t.Errorf("got log output = %v, want %v", got, tt.wantLog)
			}
		})
	}
}

func TestProgressDone(t *testing.T) {
	var buf bytes.Buffer
	newProgress(newLogger(&buf, log.InfoLevel)).done("Rendered 64 bytes from 0x10")

	out := buf.String()
	if !strings.Contains(out, "Rendered 64 bytes from 0x10 (") || !strings.Contains(out, "s)") {
		t.Errorf("progress output %q missing message or duration", out)
	}
}

func TestLoggerContext(t *testing.T) {
	if loggerFromContext(context.Background()) != log.Default() {
		t.Error("loggerFromContext without a logger should return log.Default()")
	}
	l := newLogger(&bytes.Buffer{}, log.InfoLevel)
	if loggerFromContext(withLogger(context.Background(), l)) != l {
		t.Error("loggerFromContext should return the attached logger")
	}
}

func TestVerboseFlag(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	defer observability.Reset()

	tests := []struct {
		name      string
		args      []string
		wantLevel log.Level
		wantHooks bool
	}{
		{"default", []string{"cache", "path"}, log.InfoLevel, false},
		{"verbose", []string{"-v", "cache", "path"}, log.DebugLevel, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			observability.Reset()
			c := New(&bytes.Buffer{}, LogInfo)
			root := c.RootCommand()
			root.SetArgs(tt.args)
			if err := root.ExecuteContext(context.Background()); err != nil {
				t.Fatalf("execute: %v", err)
			}
			if got := c.Logger.GetLevel(); got != tt.wantLevel {
				t.Errorf("level = %v, want %v", got, tt.wantLevel)
			}
			_, isLog := observability.Pipeline().(*observability.LogHooks)
			if isLog != tt.wantHooks {
				t.Errorf("log hooks installed = %v, want %v", isLog, tt.wantHooks)
			}
		})
	}
}

package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/user/framereel/pkg/ports"
)

func TestConsoleLogger_LevelFiltering(t *testing.T) {
	var out, errOut bytes.Buffer
	log := NewWriters(ports.LevelWarn, &out, &errOut)

	log.Debug("debug %d", 1)
	log.Info("info %d", 2)
	log.Warn("warn %d", 3)
	log.Error("error %d", 4)

	if out.Len() != 0 {
		t.Errorf("expected no stdout output at warn level, got %q", out.String())
	}
	got := errOut.String()
	if !strings.Contains(got, "warn 3") || !strings.Contains(got, "error 4") {
		t.Errorf("expected warn and error on stderr, got %q", got)
	}
}

func TestConsoleLogger_Streams(t *testing.T) {
	var out, errOut bytes.Buffer
	log := NewWriters(ports.LevelDebug, &out, &errOut)

	log.Info("hello %s", "world")
	log.Warn("careful")

	if strings.TrimSpace(out.String()) != "hello world" {
		t.Errorf("unexpected stdout: %q", out.String())
	}
	if strings.TrimSpace(errOut.String()) != "careful" {
		t.Errorf("unexpected stderr: %q", errOut.String())
	}
}

func TestConsoleLogger_WithComponent(t *testing.T) {
	var out, errOut bytes.Buffer
	log := NewWriters(ports.LevelInfo, &out, &errOut).WithComponent("scan")

	log.Info("found %d", 3)

	if strings.TrimSpace(out.String()) != "[scan] found 3" {
		t.Errorf("unexpected output: %q", out.String())
	}
}

func TestNoopLogger(t *testing.T) {
	log := NewNoop()
	log.Info("ignored")
	if log.WithComponent("x") != log {
		t.Error("expected WithComponent to return the same logger")
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want ports.LogLevel
	}{
		{"debug", ports.LevelDebug},
		{"info", ports.LevelInfo},
		{"warn", ports.LevelWarn},
		{"error", ports.LevelError},
		{"quiet", ports.LevelQuiet},
		{"bogus", ports.LevelInfo},
	}
	for _, tt := range tests {
		if got := ports.ParseLogLevel(tt.in); got != tt.want {
			t.Errorf("ParseLogLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

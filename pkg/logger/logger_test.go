package logger

import (
	"bytes"
	"log"
	"strings"
	"testing"
)

func TestInitParsesLevels(t *testing.T) {
	var buf bytes.Buffer
	orig := logger
	logger = log.New(&buf, "", 0)
	defer func() { logger = orig }()

	Init("WARN")
	Infof("quiet")
	Warnf("loud")
	if strings.Contains(buf.String(), "quiet") {
		t.Fatalf("info should be suppressed after Init(\"WARN\")")
	}
	if !strings.Contains(buf.String(), "loud") {
		t.Fatalf("warn missing after Init(\"WARN\"): %q", buf.String())
	}

	// unknown input falls back to info
	Init("nonsense")
	buf.Reset()
	Infof("back")
	if !strings.Contains(buf.String(), "back") {
		t.Fatalf("unknown level should default to info, got: %q", buf.String())
	}
}

func TestLevelFiltering(t *testing.T) {
	// capture output by replacing package logger
	var buf bytes.Buffer
	orig := logger
	logger = log.New(&buf, "", 0)
	defer func() { logger = orig }()

	Init("warn")
	Debugf("debug-msg")
	Infof("info-msg")
	Warnf("warn-msg")
	Errorf("error-msg")

	out := buf.String()
	if strings.Contains(out, "debug-msg") {
		t.Fatalf("debug messages should be suppressed at warn level")
	}
	if strings.Contains(out, "info-msg") {
		t.Fatalf("info messages should be suppressed at warn level")
	}
	if !strings.Contains(out, "warn-msg") {
		t.Fatalf("warn message missing: %q", out)
	}
	if !strings.Contains(out, "error-msg") {
		t.Fatalf("error message missing: %q", out)
	}

	// at info level Info should appear again
	Init("info")
	buf.Reset()
	Info("hello")
	if !strings.Contains(buf.String(), "hello") {
		t.Fatalf("Info expected at info level, got: %q", buf.String())
	}
}

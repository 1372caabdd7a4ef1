package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name     string
		level    string
		logLevel string
	}{
		{name: "debug", level: "debug", logLevel: "DEBUG"},
		{name: "info", level: "info", logLevel: "INFO"},
		{name: "warn", level: "warn", logLevel: "WARN"},
		{name: "error", level: "error", logLevel: "ERROR"},
		{name: "invalid defaults to info", level: "invalid", logLevel: "INFO"},
		{name: "empty defaults to info", level: "", logLevel: "INFO"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := New(tt.level)
			if log == nil {
				t.Fatal("New() returned nil")
			}
			if got := log.GetLevel().String(); got != tt.logLevel {
				t.Errorf("New(%q) level = %q, want %q", tt.level, got, tt.logLevel)
			}
		})
	}
}

func TestJSONLayout(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("debug", &buf).WithModule("checker").WithError(errors.New("boom")).WithField("pair", "#000/#fff")
	log.Warn("announce failed")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v (%q)", err, buf.String())
	}
	for key, want := range map[string]string{
		"level":   "warning",
		"message": "announce failed",
		"module":  "checker",
		"error":   "boom",
		"pair":    "#000/#fff",
	} {
		if got, _ := entry[key].(string); got != want {
			t.Fatalf("%s = %q, want %q (entry=%v)", key, got, want, entry)
		}
	}
	if _, ok := entry["timestamp"]; !ok {
		t.Fatalf("timestamp missing: %v", entry)
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("warn", &buf)
	log.Info("hidden")
	if buf.Len() != 0 {
		t.Fatalf("info should be filtered at warn level, got %q", buf.String())
	}
	if !ValidLevel("WARNING") || ValidLevel("trace") {
		t.Fatal("ValidLevel mismatch")
	}
}

package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name  string
		level string
		want  logrus.Level
	}{
		{"debug", "debug", logrus.DebugLevel},
		{"warn", "warn", logrus.WarnLevel},
		{"unknown falls back to info", "loud", logrus.InfoLevel},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			l, ok := NewLogger(tc.level, "dev").(*logrus.Logger)
			if !ok {
				t.Fatal("expected a *logrus.Logger")
			}
			if l.GetLevel() != tc.want {
				t.Errorf("expected level %v, got %v", tc.want, l.GetLevel())
			}
		})
	}
}

func TestNewLoggerFieldNames(t *testing.T) {
	l := NewLogger("info", "dev").(*logrus.Logger)
	var buf bytes.Buffer
	l.SetOutput(&buf)

	l.WithField("athlete_id", "abc").Info("hello")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected JSON output, got %q: %v", buf.String(), err)
	}
	for _, key := range []string{"timestamp", "message", "level", "athlete_id"} {
		if _, ok := entry[key]; !ok {
			t.Errorf("expected key %q in %v", key, entry)
		}
	}
}

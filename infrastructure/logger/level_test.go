package logger

import (
	"strings"
	"sync"
	"testing"
)

// TestLevelFromString checks that every supported level name parses back to
// a level whose tag appears in log output.
func TestLevelFromString(t *testing.T) {
	tests := []struct {
		name     string
		expected Level
	}{
		{"trace", LevelTrace},
		{"debug", LevelDebug},
		{"info", LevelInfo},
		{"warn", LevelWarn},
		{"error", LevelError},
		{"critical", LevelCritical},
		{"off", LevelOff},
	}

	if len(tests) != len(SupportedLevels()) {
		t.Fatalf("test table covers %d levels, SupportedLevels lists %d",
			len(tests), len(SupportedLevels()))
	}

	for _, test := range tests {
		level, ok := LevelFromString(test.name)
		if !ok || level != test.expected {
			t.Errorf("LevelFromString(%q): got %v, %v, want %v, true",
				test.name, level, ok, test.expected)
		}
	}

	if _, ok := LevelFromString("verbose"); ok {
		t.Error("LevelFromString accepted an unknown level name")
	}
}

// TestLoggerWritesThroughBackend checks that a subsystem logger delivers a
// formatted entry to the backend's writers at or above their level.
func TestLoggerWritesThroughBackend(t *testing.T) {
	backend := NewBackend()
	writer := &recordingWriter{}
	if err := backend.AddLogWriter(writer, LevelInfo); err != nil {
		t.Fatalf("AddLogWriter: %v", err)
	}
	if err := backend.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}

	log := backend.Logger("TEST")
	log.SetLevel(LevelDebug)

	log.Debugf("filtered at the writer's level")
	log.Infof("answer is %d", 42)
	backend.Close()

	entries := writer.recorded()
	if len(entries) != 1 {
		t.Fatalf("got %d log entries, want 1: %q", len(entries), entries)
	}
	if !strings.Contains(entries[0], "[INF] TEST: answer is 42") {
		t.Errorf("unexpected log entry: %q", entries[0])
	}
}

type recordingWriter struct {
	mutex   sync.Mutex
	entries []string
}

func (w *recordingWriter) Write(p []byte) (int, error) {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	w.entries = append(w.entries, string(p))
	return len(p), nil
}

func (w *recordingWriter) Close() error {
	return nil
}

func (w *recordingWriter) recorded() []string {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	return w.entries
}

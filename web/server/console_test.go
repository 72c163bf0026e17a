package server

import (
	"bytes"
	"log"
	"strings"
	"testing"
)

func TestRenderLogger_TagsMessages(t *testing.T) {
	var buf bytes.Buffer
	logger := NewRenderLogger("default-123", log.New(&buf, "", 0))

	logger.Printf("Scanlines remaining: %d\n", 9)

	got := buf.String()
	expected := "[default-123] Scanlines remaining: 9\n"
	if got != expected {
		t.Errorf("Expected %q, got %q", expected, got)
	}
}

func TestRenderLogger_MultipleMessages(t *testing.T) {
	var buf bytes.Buffer
	logger := NewRenderLogger("r", log.New(&buf, "", 0))

	messages := []string{"Message 1", "Message 2", "Message 3"}
	for _, msg := range messages {
		logger.Printf("%s\n", msg)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != len(messages) {
		t.Fatalf("Expected %d lines, got %d: %q", len(messages), len(lines), buf.String())
	}
	for i, msg := range messages {
		if lines[i] != "[r] "+msg {
			t.Errorf("Line %d: expected %q, got %q", i, "[r] "+msg, lines[i])
		}
	}
}

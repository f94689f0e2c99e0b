package mcflog

import (
	"io"
	"log/slog"
	"testing"
)

func TestNewDefaultsToJSONOnStdout(t *testing.T) {
	l := New(Config{})
	if l == nil {
		t.Fatal("New returned nil logger")
	}
}

func TestNewTextFormat(t *testing.T) {
	l := New(Config{Format: "text", Level: "debug", Output: "stderr"})
	if l == nil {
		t.Fatal("New returned nil logger")
	}
}

func TestOrDefault(t *testing.T) {
	if OrDefault(nil) != slog.Default() {
		t.Error("OrDefault(nil) should fall back to slog.Default()")
	}

	custom := slog.New(slog.NewTextHandler(io.Discard, nil))
	if OrDefault(custom) != custom {
		t.Error("OrDefault should return the injected logger unchanged")
	}
}

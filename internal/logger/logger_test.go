package logger

import "testing"

func TestNew(t *testing.T) {
	log := New()
	if log == nil {
		t.Fatal("expected logger instance")
	}
	if !log.Enabled(nil, 0) {
		t.Fatal("info level must be enabled")
	}
}

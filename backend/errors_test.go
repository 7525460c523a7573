package backend

import (
	"errors"
	"io"
	"testing"
)

func TestErrorKinds(t *testing.T) {
	err := newError(InitializationFailure, io.EOF, "tty")

	if !errors.Is(err, ErrInitializationFailure) {
		t.Error("Expected InitializationFailure to match")
	}
	if errors.Is(err, ErrUnsupportedBackend) {
		t.Error("Expected UnsupportedBackend not to match")
	}
	if !errors.Is(err, io.EOF) {
		t.Error("Expected wrapped cause to match")
	}
	if got := err.Error(); got != "InitializationFailure: tty: EOF" {
		t.Errorf("Expected formatted message, got %q", got)
	}
}

func TestParseType(t *testing.T) {
	tests := []struct {
		in      string
		want    Type
		wantErr bool
	}{
		{"", Default, false},
		{"ANSI", Ansi, false},
		{"console", Console, false},
		{"debug", Debug, false},
		{"wasm", WebCanvas, false},
		{"ncurses", Default, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseType(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Expected error=%v, got %v", tt.wantErr, err)
			}
			if got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestWebCanvasUnsupported(t *testing.T) {
	_, err := New(Options{Type: WebCanvas})
	if !errors.Is(err, ErrUnsupportedBackend) {
		t.Errorf("Expected UnsupportedBackend outside wasm, got %v", err)
	}
}

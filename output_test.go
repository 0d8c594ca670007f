package proc

import (
	"strings"
	"testing"
)

func TestOutputSuccess(t *testing.T) {
	ok := &Output{Status: 0}
	if !ok.Success() {
		t.Error("expected Success() for status 0")
	}

	failed := &Output{Status: 1}
	if failed.Success() {
		t.Error("expected !Success() for status 1")
	}
}

func TestOutputString(t *testing.T) {
	out := &Output{Status: 2, Stdout: "so", Stderr: "se"}
	s := out.String()

	if !strings.Contains(s, "status=2") {
		t.Errorf("expected status in string, got: %s", s)
	}
	if !strings.Contains(s, `"so"`) {
		t.Errorf("expected stdout in string, got: %s", s)
	}
	if !strings.Contains(s, `"se"`) {
		t.Errorf("expected stderr in string, got: %s", s)
	}
}

func TestCaptureBuffer(t *testing.T) {
	cb := &captureBuffer{}

	n, err := cb.Write([]byte("hello "))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 6 {
		t.Errorf("expected 6 bytes written, got: %d", n)
	}

	if _, err := cb.Write([]byte("world")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cb.String() != "hello world" {
		t.Errorf("expected 'hello world', got: %s", cb.String())
	}
}

func TestMultiWriter(t *testing.T) {
	a := &captureBuffer{}
	b := &captureBuffer{}
	mw := newMultiWriter(a, b)

	if _, err := mw.Write([]byte("tee")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if a.String() != "tee" {
		t.Errorf("expected first writer to receive 'tee', got: %s", a.String())
	}
	if b.String() != "tee" {
		t.Errorf("expected second writer to receive 'tee', got: %s", b.String())
	}
}

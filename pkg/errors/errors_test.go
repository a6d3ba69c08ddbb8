package errors

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeNotFound, "document not found")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if err.Code != ErrCodeNotFound {
		t.Errorf("expected code %s, got %s", ErrCodeNotFound, err.Code)
	}
	if err.Message != "document not found" {
		t.Errorf("expected message 'document not found', got %s", err.Message)
	}
	if err.Cause != nil {
		t.Errorf("expected nil cause, got %v", err.Cause)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeSerialization, "decode failed", cause)

	if err.Code != ErrCodeSerialization {
		t.Errorf("expected code %s, got %s", ErrCodeSerialization, err.Code)
	}
	if !errors.Is(err, cause) {
		t.Errorf("expected cause to be wrapped")
	}
}

func TestErrorString(t *testing.T) {
	err := New(ErrCodeInvalidRequest, "bad format")
	want := "[INVALID_REQUEST] bad format"
	if err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}

	wrapped := Wrap(ErrCodeInternal, "boom", errors.New("cause"))
	want = "[INTERNAL] boom: cause"
	if wrapped.Error() != want {
		t.Errorf("expected %q, got %q", want, wrapped.Error())
	}
}

func TestNewWithContext(t *testing.T) {
	err := NewWithContext(ErrCodeNotFound, "missing", map[string]any{"path": "x.yaml"})
	if err.Context["path"] != "x.yaml" {
		t.Errorf("expected context to carry path, got %v", err.Context)
	}
}

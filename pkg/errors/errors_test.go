package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeMalformedConfig, "missing key: %s", "dependencies")

	if err.Code != ErrCodeMalformedConfig {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeMalformedConfig)
	}

	if err.Message != "missing key: dependencies" {
		t.Errorf("Message = %v, want %v", err.Message, "missing key: dependencies")
	}

	expected := "MALFORMED_CONFIG: missing key: dependencies"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(ErrCodeStorage, cause, "write config")

	if err.Code != ErrCodeStorage {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeStorage)
	}
	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
	if unwrapped := errors.Unwrap(err); unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
	if want := "STORAGE: write config: connection refused"; err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     Code
		expected bool
	}{
		{
			name:     "matching code",
			err:      New(ErrCodeEmptyState, "nothing to save"),
			code:     ErrCodeEmptyState,
			expected: true,
		},
		{
			name:     "non-matching code",
			err:      New(ErrCodeEmptyState, "nothing to save"),
			code:     ErrCodeMalformedConfig,
			expected: false,
		},
		{
			name:     "wrapped error",
			err:      Wrap(ErrCodeStorage, New(ErrCodeInvalidInput, "inner"), "outer"),
			code:     ErrCodeStorage,
			expected: true,
		},
		{
			name:     "fmt wrapped",
			err:      fmt.Errorf("import: %w", New(ErrCodeMalformedConfig, "bad")),
			code:     ErrCodeMalformedConfig,
			expected: true,
		},
		{
			name:     "non-Error type",
			err:      errors.New("plain error"),
			code:     ErrCodeInvalidInput,
			expected: false,
		},
		{
			name:     "nil error",
			err:      nil,
			code:     ErrCodeInvalidInput,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.expected {
				t.Errorf("Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected Code
	}{
		{
			name:     "Error type",
			err:      New(ErrCodeInvalidBoard, "test"),
			expected: ErrCodeInvalidBoard,
		},
		{
			name:     "plain error",
			err:      errors.New("plain"),
			expected: "",
		},
		{
			name:     "nil",
			err:      nil,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.expected {
				t.Errorf("GetCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "Error type",
			err:      New(ErrCodeEmptyState, "nothing to save"),
			expected: "nothing to save",
		},
		{
			name:     "plain error",
			err:      errors.New("plain error"),
			expected: "plain error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.expected {
				t.Errorf("UserMessage() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestConditionHelpers(t *testing.T) {
	empty := New(ErrCodeEmptyState, "nothing to save")
	malformed := New(ErrCodeMalformedConfig, "bad shape")

	if !IsEmptyState(empty) || IsEmptyState(malformed) {
		t.Error("IsEmptyState misclassified")
	}
	if !IsMalformedConfig(malformed) || IsMalformedConfig(empty) {
		t.Error("IsMalformedConfig misclassified")
	}
	if IsEmptyState(nil) || IsMalformedConfig(nil) {
		t.Error("nil error must not match any condition")
	}
}

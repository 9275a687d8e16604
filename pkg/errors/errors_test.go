package errors

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidWidth, "width must be positive, got %g", -2.5)

	if err.Code != ErrCodeInvalidWidth {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidWidth)
	}

	if err.Message != "width must be positive, got -2.5" {
		t.Errorf("Message = %v, want %v", err.Message, "width must be positive, got -2.5")
	}

	expected := "INVALID_WIDTH: width must be positive, got -2.5"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeInvalidWorkbook, cause, "load book.toml")

	if err.Code != ErrCodeInvalidWorkbook {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidWorkbook)
	}

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}

	// Test Unwrap
	unwrapped := errors.Unwrap(err)
	if unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	// Test errors.Is with wrapped error
	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
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
			err:      New(ErrCodeInvalidWidth, "test"),
			code:     ErrCodeInvalidWidth,
			expected: true,
		},
		{
			name:     "non-matching code",
			err:      New(ErrCodeInvalidWidth, "test"),
			code:     ErrCodeFontNotFound,
			expected: false,
		},
		{
			name:     "wrapped error",
			err:      Wrap(ErrCodeFontNotFound, New(ErrCodeInvalidWidth, "inner"), "outer"),
			code:     ErrCodeFontNotFound,
			expected: true,
		},
		{
			name:     "non-Error type",
			err:      errors.New("plain error"),
			code:     ErrCodeInvalidWidth,
			expected: false,
		},
		{
			name:     "nil error",
			err:      nil,
			code:     ErrCodeInvalidWidth,
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
	if code := GetCode(New(ErrCodeRowNotFound, "row 4")); code != ErrCodeRowNotFound {
		t.Errorf("GetCode() = %v, want %v", code, ErrCodeRowNotFound)
	}

	if code := GetCode(errors.New("plain")); code != "" {
		t.Errorf("GetCode() = %v, want empty", code)
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeFontNotFound, "font #3 is not registered")
	if msg := UserMessage(err); msg != "font #3 is not registered" {
		t.Errorf("UserMessage() = %v, want message without code prefix", msg)
	}

	plain := errors.New("plain error")
	if msg := UserMessage(plain); msg != "plain error" {
		t.Errorf("UserMessage() = %v, want %v", msg, "plain error")
	}
}

package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidInput, "bad value %q", "x")

	if err.Code != ErrCodeInvalidInput {
		t.Errorf("Code = %q, want %q", err.Code, ErrCodeInvalidInput)
	}
	if err.Message != `bad value "x"` {
		t.Errorf("Message = %q", err.Message)
	}
	want := `INVALID_INPUT: bad value "x"`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestWrap(t *testing.T) {
	cause := stderrors.New("boom")
	err := Wrap(ErrCodeConnection, cause, "GET %s", "/api")

	if !stderrors.Is(err, cause) {
		t.Error("Wrap() should preserve the cause in the chain")
	}
	want := "CONNECTION_FAILED: GET /api: boom"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestIs(t *testing.T) {
	err := New(ErrCodeTimeout, "slow")

	if !Is(err, ErrCodeTimeout) {
		t.Error("Is() should match the error's own code")
	}
	if Is(err, ErrCodeHTTP) {
		t.Error("Is() should not match a different code")
	}
	if Is(stderrors.New("plain"), ErrCodeTimeout) {
		t.Error("Is() should not match a plain error")
	}
}

func TestIsWrappedChain(t *testing.T) {
	inner := New(ErrCodeHTTP, "status 503")
	outer := fmt.Errorf("walk certified channel: %w", inner)

	if !Is(outer, ErrCodeHTTP) {
		t.Error("Is() should find the code through fmt.Errorf wrapping")
	}
	if GetCode(outer) != ErrCodeHTTP {
		t.Errorf("GetCode() = %q, want %q", GetCode(outer), ErrCodeHTTP)
	}
}

func TestGetCodePlainError(t *testing.T) {
	if code := GetCode(stderrors.New("plain")); code != "" {
		t.Errorf("GetCode() = %q, want empty", code)
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeFilesystem, "remove /tmp/collections.xlsx")
	if got := UserMessage(err); got != "remove /tmp/collections.xlsx" {
		t.Errorf("UserMessage() = %q", got)
	}

	plain := stderrors.New("plain failure")
	if got := UserMessage(plain); got != "plain failure" {
		t.Errorf("UserMessage() = %q", got)
	}
}

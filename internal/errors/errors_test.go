package errors

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"testing"
)

func TestKinds(t *testing.T) {
	cause := fmt.Errorf("underlying")

	tests := []struct {
		name string
		err  *Error
		kind error
	}{
		{"not found", NotFound("rust", "/t/rust.yaml"), ErrNotFound},
		{"corrupt", Corrupt("rust", "/t/rust.yaml", cause), ErrCorrupt},
		{"io", IOFailure("write file", "/p/main.rs", cause), ErrIOFailure},
		{"fetch", FetchFailure("Rust", "http://x/Rust.gitignore", cause), ErrFetchFailure},
		{"input", InvalidInput("name", "empty", nil), ErrInvalidInput},
	}

	all := []error{ErrNotFound, ErrCorrupt, ErrIOFailure, ErrFetchFailure, ErrInvalidInput}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, kind := range all {
				want := kind == tt.kind
				if got := errors.Is(tt.err, kind); got != want {
					t.Errorf("errors.Is(%v, %v) = %v, want %v", tt.err, kind, got, want)
				}
			}
			if !IsKind(fmt.Errorf("wrapped: %w", tt.err), tt.kind) {
				t.Errorf("IsKind through a wrap should match %v", tt.kind)
			}
		})
	}
}

func TestUnwrapReachesCause(t *testing.T) {
	err := IOFailure("read template", "/t/go.yaml", fs.ErrPermission)

	if !errors.Is(err, fs.ErrPermission) {
		t.Error("expected errors.Is to reach the cause")
	}
	if !strings.Contains(err.Guidance, "Permission denied") {
		t.Errorf("expected permission guidance, got %q", err.Guidance)
	}
}

func TestErrorMessage(t *testing.T) {
	err := NotFound("cobol", "/t/cobol.yaml")
	msg := err.Error()

	for _, want := range []string{"not found", `"cobol"`, "/t/cobol.yaml", "Suggestion:", "templates list"} {
		if !strings.Contains(msg, want) {
			t.Errorf("message %q should contain %q", msg, want)
		}
	}

	plain := &Error{Kind: ErrCorrupt, Message: "bad"}
	if plain.Error() != "corrupt template: bad" {
		t.Errorf("unexpected message %q", plain.Error())
	}
}

func TestInvalidInputGuidance(t *testing.T) {
	tests := []struct {
		field string
		want  string
	}{
		{"terminal", "terminal"},
		{"language", "--language"},
		{"name", "--name"},
		{"other", "try again"},
	}

	for _, tt := range tests {
		err := InvalidInput(tt.field, "reason", nil)
		if !strings.Contains(err.Guidance, tt.want) {
			t.Errorf("InvalidInput(%q) guidance %q should mention %q", tt.field, err.Guidance, tt.want)
		}
	}
}

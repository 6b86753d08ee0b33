package util

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestToDomainError_Passthrough(t *testing.T) {
	t.Parallel()

	original := NewDomainError("FORBIDDEN", "nope", http.StatusForbidden, nil)
	mapped := ToDomainError(original)
	if mapped != original {
		t.Fatalf("expected the same DomainError back")
	}

	wrapped := fmt.Errorf("context: %w", original)
	if got := ToDomainError(wrapped); got != original {
		t.Fatalf("expected unwrap to the original DomainError, got %+v", got)
	}
}

func TestToDomainError_WrapsUnknown(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection refused")
	mapped := ToDomainError(cause)
	if mapped.Code != "INTERNAL_ERROR" || mapped.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected internal error mapping, got %+v", mapped)
	}
	if !errors.Is(mapped, cause) {
		t.Fatalf("expected wrapped cause")
	}
	if mapped.Message != "internal server error" {
		t.Fatalf("infrastructure detail leaked into message: %q", mapped.Message)
	}
}

func TestToDomainError_Nil(t *testing.T) {
	t.Parallel()

	if got := ToDomainError(nil); got != nil {
		t.Fatalf("expected nil, got %+v", got)
	}
}

package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestSentinelsAreDistinct(t *testing.T) {
	sentinels := []error{
		ErrUnauthenticated,
		ErrForbidden,
		ErrNotFound,
		ErrAlreadyExists,
		ErrEmptyConfiguration,
		ErrInvalid,
		ErrInvalidCredentials,
	}

	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j && errors.Is(a, b) {
				t.Fatalf("sentinel %v must not match %v", a, b)
			}
		}
	}
}

func TestWrappedSentinelMatches(t *testing.T) {
	wrapped := fmt.Errorf("delete configuration 7: %w", ErrNotFound)
	if !errors.Is(wrapped, ErrNotFound) {
		t.Fatal("wrapped sentinel must match with errors.Is")
	}
}

package models

import (
	"errors"
	"net/http"
	"testing"
)

func TestWrapErrorPreservesCode(t *testing.T) {
	base := NewForbiddenError("no tienes permisos")
	wrapped := WrapError("error al editar moto", base)

	if !IsForbidden(wrapped) {
		t.Error("wrapping lost the forbidden code")
	}
	if !errors.Is(wrapped, base) {
		t.Error("wrapped error lost its cause")
	}
}

func TestWrapErrorPlainErrorIsInternal(t *testing.T) {
	wrapped := WrapError("error al crear moto", errors.New("connection refused"))
	if !IsInternal(wrapped) {
		t.Error("plain errors should wrap as internal")
	}
}

func TestHTTPStatusCode(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{NewValidationError("x"), http.StatusBadRequest},
		{NewUnauthenticatedError("x"), http.StatusUnauthorized},
		{NewForbiddenError("x"), http.StatusForbidden},
		{NewNotFoundError("x"), http.StatusNotFound},
		{NewInternalError("x", nil), http.StatusInternalServerError},
		{errors.New("plain"), http.StatusInternalServerError},
		{WrapError("ctx", NewNotFoundError("x")), http.StatusNotFound},
	}
	for _, tt := range tests {
		if got := HTTPStatusCode(tt.err); got != tt.want {
			t.Errorf("HTTPStatusCode(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}

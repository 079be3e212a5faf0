package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindAndCode(t *testing.T) {
	err := New(NotFound, "recipe_not_found")

	assert.Equal(t, NotFound, KindOf(err))
	assert.Equal(t, "recipe_not_found", CodeOf(err))
	assert.Equal(t, 404, HTTPStatus(err))
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		kind Kind
		want int
	}{
		{PermissionDenied, 403},
		{NotFound, 404},
		{Invalid, 400},
		{Conflict, 409},
		{Internal, 500},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, HTTPStatus(New(tt.kind, "x")))
	}
}

func TestWrappedErrorsKeepKind(t *testing.T) {
	inner := New(PermissionDenied, "admin_required")
	wrapped := fmt.Errorf("checking roster: %w", inner)

	assert.Equal(t, PermissionDenied, KindOf(wrapped))
	assert.Equal(t, "admin_required", CodeOf(wrapped))
	assert.Equal(t, 403, HTTPStatus(wrapped))
}

func TestPlainErrorIsInternal(t *testing.T) {
	err := errors.New("boom")

	assert.Equal(t, Internal, KindOf(err))
	assert.Equal(t, "", CodeOf(err))
	assert.Equal(t, 500, HTTPStatus(err))
}

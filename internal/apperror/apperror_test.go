package apperror

import (
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestStatusOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"bad request", BadRequest("bad", nil), http.StatusBadRequest},
		{"unauthorized", Unauthorized("who"), http.StatusUnauthorized},
		{"forbidden", Forbidden("no"), http.StatusForbidden},
		{"not found", NotFound("gone", nil), http.StatusNotFound},
		{"wrapped", errors.Wrap(Forbidden("no"), "load answer"), http.StatusForbidden},
		{"plain", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusOf(tt.err))
		})
	}
}

func TestPublicMessage(t *testing.T) {
	assert.Equal(t, "Illegal operation.", PublicMessage(Forbidden("Illegal operation.")))
	assert.Equal(t, "Something went wrong on our end.", PublicMessage(errors.New("pq: connection refused")))
	assert.Equal(t, "Something went wrong on our end.", PublicMessage(&Error{Kind: KindInternal, Message: "secret"}))
}

func TestIsKind(t *testing.T) {
	err := errors.Wrap(NotFound("Answer not found.", nil), "get")
	assert.True(t, IsKind(err, KindNotFound))
	assert.False(t, IsKind(err, KindForbidden))
	assert.False(t, IsKind(errors.New("x"), KindNotFound))
}

package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{NewValidation("bad payload", "price"), http.StatusBadRequest},
		{NewUnauthenticated("missing token"), http.StatusUnauthorized},
		{NewForbidden("admin only"), http.StatusForbidden},
		{NewNotFound("car not found"), http.StatusNotFound},
		{NewConflict("email already registered"), http.StatusConflict},
		{NewRateLimited("too many messages"), http.StatusTooManyRequests},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, HTTPStatus(tc.err))
	}
}

func TestHTTPStatusWrapped(t *testing.T) {
	err := fmt.Errorf("saving car: %w", NewValidation("year out of range", "year"))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(err))

	appErr := As(err)
	assert.NotNil(t, appErr)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
	assert.Equal(t, []string{"year"}, appErr.Fields)
}

package apperr

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError(t *testing.T) {
	tests := []struct {
		name     string
		err      *StructuredError
		expected string
	}{
		{
			name:     "error without cause",
			err:      New(ErrCodeNotFound, "not found"),
			expected: "[NOT_FOUND] not found",
		},
		{
			name:     "error with cause",
			err:      Wrap(ErrCodeInternal, "failed", errors.New("root cause")),
			expected: "[INTERNAL] failed: root cause",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestWrapUnwrap(t *testing.T) {
	cause := errors.New("disk full")
	err := WrapWithContext(ErrCodeInternal, "save failed", cause, map[string]any{"file": "a.png"})

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "a.png", err.Context["file"])
}

func TestIsMatchesSentinel(t *testing.T) {
	sentinel := New(ErrCodeNoSoilData, "No soil data found for selected inputs")
	got := NewWithContext(ErrCodeNoSoilData, "No soil data found for selected inputs", map[string]any{"location": "X"})

	assert.ErrorIs(t, got, sentinel)
	assert.NotErrorIs(t, New(ErrCodeNoSuitableCrop, "x"), sentinel)
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{New(ErrCodeNoSoilData, "x"), http.StatusNotFound},
		{New(ErrCodeNoSuitableCrop, "x"), http.StatusNotFound},
		{New(ErrCodeInvalidRequest, "x"), http.StatusBadRequest},
		{New(ErrCodeUnauthorized, "x"), http.StatusUnauthorized},
		{New(ErrCodeForbidden, "x"), http.StatusForbidden},
		{New(ErrCodeConflict, "x"), http.StatusConflict},
		{New(ErrCodeUnavailable, "x"), http.StatusServiceUnavailable},
		{errors.New("plain"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, HTTPStatus(tt.err), tt.err.Error())
	}
}

func TestJSONHidesInternalMessages(t *testing.T) {
	e := echo.New()

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	require.NoError(t, JSON(c, Wrap(ErrCodeInternal, "db exploded", errors.New("secret dsn"))))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "secret dsn")
	assert.Contains(t, rec.Body.String(), `"code":"INTERNAL"`)

	rec = httptest.NewRecorder()
	c = e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	require.NoError(t, JSON(c, New(ErrCodeConflict, "Username or Email already exists")))
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "Username or Email already exists")
}

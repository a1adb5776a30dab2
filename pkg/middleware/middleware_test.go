package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cropcare/pkg/apperr"
)

type loginForm struct {
	Username string  `json:"username" validate:"required"`
	Email    string  `json:"email" validate:"required,email"`
	PH       float64 `json:"soil_ph" validate:"gte=0,lte=14"`
}

func TestValidator(t *testing.T) {
	v := NewValidator()
	tests := []struct {
		name    string
		in      loginForm
		wantMsg string
	}{
		{name: "ok", in: loginForm{Username: "a", Email: "a@b.io", PH: 7}},
		{name: "missing username", in: loginForm{Email: "a@b.io"}, wantMsg: "username is required"},
		{name: "bad email", in: loginForm{Username: "a", Email: "nope"}, wantMsg: "email must be a valid email address"},
		{name: "ph too high", in: loginForm{Username: "a", Email: "a@b.io", PH: 14.5}, wantMsg: "soil_ph must be <= 14"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&tt.in)
			if tt.wantMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, apperr.ErrCodeInvalidRequest, apperr.CodeOf(err))
			var se *apperr.StructuredError
			require.ErrorAs(t, err, &se)
			assert.Equal(t, tt.wantMsg, se.Message)
		})
	}
}

func TestRateLimit(t *testing.T) {
	e := echo.New()
	e.POST("/login", func(c echo.Context) error { return c.NoContent(http.StatusOK) }, RateLimit(1))

	codes := make([]int, 0, 4)
	for i := 0; i < 4; i++ {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}
	assert.Equal(t, []int{200, 200, 429, 429}, codes)

	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code, "limits are per client")
}

func TestRateLimitDisabled(t *testing.T) {
	e := echo.New()
	e.GET("/", func(c echo.Context) error { return c.NoContent(http.StatusOK) }, RateLimit(0))
	for i := 0; i < 20; i++ {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		require.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestMetricsAndRequestLog(t *testing.T) {
	e := echo.New()
	e.Use(Metrics(), RequestLog())
	e.GET("/boom", func(c echo.Context) error { return echo.NewHTTPError(http.StatusTeapot, "short and stout") })
	e.GET("/metrics", MetricsHandler())

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))
	assert.Equal(t, http.StatusTeapot, rec.Code)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.Contains(body, `cropcare_http_requests_total{method="GET",path="/boom",status="418"}`), body)
}

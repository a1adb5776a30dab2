package controllerImp

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cropcare/database/dbtest"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestHealth(t *testing.T) {
	db := dbtest.Open(t)
	ok := pingerFunc(func(context.Context) error { return nil })
	down := pingerFunc(func(context.Context) error { return errors.New("connection refused") })

	tests := []struct {
		name       string
		ctrl       *HealthCtrl
		wantStatus int
		wantSess   bool
		wantDB     bool
	}{
		{name: "all up", ctrl: &HealthCtrl{db: db, sessions: ok}, wantStatus: http.StatusOK, wantSess: true, wantDB: true},
		{name: "sessions down", ctrl: &HealthCtrl{db: db, sessions: down}, wantStatus: http.StatusServiceUnavailable, wantDB: true},
		{name: "no db", ctrl: &HealthCtrl{sessions: ok}, wantStatus: http.StatusServiceUnavailable, wantSess: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/health", nil), rec)
			require.NoError(t, tt.ctrl.Health(c))
			assert.Equal(t, tt.wantStatus, rec.Code)

			var body struct {
				Checks map[string]check `json:"checks"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantDB, body.Checks["database"].OK)
			assert.Equal(t, tt.wantSess, body.Checks["sessions"].OK)
		})
	}
}

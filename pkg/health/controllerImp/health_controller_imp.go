package controllerImp

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"cropcare/pkg/health/controller"
)

var appStart = time.Now()

const checkTimeout = 800 * time.Millisecond

// Pinger is anything whose reachability should be reported, e.g. the session store.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthCtrl struct {
	db       *gorm.DB
	sessions Pinger
}

func NewHealthCtrl(db *gorm.DB, sessions Pinger) controller.HealthController {
	return &HealthCtrl{db: db, sessions: sessions}
}

type check struct {
	OK  bool   `json:"ok"`
	Err string `json:"err,omitempty"`
}

func (h *HealthCtrl) database(ctx context.Context) check {
	if h.db == nil {
		return check{Err: "gorm db is nil"}
	}
	sqlDB, err := h.db.DB()
	if err != nil {
		return check{Err: "db.DB(): " + err.Error()}
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return check{Err: "ping: " + err.Error()}
	}
	return check{OK: true}
}

func (h *HealthCtrl) sessionStore(ctx context.Context) check {
	if h.sessions == nil {
		return check{Err: "session store is nil"}
	}
	if err := h.sessions.Ping(ctx); err != nil {
		return check{Err: "ping: " + err.Error()}
	}
	return check{OK: true}
}

func (h *HealthCtrl) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), checkTimeout)
	defer cancel()

	db := h.database(ctx)
	sess := h.sessionStore(ctx)

	allOK := db.OK && sess.OK
	status := http.StatusOK
	if !allOK {
		status = http.StatusServiceUnavailable
	}

	return c.JSON(status, map[string]any{
		"status":     map[string]any{"ok": allOK},
		"uptime_sec": int(time.Since(appStart).Seconds()),
		"checks": map[string]any{
			"database": db,
			"sessions": sess,
		},
		"time": time.Now().Format(time.RFC3339),
	})
}

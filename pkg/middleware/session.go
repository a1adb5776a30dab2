package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"

	"cropcare/pkg/apperr"
	"cropcare/pkg/session/repository"
)

// Context keys set by Sessions.Load.
const (
	CtxUsername  = "username"
	CtxAdmin     = "admin"
	ctxSessionID = "session_id"
)

var (
	ErrLoginRequired      = apperr.New(apperr.ErrCodeUnauthorized, "login required")
	ErrAdminLoginRequired = apperr.New(apperr.ErrCodeUnauthorized, "admin login required")
)

// Sessions ties the session store to a cookie.
type Sessions struct {
	store  repository.SessionStore
	cookie string
	ttl    time.Duration
}

func NewSessions(store repository.SessionStore, cookie string, ttl time.Duration) *Sessions {
	return &Sessions{store: store, cookie: cookie, ttl: ttl}
}

func (s *Sessions) Store() repository.SessionStore { return s.store }

// Load resolves the session cookie, if any, into context values. It never
// rejects a request; use RequireUser or RequireAdmin for that.
func (s *Sessions) Load() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ck, err := c.Cookie(s.cookie)
			if err != nil || ck.Value == "" {
				return next(c)
			}
			d, err := s.store.Get(c.Request().Context(), ck.Value)
			if err != nil {
				log.WithError(err).Warn("[session] lookup failed")
				return next(c)
			}
			if d != nil {
				c.Set(ctxSessionID, ck.Value)
				c.Set(CtxUsername, d.Username)
				c.Set(CtxAdmin, d.Admin)
			}
			return next(c)
		}
	}
}

// Begin drops the caller's current session, if any, and starts a new one.
func (s *Sessions) Begin(c echo.Context, d repository.Data) error {
	if err := s.End(c); err != nil {
		return err
	}
	id, err := s.store.Create(c.Request().Context(), d)
	if err != nil {
		return apperr.Wrap(apperr.ErrCodeInternal, "failed to create session", err)
	}
	c.SetCookie(&http.Cookie{
		Name:     s.cookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(s.ttl),
	})
	c.Set(ctxSessionID, id)
	c.Set(CtxUsername, d.Username)
	c.Set(CtxAdmin, d.Admin)
	return nil
}

// End deletes the current session and expires the cookie.
func (s *Sessions) End(c echo.Context) error {
	id, _ := c.Get(ctxSessionID).(string)
	if id == "" {
		if ck, err := c.Cookie(s.cookie); err == nil {
			id = ck.Value
		}
	}
	if id != "" {
		if err := s.store.Delete(c.Request().Context(), id); err != nil {
			return apperr.Wrap(apperr.ErrCodeInternal, "failed to end session", err)
		}
		c.SetCookie(&http.Cookie{Name: s.cookie, Value: "", Path: "/", MaxAge: -1, HttpOnly: true})
	}
	c.Set(ctxSessionID, "")
	c.Set(CtxUsername, "")
	c.Set(CtxAdmin, false)
	return nil
}

// Username returns the logged-in name, or "".
func Username(c echo.Context) string {
	u, _ := c.Get(CtxUsername).(string)
	return u
}

func IsAdmin(c echo.Context) bool {
	a, _ := c.Get(CtxAdmin).(bool)
	return a
}

// RequireUser admits requests carrying a regular user session.
func RequireUser() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if Username(c) == "" || IsAdmin(c) {
				return apperr.JSON(c, ErrLoginRequired)
			}
			return next(c)
		}
	}
}

// RequireAdmin admits requests carrying an admin session.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !IsAdmin(c) {
				return apperr.JSON(c, ErrAdminLoginRequired)
			}
			return next(c)
		}
	}
}

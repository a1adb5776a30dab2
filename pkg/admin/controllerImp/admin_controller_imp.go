package controllerImp

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"cropcare/pkg/admin/controller"
	"cropcare/pkg/apperr"
	authService "cropcare/pkg/auth/service"
	"cropcare/pkg/middleware"
)

// counter is satisfied by the crop and feedback services.
type counter interface {
	Count(ctx context.Context) (int64, error)
}

type adminCtrl struct {
	auth     authService.AuthService
	crops    counter
	feedback counter
}

func NewAdminController(auth authService.AuthService, crops, feedback counter) controller.AdminController {
	return &adminCtrl{auth: auth, crops: crops, feedback: feedback}
}

func (h *adminCtrl) Dashboard(c echo.Context) error {
	ctx := c.Request().Context()
	users, err := h.auth.UserCount(ctx)
	if err != nil {
		return apperr.JSON(c, apperr.Wrap(apperr.ErrCodeInternal, "failed to count users", err))
	}
	crops, err := h.crops.Count(ctx)
	if err != nil {
		return apperr.JSON(c, apperr.Wrap(apperr.ErrCodeInternal, "failed to count crops", err))
	}
	fb, err := h.feedback.Count(ctx)
	if err != nil {
		return apperr.JSON(c, apperr.Wrap(apperr.ErrCodeInternal, "failed to count feedback", err))
	}
	return c.JSON(http.StatusOK, echo.Map{
		"admin":          middleware.Username(c),
		"user_count":     users,
		"crop_count":     crops,
		"feedback_count": fb,
	})
}

type userRow struct {
	Username  string     `json:"username"`
	Email     string     `json:"email"`
	CreatedAt time.Time  `json:"created_at"`
	LastLogin *time.Time `json:"last_login"`
}

func (h *adminCtrl) Users(c echo.Context) error {
	users, err := h.auth.Users(c.Request().Context())
	if err != nil {
		return apperr.JSON(c, err)
	}
	out := make([]userRow, 0, len(users))
	for _, u := range users {
		out = append(out, userRow{Username: u.Username, Email: u.Email, CreatedAt: u.CreatedAt, LastLogin: u.LastLogin})
	}
	return c.JSON(http.StatusOK, out)
}

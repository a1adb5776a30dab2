package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"cropcare/pkg/apperr"
	"cropcare/pkg/auth/controller"
	"cropcare/pkg/auth/service"
	"cropcare/pkg/middleware"
	"cropcare/pkg/session/repository"
)

type authCtrl struct {
	svc      service.AuthService
	sessions *middleware.Sessions
}

func NewAuthController(svc service.AuthService, sessions *middleware.Sessions) controller.AuthController {
	return &authCtrl{svc: svc, sessions: sessions}
}

type registerReq struct {
	Username        string `json:"username" form:"username" validate:"required,max=64"`
	Email           string `json:"email" form:"email" validate:"required,email,max=255"`
	Password        string `json:"password" form:"password" validate:"required"`
	ConfirmPassword string `json:"confirm_password" form:"confirm_password" validate:"required"`
}

type loginReq struct {
	Username string `json:"username" form:"username" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

var errBadBody = apperr.New(apperr.ErrCodeInvalidRequest, "invalid request body")

func bind(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return errBadBody
	}
	return c.Validate(req)
}

func (h *authCtrl) Register(c echo.Context) error {
	var req registerReq
	if err := bind(c, &req); err != nil {
		return apperr.JSON(c, err)
	}
	u, err := h.svc.Register(c.Request().Context(), req.Username, req.Email, req.Password, req.ConfirmPassword)
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "Registration successful", "username": u.Username})
}

func (h *authCtrl) Login(c echo.Context) error {
	var req loginReq
	if err := bind(c, &req); err != nil {
		return apperr.JSON(c, err)
	}
	u, err := h.svc.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return apperr.JSON(c, err)
	}
	if err := h.sessions.Begin(c, repository.Data{Username: u.Username}); err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Login successful", "username": u.Username})
}

func (h *authCtrl) Logout(c echo.Context) error {
	if err := h.sessions.End(c); err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Logged out"})
}

func (h *authCtrl) Dashboard(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"username": middleware.Username(c)})
}

func (h *authCtrl) AdminLogin(c echo.Context) error {
	var req loginReq
	if err := bind(c, &req); err != nil {
		return apperr.JSON(c, err)
	}
	a, err := h.svc.AdminLogin(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return apperr.JSON(c, err)
	}
	if err := h.sessions.Begin(c, repository.Data{Username: a.Username, Admin: true}); err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Admin login successful", "admin": a.Username})
}

func (h *authCtrl) AdminLogout(c echo.Context) error {
	if err := h.sessions.End(c); err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Logged out"})
}

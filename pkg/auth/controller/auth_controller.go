package controller

import "github.com/labstack/echo/v4"

type AuthController interface {
	Register(c echo.Context) error
	Login(c echo.Context) error
	Logout(c echo.Context) error
	Dashboard(c echo.Context) error
	AdminLogin(c echo.Context) error
	AdminLogout(c echo.Context) error
}

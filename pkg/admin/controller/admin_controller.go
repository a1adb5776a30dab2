package controller

import "github.com/labstack/echo/v4"

type AdminController interface {
	Dashboard(c echo.Context) error
	Users(c echo.Context) error
}

package controller

import "github.com/labstack/echo/v4"

type CropController interface {
	Add(c echo.Context) error
	Import(c echo.Context) error
	List(c echo.Context) error
}

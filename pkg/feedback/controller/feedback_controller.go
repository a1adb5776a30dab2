package controller

import "github.com/labstack/echo/v4"

type FeedbackController interface {
	Submit(c echo.Context) error
	List(c echo.Context) error
}

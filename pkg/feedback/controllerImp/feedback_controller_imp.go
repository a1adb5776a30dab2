package controllerImp

import (
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/labstack/echo/v4"

	"cropcare/pkg/apperr"
	"cropcare/pkg/feedback/controller"
	"cropcare/pkg/feedback/service"
	"cropcare/pkg/middleware"
)

type feedbackCtrl struct{ svc service.FeedbackService }

func NewFeedbackController(svc service.FeedbackService) controller.FeedbackController {
	return &feedbackCtrl{svc: svc}
}

// Submit takes multipart or urlencoded {type, message} plus an optional image.
func (h *feedbackCtrl) Submit(c echo.Context) error {
	var image *multipart.FileHeader
	fh, err := c.FormFile("image")
	switch {
	case err == nil:
		image = fh
	case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
	default:
		return apperr.JSON(c, apperr.Wrap(apperr.ErrCodeInvalidRequest, "invalid upload", err))
	}

	f, err := h.svc.Submit(c.Request().Context(), middleware.Username(c), c.FormValue("type"), c.FormValue("message"), image)
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "Feedback submitted successfully", "feedback": f})
}

func (h *feedbackCtrl) List(c echo.Context) error {
	list, err := h.svc.List(c.Request().Context())
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"cropcare/pkg/apperr"
	"cropcare/pkg/recommend/controller"
	"cropcare/pkg/recommend/service"
	"cropcare/pkg/recommend/types"
)

type recommendCtrl struct{ svc service.RecommendService }

func NewRecommendController(svc service.RecommendService) controller.RecommendController {
	return &recommendCtrl{svc: svc}
}

// recommendReq keeps soil_ph as a pointer so an absent value is told apart
// from pH 0.
type recommendReq struct {
	Location string   `json:"location" form:"location" validate:"required"`
	SoilType string   `json:"soil_type" form:"soil_type" validate:"required"`
	SoilPH   *float64 `json:"soil_ph" form:"soil_ph" validate:"required,gte=0,lte=14"`
}

// Recommend accepts {location, soil_type, soil_ph} as JSON or form fields.
func (h *recommendCtrl) Recommend(c echo.Context) error {
	var req recommendReq
	if err := c.Bind(&req); err != nil {
		return apperr.JSON(c, apperr.Wrap(apperr.ErrCodeInvalidRequest, "invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return apperr.JSON(c, err)
	}
	q := types.Query{Location: req.Location, SoilType: req.SoilType, SoilPH: *req.SoilPH}
	res, err := h.svc.Recommend(c.Request().Context(), q)
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, res)
}

func (h *recommendCtrl) Options(c echo.Context) error {
	opts, err := h.svc.Options(c.Request().Context())
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, opts)
}

package controllerImp

import (
	"net/http"
	"path/filepath"

	"github.com/labstack/echo/v4"

	"cropcare/entities"
	"cropcare/pkg/apperr"
	"cropcare/pkg/crop/controller"
	"cropcare/pkg/crop/service"
	"cropcare/pkg/reftable"
)

type cropCtrl struct{ svc service.CropService }

func NewCropController(svc service.CropService) controller.CropController {
	return &cropCtrl{svc: svc}
}

type addCropReq struct {
	CropName       string `form:"crop_name" json:"crop_name" validate:"required"`
	ScientificName string `form:"scientific_name" json:"scientific_name"`
	Season         string `form:"season" json:"season"`
	Duration       string `form:"duration" json:"duration"`
	Demand         string `form:"demand" json:"demand"`

	// Pointers so a missing bound is rejected instead of read as 0.
	NMin        *float64 `form:"n_min" json:"n_min" validate:"required"`
	NMax        *float64 `form:"n_max" json:"n_max" validate:"required"`
	PMin        *float64 `form:"p_min" json:"p_min" validate:"required"`
	PMax        *float64 `form:"p_max" json:"p_max" validate:"required"`
	KMin        *float64 `form:"k_min" json:"k_min" validate:"required"`
	KMax        *float64 `form:"k_max" json:"k_max" validate:"required"`
	PHMin       *float64 `form:"ph_min" json:"ph_min" validate:"required,gte=0,lte=14"`
	PHMax       *float64 `form:"ph_max" json:"ph_max" validate:"required,gte=0,lte=14"`
	TempMin     *float64 `form:"temp_min" json:"temp_min" validate:"required"`
	TempMax     *float64 `form:"temp_max" json:"temp_max" validate:"required"`
	HumidityMin *float64 `form:"humidity_min" json:"humidity_min" validate:"required"`
	HumidityMax *float64 `form:"humidity_max" json:"humidity_max" validate:"required"`
	RainfallMin *float64 `form:"rainfall_min" json:"rainfall_min" validate:"required"`
	RainfallMax *float64 `form:"rainfall_max" json:"rainfall_max" validate:"required"`
}

func (r addCropReq) record() *entities.CropRecord {
	return &entities.CropRecord{
		CropName:       r.CropName,
		ScientificName: r.ScientificName,
		Season:         r.Season,
		Duration:       r.Duration,
		Demand:         r.Demand,
		NMin:           *r.NMin,
		NMax:           *r.NMax,
		PMin:           *r.PMin,
		PMax:           *r.PMax,
		KMin:           *r.KMin,
		KMax:           *r.KMax,
		PHMin:          *r.PHMin,
		PHMax:          *r.PHMax,
		TempMin:        *r.TempMin,
		TempMax:        *r.TempMax,
		HumidityMin:    *r.HumidityMin,
		HumidityMax:    *r.HumidityMax,
		RainfallMin:    *r.RainfallMin,
		RainfallMax:    *r.RainfallMax,
	}
}

// Add takes a multipart form with every crop field and an "image" file.
func (h *cropCtrl) Add(c echo.Context) error {
	var req addCropReq
	if err := c.Bind(&req); err != nil {
		return apperr.JSON(c, apperr.Wrap(apperr.ErrCodeInvalidRequest, "invalid crop form", err))
	}
	if err := c.Validate(&req); err != nil {
		return apperr.JSON(c, err)
	}
	image, _ := c.FormFile("image")
	crop, err := h.svc.Add(c.Request().Context(), req.record(), image)
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusCreated, crop)
}

// Import bulk-loads a .csv or .xlsx crop table sent as the "file" field.
func (h *cropCtrl) Import(c echo.Context) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return apperr.JSON(c, apperr.Wrap(apperr.ErrCodeInvalidRequest, "file is required", err))
	}
	f, err := fh.Open()
	if err != nil {
		return apperr.JSON(c, apperr.Wrap(apperr.ErrCodeInternal, "failed to open upload", err))
	}
	defer f.Close()

	rows, err := reftable.ReadCrops(f, filepath.Ext(fh.Filename), fh.Filename)
	if err != nil {
		return apperr.JSON(c, apperr.Wrap(apperr.ErrCodeInvalidRequest, err.Error(), err))
	}
	n, err := h.svc.Import(c.Request().Context(), rows)
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "Crops imported", "count": n})
}

func (h *cropCtrl) List(c echo.Context) error {
	crops, err := h.svc.List(c.Request().Context())
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, crops)
}

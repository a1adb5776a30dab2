package serviceImp

import (
	"context"
	"errors"
	"math"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"cropcare/pkg/apperr"
	cropRepo "cropcare/pkg/crop/repository"
	"cropcare/pkg/recommend/service"
	"cropcare/pkg/recommend/types"
	soilRepo "cropcare/pkg/soil/repository"
)

var (
	ErrNoSoilData     = apperr.New(apperr.ErrCodeNoSoilData, "No soil data found for selected inputs")
	ErrNoSuitableCrop = apperr.New(apperr.ErrCodeNoSuitableCrop, "No suitable crop found for this soil")
)

const maxPH = 14

var outcomes = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "cropcare_recommendations_total",
		Help: "Recommendation requests by outcome",
	},
	[]string{"outcome"},
)

type recommendSvc struct {
	soils soilRepo.SoilRepository
	crops cropRepo.CropRepository
}

func NewRecommendService(soils soilRepo.SoilRepository, crops cropRepo.CropRepository) service.RecommendService {
	return &recommendSvc{soils: soils, crops: crops}
}

func validate(q *types.Query) error {
	q.Location = strings.TrimSpace(q.Location)
	q.SoilType = strings.TrimSpace(q.SoilType)
	switch {
	case q.Location == "":
		return apperr.New(apperr.ErrCodeInvalidRequest, "location is required")
	case q.SoilType == "":
		return apperr.New(apperr.ErrCodeInvalidRequest, "soil_type is required")
	case math.IsNaN(q.SoilPH) || math.IsInf(q.SoilPH, 0):
		return apperr.New(apperr.ErrCodeInvalidRequest, "soil_ph must be a number")
	case q.SoilPH < 0 || q.SoilPH > maxPH:
		return apperr.New(apperr.ErrCodeInvalidRequest, "soil_ph must be between 0 and 14")
	}
	return nil
}

func (s *recommendSvc) Recommend(ctx context.Context, q types.Query) (*types.Result, error) {
	if err := validate(&q); err != nil {
		outcomes.WithLabelValues("invalid").Inc()
		return nil, err
	}
	fields := log.Fields{"location": q.Location, "soil_type": q.SoilType, "soil_ph": q.SoilPH}

	soil, err := s.soils.FindCovering(ctx, q.Location, q.SoilType, q.SoilPH)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		outcomes.WithLabelValues("no_soil_data").Inc()
		log.WithFields(fields).Debug("[recommend] no soil row")
		return nil, ErrNoSoilData
	}
	if err != nil {
		outcomes.WithLabelValues("error").Inc()
		return nil, apperr.WrapWithContext(apperr.ErrCodeInternal, "soil lookup failed", err, fields)
	}

	baseline := types.BaselineOf(soil, q.SoilPH)
	crop, err := s.crops.FirstMatching(ctx, baseline)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		outcomes.WithLabelValues("no_suitable_crop").Inc()
		log.WithFields(fields).WithField("soil_id", soil.SoilID).Debug("[recommend] no crop")
		return nil, ErrNoSuitableCrop
	}
	if err != nil {
		outcomes.WithLabelValues("error").Inc()
		return nil, apperr.WrapWithContext(apperr.ErrCodeInternal, "crop lookup failed", err, fields)
	}

	outcomes.WithLabelValues("matched").Inc()
	log.WithFields(fields).WithFields(log.Fields{"soil_id": soil.SoilID, "crop": crop.CropName}).Info("[recommend] matched")
	return &types.Result{
		Location: q.Location,
		SoilType: q.SoilType,
		Soil:     soil,
		Baseline: baseline,
		Crop:     crop,
	}, nil
}

func (s *recommendSvc) Options(ctx context.Context) (*types.Options, error) {
	locs, err := s.soils.Locations(ctx)
	if err != nil {
		return nil, apperr.Wrap(apperr.ErrCodeInternal, "failed to list locations", err)
	}
	soilTypes, err := s.soils.SoilTypes(ctx)
	if err != nil {
		return nil, apperr.Wrap(apperr.ErrCodeInternal, "failed to list soil types", err)
	}
	return &types.Options{Locations: locs, SoilTypes: soilTypes}, nil
}

package serviceImp

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cropcare/database/dbtest"
	"cropcare/entities"
	"cropcare/pkg/apperr"
	cropRepoImp "cropcare/pkg/crop/repositoryImp"
	"cropcare/pkg/recommend/service"
	"cropcare/pkg/recommend/types"
	"cropcare/pkg/reftable"
	soilRepoImp "cropcare/pkg/soil/repositoryImp"
)

func rice() entities.CropRecord {
	return entities.CropRecord{
		CropName: "Rice",
		NMin:     250, NMax: 320,
		PMin: 40, PMax: 55,
		KMin: 180, KMax: 230,
		PHMin: 6.5, PHMax: 7.5,
		TempMin: 25, TempMax: 32,
		HumidityMin: 60, HumidityMax: 80,
		RainfallMin: 800, RainfallMax: 1200,
	}
}

func setup(t *testing.T, crops ...entities.CropRecord) service.RecommendService {
	t.Helper()
	ctx := context.Background()
	db := dbtest.Open(t)
	soils := soilRepoImp.New(db)
	require.NoError(t, soils.BulkInsert(ctx, reftable.DefaultSoilRecords()))
	cr := cropRepoImp.New(db)
	require.NoError(t, cr.BulkInsert(ctx, crops))
	return NewRecommendService(soils, cr)
}

func TestRecommendChennai(t *testing.T) {
	svc := setup(t, rice())

	res, err := svc.Recommend(context.Background(), types.Query{Location: "Chennai", SoilType: "Alluvial Soil", SoilPH: 7.0})
	require.NoError(t, err)
	assert.Equal(t, types.Baseline{Nitrogen: 280, Phosphorus: 45, Potassium: 200, Temperature: 30, Humidity: 70, Rainfall: 850, PH: 7.0}, res.Baseline)
	assert.Equal(t, "Rice", res.Crop.CropName)
	assert.Equal(t, "Chennai", res.Location)
	assert.Equal(t, "Alluvial Soil", res.SoilType)
	assert.Equal(t, 6.8, res.Soil.PHMin)
	assert.True(t, types.CropAccepts(res.Crop, res.Baseline))
}

func TestRecommendNoSoilData(t *testing.T) {
	svc := setup(t, rice())
	ctx := context.Background()

	tests := []struct {
		name string
		q    types.Query
	}{
		{"ph below range", types.Query{Location: "Chennai", SoilType: "Alluvial Soil", SoilPH: 6.79}},
		{"ph above range", types.Query{Location: "Chennai", SoilType: "Alluvial Soil", SoilPH: 7.81}},
		{"soil type not recorded for location", types.Query{Location: "Chennai", SoilType: "Red Soil", SoilPH: 7.0}},
		{"unknown location", types.Query{Location: "Bengaluru", SoilType: "Alluvial Soil", SoilPH: 7.0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := svc.Recommend(ctx, tt.q)
			assert.Nil(t, res)
			assert.ErrorIs(t, err, ErrNoSoilData)
			assert.Equal(t, apperr.ErrCodeNoSoilData, apperr.CodeOf(err))
		})
	}
}

func TestRecommendInclusivePHBoundaries(t *testing.T) {
	wide := rice()
	wide.PHMin, wide.PHMax = 0, 14
	svc := setup(t, wide)
	ctx := context.Background()

	for _, ph := range []float64{6.8, 7.8} {
		res, err := svc.Recommend(ctx, types.Query{Location: "Chennai", SoilType: "Alluvial Soil", SoilPH: ph})
		require.NoError(t, err, "ph %v", ph)
		assert.Equal(t, ph, res.Baseline.PH)
	}
}

func TestRecommendCropBoundaries(t *testing.T) {
	// Chennai row: N=280 P=45 K=200 temp=30 hum=70 rain=850, pH 7.0 submitted.
	exact := entities.CropRecord{
		CropName: "Exact",
		NMin:     280, NMax: 280,
		PMin: 45, PMax: 45,
		KMin: 200, KMax: 200,
		PHMin: 7.0, PHMax: 7.0,
		TempMin: 30, TempMax: 30,
		HumidityMin: 70, HumidityMax: 70,
		RainfallMin: 850, RainfallMax: 850,
	}
	svc := setup(t, exact)
	res, err := svc.Recommend(context.Background(), types.Query{Location: "Chennai", SoilType: "Alluvial Soil", SoilPH: 7.0})
	require.NoError(t, err)
	assert.Equal(t, "Exact", res.Crop.CropName)
}

func TestRecommendPartialMatchIsNotEnough(t *testing.T) {
	for _, d := range types.Dimensions {
		t.Run(string(d), func(t *testing.T) {
			c := rice()
			c.CropName = "Almost"
			switch d {
			case types.DimNitrogen:
				c.NMax = 279.9
			case types.DimPhosphorus:
				c.PMin = 45.1
			case types.DimPotassium:
				c.KMax = 199
			case types.DimPH:
				c.PHMax = 6.9
			case types.DimTemperature:
				c.TempMin = 31
			case types.DimHumidity:
				c.HumidityMax = 69
			case types.DimRainfall:
				c.RainfallMin = 851
			}
			svc := setup(t, c)
			_, err := svc.Recommend(context.Background(), types.Query{Location: "Chennai", SoilType: "Alluvial Soil", SoilPH: 7.0})
			assert.ErrorIs(t, err, ErrNoSuitableCrop)
			assert.Equal(t, apperr.ErrCodeNoSuitableCrop, apperr.CodeOf(err))
		})
	}
}

func TestRecommendEarliestCropWins(t *testing.T) {
	first := rice()
	first.CropName = "Paddy"
	second := rice()
	second.CropName = "Rice"
	svc := setup(t, first, second)

	ctx := context.Background()
	q := types.Query{Location: "Chennai", SoilType: "Alluvial Soil", SoilPH: 7.0}
	var ids []uint
	for i := 0; i < 3; i++ {
		res, err := svc.Recommend(ctx, q)
		require.NoError(t, err)
		assert.Equal(t, "Paddy", res.Crop.CropName)
		ids = append(ids, res.Crop.CropID)
	}
	assert.Equal(t, []uint{ids[0], ids[0], ids[0]}, ids, "same inputs, same answer")
}

func TestRecommendNoCropsAtAll(t *testing.T) {
	svc := setup(t)
	_, err := svc.Recommend(context.Background(), types.Query{Location: "Chennai", SoilType: "Alluvial Soil", SoilPH: 7.0})
	assert.ErrorIs(t, err, ErrNoSuitableCrop)
}

func TestRecommendValidation(t *testing.T) {
	svc := setup(t, rice())
	ctx := context.Background()

	tests := []struct {
		name    string
		q       types.Query
		wantMsg string
	}{
		{"blank location", types.Query{Location: "  ", SoilType: "Alluvial Soil", SoilPH: 7}, "location is required"},
		{"blank soil type", types.Query{Location: "Chennai", SoilPH: 7}, "soil_type is required"},
		{"nan", types.Query{Location: "Chennai", SoilType: "Alluvial Soil", SoilPH: math.NaN()}, "soil_ph must be a number"},
		{"inf", types.Query{Location: "Chennai", SoilType: "Alluvial Soil", SoilPH: math.Inf(1)}, "soil_ph must be a number"},
		{"negative", types.Query{Location: "Chennai", SoilType: "Alluvial Soil", SoilPH: -0.1}, "soil_ph must be between 0 and 14"},
		{"above 14", types.Query{Location: "Chennai", SoilType: "Alluvial Soil", SoilPH: 14.01}, "soil_ph must be between 0 and 14"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Recommend(ctx, tt.q)
			require.Error(t, err)
			assert.Equal(t, apperr.ErrCodeInvalidRequest, apperr.CodeOf(err))
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}

	res, err := svc.Recommend(ctx, types.Query{Location: " Chennai ", SoilType: "Alluvial Soil\t", SoilPH: 7})
	require.NoError(t, err, "surrounding whitespace is ignored")
	assert.Equal(t, "Chennai", res.Location)
}

func TestOptions(t *testing.T) {
	svc := setup(t)
	opts, err := svc.Options(context.Background())
	require.NoError(t, err)
	assert.Len(t, opts.Locations, 38)
	assert.Contains(t, opts.Locations, "Chennai")
	assert.Contains(t, opts.SoilTypes, "Alluvial Soil")
	assert.IsIncreasing(t, opts.SoilTypes)
}

type failingSoils struct{}

func (failingSoils) FindCovering(context.Context, string, string, float64) (*entities.SoilRecord, error) {
	return nil, errors.New("database is locked")
}
func (failingSoils) Locations(context.Context) ([]string, error) { return nil, nil }
func (failingSoils) SoilTypes(context.Context) ([]string, error) { return nil, nil }
func (failingSoils) Count(context.Context) (int64, error)        { return 0, nil }
func (failingSoils) BulkInsert(context.Context, []entities.SoilRecord) error {
	return nil
}

func TestRecommendStoreFailure(t *testing.T) {
	svc := NewRecommendService(failingSoils{}, nil)
	_, err := svc.Recommend(context.Background(), types.Query{Location: "Chennai", SoilType: "Alluvial Soil", SoilPH: 7})
	require.Error(t, err)
	assert.Equal(t, apperr.ErrCodeInternal, apperr.CodeOf(err))
	assert.NotErrorIs(t, err, ErrNoSoilData)
}

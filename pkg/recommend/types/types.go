package types

import "cropcare/entities"

// Range is a closed interval; Contains(v) holds when Min <= v <= Max.
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

func (r Range) Contains(v float64) bool { return r.Min <= v && v <= r.Max }

// Valid reports whether the bounds are ordered.
func (r Range) Valid() bool { return r.Min <= r.Max }

// Query is what a user submits.
type Query struct {
	Location string  `json:"location"`
	SoilType string  `json:"soil_type"`
	SoilPH   float64 `json:"soil_ph"`
}

// Baseline is the nutrient and climate profile resolved from the soil table,
// plus the pH the user submitted.
type Baseline struct {
	Nitrogen    float64 `json:"nitrogen"`
	Phosphorus  float64 `json:"phosphorus"`
	Potassium   float64 `json:"potassium"`
	Temperature float64 `json:"temperature"`
	Humidity    float64 `json:"humidity"`
	Rainfall    float64 `json:"rainfall"`
	PH          float64 `json:"ph"`
}

func BaselineOf(s *entities.SoilRecord, ph float64) Baseline {
	return Baseline{
		Nitrogen:    s.Nitrogen,
		Phosphorus:  s.Phosphorus,
		Potassium:   s.Potassium,
		Temperature: s.Temperature,
		Humidity:    s.Humidity,
		Rainfall:    s.Rainfall,
		PH:          ph,
	}
}

// Dimension names one of the seven matched quantities.
type Dimension string

const (
	DimNitrogen    Dimension = "nitrogen"
	DimPhosphorus  Dimension = "phosphorus"
	DimPotassium   Dimension = "potassium"
	DimPH          Dimension = "ph"
	DimTemperature Dimension = "temperature"
	DimHumidity    Dimension = "humidity"
	DimRainfall    Dimension = "rainfall"
)

// Dimensions lists the seven dimensions in matching order.
var Dimensions = []Dimension{DimNitrogen, DimPhosphorus, DimPotassium, DimPH, DimTemperature, DimHumidity, DimRainfall}

// CropRanges returns the crop's range for every dimension.
func CropRanges(c *entities.CropRecord) map[Dimension]Range {
	return map[Dimension]Range{
		DimNitrogen:    {c.NMin, c.NMax},
		DimPhosphorus:  {c.PMin, c.PMax},
		DimPotassium:   {c.KMin, c.KMax},
		DimPH:          {c.PHMin, c.PHMax},
		DimTemperature: {c.TempMin, c.TempMax},
		DimHumidity:    {c.HumidityMin, c.HumidityMax},
		DimRainfall:    {c.RainfallMin, c.RainfallMax},
	}
}

// Value returns the baseline's value for d.
func (b Baseline) Value(d Dimension) float64 {
	switch d {
	case DimNitrogen:
		return b.Nitrogen
	case DimPhosphorus:
		return b.Phosphorus
	case DimPotassium:
		return b.Potassium
	case DimPH:
		return b.PH
	case DimTemperature:
		return b.Temperature
	case DimHumidity:
		return b.Humidity
	case DimRainfall:
		return b.Rainfall
	}
	return 0
}

// CropAccepts is the in-memory form of the crop lookup predicate: every one of
// the seven ranges must contain the baseline value.
func CropAccepts(c *entities.CropRecord, b Baseline) bool {
	ranges := CropRanges(c)
	for _, d := range Dimensions {
		if !ranges[d].Contains(b.Value(d)) {
			return false
		}
	}
	return true
}

// Result is the outcome of a successful recommendation.
type Result struct {
	Location string               `json:"location"`
	SoilType string               `json:"soil_type"`
	Soil     *entities.SoilRecord `json:"soil"`
	Baseline Baseline             `json:"baseline"`
	Crop     *entities.CropRecord `json:"crop"`
}

// Options lists the values the soil table can resolve, for building input forms.
type Options struct {
	Locations []string `json:"locations"`
	SoilTypes []string `json:"soil_types"`
}

package reftable

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

const soilCSV = "\uFEFFDistrict,Soil Type,N,P,K,Temp,Hum,Rain,pH-Min,pH-Max\n" +
	"Chennai,Alluvial Soil,280,45,200,30,70,850,6.8,7.8\n" +
	",,,,,,,,,\n" +
	"Madurai, Black Soil ,300,50,220,31,60,800,7.5,8.5\n"

func TestReadSoilCSV(t *testing.T) {
	rows, err := ReadSoil(strings.NewReader(soilCSV), ".csv", "soil.csv")
	require.NoError(t, err)
	require.Len(t, rows, 2, "blank rows are skipped")

	assert.Equal(t, "Chennai", rows[0].Location)
	assert.Equal(t, "Alluvial Soil", rows[0].SoilType)
	assert.Equal(t, 280.0, rows[0].Nitrogen)
	assert.Equal(t, 850.0, rows[0].Rainfall)
	assert.Equal(t, 6.8, rows[0].PHMin)
	assert.Equal(t, 7.8, rows[0].PHMax)
	assert.Equal(t, "Black Soil", rows[1].SoilType)
}

func TestReadSoilErrors(t *testing.T) {
	tests := []struct {
		name    string
		ext     string
		body    string
		wantErr string
	}{
		{"missing column", ".csv", "location,soil_type,n\nA,B,1\n", `missing required column "phosphorus"`},
		{"bad number", ".csv", "location,soil_type,n,p,k,temp,hum,rain,ph_min,ph_max\nA,B,x,1,1,1,1,1,6,7\n", `row 2: column nitrogen: invalid number "x"`},
		{"nan ph", ".csv", "location,soil_type,n,p,k,temp,hum,rain,ph_min,ph_max\nA,B,1,1,1,1,1,1,NaN,7\n", `row 2: column ph_min: invalid number "NaN"`},
		{"infinite rainfall", ".csv", "location,soil_type,n,p,k,temp,hum,rain,ph_min,ph_max\nA,B,1,1,1,1,1,+Inf,6,7\n", `invalid number "+Inf"`},
		{"inverted ph", ".csv", "location,soil_type,n,p,k,temp,hum,rain,ph_min,ph_max\nA,B,1,1,1,1,1,1,8,7\n", "ph_min 8.00 > ph_max 7.00"},
		{"no location", ".csv", "location,soil_type,n,p,k,temp,hum,rain,ph_min,ph_max\n,B,1,1,1,1,1,1,6,7\n", "location and soil_type are required"},
		{"empty", ".csv", "", "empty table"},
		{"unsupported", ".json", "{}", "unsupported table format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadSoil(strings.NewReader(tt.body), tt.ext, "soil"+tt.ext)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}

	_, err := ReadSoil(strings.NewReader("{}"), ".json", "x.json")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func cropXLSX(t *testing.T, rows [][]any) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &r))
	}
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return buf.Bytes()
}

var cropHeader = []any{"Crop Name", "Scientific Name", "Season", "Duration", "Demand", "Image",
	"n_min", "n_max", "p_min", "p_max", "k_min", "k_max", "ph_min", "ph_max",
	"temp_min", "temp_max", "humidity_min", "humidity_max", "rainfall_min", "rainfall_max"}

func TestReadCropsXLSX(t *testing.T) {
	data := cropXLSX(t, [][]any{
		cropHeader,
		{"Rice", "Oryza sativa", "Kharif", "120 days", "High", "uploads/rice.png", 250, 320, 40, 55, 180, 230, 6.5, 7.5, 25, 32, 60, 80, 800, 1200},
	})
	rows, err := ReadCrops(bytes.NewReader(data), ".xlsx", "crops.xlsx")
	require.NoError(t, err)
	require.Len(t, rows, 1)

	c := rows[0]
	assert.Equal(t, "Rice", c.CropName)
	assert.Equal(t, "Oryza sativa", c.ScientificName)
	assert.Equal(t, "uploads/rice.png", c.Image)
	assert.Equal(t, 250.0, c.NMin)
	assert.Equal(t, 7.5, c.PHMax)
	assert.Equal(t, 1200.0, c.RainfallMax)
}

func TestReadCropsCSVOptionalColumns(t *testing.T) {
	body := "crop,n_min,n_max,p_min,p_max,k_min,k_max,ph_min,ph_max,temp_min,temp_max,humidity_min,humidity_max,rainfall_min,rainfall_max\n" +
		"Millet,100,200,20,40,100,150,5.5,7,25,35,40,60,400,700\n"
	rows, err := ReadCrops(strings.NewReader(body), ".csv", "crops.csv")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Millet", rows[0].CropName)
	assert.Empty(t, rows[0].Season)

	_, err = ReadCrops(strings.NewReader("crop_name,n_min\nRice,1\n"), ".csv", "crops.csv")
	assert.ErrorContains(t, err, `missing required column "n_max"`)

	nan := "crop,n_min,n_max,p_min,p_max,k_min,k_max,ph_min,ph_max,temp_min,temp_max,humidity_min,humidity_max,rainfall_min,rainfall_max\n" +
		"Millet,100,200,20,40,100,150,5.5,nan,25,35,40,60,400,700\n"
	_, err = ReadCrops(strings.NewReader(nan), ".csv", "crops.csv")
	assert.ErrorContains(t, err, `invalid number "nan"`)
}

func TestLoadSoilFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "soil.csv")
	require.NoError(t, os.WriteFile(path, []byte(soilCSV), 0o644))
	rows, err := LoadSoilFile(path)
	require.NoError(t, err)
	assert.Len(t, rows, 2)

	_, err = LoadSoilFile(filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
}

func TestDefaultSoilRecords(t *testing.T) {
	rows := DefaultSoilRecords()
	require.Len(t, rows, 38)

	var found bool
	for _, r := range rows {
		assert.LessOrEqual(t, r.PHMin, r.PHMax, r.Location)
		if r.Location == "Chennai" && r.SoilType == "Alluvial Soil" {
			found = true
			assert.Equal(t, 280.0, r.Nitrogen)
			assert.Equal(t, 45.0, r.Phosphorus)
			assert.Equal(t, 200.0, r.Potassium)
			assert.Equal(t, 30.0, r.Temperature)
			assert.Equal(t, 70.0, r.Humidity)
			assert.Equal(t, 850.0, r.Rainfall)
		}
	}
	assert.True(t, found)

	rows[0].Location = "mutated"
	assert.NotEqual(t, "mutated", DefaultSoilRecords()[0].Location, "callers get a copy")
}

// Package reftable reads the soil and crop range tables from CSV or XLSX
// sheets and seeds them into the store.
package reftable

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"cropcare/entities"
)

// ErrUnsupportedFormat is returned for files that are neither .csv nor .xlsx.
var ErrUnsupportedFormat = errors.New("unsupported table format (want .csv or .xlsx)")

type table struct {
	head   []string
	cols   map[string]int
	rows   [][]string
	source string
}

func norm(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "\uFEFF") // BOM
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "-", "")
	s = strings.ReplaceAll(s, "_", "")
	return s
}

func readTable(r io.Reader, ext, source string) (*table, error) {
	var records [][]string
	switch strings.ToLower(ext) {
	case ".csv":
		cr := csv.NewReader(r)
		cr.FieldsPerRecord = -1
		cr.TrimLeadingSpace = true
		recs, err := cr.ReadAll()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", source, err)
		}
		records = recs
	case ".xlsx":
		x, err := excelize.OpenReader(r)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", source, err)
		}
		defer x.Close()
		sheets := x.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("%s: workbook has no sheets", source)
		}
		recs, err := x.GetRows(sheets[0])
		if err != nil {
			return nil, fmt.Errorf("%s: %w", source, err)
		}
		records = recs
	default:
		return nil, fmt.Errorf("%s: %w", source, ErrUnsupportedFormat)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s: empty table", source)
	}

	t := &table{head: records[0], cols: map[string]int{}, source: source}
	for i, h := range records[0] {
		t.cols[norm(h)] = i
	}
	for _, rec := range records[1:] {
		if blank(rec) {
			continue
		}
		t.rows = append(t.rows, rec)
	}
	return t, nil
}

func blank(rec []string) bool {
	for _, v := range rec {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

// find returns the index of the first header matching any alias, or -1.
func (t *table) find(keys ...string) int {
	for _, k := range keys {
		if idx, ok := t.cols[norm(k)]; ok {
			return idx
		}
	}
	return -1
}

type column struct {
	name string
	idx  int
}

func (t *table) require(name string, aliases ...string) (column, error) {
	idx := t.find(append([]string{name}, aliases...)...)
	if idx == -1 {
		return column{}, fmt.Errorf("%s: missing required column %q. Found headers: %v", t.source, name, t.head)
	}
	return column{name: name, idx: idx}, nil
}

func (t *table) optional(name string, aliases ...string) column {
	return column{name: name, idx: t.find(append([]string{name}, aliases...)...)}
}

// row wraps one record, collecting the first parse error.
type row struct {
	rec []string
	num int
	err error
}

func (r *row) str(c column) string {
	if c.idx < 0 || c.idx >= len(r.rec) {
		return ""
	}
	return strings.TrimSpace(r.rec[c.idx])
}

func (r *row) float(c column) float64 {
	s := r.str(c)
	v, err := strconv.ParseFloat(s, 64)
	if (err != nil || math.IsNaN(v) || math.IsInf(v, 0)) && r.err == nil {
		r.err = fmt.Errorf("row %d: column %s: invalid number %q", r.num, c.name, s)
	}
	return v
}

// LoadSoilFile reads soil rows from a .csv or .xlsx file.
func LoadSoilFile(path string) ([]entities.SoilRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadSoil(f, filepath.Ext(path), path)
}

// ReadSoil parses soil rows. ext selects the format (".csv" or ".xlsx").
func ReadSoil(r io.Reader, ext, source string) ([]entities.SoilRecord, error) {
	t, err := readTable(r, ext, source)
	if err != nil {
		return nil, err
	}

	var cols [10]column
	specs := [][]string{
		{"location", "district", "place"},
		{"soil_type", "soil", "soiltype"},
		{"nitrogen", "n"},
		{"phosphorus", "p"},
		{"potassium", "k"},
		{"temperature", "temp"},
		{"humidity", "hum"},
		{"rainfall", "rain"},
		{"ph_min", "min_ph"},
		{"ph_max", "max_ph"},
	}
	for i, s := range specs {
		if cols[i], err = t.require(s[0], s[1:]...); err != nil {
			return nil, err
		}
	}

	out := make([]entities.SoilRecord, 0, len(t.rows))
	for i, rec := range t.rows {
		rw := &row{rec: rec, num: i + 2}
		s := entities.SoilRecord{
			Location:    rw.str(cols[0]),
			SoilType:    rw.str(cols[1]),
			Nitrogen:    rw.float(cols[2]),
			Phosphorus:  rw.float(cols[3]),
			Potassium:   rw.float(cols[4]),
			Temperature: rw.float(cols[5]),
			Humidity:    rw.float(cols[6]),
			Rainfall:    rw.float(cols[7]),
			PHMin:       rw.float(cols[8]),
			PHMax:       rw.float(cols[9]),
		}
		if rw.err != nil {
			return nil, fmt.Errorf("%s: %w", source, rw.err)
		}
		if s.Location == "" || s.SoilType == "" {
			return nil, fmt.Errorf("%s: row %d: location and soil_type are required", source, rw.num)
		}
		if s.PHMin > s.PHMax {
			return nil, fmt.Errorf("%s: row %d: ph_min %.2f > ph_max %.2f", source, rw.num, s.PHMin, s.PHMax)
		}
		out = append(out, s)
	}
	return out, nil
}

// LoadCropFile reads crop rows from a .csv or .xlsx file.
func LoadCropFile(path string) ([]entities.CropRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadCrops(f, filepath.Ext(path), path)
}

// ReadCrops parses crop rows. Range consistency is checked by the crop
// service on insert, not here.
func ReadCrops(r io.Reader, ext, source string) ([]entities.CropRecord, error) {
	t, err := readTable(r, ext, source)
	if err != nil {
		return nil, err
	}

	name, err := t.require("crop_name", "crop", "name", "label")
	if err != nil {
		return nil, err
	}
	sci := t.optional("scientific_name", "scientific")
	season := t.optional("season")
	duration := t.optional("duration")
	demand := t.optional("demand")
	image := t.optional("image", "image_ref", "image_url")

	bounds := []string{
		"n_min", "n_max", "p_min", "p_max", "k_min", "k_max",
		"ph_min", "ph_max", "temp_min", "temp_max",
		"humidity_min", "humidity_max", "rainfall_min", "rainfall_max",
	}
	bc := make([]column, len(bounds))
	for i, b := range bounds {
		if bc[i], err = t.require(b); err != nil {
			return nil, err
		}
	}

	out := make([]entities.CropRecord, 0, len(t.rows))
	for i, rec := range t.rows {
		rw := &row{rec: rec, num: i + 2}
		c := entities.CropRecord{
			CropName:       rw.str(name),
			ScientificName: rw.str(sci),
			Season:         rw.str(season),
			Duration:       rw.str(duration),
			Demand:         rw.str(demand),
			Image:          rw.str(image),
			NMin:           rw.float(bc[0]),
			NMax:           rw.float(bc[1]),
			PMin:           rw.float(bc[2]),
			PMax:           rw.float(bc[3]),
			KMin:           rw.float(bc[4]),
			KMax:           rw.float(bc[5]),
			PHMin:          rw.float(bc[6]),
			PHMax:          rw.float(bc[7]),
			TempMin:        rw.float(bc[8]),
			TempMax:        rw.float(bc[9]),
			HumidityMin:    rw.float(bc[10]),
			HumidityMax:    rw.float(bc[11]),
			RainfallMin:    rw.float(bc[12]),
			RainfallMax:    rw.float(bc[13]),
		}
		if rw.err != nil {
			return nil, fmt.Errorf("%s: %w", source, rw.err)
		}
		if c.CropName == "" {
			return nil, fmt.Errorf("%s: row %d: crop_name is required", source, rw.num)
		}
		out = append(out, c)
	}
	return out, nil
}

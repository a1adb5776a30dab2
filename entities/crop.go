package entities

import "time"

// CropRecord holds the inclusive ranges for which a crop is considered suitable.
type CropRecord struct {
	CropID         uint   `gorm:"primaryKey" json:"crop_id"`
	CropName       string `json:"crop_name"`
	ScientificName string `json:"scientific_name"`
	Season         string `json:"season"`
	Duration       string `json:"duration"`
	Demand         string `json:"demand"`
	Image          string `json:"image"` // storage reference, see pkg/upload

	NMin float64 `gorm:"column:n_min" json:"n_min"`
	NMax float64 `gorm:"column:n_max" json:"n_max"`
	PMin float64 `gorm:"column:p_min" json:"p_min"`
	PMax float64 `gorm:"column:p_max" json:"p_max"`
	KMin float64 `gorm:"column:k_min" json:"k_min"`
	KMax float64 `gorm:"column:k_max" json:"k_max"`

	PHMin float64 `gorm:"column:ph_min" json:"ph_min"`
	PHMax float64 `gorm:"column:ph_max" json:"ph_max"`

	TempMin float64 `gorm:"column:temp_min" json:"temp_min"`
	TempMax float64 `gorm:"column:temp_max" json:"temp_max"`

	HumidityMin float64 `gorm:"column:humidity_min" json:"humidity_min"`
	HumidityMax float64 `gorm:"column:humidity_max" json:"humidity_max"`

	RainfallMin float64 `gorm:"column:rainfall_min" json:"rainfall_min"`
	RainfallMax float64 `gorm:"column:rainfall_max" json:"rainfall_max"`

	CreatedAt time.Time `json:"created_at"`
}

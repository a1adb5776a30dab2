package entities

// SoilRecord is one row of the soil range table. Rows are reference data and
// are only ever inserted by the seeders.
type SoilRecord struct {
	SoilID      uint    `gorm:"primaryKey" json:"soil_id"`
	Location    string  `gorm:"index:idx_soil_lookup" json:"location"`
	SoilType    string  `gorm:"index:idx_soil_lookup" json:"soil_type"`
	Nitrogen    float64 `json:"nitrogen"`
	Phosphorus  float64 `json:"phosphorus"`
	Potassium   float64 `json:"potassium"`
	Temperature float64 `json:"temperature"`
	Humidity    float64 `json:"humidity"`
	Rainfall    float64 `json:"rainfall"`
	PHMin       float64 `gorm:"column:ph_min" json:"ph_min"`
	PHMax       float64 `gorm:"column:ph_max" json:"ph_max"`
}

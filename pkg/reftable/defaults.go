package reftable

import "cropcare/entities"

// tamilNadu is the built-in soil range table, one row per district.
var tamilNadu = []entities.SoilRecord{
	{Location: "Ariyalur", SoilType: "Red Soil", Nitrogen: 260, Phosphorus: 40, Potassium: 160, Temperature: 29, Humidity: 60, Rainfall: 750, PHMin: 6.0, PHMax: 7.0},
	{Location: "Chengalpattu", SoilType: "Alluvial Soil", Nitrogen: 300, Phosphorus: 50, Potassium: 210, Temperature: 28, Humidity: 65, Rainfall: 900, PHMin: 6.5, PHMax: 7.5},
	{Location: "Chennai", SoilType: "Alluvial Soil", Nitrogen: 280, Phosphorus: 45, Potassium: 200, Temperature: 30, Humidity: 70, Rainfall: 850, PHMin: 6.8, PHMax: 7.8},
	{Location: "Coimbatore", SoilType: "Red Soil", Nitrogen: 280, Phosphorus: 45, Potassium: 180, Temperature: 26, Humidity: 65, Rainfall: 700, PHMin: 6.0, PHMax: 7.0},
	{Location: "Cuddalore", SoilType: "Alluvial Soil", Nitrogen: 310, Phosphorus: 52, Potassium: 220, Temperature: 28, Humidity: 68, Rainfall: 1000, PHMin: 6.2, PHMax: 7.6},
	{Location: "Dharmapuri", SoilType: "Red Soil", Nitrogen: 250, Phosphorus: 38, Potassium: 150, Temperature: 27, Humidity: 55, Rainfall: 680, PHMin: 5.8, PHMax: 6.8},
	{Location: "Dindigul", SoilType: "Red Soil", Nitrogen: 260, Phosphorus: 40, Potassium: 165, Temperature: 29, Humidity: 58, Rainfall: 720, PHMin: 6.0, PHMax: 7.0},
	{Location: "Erode", SoilType: "Alluvial Soil", Nitrogen: 310, Phosphorus: 52, Potassium: 230, Temperature: 28, Humidity: 62, Rainfall: 780, PHMin: 6.2, PHMax: 7.8},
	{Location: "Kallakurichi", SoilType: "Red Soil", Nitrogen: 255, Phosphorus: 39, Potassium: 155, Temperature: 29, Humidity: 60, Rainfall: 740, PHMin: 6.0, PHMax: 7.0},
	{Location: "Kanchipuram", SoilType: "Alluvial Soil", Nitrogen: 300, Phosphorus: 48, Potassium: 210, Temperature: 28, Humidity: 67, Rainfall: 880, PHMin: 6.4, PHMax: 7.6},
	{Location: "Kanyakumari", SoilType: "Laterite Soil", Nitrogen: 240, Phosphorus: 35, Potassium: 140, Temperature: 27, Humidity: 75, Rainfall: 1200, PHMin: 5.5, PHMax: 6.5},
	{Location: "Karur", SoilType: "Black Soil", Nitrogen: 290, Phosphorus: 48, Potassium: 205, Temperature: 30, Humidity: 60, Rainfall: 760, PHMin: 6.5, PHMax: 8.0},
	{Location: "Krishnagiri", SoilType: "Red Soil", Nitrogen: 250, Phosphorus: 38, Potassium: 150, Temperature: 27, Humidity: 58, Rainfall: 700, PHMin: 5.8, PHMax: 6.8},
	{Location: "Madurai", SoilType: "Red Soil", Nitrogen: 260, Phosphorus: 40, Potassium: 160, Temperature: 30, Humidity: 55, Rainfall: 650, PHMin: 6.0, PHMax: 7.0},
	{Location: "Mayiladuthurai", SoilType: "Alluvial Soil", Nitrogen: 305, Phosphorus: 50, Potassium: 215, Temperature: 28, Humidity: 70, Rainfall: 950, PHMin: 6.5, PHMax: 7.5},
	{Location: "Nagapattinam", SoilType: "Alluvial Soil", Nitrogen: 320, Phosphorus: 55, Potassium: 230, Temperature: 28, Humidity: 75, Rainfall: 1100, PHMin: 6.5, PHMax: 7.8},
	{Location: "Namakkal", SoilType: "Black Soil", Nitrogen: 285, Phosphorus: 46, Potassium: 200, Temperature: 29, Humidity: 60, Rainfall: 740, PHMin: 6.5, PHMax: 8.0},
	{Location: "Nilgiris", SoilType: "Laterite Soil", Nitrogen: 230, Phosphorus: 30, Potassium: 130, Temperature: 18, Humidity: 80, Rainfall: 1400, PHMin: 5.0, PHMax: 6.0},
	{Location: "Perambalur", SoilType: "Red Soil", Nitrogen: 255, Phosphorus: 39, Potassium: 155, Temperature: 29, Humidity: 60, Rainfall: 720, PHMin: 6.0, PHMax: 7.0},
	{Location: "Pudukkottai", SoilType: "Red Soil", Nitrogen: 250, Phosphorus: 38, Potassium: 150, Temperature: 30, Humidity: 58, Rainfall: 700, PHMin: 5.8, PHMax: 6.8},
	{Location: "Ramanathapuram", SoilType: "Sandy Soil", Nitrogen: 220, Phosphorus: 30, Potassium: 120, Temperature: 32, Humidity: 55, Rainfall: 600, PHMin: 7.0, PHMax: 8.5},
	{Location: "Ranipet", SoilType: "Red Soil", Nitrogen: 265, Phosphorus: 42, Potassium: 170, Temperature: 29, Humidity: 62, Rainfall: 760, PHMin: 6.2, PHMax: 7.2},
	{Location: "Salem", SoilType: "Black Soil", Nitrogen: 290, Phosphorus: 48, Potassium: 210, Temperature: 29, Humidity: 60, Rainfall: 720, PHMin: 6.5, PHMax: 8.2},
	{Location: "Sivaganga", SoilType: "Red Soil", Nitrogen: 245, Phosphorus: 36, Potassium: 145, Temperature: 30, Humidity: 56, Rainfall: 680, PHMin: 5.8, PHMax: 6.8},
	{Location: "Tenkasi", SoilType: "Red Soil", Nitrogen: 255, Phosphorus: 39, Potassium: 155, Temperature: 29, Humidity: 60, Rainfall: 750, PHMin: 6.0, PHMax: 7.0},
	{Location: "Thanjavur", SoilType: "Alluvial Soil", Nitrogen: 320, Phosphorus: 55, Potassium: 220, Temperature: 28, Humidity: 70, Rainfall: 900, PHMin: 6.5, PHMax: 7.5},
	{Location: "Theni", SoilType: "Red Soil", Nitrogen: 250, Phosphorus: 38, Potassium: 150, Temperature: 27, Humidity: 60, Rainfall: 800, PHMin: 5.8, PHMax: 6.8},
	{Location: "Thoothukudi", SoilType: "Sandy Soil", Nitrogen: 225, Phosphorus: 32, Potassium: 130, Temperature: 31, Humidity: 58, Rainfall: 650, PHMin: 7.0, PHMax: 8.5},
	{Location: "Tiruchirappalli", SoilType: "Red Soil", Nitrogen: 260, Phosphorus: 40, Potassium: 160, Temperature: 29, Humidity: 60, Rainfall: 750, PHMin: 6.0, PHMax: 7.0},
	{Location: "Tirunelveli", SoilType: "Red Soil", Nitrogen: 250, Phosphorus: 38, Potassium: 150, Temperature: 31, Humidity: 58, Rainfall: 680, PHMin: 5.8, PHMax: 7.0},
	{Location: "Tirupattur", SoilType: "Red Soil", Nitrogen: 255, Phosphorus: 39, Potassium: 155, Temperature: 28, Humidity: 60, Rainfall: 720, PHMin: 6.0, PHMax: 7.0},
	{Location: "Tiruppur", SoilType: "Black Soil", Nitrogen: 285, Phosphorus: 46, Potassium: 200, Temperature: 28, Humidity: 60, Rainfall: 700, PHMin: 6.5, PHMax: 8.0},
	{Location: "Tiruvallur", SoilType: "Alluvial Soil", Nitrogen: 300, Phosphorus: 48, Potassium: 210, Temperature: 28, Humidity: 68, Rainfall: 850, PHMin: 6.4, PHMax: 7.6},
	{Location: "Tiruvannamalai", SoilType: "Red Soil", Nitrogen: 260, Phosphorus: 40, Potassium: 160, Temperature: 29, Humidity: 60, Rainfall: 760, PHMin: 6.0, PHMax: 7.0},
	{Location: "Tiruvarur", SoilType: "Alluvial Soil", Nitrogen: 315, Phosphorus: 54, Potassium: 225, Temperature: 28, Humidity: 72, Rainfall: 1000, PHMin: 6.5, PHMax: 7.8},
	{Location: "Vellore", SoilType: "Red Soil", Nitrogen: 265, Phosphorus: 42, Potassium: 170, Temperature: 29, Humidity: 62, Rainfall: 740, PHMin: 6.2, PHMax: 7.2},
	{Location: "Viluppuram", SoilType: "Laterite Soil", Nitrogen: 240, Phosphorus: 35, Potassium: 140, Temperature: 27, Humidity: 68, Rainfall: 820, PHMin: 5.5, PHMax: 6.5},
	{Location: "Virudhunagar", SoilType: "Red Soil", Nitrogen: 245, Phosphorus: 36, Potassium: 145, Temperature: 31, Humidity: 56, Rainfall: 670, PHMin: 5.8, PHMax: 6.8},
}

// DefaultSoilRecords returns a copy of the built-in soil range table.
func DefaultSoilRecords() []entities.SoilRecord {
	return append([]entities.SoilRecord(nil), tamilNadu...)
}

package repository

import (
	"context"

	"cropcare/entities"
)

type SoilRepository interface {
	// FindCovering returns the lowest-id row for location and soilType whose
	// pH range contains ph. gorm.ErrRecordNotFound when nothing covers it.
	FindCovering(ctx context.Context, location, soilType string, ph float64) (*entities.SoilRecord, error)
	Locations(ctx context.Context) ([]string, error)
	SoilTypes(ctx context.Context) ([]string, error)
	Count(ctx context.Context) (int64, error)
	BulkInsert(ctx context.Context, rows []entities.SoilRecord) error
}

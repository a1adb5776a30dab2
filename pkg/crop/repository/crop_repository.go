package repository

import (
	"context"

	"cropcare/entities"
	"cropcare/pkg/recommend/types"
)

type CropRepository interface {
	Create(ctx context.Context, c *entities.CropRecord) error
	BulkInsert(ctx context.Context, rows []entities.CropRecord) error
	// FirstMatching returns the lowest-id crop whose seven ranges all contain
	// the baseline values. gorm.ErrRecordNotFound when none does.
	FirstMatching(ctx context.Context, b types.Baseline) (*entities.CropRecord, error)
	List(ctx context.Context) ([]entities.CropRecord, error)
	Count(ctx context.Context) (int64, error)
}

package repositoryImp

import (
	"context"

	"gorm.io/gorm"

	"cropcare/entities"
	"cropcare/pkg/crop/repository"
	"cropcare/pkg/recommend/types"
)

type cropRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.CropRepository { return &cropRepo{db} }

func (r *cropRepo) Create(ctx context.Context, c *entities.CropRecord) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *cropRepo) BulkInsert(ctx context.Context, rows []entities.CropRecord) error {
	if len(rows) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.CreateInBatches(rows, 100).Error
	})
}

func (r *cropRepo) FirstMatching(ctx context.Context, b types.Baseline) (*entities.CropRecord, error) {
	var c entities.CropRecord
	err := r.db.WithContext(ctx).
		Where("? BETWEEN n_min AND n_max", b.Nitrogen).
		Where("? BETWEEN p_min AND p_max", b.Phosphorus).
		Where("? BETWEEN k_min AND k_max", b.Potassium).
		Where("? BETWEEN ph_min AND ph_max", b.PH).
		Where("? BETWEEN temp_min AND temp_max", b.Temperature).
		Where("? BETWEEN humidity_min AND humidity_max", b.Humidity).
		Where("? BETWEEN rainfall_min AND rainfall_max", b.Rainfall).
		Order("crop_id ASC").
		First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *cropRepo) List(ctx context.Context) ([]entities.CropRecord, error) {
	var out []entities.CropRecord
	err := r.db.WithContext(ctx).Order("crop_id ASC").Find(&out).Error
	return out, err
}

func (r *cropRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&entities.CropRecord{}).Count(&n).Error
	return n, err
}

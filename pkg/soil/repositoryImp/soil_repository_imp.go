package repositoryImp

import (
	"context"

	"gorm.io/gorm"

	"cropcare/entities"
	"cropcare/pkg/soil/repository"
)

type soilRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.SoilRepository { return &soilRepo{db} }

func (r *soilRepo) FindCovering(ctx context.Context, location, soilType string, ph float64) (*entities.SoilRecord, error) {
	var s entities.SoilRecord
	err := r.db.WithContext(ctx).
		Where("location = ? AND soil_type = ?", location, soilType).
		Where("? BETWEEN ph_min AND ph_max", ph).
		Order("soil_id ASC").
		First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *soilRepo) Locations(ctx context.Context) ([]string, error) {
	return r.distinct(ctx, "location")
}

func (r *soilRepo) SoilTypes(ctx context.Context) ([]string, error) {
	return r.distinct(ctx, "soil_type")
}

func (r *soilRepo) distinct(ctx context.Context, col string) ([]string, error) {
	var out []string
	err := r.db.WithContext(ctx).Model(&entities.SoilRecord{}).
		Distinct(col).Order(col + " ASC").Pluck(col, &out).Error
	return out, err
}

func (r *soilRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&entities.SoilRecord{}).Count(&n).Error
	return n, err
}

func (r *soilRepo) BulkInsert(ctx context.Context, rows []entities.SoilRecord) error {
	if len(rows) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.CreateInBatches(rows, 100).Error
	})
}

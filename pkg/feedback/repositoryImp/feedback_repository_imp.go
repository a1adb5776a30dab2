package repositoryImp

import (
	"context"

	"gorm.io/gorm"

	"cropcare/entities"
	"cropcare/pkg/feedback/repository"
)

type feedbackRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.FeedbackRepository { return &feedbackRepo{db} }

func (r *feedbackRepo) Create(ctx context.Context, f *entities.Feedback) error {
	return r.db.WithContext(ctx).Create(f).Error
}

func (r *feedbackRepo) List(ctx context.Context) ([]entities.Feedback, error) {
	var out []entities.Feedback
	err := r.db.WithContext(ctx).Order("feedback_id DESC").Find(&out).Error
	return out, err
}

func (r *feedbackRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&entities.Feedback{}).Count(&n).Error
	return n, err
}

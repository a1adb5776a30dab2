package repository

import (
	"context"

	"cropcare/entities"
)

type FeedbackRepository interface {
	Create(ctx context.Context, f *entities.Feedback) error
	// List returns feedback newest first.
	List(ctx context.Context) ([]entities.Feedback, error)
	Count(ctx context.Context) (int64, error)
}

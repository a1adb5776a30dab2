package service

import (
	"context"
	"mime/multipart"

	"cropcare/entities"
)

type FeedbackService interface {
	// Submit records feedback from username. image may be nil; files that are
	// not png/jpg/jpeg are dropped and the feedback is stored without them.
	Submit(ctx context.Context, username, kind, message string, image *multipart.FileHeader) (*entities.Feedback, error)
	List(ctx context.Context) ([]entities.Feedback, error)
	Count(ctx context.Context) (int64, error)
}

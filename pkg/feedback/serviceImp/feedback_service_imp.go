package serviceImp

import (
	"context"
	"mime/multipart"
	"strings"

	log "github.com/sirupsen/logrus"

	"cropcare/entities"
	"cropcare/pkg/apperr"
	repo "cropcare/pkg/feedback/repository"
	"cropcare/pkg/feedback/service"
	"cropcare/pkg/upload"
)

type feedbackSvc struct {
	r     repo.FeedbackRepository
	store upload.Storage
}

func NewFeedbackService(r repo.FeedbackRepository, store upload.Storage) service.FeedbackService {
	return &feedbackSvc{r: r, store: store}
}

func (s *feedbackSvc) Submit(ctx context.Context, username, kind, message string, image *multipart.FileHeader) (*entities.Feedback, error) {
	f := &entities.Feedback{
		Username: username,
		Type:     strings.TrimSpace(kind),
		Message:  strings.TrimSpace(message),
	}
	if f.Message == "" {
		return nil, apperr.New(apperr.ErrCodeInvalidRequest, "message is required")
	}

	if image != nil && image.Filename != "" {
		if upload.AllowedImage(image.Filename) {
			ref, err := s.store.Save(ctx, upload.FeedbackFiles, image)
			if err != nil {
				return nil, apperr.Wrap(apperr.ErrCodeInternal, "failed to store feedback image", err)
			}
			f.Image = &ref
		} else {
			log.WithFields(log.Fields{"user": username, "file": image.Filename}).Debug("[feedback] ignoring non-image attachment")
		}
	}

	if err := s.r.Create(ctx, f); err != nil {
		if f.Image != nil {
			if rmErr := s.store.Remove(ctx, *f.Image); rmErr != nil {
				log.WithError(rmErr).WithField("ref", *f.Image).Warn("[feedback] failed to remove orphaned image")
			}
		}
		return nil, apperr.Wrap(apperr.ErrCodeInternal, "failed to save feedback", err)
	}
	log.WithFields(log.Fields{"user": username, "type": f.Type, "image": f.Image != nil}).Info("[feedback] submitted")
	return f, nil
}

func (s *feedbackSvc) List(ctx context.Context) ([]entities.Feedback, error) {
	out, err := s.r.List(ctx)
	if err != nil {
		return nil, apperr.Wrap(apperr.ErrCodeInternal, "failed to list feedback", err)
	}
	return out, nil
}

func (s *feedbackSvc) Count(ctx context.Context) (int64, error) { return s.r.Count(ctx) }

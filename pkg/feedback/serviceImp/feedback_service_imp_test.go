package serviceImp

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cropcare/database/dbtest"
	"cropcare/entities"
	"cropcare/pkg/apperr"
	repo "cropcare/pkg/feedback/repository"
	feedbackRepoImp "cropcare/pkg/feedback/repositoryImp"
	"cropcare/pkg/upload"
	"cropcare/pkg/upload/uploadtest"
)

func TestSubmit(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	svc := NewFeedbackService(feedbackRepoImp.New(dbtest.Open(t)), upload.NewLocal(root))

	plain, err := svc.Submit(ctx, "farmer", "bug", "page is slow", nil)
	require.NoError(t, err)
	assert.Nil(t, plain.Image)

	withImg, err := svc.Submit(ctx, "farmer", "suggestion", "add millet", uploadtest.FileHeader(t, "field.jpg", []byte("jpg")))
	require.NoError(t, err)
	require.NotNil(t, withImg.Image)
	assert.Regexp(t, `^feedback_uploads/\d{14}_field\.jpg$`, *withImg.Image)
	assert.FileExists(t, filepath.Join(root, *withImg.Image))

	skipped, err := svc.Submit(ctx, "farmer", "other", "see attached", uploadtest.FileHeader(t, "notes.pdf", []byte("pdf")))
	require.NoError(t, err, "disallowed attachments are dropped, not rejected")
	assert.Nil(t, skipped.Image)

	_, err = svc.Submit(ctx, "farmer", "bug", "   ", nil)
	assert.Equal(t, apperr.ErrCodeInvalidRequest, apperr.CodeOf(err))

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "see attached", list[0].Message, "newest first")
	assert.Equal(t, "page is slow", list[2].Message)

	n, err := svc.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 3, n)
}

type failingCreate struct {
	repo.FeedbackRepository
}

func (failingCreate) Create(context.Context, *entities.Feedback) error {
	return errors.New("database is locked")
}

func TestSubmitRemovesImageWhenInsertFails(t *testing.T) {
	root := t.TempDir()
	svc := NewFeedbackService(failingCreate{}, upload.NewLocal(root))

	_, err := svc.Submit(context.Background(), "farmer", "bug", "photo attached", uploadtest.FileHeader(t, "leaf.png", []byte("png")))
	assert.Equal(t, apperr.ErrCodeInternal, apperr.CodeOf(err))

	entries, err := os.ReadDir(filepath.Join(root, upload.FeedbackFiles))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

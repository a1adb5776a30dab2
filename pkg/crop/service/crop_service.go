package service

import (
	"context"
	"mime/multipart"

	"cropcare/entities"
)

type CropService interface {
	// Add stores the image and then the crop. The image is mandatory.
	Add(ctx context.Context, c *entities.CropRecord, image *multipart.FileHeader) (*entities.CropRecord, error)
	// Import validates every row before inserting any of them.
	Import(ctx context.Context, rows []entities.CropRecord) (int, error)
	List(ctx context.Context) ([]entities.CropRecord, error)
	Count(ctx context.Context) (int64, error)
}

package serviceImp

import (
	"context"
	"fmt"
	"math"
	"mime/multipart"
	"strings"

	log "github.com/sirupsen/logrus"

	"cropcare/entities"
	"cropcare/pkg/apperr"
	repo "cropcare/pkg/crop/repository"
	"cropcare/pkg/crop/service"
	"cropcare/pkg/recommend/types"
	"cropcare/pkg/upload"
)

// ErrInvalidImage is returned when the crop image is missing or not png/jpg/jpeg.
var ErrInvalidImage = apperr.New(apperr.ErrCodeInvalidRequest, "Upload valid image")

type cropSvc struct {
	r     repo.CropRepository
	store upload.Storage
}

func NewCropService(r repo.CropRepository, store upload.Storage) service.CropService {
	return &cropSvc{r: r, store: store}
}

// Validate checks that a crop has a name and that none of its ranges is inverted.
func Validate(c *entities.CropRecord) error {
	if strings.TrimSpace(c.CropName) == "" {
		return apperr.New(apperr.ErrCodeInvalidRequest, "crop_name is required")
	}
	ranges := types.CropRanges(c)
	for _, d := range types.Dimensions {
		rg := ranges[d]
		if !finite(rg.Min) || !finite(rg.Max) {
			return apperr.NewWithContext(apperr.ErrCodeInvalidRequest,
				fmt.Sprintf("%s range must be finite", d),
				map[string]any{"crop": c.CropName, "dimension": string(d)})
		}
		if !rg.Valid() {
			return apperr.NewWithContext(apperr.ErrCodeInvalidRequest,
				fmt.Sprintf("%s range is inverted: min %g > max %g", d, rg.Min, rg.Max),
				map[string]any{"crop": c.CropName, "dimension": string(d)})
		}
	}
	return nil
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

func (s *cropSvc) Add(ctx context.Context, c *entities.CropRecord, image *multipart.FileHeader) (*entities.CropRecord, error) {
	if image == nil || !upload.AllowedImage(image.Filename) {
		return nil, ErrInvalidImage
	}
	c.CropName = strings.TrimSpace(c.CropName)
	if err := Validate(c); err != nil {
		return nil, err
	}
	ref, err := s.store.Save(ctx, upload.CropImages, image)
	if err != nil {
		return nil, apperr.Wrap(apperr.ErrCodeInternal, "failed to store crop image", err)
	}
	c.Image = ref
	if err := s.r.Create(ctx, c); err != nil {
		if rmErr := s.store.Remove(ctx, ref); rmErr != nil {
			log.WithError(rmErr).WithField("ref", ref).Warn("[crop] failed to remove orphaned image")
		}
		return nil, apperr.Wrap(apperr.ErrCodeInternal, "failed to save crop", err)
	}
	log.WithFields(log.Fields{"crop_id": c.CropID, "crop": c.CropName}).Info("[crop] added")
	return c, nil
}

func (s *cropSvc) Import(ctx context.Context, rows []entities.CropRecord) (int, error) {
	if len(rows) == 0 {
		return 0, apperr.New(apperr.ErrCodeInvalidRequest, "no crop rows found")
	}
	for i := range rows {
		if err := Validate(&rows[i]); err != nil {
			se := err.(*apperr.StructuredError)
			return 0, apperr.New(se.Code, fmt.Sprintf("row %d: %s", i+2, se.Message))
		}
	}
	if err := s.r.BulkInsert(ctx, rows); err != nil {
		return 0, apperr.Wrap(apperr.ErrCodeInternal, "failed to import crops", err)
	}
	log.WithField("rows", len(rows)).Info("[crop] imported")
	return len(rows), nil
}

func (s *cropSvc) List(ctx context.Context) ([]entities.CropRecord, error) {
	out, err := s.r.List(ctx)
	if err != nil {
		return nil, apperr.Wrap(apperr.ErrCodeInternal, "failed to list crops", err)
	}
	return out, nil
}

func (s *cropSvc) Count(ctx context.Context) (int64, error) {
	return s.r.Count(ctx)
}

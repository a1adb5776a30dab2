package reftable

import (
	"context"

	log "github.com/sirupsen/logrus"

	"cropcare/entities"
)

type SoilStore interface {
	Count(ctx context.Context) (int64, error)
	BulkInsert(ctx context.Context, rows []entities.SoilRecord) error
}

// CropImporter is satisfied by the crop service, which validates ranges.
type CropImporter interface {
	Count(ctx context.Context) (int64, error)
	Import(ctx context.Context, rows []entities.CropRecord) (int, error)
}

// SeedSoil fills the soil table from file, or from the built-in table when
// file is empty. A non-empty table is left alone unless force is set, in
// which case rows are appended.
func SeedSoil(ctx context.Context, store SoilStore, file string, force bool) (int, error) {
	if !force {
		n, err := store.Count(ctx)
		if err != nil {
			return 0, err
		}
		if n > 0 {
			log.WithField("rows", n).Debug("[seed] soil table already populated")
			return 0, nil
		}
	}

	rows := DefaultSoilRecords()
	source := "built-in"
	if file != "" {
		var err error
		if rows, err = LoadSoilFile(file); err != nil {
			return 0, err
		}
		source = file
	}
	if err := store.BulkInsert(ctx, rows); err != nil {
		return 0, err
	}
	log.WithFields(log.Fields{"rows": len(rows), "source": source}).Info("[seed] soil table loaded")
	return len(rows), nil
}

// SeedCrops imports crops from file when the crop table is empty (or always
// with force). An empty file name is a no-op.
func SeedCrops(ctx context.Context, crops CropImporter, file string, force bool) (int, error) {
	if file == "" {
		return 0, nil
	}
	if !force {
		n, err := crops.Count(ctx)
		if err != nil {
			return 0, err
		}
		if n > 0 {
			log.WithField("rows", n).Debug("[seed] crop table already populated")
			return 0, nil
		}
	}
	rows, err := LoadCropFile(file)
	if err != nil {
		return 0, err
	}
	n, err := crops.Import(ctx, rows)
	if err != nil {
		return 0, err
	}
	log.WithFields(log.Fields{"rows": n, "source": file}).Info("[seed] crop table loaded")
	return n, nil
}

package service

import (
	"context"

	"cropcare/pkg/recommend/types"
)

type RecommendService interface {
	// Recommend resolves the soil baseline for q and returns the first crop
	// whose ranges all contain it.
	Recommend(ctx context.Context, q types.Query) (*types.Result, error)
	Options(ctx context.Context) (*types.Options, error)
}

// Copyright (c) 2026 Kinoteka. All rights reserved.
// Author: dev@kinoteka.app

package rating

import "context"

type Repository interface {
	// UpsertRating atomically creates or overwrites the caller's rating for a
	// movie. Implementations must guarantee at most one row per (ip, movie)
	// under concurrent requests.
	UpsertRating(context context.Context, r *Rating) error

	GetStarByValue(context context.Context, value int) (*Star, error)
	ListStars(context context.Context) ([]*Star, error)
}

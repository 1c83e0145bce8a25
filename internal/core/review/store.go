// Copyright (c) 2026 Kinoteka. All rights reserved.
// Author: dev@kinoteka.app

package review

import "context"

type Repository interface {
	CreateReview(context context.Context, r *Review) error
	GetReview(context context.Context, id int) (*Review, error)
	ListByMovie(context context.Context, movieID int) ([]*Review, error)
}

// Copyright (c) 2026 Kinoteka. All rights reserved.
// Author: dev@kinoteka.app

package movie

import (
	"context"
	"log/slog"

	"github.com/kinoteka/kinoteka/internal/core/review"
)

// ReviewSource supplies the threaded review forest attached to a detail view.
// It is satisfied by the review service.
type ReviewSource interface {
	ForestForMovie(context context.Context, movieID int) ([]*review.Node, error)
}

type Service struct {
	repo    Repository
	reviews ReviewSource
	logger  *slog.Logger
}

func NewService(repo Repository, reviews ReviewSource, logger *slog.Logger) *Service {
	return &Service{repo: repo, reviews: reviews, logger: logger}
}

// List returns one listing page. Genre and category filter values are
// slug-normalized before they reach the store, so callers may send either
// display names or slugs.
func (service *Service) List(context context.Context, callerIP string, filter Filter, limit, offset int) ([]*ListItem, int, error) {
	return service.repo.ListMovies(context, callerIP, filter.normalize(), limit, offset)
}

// GetDetail returns the full movie record with its review forest attached.
func (service *Service) GetDetail(context context.Context, id int) (*Detail, error) {
	detail, err := service.repo.GetMovieDetail(context, id)
	if err != nil {
		return nil, err
	}

	forest, err := service.reviews.ForestForMovie(context, id)
	if err != nil {
		return nil, err
	}
	detail.Reviews = forest

	return detail, nil
}

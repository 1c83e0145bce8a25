// Copyright (c) 2026 Kinoteka. All rights reserved.
// Author: dev@kinoteka.app

package rating

import (
	"context"
	"log/slog"

	"github.com/kinoteka/kinoteka/internal/platform/apperr"
	"github.com/kinoteka/kinoteka/internal/platform/validate"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// Record upserts the caller's rating for a movie.
//
// The star value is resolved against the reference table, so the accepted
// range follows the seeded stars rather than a hardcoded bound. A repeat vote
// from the same IP overwrites the previous value; the conflict is resolved
// inside the storage layer and never surfaces to the caller.
func (service *Service) Record(context context.Context, ip string, input RecordInput) (*Rating, error) {
	validator := &validate.Validator{}
	validator.
		Positive(FieldMovie, input.MovieID).
		Positive(FieldStar, input.Star)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	star, err := service.repo.GetStarByValue(context, input.Star)
	if err != nil {
		if ae := apperr.As(err); ae != nil && ae.Code == "NOT_FOUND" {
			return nil, validate.RequiredError(FieldStar, "Unknown star value")
		}
		return nil, err
	}

	rating := &Rating{
		IP:        ip,
		StarID:    star.ID,
		StarValue: star.Value,
		MovieID:   input.MovieID,
	}

	if err := service.repo.UpsertRating(context, rating); err != nil {
		return nil, err
	}

	service.logger.Info("rating_recorded",
		slog.Int("movie_id", rating.MovieID),
		slog.Int("star", rating.StarValue),
	)
	return rating, nil
}

// Stars lists the reference star values, highest first.
func (service *Service) Stars(context context.Context) ([]*Star, error) {
	return service.repo.ListStars(context)
}

// Copyright (c) 2026 Kinoteka. All rights reserved.
// Author: dev@kinoteka.app

package review

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

// Create validates and persists a new review.
//
// Reviews are append-only: there is no update or delete operation on the
// public surface. A parent, when given, must exist and belong to the same
// movie; every violation is reported as a field-level validation error.
func (service *Service) Create(context context.Context, input CreateInput) (*Review, error) {
	validator := &validate.Validator{}
	validator.
		Required(FieldName, input.Name).MaxLen(FieldName, input.Name, MaxNameLen).
		Required(FieldText, input.Text).MaxLen(FieldText, input.Text, MaxTextLen).
		Email(FieldEmail, input.Email).
		Positive(FieldMovie, input.MovieID)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	if input.ParentID != nil {
		parent, err := service.repo.GetReview(context, *input.ParentID)
		if err != nil {
			if IsNotFound(err) {
				return nil, validate.RequiredError(FieldParent, "Parent review does not exist")
			}
			return nil, err
		}
		if parent.MovieID != input.MovieID {
			return nil, validate.RequiredError(FieldParent, "Parent review belongs to a different movie")
		}
	}

	review := &Review{
		Email:    input.Email,
		Name:     input.Name,
		Text:     input.Text,
		MovieID:  input.MovieID,
		ParentID: input.ParentID,
	}

	if err := service.repo.CreateReview(context, review); err != nil {
		return nil, err
	}

	service.logger.Info("review_created",
		slog.Int("review_id", review.ID),
		slog.Int("movie_id", review.MovieID),
	)
	return review, nil
}

// ForestForMovie returns the movie's reviews as a forest, siblings in
// creation order.
func (service *Service) ForestForMovie(context context.Context, movieID int) ([]*Node, error) {
	reviews, err := service.repo.ListByMovie(context, movieID)
	if err != nil {
		return nil, err
	}
	return BuildForest(reviews), nil
}

// IsNotFound reports whether err is a not-found application error.
func IsNotFound(err error) bool {
	ae := apperr.As(err)
	return ae != nil && ae.Code == "NOT_FOUND"
}

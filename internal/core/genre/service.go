// Copyright (c) 2026 Kinoteka. All rights reserved.
// Author: dev@kinoteka.app

package genre

import (
	"context"
	"log/slog"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (service *Service) List(context context.Context) ([]*Genre, error) {
	return service.repo.ListGenres(context)
}

func (service *Service) Get(context context.Context, id int) (*Genre, error) {
	return service.repo.GetGenre(context, id)
}

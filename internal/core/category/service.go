// Copyright (c) 2026 Kinoteka. All rights reserved.
// Author: dev@kinoteka.app

package category

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

func (service *Service) List(context context.Context) ([]*Category, error) {
	return service.repo.ListCategories(context)
}

func (service *Service) Get(context context.Context, id int) (*Category, error) {
	return service.repo.GetCategory(context, id)
}

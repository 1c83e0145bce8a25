// Copyright (c) 2026 Kinoteka. All rights reserved.
// Author: dev@kinoteka.app

package actor

import (
	"context"
	"log/slog"
	"strings"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (service *Service) List(context context.Context, search string, limit, offset int) ([]*ListItem, int, error) {
	return service.repo.ListActors(context, strings.TrimSpace(search), limit, offset)
}

func (service *Service) Get(context context.Context, id int) (*Actor, error) {
	return service.repo.GetActor(context, id)
}

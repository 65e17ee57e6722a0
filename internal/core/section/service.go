// Copyright (c) 2026 Toma Beauty. All rights reserved.

package section

import (
	"context"
	"log/slog"
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

func (service *Service) ListSections(context context.Context) ([]*Section, error) {
	return service.repo.ListSections(context)
}

func (service *Service) GetByKey(context context.Context, key string) (*Section, error) {
	return service.repo.GetByKey(context, key)
}

// Copyright (c) 2026 Toma Beauty. All rights reserved.

package tip

import (
	"context"
	"log/slog"
	"time"

	"github.com/tomabeauty/toma/internal/platform/apperr"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
	now    func() time.Time
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

func (service *Service) ListTips(context context.Context) ([]*Tip, error) {
	return service.repo.ListTips(context)
}

// TipOfTheDay rotates through the tip set deterministically: every tip is
// shown, one per day, in a cycle keyed on the day of the year.
func (service *Service) TipOfTheDay(context context.Context) (*Tip, error) {
	tips, err := service.repo.ListTips(context)
	if err != nil {
		return nil, err
	}
	if len(tips) == 0 {
		return nil, apperr.NotFound("Tip")
	}

	return tips[service.now().YearDay()%len(tips)], nil
}

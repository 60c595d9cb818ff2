package service

import (
	"time"

	"go.uber.org/zap"
)

type Service struct {
	log    *zap.Logger
	repo   Repository
	cache  UserCache
	events EventPublisher
	now    func() time.Time
}

func NewService(repo Repository, cache UserCache, events EventPublisher, log *zap.Logger) *Service {
	return &Service{
		log:    log.Named("service"),
		repo:   repo,
		cache:  cache,
		events: events,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

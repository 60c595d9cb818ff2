package service

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/shareit/server/internal/model"
)

func (s *Service) CreateUser(ctx context.Context, req model.CreateUserRequest) (model.User, error) {
	user, err := s.repo.CreateUser(ctx, model.User{
		Name:  strings.TrimSpace(req.Name),
		Email: strings.TrimSpace(req.Email),
	})
	if err != nil {
		return model.User{}, err
	}
	s.cacheUser(ctx, user)
	return user, nil
}

// UpdateUser changes only the non-blank fields of req.
func (s *Service) UpdateUser(ctx context.Context, id int64, req model.UpdateUserRequest) (model.User, error) {
	user, err := s.GetUser(ctx, id)
	if err != nil {
		return model.User{}, err
	}

	changed := false
	if req.Name != nil && strings.TrimSpace(*req.Name) != "" {
		user.Name = strings.TrimSpace(*req.Name)
		changed = true
	}
	if req.Email != nil && strings.TrimSpace(*req.Email) != "" {
		user.Email = strings.TrimSpace(*req.Email)
		changed = true
	}
	if !changed {
		return user, nil
	}

	updated, err := s.repo.UpdateUser(ctx, user)
	if err != nil {
		return model.User{}, err
	}
	s.cacheUser(ctx, updated)
	return updated, nil
}

func (s *Service) GetUser(ctx context.Context, id int64) (model.User, error) {
	user, ok, err := s.cache.Get(ctx, id)
	if err != nil {
		s.log.Warn("cache get", zap.Int64("userID", id), zap.Error(err))
	}
	if ok {
		return user, nil
	}

	user, err = s.repo.GetUser(ctx, id)
	if err != nil {
		return model.User{}, errors.Wrapf(err, "user %d", id)
	}
	s.cacheUser(ctx, user)
	return user, nil
}

func (s *Service) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.repo.ListUsers(ctx)
}

func (s *Service) DeleteUser(ctx context.Context, id int64) error {
	if err := s.repo.DeleteUser(ctx, id); err != nil {
		return errors.Wrapf(err, "user %d", id)
	}
	if err := s.cache.Delete(ctx, id); err != nil {
		s.log.Warn("cache delete", zap.Int64("userID", id), zap.Error(err))
	}
	return nil
}

func (s *Service) cacheUser(ctx context.Context, user model.User) {
	if err := s.cache.Set(ctx, user); err != nil {
		s.log.Warn("cache set", zap.Int64("userID", user.ID), zap.Error(err))
	}
}

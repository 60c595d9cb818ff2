package service

import (
	"context"
	"strings"

	"github.com/pkg/errors"

	"github.com/Astemirdum/shareit/server/internal/model"
)

func (s *Service) CreateRequest(ctx context.Context, userID int64, req model.CreateItemRequestRequest) (model.ItemRequest, error) {
	if _, err := s.GetUser(ctx, userID); err != nil {
		return model.ItemRequest{}, err
	}
	created, err := s.repo.CreateRequest(ctx, model.ItemRequest{
		Description: strings.TrimSpace(req.Description),
		RequestorID: userID,
		Created:     model.NewDateTime(s.now()),
	})
	if err != nil {
		return model.ItemRequest{}, err
	}
	created.Items = []model.Item{}
	return created, nil
}

func (s *Service) ListOwnRequests(ctx context.Context, userID int64) ([]model.ItemRequest, error) {
	if _, err := s.GetUser(ctx, userID); err != nil {
		return nil, err
	}
	reqs, err := s.repo.ListRequestsByRequestor(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.withItems(ctx, reqs)
}

func (s *Service) ListOtherRequests(ctx context.Context, userID int64, page model.Page) ([]model.ItemRequest, error) {
	if _, err := s.GetUser(ctx, userID); err != nil {
		return nil, err
	}
	reqs, err := s.repo.ListOtherRequests(ctx, userID, page)
	if err != nil {
		return nil, err
	}
	return s.withItems(ctx, reqs)
}

func (s *Service) GetRequest(ctx context.Context, userID, requestID int64) (model.ItemRequest, error) {
	if _, err := s.GetUser(ctx, userID); err != nil {
		return model.ItemRequest{}, err
	}
	req, err := s.repo.GetRequest(ctx, requestID)
	if err != nil {
		return model.ItemRequest{}, errors.Wrapf(err, "request %d", requestID)
	}
	reqs, err := s.withItems(ctx, []model.ItemRequest{req})
	if err != nil {
		return model.ItemRequest{}, err
	}
	return reqs[0], nil
}

// withItems attaches the items listed in answer to each request.
func (s *Service) withItems(ctx context.Context, reqs []model.ItemRequest) ([]model.ItemRequest, error) {
	ids := make([]int64, 0, len(reqs))
	for _, r := range reqs {
		ids = append(ids, r.ID)
	}
	items, err := s.repo.ListItemsByRequests(ctx, ids)
	if err != nil {
		return nil, err
	}

	byRequest := make(map[int64][]model.Item, len(reqs))
	for _, it := range items {
		if it.RequestID != nil {
			byRequest[*it.RequestID] = append(byRequest[*it.RequestID], it)
		}
	}
	for i := range reqs {
		reqs[i].Items = byRequest[reqs[i].ID]
		if reqs[i].Items == nil {
			reqs[i].Items = []model.Item{}
		}
	}
	return reqs, nil
}

package service

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/Astemirdum/shareit/server/internal/errs"
	"github.com/Astemirdum/shareit/server/internal/model"
)

func (s *Service) CreateItem(ctx context.Context, ownerID int64, req model.CreateItemRequest) (model.Item, error) {
	if _, err := s.GetUser(ctx, ownerID); err != nil {
		return model.Item{}, err
	}
	// An unknown request leaves the item unlinked.
	if req.RequestID != nil {
		_, err := s.repo.GetRequest(ctx, *req.RequestID)
		switch {
		case errors.Is(err, errs.ErrNotFound):
			req.RequestID = nil
		case err != nil:
			return model.Item{}, errors.Wrapf(err, "request %d", *req.RequestID)
		}
	}
	if req.Available == nil {
		return model.Item{}, errors.Wrap(errs.ErrValidation, "available is required")
	}

	return s.repo.CreateItem(ctx, model.Item{
		Name:        strings.TrimSpace(req.Name),
		Description: strings.TrimSpace(req.Description),
		Available:   *req.Available,
		OwnerID:     ownerID,
		RequestID:   req.RequestID,
	})
}

// UpdateItem applies the supplied fields; blank strings are ignored.
func (s *Service) UpdateItem(ctx context.Context, ownerID, itemID int64, req model.UpdateItemRequest) (model.Item, error) {
	item, err := s.ownedItem(ctx, ownerID, itemID)
	if err != nil {
		return model.Item{}, err
	}

	if req.Name != nil && strings.TrimSpace(*req.Name) != "" {
		item.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil && strings.TrimSpace(*req.Description) != "" {
		item.Description = strings.TrimSpace(*req.Description)
	}
	if req.Available != nil {
		item.Available = *req.Available
	}
	return s.repo.UpdateItem(ctx, item)
}

func (s *Service) DeleteItem(ctx context.Context, ownerID, itemID int64) error {
	if _, err := s.ownedItem(ctx, ownerID, itemID); err != nil {
		return err
	}
	return s.repo.DeleteItem(ctx, itemID)
}

func (s *Service) ownedItem(ctx context.Context, ownerID, itemID int64) (model.Item, error) {
	item, err := s.repo.GetItem(ctx, itemID)
	if err != nil {
		return model.Item{}, errors.Wrapf(err, "item %d", itemID)
	}
	if item.OwnerID != ownerID {
		return model.Item{}, errors.Wrapf(errs.ErrForbidden, "user %d does not own item %d", ownerID, itemID)
	}
	return item, nil
}

// GetItem returns the item with comments; last and next bookings are shown only to the owner.
func (s *Service) GetItem(ctx context.Context, userID, itemID int64) (model.ItemDetails, error) {
	item, err := s.repo.GetItem(ctx, itemID)
	if err != nil {
		return model.ItemDetails{}, errors.Wrapf(err, "item %d", itemID)
	}

	details, err := s.details(ctx, []model.Item{item}, item.OwnerID == userID)
	if err != nil {
		return model.ItemDetails{}, err
	}
	return details[0], nil
}

func (s *Service) ListOwnerItems(ctx context.Context, ownerID int64, page model.Page) ([]model.ItemDetails, error) {
	if _, err := s.GetUser(ctx, ownerID); err != nil {
		return nil, err
	}
	items, err := s.repo.ListItemsByOwner(ctx, ownerID, page)
	if err != nil {
		return nil, err
	}
	return s.details(ctx, items, true)
}

func (s *Service) SearchItems(ctx context.Context, text string, page model.Page) ([]model.Item, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return []model.Item{}, nil
	}
	return s.repo.SearchItems(ctx, text, page)
}

func (s *Service) AddComment(ctx context.Context, authorID, itemID int64, req model.CreateCommentRequest) (model.Comment, error) {
	if _, err := s.GetUser(ctx, authorID); err != nil {
		return model.Comment{}, err
	}
	if _, err := s.repo.GetItem(ctx, itemID); err != nil {
		return model.Comment{}, errors.Wrapf(err, "item %d", itemID)
	}

	now := s.now()
	ok, err := s.repo.HasFinishedBooking(ctx, itemID, authorID, now)
	if err != nil {
		return model.Comment{}, err
	}
	if !ok {
		return model.Comment{}, errors.Wrapf(errs.ErrValidation,
			"user %d has no finished booking of item %d", authorID, itemID)
	}

	return s.repo.CreateComment(ctx, model.Comment{
		Text:     strings.TrimSpace(req.Text),
		ItemID:   itemID,
		AuthorID: authorID,
		Created:  model.NewDateTime(now),
	})
}

// details loads comments and, when withBookings is set, the last and next bookings concurrently.
func (s *Service) details(ctx context.Context, items []model.Item, withBookings bool) ([]model.ItemDetails, error) {
	ids := make([]int64, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ID)
	}

	var (
		comments   []model.Comment
		last, next []model.BookingShort
		now        = s.now()
	)
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		comments, err = s.repo.ListComments(gCtx, ids)
		return err
	})
	if withBookings {
		g.Go(func() (err error) {
			last, err = s.repo.LastBookings(gCtx, ids, now)
			return err
		})
		g.Go(func() (err error) {
			next, err = s.repo.NextBookings(gCtx, ids, now)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	byItem := make(map[int64][]model.Comment, len(items))
	for _, c := range comments {
		byItem[c.ItemID] = append(byItem[c.ItemID], c)
	}
	lastByItem := indexBookings(last)
	nextByItem := indexBookings(next)

	res := make([]model.ItemDetails, 0, len(items))
	for _, it := range items {
		d := model.ItemDetails{
			Item:        it,
			LastBooking: lastByItem[it.ID],
			NextBooking: nextByItem[it.ID],
			Comments:    byItem[it.ID],
		}
		if d.Comments == nil {
			d.Comments = []model.Comment{}
		}
		res = append(res, d)
	}
	return res, nil
}

func indexBookings(bookings []model.BookingShort) map[int64]*model.BookingShort {
	m := make(map[int64]*model.BookingShort, len(bookings))
	for i := range bookings {
		m[bookings[i].ItemID] = &bookings[i]
	}
	return m
}

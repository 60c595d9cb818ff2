package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/shareit/pkg/metrics"
	"github.com/Astemirdum/shareit/server/internal/errs"
	"github.com/Astemirdum/shareit/server/internal/model"
)

func (s *Service) CreateBooking(ctx context.Context, bookerID int64, req model.CreateBookingRequest) (model.BookingResponse, error) {
	if req.Start == nil || req.End == nil {
		return model.BookingResponse{}, errors.Wrap(errs.ErrValidation, "start and end are required")
	}
	booker, err := s.GetUser(ctx, bookerID)
	if err != nil {
		return model.BookingResponse{}, err
	}
	item, err := s.repo.GetItem(ctx, req.ItemID)
	if err != nil {
		return model.BookingResponse{}, errors.Wrapf(err, "item %d", req.ItemID)
	}
	if !item.Available {
		return model.BookingResponse{}, errors.Wrapf(errs.ErrValidation, "item %d is not available", item.ID)
	}
	if item.OwnerID == bookerID {
		return model.BookingResponse{}, errors.Wrapf(errs.ErrNotFound, "owner cannot book own item %d", item.ID)
	}
	if !req.Start.Before(req.End.Time) {
		return model.BookingResponse{}, errors.Wrap(errs.ErrValidation, "start must be before end")
	}

	created, err := s.repo.CreateBooking(ctx, model.Booking{
		Start:    model.NewDateTime(req.Start.Time),
		End:      model.NewDateTime(req.End.Time),
		ItemID:   item.ID,
		BookerID: bookerID,
		Status:   model.StatusWaiting,
	})
	if err != nil {
		return model.BookingResponse{}, err
	}

	row := model.BookingRow{
		Booking:     created,
		ItemName:    item.Name,
		ItemOwnerID: item.OwnerID,
		BookerName:  booker.Name,
		BookerEmail: booker.Email,
	}
	s.publish(ctx, model.EventBookingCreated, row)
	return row.Response(), nil
}

// DecideBooking approves or rejects a waiting booking on behalf of the item owner.
func (s *Service) DecideBooking(ctx context.Context, ownerID, bookingID int64, approved bool) (model.BookingResponse, error) {
	row, err := s.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return model.BookingResponse{}, errors.Wrapf(err, "booking %d", bookingID)
	}
	if row.ItemOwnerID != ownerID {
		return model.BookingResponse{}, errors.Wrapf(errs.ErrNotFound, "user %d does not own item %d", ownerID, row.ItemID)
	}
	if row.Status != model.StatusWaiting {
		return model.BookingResponse{}, errors.Wrapf(errs.ErrValidation, "booking %d is already %s", bookingID, row.Status)
	}

	status, event := model.StatusRejected, model.EventBookingRejected
	if approved {
		status, event = model.StatusApproved, model.EventBookingApproved
	}
	if err := s.repo.UpdateBookingStatus(ctx, bookingID, status); err != nil {
		return model.BookingResponse{}, err
	}
	row.Status = status
	s.publish(ctx, event, row)
	return row.Response(), nil
}

// CancelBooking lets the booker withdraw a waiting or approved booking that has not started.
func (s *Service) CancelBooking(ctx context.Context, bookerID, bookingID int64) (model.BookingResponse, error) {
	row, err := s.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return model.BookingResponse{}, errors.Wrapf(err, "booking %d", bookingID)
	}
	if row.BookerID != bookerID {
		return model.BookingResponse{}, errors.Wrapf(errs.ErrNotFound, "booking %d", bookingID)
	}
	if row.Status != model.StatusWaiting && row.Status != model.StatusApproved {
		return model.BookingResponse{}, errors.Wrapf(errs.ErrValidation, "booking %d is %s", bookingID, row.Status)
	}
	if !s.now().Before(row.Start.Time) {
		return model.BookingResponse{}, errors.Wrapf(errs.ErrValidation, "booking %d has already started", bookingID)
	}

	if err := s.repo.UpdateBookingStatus(ctx, bookingID, model.StatusCanceled); err != nil {
		return model.BookingResponse{}, err
	}
	row.Status = model.StatusCanceled
	s.publish(ctx, model.EventBookingCanceled, row)
	return row.Response(), nil
}

func (s *Service) GetBooking(ctx context.Context, userID, bookingID int64) (model.BookingResponse, error) {
	row, err := s.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return model.BookingResponse{}, errors.Wrapf(err, "booking %d", bookingID)
	}
	if row.BookerID != userID && row.ItemOwnerID != userID {
		return model.BookingResponse{}, errors.Wrapf(errs.ErrNotFound, "booking %d", bookingID)
	}
	return row.Response(), nil
}

func (s *Service) ListBookerBookings(ctx context.Context, bookerID int64, state model.State, page model.Page) ([]model.BookingResponse, error) {
	if _, err := s.GetUser(ctx, bookerID); err != nil {
		return nil, err
	}
	return s.listBookings(ctx, model.BookingFilter{BookerID: bookerID, State: state, Page: page})
}

func (s *Service) ListOwnerBookings(ctx context.Context, ownerID int64, state model.State, page model.Page) ([]model.BookingResponse, error) {
	if _, err := s.GetUser(ctx, ownerID); err != nil {
		return nil, err
	}
	return s.listBookings(ctx, model.BookingFilter{OwnerID: ownerID, State: state, Page: page})
}

func (s *Service) listBookings(ctx context.Context, f model.BookingFilter) ([]model.BookingResponse, error) {
	f.Now = s.now()
	rows, err := s.repo.ListBookings(ctx, f)
	if err != nil {
		return nil, err
	}
	res := make([]model.BookingResponse, 0, len(rows))
	for _, r := range rows {
		res = append(res, r.Response())
	}
	return res, nil
}

// publish is best effort: a failed event never fails the booking operation.
func (s *Service) publish(ctx context.Context, typ model.EventType, row model.BookingRow) {
	err := s.events.Publish(ctx, model.BookingEvent{
		EventID:   uuid.NewString(),
		Type:      typ,
		BookingID: row.ID,
		ItemID:    row.ItemID,
		BookerID:  row.BookerID,
		OwnerID:   row.ItemOwnerID,
		Status:    row.Status,
		Timestamp: s.now(),
	})
	metrics.IncBookingEvent(string(typ), err == nil)
	if err != nil {
		s.log.Error("publish booking event",
			zap.String("type", string(typ)), zap.Int64("bookingID", row.ID), zap.Error(err))
	}
}

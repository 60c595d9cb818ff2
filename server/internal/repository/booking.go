package repository

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/Astemirdum/shareit/server/internal/model"
)

func bookingRows() sq.SelectBuilder {
	return qb.Select(
		"b.id", "b.start_date", "b.end_date", "b.item_id", "b.booker_id", "b.status",
		"i.name AS item_name", "i.owner_id AS item_owner_id",
		"u.name AS booker_name", "u.email AS booker_email",
	).
		From(bookingsTableName + " b").
		Join(fmt.Sprintf("%s i ON i.id = b.item_id", itemsTableName)).
		Join(fmt.Sprintf("%s u ON u.id = b.booker_id", usersTableName))
}

func (r *repository) CreateBooking(ctx context.Context, booking model.Booking) (model.Booking, error) {
	query, args, err := qb.Insert(bookingsTableName).
		Columns("start_date", "end_date", "item_id", "booker_id", "status").
		Values(booking.Start, booking.End, booking.ItemID, booking.BookerID, booking.Status).
		Suffix("RETURNING id, start_date, end_date, item_id, booker_id, status").
		ToSql()
	if err != nil {
		return model.Booking{}, err
	}

	var created model.Booking
	if err := r.db.GetContext(ctx, &created, query, args...); err != nil {
		return model.Booking{}, mapErr(err, "CreateBooking")
	}
	return created, nil
}

func (r *repository) GetBooking(ctx context.Context, id int64) (model.BookingRow, error) {
	query, args, err := bookingRows().
		Where(sq.Eq{"b.id": id}).
		ToSql()
	if err != nil {
		return model.BookingRow{}, err
	}

	var row model.BookingRow
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		return model.BookingRow{}, mapErr(err, "GetBooking")
	}
	return row, nil
}

func (r *repository) UpdateBookingStatus(ctx context.Context, id int64, status model.Status) error {
	query, args, err := qb.Update(bookingsTableName).
		Set("status", status).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return mapErr(err, "UpdateBookingStatus")
	}
	return affected(res, "UpdateBookingStatus")
}

func (r *repository) ListBookings(ctx context.Context, f model.BookingFilter) ([]model.BookingRow, error) {
	q := bookingRows()
	if f.OwnerID != 0 {
		q = q.Where(sq.Eq{"i.owner_id": f.OwnerID})
	} else {
		q = q.Where(sq.Eq{"b.booker_id": f.BookerID})
	}

	switch f.State {
	case model.StateCurrent:
		q = q.Where(sq.Lt{"b.start_date": f.Now}).Where(sq.Gt{"b.end_date": f.Now})
	case model.StatePast:
		q = q.Where(sq.Lt{"b.end_date": f.Now})
	case model.StateFuture:
		q = q.Where(sq.Gt{"b.start_date": f.Now})
	case model.StateWaiting:
		q = q.Where(sq.Eq{"b.status": model.StatusWaiting})
	case model.StateRejected:
		q = q.Where(sq.Eq{"b.status": model.StatusRejected})
	}

	query, args, err := q.OrderBy("b.start_date DESC").
		Limit(f.Page.Limit()).
		Offset(f.Page.Offset()).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows := make([]model.BookingRow, 0)
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, mapErr(err, "ListBookings")
	}
	return rows, nil
}

// LastBookings returns, per item, the approved booking that started by now and ends latest.
func (r *repository) LastBookings(ctx context.Context, itemIDs []int64, now time.Time) ([]model.BookingShort, error) {
	return r.nearestBookings(ctx, "LastBookings", itemIDs,
		sq.LtOrEq{"start_date": now}, "end_date DESC")
}

// NextBookings returns, per item, the approved booking starting soonest from now.
func (r *repository) NextBookings(ctx context.Context, itemIDs []int64, now time.Time) ([]model.BookingShort, error) {
	return r.nearestBookings(ctx, "NextBookings", itemIDs,
		sq.GtOrEq{"start_date": now}, "start_date ASC")
}

func (r *repository) nearestBookings(ctx context.Context, op string, itemIDs []int64, cond sq.Sqlizer, order string) ([]model.BookingShort, error) {
	bookings := make([]model.BookingShort, 0)
	if len(itemIDs) == 0 {
		return bookings, nil
	}
	query, args, err := qb.Select("id", "booker_id", "item_id").
		Options("DISTINCT ON (item_id)").
		From(bookingsTableName).
		Where(sq.Eq{"item_id": itemIDs}).
		Where(sq.Eq{"status": model.StatusApproved}).
		Where(cond).
		OrderBy("item_id", order).
		ToSql()
	if err != nil {
		return nil, err
	}

	if err := r.db.SelectContext(ctx, &bookings, query, args...); err != nil {
		return nil, mapErr(err, op)
	}
	return bookings, nil
}

// HasFinishedBooking reports whether the booker has an approved booking of the item that ended before now.
func (r *repository) HasFinishedBooking(ctx context.Context, itemID, bookerID int64, now time.Time) (bool, error) {
	query, args, err := qb.Select("1").
		Prefix("SELECT EXISTS (").
		From(bookingsTableName).
		Where(sq.Eq{
			"item_id":   itemID,
			"booker_id": bookerID,
			"status":    model.StatusApproved,
		}).
		Where(sq.Lt{"end_date": now}).
		Suffix(")").
		ToSql()
	if err != nil {
		return false, err
	}

	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, args...); err != nil {
		return false, mapErr(err, "HasFinishedBooking")
	}
	return exists, nil
}
